package recruit

import (
	"errors"
	"strings"
)

// Status of a recruiting listing.
const (
	StatusOpen        = "open"
	StatusClosed      = "closed"
	StatusClosingSoon = "closing-soon"
)

// Categories
const (
	CategoryAll      = "all"
	CategoryStudy    = "study"
	CategoryProject  = "project"
	CategoryTutoring = "tutoring"
)

// Status filters. FilterAll is the "all" sentinel.
const (
	FilterAll         = "all"
	FilterOpen        = "open"
	FilterClosingSoon = "closing-soon"
)

// Domain errors
var (
	ErrEmptyID         = errors.New("recruit id cannot be empty")
	ErrEmptyTitle      = errors.New("recruit title cannot be empty")
	ErrInvalidCategory = errors.New("recruit category must be one of: study, project, tutoring")
	ErrInvalidStatus   = errors.New("recruit status must be one of: open, closed, closing-soon")
	ErrInvalidCapacity = errors.New("recruit member counts must satisfy 0 <= current <= max")
)

// ValidCategories contains all concrete categories.
var ValidCategories = []string{CategoryStudy, CategoryProject, CategoryTutoring}

// ValidStatuses contains all listing statuses.
var ValidStatuses = []string{StatusOpen, StatusClosed, StatusClosingSoon}

// Option is a labelled choice for a filter chip.
type Option struct {
	ID    string
	Label string
}

// CategoryOptions returns the category chips including the "all" sentinel.
func CategoryOptions() []Option {
	return []Option{
		{ID: CategoryAll, Label: "전체"},
		{ID: CategoryStudy, Label: "스터디"},
		{ID: CategoryProject, Label: "프로젝트"},
		{ID: CategoryTutoring, Label: "멘토링"},
	}
}

// FilterOptions returns the status filter chips.
func FilterOptions() []Option {
	return []Option{
		{ID: FilterAll, Label: "전체 보기"},
		{ID: FilterOpen, Label: "모집 중"},
		{ID: FilterClosingSoon, Label: "마감 임박"},
	}
}

var categoryLabels = map[string]string{
	CategoryStudy:    "스터디",
	CategoryProject:  "프로젝트",
	CategoryTutoring: "멘토링",
}

var detailCategoryLabels = map[string]string{
	CategoryStudy:    "스터디",
	CategoryProject:  "사이드 프로젝트",
	CategoryTutoring: "멘토링",
}

// Role is a slot type in a listing.
type Role struct {
	Label   string `yaml:"label" json:"label"`
	Current int    `yaml:"current" json:"current"`
	Max     int    `yaml:"max" json:"max"`
}

// Comment is a question or answer under a listing.
type Comment struct {
	ID             string `yaml:"id" json:"id"`
	Author         string `yaml:"author" json:"author"`
	AuthorInitials string `yaml:"authorInitials" json:"authorInitials"`
	AuthorTone     string `yaml:"authorTone" json:"authorTone"`
	TimeLabel      string `yaml:"timeLabel" json:"timeLabel"`
	Content        string `yaml:"content" json:"content"`
}

// Item is a study, project or mentoring listing.
type Item struct {
	ID               string    `yaml:"id" json:"id"`
	Title            string    `yaml:"title" json:"title"`
	ShortDesc        string    `yaml:"shortDesc" json:"shortDesc"`
	Category         string    `yaml:"category" json:"category"`
	Status           string    `yaml:"status" json:"status"`
	CurrentMembers   int       `yaml:"currentMembers" json:"currentMembers"`
	MaxMembers       int       `yaml:"maxMembers" json:"maxMembers"`
	Host             string    `yaml:"host" json:"host"`
	HostInitials     string    `yaml:"hostInitials" json:"hostInitials"`
	HostTone         string    `yaml:"hostTone" json:"hostTone"`
	HostRole         string    `yaml:"hostRole" json:"hostRole"`
	TrustScore       float64   `yaml:"trustScore" json:"trustScore"`
	Tags             []string  `yaml:"tags" json:"tags"`
	TechStack        []string  `yaml:"techStack" json:"techStack"`
	Roles            []Role    `yaml:"roles" json:"roles"`
	MeetingType      string    `yaml:"meetingType" json:"meetingType"`
	ExpectedDuration string    `yaml:"expectedDuration" json:"expectedDuration"`
	DetailContent    []string  `yaml:"detailContent" json:"detailContent"`
	ProcessList      []string  `yaml:"processList" json:"processList"`
	Comments         []Comment `yaml:"comments" json:"comments"`
	CreatedAt        string    `yaml:"createdAt" json:"createdAt"`
	Views            int       `yaml:"views" json:"views"`
	Bookmarks        int       `yaml:"bookmarks" json:"bookmarks"`
}

// Validate checks if the Item has valid data.
// PRE: Item struct is populated
// POST: Returns nil if valid, error otherwise
func (i *Item) Validate() error {
	if i.ID == "" {
		return ErrEmptyID
	}
	if i.Title == "" {
		return ErrEmptyTitle
	}
	if !contains(ValidCategories, i.Category) {
		return ErrInvalidCategory
	}
	if !contains(ValidStatuses, i.Status) {
		return ErrInvalidStatus
	}
	if i.CurrentMembers < 0 || i.CurrentMembers > i.MaxMembers {
		return ErrInvalidCapacity
	}
	return nil
}

// StatusLabel returns the display label of the listing status.
func (i Item) StatusLabel() string {
	switch i.Status {
	case StatusOpen:
		return "모집 중"
	case StatusClosingSoon:
		return "마감 임박"
	default:
		return "모집 완료"
	}
}

// CategoryLabel returns the short category label.
func (i Item) CategoryLabel() string {
	return categoryLabels[i.Category]
}

// DetailCategoryLabel returns the category label used on the detail page.
func (i Item) DetailCategoryLabel() string {
	return detailCategoryLabels[i.Category]
}

// IsOpen reports whether the listing still accepts applicants.
// INVARIANT: Status field is not mutated
func (i Item) IsOpen() bool {
	return i.Status != StatusClosed
}

// MatchesStatusFilter reports whether the listing passes a status filter.
// Unknown filters behave like FilterAll.
func (i Item) MatchesStatusFilter(filter string) bool {
	switch filter {
	case FilterOpen:
		return i.Status == StatusOpen
	case FilterClosingSoon:
		return i.Status == StatusClosingSoon
	default:
		return true
	}
}

// SearchText is the text a recruit query is matched against.
func (i Item) SearchText() string {
	return i.Title + " " + i.ShortDesc + " " + strings.Join(i.Tags, " ") + " " + strings.Join(i.TechStack, " ")
}

// Participation sums role slots and returns (current, max, percent).
// PRE: none
// POST: percent is 0 when there are no slots
func (i Item) Participation() (int, int, float64) {
	var current, max int
	for _, r := range i.Roles {
		current += r.Current
		max += r.Max
	}
	if max == 0 {
		return current, max, 0
	}
	return current, max, float64(current) / float64(max) * 100
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
