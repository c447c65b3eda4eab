package info

// Resource filters. FilterAll is the "all" sentinel.
const (
	FilterAll     = "all"
	FilterPDF     = "pdf"
	FilterStudy   = "study"
	FilterMeeting = "meeting"
)

// Latest-update tabs. LatestAll is the "all" sentinel.
const (
	LatestAll    = "all"
	LatestNotice = "notice"
	LatestShare  = "share"
	LatestTip    = "tip"
)

// Option is a labelled filter chip.
type Option struct {
	ID    string
	Label string
}

// Filters returns the resource filter chips.
func Filters() []Option {
	return []Option{
		{ID: FilterAll, Label: "전체 자료"},
		{ID: FilterPDF, Label: "PDF 가이드"},
		{ID: FilterStudy, Label: "스터디 자료"},
		{ID: FilterMeeting, Label: "회의록"},
	}
}

// LatestTabs returns the tabs of the latest-updates card.
func LatestTabs() []Option {
	return []Option{
		{ID: LatestAll, Label: "전체"},
		{ID: LatestNotice, Label: "공지"},
		{ID: LatestShare, Label: "자료"},
		{ID: LatestTip, Label: "팁"},
	}
}

// ResourceCard is a shared document or link.
type ResourceCard struct {
	ID       string `yaml:"id" json:"id"`
	Filter   string `yaml:"filter" json:"filter"`
	Tag      string `yaml:"tag" json:"tag"`
	Title    string `yaml:"title" json:"title"`
	Meta     string `yaml:"meta" json:"meta"`
	Source   string `yaml:"source" json:"source"`
	ImageURL string `yaml:"imageUrl" json:"imageUrl"`
}

// SearchText is the text a resource query is matched against.
func (c ResourceCard) SearchText() string {
	return c.Title + " " + c.Meta + " " + c.Source
}

// FeaturedArticle is the hero article of the info page.
type FeaturedArticle struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Category    string `yaml:"category" json:"category"`
	ImageURL    string `yaml:"imageUrl" json:"imageUrl"`
}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	ID       string `yaml:"id" json:"id"`
	Label    string `yaml:"label" json:"label"`
	IsMuted  bool   `yaml:"isMuted,omitempty" json:"isMuted,omitempty"`
	HasEvent bool   `yaml:"hasEvent,omitempty" json:"hasEvent,omitempty"`
}

// Schedule is an event listed under the calendar.
type Schedule struct {
	ID        string `yaml:"id" json:"id"`
	DateLabel string `yaml:"dateLabel" json:"dateLabel"`
	Title     string `yaml:"title" json:"title"`
	Type      string `yaml:"type" json:"type"`
}

// Calendar is the month view of club events.
type Calendar struct {
	MonthLabel    string        `yaml:"monthLabel" json:"monthLabel"`
	WeekdayLabels []string      `yaml:"weekdayLabels" json:"weekdayLabels"`
	Days          []CalendarDay `yaml:"days" json:"days"`
	Schedules     []Schedule    `yaml:"schedules" json:"schedules"`
}

// LatestUpdate is an entry of the latest-updates card.
type LatestUpdate struct {
	ID        string `yaml:"id" json:"id"`
	Title     string `yaml:"title" json:"title"`
	Summary   string `yaml:"summary" json:"summary"`
	Timestamp string `yaml:"timestamp" json:"timestamp"`
	Category  string `yaml:"category" json:"category"`
	Type      string `yaml:"type" json:"type"`
}
