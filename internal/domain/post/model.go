package post

import (
	"errors"
	"strconv"
	"strings"

	"coala/internal/domain/content"
)

// BoardFilter selects a community board. BoardAll is the "all" sentinel.
type BoardFilter string

// Boards
const (
	BoardAll    BoardFilter = "all"
	BoardFree   BoardFilter = "free"
	BoardAlumni BoardFilter = "alumni"
)

// DefaultBoard is the board shown before any selection.
const DefaultBoard = BoardAll

// Sort modes for the post list.
const (
	SortLatest  = "latest"
	SortPopular = "popular"
)

// CommentWeight is the popularity weight of one comment relative to one view.
const CommentWeight = 6

// TotalCountLabel is the cosmetic total shown under the community title.
const TotalCountLabel = "코알라 커뮤니티에서 1,284개의 게시글을 찾았어요."

// Domain errors
var (
	ErrEmptyID       = errors.New("post id cannot be empty")
	ErrEmptyTitle    = errors.New("post title cannot be empty")
	ErrInvalidBoard  = errors.New("post category must be one of: all, free, alumni")
	ErrNegativeCount = errors.New("post comment count cannot be negative")
)

// ParseBoardFilter validates a board id.
// PRE: none
// POST: Returns (board, true) for all/free/alumni, ("", false) otherwise
func ParseBoardFilter(value string) (BoardFilter, bool) {
	switch BoardFilter(value) {
	case BoardAll, BoardFree, BoardAlumni:
		return BoardFilter(value), true
	}
	return "", false
}

// Board describes a selectable board.
type Board struct {
	ID    BoardFilter
	Label string
	Badge string
}

// CategoryFilters returns the board chips shown above the list.
func CategoryFilters() []Board {
	return []Board{
		{ID: BoardAll, Label: "전체 게시글"},
		{ID: BoardFree, Label: "자유게시판"},
		{ID: BoardAlumni, Label: "졸업생게시판"},
	}
}

// SidebarBoards returns the boards listed in the community context panel.
func SidebarBoards() []Board {
	return []Board{
		{ID: BoardAll, Label: "전체 게시글", Badge: "1.2k"},
		{ID: BoardFree, Label: "자유게시판", Badge: "842"},
		{ID: BoardAlumni, Label: "졸업생게시판", Badge: "197"},
	}
}

// CategoryMeta is the display metadata of a board.
type CategoryMeta struct {
	Label       string
	Tone        string
	Description string
}

var categoryMeta = map[BoardFilter]CategoryMeta{
	BoardAll:    {Label: "전체", Tone: "all", Description: "모든 게시글의 리듬을 훑어보며 커뮤니티 분위기를 파악해요."},
	BoardFree:   {Label: "자유", Tone: "free", Description: "자유게시판에서는 근황, 질문, 팁을 가볍게 나눠요."},
	BoardAlumni: {Label: "졸업생", Tone: "alumni", Description: "졸업생들의 실무 인사이트와 경험담을 모아둔 보드예요."},
}

// MetaFor returns the metadata of a board, falling back to BoardAll.
func MetaFor(b BoardFilter) CategoryMeta {
	if m, ok := categoryMeta[b]; ok {
		return m
	}
	return categoryMeta[BoardAll]
}

// Post is a community board entry.
type Post struct {
	ID             string      `yaml:"id" json:"id"`
	Category       BoardFilter `yaml:"category" json:"category"`
	Title          string      `yaml:"title" json:"title"`
	Excerpt        string      `yaml:"excerpt" json:"excerpt"`
	Author         string      `yaml:"author" json:"author"`
	AuthorInitials string      `yaml:"authorInitials" json:"authorInitials"`
	AuthorTone     string      `yaml:"authorTone" json:"authorTone"`
	PublishedAt    string      `yaml:"publishedAt" json:"publishedAt"`
	Views          string      `yaml:"views" json:"views"`
	Comments       int         `yaml:"comments" json:"comments"`
	Solved         bool        `yaml:"solved,omitempty" json:"solved,omitempty"`
}

// Validate checks if the Post has valid data.
// PRE: Post struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Post) Validate() error {
	if p.ID == "" {
		return ErrEmptyID
	}
	if p.Title == "" {
		return ErrEmptyTitle
	}
	if _, ok := ParseBoardFilter(string(p.Category)); !ok {
		return ErrInvalidBoard
	}
	if p.Comments < 0 {
		return ErrNegativeCount
	}
	return nil
}

// Meta returns the display metadata of the post's board.
func (p Post) Meta() CategoryMeta {
	return MetaFor(p.Category)
}

// PopularityScore combines views and weighted comments.
// INVARIANT: Post fields are not mutated
func (p Post) PopularityScore() int {
	return ParseCompactCount(p.Views) + p.Comments*CommentWeight
}

// ParseCompactCount converts labels like "842" or "1.2k" into integers.
// Unparseable labels count as zero.
func ParseCompactCount(label string) int {
	label = strings.TrimSpace(label)
	if strings.HasSuffix(label, "k") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(label, "k"), 64)
		if err != nil {
			return 0
		}
		return int(f*1000 + 0.5)
	}
	n, err := strconv.Atoi(label)
	if err != nil {
		return 0
	}
	return n
}

// Detail is the long-form body of a post.
type Detail struct {
	Subtitle      string          `yaml:"subtitle" json:"subtitle"`
	CoverGradient string          `yaml:"coverGradient" json:"coverGradient"`
	Tags          []string        `yaml:"tags" json:"tags"`
	ReadingTime   string          `yaml:"readingTime" json:"readingTime"`
	LastUpdated   string          `yaml:"lastUpdated" json:"lastUpdated"`
	Content       []content.Block `yaml:"content" json:"content"`
}

// FallbackDetail is shown when a post id has no detail entry.
func FallbackDetail() Detail {
	return Detail{
		Subtitle:      "커뮤니티 아카이브",
		CoverGradient: "linear-gradient(135deg, #f5f7fa 0%, #c3cfe2 100%)",
		Tags:          []string{"커뮤니티", "업데이트"},
		ReadingTime:   "5분 분량",
		LastUpdated:   "방금 전 업데이트",
		Content: []content.Block{{
			Type: content.TypeParagraph,
			Text: "선택한 게시글 정보를 찾을 수 없어 기본 정보를 보여드리고 있어요. 목록으로 돌아가서 다른 게시글을 선택해 주세요.",
		}},
	}
}
