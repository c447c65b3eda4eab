package home

// ProfileSummary is the signed-in member card on the home page.
type ProfileSummary struct {
	Name string `yaml:"name" json:"name"`
	Role string `yaml:"role" json:"role"`
}

// HeroSlide is a banner slide.
type HeroSlide struct {
	ID       string `yaml:"id" json:"id"`
	Eyebrow  string `yaml:"eyebrow" json:"eyebrow"`
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	ImageURL string `yaml:"imageUrl" json:"imageUrl"`
}

// PostItem is a compact post link.
type PostItem struct {
	ID         string `yaml:"id" json:"id"`
	Title      string `yaml:"title" json:"title"`
	TimeLabel  string `yaml:"timeLabel" json:"timeLabel"`
	AuthorRole string `yaml:"authorRole" json:"authorRole"`
}

// ResourceItem is a featured resource link.
type ResourceItem struct {
	ID       string `yaml:"id" json:"id"`
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	Meta     string `yaml:"meta" json:"meta"`
	Icon     string `yaml:"icon" json:"icon"`
	Tone     string `yaml:"tone" json:"tone"`
}

// RecruitHighlight is a recruiting teaser.
type RecruitHighlight struct {
	ID       string `yaml:"id" json:"id"`
	Category string `yaml:"category" json:"category"`
	Title    string `yaml:"title" json:"title"`
	Summary  string `yaml:"summary" json:"summary"`
	Current  int    `yaml:"current" json:"current"`
	Max      int    `yaml:"max" json:"max"`
	Deadline string `yaml:"deadline" json:"deadline"`
}

// FillPercent returns how full the listing is, clamped to 0..100.
func (h RecruitHighlight) FillPercent() int {
	if h.Max <= 0 {
		return 0
	}
	p := h.Current * 100 / h.Max
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// LeaderCard is a compact leaderboard entry.
type LeaderCard struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Level    string `yaml:"level" json:"level"`
	Points   string `yaml:"points" json:"points"`
	Initials string `yaml:"initials" json:"initials"`
	Tone     string `yaml:"tone" json:"tone"`
}

// Dashboard bundles the home page datasets.
type Dashboard struct {
	Profile           ProfileSummary     `yaml:"profile" json:"profile"`
	Slides            []HeroSlide        `yaml:"slides" json:"slides"`
	Posts             []PostItem         `yaml:"posts" json:"posts"`
	Resources         []ResourceItem     `yaml:"resources" json:"resources"`
	RecruitHighlights []RecruitHighlight `yaml:"recruitHighlights" json:"recruitHighlights"`
	Leaders           []LeaderCard       `yaml:"leaders" json:"leaders"`
}
