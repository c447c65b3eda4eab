package activity

import "errors"

// Tier is a SOLVED problem-solving tier.
type Tier string

// Tiers, strongest first.
const (
	TierRuby     Tier = "ruby"
	TierDiamond  Tier = "diamond"
	TierPlatinum Tier = "platinum"
	TierGold     Tier = "gold"
	TierSilver   Tier = "silver"
	TierBronze   Tier = "bronze"
	TierUnrated  Tier = "unrated"
)

// TierOrder lists tiers from strongest to weakest.
var TierOrder = []Tier{TierRuby, TierDiamond, TierPlatinum, TierGold, TierSilver, TierBronze, TierUnrated}

// GithubCommitPoint is the score of one commit.
const GithubCommitPoint = 5

// Trends
const (
	TrendUp   = "up"
	TrendDown = "down"
	TrendFlat = "flat"
)

// Leaderboard tabs
const (
	TabOverall  = "overall"
	TabBaekjoon = "baekjoon"
	TabGithub   = "github"
	TabMe       = "me"
)

// Domain errors
var (
	ErrEmptyID     = errors.New("member id cannot be empty")
	ErrEmptyName   = errors.New("member name cannot be empty")
	ErrInvalidRank = errors.New("member rank must be positive")
	ErrInvalidTier = errors.New("member tier is not a known SOLVED tier")
)

type tierMeta struct {
	label  string
	points int
}

var tiers = map[Tier]tierMeta{
	TierRuby:     {label: "Ruby", points: 100},
	TierDiamond:  {label: "Diamond", points: 80},
	TierPlatinum: {label: "Platinum", points: 60},
	TierGold:     {label: "Gold", points: 40},
	TierSilver:   {label: "Silver", points: 20},
	TierBronze:   {label: "Bronze", points: 10},
	TierUnrated:  {label: "Unrated", points: 5},
}

// Label returns the display label of the tier.
func (t Tier) Label() string {
	return tiers[t].label
}

// PointsPerProblem returns the score of one solved problem at this tier.
func (t Tier) PointsPerProblem() int {
	return tiers[t].points
}

// Order returns the tier's position in TierOrder; unknown tiers sort last.
func (t Tier) Order() int {
	for i, v := range TierOrder {
		if v == t {
			return i
		}
	}
	return len(TierOrder)
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	_, ok := tiers[t]
	return ok
}

// Source describes how points are earned.
type Source struct {
	ID           string `yaml:"id" json:"id"`
	Label        string `yaml:"label" json:"label"`
	Description  string `yaml:"description" json:"description"`
	PointFormula string `yaml:"pointFormula" json:"pointFormula"`
}

// Member is a leaderboard row.
type Member struct {
	ID            string `yaml:"id" json:"id"`
	Rank          int    `yaml:"rank" json:"rank"`
	Name          string `yaml:"name" json:"name"`
	Initials      string `yaml:"initials" json:"initials"`
	Tone          string `yaml:"tone" json:"tone"`
	SolvedHandle  string `yaml:"solvedHandle" json:"solvedHandle"`
	SolvedTier    Tier   `yaml:"solvedTier" json:"solvedTier"`
	SolvedCount   int    `yaml:"solvedCount" json:"solvedCount"`
	GithubHandle  string `yaml:"githubHandle" json:"githubHandle"`
	GithubCommits int    `yaml:"githubCommits" json:"githubCommits"`
	TotalPoints   int    `yaml:"totalPoints" json:"totalPoints"`
	Trend         string `yaml:"trend" json:"trend"`
	IsMe          bool   `yaml:"isMe,omitempty" json:"isMe,omitempty"`
}

// Validate checks if the Member has valid data.
// PRE: Member struct is populated
// POST: Returns nil if valid, error otherwise
func (m *Member) Validate() error {
	if m.ID == "" {
		return ErrEmptyID
	}
	if m.Name == "" {
		return ErrEmptyName
	}
	if m.Rank <= 0 {
		return ErrInvalidRank
	}
	if !m.SolvedTier.Valid() {
		return ErrInvalidTier
	}
	return nil
}

// SolvedPoints returns the points earned from problem solving.
func (m Member) SolvedPoints() int {
	return m.SolvedCount * m.SolvedTier.PointsPerProblem()
}

// CommitPoints returns the points earned from commits.
func (m Member) CommitPoints() int {
	return m.GithubCommits * GithubCommitPoint
}

// IsTop3 reports whether the member is on the podium.
func (m Member) IsTop3() bool {
	return m.Rank <= 3
}

// TrendSymbol returns the arrow rendered for the trend.
func (m Member) TrendSymbol() string {
	switch m.Trend {
	case TrendUp:
		return "▲"
	case TrendDown:
		return "▼"
	default:
		return "―"
	}
}

// SearchText is the text a leaderboard query is matched against.
func (m Member) SearchText() string {
	return m.Name + " " + m.SolvedHandle + " " + m.GithubHandle
}

// Tab is a leaderboard view.
type Tab struct {
	ID    string
	Label string
}

// Tabs returns the leaderboard tabs in display order.
func Tabs() []Tab {
	return []Tab{
		{ID: TabOverall, Label: "종합 순위"},
		{ID: TabBaekjoon, Label: "백준"},
		{ID: TabGithub, Label: "GitHub"},
		{ID: TabMe, Label: "내 순위"},
	}
}

// ParseTab returns tab if known, TabOverall otherwise.
func ParseTab(tab string) string {
	switch tab {
	case TabOverall, TabBaekjoon, TabGithub, TabMe:
		return tab
	}
	return TabOverall
}

// Points computes tier-weighted activity points.
// PRE: solved and commits are non-negative
// POST: Returns solved*PointsPerProblem(tier) + commits*GithubCommitPoint
func Points(tier Tier, solved, commits int) int {
	return solved*tier.PointsPerProblem() + commits*GithubCommitPoint
}
