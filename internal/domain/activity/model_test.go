package activity_test

import (
	"testing"

	"coala/internal/domain/activity"
)

// TestPoints tests tier-weighted point totals.
func TestPoints(t *testing.T) {
	tests := []struct {
		tier    activity.Tier
		solved  int
		commits int
		want    int
	}{
		{activity.TierDiamond, 184, 213, 184*80 + 213*5},
		{activity.TierBronze, 88, 53, 88*10 + 53*5},
		{activity.TierUnrated, 0, 1, 5},
		{activity.Tier("mythic"), 10, 0, 0},
	}
	for _, tt := range tests {
		if got := activity.Points(tt.tier, tt.solved, tt.commits); got != tt.want {
			t.Errorf("Points(%s, %d, %d) = %d, want %d", tt.tier, tt.solved, tt.commits, got, tt.want)
		}
	}
}

// TestTier_Order tests that unknown tiers sort after every known tier.
func TestTier_Order(t *testing.T) {
	for i := 1; i < len(activity.TierOrder); i++ {
		if activity.TierOrder[i-1].Order() >= activity.TierOrder[i].Order() {
			t.Errorf("%s should sort before %s", activity.TierOrder[i-1], activity.TierOrder[i])
		}
	}
	if activity.Tier("mythic").Order() <= activity.TierUnrated.Order() {
		t.Error("unknown tier should sort last")
	}
}

// TestMember_TrendSymbol tests trend rendering.
func TestMember_TrendSymbol(t *testing.T) {
	tests := map[string]string{
		activity.TrendUp:   "▲",
		activity.TrendDown: "▼",
		activity.TrendFlat: "―",
	}
	for trend, want := range tests {
		if got := (activity.Member{Trend: trend}).TrendSymbol(); got != want {
			t.Errorf("TrendSymbol(%q) = %q, want %q", trend, got, want)
		}
	}
}

// TestParseTab tests tab fallback.
func TestParseTab(t *testing.T) {
	if got := activity.ParseTab("github"); got != activity.TabGithub {
		t.Errorf("ParseTab(github) = %q", got)
	}
	if got := activity.ParseTab(""); got != activity.TabOverall {
		t.Errorf("ParseTab(\"\") = %q", got)
	}
}
