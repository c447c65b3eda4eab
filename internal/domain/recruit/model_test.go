package recruit_test

import (
	"testing"

	"coala/internal/domain/recruit"
)

// TestItem_StatusLabel tests status labels and openness.
func TestItem_StatusLabel(t *testing.T) {
	tests := []struct {
		status string
		label  string
		open   bool
	}{
		{recruit.StatusOpen, "모집 중", true},
		{recruit.StatusClosingSoon, "마감 임박", true},
		{recruit.StatusClosed, "모집 완료", false},
	}
	for _, tt := range tests {
		it := recruit.Item{Status: tt.status}
		if got := it.StatusLabel(); got != tt.label {
			t.Errorf("StatusLabel(%q) = %q, want %q", tt.status, got, tt.label)
		}
		if got := it.IsOpen(); got != tt.open {
			t.Errorf("IsOpen(%q) = %v, want %v", tt.status, got, tt.open)
		}
	}
}

// TestItem_MatchesStatusFilter tests the status filter chips.
func TestItem_MatchesStatusFilter(t *testing.T) {
	soon := recruit.Item{Status: recruit.StatusClosingSoon}
	if soon.MatchesStatusFilter(recruit.FilterOpen) {
		t.Error("closing-soon should not match the open filter")
	}
	if !soon.MatchesStatusFilter(recruit.FilterClosingSoon) {
		t.Error("closing-soon should match its own filter")
	}
	if !soon.MatchesStatusFilter(recruit.FilterAll) {
		t.Error("all should match everything")
	}
}

// TestItem_Participation tests role slot totals.
func TestItem_Participation(t *testing.T) {
	it := recruit.Item{Roles: []recruit.Role{
		{Label: "프론트엔드", Current: 2, Max: 4},
		{Label: "백엔드", Current: 1, Max: 4},
	}}
	current, max, pct := it.Participation()
	if current != 3 || max != 8 || pct != 37.5 {
		t.Errorf("Participation() = %d, %d, %v", current, max, pct)
	}

	if _, _, pct := (recruit.Item{}).Participation(); pct != 0 {
		t.Errorf("empty Participation() percent = %v, want 0", pct)
	}
}

// TestItem_Validate tests listing validation.
func TestItem_Validate(t *testing.T) {
	valid := recruit.Item{ID: "x", Title: "t", Category: recruit.CategoryStudy, Status: recruit.StatusOpen, CurrentMembers: 1, MaxMembers: 2}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	bad := valid
	bad.Category = recruit.CategoryAll
	if err := bad.Validate(); err != recruit.ErrInvalidCategory {
		t.Errorf("category all: got %v", err)
	}

	bad = valid
	bad.CurrentMembers = 3
	if err := bad.Validate(); err != recruit.ErrInvalidCapacity {
		t.Errorf("over capacity: got %v", err)
	}
}
