package post_test

import (
	"reflect"
	"testing"

	"coala/internal/domain/post"
)

// TestParseCompactCount tests view label parsing.
func TestParseCompactCount(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"842", 842},
		{"1.2k", 1200},
		{"1.1k", 1100},
		{" 12 ", 12},
		{"", 0},
		{"lots", 0},
		{"x.yk", 0},
	}
	for _, tt := range tests {
		if got := post.ParseCompactCount(tt.label); got != tt.want {
			t.Errorf("ParseCompactCount(%q) = %d, want %d", tt.label, got, tt.want)
		}
	}
}

// TestPost_PopularityScore tests the view and comment weighting.
func TestPost_PopularityScore(t *testing.T) {
	p := post.Post{Views: "1.2k", Comments: 48}
	if got, want := p.PopularityScore(), 1200+48*post.CommentWeight; got != want {
		t.Errorf("PopularityScore() = %d, want %d", got, want)
	}
}

// TestParseBoardFilter tests board parsing.
func TestParseBoardFilter(t *testing.T) {
	for _, v := range []string{"all", "free", "alumni"} {
		if b, ok := post.ParseBoardFilter(v); !ok || string(b) != v {
			t.Errorf("ParseBoardFilter(%q) = %q, %v", v, b, ok)
		}
	}
	if _, ok := post.ParseBoardFilter("info"); ok {
		t.Error("ParseBoardFilter(info) should fail")
	}
}

// TestParseTags tests comma separated tag input.
func TestParseTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{post.DefaultDraftTags, []string{"커뮤니티", "회고"}},
		{" go , ,sqlite,", []string{"go", "sqlite"}},
		{"", []string{}},
	}
	for _, tt := range tests {
		if got := post.ParseTags(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseTags(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}

// TestDraft_Validate tests draft validation.
func TestDraft_Validate(t *testing.T) {
	tests := []struct {
		name  string
		draft post.Draft
		want  error
	}{
		{"valid", post.Draft{ID: "d1", ClientID: "c1", Title: "제목"}, nil},
		{"no id", post.Draft{ClientID: "c1", Title: "제목"}, post.ErrEmptyDraftID},
		{"no client", post.Draft{ID: "d1", Title: "제목"}, post.ErrEmptyDraftClient},
		{"blank title", post.Draft{ID: "d1", ClientID: "c1", Title: "   "}, post.ErrEmptyDraftTitle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.draft.Validate(); err != tt.want {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
