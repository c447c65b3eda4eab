package post

import (
	"errors"
	"strings"
	"time"
)

// Writer defaults shown when the editor opens.
const (
	DefaultDraftTitle = "새 글 제목을 입력하세요"
	DefaultDraftTags  = "커뮤니티, 회고"
	DefaultDraftBody  = "## 글감 노트\n" +
		"- 소개하고 싶은 이야기나 회고를 간단히 메모하세요.\n" +
		"- 이미지나 링크도 함께 남겨두면 나중에 편해요.\n" +
		"\n" +
		"### 작성 팁\n" +
		"1. 문제 상황을 먼저 설명합니다.\n" +
		"2. 해결 과정에서 배운 점을 정리합니다.\n" +
		"3. 다음 계획이나 요청을 덧붙이면 좋아요.\n"
)

// Draft errors
var (
	ErrEmptyDraftID     = errors.New("draft id cannot be empty")
	ErrEmptyDraftTitle  = errors.New("draft title cannot be empty")
	ErrEmptyDraftClient = errors.New("draft client id cannot be empty")
)

// Draft is a post composed in the writer.
type Draft struct {
	ID        string
	ClientID  string
	Title     string
	Tags      []string
	Markdown  string
	CreatedAt time.Time
}

// Validate checks if the Draft has valid data.
// PRE: Draft struct is populated
// POST: Returns nil if valid, error otherwise
func (d *Draft) Validate() error {
	if d.ID == "" {
		return ErrEmptyDraftID
	}
	if d.ClientID == "" {
		return ErrEmptyDraftClient
	}
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyDraftTitle
	}
	return nil
}

// ParseTags splits a comma-separated tag input, trimming blanks and dropping empties.
// PRE: none
// POST: Returns tags in input order; never nil
func ParseTags(input string) []string {
	tags := []string{}
	for _, part := range strings.Split(input, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
