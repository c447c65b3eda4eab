package orchestrators

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"coala/internal/adapters/markdown"
	"coala/internal/domain/content"
	"coala/internal/domain/post"
)

// Share targets for a finished draft.
const (
	TistoryWriteURL = "https://www.tistory.com/write"
	VelogWriteURL   = "https://velog.io/write"
)

// AfterPublishPath is where publishing a draft lands.
const AfterPublishPath = "/community"

// DraftStoreForWriter defines the store interface needed by the writer orchestrators.
type DraftStoreForWriter interface {
	Save(ctx context.Context, d post.Draft) error
}

// DraftInput is the writer form as submitted.
type DraftInput struct {
	Title     string
	TagsInput string
	Markdown  string
}

// DraftPreview is the writer page state derived from the form.
type DraftPreview struct {
	Title      string
	TagsInput  string
	Tags       []string
	Markdown   string
	Blocks     []content.Block
	TistoryURL string
	VelogURL   string
}

// DefaultDraftInput is the writer state a fresh page opens with.
func DefaultDraftInput() DraftInput {
	return DraftInput{
		Title:     post.DefaultDraftTitle,
		TagsInput: post.DefaultDraftTags,
		Markdown:  post.DefaultDraftBody,
	}
}

// ExecutePreviewDraft renders the preview pane and share links for a draft.
// PRE: none; empty fields preview as empty
// POST: Tags are the trimmed non-empty comma parts; share links carry
// component-encoded title, body and tags
func ExecutePreviewDraft(input DraftInput) DraftPreview {
	tags := post.ParseTags(input.TagsInput)

	return DraftPreview{
		Title:      input.Title,
		TagsInput:  input.TagsInput,
		Tags:       tags,
		Markdown:   input.Markdown,
		Blocks:     markdown.Lex(input.Markdown),
		TistoryURL: TistoryShareURL(input.Title, input.Markdown),
		VelogURL:   VelogShareURL(input.Title, tags, input.Markdown),
	}
}

// TistoryShareURL builds the Tistory editor link for a draft.
func TistoryShareURL(title, body string) string {
	return TistoryWriteURL + "?title=" + encodeComponent(title) + "&content=" + encodeComponent(body)
}

// VelogShareURL builds the Velog editor link for a draft.
func VelogShareURL(title string, tags []string, body string) string {
	return VelogWriteURL + "?title=" + encodeComponent(title) +
		"&tags=" + encodeComponent(strings.Join(tags, ",")) +
		"&body=" + encodeComponent(body)
}

// componentUnescape restores the characters a URI component leaves literal.
var componentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent escapes s as a URI component: only A-Z a-z 0-9 - _ . ! ~ * ' ( ) stay literal.
func encodeComponent(s string) string {
	// QueryEscape writes spaces as "+" and escapes a literal plus as %2B.
	return componentUnescape.Replace(url.QueryEscape(s))
}

// PublishDraftInput carries input for the publish orchestrator.
type PublishDraftInput struct {
	ClientID string
	DraftInput
}

// PublishDraftResult carries the result of publishing.
type PublishDraftResult struct {
	Draft    post.Draft
	Redirect string
}

// PublishDraftDeps holds dependencies for PublishDraft.
type PublishDraftDeps struct {
	DraftStore DraftStoreForWriter
	GenerateID func() string
	Now        func() time.Time
}

// ExecutePublishDraft records a publish request for the visitor's draft.
// PRE: ClientID is non-empty
// POST: The draft is saved with a generated id and Redirect is AfterPublishPath;
// an empty title is rejected before anything is stored
func ExecutePublishDraft(ctx context.Context, input PublishDraftInput, deps PublishDraftDeps) (PublishDraftResult, error) {
	d := post.Draft{
		ID:        deps.GenerateID(),
		ClientID:  input.ClientID,
		Title:     strings.TrimSpace(input.Title),
		Tags:      post.ParseTags(input.TagsInput),
		Markdown:  input.Markdown,
		CreatedAt: deps.Now(),
	}
	if err := d.Validate(); err != nil {
		return PublishDraftResult{}, err
	}
	if err := deps.DraftStore.Save(ctx, d); err != nil {
		return PublishDraftResult{}, err
	}

	slog.Info("post_event", "event", "publish_requested", "draft_id", d.ID, "title", d.Title, "tags", d.Tags, "bytes", len(d.Markdown))
	return PublishDraftResult{Draft: d, Redirect: AfterPublishPath}, nil
}
