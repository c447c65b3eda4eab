package content

// BlockType tags a rendered content block.
type BlockType string

// Block types
const (
	TypeParagraph BlockType = "paragraph"
	TypeHeading   BlockType = "heading"
	TypeQuote     BlockType = "quote"
	TypeCode      BlockType = "code"
	TypeList      BlockType = "list"
	TypeBreak     BlockType = "break"
)

// SpanStyle tags inline formatting.
type SpanStyle string

// Span styles
const (
	SpanPlain  SpanStyle = "plain"
	SpanBold   SpanStyle = "bold"
	SpanItalic SpanStyle = "italic"
	SpanCode   SpanStyle = "code"
)

// Span is a run of inline text with a single style.
type Span struct {
	Style SpanStyle `yaml:"style" json:"style"`
	Text  string    `yaml:"text" json:"text"`
}

// Block is one unit of post body content.
// Text holds paragraph, heading and quote text; Code and Language hold code blocks;
// Items holds list entries. Level is the heading level (2..4) when known.
// Spans and ItemSpans carry inline formatting when the block came from markdown.
type Block struct {
	Type      BlockType `yaml:"type" json:"type"`
	Text      string    `yaml:"text,omitempty" json:"text,omitempty"`
	Level     int       `yaml:"level,omitempty" json:"level,omitempty"`
	Language  string    `yaml:"language,omitempty" json:"language,omitempty"`
	Code      string    `yaml:"code,omitempty" json:"code,omitempty"`
	Items     []string  `yaml:"items,omitempty" json:"items,omitempty"`
	Ordered   bool      `yaml:"ordered,omitempty" json:"ordered,omitempty"`
	Spans     []Span    `yaml:"-" json:"spans,omitempty"`
	ItemSpans [][]Span  `yaml:"-" json:"itemSpans,omitempty"`
}

// InlineSpans returns Spans, or Text as a single plain span.
func (b Block) InlineSpans() []Span {
	if len(b.Spans) > 0 {
		return b.Spans
	}
	if b.Text == "" {
		return nil
	}
	return []Span{{Style: SpanPlain, Text: b.Text}}
}

// ItemInline returns the spans of list item i, or its plain text.
func (b Block) ItemInline(i int) []Span {
	if i < len(b.ItemSpans) && len(b.ItemSpans[i]) > 0 {
		return b.ItemSpans[i]
	}
	if i < len(b.Items) {
		return []Span{{Style: SpanPlain, Text: b.Items[i]}}
	}
	return nil
}

// HeadingLevel returns the heading level to render, defaulting to 3.
func (b Block) HeadingLevel() int {
	if b.Level < 2 || b.Level > 4 {
		return 3
	}
	return b.Level
}
