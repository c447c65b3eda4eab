// Package markdown turns writer input into content blocks for the preview pane.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"coala/internal/domain/content"
)

// DefaultCodeLanguage labels fences that name no language.
const DefaultCodeLanguage = "text"

// md parses CommonMark only; rendering happens in templates from the block list,
// so raw HTML in the input is never emitted as markup.
var md = goldmark.New()

// Lex parses markdown source into a flat block sequence.
// PRE: none
// POST: Headings #, ## and ### map to levels 2, 3 and 4 (deeper headings clamp to 4);
// a blank line before a top-level block yields a TypeBreak block;
// fences without a language get DefaultCodeLanguage
func Lex(source string) []content.Block {
	src := []byte(source)
	doc := md.Parser().Parse(text.NewReader(src))

	var blocks []content.Block
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if n.HasBlankPreviousLines() && len(blocks) > 0 {
			blocks = append(blocks, content.Block{Type: content.TypeBreak})
		}
		blocks = append(blocks, lexBlock(n, src)...)
	}
	return blocks
}

func lexBlock(n ast.Node, src []byte) []content.Block {
	switch node := n.(type) {
	case *ast.Heading:
		level := node.Level + 1
		if level > 4 {
			level = 4
		}
		return []content.Block{textBlock(content.TypeHeading, inlineSpans(node, src, content.SpanPlain), level)}
	case *ast.Paragraph, *ast.TextBlock:
		return []content.Block{textBlock(content.TypeParagraph, inlineSpans(node, src, content.SpanPlain), 0)}
	case *ast.Blockquote:
		var spans []content.Span
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			if len(spans) > 0 {
				spans = append(spans, content.Span{Style: content.SpanPlain, Text: " "})
			}
			spans = append(spans, blockSpans(c, src)...)
		}
		return []content.Block{textBlock(content.TypeQuote, mergeSpans(spans), 0)}
	case *ast.FencedCodeBlock:
		lang := string(node.Language(src))
		if lang == "" {
			lang = DefaultCodeLanguage
		}
		return []content.Block{{Type: content.TypeCode, Language: lang, Code: rawLines(node, src)}}
	case *ast.CodeBlock:
		return []content.Block{{Type: content.TypeCode, Language: DefaultCodeLanguage, Code: rawLines(node, src)}}
	case *ast.List:
		b := content.Block{Type: content.TypeList, Ordered: node.IsOrdered()}
		collectItems(node, src, &b)
		return []content.Block{b}
	case *ast.ThematicBreak:
		return []content.Block{{Type: content.TypeBreak}}
	case *ast.HTMLBlock:
		raw := strings.TrimSpace(rawLines(node, src))
		if raw == "" {
			return nil
		}
		return []content.Block{{Type: content.TypeParagraph, Text: raw}}
	default:
		var out []content.Block
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			out = append(out, lexBlock(c, src)...)
		}
		return out
	}
}

// collectItems appends every list item, nested lists included, to b.
func collectItems(list ast.Node, src []byte, b *content.Block) {
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		var spans []content.Span
		var nested []ast.Node
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if _, ok := c.(*ast.List); ok {
				nested = append(nested, c)
				continue
			}
			if len(spans) > 0 {
				spans = append(spans, content.Span{Style: content.SpanPlain, Text: " "})
			}
			spans = append(spans, blockSpans(c, src)...)
		}
		spans = mergeSpans(spans)
		b.Items = append(b.Items, spansText(spans))
		b.ItemSpans = append(b.ItemSpans, spans)
		for _, l := range nested {
			collectItems(l, src, b)
		}
	}
}

// blockSpans flattens any block node to inline spans.
func blockSpans(n ast.Node, src []byte) []content.Span {
	switch n.(type) {
	case *ast.Paragraph, *ast.TextBlock, *ast.Heading:
		return inlineSpans(n, src, content.SpanPlain)
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return []content.Span{{Style: content.SpanCode, Text: rawLines(n, src)}}
	}
	var spans []content.Span
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if len(spans) > 0 {
			spans = append(spans, content.Span{Style: content.SpanPlain, Text: " "})
		}
		spans = append(spans, blockSpans(c, src)...)
	}
	return spans
}

func inlineSpans(n ast.Node, src []byte, style content.SpanStyle) []content.Span {
	var spans []content.Span
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			s := string(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				s += " "
			}
			spans = append(spans, content.Span{Style: style, Text: s})
		case *ast.String:
			spans = append(spans, content.Span{Style: style, Text: string(node.Value)})
		case *ast.Emphasis:
			inner := content.SpanItalic
			if node.Level >= 2 {
				inner = content.SpanBold
			}
			spans = append(spans, inlineSpans(node, src, inner)...)
		case *ast.CodeSpan:
			spans = append(spans, content.Span{Style: content.SpanCode, Text: spansText(inlineSpans(node, src, content.SpanCode))})
		case *ast.AutoLink:
			spans = append(spans, content.Span{Style: style, Text: string(node.URL(src))})
		case *ast.RawHTML:
			var sb strings.Builder
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				sb.Write(seg.Value(src))
			}
			spans = append(spans, content.Span{Style: style, Text: sb.String()})
		default:
			spans = append(spans, inlineSpans(c, src, style)...)
		}
	}
	return mergeSpans(spans)
}

func textBlock(t content.BlockType, spans []content.Span, level int) content.Block {
	spans = trimSpans(spans)
	return content.Block{Type: t, Text: spansText(spans), Level: level, Spans: spans}
}

func rawLines(n ast.Node, src []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(src))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// mergeSpans joins adjacent spans of the same style.
func mergeSpans(spans []content.Span) []content.Span {
	out := make([]content.Span, 0, len(spans))
	for _, s := range spans {
		if s.Text == "" {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Style == s.Style {
			out[n-1].Text += s.Text
			continue
		}
		out = append(out, s)
	}
	return out
}

// trimSpans strips leading and trailing whitespace across the span run.
func trimSpans(spans []content.Span) []content.Span {
	if len(spans) == 0 {
		return spans
	}
	spans[0].Text = strings.TrimLeft(spans[0].Text, " \t")
	last := len(spans) - 1
	spans[last].Text = strings.TrimRight(spans[last].Text, " \t")
	return mergeSpans(spans)
}

func spansText(spans []content.Span) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}
