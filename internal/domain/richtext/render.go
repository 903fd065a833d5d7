// Package richtext projects a rich document tree into the output
// representations the export pipeline needs: HTML for preview and the PDF
// path, word-processor runs for DOCX, and flattened plain text. All
// projections share one depth-first traversal; only the per-run visitor
// differs.
package richtext

import (
	"html"
	"strings"

	"github.com/avasilyev/tredit/internal/types"
)

// WordRun is one word-processor text run: literal content plus the run
// properties a DOCX paragraph needs. Color is a hex value without '#',
// Highlight a word-processor highlight name.
type WordRun struct {
	Text        string
	Bold        bool
	Italics     bool
	Strike      bool
	SubScript   bool
	SuperScript bool
	Highlight   string
	Color       string
}

// RenderHTML renders the full inline-style set: bold, italic, strikethrough,
// code, sub/superscript, color and highlight. Highlight wraps outermost so
// the background visually contains any colored span. Paragraphs are joined
// with <br>.
func RenderHTML(doc *types.Document) string {
	return safeRender("html", func() string {
		return renderDoc(doc, "<br>", func(n *types.Node) string {
			h := html.EscapeString(n.Text)
			f := n.Format
			if f.Has(types.FormatCode) {
				h = "<code>" + h + "</code>"
			}
			if f.Has(types.FormatSubscript) {
				h = "<sub>" + h + "</sub>"
			}
			if f.Has(types.FormatSuperscript) {
				h = "<sup>" + h + "</sup>"
			}
			if f.Has(types.FormatStrikethrough) {
				h = "<s>" + h + "</s>"
			}
			if f.Has(types.FormatItalic) {
				h = "<em>" + h + "</em>"
			}
			if f.Has(types.FormatBold) {
				h = "<strong>" + h + "</strong>"
			}
			if c, ok := ResolveColor(n.Style); ok {
				h = `<span style="color:` + c + `">` + h + `</span>`
			}
			if f.Has(types.FormatHighlight) {
				h = `<mark style="background-color:#fde68a">` + h + `</mark>`
			}
			return h
		})
	})
}

// RenderPreviewHTML is the reduced live-preview variant: bold, italic, color
// and highlight only, with the preview's lighter highlight tint.
func RenderPreviewHTML(doc *types.Document) string {
	return safeRender("preview", func() string {
		return renderDoc(doc, "<br>", func(n *types.Node) string {
			h := html.EscapeString(n.Text)
			if n.Format.Has(types.FormatBold) {
				h = "<strong>" + h + "</strong>"
			}
			if n.Format.Has(types.FormatItalic) {
				h = "<em>" + h + "</em>"
			}
			if c, ok := ResolveColor(n.Style); ok {
				h = `<span style="color:` + c + `;">` + h + `</span>`
			}
			if n.Format.Has(types.FormatHighlight) {
				h = `<mark style="background:#fff59d;">` + h + `</mark>`
			}
			return h
		})
	})
}

// RenderPlain flattens the document to literal characters: runs concatenated,
// paragraphs joined with a newline, all styling dropped.
func RenderPlain(doc *types.Document) string {
	return safeRender("plain", func() string {
		return renderDoc(doc, "\n", func(n *types.Node) string { return n.Text })
	})
}

// RenderWordRuns projects the document to word-processor runs, flattened in
// document order. Paragraph boundaries are not represented; the DOCX export
// emits one paragraph per segment.
func RenderWordRuns(doc *types.Document) (runs []WordRun) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithField("target", "docx").Warnf("rich text render failed: %v", r)
			runs = nil
		}
	}()
	if doc == nil || doc.Root == nil || len(doc.Root.Children) == 0 {
		return nil
	}
	var walk func(n *types.Node)
	walk = func(n *types.Node) {
		if n == nil {
			return
		}
		switch n.Type {
		case types.NodeParagraph:
			for _, c := range n.Children {
				walk(c)
			}
		case types.NodeText:
			f := n.Format
			run := WordRun{
				Text:        n.Text,
				Bold:        f.Has(types.FormatBold),
				Italics:     f.Has(types.FormatItalic),
				Strike:      f.Has(types.FormatStrikethrough),
				SubScript:   f.Has(types.FormatSubscript),
				SuperScript: f.Has(types.FormatSuperscript),
			}
			if f.Has(types.FormatHighlight) {
				run.Highlight = "yellow"
			}
			if c, ok := ResolveColor(n.Style); ok {
				run.Color = strings.TrimPrefix(c, "#")
			}
			runs = append(runs, run)
		}
	}
	for _, child := range doc.Root.Children {
		walk(child)
	}
	return runs
}

// renderDoc walks the top-level children, rendering each with visit and
// joining the results with sep.
func renderDoc(doc *types.Document, sep string, visit func(*types.Node) string) string {
	if doc == nil || doc.Root == nil || len(doc.Root.Children) == 0 {
		return ""
	}
	parts := make([]string, 0, len(doc.Root.Children))
	for _, child := range doc.Root.Children {
		parts = append(parts, renderNode(child, visit))
	}
	return strings.Join(parts, sep)
}

// renderNode renders one node: paragraphs concatenate their children with no
// separator, text nodes go through the visitor, unknown node kinds degrade to
// empty output so new editor node types never break an export.
func renderNode(n *types.Node, visit func(*types.Node) string) string {
	if n == nil {
		return ""
	}
	switch n.Type {
	case types.NodeParagraph:
		var b strings.Builder
		for _, c := range n.Children {
			b.WriteString(renderNode(c, visit))
		}
		return b.String()
	case types.NodeText:
		return visit(n)
	default:
		return ""
	}
}

// safeRender keeps a malformed tree from failing a whole export: partial
// output beats no file.
func safeRender(target string, fn func() string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithField("target", target).Warnf("rich text render failed: %v", r)
			out = ""
		}
	}()
	return fn()
}
