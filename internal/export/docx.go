package export

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/avasilyev/tredit/internal/domain/richtext"
	"github.com/avasilyev/tredit/internal/domain/timecode"
	"github.com/avasilyev/tredit/internal/types"
)

// The DOCX writer emits the WordprocessingML package directly: a segment
// becomes one paragraph of runs, and a run property set maps 1:1 onto the
// WordRun projection. See DESIGN.md for why no docx library is used here.

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>`

// WriteDOCX writes an Office Open XML package. Per segment: a bold
// [speaker] run, the timestamp (or bare colon) run, then the rich word-run
// projection or a single plain run. This is the one export path whose
// failure propagates: a partial zip would be actively misleading.
func WriteDOCX(w io.Writer, segs []types.Segment, withTimestamps bool) error {
	zw := zip.NewWriter(w)
	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", documentXML(segs, withTimestamps)},
	}
	for _, p := range parts {
		fw, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("docx part %s: %w", p.name, err)
		}
		if _, err := io.WriteString(fw, p.body); err != nil {
			return fmt.Errorf("docx part %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize docx: %w", err)
	}
	return nil
}

func documentXML(segs []types.Segment, withTimestamps bool) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	b.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, s := range segs {
		writeParagraph(&b, segmentRuns(s, withTimestamps))
	}
	b.WriteString(`</w:body></w:document>`)
	return b.String()
}

func segmentRuns(s types.Segment, withTimestamps bool) []richtext.WordRun {
	runs := []richtext.WordRun{{Text: "[" + s.Speaker + "]", Bold: true}}
	if withTimestamps {
		runs = append(runs, richtext.WordRun{
			Text: fmt.Sprintf(" [%s --> %s]: ", timecode.Format(s.Start), timecode.Format(s.End)),
		})
	} else {
		runs = append(runs, richtext.WordRun{Text: ": "})
	}
	if s.RichText != nil {
		runs = append(runs, richtext.RenderWordRuns(s.RichText)...)
	} else {
		runs = append(runs, richtext.WordRun{Text: s.Text})
	}
	return runs
}

func writeParagraph(b *strings.Builder, runs []richtext.WordRun) {
	b.WriteString("<w:p>")
	for _, r := range runs {
		b.WriteString("<w:r>")
		writeRunProps(b, r)
		b.WriteString(`<w:t xml:space="preserve">`)
		b.WriteString(escapeXML(r.Text))
		b.WriteString("</w:t></w:r>")
	}
	b.WriteString("</w:p>")
}

func writeRunProps(b *strings.Builder, r richtext.WordRun) {
	if !r.Bold && !r.Italics && !r.Strike && !r.SubScript && !r.SuperScript &&
		r.Highlight == "" && r.Color == "" {
		return
	}
	b.WriteString("<w:rPr>")
	if r.Bold {
		b.WriteString("<w:b/>")
	}
	if r.Italics {
		b.WriteString("<w:i/>")
	}
	if r.Strike {
		b.WriteString("<w:strike/>")
	}
	if r.Color != "" {
		b.WriteString(`<w:color w:val="` + escapeXML(r.Color) + `"/>`)
	}
	if r.Highlight != "" {
		b.WriteString(`<w:highlight w:val="` + escapeXML(r.Highlight) + `"/>`)
	}
	// vertAlign is single-valued; subscript wins if both bits are set
	if r.SubScript {
		b.WriteString(`<w:vertAlign w:val="subscript"/>`)
	} else if r.SuperScript {
		b.WriteString(`<w:vertAlign w:val="superscript"/>`)
	}
	b.WriteString("</w:rPr>")
}

func escapeXML(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return ""
	}
	return b.String()
}
