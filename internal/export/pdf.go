package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/avasilyev/tredit/internal/domain/richtext"
	"github.com/avasilyev/tredit/internal/domain/timecode"
	"github.com/avasilyev/tredit/internal/types"
)

// Letter page geometry, in points.
const (
	pdfLeftMargin   = 48.0
	pdfTopMargin    = 64.0
	pdfLineHeight   = 16.0
	pdfContentWidth = 515.0
	pdfPageBottom   = 720.0
)

// WritePDF writes a paginated plain-text PDF. The PDF path is style-blind by
// trade-off: rich content is rendered to HTML and stripped back down to
// characters, so formatting survives in DOCX but not here.
func WritePDF(w io.Writer, segs []types.Segment, withTimestamps bool) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.AddPage()

	y := pdfTopMargin
	for _, s := range segs {
		body := s.Text
		if s.RichText != nil {
			body = richtext.RenderHTML(s.RichText)
		}
		plain := StripMarkup(body)

		prefix := "[" + s.Speaker + "]"
		if withTimestamps {
			prefix += fmt.Sprintf(" [%s --> %s]", timecode.Format(s.Start), timecode.Format(s.End))
		}
		prefix += ": "

		for _, block := range strings.Split(prefix+plain, "\n") {
			for _, line := range pdf.SplitText(block, pdfContentWidth) {
				if y > pdfPageBottom {
					pdf.AddPage()
					y = pdfTopMargin
				}
				pdf.Text(pdfLeftMargin, y, line)
				y += pdfLineHeight
			}
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
