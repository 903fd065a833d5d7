package export

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/avasilyev/tredit/internal/types"
)

func TestWritePDF_ProducesDocument(t *testing.T) {
	segs := []types.Segment{{Speaker: "SPEAKER_0", Start: 0, End: 2, Text: "Hello world"}}

	var buf bytes.Buffer
	if err := WritePDF(&buf, segs, true); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output is not a PDF: %q", buf.Bytes()[:16])
	}
}

func TestWritePDF_PaginatesLongTranscripts(t *testing.T) {
	// One wrapped line per segment at 16pt from y=64 passes the 720pt
	// threshold after 42 lines; 60 segments must spill onto a second page.
	var segs []types.Segment
	for i := 0; i < 60; i++ {
		segs = append(segs, types.Segment{
			Speaker: "SPEAKER_0",
			Start:   float64(i),
			End:     float64(i + 1),
			Text:    fmt.Sprintf("line %d", i),
		})
	}
	var short, long bytes.Buffer
	if err := WritePDF(&short, segs[:2], false); err != nil {
		t.Fatal(err)
	}
	if err := WritePDF(&long, segs, false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(short.String(), "/Count 1") {
		t.Fatalf("short transcript should fit one page")
	}
	if !strings.Contains(long.String(), "/Count 2") {
		t.Fatalf("long transcript should paginate to two pages")
	}
}

func TestWritePDF_StripsRichMarkup(t *testing.T) {
	doc := &types.Document{Root: &types.Node{Type: "root", Children: []*types.Node{
		{Type: types.NodeParagraph, Children: []*types.Node{
			{Type: types.NodeText, Text: "styled", Format: types.FormatBold | types.FormatHighlight},
		}},
	}}}
	segs := []types.Segment{{Speaker: "SPEAKER_0", Text: "styled", RichText: doc}}

	var buf bytes.Buffer
	if err := WritePDF(&buf, segs, false); err != nil {
		t.Fatal(err)
	}
	// Uncompressed text operators carry the literal characters; no tag
	// names may survive the strip.
	if strings.Contains(buf.String(), "<strong>") || strings.Contains(buf.String(), "<mark") {
		t.Fatalf("markup leaked into the PDF")
	}
}

func TestStripMarkup(t *testing.T) {
	cases := []struct{ in, want string }{
		{"<strong><em>hi</em></strong>", "hi"},
		{`<mark style="background-color:#fde68a"><span style="color:#ef4444">hot</span></mark>`, "hot"},
		{"one<br>two", "onetwo"},
		{"plain text", "plain text"},
		{"5 &lt; 6 &amp; more", "5 < 6 & more"},
		{"", ""},
	}
	for _, c := range cases {
		if got := StripMarkup(c.in); got != c.want {
			t.Fatalf("StripMarkup(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
