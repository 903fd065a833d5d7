package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/avasilyev/tredit/internal/types"
)

func TestParseFormats(t *testing.T) {
	got, err := ParseFormats([]string{"txt", " DOCX ", "pdf"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != FormatTXT || got[1] != FormatDOCX || got[2] != FormatPDF {
		t.Fatalf("unexpected formats: %v", got)
	}
	if _, err := ParseFormats([]string{"rtf"}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestFiles_WritesAllFormats(t *testing.T) {
	segs := []types.Segment{
		{ID: "a", Speaker: "SPEAKER_0", Start: 0, End: 2, Text: "one"},
		{ID: "b", Speaker: "SPEAKER_1", Start: 2, End: 4, Text: "two"},
	}
	dir := t.TempDir()
	paths, err := Files(context.Background(), dir, "meeting", segs,
		[]Format{FormatTXT, FormatDOCX, FormatPDF}, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 paths, got %v", paths)
	}
	for i, want := range []string{"meeting.txt", "meeting.docx", "meeting.pdf"} {
		if filepath.Base(paths[i]) != want {
			t.Fatalf("path %d = %s, want %s", i, paths[i], want)
		}
		info, err := os.Stat(paths[i])
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s is empty", paths[i])
		}
	}

	b, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	want := "[SPEAKER_0] [00:00:00.000 --> 00:00:02.000]: one\n[SPEAKER_1] [00:00:02.000 --> 00:00:04.000]: two"
	if string(b) != want {
		t.Fatalf("txt content:\n got %q\nwant %q", b, want)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Format("rtf"), nil, false); err == nil {
		t.Fatalf("expected error")
	}
}
