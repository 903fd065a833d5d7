// Package export turns a segment snapshot into downloadable transcript
// files: flat text, an Office Open XML word-processing package, or a
// paginated PDF.
package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/avasilyev/tredit/internal/types"
)

// Format is an export target.
type Format string

const (
	FormatTXT  Format = "txt"
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
)

// ParseFormats normalizes user-supplied format names.
func ParseFormats(names []string) ([]Format, error) {
	out := make([]Format, 0, len(names))
	for _, n := range names {
		switch f := Format(strings.ToLower(strings.TrimSpace(n))); f {
		case FormatTXT, FormatDOCX, FormatPDF:
			out = append(out, f)
		default:
			return nil, fmt.Errorf("unknown export format %q (want txt, docx or pdf)", n)
		}
	}
	return out, nil
}

// Write renders segs to w in the given format.
func Write(w *bytes.Buffer, f Format, segs []types.Segment, withTimestamps bool) error {
	switch f {
	case FormatTXT:
		return WriteTXT(w, segs, withTimestamps)
	case FormatDOCX:
		return WriteDOCX(w, segs, withTimestamps)
	case FormatPDF:
		return WritePDF(w, segs, withTimestamps)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

// Files writes <base>.<format> into dir for each requested format and returns
// the written paths in formats order. Formats run concurrently; each gets its
// own segment snapshot and output buffer, so exports never interfere. Output
// is buffered fully before the file is created: no partial files on disk.
func Files(ctx context.Context, dir, base string, segs []types.Segment, formats []Format, withTimestamps bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	g, _ := errgroup.WithContext(ctx)
	paths := make([]string, len(formats))
	for i, f := range formats {
		i, f := i, f
		snap := snapshot(segs)
		g.Go(func() error {
			var buf bytes.Buffer
			if err := Write(&buf, f, snap, withTimestamps); err != nil {
				return fmt.Errorf("%s export: %w", f, err)
			}
			path := filepath.Join(dir, base+"."+string(f))
			if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func snapshot(segs []types.Segment) []types.Segment {
	out := make([]types.Segment, len(segs))
	copy(out, segs)
	return out
}
