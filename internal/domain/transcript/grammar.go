package transcript

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/avasilyev/tredit/internal/domain/timecode"
	"github.com/avasilyev/tredit/internal/types"
)

// One segment per line: [SPEAKER_n] [HH:MM:SS.mmm --> HH:MM:SS.mmm]: text
var lineRE = regexp.MustCompile(`^\s*\[(SPEAKER_\d+)]\s+\[(\d{2}:\d{2}:\d{2}\.\d{3})\s*-->\s*(\d{2}:\d{2}:\d{2}\.\d{3})]:\s*(.+?)\s*$`)

// Parse reads a flat-text transcript into segments. Lines that do not match
// the grammar are dropped, not errors: transcripts arrive hand-edited and one
// bad line should not abort the import. Ids are parse-order (`seg_<n>`) and
// not stable across re-parses of an edited file.
func Parse(raw string) []types.Segment {
	var out []types.Segment
	for _, line := range strings.Split(raw, "\n") {
		m := lineRE.FindStringSubmatch(line)
		if m == nil {
			if strings.TrimSpace(line) != "" {
				logger.WithField("line", line).Debug("transcript line does not match grammar, dropping")
			}
			continue
		}
		out = append(out, types.Segment{
			ID:      fmt.Sprintf("seg_%d", len(out)),
			Speaker: m[1],
			Start:   timecode.Parse(m[2]),
			End:     timecode.Parse(m[3]),
			Text:    m[4],
		})
	}
	return out
}

// Serialize renders segments back to the flat line format, one per line in
// array order. Only the plain Text field is used; rich formatting has no
// channel in flat text.
func Serialize(segs []types.Segment, withTimestamps bool) string {
	lines := make([]string, 0, len(segs))
	for _, s := range segs {
		if withTimestamps {
			lines = append(lines, fmt.Sprintf("[%s] [%s --> %s]: %s",
				s.Speaker, timecode.Format(s.Start), timecode.Format(s.End), s.Text))
		} else {
			lines = append(lines, fmt.Sprintf("[%s]: %s", s.Speaker, s.Text))
		}
	}
	return strings.Join(lines, "\n")
}
