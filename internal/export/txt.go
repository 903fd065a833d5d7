package export

import (
	"io"

	"github.com/avasilyev/tredit/internal/domain/transcript"
	"github.com/avasilyev/tredit/internal/types"
)

// WriteTXT writes the flat-text rendition, delegating to the line-grammar
// serializer. Rich formatting is flattened to the plain Text field.
func WriteTXT(w io.Writer, segs []types.Segment, withTimestamps bool) error {
	_, err := io.WriteString(w, transcript.Serialize(segs, withTimestamps))
	return err
}
