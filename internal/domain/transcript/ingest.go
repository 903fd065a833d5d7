package transcript

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/avasilyev/tredit/internal/domain/timecode"
	"github.com/avasilyev/tredit/internal/types"
)

// ServiceSegment is one segment as delivered by the transcription service:
// times are lenient H:M:S[.f] strings, there is no native id.
type ServiceSegment struct {
	Speaker string `json:"speaker"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Text    string `json:"text"`
}

// FromService converts a transcription-service batch into segments. Ids are
// synthesized from the raw field values plus the batch position, so two
// otherwise identical segments never collide as long as their indices differ.
func FromService(in []ServiceSegment) []types.Segment {
	out := make([]types.Segment, 0, len(in))
	for i, s := range in {
		out = append(out, types.Segment{
			ID:      fmt.Sprintf("%s-%s-%s-%d", s.Speaker, s.Start, s.End, i),
			Speaker: s.Speaker,
			Start:   timecode.ParseLenient(s.Start),
			End:     timecode.ParseLenient(s.End),
			Text:    s.Text,
		})
	}
	return out
}

// StoredSegment is the persisted shape: times may be numbers (seconds) or
// lenient time strings depending on which writer produced the record, and an
// id may or may not be present.
type StoredSegment struct {
	ID       string          `json:"id,omitempty"`
	Speaker  string          `json:"speaker"`
	Start    json.RawMessage `json:"start"`
	End      json.RawMessage `json:"end"`
	Text     string          `json:"text"`
	RichText *types.Document `json:"rich_text,omitempty"`
}

// FromStore converts persisted segments back to the in-memory model, keeping
// native ids and synthesizing the same speaker-start-end-index scheme as
// FromService when a record has none.
func FromStore(in []StoredSegment) []types.Segment {
	out := make([]types.Segment, 0, len(in))
	for i, s := range in {
		id := s.ID
		if id == "" {
			id = fmt.Sprintf("%s-%s-%s-%d", s.Speaker, rawToken(s.Start), rawToken(s.End), i)
		}
		out = append(out, types.Segment{
			ID:       id,
			Speaker:  s.Speaker,
			Start:    storedSeconds(s.Start),
			End:      storedSeconds(s.End),
			Text:     s.Text,
			RichText: s.RichText,
		})
	}
	return out
}

func storedSeconds(raw json.RawMessage) float64 {
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return timecode.ParseLenient(s)
	}
	logger.WithField("value", string(raw)).Warn("unreadable stored time, defaulting to 0")
	return 0
}

// rawToken yields the bare field value for id synthesis, matching how ids
// looked when the value was still a string.
func rawToken(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	f := storedSeconds(raw)
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Marshal serializes segments to the persistence shape. The rich_text tree
// goes out as a plain nested object and survives Unmarshal unchanged; the
// store never needs to understand it.
func Marshal(segs []types.Segment) ([]byte, error) {
	return json.Marshal(segs)
}

// Unmarshal is the inverse of Marshal.
func Unmarshal(b []byte) ([]types.Segment, error) {
	var out []types.Segment
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode segments: %w", err)
	}
	return out, nil
}

// DecodePayload reads a JSON transcript file: either a bare segment array or
// an envelope with a "segments" field, as written by the service and the
// store respectively.
func DecodePayload(b []byte) ([]types.Segment, error) {
	trimmed := strings.TrimSpace(string(b))
	if strings.HasPrefix(trimmed, "[") {
		var segs []StoredSegment
		if err := json.Unmarshal(b, &segs); err != nil {
			return nil, fmt.Errorf("decode segment array: %w", err)
		}
		return FromStore(segs), nil
	}
	var payload struct {
		Segments []StoredSegment `json:"segments"`
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		return nil, fmt.Errorf("decode transcript payload: %w", err)
	}
	return FromStore(payload.Segments), nil
}
