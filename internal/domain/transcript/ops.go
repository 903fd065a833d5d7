package transcript

import (
	"github.com/google/uuid"

	"github.com/avasilyev/tredit/internal/types"
)

// Every edit returns a fresh slice: callers replace the whole array rather
// than patching in place, which keeps concurrent exports working on stable
// snapshots.

// InsertBelow adds an empty segment after index i. The new segment gets a
// fresh random id (never content-derived, so inserts cannot collide),
// inherits the speaker and starts where its predecessor ends.
func InsertBelow(segs []types.Segment, i int) []types.Segment {
	if i < 0 || i >= len(segs) {
		return segs
	}
	cur := segs[i]
	fresh := types.Segment{
		ID:      uuid.NewString(),
		Speaker: cur.Speaker,
		Start:   cur.End,
		End:     cur.End,
	}
	out := make([]types.Segment, 0, len(segs)+1)
	out = append(out, segs[:i+1]...)
	out = append(out, fresh)
	out = append(out, segs[i+1:]...)
	return out
}

// Delete removes the segment at index i.
func Delete(segs []types.Segment, i int) []types.Segment {
	if i < 0 || i >= len(segs) {
		return segs
	}
	out := make([]types.Segment, 0, len(segs)-1)
	out = append(out, segs[:i]...)
	out = append(out, segs[i+1:]...)
	return out
}

// SetText replaces the plain text of the segment with the given id. The rich
// tree is left alone: plain edits may desynchronize it until the next rich
// commit, matching the editor's lenient behavior.
func SetText(segs []types.Segment, id, text string) []types.Segment {
	return update(segs, id, func(s *types.Segment) { s.Text = text })
}

// SetSpeaker replaces the speaker label of the segment with the given id.
func SetSpeaker(segs []types.Segment, id, speaker string) []types.Segment {
	return update(segs, id, func(s *types.Segment) { s.Speaker = speaker })
}

// CommitRich stores a rich-editor commit: the flattened plain text and the
// serialized tree are always written together.
func CommitRich(segs []types.Segment, id, plain string, doc *types.Document) []types.Segment {
	return update(segs, id, func(s *types.Segment) {
		s.Text = plain
		s.RichText = doc
	})
}

func update(segs []types.Segment, id string, fn func(*types.Segment)) []types.Segment {
	out := make([]types.Segment, len(segs))
	copy(out, segs)
	for i := range out {
		if out[i].ID == id {
			fn(&out[i])
		}
	}
	return out
}

// ActiveSegment returns the first segment whose time range contains t, for
// playback-follow consumers.
func ActiveSegment(segs []types.Segment, t float64) (types.Segment, bool) {
	for _, s := range segs {
		if t >= s.Start && t < s.End {
			return s, true
		}
	}
	return types.Segment{}, false
}
