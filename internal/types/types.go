package types

// Segment is one speaker-attributed, time-bounded span of transcript content.
// Start and End are audio offsets in seconds. Neighboring segments are not
// required to be contiguous or non-overlapping; editing is free-form.
type Segment struct {
	ID      string  `json:"id"`
	Speaker string  `json:"speaker"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`

	// RichText is the structured editor document for this segment, or nil when
	// the segment has never been edited in the rich editor. When present, Text
	// holds the plain-text projection as of the last commit; the two fields are
	// not re-synchronized after independent edits to Text.
	RichText *Document `json:"rich_text,omitempty"`
}

// Transcript is an ordered sequence of segments. Insertion order defines the
// display and playback-jump order and is not necessarily sorted by Start.
type Transcript struct {
	Segments []Segment `json:"segments"`
}

// Document is a serialized rich-text editor state: a root node holding an
// ordered list of paragraphs, each holding an ordered list of text runs.
type Document struct {
	Root *Node `json:"root"`
}

// Node kinds. Anything else is an unknown node and renders to nothing.
const (
	NodeParagraph = "paragraph"
	NodeText      = "text"
)

// Node is one vertex of a rich document tree, discriminated by Type.
// Paragraph nodes carry Children; text nodes carry Text, Format and an
// optional inline Style string.
type Node struct {
	Type     string     `json:"type"`
	Children []*Node    `json:"children,omitempty"`
	Text     string     `json:"text,omitempty"`
	Format   FormatMask `json:"format,omitempty"`
	Style    string     `json:"style,omitempty"`
}

// FormatMask is the inline style bitmask carried by a text run.
type FormatMask int

const (
	FormatBold          FormatMask = 1
	FormatItalic        FormatMask = 2
	FormatStrikethrough FormatMask = 8
	FormatCode          FormatMask = 16
	FormatSubscript     FormatMask = 32
	FormatSuperscript   FormatMask = 64
	FormatHighlight     FormatMask = 128
)

// Has reports whether all bits of f are set in m.
func (m FormatMask) Has(f FormatMask) bool { return m&f == f }
