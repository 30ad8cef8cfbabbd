package chunk

import (
	"strings"
	"unicode/utf8"
)

// MaxJoin is the byte threshold under which two adjacent chunks are merged
// during rope concatenation. Merging bounds fragmentation from repeated
// small appends (e.g. single-character inserts) at the cost of touching the
// boundary chunks on every concatenation.
const MaxJoin = 4096

// Chunk stores a contiguous run of UTF-8 text with cached rune and newline
// counts, so summaries never rescan the text.
//
// The chunk is immutable: editing operations return a new Chunk.
type Chunk struct {
	text  string
	chars uint64
	lines uint64
}

// New creates a chunk from UTF-8 text, counting runes and newlines once.
//
// Returns an error if the text is not valid UTF-8.
func New(text string) (Chunk, error) {
	if !utf8.ValidString(text) {
		return Chunk{}, ErrInvalidUTF8
	}
	return count(text), nil
}

// NewBytes creates a chunk from UTF-8 bytes.
func NewBytes(text []byte) (Chunk, error) {
	return New(string(text))
}

func count(text string) Chunk {
	return Chunk{
		text:  text,
		chars: uint64(utf8.RuneCountInString(text)),
		lines: uint64(strings.Count(text, "\n")),
	}
}

// Len returns the text length in bytes.
func (c Chunk) Len() int {
	return len(c.text)
}

// IsEmpty reports whether the chunk has no bytes.
func (c Chunk) IsEmpty() bool {
	return len(c.text) == 0
}

// String returns the chunk text.
func (c Chunk) String() string {
	return c.text
}

// Bytes returns a copied byte slice of the chunk text.
func (c Chunk) Bytes() []byte {
	return []byte(c.text)
}

// IsCharBoundary reports whether offset is a UTF-8 boundary inside this chunk.
func (c Chunk) IsCharBoundary(offset int) bool {
	if offset == len(c.text) {
		return true
	}
	if offset < 0 || offset > len(c.text) {
		return false
	}
	return utf8.RuneStart(c.text[offset])
}

// Join concatenates two chunks, adding counts instead of rescanning.
//
// Join does not enforce MaxJoin; the merge policy belongs to the caller.
func Join(left, right Chunk) Chunk {
	return Chunk{
		text:  left.text + right.text,
		chars: left.chars + right.chars,
		lines: left.lines + right.lines,
	}
}

// SplitAt splits a chunk into left/right chunks at byte offset mid.
//
// mid must lie on a rune boundary; the left half is recounted and the right
// half derived by subtraction.
func (c Chunk) SplitAt(mid int) (Chunk, Chunk, error) {
	if mid < 0 || mid > len(c.text) {
		return Chunk{}, Chunk{}, ErrIndexOutOfBounds
	}
	if !c.IsCharBoundary(mid) {
		return Chunk{}, Chunk{}, ErrNotCharBoundary
	}
	left := count(c.text[:mid])
	right := Chunk{
		text:  c.text[mid:],
		chars: c.chars - left.chars,
		lines: c.lines - left.lines,
	}
	return left, right, nil
}
