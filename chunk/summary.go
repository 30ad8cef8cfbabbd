package chunk

import "fmt"

// Summary aggregates chunk-level text metrics for tree routing.
//
// It is the product of three numeric monoids under addition; combining is
// component-wise and the zero value is the neutral element.
type Summary struct {
	Bytes uint64
	Chars uint64
	Lines uint64
}

func (s Summary) String() string {
	return fmt.Sprintf("(%dB %dc %dnl)", s.Bytes, s.Chars, s.Lines)
}

// Summary returns aggregate metrics for this chunk.
func (c Chunk) Summary() Summary {
	return Summary{
		Bytes: uint64(len(c.text)),
		Chars: c.chars,
		Lines: c.lines,
	}
}

// Monoid aggregates chunk summaries for measured-tree nodes.
type Monoid struct{}

// Zero returns the neutral summary value.
func (Monoid) Zero() Summary { return Summary{} }

// Add combines two summaries.
func (Monoid) Add(left, right Summary) Summary {
	return Summary{
		Bytes: left.Bytes + right.Bytes,
		Chars: left.Chars + right.Chars,
		Lines: left.Lines + right.Lines,
	}
}
