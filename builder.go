package rope

import (
	"unicode/utf8"

	"github.com/npillmayer/rope/chunk"
	"github.com/npillmayer/rope/sumtree"
)

// Builder incrementally stages text and finalizes it into a Rope.
//
// Builder collects UTF-8 text as fixed-size chunks and materializes the rope
// only when Rope() is called. Staging in flat slices keeps appends cheap and
// lets the final build produce a balanced tree in one pass.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	// front keeps prepended chunks in reverse logical order.
	front []chunk.Chunk
	// back keeps appended chunks in logical order.
	back []chunk.Chunk

	done  bool
	dirty bool
	rope  Rope
}

// NewBuilder creates a new and empty rope builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Rope returns the rope built from all staged fragments.
//
// It is illegal to continue adding fragments after Rope has been called, but
// Rope may be called multiple times.
func (b *Builder) Rope() Rope {
	if b == nil {
		return Rope{}
	}
	if b.dirty {
		b.rope = b.buildRope()
		b.dirty = false
	}
	b.done = true
	if b.rope.IsVoid() {
		tracer().Debugf("rope builder: rope is void")
	}
	return b.rope
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.rope = Rope{}
}

// AppendString appends UTF-8 text to the staged build.
func (b *Builder) AppendString(text string) error {
	if !utf8.ValidString(text) {
		return chunk.ErrInvalidUTF8
	}
	return b.AppendBytes([]byte(text))
}

// PrependString prepends UTF-8 text to the staged build.
func (b *Builder) PrependString(text string) error {
	if !utf8.ValidString(text) {
		return chunk.ErrInvalidUTF8
	}
	return b.PrependBytes([]byte(text))
}

// AppendBytes appends UTF-8 bytes to the staged build.
func (b *Builder) AppendBytes(text []byte) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrRopeCompleted
	}
	chunks, err := splitToChunks(text)
	if err != nil {
		return err
	}
	for _, c := range chunks {
		if len(b.back) > 0 {
			last := len(b.back) - 1
			if b.back[last].Len()+c.Len() <= chunk.MaxJoin {
				b.back[last] = chunk.Join(b.back[last], c)
				continue
			}
		}
		b.back = append(b.back, c)
	}
	if len(chunks) > 0 {
		b.dirty = true
	}
	return nil
}

// PrependBytes prepends UTF-8 bytes to the staged build.
func (b *Builder) PrependBytes(text []byte) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrRopeCompleted
	}
	chunks, err := splitToChunks(text)
	if err != nil {
		return err
	}
	// front is stored in reverse logical order.
	for i := len(chunks) - 1; i >= 0; i-- {
		b.front = append(b.front, chunks[i])
	}
	if len(chunks) > 0 {
		b.dirty = true
	}
	return nil
}

// AppendChunk appends a pre-built chunk.
func (b *Builder) AppendChunk(c chunk.Chunk) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrRopeCompleted
	}
	if c.IsEmpty() {
		return nil
	}
	if len(b.back) > 0 {
		last := len(b.back) - 1
		if b.back[last].Len()+c.Len() <= chunk.MaxJoin {
			b.back[last] = chunk.Join(b.back[last], c)
			b.dirty = true
			return nil
		}
	}
	b.back = append(b.back, c)
	b.dirty = true
	return nil
}

// PrependChunk prepends a pre-built chunk.
func (b *Builder) PrependChunk(c chunk.Chunk) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrRopeCompleted
	}
	if c.IsEmpty() {
		return nil
	}
	b.front = append(b.front, c)
	b.dirty = true
	return nil
}

func (b *Builder) buildRope() Rope {
	parts := b.orderedChunks()
	if len(parts) == 0 {
		return Rope{}
	}
	tree, err := sumtree.FromSlice(treeConfig(), parts)
	assert(err == nil, "builder: sumtree.FromSlice failed")
	return fromTree(tree)
}

func (b *Builder) orderedChunks() []chunk.Chunk {
	total := len(b.front) + len(b.back)
	if total == 0 {
		return nil
	}
	out := make([]chunk.Chunk, 0, total)
	for i := len(b.front) - 1; i >= 0; i-- {
		out = append(out, b.front[i])
	}
	out = append(out, b.back...)
	return out
}

// splitToChunks splits UTF-8 bytes into chunk-sized pieces.
//
// Boundaries are adjusted so no chunk starts or ends in the middle of a UTF-8
// rune.
func splitToChunks(text []byte) ([]chunk.Chunk, error) {
	if len(text) == 0 {
		return nil, nil
	}
	if !utf8.Valid(text) {
		return nil, chunk.ErrInvalidUTF8
	}
	parts := make([]chunk.Chunk, 0, 1+len(text)/chunk.MaxJoin)
	for i := 0; i < len(text); {
		end := i + chunk.MaxJoin
		if end >= len(text) {
			end = len(text)
		} else {
			for end > i && !utf8.RuneStart(text[end]) {
				end--
			}
			if end == i {
				return nil, chunk.ErrInvalidUTF8
			}
		}
		c, err := chunk.NewBytes(text[i:end])
		if err != nil {
			return nil, err
		}
		parts = append(parts, c)
		i = end
	}
	return parts, nil
}
