package textfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/rope"
	"github.com/npillmayer/rope/chunk"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// Progress describes one loaded file fragment. It is broadcast to all
// subscribers of a Loader while the file is read.
type Progress struct {
	Offset int64 // byte position of the fragment within the file
	Bytes  int   // number of bytes loaded for this fragment
}

// Loader reads a text file fragment-wise and assembles the fragments into a
// rope. Progress is broadcast to subscribers registered with Events.
type Loader struct {
	path     string
	info     os.FileInfo
	file     *os.File
	cast     *caster.Caster
	fragSize int64
	done     bool
}

// Load reads a file, which must be a text file, and loads it as a rope.
// Clients may indicate a recommended fragment length; fragSize 0 lets Load
// pick a sensible default from the file size.
func Load(name string, fragSize int64) (rope.Rope, error) {
	l, err := NewLoader(name, fragSize)
	if err != nil {
		return rope.Rope{}, err
	}
	defer l.Close()
	return l.Rope()
}

// NewLoader opens a text file for fragment-wise loading. Clients interested
// in load progress should subscribe with Events before calling Rope.
func NewLoader(name string, fragSize int64) (*Loader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file is not a regular file")
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	l := &Loader{
		path:     name,
		info:     fi,
		file:     file,
		cast:     caster.New(nil), // broadcasts Progress when fragments are loaded
		fragSize: pickFragSize(fragSize, fi.Size()),
	}
	tracer().Debugf("loading %q (%d bytes) with fragment size %d", name, fi.Size(), l.fragSize)
	return l, nil
}

// pickFragSize chooses a fragment size depending on file size, unless the
// client provided a reasonable one.
func pickFragSize(fragSize, size int64) int64 {
	if fragSize > 0 && fragSize <= tenKb {
		return fragSize
	}
	switch {
	case size < 64:
		fragSize = size
	case size < 1024:
		fragSize = 64
	case size < tenKb:
		fragSize = 256
	case size < hundredKb:
		fragSize = 512
	case size < oneMb:
		fragSize = twoKb
	default:
		fragSize = sixKb
	}
	if fragSize <= 0 {
		fragSize = 1
	}
	return fragSize
}

// Events subscribes to load progress. The returned channel is closed when
// the load completes, the loader is closed or ctx is cancelled.
func (l *Loader) Events(ctx context.Context) (<-chan Progress, error) {
	if l == nil || l.cast == nil {
		return nil, rope.ErrIllegalArguments
	}
	if ctx == nil {
		ctx = context.Background()
	}
	sub, ok := l.cast.Sub(ctx, 1)
	if !ok {
		return nil, rope.ErrIllegalArguments
	}
	out := make(chan Progress)
	go func() {
		defer close(out)
		for m := range sub {
			p, ok := m.(Progress)
			if !ok {
				continue
			}
			select {
			case out <- p:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Rope reads all fragments of the file and assembles them into a rope.
// Every loaded fragment is published to subscribers.
//
// Fragment boundaries are shifted so that no fragment ends in the middle of
// a UTF-8 rune; trailing bytes of a cut rune are carried over to the next
// fragment.
func (l *Loader) Rope() (rope.Rope, error) {
	if l == nil || l.file == nil {
		return rope.Rope{}, rope.ErrIllegalArguments
	}
	if l.done {
		return rope.Rope{}, rope.ErrRopeCompleted
	}
	l.done = true
	b := rope.NewBuilder()
	size := l.info.Size()
	buf := make([]byte, l.fragSize)
	var carry []byte
	var pos int64
	for pos < size {
		n := l.fragSize
		if pos+n > size {
			n = size - pos
		}
		cnt, err := l.file.ReadAt(buf[:n], pos)
		if err != nil && err != io.EOF {
			return rope.Rope{}, fmt.Errorf("error loading text fragment: %w", err)
		} else if int64(cnt) < n {
			return rope.Rope{}, fmt.Errorf("not all bytes loaded for text fragment")
		}
		frag := append(carry, buf[:cnt]...)
		frag, carry = trimPartialRune(frag)
		if err := b.AppendBytes(frag); err != nil {
			return rope.Rope{}, err
		}
		l.cast.Pub(Progress{Offset: pos, Bytes: cnt})
		pos += int64(cnt)
	}
	if len(carry) > 0 {
		return rope.Rope{}, chunk.ErrInvalidUTF8
	}
	l.cast.TryPub(Progress{Offset: size, Bytes: 0}) // final marker
	return b.Rope(), nil
}

// Close releases the file handle and stops broadcasting.
func (l *Loader) Close() error {
	if l == nil {
		return nil
	}
	if l.cast != nil {
		l.cast.Close()
		l.cast = nil
	}
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// trimPartialRune splits off an incomplete trailing UTF-8 rune, to be
// prepended to the next fragment.
func trimPartialRune(frag []byte) (complete, rest []byte) {
	i := len(frag)
	for i > 0 && !utf8.RuneStart(frag[i-1]) {
		i--
	}
	if i == 0 {
		return nil, frag
	}
	i-- // i now indexes the start byte of the last rune
	if utf8.FullRune(frag[i:]) {
		return frag, nil
	}
	return frag[:i], frag[i:]
}
