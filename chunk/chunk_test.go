package chunk

import (
	"errors"
	"testing"
)

func TestNewCountsRunesAndLines(t *testing.T) {
	c, err := New("héllo\nwörld\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := c.Summary()
	if s.Bytes != 14 || s.Chars != 12 || s.Lines != 2 {
		t.Fatalf("unexpected summary %v", s)
	}
}

func TestNewRejectsInvalidUTF8(t *testing.T) {
	_, err := NewBytes([]byte{'a', 0xff, 'b'})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestEmptyChunk(t *testing.T) {
	c, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsEmpty() || c.Len() != 0 {
		t.Fatalf("unexpected empty chunk state")
	}
	if c.Summary() != (Summary{}) {
		t.Fatalf("expected zero summary, got %v", c.Summary())
	}
}

func TestJoinAddsCounts(t *testing.T) {
	a, _ := New("Hello")
	b, _ := New(", wörld!\n")
	j := Join(a, b)
	if j.String() != "Hello, wörld!\n" {
		t.Fatalf("unexpected joined text %q", j.String())
	}
	want := Monoid{}.Add(a.Summary(), b.Summary())
	if j.Summary() != want {
		t.Fatalf("summary %v, want %v", j.Summary(), want)
	}
}

func TestSplitAt(t *testing.T) {
	c, _ := New("Hello, world!!")
	l, r, err := c.SplitAt(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.String() != "Hello" || r.String() != ", world!!" {
		t.Fatalf("unexpected halves %q / %q", l.String(), r.String())
	}
	if got := (Monoid{}).Add(l.Summary(), r.Summary()); got != c.Summary() {
		t.Fatalf("halves do not sum up: %v vs %v", got, c.Summary())
	}
}

func TestSplitAtEnds(t *testing.T) {
	c, _ := New("abc")
	l, r, err := c.SplitAt(0)
	if err != nil || !l.IsEmpty() || r.String() != "abc" {
		t.Fatalf("unexpected split at 0: %q/%q err=%v", l.String(), r.String(), err)
	}
	l, r, err = c.SplitAt(3)
	if err != nil || l.String() != "abc" || !r.IsEmpty() {
		t.Fatalf("unexpected split at end: %q/%q err=%v", l.String(), r.String(), err)
	}
}

func TestSplitAtRejectsOutOfBounds(t *testing.T) {
	c, _ := New("abc")
	if _, _, err := c.SplitAt(4); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, _, err := c.SplitAt(-1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected ErrIndexOutOfBounds, got %v", err)
	}
}

func TestSplitAtRejectsMidRune(t *testing.T) {
	c, _ := New("ö") // 2 bytes
	if _, _, err := c.SplitAt(1); !errors.Is(err, ErrNotCharBoundary) {
		t.Fatalf("expected ErrNotCharBoundary, got %v", err)
	}
}

func TestIsCharBoundary(t *testing.T) {
	c, _ := New("aö")
	for i, want := range []bool{true, true, false, true} {
		if got := c.IsCharBoundary(i); got != want {
			t.Fatalf("boundary at %d = %v, want %v", i, got, want)
		}
	}
	if c.IsCharBoundary(-1) || c.IsCharBoundary(4) {
		t.Fatalf("out-of-range offsets must not be boundaries")
	}
}
