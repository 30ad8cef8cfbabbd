package sumtree

import (
	"errors"
	"strings"
	"testing"
)

// span is a minimal measured element for tests: a string measured by byte
// length and element count.
type span string

func (s span) Summary() weight {
	return weight{Bytes: uint64(len(s)), Items: 1}
}

type weight struct {
	Bytes uint64
	Items uint64
}

type weightMonoid struct{}

func (weightMonoid) Zero() weight { return weight{} }

func (weightMonoid) Add(left, right weight) weight {
	return weight{Bytes: left.Bytes + right.Bytes, Items: left.Items + right.Items}
}

func sameWeight(a, b weight) bool { return a == b }

func cfgWith(o Ownership) Config[span, weight] {
	return Config[span, weight]{Monoid: weightMonoid{}, Ownership: o}
}

func spanTree(t *testing.T, o Ownership, elems ...span) *Tree[span, weight] {
	t.Helper()
	tree, err := FromSlice(cfgWith(o), elems)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tree
}

func joined(tree *Tree[span, weight]) string {
	var sb strings.Builder
	tree.ForEach(func(s span) bool {
		sb.WriteString(string(s))
		return true
	})
	return sb.String()
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config[span, weight]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for missing monoid, got %v", err)
	}
	_, err = New(Config[span, weight]{Monoid: weightMonoid{}, Ownership: Ownership(7)})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for unknown ownership, got %v", err)
	}
}

func TestEmptyTree(t *testing.T) {
	tree, err := New(cfgWith(Shared))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Fatalf("unexpected empty tree state len=%d height=%d", tree.Len(), tree.Height())
	}
	if tree.Summary() != (weight{}) {
		t.Fatalf("expected zero summary, got %v", tree.Summary())
	}
	if err := tree.Check(sameWeight); err != nil {
		t.Fatalf("expected empty tree to validate, got %v", err)
	}
}

func TestFromSliceKeepsOrder(t *testing.T) {
	tree := spanTree(t, Shared, "a", "b", "c", "d", "e")
	if got := joined(tree); got != "abcde" {
		t.Fatalf("unexpected order: %q", got)
	}
	if tree.Len() != 5 {
		t.Fatalf("unexpected element count: %d", tree.Len())
	}
	if err := tree.Check(sameWeight); err != nil {
		t.Fatalf("summaries invalid after bulk build: %v", err)
	}
}

func TestFromSliceIsBalanced(t *testing.T) {
	elems := make([]span, 1024)
	for i := range elems {
		elems[i] = "x"
	}
	tree, err := FromSlice(cfgWith(Shared), elems)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h := tree.Height(); h != 11 {
		t.Fatalf("expected height 11 for 1024 elements, got %d", h)
	}
}

func TestConcatEmptyIsIdentity(t *testing.T) {
	empty, err := New(cfgWith(Shared))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tree := spanTree(t, Shared, "a", "b")
	out, err := empty.Concat(tree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != tree {
		t.Fatalf("expected right operand to be returned unchanged")
	}
	out, err = tree.Concat(empty)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != tree {
		t.Fatalf("expected left operand to be returned unchanged")
	}
}

func TestConcatOrderAndSummary(t *testing.T) {
	for _, o := range []Ownership{Shared, Exclusive} {
		a := spanTree(t, o, "He", "l", "lo")
		b := spanTree(t, o, ", ", "wor", "ld", "!!")
		want := weightMonoid{}.Add(a.Summary(), b.Summary())
		out, err := a.Concat(b)
		if err != nil {
			t.Fatalf("[%s] unexpected error: %v", o, err)
		}
		if got := joined(out); got != "Hello, world!!" {
			t.Fatalf("[%s] unexpected sequence: %q", o, got)
		}
		if out.Summary() != want {
			t.Fatalf("[%s] summary %v, want %v", o, out.Summary(), want)
		}
		if err := out.Check(sameWeight); err != nil {
			t.Fatalf("[%s] summaries invalid after concat: %v", o, err)
		}
	}
}

func TestConcatIsAssociative(t *testing.T) {
	a := spanTree(t, Shared, "ab", "c")
	b := spanTree(t, Shared, "de")
	c := spanTree(t, Shared, "f", "gh", "i")
	ab, err := a.Concat(b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	abc1, err := ab.Concat(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bc, err := b.Concat(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	abc2, err := a.Concat(bc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if joined(abc1) != joined(abc2) {
		t.Fatalf("grouping changes the sequence: %q vs %q", joined(abc1), joined(abc2))
	}
	if abc1.Summary() != abc2.Summary() {
		t.Fatalf("grouping changes the summary: %v vs %v", abc1.Summary(), abc2.Summary())
	}
}

func TestConcatRejectsMixedOwnership(t *testing.T) {
	a := spanTree(t, Shared, "a")
	b := spanTree(t, Exclusive, "b")
	_, err := a.Concat(b)
	if !errors.Is(err, ErrIncompatibleTrees) {
		t.Fatalf("expected ErrIncompatibleTrees, got %v", err)
	}
}

func TestConcatSharedLeavesOperandsIntact(t *testing.T) {
	a := spanTree(t, Shared, "a", "b", "c")
	b := spanTree(t, Shared, "d", "e")
	if _, err := a.Concat(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := joined(a); got != "abc" {
		t.Fatalf("left operand changed: %q", got)
	}
	if got := joined(b); got != "de" {
		t.Fatalf("right operand changed: %q", got)
	}
	if err := a.Check(sameWeight); err != nil {
		t.Fatalf("left operand invalid after concat: %v", err)
	}
	if err := b.Check(sameWeight); err != nil {
		t.Fatalf("right operand invalid after concat: %v", err)
	}
}

func TestUnconsDrains(t *testing.T) {
	for _, o := range []Ownership{Shared, Exclusive} {
		tree := spanTree(t, o, "a", "b", "c", "d")
		var got []string
		for {
			e, rest, ok := tree.Uncons()
			if !ok {
				break
			}
			got = append(got, string(e))
			if err := rest.Check(sameWeight); err != nil {
				t.Fatalf("[%s] remainder invalid: %v", o, err)
			}
			tree = rest
		}
		if strings.Join(got, "") != "abcd" {
			t.Fatalf("[%s] unexpected drain order: %v", o, got)
		}
		if !tree.IsEmpty() {
			t.Fatalf("[%s] expected empty remainder", o)
		}
	}
}

func TestUnsnocDrains(t *testing.T) {
	for _, o := range []Ownership{Shared, Exclusive} {
		tree := spanTree(t, o, "a", "b", "c", "d")
		var got []string
		for {
			rest, e, ok := tree.Unsnoc()
			if !ok {
				break
			}
			got = append(got, string(e))
			tree = rest
		}
		if strings.Join(got, "") != "dcba" {
			t.Fatalf("[%s] unexpected drain order: %v", o, got)
		}
	}
}

func TestUnconsRoundTrip(t *testing.T) {
	orig := spanTree(t, Shared, "He", "llo", ", ", "world")
	first, rest, ok := orig.Uncons()
	if !ok {
		t.Fatalf("uncons on non-empty tree failed")
	}
	single, err := Singleton(cfgWith(Shared), first)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := single.Concat(rest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if joined(back) != joined(orig) || back.Summary() != orig.Summary() {
		t.Fatalf("round trip lost content: %q vs %q", joined(back), joined(orig))
	}
}

func TestUnsnocRoundTrip(t *testing.T) {
	orig := spanTree(t, Shared, "He", "llo", ", ", "world")
	rest, last, ok := orig.Unsnoc()
	if !ok {
		t.Fatalf("unsnoc on non-empty tree failed")
	}
	single, err := Singleton(cfgWith(Shared), last)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := rest.Concat(single)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if joined(back) != joined(orig) || back.Summary() != orig.Summary() {
		t.Fatalf("round trip lost content: %q vs %q", joined(back), joined(orig))
	}
}

func TestUnconsSharedLeavesOperandIntact(t *testing.T) {
	tree := spanTree(t, Shared, "a", "b", "c")
	e, rest, ok := tree.Uncons()
	if !ok || string(e) != "a" {
		t.Fatalf("unexpected first element %q", e)
	}
	if got := joined(rest); got != "bc" {
		t.Fatalf("unexpected remainder: %q", got)
	}
	if got := joined(tree); got != "abc" {
		t.Fatalf("operand changed: %q", got)
	}
}

func TestCloneExclusiveIsIndependent(t *testing.T) {
	tree := spanTree(t, Exclusive, "a", "b", "c")
	clone := tree.Clone()
	if _, _, ok := tree.Uncons(); !ok {
		t.Fatalf("uncons on non-empty tree failed")
	}
	if got := joined(clone); got != "abc" {
		t.Fatalf("clone affected by consuming the original: %q", got)
	}
	if err := clone.Check(sameWeight); err != nil {
		t.Fatalf("clone invalid: %v", err)
	}
}

func TestCheckDetectsCorruptedSummary(t *testing.T) {
	tree := spanTree(t, Shared, "a", "b", "c")
	tree.root.summary = weight{Bytes: 99, Items: 99}
	err := tree.Check(sameWeight)
	if !errors.Is(err, ErrSummaryMismatch) {
		t.Fatalf("expected ErrSummaryMismatch, got %v", err)
	}
}

func TestNilReceiverIsHarmless(t *testing.T) {
	var tree *Tree[span, weight]
	if !tree.IsEmpty() {
		t.Fatalf("nil tree must be empty")
	}
	if tree.Summary() != (weight{}) {
		t.Fatalf("expected zero summary for nil tree, got %v", tree.Summary())
	}
	if tree.Height() != 0 || tree.Len() != 0 {
		t.Fatalf("unexpected nil tree state len=%d height=%d", tree.Len(), tree.Height())
	}
	if tree.Slice() != nil {
		t.Fatalf("expected nil slice for nil tree")
	}
	out := tree.SplitWhere(func(weight) bool { return true })
	if out.Kind != SplitAllLeft {
		t.Fatalf("expected all-left for nil tree, got %v", out.Kind)
	}
	if out.Left == nil || out.Right == nil {
		t.Fatalf("split partitions must be non-nil trees")
	}
	if !out.Left.IsEmpty() || !out.Right.IsEmpty() {
		t.Fatalf("split partitions of a nil tree must be empty")
	}
}

func TestSingleton(t *testing.T) {
	tree, err := Singleton(cfgWith(Shared), span("only"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Len() != 1 || tree.Summary().Bytes != 4 {
		t.Fatalf("unexpected singleton state: len=%d summary=%v", tree.Len(), tree.Summary())
	}
}
