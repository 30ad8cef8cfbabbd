package sumtree

import "iter"

// ForEach walks elements in-order.
//
// Iteration stops early if fn returns false.
func (t *Tree[T, S]) ForEach(fn func(elem T) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	// Explicit work stack instead of recursion: spine length is not bounded
	// by log(n) here.
	type item struct {
		node   *fork[T, S]
		elem   T
		isElem bool
	}
	stack := []item{{node: t.root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.isElem {
			if !fn(top.elem) {
				return
			}
			continue
		}
		if top.node.right != nil {
			stack = append(stack, item{node: top.node.right})
		}
		stack = append(stack, item{elem: top.node.elem, isElem: true})
		if top.node.left != nil {
			stack = append(stack, item{node: top.node.left})
		}
	}
}

// All returns an in-order iterator over all elements.
func (t *Tree[T, S]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.ForEach(yield)
	}
}

// Slice materializes the in-order sequence of elements.
func (t *Tree[T, S]) Slice() []T {
	if t == nil || t.root == nil {
		return nil
	}
	out := make([]T, 0, t.Len())
	t.ForEach(func(e T) bool {
		out = append(out, e)
		return true
	})
	return out
}
