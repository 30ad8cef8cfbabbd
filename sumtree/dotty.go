package sumtree

import (
	"fmt"
	"io"
)

type nodeids[T Summarized[S], S any] struct {
	idTable map[*fork[T, S]]int
	max     int
}

func newtable[T Summarized[S], S any]() nodeids[T, S] {
	return nodeids[T, S]{
		idTable: make(map[*fork[T, S]]int),
		max:     1,
	}
}

func (ids *nodeids[T, S]) alloc(node *fork[T, S]) int {
	if id := ids.idTable[node]; id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). label renders an element for display; a nil
// label falls back to fmt.Sprint.
func (t *Tree[T, S]) Dot(w io.Writer, label func(T) string) {
	if label == nil {
		label = func(e T) string { return fmt.Sprint(e) }
	}
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	if t != nil && t.root != nil {
		ids := newtable[T, S]()
		dotFork(w, t.root, &ids, label)
	}
	io.WriteString(w, "}\n")
}

func dotFork[T Summarized[S], S any](w io.Writer, n *fork[T, S], ids *nodeids[T, S], label func(T) string) int {
	id := ids.alloc(n)
	fmt.Fprintf(w, "\"%d\" [label=\"%v\\n“%s”\"];\n", id, n.summary, label(n.elem))
	if n.left != nil {
		fmt.Fprintf(w, "\"%d\" -> \"%d\" [label=L];\n", id, dotFork(w, n.left, ids, label))
	}
	if n.right != nil {
		fmt.Fprintf(w, "\"%d\" -> \"%d\" [label=R];\n", id, dotFork(w, n.right, ids, label))
	}
	return id
}
