/*
Command ropedemo walks through the basic rope operations on a small text:
building, concatenating, decomposing and splitting.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file in the repository root.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/rope"
	"github.com/npillmayer/rope/chunk"
	"github.com/npillmayer/rope/sumtree"
	"golang.org/x/term"
)

var (
	headline = color.New(color.FgCyan, color.Bold)
	fragment = color.New(color.FgBlue)
	emphasis = color.New(color.FgRed)
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
	hello := rope.FromString("Hello")
	world := rope.FromString(", world!!")

	headline.Println("concatenate")
	text := rope.Concat(hello, world)
	fmt.Printf("text = %q\n", text.String())
	fmt.Printf("summary = %v in %d fragment(s)\n", text.Summary(), text.FragmentCount())

	headline.Println("decompose")
	if first, rest, ok := text.Uncons(); ok {
		fragment.Printf("first fragment = %q\n", first.String())
		fmt.Printf("rest = %v\n", rest.Summary())
	} else {
		emphasis.Println("none")
	}

	headline.Println("split at byte 5")
	left, right, err := rope.Split(text, 5)
	if err != nil {
		emphasis.Fprintf(os.Stderr, "split failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("left  = %q %v\n", left.String(), left.Summary())
	fmt.Printf("right = %q %v\n", right.String(), right.Summary())

	headline.Println("split before first newline")
	multi := rope.Concat(text, rope.FromString("\nsecond line\n"))
	out := multi.SplitWhere(func(s chunk.Summary) bool { return s.Lines > 0 })
	fmt.Printf("outcome = %v\n", out.Kind)
	if out.Kind == sumtree.SplitFound {
		fragment.Printf("boundary fragment = %q\n", out.Boundary.String())
	}
}
