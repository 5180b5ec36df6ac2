// Package debug provides a human-readable dump of a result tree, for tests
// and interactive exploration. It has no direct teacher file to adapt
// (CUE's equivalent, the now-deleted cue/debug.go, dumped CUE's own
// evaluated-value representation) but fills the same role against the
// generic token.Node this module builds instead, and gives
// github.com/kr/pretty — a teacher direct dependency with no other home in
// this module — a concrete use.
package debug

import (
	"fmt"

	"github.com/kr/pretty"

	"github.com/srccircumflex/syntax-parser-prototype/token"
)

// node is an intermediate, pretty.Print-friendly shape mirroring a
// token.Node's structure without its internal back-pointers (Parent,
// Owner), which would otherwise make pretty.Print recurse into cycles.
type node struct {
	Phrase string
	Start  string
	Inner  []any
	End    string
	Extras map[string]any
}

func render(n *token.Node) node {
	out := node{
		Phrase: n.Phrase.Name(),
		Start:  fmt.Sprintf("%s %q", n.Start.Kind, n.Start.Content),
		End:    fmt.Sprintf("%s %q", n.End.Kind, n.End.Content),
	}
	for _, it := range n.Inner {
		if it.Child != nil {
			out.Inner = append(out.Inner, render(it.Child))
		} else {
			out.Inner = append(out.Inner, fmt.Sprintf("%s %q", it.Token.Kind, it.Token.Content))
		}
	}
	if n.Extras.Len() > 0 {
		out.Extras = make(map[string]any, n.Extras.Len())
		for _, k := range n.Extras.Keys() {
			v, _ := n.Extras.Get(k)
			out.Extras[k] = v
		}
	}
	return out
}

// Dump renders n as an indented, recursive structure suitable for test
// failure output and manual inspection.
func Dump(n *token.Node) string {
	return pretty.Sprint(render(n))
}
