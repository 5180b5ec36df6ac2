// Package reader implements the token tree iteration views of spec section
// 4.9: Thereafter, Therebefore, Inner, Branch and NodePath, each with a
// reversed form. It is grounded on cue/ast/walk.go's Visitor/Walk
// depth-first traversal shape, reshaped from a callback-driven
// Walk(node, before, after) into an explicit, restartable Iterator —
// "coroutine-like iteration" per the design notes — so callers can Next()
// one token at a time instead of handing control to a callback.
package reader

import (
	"github.com/srccircumflex/syntax-parser-prototype/errors"
	"github.com/srccircumflex/syntax-parser-prototype/token"
)

// Iterator yields tokens one at a time in a fixed direction. Next returns
// errors.EndOfInput (spec section 4.9, "Iteration past EOF raises
// end-of-input") once exhausted.
type Iterator interface {
	Next() (*token.Token, error)
}

// flatten produces the full pre-order sequence of leaf tokens reachable
// from root: every Start, recursively every child's flatten, every Inner
// leaf, and every End — the same sequence PreOrderContent concatenates the
// Content of (token.Node.PreOrderContent).
func flatten(n *token.Node) []*token.Token {
	var out []*token.Token
	var walk func(n *token.Node)
	walk = func(n *token.Node) {
		out = append(out, n.Start)
		for _, it := range n.Inner {
			if it.Child != nil {
				walk(it.Child)
			} else {
				out = append(out, it.Token)
			}
		}
		if n.End != nil {
			out = append(out, n.End)
		}
	}
	walk(n)
	return out
}

// documentOrder walks from the root of anchor's tree (following Parent
// pointers up to the node with no parent) and returns the full pre-order
// token sequence plus the index of anchor within it.
func documentOrder(anchor *token.Token) ([]*token.Token, int) {
	owner := anchor.Owner
	if owner == nil {
		owner = anchor.Node
	}
	root := owner
	for root.Parent != nil {
		root = root.Parent
	}
	seq := flatten(root)
	for i, t := range seq {
		if t == anchor {
			return seq, i
		}
	}
	return seq, -1
}

type sliceIterator struct {
	seq []*token.Token
	pos int // index of the next token to return
	dir int // +1 forward, -1 backward
}

func (it *sliceIterator) Next() (*token.Token, error) {
	if it.pos < 0 || it.pos >= len(it.seq) {
		return nil, errors.New(errors.EndOfInput, token.Position{}, "no more tokens in this direction")
	}
	t := it.seq[it.pos]
	it.pos += it.dir
	return t, nil
}

// Thereafter returns every token strictly after anchor in document order.
func Thereafter(anchor *token.Token) Iterator {
	seq, i := documentOrder(anchor)
	if i < 0 {
		return &sliceIterator{seq: nil}
	}
	return &sliceIterator{seq: seq, pos: i + 1, dir: 1}
}

// ThereafterReversed returns Thereafter's sequence in reverse.
func ThereafterReversed(anchor *token.Token) Iterator {
	seq, i := documentOrder(anchor)
	if i < 0 {
		return &sliceIterator{seq: nil}
	}
	after := seq[i+1:]
	return &sliceIterator{seq: after, pos: len(after) - 1, dir: -1}
}

// Therebefore returns every token strictly before anchor, in document
// order (ascending).
func Therebefore(anchor *token.Token) Iterator {
	seq, i := documentOrder(anchor)
	if i < 0 {
		return &sliceIterator{seq: nil}
	}
	return &sliceIterator{seq: seq[:i], pos: 0, dir: 1}
}

// TherebeforeReversed returns Therebefore's sequence in reverse (descending
// from the token immediately before anchor back to the first token).
func TherebeforeReversed(anchor *token.Token) Iterator {
	seq, i := documentOrder(anchor)
	if i < 0 {
		return &sliceIterator{seq: nil}
	}
	return &sliceIterator{seq: seq, pos: i - 1, dir: -1}
}

// Inner returns every descendant token of n, flattened, excluding n.Start
// and n.End.
func Inner(n *token.Node) Iterator {
	full := flatten(n)
	if len(full) < 2 {
		return &sliceIterator{seq: nil}
	}
	return &sliceIterator{seq: full[1 : len(full)-1], pos: 0, dir: 1}
}

// InnerReversed returns Inner's sequence in reverse.
func InnerReversed(n *token.Node) Iterator {
	full := flatten(n)
	if len(full) < 2 {
		return &sliceIterator{seq: nil}
	}
	inner := full[1 : len(full)-1]
	return &sliceIterator{seq: inner, pos: len(inner) - 1, dir: -1}
}

// Branch returns n.Start, then Inner(n), then n.End.
func Branch(n *token.Node) Iterator {
	return &sliceIterator{seq: flatten(n), pos: 0, dir: 1}
}

// BranchReversed returns Branch's sequence in reverse.
func BranchReversed(n *token.Node) Iterator {
	seq := flatten(n)
	return &sliceIterator{seq: seq, pos: len(seq) - 1, dir: -1}
}

// NodePath returns the ancestor chain from the document root to n,
// inclusive, as a plain slice (not an Iterator, since callers invariably
// want the whole, typically short, chain rather than to step through it).
func NodePath(n *token.Node) []*token.Node {
	var chain []*token.Node
	for cur := n; cur != nil; cur = cur.Parent {
		chain = append(chain, cur)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// NodePathReversed returns NodePath's chain from n up to the root.
func NodePathReversed(n *token.Node) []*token.Node {
	var chain []*token.Node
	for cur := n; cur != nil; cur = cur.Parent {
		chain = append(chain, cur)
	}
	return chain
}
