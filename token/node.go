package token

import "strings"

// Node is a committed region bracketed by a NodeStart and a NodeEnd (or an
// OpenEnd/EOF sentinel), owning its inner items and per-node Extras (spec
// section 3, "Result tree").
//
// Rather than the arena-and-index ownership the design notes suggest for
// languages without a tracing GC, Node uses direct pointers throughout:
// Go's garbage collector already makes the cyclic Parent <-> Inner <-> Start
// back-references safe and cheap to traverse, so the indirection an arena
// buys a manually-memory-managed implementation buys nothing here.
type Node struct {
	Phrase Phrase

	// Start is the NodeStart/RootNode/InstantNode token that opened this
	// node. Start.Node points back to this Node.
	Start *Token

	// Inner holds this node's direct children in document order: each Item
	// is either a leaf Token (Plain/Instant, never an end) or a nested
	// child Node.
	Inner []Item

	// End is the node's closing token: OpenEnd until a real NodeEnd (or
	// InstantEnd, or the EOF/OpenEOF sentinel assigned at end of input)
	// replaces it. End is never nil.
	End *Token

	// Extras is this node's free-form per-node metadata, owned by the node
	// for its lifetime.
	Extras *Extras

	// Parent is the enclosing node, or nil for the root.
	Parent *Node
}

// Item is a single child slot of a Node's Inner list: a tagged union of a
// leaf Token and a nested Node. Exactly one field is non-nil.
type Item struct {
	Token *Token
	Child *Node
}

// NewNode allocates a node opened by start, owned by parent, with an OpenEnd
// sentinel and empty Inner/Extras. start.Node is set to the new node.
func NewNode(phrase Phrase, start *Token, parent *Node) *Node {
	n := &Node{
		Phrase: phrase,
		Start:  start,
		Extras: NewExtras(),
		Parent: parent,
	}
	n.End = &Token{Kind: KindOpenEnd, Node: n, Owner: parent}
	start.Node = n
	start.Owner = parent
	start.Extras = n.Extras
	return n
}

// AppendToken appends a leaf token to Inner, setting its Node/Owner back-refs.
func (n *Node) AppendToken(t *Token) {
	t.Node = n
	t.Owner = n
	n.Inner = append(n.Inner, Item{Token: t})
}

// AppendChild appends a nested node to Inner.
func (n *Node) AppendChild(child *Node) {
	n.Inner = append(n.Inner, Item{Child: child})
}

// IsOpen reports whether this node's End is still an OpenEnd/OpenEOF
// sentinel.
func (n *Node) IsOpen() bool { return n.End == nil || n.End.Kind.IsOpen() }

// LastTokenPosition returns the position immediately after the last content
// committed into this node (recursing into the last child if it is itself a
// node), falling back to the position immediately after Start when Inner is
// empty. OpenEnd/EOF sentinels use this to stay well-positioned for
// iteration while a node remains open.
func (n *Node) LastTokenPosition() Position {
	if len(n.Inner) == 0 {
		return n.Start.EndPosition()
	}
	last := n.Inner[len(n.Inner)-1]
	if last.Child != nil {
		if last.Child.IsOpen() {
			return last.Child.LastTokenPosition()
		}
		return last.Child.End.EndPosition()
	}
	return last.Token.EndPosition()
}

// PreOrderContent concatenates Content over a pre-order traversal of the
// node's branch (Start, Inner, End), the quantity the "round-trip" testable
// property checks equals the original input slice for this node.
func (n *Node) PreOrderContent() string {
	var b strings.Builder
	n.writeContent(&b)
	return b.String()
}

func (n *Node) writeContent(b *strings.Builder) {
	b.WriteString(n.Start.Content)
	for _, it := range n.Inner {
		if it.Child != nil {
			it.Child.writeContent(b)
		} else {
			b.WriteString(it.Token.Content)
		}
	}
	if n.End != nil {
		b.WriteString(n.End.Content)
	}
}
