package token

// Token is the tagged variant described in spec section 3. Fields are
// shared by all variants; which ones are meaningful depends on Kind (see the
// Kind predicate methods). At, To are column offsets relative to the stream
// viewpoint at proposal time; they are pre-commit coordinates. Once the
// engine commits a token, Position/Viewpoint/RowNo/Content/Node are bound
// ("late-binding" in spec terms) and At/To are no longer consulted.
type Token struct {
	Kind Kind

	// At, To are the pre-commit, viewpoint-relative column range [At, To).
	// Features may widen or narrow this range before commit.
	At, To int

	// Content is the string finally materialized; set at commit.
	Content string

	// Position is the document position of the start of Content; set at
	// commit. Viewpoint/RowNo below are Position.Column/Position.Row,
	// exposed separately because the spec names them independently.
	Position Position

	// Node is the parent node this token belongs to; set at commit. For a
	// NodeStart token, Node is the node it OPENS (not the parent); use
	// Owner for the enclosing node, which callers reach via the tree
	// instead (see (*Node).Inner).
	Node *Node

	// Owner, for a NodeStart token, is the node this node-start's Inner is
	// attached to; it is nil for the root. For an end token (including the
	// OpenEnd/EOF sentinels) it is the parent of the node it closes. For a
	// leaf token, Owner is identical to Node.
	Owner *Node

	// Features is the (possibly empty) feature pipeline attached before
	// commit.
	Features Pipeline

	// Phrase is set only on node-start tokens and stand-alone (Plain or
	// Instant, non-end) tokens proposed with an explicit phrase (i.e. not
	// emitted by DefaultTokenizeStream content-splitting); absent (nil) for
	// plain tokens emitted purely as sub-tokenized content and for end
	// tokens (an end belongs to the node it closes, not to a phrase of its
	// own).
	Phrase Phrase

	// Extras is populated only for NodeStart-shaped tokens; it is the
	// node's extras dict (see (*Node).Extras), exposed here too so that
	// at_start/at_end callbacks that only hold the token can still reach it.
	Extras *Extras
}

// RowNo returns the row number the token was bound to.
func (t *Token) RowNo() int { return t.Position.Row }

// Viewpoint returns the column the token was bound to.
func (t *Token) Viewpoint() int { return t.Position.Column }

// EndPosition returns the position immediately after Content, used by
// OpenEnd/EOF sentinels to stay well-positioned for iteration.
func (t *Token) EndPosition() Position {
	if t == nil {
		return Position{}
	}
	p := t.Position
	for i := 0; i < len(t.Content); i++ {
		if t.Content[i] == '\n' {
			p.Row++
			p.Column = 0
		} else {
			p.Column++
		}
	}
	return p
}

// Width reports the pre-commit designated width (To - At).
func (t *Token) Width() int { return t.To - t.At }

// IsZeroWidth reports whether the pre-commit designated range is empty.
func (t *Token) IsZeroWidth() bool { return t.To == t.At }
