package parser

import (
	"github.com/srccircumflex/syntax-parser-prototype/errors"
	"github.com/srccircumflex/syntax-parser-prototype/token"
)

// This file implements feature.Executor for Parser, driven by feature.Run
// from within acceptStart/acceptEnd. p.pending holds the candidate under
// construction for the duration of one Run call; p.viewpoint is the
// candidate's origin column throughout StripLeft/Commit, and moves to the
// end of the candidate's own content exactly once Commit runs, so that
// StripRight's "tail" is always p.row[p.viewpoint:].

// StripLeft implements feature.Executor: it carves n columns off the front
// of the candidate's designated range into the outgoing (still-current)
// phrase's context, then shrinks the candidate's own range by advancing At
// (spec section 4.5, LStrip).
func (p *Parser) StripLeft(n int) error {
	c := p.pending.tok
	if n < 0 || c.At+n > c.To {
		return errors.New(errors.FeatureError, p.pos(), "LStrip(%d) would cross the candidate's designated range", n).
			WithToken(c)
	}
	start := p.viewpoint + c.At
	end := start + n
	if end > len(p.row) {
		return errors.New(errors.FeatureError, p.pos(), "LStrip(%d) exceeds the row", n).WithToken(c)
	}
	width := p.row[start:end]
	if err := p.sinkGap(width, token.ContextLeftStrip); err != nil {
		return err
	}
	c.At += n
	return nil
}

// StripRight implements feature.Executor: it carves n columns off the tail
// following the candidate's own (already committed) content, sub-tokenized
// into whichever node is current at that point — for a NodeStart candidate
// Commit has already pushed the new node, so this lands inside it, exactly
// as spec section 4.5 requires ("for a NodeStart: inside the new node").
func (p *Parser) StripRight(n int) error {
	c := p.pending.tok
	if n < 0 {
		return errors.New(errors.FeatureError, p.pos(), "RTokenize(%d) width must be >= 0", n).WithToken(c)
	}
	end := p.viewpoint + n
	if end > len(p.row) {
		return errors.New(errors.FeatureError, p.pos(), "RTokenize(%d) exceeds the row", n).WithToken(c)
	}
	tail := p.row[p.viewpoint:end]
	p.viewpoint = end
	return p.sinkGap(tail, token.ContextRight)
}

// Commit implements feature.Executor: it materializes the candidate's final
// Content/Position from the (possibly LStrip-narrowed) [At, To) range,
// advances p.viewpoint past the candidate's own content, and — for a
// NodeStart-shaped candidate — constructs and pushes the new Node so that a
// following RTokenize lands inside it.
func (p *Parser) Commit() (*token.Token, error) {
	c := p.pending.tok
	if c.To < c.At {
		return nil, errors.New(errors.FeatureError, p.pos(), "candidate has at > to after feature narrowing").WithToken(c)
	}
	start := p.viewpoint + c.At
	end := p.viewpoint + c.To
	if end > len(p.row) {
		end = len(p.row)
	}
	c.Content = p.row[start:end]
	c.Position = token.Position{Row: p.rowNo, Column: start}
	p.viewpoint = end

	switch {
	case c.Kind.IsNodeStart():
		parent := p.current
		n := token.NewNode(c.Phrase, c, parent)
		parent.AppendChild(n)
		p.current = n
	case p.pending.fromStart:
		p.current.AppendToken(c)
	}
	return c, nil
}

// SwitchEndsPhrase implements feature.Executor for SwitchTo. On a
// NodeStart-shaped candidate it changes the node's own phrase (future
// Ends/Starts queried against it use to); on a Plain/end candidate it
// reassigns the enclosing node's phrase (spec section 4.5).
func (p *Parser) SwitchEndsPhrase(to token.Phrase) {
	if p.pending.tok.Kind.IsNodeStart() {
		p.pending.tok.Phrase = to
		if p.pending.tok.Node != nil {
			p.pending.tok.Node.Phrase = to
		}
		return
	}
	p.current.Phrase = to
}

// SwitchOwnPhrase implements feature.Executor for SwitchPh: valid only on
// NodeStart candidates (enforced by feature.Validate), it changes the
// parent node's phrase rather than the new node's own.
func (p *Parser) SwitchOwnPhrase(to token.Phrase) {
	if parent := p.pending.tok.Owner; parent != nil {
		parent.Phrase = to
	}
}

// Forward implements feature.Executor for ForwardTo: with the candidate
// already committed, it queries to.Starts at the position after it and
// accepts the result through the normal accept path. Recursion is capped by
// maxForwardDepth to surface a misconfigured phrase cycle as
// errors.RuntimeMisuse rather than recursing until the stack overflows
// (DESIGN.md Open Question 2).
func (p *Parser) Forward(to token.Phrase) (*token.Token, error) {
	p.forwardDepth++
	defer func() { p.forwardDepth-- }()
	if p.forwardDepth > p.maxForwardDepth {
		return nil, errors.New(errors.RuntimeMisuse, p.pos(),
			"ForwardTo recursion exceeded %d levels; likely a phrase cycle", p.maxForwardDepth)
	}
	tok, err := to.Starts(p)
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, errors.New(errors.FeatureError, p.pos(), "ForwardTo target %q produced no candidate", to.Name())
	}
	c := candidate{tok: tok, phrase: to}
	prevPending := p.pending
	if err := p.acceptStart(c); err != nil {
		return nil, err
	}
	p.pending = prevPending
	return tok, nil
}
