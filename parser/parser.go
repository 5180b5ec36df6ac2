// Package parser implements the main stream/cursor and the priority
// arbitration loop described in spec sections 4.2 through 4.6. It is
// grounded on cue/parser/parser.go's overall shape — an embedded error
// list, lookahead fields, a mode-driven init, and a single stepping loop
// that calls into construct-specific sub-functions — generalized here from
// "one fixed recursive-descent grammar" to "query every registered phrase
// each step and take the highest-priority candidate."
package parser

import (
	"github.com/srccircumflex/syntax-parser-prototype/errors"
	"github.com/srccircumflex/syntax-parser-prototype/feature"
	"github.com/srccircumflex/syntax-parser-prototype/index"
	"github.com/srccircumflex/syntax-parser-prototype/token"
	"github.com/srccircumflex/syntax-parser-prototype/tokenize"
)

// Parser holds all state for one parse (spec section 5: single-threaded,
// cooperative, no suspension). It is not reused across parses.
type Parser struct {
	rows  []string // remaining rows, front is next
	row   string    // current row's full content
	rowNo int

	// viewpoint is the column the engine has actually consumed up to.
	// position is the column sub-tokenization should resume from; the two
	// diverge only while masking is active (spec section 4.6).
	viewpoint int
	position  int

	root    *token.Node
	current *token.Node

	pendingSuffixes []token.Phrase
	anchor          *token.Token

	idx             index.Index
	maxForwardDepth int
	forwardDepth    int

	// pending is the in-flight candidate a feature.Run call is driving
	// through StripLeft/Commit/StripRight/Switch*/Forward; nil outside of
	// a Run call.
	pending *pendingCandidate
}

type pendingCandidate struct {
	tok       *token.Token
	fromStart bool // true: opens via Starts; false: closes via Ends/suffix
}

// New constructs a Parser over rows, with root as the already-constructed
// root node (phrase = a *phrase.Root, node = self-referential per spec
// section 4.8 step 1) and idx as the TokenIndex implementation to drive.
func New(rows []string, root *token.Node, idx index.Index, maxForwardDepth int) *Parser {
	p := &Parser{
		rows:            rows,
		root:            root,
		current:         root,
		idx:             idx,
		maxForwardDepth: maxForwardDepth,
		rowNo:           -1,
	}
	p.advanceRow()
	return p
}

// --- token.ParserView ---

func (p *Parser) Unparsed() string {
	if p.viewpoint >= len(p.row) {
		return ""
	}
	return p.row[p.viewpoint:]
}

func (p *Parser) RowNo() int        { return p.rowNo }
func (p *Parser) Viewpoint() int    { return p.viewpoint }
func (p *Parser) Node() *token.Node { return p.current }

// --- index.Observer ---

func (p *Parser) Anchor() *token.Token { return p.anchor }

// position reports the current document position (row, viewpoint).
func (p *Parser) pos() token.Position {
	return token.Position{Row: p.rowNo, Column: p.viewpoint}
}

// atEOF reports whether the row queue and current row are exhausted.
func (p *Parser) atEOF() bool {
	return p.viewpoint >= len(p.row) && len(p.rows) == 0
}

// advanceRow dequeues the next row, if any, resetting viewpoint/position.
// It notifies the index of the new row boundary.
func (p *Parser) advanceRow() {
	if len(p.rows) == 0 {
		p.row = ""
	} else {
		p.row = p.rows[0]
		p.rows = p.rows[1:]
	}
	p.rowNo++
	p.viewpoint = 0
	p.position = 0
	p.idx.AtRow(p)
}

// Run drives the parse to completion (spec section 4.8, steps 3-5).
func (p *Parser) Run() error {
	for !p.atEOF() {
		if err := p.step(); err != nil {
			return err
		}
	}
	p.finalize()
	p.idx.Build(p.root)
	return nil
}

// candidate is an arbitration entry: a proposed token plus the phrase that
// produced it (nil for an end candidate, which belongs to the current
// node's own phrase) and whether it is an end candidate.
type candidate struct {
	tok    *token.Token
	phrase token.Phrase
	isEnd  bool
}

// better implements the priority order of spec section 4.2: instant
// pre-empts; else leftmost At wins; else, at a tie, zero-width wins over
// non-zero-width; else larger (To-At) wins.
func (c candidate) better(o candidate) bool {
	if c.tok.Kind.IsInstant() != o.tok.Kind.IsInstant() {
		return c.tok.Kind.IsInstant()
	}
	if c.tok.Kind.IsInstant() {
		return false // both instant: first one offered keeps priority
	}
	if c.tok.At != o.tok.At {
		return c.tok.At < o.tok.At
	}
	cz, oz := c.tok.IsZeroWidth(), o.tok.IsZeroWidth()
	if cz != oz {
		return cz
	}
	return c.tok.Width() > o.tok.Width()
}

// step runs one arbitration iteration (spec sections 4.2-4.6).
func (p *Parser) step() error {
	startRow, startVp := p.rowNo, p.viewpoint

	if len(p.pendingSuffixes) > 0 {
		if sc, ok := p.queryContiguousSuffix(); ok {
			p.pendingSuffixes = nil
			if err := p.acceptStart(sc); err != nil {
				return err
			}
			return p.checkProgress(startRow, startVp, true)
		}
		p.pendingSuffixes = nil
	}

	end, hasEnd, err := p.queryEnd()
	if err != nil {
		return err
	}

	best, hasAny, err := p.queryBestStart()
	if err != nil {
		return err
	}

	switch {
	case hasEnd && (!hasAny || end.better(best)):
		if err := p.acceptEnd(end); err != nil {
			return err
		}
		return p.checkProgress(startRow, startVp, false)
	case hasAny:
		if best.tok.Kind.IsMask() {
			if err := p.runMask(best); err != nil {
				return err
			}
			return nil
		}
		if err := p.acceptStart(best); err != nil {
			return err
		}
		return p.checkProgress(startRow, startVp, true)
	default:
		// No end and no start candidate anywhere in the remainder of this
		// row: sink the rest of the row as plain content of the current
		// node (so it still round-trips) and move to the next row.
		if p.viewpoint >= len(p.row) {
			p.advanceRow()
			return nil
		}
		p.viewpoint = len(p.row)
		if err := p.sinkGap(p.row[p.position:p.viewpoint], token.ContextInner); err != nil {
			return err
		}
		p.position = p.viewpoint
		return nil
	}
}

// checkProgress enforces spec section 4.8 step 3: an iteration that leaves
// (row_no, viewpoint) unchanged and produced a NodeStart/Plain token is a
// null-token error.
func (p *Parser) checkProgress(startRow, startVp int, produced bool) error {
	if produced && p.rowNo == startRow && p.viewpoint == startVp {
		return errors.New(errors.NullToken, p.pos(), "iteration produced a token without advancing the stream")
	}
	return nil
}

// queryEnd asks the current node's phrase for an end candidate.
func (p *Parser) queryEnd() (candidate, bool, error) {
	if p.current == p.root {
		return candidate{}, false, nil
	}
	tok, err := p.current.Phrase.Ends(p)
	if err != nil {
		return candidate{}, false, err
	}
	if tok == nil {
		return candidate{}, false, nil
	}
	return candidate{tok: tok, isEnd: true}, true, nil
}

// queryBestStart asks every sub-phrase of the current node's phrase for a
// start candidate and returns the highest-priority one.
func (p *Parser) queryBestStart() (candidate, bool, error) {
	var best candidate
	found := false
	for _, ph := range p.current.Phrase.SubPhrases() {
		tok, err := ph.Starts(p)
		if err != nil {
			return candidate{}, false, err
		}
		if tok == nil {
			continue
		}
		if tok.IsZeroWidth() && tok.Kind.IsMask() {
			return candidate{}, false, errors.New(errors.NullToken, p.pos(),
				"phrase %q returned a zero-width mask", ph.Name())
		}
		c := candidate{tok: tok, phrase: ph}
		if !found || c.better(best) {
			best, found = c, true
		}
		if tok.Kind.IsInstant() {
			break
		}
	}
	return best, found, nil
}

// queryContiguousSuffix queries pendingSuffixes, accepting only an At==0
// (contiguous) candidate, per spec section 4.3.
func (p *Parser) queryContiguousSuffix() (candidate, bool) {
	for _, ph := range p.pendingSuffixes {
		tok, err := ph.Starts(p)
		if err != nil || tok == nil {
			continue
		}
		if tok.At == 0 {
			return candidate{tok: tok, phrase: ph}, true
		}
	}
	return candidate{}, false
}

// designatedGap returns the substring [position, viewpoint+at) that must be
// sub-tokenized as inner content before a candidate at at commits.
func (p *Parser) designatedGap(at int) string {
	end := p.viewpoint + at
	if end > len(p.row) {
		end = len(p.row)
	}
	if p.position >= end {
		return ""
	}
	return p.row[p.position:end]
}

// sinkGap sub-tokenizes the gap before a candidate into the current node's
// Inner, using the current node's phrase (or DefaultTokenizeStream if it
// does not override Tokenize).
func (p *Parser) sinkGap(gap string, ctx token.StreamContext) error {
	if gap == "" {
		return nil
	}
	s := tokenize.New(gap, ctx, token.Position{Row: p.rowNo, Column: p.position})
	ph := p.current.Phrase
	prevParsed := len(s.Parsed())
	for s.Remaining() > 0 {
		before := s.Remaining()
		kind, err := ph.Tokenize(s)
		if err == tokenize.ErrUseDefaultTokenize {
			text, k := tokenize.DefaultTokenizeStream(s, ph)
			p.current.AppendToken(p.bindLeaf(text, k))
			continue
		}
		if err != nil {
			return err
		}
		if s.Remaining() == before {
			return errors.New(errors.AdvanceStuckTokenize, p.pos(),
				"phrase %q's Tokenize did not advance", ph.Name()).WithDesignated(gap)
		}
		// Tokenize consumes by advancing s's cursor, so s.Parsed() is the
		// cumulative prefix since the start of the gap; only the suffix
		// since the previous iteration belongs to this call's token (spec
		// section 4.1's execution contract).
		parsed := s.Parsed()
		p.current.AppendToken(p.bindLeaf(parsed[prevParsed:], kind))
		prevParsed = len(parsed)
	}
	p.position += len(gap)
	return nil
}

// bindLeaf constructs a committed leaf token with content text and kind k,
// bound at the current position, and advances position past it.
func (p *Parser) bindLeaf(text string, k token.Kind) *token.Token {
	t := &token.Token{
		Kind:     k,
		Content:  text,
		Position: token.Position{Row: p.rowNo, Column: p.position},
	}
	p.anchor = t
	p.idx.AtStale(p)
	return t
}

// acceptEnd commits an end candidate: sub-tokenizes the pre-end gap, binds
// the end token, runs its feature pipeline, then pops to the parent and
// queues suffix candidates (spec section 4.3).
func (p *Parser) acceptEnd(c candidate) error {
	if err := p.sinkGap(p.designatedGap(c.tok.At), token.ContextEnd); err != nil {
		return err
	}

	closed := p.current
	closedPhrase := closed.Phrase

	p.pending = &pendingCandidate{tok: c.tok, fromStart: false}
	result, err := feature.Run(c.tok.Features, c.tok.Kind, p)
	p.pending = nil
	if err != nil {
		return err
	}
	closed.End = result
	result.Node = closed
	result.Owner = closed.Parent
	p.anchor = result
	p.idx.AtStale(p)

	closedPhrase.AtEnd(p, closed)
	p.current = closed.Parent
	p.pendingSuffixes = closedPhrase.SuffixPhrases()
	p.position = p.viewpoint
	return nil
}

// acceptStart commits a start candidate: sub-tokenizes the pre-start gap,
// binds the token (as a Plain leaf appended to Inner, or as a new Node
// pushed onto current), runs the feature pipeline, and advances.
func (p *Parser) acceptStart(c candidate) error {
	ctx := token.ContextInner
	if c.tok.Kind.IsNodeStart() {
		ctx = token.ContextNode
	}
	if err := p.sinkGap(p.designatedGap(c.tok.At), ctx); err != nil {
		return err
	}
	c.tok.Phrase = c.phrase

	p.pending = &pendingCandidate{tok: c.tok, fromStart: true}
	result, err := feature.Run(c.tok.Features, c.tok.Kind, p)
	p.pending = nil
	if err != nil {
		return err
	}

	if result.Kind.IsNodeStart() {
		c.phrase.AtStart(p, result.Node)
	} else {
		c.phrase.AtStart(p, p.current)
	}
	p.anchor = result
	p.idx.AtStale(p)
	p.position = p.viewpoint
	return nil
}

// runMask implements the masking sub-protocol (spec section 4.6): the mask
// token itself is discarded, position stays at the mask's entry column
// while viewpoint advances past it (and, for a MaskNode, past rows until
// the masking phrase's Ends fires), and the masked span is then
// sub-tokenized as inner content of the current node.
func (p *Parser) runMask(c candidate) error {
	if c.tok.IsZeroWidth() {
		return errors.New(errors.NullToken, p.pos(), "mask candidate has zero width")
	}
	maskStart := p.viewpoint + c.tok.At
	p.viewpoint = maskStart + c.tok.Width()

	if c.tok.Kind == token.KindMaskNode {
		for {
			end, err := c.phrase.Ends(p)
			if err != nil {
				return err
			}
			if end != nil {
				p.viewpoint += end.To
				break
			}
			if p.viewpoint >= len(p.row) {
				if len(p.rows) == 0 {
					break
				}
				// advanceRow discards p.row, so this row's unconsumed
				// tail (from the mask-entry column onward) must be sunk
				// as inner content now, or it is silently lost (spec
				// section 4.6's "keep advancing across rows" crosses a
				// row boundary without ending the mask).
				tail := p.row[p.position:]
				if err := p.sinkGap(tail, token.ContextInner); err != nil {
					return err
				}
				p.advanceRow()
				continue
			}
			p.viewpoint++
		}
	}

	gap := p.row[p.position:p.viewpoint]
	if err := p.sinkGap(gap, token.ContextInner); err != nil {
		return err
	}
	p.position = p.viewpoint
	return nil
}

// finalize implements spec section 4.8 step 4: every still-open node
// (including root) gets its OpenEnd sentinel replaced by an EOF sentinel
// carrying the last token's position.
func (p *Parser) finalize() {
	n := p.current
	for n != nil {
		if n.IsOpen() {
			last := n.LastTokenPosition()
			kind := token.KindOpenEOF
			if n == p.root {
				kind = token.KindEOF
			}
			n.End = &token.Token{Kind: kind, Position: last, Node: n, Owner: n.Parent}
		}
		n = n.Parent
	}
}
