package phrase

import (
	"github.com/srccircumflex/syntax-parser-prototype/errors"
	"github.com/srccircumflex/syntax-parser-prototype/index"
	"github.com/srccircumflex/syntax-parser-prototype/token"
)

// Root is the distinguished phrase that opens the document's outermost
// node. Its Starts must never be called by the engine (spec section 4.7);
// Root.Starts exists only to fail fast if a caller mistakenly registers
// Root as someone's sub-phrase. Its Ends is unconditionally absent: the
// root node only ever closes via the EOF sentinel assigned at end of input.
type Root struct {
	Base

	maxForwardDepth int
	indexMode       IndexMode
	lastIndex       index.Index
}

// IndexMode selects which index.Index implementation Root.ParseRows builds
// (spec section 4.10: "the root phrase picks which by type parameter").
type IndexMode uint8

const (
	// IndexExtensive builds the full row/offset-caching index.
	IndexExtensive IndexMode = iota
	// IndexNone builds the no-op index.
	IndexNone
)

// Option configures a Root at construction, mirroring cue/parser's
// Option func(*parser) + mode-bitset idiom.
type Option func(*Root)

// WithMaxForward overrides the ForwardTo recursion cap (default 64); see
// DESIGN.md's Open Question 2 for the rationale.
func WithMaxForward(n int) Option {
	return func(r *Root) { r.maxForwardDepth = n }
}

// WithIndex selects the TokenIndex implementation ParseRows/ParseString
// build.
func WithIndex(mode IndexMode) Option {
	return func(r *Root) { r.indexMode = mode }
}

const defaultMaxForwardDepth = 64

// NewRoot constructs a Root ready to have sub-phrases registered on it via
// AddSub.
func NewRoot(opts ...Option) *Root {
	r := &Root{
		Base:            NewBase("root"),
		maxForwardDepth: defaultMaxForwardDepth,
		indexMode:       IndexExtensive,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Starts always fails: Root must never be queried as a sub-phrase (spec
// section 4.7, "implementer should fail fast if some user adds Root as a
// sub-phrase").
func (r *Root) Starts(s token.ParserView) (*token.Token, error) {
	return nil, errors.New(errors.RuntimeMisuse, token.Position{},
		"root phrase must never be registered as a sub-phrase or queried directly")
}

// Ends always returns no candidate: the root node only closes via the EOF
// sentinel assigned at end of input, never through ordinary arbitration.
func (r *Root) Ends(s token.ParserView) (*token.Token, error) { return nil, nil }

// newIndex builds the TokenIndex variant selected by WithIndex.
func (r *Root) newIndex() index.Index {
	switch r.indexMode {
	case IndexNone:
		return index.NewNoop()
	default:
		return index.NewExtensive()
	}
}

// Index returns the TokenIndex built by the most recent ParseRows/
// ParseString call, or nil if none has run yet.
func (r *Root) Index() index.Index { return r.lastIndex }
