package token

import (
	"regexp"

	"github.com/google/uuid"
)

// StreamContext tags the role a TokenizeView is playing, so that a phrase's
// Tokenize method can behave differently in each (spec section 4.1).
type StreamContext byte

const (
	// ContextLeftStrip is the "<" role: tokenizing a region carved off the
	// front of a candidate by an LStrip feature, in the outgoing phrase.
	ContextLeftStrip StreamContext = '<'
	// ContextInner is the "i" role: tokenizing the gap before a committed
	// candidate, in the current node's phrase.
	ContextInner StreamContext = 'i'
	// ContextRight is the ">" role: tokenizing a region carved off the tail
	// of a candidate by an RTokenize feature, in the candidate's phrase.
	ContextRight StreamContext = '>'
	// ContextNode is the "n" role: tokenizing the gap before a NodeStart
	// candidate, designated in the current (outer) node's phrase.
	ContextNode StreamContext = 'n'
	// ContextEnd is the "e" role: tokenizing the gap before an end
	// candidate, designated inside the node being closed.
	ContextEnd StreamContext = 'e'
)

func (c StreamContext) String() string { return string(rune(c)) }

// ParserView is the read-only view of the main stream a phrase's Starts and
// Ends hooks receive. Implementations (the parser package's Parser) must
// never advance viewpoint/row_no in response to these calls: starts/ends
// read, they do not mutate (spec section 9, "stream mutation from user
// callbacks").
type ParserView interface {
	// Unparsed returns row[viewpoint:], the text not yet consumed on the
	// current row.
	Unparsed() string
	// RowNo is the current, zero-based row number.
	RowNo() int
	// Viewpoint is the current column within the row.
	Viewpoint() int
	// Node is the node currently open (whose Ends is being queried, and
	// whose SubPhrases are being offered Starts).
	Node() *Node
}

// TokenizeView is the bounded view over a designated substring handed to a
// phrase's Tokenize method (spec section 4.1).
type TokenizeView interface {
	// Unparsed is the designated substring from the internal cursor onward.
	Unparsed() string
	// Parsed is the designated substring up to the internal cursor.
	Parsed() string
	// Context reports which role this substream is playing.
	Context() StreamContext
	// EatN advances the cursor by n runes and returns them.
	EatN(n int) (string, error)
	// EatRemain advances the cursor to the end and returns the tail.
	EatRemain() string
	// EatUntil advances up to (excluding) the first match of re; matched
	// reports whether re matched. If there is no match: when strict is
	// false, the remainder is consumed and returned; when strict is true,
	// nothing is consumed.
	EatUntil(re *regexp.Regexp, strict bool) (text string, matched bool)
	// EatWhile advances while pred holds for the next rune.
	EatWhile(pred func(r rune) bool) string
}

// Phrase is the contract a concrete phrase implementation satisfies (spec
// section 3 and section 6). The root phrase is a distinguished value whose
// Starts/Ends are never called by the engine; see the phrase package's Root.
type Phrase interface {
	// Name is a short, stable, human-readable identity used in debug output
	// and error messages. It need not be unique.
	Name() string

	// Starts is queried for every sub-phrase of the current node on every
	// iteration. A nil token and nil error means "no candidate here".
	Starts(s ParserView) (*Token, error)

	// Ends is queried once per iteration, against the current node's phrase.
	// Never called against the root phrase.
	Ends(s ParserView) (*Token, error)

	// Tokenize sub-tokenizes a designated region. A phrase that wants the
	// DefaultTokenizeStream path should embed Base and not override this
	// method (Base.Tokenize returns ErrUseDefaultTokenize).
	Tokenize(s TokenizeView) (Kind, error)

	// AtStart and AtEnd are optional observability hooks invoked after a
	// token is committed; they may mutate node.Extras but must not advance
	// the stream.
	AtStart(s ParserView, n *Node)
	AtEnd(s ParserView, n *Node)

	// SubPhrases lists phrases that may start inside this phrase.
	SubPhrases() []Phrase
	// SuffixPhrases lists phrases that may start immediately after this
	// phrase's end, contiguous in column.
	SuffixPhrases() []Phrase
}

// DefaultTokenKind reports the token kind a phrase's DefaultTokenizeStream
// path should emit. Phrases that want a kind other than KindPlain implement
// this optional interface; otherwise KindPlain is assumed.
type DefaultTokenKinder interface {
	DefaultTokenKind() Kind
}

// Identifiable is an optional interface a phrase implements to carry a
// stable identity beyond its display Name, for debug output and graph
// equality checks that must not rely on pointer identity across a phrase
// graph built more than once with otherwise-identical phrases (spec section
// 3, "stable identity"). The phrase package's Base assigns one at
// construction. The engine itself never reads it: where phrases are compared
// (Base.RemoveSub/RemoveSuffix), they are compared by interface equality.
type Identifiable interface {
	ID() uuid.UUID
}
