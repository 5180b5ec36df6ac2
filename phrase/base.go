// Package phrase provides the phrase graph scaffolding: Base (a helper
// embeddable type most concrete phrases start from), Root (the
// distinguished entry phrase), and the graph edge operations spec section
// 4.7 names. It is grounded on cue/parser/interface.go's Option
// func(*parser) + mode bitset idiom for ParseFile's optional flags.
package phrase

import (
	"github.com/google/uuid"

	"github.com/srccircumflex/syntax-parser-prototype/token"
	"github.com/srccircumflex/syntax-parser-prototype/tokenize"
)

// Base is an embeddable helper that gives a concrete phrase sensible
// defaults: no sub/suffix phrases, no-op AtStart/AtEnd, a default Tokenize
// that defers to DefaultTokenizeStream, and a stable uuid-backed identity
// via token.Identifiable. Concrete phrases embed Base and override Starts
// (always) and Ends (for anything node-shaped).
type Base struct {
	id   uuid.UUID
	name string

	subs    []token.Phrase
	suffixs []token.Phrase
}

// NewBase returns a Base named name with a freshly minted identity.
func NewBase(name string) Base {
	return Base{id: uuid.New(), name: name}
}

// ID implements token.Identifiable.
func (b *Base) ID() uuid.UUID { return b.id }

// Name implements token.Phrase.
func (b *Base) Name() string { return b.name }

// Ends implements token.Phrase with "never ends" (suitable for phrases that
// only ever produce Plain/Instant stand-alone tokens, never NodeStarts).
// Phrases that open nodes must override this.
func (b *Base) Ends(s token.ParserView) (*token.Token, error) { return nil, nil }

// Tokenize implements token.Phrase by signalling the caller to fall back to
// tokenize.DefaultTokenizeStream; phrases that want custom sub-tokenization
// override this method instead.
func (b *Base) Tokenize(s token.TokenizeView) (token.Kind, error) {
	return 0, tokenize.ErrUseDefaultTokenize
}

// AtStart implements token.Phrase as a no-op.
func (b *Base) AtStart(s token.ParserView, n *token.Node) {}

// AtEnd implements token.Phrase as a no-op.
func (b *Base) AtEnd(s token.ParserView, n *token.Node) {}

// SubPhrases implements token.Phrase.
func (b *Base) SubPhrases() []token.Phrase { return b.subs }

// SuffixPhrases implements token.Phrase.
func (b *Base) SuffixPhrases() []token.Phrase { return b.suffixs }

// AddSub adds ph as a sub-phrase (may start inside this phrase's node),
// including a self-edge if ph is this phrase itself (e.g. recursive
// brackets). AddSub does not reject Root; a Root registered as a sub-phrase
// makes the parse fail with errors.RuntimeMisuse when its Starts is queried
// (see Root.Starts).
func (b *Base) AddSub(ph token.Phrase) { b.subs = append(b.subs, ph) }

// AddSubMutual adds ph as a sub-phrase of b and b as a sub-phrase of ph.
func (b *Base) AddSubMutual(other *Base, ph token.Phrase, selfAsPh token.Phrase) {
	b.AddSub(ph)
	other.AddSub(selfAsPh)
}

// RemoveSub removes the first occurrence of ph from the sub-phrase set.
func (b *Base) RemoveSub(ph token.Phrase) {
	b.subs = removePhrase(b.subs, ph)
}

// AddSuffix adds ph as a suffix-phrase (may start immediately after this
// phrase's node ends, contiguous in column).
func (b *Base) AddSuffix(ph token.Phrase) { b.suffixs = append(b.suffixs, ph) }

// RemoveSuffix removes the first occurrence of ph from the suffix-phrase set.
func (b *Base) RemoveSuffix(ph token.Phrase) {
	b.suffixs = removePhrase(b.suffixs, ph)
}

func removePhrase(set []token.Phrase, ph token.Phrase) []token.Phrase {
	for i, p := range set {
		if p == ph {
			return append(set[:i:i], set[i+1:]...)
		}
	}
	return set
}
