package phrase_test

import (
	"regexp"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/srccircumflex/syntax-parser-prototype/phrase"
	"github.com/srccircumflex/syntax-parser-prototype/token"
)

// quoteEscapePhrase is the sub-phrase M from spec section 8, scenario 4: it
// returns a Mask of width 2 whenever it sees a backslash followed by any
// character, so that escaped quotes inside a string are not mistaken for
// the string's own closing quote.
type quoteEscapePhrase struct {
	phrase.Base
}

var escapeRE = regexp.MustCompile(`\\.`)

func (quoteEscapePhrase) Starts(s token.ParserView) (*token.Token, error) {
	loc := escapeRE.FindStringIndex(s.Unparsed())
	if loc == nil {
		return nil, nil
	}
	return &token.Token{Kind: token.KindMask, At: loc[0], To: loc[1]}, nil
}

// quotedStringPhrase is phrase S from the same scenario: starts and ends on
// a bare double quote, with quoteEscapePhrase registered as its only
// sub-phrase so escapes are masked rather than closing the string early.
type quotedStringPhrase struct {
	phrase.Base
}

var quoteRE = regexp.MustCompile(`"`)

func newQuotedStringPhrase() *quotedStringPhrase {
	q := &quotedStringPhrase{Base: phrase.NewBase("quoted-string")}
	q.AddSub(&quoteEscapePhrase{Base: phrase.NewBase("escape")})
	return q
}

func (q *quotedStringPhrase) Starts(s token.ParserView) (*token.Token, error) {
	loc := quoteRE.FindStringIndex(s.Unparsed())
	if loc == nil {
		return nil, nil
	}
	return &token.Token{Kind: token.KindNodeStart, At: loc[0], To: loc[1]}, nil
}

func (q *quotedStringPhrase) Ends(s token.ParserView) (*token.Token, error) {
	loc := quoteRE.FindStringIndex(s.Unparsed())
	if loc == nil {
		return nil, nil
	}
	return &token.Token{Kind: token.KindNodeEnd, At: loc[0], To: loc[1]}, nil
}

// TestMaskedQuotedString reproduces spec section 8, scenario 4: parsing
// `"a\"b"` yields one string node whose inner content is exactly `a\"b`,
// with the masking transparency property holding (the escape never
// surfaces as a token of its own).
func TestMaskedQuotedString(t *testing.T) {
	root := phrase.NewRoot()
	root.AddSub(newQuotedStringPhrase())

	input := `"a\"b"`
	n, err := root.ParseString(input)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(n.PreOrderContent(), input))

	var str *token.Node
	for _, it := range n.Inner {
		if it.Child != nil {
			str = it.Child
		}
	}
	qt.Assert(t, qt.IsNotNil(str))
	qt.Assert(t, qt.Equals(str.PreOrderContent(), input))
}
