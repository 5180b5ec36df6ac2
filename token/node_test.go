package token_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/srccircumflex/syntax-parser-prototype/token"
)

type stubPhrase struct{ name string }

func (s stubPhrase) Name() string                                     { return s.name }
func (stubPhrase) Starts(token.ParserView) (*token.Token, error)      { return nil, nil }
func (stubPhrase) Ends(token.ParserView) (*token.Token, error)        { return nil, nil }
func (stubPhrase) Tokenize(token.TokenizeView) (token.Kind, error)    { return token.KindPlain, nil }
func (stubPhrase) AtStart(token.ParserView, *token.Node)              {}
func (stubPhrase) AtEnd(token.ParserView, *token.Node)                {}
func (stubPhrase) SubPhrases() []token.Phrase                         { return nil }
func (stubPhrase) SuffixPhrases() []token.Phrase                      { return nil }

func TestNodePreOrderContent(t *testing.T) {
	root := token.NewNode(stubPhrase{"root"}, &token.Token{Kind: token.KindRootNode}, nil)
	root.AppendToken(&token.Token{Kind: token.KindPlain, Content: "a"})

	inner := token.NewNode(stubPhrase{"bracket"}, &token.Token{Kind: token.KindNodeStart, Content: "("}, root)
	inner.AppendToken(&token.Token{Kind: token.KindPlain, Content: "b"})
	inner.End = &token.Token{Kind: token.KindNodeEnd, Content: ")"}
	root.AppendChild(inner)

	root.AppendToken(&token.Token{Kind: token.KindPlain, Content: "c"})
	root.End = &token.Token{Kind: token.KindEOF}

	qt.Assert(t, qt.Equals(root.PreOrderContent(), "a(b)c"))
	qt.Assert(t, qt.IsFalse(root.IsOpen()))
	qt.Assert(t, qt.IsFalse(inner.IsOpen()))
}

func TestNodeOpenUntilClosed(t *testing.T) {
	root := token.NewNode(stubPhrase{"root"}, &token.Token{Kind: token.KindRootNode}, nil)
	qt.Assert(t, qt.IsTrue(root.IsOpen()))
	qt.Assert(t, qt.Equals(root.End.Kind, token.KindOpenEnd))
}
