package reader_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/srccircumflex/syntax-parser-prototype/reader"
	"github.com/srccircumflex/syntax-parser-prototype/token"
)

type stubPhrase struct{}

func (stubPhrase) Name() string                                  { return "stub" }
func (stubPhrase) Starts(token.ParserView) (*token.Token, error) { return nil, nil }
func (stubPhrase) Ends(token.ParserView) (*token.Token, error)   { return nil, nil }
func (stubPhrase) Tokenize(token.TokenizeView) (token.Kind, error) {
	return token.KindPlain, nil
}
func (stubPhrase) AtStart(token.ParserView, *token.Node) {}
func (stubPhrase) AtEnd(token.ParserView, *token.Node)   {}
func (stubPhrase) SubPhrases() []token.Phrase            { return nil }
func (stubPhrase) SuffixPhrases() []token.Phrase         { return nil }

func buildTree() (*token.Node, *token.Node) {
	root := token.NewNode(stubPhrase{}, &token.Token{Kind: token.KindRootNode}, nil)
	root.AppendToken(&token.Token{Kind: token.KindPlain, Content: "a"})

	child := token.NewNode(stubPhrase{}, &token.Token{Kind: token.KindNodeStart, Content: "("}, root)
	child.AppendToken(&token.Token{Kind: token.KindPlain, Content: "b"})
	child.End = &token.Token{Kind: token.KindNodeEnd, Content: ")"}
	root.AppendChild(child)

	root.AppendToken(&token.Token{Kind: token.KindPlain, Content: "c"})
	root.End = &token.Token{Kind: token.KindEOF}
	return root, child
}

func collect(it reader.Iterator) []string {
	var out []string
	for {
		tok, err := it.Next()
		if err != nil {
			break
		}
		out = append(out, tok.Content)
	}
	return out
}

func TestThereafterAndTherebefore(t *testing.T) {
	root, child := buildTree()
	_ = root

	after := collect(reader.Thereafter(child.Start))
	qt.Assert(t, qt.DeepEquals(after, []string{"b", ")", "c", ""}))

	before := collect(reader.Therebefore(child.Start))
	qt.Assert(t, qt.DeepEquals(before, []string{"", "a"}))
}

func TestInnerAndBranch(t *testing.T) {
	_, child := buildTree()

	inner := collect(reader.Inner(child))
	qt.Assert(t, qt.DeepEquals(inner, []string{"b"}))

	branch := collect(reader.Branch(child))
	qt.Assert(t, qt.DeepEquals(branch, []string{"(", "b", ")"}))
}

func TestNodePath(t *testing.T) {
	root, child := buildTree()
	path := reader.NodePath(child)
	qt.Assert(t, qt.Equals(len(path), 2))
	qt.Assert(t, qt.Equals(path[0], root))
	qt.Assert(t, qt.Equals(path[1], child))
}
