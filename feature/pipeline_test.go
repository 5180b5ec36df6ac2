package feature_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/srccircumflex/syntax-parser-prototype/feature"
	"github.com/srccircumflex/syntax-parser-prototype/token"
)

// fakeExecutor records the order operations run in, for asserting the
// fixed pipeline order spec section 4.5 mandates.
type fakeExecutor struct {
	calls     []string
	committed *token.Token
}

func (f *fakeExecutor) StripLeft(n int) error {
	f.calls = append(f.calls, "stripLeft")
	return nil
}
func (f *fakeExecutor) StripRight(n int) error {
	f.calls = append(f.calls, "stripRight")
	return nil
}
func (f *fakeExecutor) Commit() (*token.Token, error) {
	f.calls = append(f.calls, "commit")
	f.committed = &token.Token{Kind: token.KindPlain, Content: "x"}
	return f.committed, nil
}
func (f *fakeExecutor) SwitchEndsPhrase(to token.Phrase) { f.calls = append(f.calls, "switchTo") }
func (f *fakeExecutor) SwitchOwnPhrase(to token.Phrase)  { f.calls = append(f.calls, "switchPh") }
func (f *fakeExecutor) Forward(to token.Phrase) (*token.Token, error) {
	f.calls = append(f.calls, "forward")
	return &token.Token{Kind: token.KindPlain, Content: "forwarded"}, nil
}

type fakePhrase struct{ name string }

func (p fakePhrase) Name() string                                  { return p.name }
func (fakePhrase) Starts(token.ParserView) (*token.Token, error)   { return nil, nil }
func (fakePhrase) Ends(token.ParserView) (*token.Token, error)     { return nil, nil }
func (fakePhrase) Tokenize(token.TokenizeView) (token.Kind, error) { return token.KindPlain, nil }
func (fakePhrase) AtStart(token.ParserView, *token.Node)           {}
func (fakePhrase) AtEnd(token.ParserView, *token.Node)             {}
func (fakePhrase) SubPhrases() []token.Phrase                      { return nil }
func (fakePhrase) SuffixPhrases() []token.Phrase                   { return nil }

func TestRunFixedOrder(t *testing.T) {
	pipeline := token.Pipeline{}.
		Append(feature.LStrip(1)).
		Append(feature.SwitchTo(fakePhrase{"a"})).
		Append(feature.RTokenize(2))

	exec := &fakeExecutor{}
	result, err := feature.Run(pipeline, token.KindPlain, exec)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNotNil(result))
	qt.Assert(t, qt.DeepEquals(exec.calls, []string{"stripLeft", "commit", "stripRight", "switchTo"}))
}

func TestRunForwardToIsTerminal(t *testing.T) {
	pipeline := token.Pipeline{}.Append(feature.ForwardTo(fakePhrase{"b"}))
	exec := &fakeExecutor{}
	result, err := feature.Run(pipeline, token.KindPlain, exec)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(result.Content, "forwarded"))
	qt.Assert(t, qt.DeepEquals(exec.calls, []string{"commit", "forward"}))
}

func TestValidateRejectsSwitchPhOnNonNodeStart(t *testing.T) {
	pipeline := token.Pipeline{}.Append(feature.SwitchPh(fakePhrase{"a"}))
	err := feature.Validate(pipeline, token.KindPlain)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestValidateRejectsForwardToNotLast(t *testing.T) {
	pipeline := token.Pipeline{}.
		Append(feature.ForwardTo(fakePhrase{"a"})).
		Append(feature.LStrip(1))
	err := feature.Validate(pipeline, token.KindPlain)
	qt.Assert(t, qt.IsNotNil(err))
}
