package index_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/srccircumflex/syntax-parser-prototype/index"
	"github.com/srccircumflex/syntax-parser-prototype/token"
)

type fakeObserver struct {
	row    int
	vp     int
	anchor *token.Token
}

func (f *fakeObserver) RowNo() int            { return f.row }
func (f *fakeObserver) Viewpoint() int        { return f.vp }
func (f *fakeObserver) Anchor() *token.Token   { return f.anchor }

func TestExtensiveCoordLookup(t *testing.T) {
	x := index.NewExtensive()
	obs := &fakeObserver{row: 0, anchor: &token.Token{Kind: token.KindPlain, Content: "a"}}
	x.AtRow(obs)

	obs.row = 1
	obs.anchor = &token.Token{Kind: token.KindPlain, Content: "bb"}
	x.AtRow(obs)

	x.Build(nil)

	tok, ok := x.GetTokenAtCoord(0, 0)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(tok.Content, "a"))

	tok, ok = x.GetTokenAtCoord(1, 0)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(tok.Content, "bb"))

	_, ok = x.GetTokenAtCoord(5, 0)
	qt.Assert(t, qt.IsFalse(ok))
}

func TestExtensiveInvalidateDropsLaterRows(t *testing.T) {
	x := index.NewExtensive()
	for row := 0; row < 3; row++ {
		obs := &fakeObserver{row: row, anchor: &token.Token{Kind: token.KindPlain, Content: "x"}}
		x.AtRow(obs)
	}
	x.Build(nil)

	x.Invalidate(1)
	_, ok := x.GetTokenAtCoord(0, 0)
	qt.Assert(t, qt.IsTrue(ok))
	_, ok = x.GetTokenAtCoord(1, 0)
	qt.Assert(t, qt.IsFalse(ok))
}

func TestNoopIndex(t *testing.T) {
	n := index.NewNoop()
	n.AtRow(&fakeObserver{})
	n.AtStale(&fakeObserver{})
	n.Build(nil)
	n.Invalidate(0)
}
