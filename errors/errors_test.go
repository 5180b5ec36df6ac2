package errors_test

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/srccircumflex/syntax-parser-prototype/errors"
	"github.com/srccircumflex/syntax-parser-prototype/token"
)

func TestParseErrorKindAndFatality(t *testing.T) {
	pos := token.Position{Row: 2, Column: 5}
	err := errors.New(errors.AdvanceStuckRow, pos, "stuck at %q", "x").
		WithRow(2, "x  ").
		WithUnparsed("  ")

	qt.Assert(t, qt.Equals(err.Kind(), errors.AdvanceStuckRow))
	qt.Assert(t, qt.IsTrue(err.Kind().IsFatal()))
	qt.Assert(t, qt.Equals(err.Position(), pos))

	row, content := err.Row()
	qt.Assert(t, qt.Equals(row, 2))
	qt.Assert(t, qt.Equals(content, "x  "))
	qt.Assert(t, qt.Equals(err.Unparsed(), "  "))
}

func TestEndOfInputIsNotFatal(t *testing.T) {
	qt.Assert(t, qt.IsFalse(errors.EndOfInput.IsFatal()))
}

func TestDetailsIncludesContext(t *testing.T) {
	err := errors.New(errors.FeatureError, token.Position{}, "bad feature").
		WithToken(&token.Token{Kind: token.KindPlain, Content: "x"})
	out := errors.Details(err)
	qt.Assert(t, qt.IsTrue(strings.Contains(out, "feature-error")))
}
