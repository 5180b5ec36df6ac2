package tokenize_test

import (
	"regexp"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/srccircumflex/syntax-parser-prototype/token"
	"github.com/srccircumflex/syntax-parser-prototype/tokenize"
)

func TestStreamEatN(t *testing.T) {
	s := tokenize.New("hello", token.ContextInner, token.Position{})
	got, err := s.EatN(3)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, "hel"))
	qt.Assert(t, qt.Equals(s.Unparsed(), "lo"))
	qt.Assert(t, qt.Equals(s.Parsed(), "hel"))
}

func TestStreamEatNPastEndIsStuck(t *testing.T) {
	s := tokenize.New("hi", token.ContextInner, token.Position{})
	_, err := s.EatN(10)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestStreamEatUntilStrict(t *testing.T) {
	s := tokenize.New("abcXdef", token.ContextInner, token.Position{})
	text, matched := s.EatUntil(regexp.MustCompile("X"), true)
	qt.Assert(t, qt.Equals(text, "abc"))
	qt.Assert(t, qt.IsTrue(matched))
	qt.Assert(t, qt.Equals(s.Unparsed(), "Xdef"))
}

func TestStreamEatUntilNoMatchStrict(t *testing.T) {
	s := tokenize.New("abcdef", token.ContextInner, token.Position{})
	text, matched := s.EatUntil(regexp.MustCompile("Z"), true)
	qt.Assert(t, qt.Equals(text, ""))
	qt.Assert(t, qt.IsFalse(matched))
	qt.Assert(t, qt.Equals(s.Unparsed(), "abcdef"))
}

func TestStreamEatUntilNoMatchLenient(t *testing.T) {
	s := tokenize.New("abcdef", token.ContextInner, token.Position{})
	text, matched := s.EatUntil(regexp.MustCompile("Z"), false)
	qt.Assert(t, qt.Equals(text, "abcdef"))
	qt.Assert(t, qt.IsFalse(matched))
	qt.Assert(t, qt.Equals(s.Remaining(), 0))
}

func TestStreamEatWhile(t *testing.T) {
	s := tokenize.New("   abc", token.ContextInner, token.Position{})
	got := s.EatWhile(func(r rune) bool { return r == ' ' })
	qt.Assert(t, qt.Equals(got, "   "))
	qt.Assert(t, qt.Equals(s.Unparsed(), "abc"))
}
