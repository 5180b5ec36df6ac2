// Package tokenize provides the bounded sub-stream a phrase's Tokenize hook
// consumes from (spec section 4.1). A Stream is carved out of some larger
// string (a candidate's designated width, or a gap before a committed
// token) and tracks a rune cursor into it, mirroring the teacher's
// cue/scanner.Scanner next()/ch/offset/rdOffset cursor but generalized from
// "always step one rune" to the spec's named bulk primitives.
package tokenize

import (
	"regexp"
	"unicode/utf8"

	"github.com/srccircumflex/syntax-parser-prototype/errors"
	"github.com/srccircumflex/syntax-parser-prototype/token"
)

// Stream is a token.TokenizeView over a designated substring.
type Stream struct {
	designated string
	runes      []rune
	cursor     int // index into runes, not bytes
	ctx        token.StreamContext
	pos        token.Position // position of runes[0], for error reporting
}

// New returns a Stream over designated, tagged with ctx and anchored at pos
// (the document position of designated's first rune) for error reporting.
func New(designated string, ctx token.StreamContext, pos token.Position) *Stream {
	return &Stream{
		designated: designated,
		runes:      []rune(designated),
		ctx:        ctx,
		pos:        pos,
	}
}

// Context reports which role this substream is playing.
func (s *Stream) Context() token.StreamContext { return s.ctx }

// Parsed is the designated substring up to the cursor.
func (s *Stream) Parsed() string { return string(s.runes[:s.cursor]) }

// Unparsed is the designated substring from the cursor onward.
func (s *Stream) Unparsed() string { return string(s.runes[s.cursor:]) }

// Remaining reports how many runes are left unconsumed.
func (s *Stream) Remaining() int { return len(s.runes) - s.cursor }

// Designated returns the full substring this stream was built over,
// regardless of cursor position; used by error reporting
// (errors.ParseError.Designated).
func (s *Stream) Designated() string { return s.designated }

// EatN advances the cursor by n runes and returns them. An
// AdvanceStuckTokenize error is returned if n is negative or would run the
// cursor past the end.
func (s *Stream) EatN(n int) (string, error) {
	if n < 0 || s.cursor+n > len(s.runes) {
		return "", errors.New(errors.AdvanceStuckTokenize, s.pos,
			"eat_n(%d): only %d runes remain", n, s.Remaining()).
			WithDesignated(s.designated)
	}
	text := string(s.runes[s.cursor : s.cursor+n])
	s.cursor += n
	return text, nil
}

// EatRemain advances the cursor to the end and returns the tail.
func (s *Stream) EatRemain() string {
	text := string(s.runes[s.cursor:])
	s.cursor = len(s.runes)
	return text
}

// EatUntil advances up to (excluding) the first match of re within the
// unparsed tail. If re does not match: when strict is false, the entire
// remainder is consumed and matched is false; when strict is true, nothing
// is consumed and matched is false.
func (s *Stream) EatUntil(re *regexp.Regexp, strict bool) (text string, matched bool) {
	tail := s.Unparsed()
	loc := re.FindStringIndex(tail)
	if loc == nil {
		if strict {
			return "", false
		}
		return s.EatRemain(), false
	}
	// loc is a byte offset into tail; convert to a rune count to advance
	// the rune cursor correctly.
	n := utf8.RuneCountInString(tail[:loc[0]])
	consumed, _ := s.EatN(n)
	return consumed, true
}

// EatWhile advances while pred holds for the next rune.
func (s *Stream) EatWhile(pred func(r rune) bool) string {
	start := s.cursor
	for s.cursor < len(s.runes) && pred(s.runes[s.cursor]) {
		s.cursor++
	}
	return string(s.runes[start:s.cursor])
}

// ErrUseDefaultTokenize is returned by phrase.Base's default Tokenize
// implementation to signal that the caller should fall back to
// DefaultTokenizeStream instead of a phrase-specific sub-tokenization.
var ErrUseDefaultTokenize = errors.New(errors.RuntimeMisuse, token.Position{}, "use default tokenize stream")

// DefaultTokenizeStream is the fallback sub-tokenizer used when a phrase
// does not override Tokenize (spec section 4.1, "default tokenization"): it
// consumes the entire designated region as a single token of the kind the
// phrase reports via token.DefaultTokenKinder, or token.KindPlain if the
// phrase does not implement that optional interface.
func DefaultTokenizeStream(s *Stream, ph token.Phrase) (string, token.Kind) {
	kind := token.KindPlain
	if dk, ok := ph.(token.DefaultTokenKinder); ok {
		kind = dk.DefaultTokenKind()
	}
	return s.EatRemain(), kind
}
