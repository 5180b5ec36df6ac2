// Package feature executes the fixed-order feature pipeline a candidate
// token carries at commit time (spec section 4.5). It is grounded on
// cue/parser/resolve.go's shape — a pass that walks an already-built
// result and mutates cross-references — adapted here from "one fixed pass
// over the whole tree" to "one fixed ordered pipeline over a single
// candidate, run once, at the moment it commits."
package feature

import (
	"github.com/srccircumflex/syntax-parser-prototype/errors"
	"github.com/srccircumflex/syntax-parser-prototype/token"
)

// LStrip returns a feature that narrows the candidate's designated range by
// n columns from the left, re-tokenizing the stripped prefix against the
// outgoing (currently open) phrase.
func LStrip(n int) token.Feature {
	return token.Feature{Kind: token.FeatureLStrip, Width: n}
}

// RTokenize returns a feature that, after the candidate commits, consumes the
// n columns following its content and sub-tokenizes them in the node that is
// current after commit (the new node, for a NodeStart candidate). The
// candidate's own range is not changed.
func RTokenize(n int) token.Feature {
	return token.Feature{Kind: token.FeatureRTokenize, Width: n}
}

// SwitchTo returns a feature that, after commit, reassigns a phrase to to: on
// a NodeStart-shaped candidate the new node's own phrase, on any other
// candidate the phrase of the node that is current while the pipeline runs.
func SwitchTo(to token.Phrase) token.Feature {
	return token.Feature{Kind: token.FeatureSwitchTo, Phrase: to}
}

// SwitchPh returns a feature that replaces the phrase of the candidate's
// parent node with to; the candidate's own node keeps its phrase. Valid only on NodeStart-shaped candidates (spec section 9, Open
// Question 3); Validate rejects any other placement.
func SwitchPh(to token.Phrase) token.Feature {
	return token.Feature{Kind: token.FeatureSwitchPh, Phrase: to}
}

// ForwardTo returns a feature that, once the candidate has committed, queries
// to.Starts at the position right after it and accepts the resulting token as
// a further committed item; Run then returns that token instead of the
// candidate. It must be the pipeline's last entry; Validate rejects a
// ForwardTo followed by further operators.
func ForwardTo(to token.Phrase) token.Feature {
	return token.Feature{Kind: token.FeatureForwardTo, Phrase: to}
}

// Validate checks pipeline against the structural constraints spec section
// 4.5 and 9 impose, given the shape of the candidate it was attached to.
func Validate(pipeline token.Pipeline, candidateKind token.Kind) error {
	for i, op := range pipeline {
		switch op.Kind {
		case token.FeatureSwitchPh:
			if !candidateKind.IsNodeStart() {
				return errors.New(errors.FeatureError, token.Position{},
					"SwitchPh is only valid on a NodeStart-shaped candidate, got %s", candidateKind)
			}
		case token.FeatureForwardTo:
			if i != len(pipeline)-1 {
				return errors.New(errors.FeatureError, token.Position{},
					"ForwardTo must be the last feature in a pipeline")
			}
		case token.FeatureLStrip, token.FeatureRTokenize:
			if op.Width < 0 {
				return errors.New(errors.FeatureError, token.Position{},
					"%s width must be >= 0, got %d", op.Kind, op.Width)
			}
		}
	}
	return nil
}

// Executor is the subset of parser behavior the pipeline drives: narrowing a
// candidate's range and re-tokenizing the carved-off region, substituting a
// phrase, or forwarding to another phrase entirely. The parser package's
// Parser implements this interface; it is declared here (rather than in
// token, alongside Pipeline) because, unlike ParserView/TokenizeView, no
// token.Phrase method needs to receive an Executor — only Run does, and Run
// lives in this package.
type Executor interface {
	// StripLeft narrows the candidate by n columns from the left and
	// re-tokenizes the stripped prefix against the outgoing phrase, in
	// token.ContextLeftStrip.
	StripLeft(n int) error
	// StripRight consumes the n columns following the committed candidate
	// and sub-tokenizes them in the node current after commit, in
	// token.ContextRight.
	StripRight(n int) error
	// Commit finalizes the (possibly narrowed) candidate into the tree and
	// returns the resulting token.
	Commit() (*token.Token, error)
	// SwitchEndsPhrase applies FeatureSwitchTo (see SwitchTo) and
	// SwitchOwnPhrase applies FeatureSwitchPh (see SwitchPh).
	SwitchEndsPhrase(to token.Phrase)
	SwitchOwnPhrase(to token.Phrase)
	// Forward queries to.Starts at the position after the committed
	// candidate and accepts the result, returning that token.
	Forward(to token.Phrase) (*token.Token, error)
}

// Run executes pipeline in the fixed order spec section 4.5 mandates: every
// LStrip operator fires left-to-right, then the (possibly narrowed)
// candidate commits, then every RTokenize operator fires left-to-right
// against the now-committed token's phrase, then every SwitchTo/SwitchPh
// applies in pipeline order, and finally a trailing ForwardTo (if present)
// runs and its token replaces the commit result as Run's return value.
func Run(pipeline token.Pipeline, candidateKind token.Kind, exec Executor) (*token.Token, error) {
	if err := Validate(pipeline, candidateKind); err != nil {
		return nil, err
	}

	for _, op := range pipeline {
		if op.Kind != token.FeatureLStrip {
			continue
		}
		if err := exec.StripLeft(op.Width); err != nil {
			return nil, err
		}
	}

	committed, err := exec.Commit()
	if err != nil {
		return nil, err
	}

	for _, op := range pipeline {
		if op.Kind != token.FeatureRTokenize {
			continue
		}
		if err := exec.StripRight(op.Width); err != nil {
			return nil, err
		}
	}

	for _, op := range pipeline {
		switch op.Kind {
		case token.FeatureSwitchTo:
			exec.SwitchEndsPhrase(op.Phrase)
		case token.FeatureSwitchPh:
			exec.SwitchOwnPhrase(op.Phrase)
		}
	}

	for _, op := range pipeline {
		if op.Kind != token.FeatureForwardTo {
			continue
		}
		return exec.Forward(op.Phrase)
	}

	return committed, nil
}
