package phrase

import (
	"regexp"

	"github.com/srccircumflex/syntax-parser-prototype/index"
	"github.com/srccircumflex/syntax-parser-prototype/parser"
	"github.com/srccircumflex/syntax-parser-prototype/token"
)

// rootNode constructs the self-referential root node described in spec
// section 4.8 step 1: its Start token is a RootNode-kinded sentinel whose
// own Node field points back at the node it opens.
func rootNode(r *Root) *token.Node {
	start := &token.Token{Kind: token.KindRootNode, Phrase: r}
	n := token.NewNode(r, start, nil)
	return n
}

// ParseRows drives a complete parse over rows (spec section 4.8): each
// string is one physical line, terminator included if present — the engine
// performs no newline normalization, matching cue/scanner's "caller owns
// line splitting" contract via bufio.Scanner upstream of the scanner.
// It returns the completed root node, or the first fatal error raised
// during arbitration (spec section 7).
func (r *Root) ParseRows(rows []string) (*token.Node, error) {
	root := rootNode(r)
	idx := r.newIndex()
	r.lastIndex = idx
	p := parser.New(rows, root, idx, r.maxForwardDepth)
	if err := p.Run(); err != nil {
		return nil, err
	}
	return root, nil
}

// lineSplit matches a line terminator (\r\n, \r, or \n), kept rather than
// discarded so parse_string's split rows retain their terminators exactly
// as parse_rows requires.
var lineSplit = regexp.MustCompile(`\r\n|\r|\n`)

// ParseString is a convenience wrapper: split s into rows on line
// terminators, keeping them, then call ParseRows.
func (r *Root) ParseString(s string) (*token.Node, error) {
	if s == "" {
		return r.ParseRows(nil)
	}
	var rows []string
	locs := lineSplit.FindAllStringIndex(s, -1)
	start := 0
	for _, loc := range locs {
		rows = append(rows, s[start:loc[1]])
		start = loc[1]
	}
	if start < len(s) {
		rows = append(rows, s[start:])
	}
	return r.ParseRows(rows)
}

// LookupCoord exposes the extensive TokenIndex's coordinate lookup when
// Root was configured with WithIndex(IndexExtensive) (the default);
// callers configured with IndexNone, or before any parse has run, get
// ok=false.
func LookupCoord(idx index.Index, rowNo, colNo int) (*token.Token, bool) {
	lookup, ok := idx.(index.Lookup)
	if !ok {
		return nil, false
	}
	return lookup.GetTokenAtCoord(rowNo, colNo)
}
