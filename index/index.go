// Package index implements the TokenIndex described in spec section 4.10:
// a row-addressed lookup the parser keeps warm during parsing and finalizes
// at end of input. It is grounded on cue/token/position.go's
// File.lines []index + AddLine + binary-search unpack/searchInts idiom,
// adapted from a single byte-offset table over one flat buffer to a
// row-indexed table over the engine's row queue.
package index

import (
	"sort"

	"github.com/mpvl/unique"

	"github.com/srccircumflex/syntax-parser-prototype/token"
)

// Observer is the subset of parser state the index needs in order to track
// row boundaries as parsing proceeds, without importing the parser package
// (which imports index to build one).
type Observer interface {
	RowNo() int
	Viewpoint() int
	// Anchor is the most recently accepted token, whose position anchors
	// the row record being built (spec section 4.10: "resolved from the
	// stored anchor in build if that anchor belonged to a prior row").
	Anchor() *token.Token
}

// Index is the minimal interface the parser drives during parsing; Root
// picks the concrete implementation via phrase.WithIndex (spec section
// 4.10, "the root phrase picks which by type parameter").
type Index interface {
	// AtRow is called whenever a new row begins.
	AtRow(obs Observer)
	// AtStale is called when re-entering parsing mid-row after mask/end
	// bookkeeping, i.e. whenever the cached notion of "current row's first
	// token" might need refreshing without a row boundary having occurred.
	AtStale(obs Observer)
	// Build finalizes the index at end of input.
	Build(root *token.Node)
	// Invalidate discards cached offsets for fromRow and every row after
	// it, required after a content replacement (spec section 8, "Content
	// replacement").
	Invalidate(fromRow int)
}

// Lookup is implemented only by the extensive variant; callers type-assert
// for it when they need coordinate/offset lookups rather than just the
// at_row/at_stale/build bookkeeping contract.
type Lookup interface {
	GetTokenAtCoord(rowNo, colNo int) (*token.Token, bool)
	GetTokenAtCursor(offset int) (*token.Token, bool)
}

// record is one row's cached entry: the row number, its first token, and
// the row's starting data-offset (rune count from the start of the
// document to the row's first column).
type record struct {
	rowNo      int
	firstToken *token.Token
	dataOffset int
}

type recordsByRow []record

func (r recordsByRow) Len() int           { return len(r) }
func (r recordsByRow) Less(i, j int) bool { return r[i].rowNo < r[j].rowNo }
func (r recordsByRow) Swap(i, j int)      { r[i], r[j] = r[j], r[i] }
func (r recordsByRow) Equal(i, j int) bool {
	return r[i].rowNo == r[j].rowNo
}

// Extensive is the full TokenIndex variant: it records the first token of
// each row and caches each row's data-offset, supporting
// GetTokenAtCoord/GetTokenAtCursor lookups.
type Extensive struct {
	records   []record
	lastRow   int
	sealed    bool
	pending   *token.Token // candidate first token of the row currently open
	dataCount int          // running rune offset, advanced as rows seal
}

// NewExtensive returns an empty Extensive index.
func NewExtensive() *Extensive {
	return &Extensive{lastRow: -1}
}

// AtRow records obs's current token as the candidate first token of the new
// row, sealing the previous row's record (if any) first.
func (x *Extensive) AtRow(obs Observer) {
	row := obs.RowNo()
	if row != x.lastRow {
		x.sealRow()
		x.lastRow = row
		x.pending = obs.Anchor()
	}
}

// AtStale refreshes the pending-first-token candidate without sealing a new
// row boundary, covering re-entry after mask/end bookkeeping where the
// current row's recorded anchor may be stale.
func (x *Extensive) AtStale(obs Observer) {
	if x.pending == nil {
		x.pending = obs.Anchor()
	}
}

func (x *Extensive) sealRow() {
	if x.pending == nil || x.lastRow < 0 {
		return
	}
	x.records = append(x.records, record{
		rowNo:      x.lastRow,
		firstToken: x.pending,
		dataOffset: x.dataCount,
	})
	x.dataCount += x.pending.Width()
}

// Build finalizes the index: seals any still-open row, then sorts and
// deduplicates the accumulated records by row number. Deduplication uses
// mpvl/unique rather than a hand-rolled sort+compact loop, since out-of-
// order AtRow/AtStale calls around masking and content replacement can
// otherwise leave stale duplicate entries for a row.
func (x *Extensive) Build(root *token.Node) {
	x.sealRow()
	sort.Sort(recordsByRow(x.records))
	n := unique.Sort(recordsByRow(x.records))
	x.records = x.records[:n]
	x.sealed = true
}

// Invalidate drops cached records for fromRow and every subsequent row, per
// the content-replacement testable property (spec section 8).
func (x *Extensive) Invalidate(fromRow int) {
	cut := len(x.records)
	for i, r := range x.records {
		if r.rowNo >= fromRow {
			cut = i
			break
		}
	}
	x.records = x.records[:cut]
	if x.lastRow >= fromRow {
		x.lastRow = -1
		x.pending = nil
	}
}

// GetTokenAtCoord returns the token recorded for row rowNo. The lookup is
// row-granular: colNo is not consulted, and a row without a record yields
// ok=false.
func (x *Extensive) GetTokenAtCoord(rowNo, colNo int) (*token.Token, bool) {
	i := sort.Search(len(x.records), func(i int) bool {
		return x.records[i].rowNo >= rowNo
	})
	if i >= len(x.records) || x.records[i].rowNo != rowNo {
		return nil, false
	}
	return x.records[i].firstToken, true
}

// GetTokenAtCursor returns the token whose row begins at or before the
// given absolute rune offset, using the cached per-row data offsets to
// binary-search rather than re-walking the tree.
func (x *Extensive) GetTokenAtCursor(offset int) (*token.Token, bool) {
	i := sort.Search(len(x.records), func(i int) bool {
		return x.records[i].dataOffset > offset
	})
	if i == 0 {
		return nil, false
	}
	return x.records[i-1].firstToken, true
}

// Noop is the minimal TokenIndex variant: it discards everything and
// answers no lookups, for callers that do not need row-addressed access
// and would rather not pay the bookkeeping cost.
type Noop struct{}

// NewNoop returns a no-op index.
func NewNoop() *Noop { return &Noop{} }

func (Noop) AtRow(Observer)    {}
func (Noop) AtStale(Observer)  {}
func (Noop) Build(*token.Node) {}
func (Noop) Invalidate(int)    {}
