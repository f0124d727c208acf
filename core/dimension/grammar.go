// Package dimension converts free-text dimension and list inputs into
// structured numeric tuples. Every category parses through the same small
// closed set of grammars so the axis-sorting invariant is applied in exactly
// one place.
package dimension

// Grammar identifies how a raw dimension string is interpreted.
type Grammar int

const (
	// GrammarSingle is one value; a square is implied when two axes are needed.
	GrammarSingle Grammar = iota

	// GrammarPair is WxH with both axes interchangeable: the larger value
	// always sorts first, so "24x48" and "48x24" are the same input.
	GrammarPair

	// GrammarPairDepth is DxWxH for folded goods: the leading depth is
	// positional and excluded from sorting, the trailing pair sorts like
	// GrammarPair. "3x48x24" and "48x3x24" are different inputs.
	GrammarPairDepth

	// GrammarList is a comma, tab, or newline separated sequence of values,
	// each row optionally "value x count".
	GrammarList

	// GrammarFreeformTotal is a single number taken directly as a
	// pre-computed quantity (total sq in, total amount).
	GrammarFreeformTotal
)

// String returns the grammar name
func (g Grammar) String() string {
	switch g {
	case GrammarSingle:
		return "single"
	case GrammarPair:
		return "pair"
	case GrammarPairDepth:
		return "pair+depth"
	case GrammarList:
		return "list"
	case GrammarFreeformTotal:
		return "freeform-total"
	}
	return "unknown"
}

// Row is one entry of a list grammar: a value and how many times it occurs.
type Row struct {
	Value float64
	Count int
}

// Dims is a parsed dimension tuple tagged with its grammar.
type Dims struct {
	Grammar Grammar

	width  float64
	height float64
	depth  float64
	total  float64
	rows   []Row
}

// Width returns the larger sortable axis.
func (d Dims) Width() float64 { return d.width }

// Height returns the smaller sortable axis.
func (d Dims) Height() float64 { return d.height }

// Depth returns the positional depth axis (pair+depth grammar only).
func (d Dims) Depth() float64 { return d.depth }

// Area returns width x height in the source unit squared.
func (d Dims) Area() float64 {
	if d.Grammar == GrammarFreeformTotal {
		return d.total
	}
	return d.width * d.height
}

// Perimeter returns 2(width + height).
func (d Dims) Perimeter() float64 { return 2 * (d.width + d.height) }

// Total returns the freeform value, or the count-weighted sum of a list.
func (d Dims) Total() float64 { return d.total }

// Rows returns the parsed list rows.
func (d Dims) Rows() []Row { return d.rows }
