// Package dimension - shared parser for all dimension grammars.
package dimension

import (
	"strconv"
	"strings"

	"signcost/internal/errors"
)

// Parse interprets raw under the given grammar. A failure is a PARSE_ERROR;
// callers surface it to the user and skip calculation for that line.
func Parse(raw string, g Grammar) (Dims, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return Dims{}, errors.Newf(errors.TypeParse, "empty dimension input for %s grammar", g)
	}

	switch g {
	case GrammarSingle:
		return parseSingle(cleaned)
	case GrammarPair:
		return parsePair(cleaned)
	case GrammarPairDepth:
		return parsePairDepth(cleaned)
	case GrammarList:
		return parseList(cleaned)
	case GrammarFreeformTotal:
		return parseFreeform(cleaned)
	}
	return Dims{}, errors.Newf(errors.TypeInternal, "unknown grammar %d", int(g))
}

// splitAxes splits on x/X/× with all whitespace stripped first, so
// "24 x 48" and "24x48" tokenize identically.
func splitAxes(raw string) []string {
	stripped := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, raw)
	stripped = strings.ReplaceAll(stripped, "×", "x")
	stripped = strings.ReplaceAll(stripped, "X", "x")
	return strings.Split(stripped, "x")
}

func parseValue(token string, g Grammar) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil {
		return 0, errors.Wrapf(errors.TypeParse, err, "%s grammar: %q is not a number", g, token)
	}
	if v <= 0 {
		return 0, errors.Newf(errors.TypeParse, "%s grammar: dimension must be positive, got %v", g, v)
	}
	return v, nil
}

func parseSingle(raw string) (Dims, error) {
	tokens := splitAxes(raw)
	if len(tokens) != 1 {
		return Dims{}, errors.Newf(errors.TypeParse, "single grammar: expected one value, got %d", len(tokens))
	}
	v, err := parseValue(tokens[0], GrammarSingle)
	if err != nil {
		return Dims{}, err
	}
	// Implicit square: a single value fills both axes.
	return Dims{Grammar: GrammarSingle, width: v, height: v, total: v}, nil
}

func parsePair(raw string) (Dims, error) {
	tokens := splitAxes(raw)
	if len(tokens) > 2 {
		return Dims{}, errors.Newf(errors.TypeParse, "pair grammar: expected WxH, got %d dimensions", len(tokens))
	}

	w, err := parseValue(tokens[0], GrammarPair)
	if err != nil {
		return Dims{}, err
	}
	h := w // missing second dimension implies a square
	if len(tokens) == 2 {
		h, err = parseValue(tokens[1], GrammarPair)
		if err != nil {
			return Dims{}, err
		}
	}

	// Sortable axes: larger value always first.
	if h > w {
		w, h = h, w
	}
	return Dims{Grammar: GrammarPair, width: w, height: h}, nil
}

func parsePairDepth(raw string) (Dims, error) {
	tokens := splitAxes(raw)
	if len(tokens) != 3 {
		return Dims{}, errors.Newf(errors.TypeParse, "pair+depth grammar: expected DxWxH, got %d dimensions", len(tokens))
	}

	// Depth keeps its textual position and never participates in sorting:
	// a 3" return on a 48x24 pan is not a 48" return on a 3x24 pan.
	d, err := parseValue(tokens[0], GrammarPairDepth)
	if err != nil {
		return Dims{}, err
	}
	w, err := parseValue(tokens[1], GrammarPairDepth)
	if err != nil {
		return Dims{}, err
	}
	h, err := parseValue(tokens[2], GrammarPairDepth)
	if err != nil {
		return Dims{}, err
	}
	if h > w {
		w, h = h, w
	}
	return Dims{Grammar: GrammarPairDepth, width: w, height: h, depth: d}, nil
}

func parseList(raw string) (Dims, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\t' || r == '\n' || r == '\r' || r == ';'
	})

	var rows []Row
	var total float64
	for _, field := range fields {
		if strings.TrimSpace(field) == "" {
			continue
		}
		tokens := splitAxes(field)
		if len(tokens) > 2 {
			return Dims{}, errors.Newf(errors.TypeParse, "list grammar: row %q has too many columns", field)
		}
		v, err := parseValue(tokens[0], GrammarList)
		if err != nil {
			return Dims{}, err
		}
		count := 1
		if len(tokens) == 2 {
			c, err := strconv.Atoi(strings.TrimSpace(tokens[1]))
			if err != nil || c <= 0 {
				return Dims{}, errors.Newf(errors.TypeParse, "list grammar: row %q has invalid count", field)
			}
			count = c
		}
		rows = append(rows, Row{Value: v, Count: count})
		total += v * float64(count)
	}
	if len(rows) == 0 {
		return Dims{}, errors.New(errors.TypeParse, "list grammar: no values found")
	}
	return Dims{Grammar: GrammarList, rows: rows, total: total}, nil
}

func parseFreeform(raw string) (Dims, error) {
	tokens := splitAxes(raw)
	if len(tokens) != 1 {
		return Dims{}, errors.New(errors.TypeParse, "freeform-total grammar: expected a single number")
	}
	v, err := parseValue(tokens[0], GrammarFreeformTotal)
	if err != nil {
		return Dims{}, err
	}
	return Dims{Grammar: GrammarFreeformTotal, total: v}, nil
}
