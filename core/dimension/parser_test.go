package dimension

import (
	"testing"

	"signcost/internal/errors"
)

func TestPairSortsLargerFirst(t *testing.T) {
	cases := []struct {
		raw          string
		wantW, wantH float64
	}{
		{"24x48", 48, 24},
		{"48x24", 48, 24},
		{"48 X 24", 48, 24},
		{"48×24", 48, 24},
		{"36", 36, 36},      // single value implies a square
		{"12.5x6", 12.5, 6}, // fractional inches survive
	}
	for _, tc := range cases {
		dims, err := Parse(tc.raw, GrammarPair)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tc.raw, err)
		}
		if dims.Width() != tc.wantW || dims.Height() != tc.wantH {
			t.Errorf("Parse(%q) = %vx%v, want %vx%v", tc.raw, dims.Width(), dims.Height(), tc.wantW, tc.wantH)
		}
	}
}

func TestPairIsOrderInsensitive(t *testing.T) {
	a, err := Parse("24x48", GrammarPair)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("48x24", GrammarPair)
	if err != nil {
		t.Fatal(err)
	}
	if a.Area() != b.Area() || a.Width() != b.Width() || a.Height() != b.Height() {
		t.Errorf("24x48 and 48x24 should be identical inputs, got %+v vs %+v", a, b)
	}
}

func TestPairDepthKeepsDepthPositional(t *testing.T) {
	a, err := Parse("3x48x24", GrammarPairDepth)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("48x3x24", GrammarPairDepth)
	if err != nil {
		t.Fatal(err)
	}

	if a.Depth() != 3 || a.Width() != 48 || a.Height() != 24 {
		t.Errorf("3x48x24 = depth %v, %vx%v; want depth 3, 48x24", a.Depth(), a.Width(), a.Height())
	}
	if b.Depth() != 48 || b.Width() != 24 || b.Height() != 3 {
		t.Errorf("48x3x24 = depth %v, %vx%v; want depth 48, 24x3", b.Depth(), b.Width(), b.Height())
	}
	// A 3" return on a 48x24 pan is not a 48" return on a 24x3 pan.
	if a.Depth() == b.Depth() && a.Area() == b.Area() {
		t.Error("pair+depth inputs with moved depth must stay distinct")
	}
}

func TestPairDepthRequiresThreeValues(t *testing.T) {
	for _, raw := range []string{"48x24", "48", "3x48x24x6"} {
		if _, err := Parse(raw, GrammarPairDepth); !errors.IsType(err, errors.TypeParse) {
			t.Errorf("Parse(%q, pair+depth) = %v, want PARSE_ERROR", raw, err)
		}
	}
}

func TestListGrammar(t *testing.T) {
	dims, err := Parse("18x4, 24,\t12 x 2", GrammarList)
	if err != nil {
		t.Fatal(err)
	}
	rows := dims.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Value != 18 || rows[0].Count != 4 {
		t.Errorf("row 0 = %+v, want 18 x 4", rows[0])
	}
	if rows[1].Value != 24 || rows[1].Count != 1 {
		t.Errorf("row 1 = %+v, want 24 x 1", rows[1])
	}
	// 18*4 + 24 + 12*2 = 120
	if dims.Total() != 120 {
		t.Errorf("Total() = %v, want 120", dims.Total())
	}
}

func TestFreeformTotal(t *testing.T) {
	dims, err := Parse(" 220 ", GrammarFreeformTotal)
	if err != nil {
		t.Fatal(err)
	}
	if dims.Total() != 220 || dims.Area() != 220 {
		t.Errorf("Total() = %v, Area() = %v, want 220 for both", dims.Total(), dims.Area())
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		raw string
		g   Grammar
	}{
		{"", GrammarPair},
		{"abc", GrammarSingle},
		{"24x48x6", GrammarPair},   // too many dimensions
		{"-5x10", GrammarPair},     // dimensions must be positive
		{"0", GrammarSingle},       // zero is not a dimension
		{"12x0", GrammarList},      // zero count
		{"10x20", GrammarFreeformTotal},
	}
	for _, tc := range cases {
		if _, err := Parse(tc.raw, tc.g); !errors.IsType(err, errors.TypeParse) {
			t.Errorf("Parse(%q, %s) = %v, want PARSE_ERROR", tc.raw, tc.g, err)
		}
	}
}
