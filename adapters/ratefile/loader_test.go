package ratefile

import (
	"testing"

	"github.com/shopspring/decimal"

	"signcost/core/rates"
	"signcost/internal/errors"
)

const sampleRates = `
version      = "2025-08"
effective_at = "2025-08-01"

constants {
  ul_base_fee   = 150
  ul_set_fee    = 50
  wire_per_foot = 1.25
  ps_small_type = "ul-60"
}

rate "power_supply" "ul-60" {
  unit_price  = 42.50
  rated_watts = 60
}

rate "material" "acm-3mm" {
  unit_price   = 160
  setup_fee    = 190
  sheet_area   = 96
  waste_factor = 1.1
  min_charge   = 75
}
`

func TestLoadBytes(t *testing.T) {
	snap, err := LoadBytes([]byte(sampleRates), "rates.hcl")
	if err != nil {
		t.Fatal(err)
	}

	if snap.Version != "2025-08" {
		t.Errorf("Version = %q, want 2025-08", snap.Version)
	}
	if snap.EffectiveAt.Format("2006-01-02") != "2025-08-01" {
		t.Errorf("EffectiveAt = %s, want 2025-08-01", snap.EffectiveAt)
	}

	if v, ok := snap.Constant("ul_base_fee"); !ok || !v.Equal(decimal.NewFromInt(150)) {
		t.Errorf("ul_base_fee = %s %v, want 150", v, ok)
	}
	if v, ok := snap.Constant("wire_per_foot"); !ok || !v.Equal(decimal.NewFromFloat(1.25)) {
		t.Errorf("wire_per_foot = %s %v, want 1.25", v, ok)
	}
	if v, ok := snap.StringConstant("ps_small_type"); !ok || v != "ul-60" {
		t.Errorf("ps_small_type = %q %v, want ul-60", v, ok)
	}

	ps, ok := snap.Lookup(rates.CategoryPowerSupply, "ul-60")
	if !ok {
		t.Fatal("power_supply/ul-60 not loaded")
	}
	if !ps.UnitPrice.Equal(decimal.NewFromFloat(42.50)) || ps.RatedWatts != 60 {
		t.Errorf("ul-60 = %+v, want 42.50 at 60W", ps)
	}

	mat, ok := snap.Lookup(rates.CategoryMaterial, "ACM-3mm") // keys are case-insensitive
	if !ok {
		t.Fatal("material/acm-3mm not loaded")
	}
	if mat.SheetArea != 96 || mat.Waste() != 1.1 || !mat.MinCharge.Equal(decimal.NewFromInt(75)) {
		t.Errorf("acm-3mm = %+v", mat)
	}
}

func TestLoadBytesRejectsBadSyntax(t *testing.T) {
	_, err := LoadBytes([]byte(`rate "x" {`), "broken.hcl")
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("got %v, want CONFIG_ERROR", err)
	}
}

func TestLoadBytesRejectsNonScalarConstant(t *testing.T) {
	_, err := LoadBytes([]byte(`
constants {
  bad = [1, 2]
}
`), "bad.hcl")
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("got %v, want CONFIG_ERROR", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/rates.hcl")
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("got %v, want CONFIG_ERROR", err)
	}
}
