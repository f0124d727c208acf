package rates

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"signcost/internal/errors"
)

func TestLookupIsCaseInsensitive(t *testing.T) {
	snap := NewBuilder().
		AddRate(CategoryMaterial, "ACM-3mm", Record{UnitPrice: decimal.NewFromInt(160)}).
		Build()

	for _, key := range []string{"acm-3mm", "ACM-3MM", " acm-3mm "} {
		if _, ok := snap.Lookup(CategoryMaterial, key); !ok {
			t.Errorf("Lookup(%q) missed", key)
		}
	}
	if _, ok := snap.Lookup(CategoryMaterial, "dibond"); ok {
		t.Error("Lookup of unregistered key must miss")
	}
}

func TestRequireNamesEveryMissingConstant(t *testing.T) {
	snap := NewBuilder().
		AddConstant(ConstULBaseFee, decimal.NewFromInt(150)).
		AddStringConstant(ConstPSSmallType, "ul-60").
		Build()

	err := snap.Require(RequiredConstants...)
	if !errors.IsType(err, errors.TypeConfig) {
		t.Fatalf("got %v, want CONFIG_ERROR", err)
	}
	// One pass diagnoses the whole file: every absent constant is named,
	// present ones are not.
	for _, name := range []string{ConstULSetFee, ConstWirePerFoot, ConstPSLargeType} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name missing constant %s", err, name)
		}
	}
	if strings.Contains(err.Error(), ConstULBaseFee) {
		t.Errorf("error %q names a constant that is present", err)
	}

	full := NewBuilder()
	for _, name := range []string{ConstULBaseFee, ConstULSetFee, ConstWirePerFoot, ConstPinUnit, ConstStandoffUnit} {
		full.AddConstant(name, decimal.NewFromInt(1))
	}
	for _, name := range []string{ConstPSSmallType, ConstPSLargeType, ConstPSDefaultType} {
		full.AddStringConstant(name, "x")
	}
	if err := full.Build().Require(RequiredConstants...); err != nil {
		t.Errorf("complete snapshot failed Require: %v", err)
	}
}

func TestBuilderIsSingleUse(t *testing.T) {
	b := NewBuilder()
	b.Build()

	defer func() {
		if recover() == nil {
			t.Error("builder reuse after Build must panic")
		}
	}()
	b.AddConstant("late", decimal.NewFromInt(1))
}

func TestWasteDefaultsToOne(t *testing.T) {
	if w := (Record{}).Waste(); w != 1.0 {
		t.Errorf("unconfigured Waste() = %v, want 1.0", w)
	}
	if w := (Record{WasteFactor: 1.15}).Waste(); w != 1.15 {
		t.Errorf("Waste() = %v, want 1.15", w)
	}
}
