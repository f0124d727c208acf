package estimate

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"

	"signcost/core/rates"
	"signcost/internal/errors"
)

// fixedCalc prices every line at a fixed amount; UL comes from the item.
type fixedCalc struct {
	category string
	amount   int64
}

func (f fixedCalc) Category() string { return f.category }

func (f fixedCalc) Compute(ctx *Context) *LineResult {
	lr := NewLineResult(f.category)
	lr.AddComponent("fixed", decimal.NewFromInt(f.amount))
	ctx.ChargeUL(lr)
	lr.Description = f.category
	return lr
}

func testSnapshot() *rates.Snapshot {
	return rates.NewBuilder().
		AddConstant(rates.ConstULBaseFee, decimal.NewFromInt(150)).
		AddConstant(rates.ConstULSetFee, decimal.NewFromInt(50)).
		AddConstant(rates.ConstWirePerFoot, decimal.NewFromFloat(1.25)).
		AddConstant(rates.ConstPinUnit, decimal.NewFromFloat(2.50)).
		AddConstant(rates.ConstStandoffUnit, decimal.NewFromFloat(4)).
		AddStringConstant(rates.ConstPSSmallType, "ul-60").
		AddStringConstant(rates.ConstPSLargeType, "ul-150").
		AddStringConstant(rates.ConstPSDefaultType, "standard-100").
		Build()
}

func testOrchestrator() *Orchestrator {
	return NewOrchestrator([]Calculator{
		fixedCalc{category: "panel", amount: 100},
		fixedCalc{category: "letters", amount: 50},
		fixedCalc{category: "cabinet", amount: 200},
	})
}

func item(category string, fields map[string]interface{}) LineItemInput {
	return LineItemInput{Category: category, Fields: fields}
}

func TestMissingConstantsAbortRun(t *testing.T) {
	snap := rates.NewBuilder().Build() // no constants at all
	_, err := testOrchestrator().Run([]LineItemInput{item("panel", nil)}, snap, nil)
	if !errors.IsType(err, errors.TypeConfig) {
		t.Fatalf("Run with empty snapshot = %v, want CONFIG_ERROR", err)
	}
}

func TestUnknownCategoryDegradesToWarning(t *testing.T) {
	result, err := testOrchestrator().Run([]LineItemInput{
		item("panel", nil),
		item("hologram", nil),
	}, testSnapshot(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(result.Lines))
	}
	bad := result.Lines[1]
	if !bad.Total.IsZero() || !bad.HasWarning(errors.TypeInput) {
		t.Errorf("unknown category line = total %s warnings %v, want zero total + INPUT_ERROR", bad.Total, bad.Warnings)
	}
	if !result.GrandTotal.Equal(decimal.NewFromInt(100)) {
		t.Errorf("GrandTotal = %s, want 100 (run continues past the bad line)", result.GrandTotal)
	}
}

func TestULBaseFeeFollowsLineOrder(t *testing.T) {
	ulItem := func(cat string) LineItemInput {
		return item(cat, map[string]interface{}{"ul": "yes"})
	}

	result, err := testOrchestrator().Run([]LineItemInput{
		ulItem("panel"), ulItem("letters"), ulItem("cabinet"),
	}, testSnapshot(), nil)
	if err != nil {
		t.Fatal(err)
	}

	// First UL item absorbs base + per-set; the rest pay per-set only.
	wantUL := []int64{200, 50, 50}
	for i, lr := range result.Lines {
		last := lr.Components[len(lr.Components)-1]
		if last.Label != "UL certification" || !last.Amount.Equal(decimal.NewFromInt(wantUL[i])) {
			t.Errorf("line %d UL component = %s %s, want %d", i, last.Label, last.Amount, wantUL[i])
		}
	}
	if result.ULSets != 3 {
		t.Errorf("ULSets = %d, want 3", result.ULSets)
	}

	// Reordering moves the base fee to the new first UL item.
	reordered, err := testOrchestrator().Run([]LineItemInput{
		item("panel", nil), ulItem("cabinet"), ulItem("letters"),
	}, testSnapshot(), nil)
	if err != nil {
		t.Fatal(err)
	}
	second := reordered.Lines[1]
	last := second.Components[len(second.Components)-1]
	if !last.Amount.Equal(decimal.NewFromInt(200)) {
		t.Errorf("after reorder, first UL item pays %s, want 200", last.Amount)
	}
}

func TestSectionMultiplierScopesToPrecedingLines(t *testing.T) {
	result, err := testOrchestrator().Run([]LineItemInput{
		item("panel", nil),   // 100
		item("letters", nil), // 50
		item(CategoryMultiplier, map[string]interface{}{"factor": 1.5}), // +75 on 150
		item("cabinet", nil), // 200
		item(CategoryMultiplier, map[string]interface{}{"factor": 2}), // +200 on 200 only
	}, testSnapshot(), nil)
	if err != nil {
		t.Fatal(err)
	}

	if !result.Lines[2].Total.Equal(decimal.NewFromInt(75)) {
		t.Errorf("first multiplier = %s, want 75", result.Lines[2].Total)
	}
	if !result.Lines[4].Total.Equal(decimal.NewFromInt(200)) {
		t.Errorf("second multiplier = %s, want 200 (section resets after an adjustment)", result.Lines[4].Total)
	}
	if !result.GrandTotal.Equal(decimal.NewFromInt(625)) {
		t.Errorf("GrandTotal = %s, want 625", result.GrandTotal)
	}
}

func TestJobScopeAdjustmentsCascade(t *testing.T) {
	result, err := testOrchestrator().Run([]LineItemInput{
		item("panel", nil), // 100
		item(CategoryMultiplier, map[string]interface{}{"factor": 1.5, "scope": "job"}), // +50
		item(CategoryDiscount, map[string]interface{}{"percent": 10, "scope": "job"}),   // -15 on 150, not -10 on 100
	}, testSnapshot(), nil)
	if err != nil {
		t.Fatal(err)
	}

	if !result.Lines[2].Total.Equal(decimal.NewFromInt(-15)) {
		t.Errorf("discount = %s, want -15 (operates on the multiplied total)", result.Lines[2].Total)
	}
	if !result.GrandTotal.Equal(decimal.NewFromInt(135)) {
		t.Errorf("GrandTotal = %s, want 135", result.GrandTotal)
	}
}

func TestAbsoluteDiscount(t *testing.T) {
	result, err := testOrchestrator().Run([]LineItemInput{
		item("panel", nil),
		item(CategoryDiscount, map[string]interface{}{"amount": 25}),
	}, testSnapshot(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !result.GrandTotal.Equal(decimal.NewFromInt(75)) {
		t.Errorf("GrandTotal = %s, want 75", result.GrandTotal)
	}
}

func TestInvalidAdjustmentsWarnInsteadOfFailing(t *testing.T) {
	result, err := testOrchestrator().Run([]LineItemInput{
		item("panel", nil),
		item(CategoryMultiplier, nil),
		item(CategoryDiscount, nil),
	}, testSnapshot(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Lines[1].HasWarning(errors.TypeInput) || !result.Lines[2].HasWarning(errors.TypeInput) {
		t.Error("malformed adjustments must carry INPUT_ERROR warnings")
	}
	if !result.GrandTotal.Equal(decimal.NewFromInt(100)) {
		t.Errorf("GrandTotal = %s, want 100", result.GrandTotal)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	items := []LineItemInput{
		item("panel", map[string]interface{}{"ul": "yes"}),
		item("letters", nil),
		item(CategoryMultiplier, map[string]interface{}{"factor": 1.25}),
	}
	snap := testSnapshot()

	first, err := testOrchestrator().Run(items, snap, nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := testOrchestrator().Run(items, snap, nil)
	if err != nil {
		t.Fatal(err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if !bytes.Equal(a, b) {
		t.Errorf("identical inputs produced different results:\n%s\n%s", a, b)
	}
}
