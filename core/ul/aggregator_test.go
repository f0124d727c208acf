package ul

import (
	"testing"

	"github.com/shopspring/decimal"
)

var (
	baseFee   = decimal.NewFromInt(150)
	perSetFee = decimal.NewFromInt(50)
)

func TestFirstItemAbsorbsBaseFee(t *testing.T) {
	state := NewJobState()

	costs := []decimal.Decimal{
		state.Charge(true, baseFee, perSetFee, 1),
		state.Charge(true, baseFee, perSetFee, 1),
		state.Charge(true, baseFee, perSetFee, 1),
	}

	want := []int64{200, 50, 50}
	for i, cost := range costs {
		if !cost.Equal(decimal.NewFromInt(want[i])) {
			t.Errorf("item %d cost = %s, want %d", i, cost, want[i])
		}
	}
	if state.Sets != 3 {
		t.Errorf("Sets = %d, want 3", state.Sets)
	}
}

func TestReorderingMovesBaseFee(t *testing.T) {
	// Same three items, different order: a different item absorbs the base
	// fee. That is intentional business behavior.
	first := NewJobState()
	a := first.Charge(false, baseFee, perSetFee, 1) // non-UL item leads
	b := first.Charge(true, baseFee, perSetFee, 1)

	if !a.IsZero() {
		t.Errorf("non-UL item cost = %s, want 0", a)
	}
	if !b.Equal(decimal.NewFromInt(200)) {
		t.Errorf("first UL item cost = %s, want 200", b)
	}
}

func TestNonULItemLeavesStateUntouched(t *testing.T) {
	state := NewJobState()
	cost := state.Charge(false, baseFee, perSetFee, 5)
	if !cost.IsZero() {
		t.Errorf("cost = %s, want 0", cost)
	}
	if state.SeenFirst() || state.Sets != 0 {
		t.Errorf("state mutated by non-UL item: %+v", state)
	}
}

func TestMultipleSets(t *testing.T) {
	state := NewJobState()
	cost := state.Charge(true, baseFee, perSetFee, 3)
	if !cost.Equal(decimal.NewFromInt(300)) { // 150 + 3*50
		t.Errorf("cost = %s, want 300", cost)
	}

	cost = state.Charge(true, baseFee, perSetFee, 0) // defaults to one set
	if !cost.Equal(decimal.NewFromInt(50)) {
		t.Errorf("cost = %s, want 50", cost)
	}
	if state.Sets != 4 {
		t.Errorf("Sets = %d, want 4", state.Sets)
	}
}

func TestIsolatedStatesDoNotInterfere(t *testing.T) {
	a, b := NewJobState(), NewJobState()
	a.Charge(true, baseFee, perSetFee, 1)
	cost := b.Charge(true, baseFee, perSetFee, 1)
	if !cost.Equal(decimal.NewFromInt(200)) {
		t.Errorf("fresh job state cost = %s, want 200 (base not shared across jobs)", cost)
	}
}
