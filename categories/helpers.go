// Package categories - shared pricing helpers.
package categories

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"signcost/core/estimate"
	"signcost/core/override"
	"signcost/core/power"
	"signcost/core/rates"
	"signcost/internal/errors"
)

// ledPlan is the outcome of the shared LED sizing flow.
type ledPlan struct {
	Type    string
	Modules int
	Watts   float64
	Cost    decimal.Decimal
	Off     bool
}

// Area a module illuminates when the LED record does not configure Coverage.
const defaultModuleCoverage = 9.0

// resolveLEDs sizes and prices LED modules for an illuminated area. The LED
// type resolves through the override hierarchy first; module counts then come
// from the resolved record's own Coverage, so a denser override never sizes
// off the default type. ledArea is the raw illuminated sq in; the module
// count is the larger of the coverage estimate and perimeterModules, rounded
// up — a deliberate conservative policy, not a disagreement between the
// formulas. A suppressed type (or a customer flagged no-LEDs-by-default)
// turns the feature off.
func resolveLEDs(ctx *estimate.Context, lr *estimate.LineResult, ledArea, perimeterModules float64) ledPlan {
	catDefault, _ := ctx.Rates.StringConstant("led_default_type")
	res := ctx.PreferredLEDType(catDefault)
	switch res.State {
	case override.StateOff:
		return ledPlan{Off: true}
	case override.StateComputed:
		res.Value = catDefault
	}
	if res.Value == "" {
		return ledPlan{Off: true}
	}

	rec, ok := ctx.LookupRate(rates.CategoryLED, res.Value)
	if !ok {
		lr.AddWarning(errors.LookupMiss(rates.CategoryLED, res.Value))
		return ledPlan{Type: res.Value, Off: true}
	}

	coverage := rec.Coverage
	if coverage <= 0 {
		coverage = defaultModuleCoverage
	}
	modules := int(math.Ceil(math.Max(ledArea/coverage, perimeterModules)))
	if modules <= 0 {
		return ledPlan{Type: res.Value, Off: true}
	}

	cost := rec.UnitPrice.Mul(decimal.NewFromInt(int64(modules)))
	lr.AddComponent("LED modules", estimate.RoundUpCents(cost))
	return ledPlan{
		Type:    res.Value,
		Modules: modules,
		Watts:   rec.Watts * float64(modules),
		Cost:    cost,
	}
}

// addPowerSupplies runs the shared selector and records the plan on the
// line. Lookup failures degrade to a manual-pricing warning.
func addPowerSupplies(ctx *estimate.Context, lr *estimate.LineResult, totalWatts float64, ulRequired bool) power.Plan {
	preferred := ""
	res := override.ResolveString(ctx.Override("power_supply_type"), "", ctx.Prefs.Get(estimate.PrefPowerSupplyType), "")
	if res.State == override.StateValue {
		preferred = res.Value
	}

	plan, err := power.Select(totalWatts, ulRequired, preferred, ctx.Override("power_supply"), ctx.Rates)
	if err != nil {
		lr.AddWarning(err)
		return plan
	}
	if !plan.Skipped && plan.UnitCount() > 0 {
		lr.AddComponent("power supplies", estimate.RoundUpCents(plan.TotalCost))
	}
	return plan
}

// sheetSplit prices sheet-good usage: a setup fee for every sheet started
// plus material for the exact fractional usage. Two different roundings of
// one quantity; they are never collapsed. Waste inflates the raw area before
// the division, never after.
func sheetSplit(lr *estimate.LineResult, rawArea float64, rec rates.Record, setupLabel, materialLabel string) (started int, exact float64) {
	if rec.SheetArea <= 0 {
		return 0, 0
	}
	exact = rawArea * rec.Waste() / rec.SheetArea
	started = int(math.Ceil(exact))

	setup := rec.SetupFee.Mul(decimal.NewFromInt(int64(started)))
	material := rec.UnitPrice.Mul(decimal.NewFromFloat(exact))

	lr.AddComponent(setupLabel, setup)
	lr.AddComponent(materialLabel, estimate.RoundUpCents(material))
	return started, exact
}

// tieredCost prices a threshold-tier record: flat base up to the threshold,
// base plus marginal rate beyond it. A quantity past the hard maximum is a
// range-exceeded sentinel: zero cost plus a manual-review warning, and the
// caller keeps computing the rest of the line.
func tieredCost(lr *estimate.LineResult, label string, quantity float64, rec rates.Record, category string) bool {
	if rec.Maximum > 0 && quantity > rec.Maximum {
		lr.AddWarning(errors.RangeExceeded(category, quantity, rec.Maximum))
		return false
	}
	cost := rec.BaseFee
	if quantity > rec.Threshold {
		over := decimal.NewFromFloat(quantity - rec.Threshold)
		cost = cost.Add(rec.MarginalRate.Mul(over))
	}
	lr.AddComponent(label, estimate.RoundUpCents(cost))
	return true
}

// mulFloat multiplies a price by a float quantity and rounds up to cents.
func mulFloat(price decimal.Decimal, qty float64) decimal.Decimal {
	return estimate.RoundUpCents(price.Mul(decimal.NewFromFloat(qty)))
}

// mulInt multiplies a price by an integer count.
func mulInt(price decimal.Decimal, count int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(count)))
}

// fmtIn formats an inch measurement the way it was typed: no trailing zeros.
func fmtIn(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
