// Package power selects power supplies and transformers for a wattage load.
// Two strategies: a UL-optimized bin combination over a small and a large
// unit size, and a standard per-unit division against a single preferred
// type. Every LED-bearing category shares this selector.
package power

import (
	"math"

	"github.com/shopspring/decimal"

	"signcost/core/override"
	"signcost/core/rates"
	"signcost/internal/errors"
)

// Plan is the selected set of power supply units for one line item.
type Plan struct {
	// UnitsByType maps power supply type key to unit count.
	UnitsByType map[string]int

	// TotalCost is the summed unit cost.
	TotalCost decimal.Decimal

	// WattsServed is the combined rated capacity of the selected units.
	// At least the requested wattage unless skipped or explicitly counted.
	WattsServed float64

	// Skipped is set when the override suppressed power supplies entirely.
	Skipped bool
}

func emptyPlan() Plan {
	return Plan{UnitsByType: map[string]int{}, TotalCost: decimal.Zero}
}

// UnitCount returns the total number of units in the plan.
func (p Plan) UnitCount() int {
	n := 0
	for _, c := range p.UnitsByType {
		n += c
	}
	return n
}

// Select builds a power supply plan for totalWatts.
//
// Override short-circuit first: a suppressed override (or an explicit zero)
// skips power supplies entirely; an explicit positive count is taken at face
// value with no wattage check. Otherwise the UL-optimized path runs when the
// item requires UL or the customer's preferred type is the small optimized
// unit; the standard path divides by a single unit's rated capacity.
//
// Zero watts yields a zero-cost empty plan, not a skip: the distinction
// matters to callers that still describe the line as LED-capable.
func Select(totalWatts float64, ulRequired bool, preferredType string, countOverride override.Value, snap *rates.Snapshot) (Plan, error) {
	smallType, _ := snap.StringConstant(rates.ConstPSSmallType)
	largeType, _ := snap.StringConstant(rates.ConstPSLargeType)
	defaultType, _ := snap.StringConstant(rates.ConstPSDefaultType)

	useOptimization := ulRequired || (preferredType != "" && preferredType == smallType)

	switch countOverride.Kind {
	case override.Suppressed:
		p := emptyPlan()
		p.Skipped = true
		return p, nil
	case override.Explicit:
		if !countOverride.HasNum {
			break
		}
		count := int(countOverride.Num)
		if count <= 0 {
			// Explicit zero is "deliberately none".
			p := emptyPlan()
			p.Skipped = true
			return p, nil
		}
		unitType := defaultType
		if useOptimization {
			unitType = smallType
		} else if preferredType != "" {
			unitType = preferredType
		}
		rec, ok := snap.Lookup(rates.CategoryPowerSupply, unitType)
		if !ok {
			return emptyPlan(), errors.LookupMiss(rates.CategoryPowerSupply, unitType)
		}
		return Plan{
			UnitsByType: map[string]int{unitType: count},
			TotalCost:   rec.UnitPrice.Mul(decimal.NewFromInt(int64(count))),
			WattsServed: rec.RatedWatts * float64(count),
		}, nil
	}

	if totalWatts == 0 {
		return emptyPlan(), nil
	}

	if useOptimization {
		return selectOptimized(totalWatts, smallType, largeType, snap)
	}

	unitType := preferredType
	if unitType == "" {
		unitType = defaultType
	}
	rec, ok := snap.Lookup(rates.CategoryPowerSupply, unitType)
	if !ok {
		return emptyPlan(), errors.LookupMiss(rates.CategoryPowerSupply, unitType)
	}
	count := int(math.Ceil(totalWatts / rec.RatedWatts))
	return Plan{
		UnitsByType: map[string]int{unitType: count},
		TotalCost:   rec.UnitPrice.Mul(decimal.NewFromInt(int64(count))),
		WattsServed: rec.RatedWatts * float64(count),
	}, nil
}

// selectOptimized combines small and large units to cover totalWatts with
// the fewest units. With remainder = totalWatts mod largeWatts:
//
//	remainder == 0            -> large units only
//	remainder <= smallWatts   -> one small unit absorbs the remainder
//	otherwise                 -> round up to one more large unit
//
// The boundary case remainder == smallWatts lands in the one-small-unit
// branch: a remainder the small unit exactly covers never upsizes.
func selectOptimized(totalWatts float64, smallType, largeType string, snap *rates.Snapshot) (Plan, error) {
	small, ok := snap.Lookup(rates.CategoryPowerSupply, smallType)
	if !ok {
		return emptyPlan(), errors.LookupMiss(rates.CategoryPowerSupply, smallType)
	}
	large, ok := snap.Lookup(rates.CategoryPowerSupply, largeType)
	if !ok {
		return emptyPlan(), errors.LookupMiss(rates.CategoryPowerSupply, largeType)
	}

	// Fractional watts flow into mod/ceil unrounded.
	remainder := math.Mod(totalWatts, large.RatedWatts)

	var largeCount, smallCount int
	switch {
	case remainder == 0:
		largeCount = int(totalWatts / large.RatedWatts)
	case remainder <= small.RatedWatts:
		largeCount = int(math.Floor(totalWatts / large.RatedWatts))
		smallCount = 1
	default:
		largeCount = int(math.Ceil(totalWatts / large.RatedWatts))
	}

	plan := emptyPlan()
	if largeCount > 0 {
		plan.UnitsByType[largeType] = largeCount
		plan.TotalCost = plan.TotalCost.Add(large.UnitPrice.Mul(decimal.NewFromInt(int64(largeCount))))
		plan.WattsServed += large.RatedWatts * float64(largeCount)
	}
	if smallCount > 0 {
		plan.UnitsByType[smallType] = smallCount
		plan.TotalCost = plan.TotalCost.Add(small.UnitPrice.Mul(decimal.NewFromInt(int64(smallCount))))
		plan.WattsServed += small.RatedWatts * float64(smallCount)
	}
	return plan, nil
}
