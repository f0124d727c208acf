// Package categories contains one cost calculator per product category.
// Calculators consume parsed dimensions, resolved overrides, and the sealed
// rate snapshot; they emit a labeled cost breakdown and never resolve
// anything outside the snapshot they are handed.
package categories

import (
	"signcost/core/estimate"
)

// All returns every built-in category calculator, ready to hand to an
// orchestrator. Multiplier and discount lines are orchestrator-level and
// have no calculator here.
func All() []estimate.Calculator {
	return []estimate.Calculator{
		NewChannelLetters(),
		NewBladeSign(),
		NewLEDNeon(),
		NewPushThru(),
		NewBackerPanel(),
		NewSubstrateCut(),
		NewVinyl(),
		NewPainting(),
		NewWiring(),
		NewMaterialCut(),
		NewShipping(),
		NewCustom(),
	}
}
