// Package categories - wiring and mounting hardware calculator.
package categories

import (
	"fmt"

	"signcost/core/estimate"
	"signcost/core/rates"
)

// Wiring prices electrical whips and mounting hardware from the system
// constant unit costs.
type Wiring struct{}

// NewWiring creates the calculator.
func NewWiring() *Wiring { return &Wiring{} }

// Category returns the line-item category key.
func (w *Wiring) Category() string { return "wiring" }

// Compute prices one wiring line: runs of wire by the foot, plus pins and
// standoffs by the unit.
func (w *Wiring) Compute(ctx *estimate.Context) *estimate.LineResult {
	lr := estimate.NewLineResult(w.Category())

	runs := int(ctx.FieldFloat("runs", 0))
	length := ctx.FieldFloat("length", 0)
	pins := int(ctx.FieldFloat("pins", 0))
	standoffs := int(ctx.FieldFloat("standoffs", 0))

	if runs > 0 && length > 0 {
		wireRate := ctx.Constant(rates.ConstWirePerFoot)
		lr.AddComponent("wire runs", mulFloat(wireRate, float64(runs)*length))
	}
	if pins > 0 {
		lr.AddComponent("mounting pins", mulInt(ctx.Constant(rates.ConstPinUnit), pins))
	}
	if standoffs > 0 {
		lr.AddComponent("standoffs", mulInt(ctx.Constant(rates.ConstStandoffUnit), standoffs))
	}

	desc := "wiring and hardware"
	if runs > 0 && length > 0 {
		desc = fmt.Sprintf("%d wire runs @ %s ft", runs, fmtIn(length))
	}
	if pins > 0 {
		desc += fmt.Sprintf(", %d pins", pins)
	}
	if standoffs > 0 {
		desc += fmt.Sprintf(", %d standoffs", standoffs)
	}
	lr.Description = desc

	return lr
}
