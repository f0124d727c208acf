// Package categories - blade sign calculator.
package categories

import (
	"fmt"

	"signcost/core/dimension"
	"signcost/core/estimate"
	"signcost/core/rates"
	"signcost/internal/errors"
)

// BladeSign prices projecting blade signs: a threshold-tiered frame, faces
// by area, and optional illumination.
type BladeSign struct{}

// NewBladeSign creates the calculator.
func NewBladeSign() *BladeSign { return &BladeSign{} }

// Category returns the line-item category key.
func (b *BladeSign) Category() string { return "blade_sign" }

// Compute prices one blade sign. Size is WxH with interchangeable axes.
func (b *BladeSign) Compute(ctx *estimate.Context) *estimate.LineResult {
	lr := estimate.NewLineResult(b.Category())

	dims, err := ctx.ParseDims("size", dimension.GrammarPair)
	if err != nil {
		lr.AddWarning(err)
		lr.Description = "blade sign (unparseable size)"
		return lr
	}

	sides := int(ctx.FieldFloat("sides", 2))
	if sides < 1 {
		sides = 1
	}
	area := dims.Area()

	frameRec, ok := ctx.LookupRate(rates.CategoryBlade, "frame")
	if !ok {
		lr.AddWarning(errors.LookupMiss(rates.CategoryBlade, "frame"))
	} else {
		tieredCost(lr, "frame and assembly", area, frameRec, b.Category())
	}

	if faceRec, ok := ctx.LookupRate(rates.CategoryBlade, "face"); ok {
		lr.AddComponent("faces", mulFloat(faceRec.UnitPrice, area*float64(sides)))
	} else {
		lr.AddWarning(errors.LookupMiss(rates.CategoryBlade, "face"))
	}

	// Both faces illuminate from one shared cabinet of modules.
	litArea := area * float64(sides)
	leds := resolveLEDs(ctx, lr, litArea, 0)
	if !leds.Off {
		addPowerSupplies(ctx, lr, leds.Watts, ctx.ULRequired())
	}

	ctx.ChargeUL(lr)

	sideWord := "single-sided"
	if sides == 2 {
		sideWord = "double-sided"
	}
	lr.Description = fmt.Sprintf("%sx%s %s blade sign", fmtIn(dims.Width()), fmtIn(dims.Height()), sideWord)
	if !leds.Off && leds.Modules > 0 {
		lr.Description += fmt.Sprintf(", %d %s LED modules", leds.Modules, leds.Type)
	}

	if ok {
		lr.ApplyMinCharge(frameRec.MinCharge)
	}
	return lr
}
