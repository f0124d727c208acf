// Package categories - channel letter calculator.
// Letters are priced per vertical inch by style, with LED modules sized per
// letter by the larger of a stroke-area estimate and a perimeter estimate.
package categories

import (
	"fmt"
	"math"

	"signcost/core/dimension"
	"signcost/core/estimate"
	"signcost/core/rates"
	"signcost/internal/errors"
)

// Letter stroke geometry approximations. Channel letter faces are roughly a
// third stroke by area, and the illuminated perimeter runs a little under
// the bounding square's.
const (
	strokeAreaFactor      = 0.35
	strokePerimeterFactor = 0.8
	moduleSpacingInches   = 3.0
)

// ChannelLetters prices illuminated channel letter sets.
type ChannelLetters struct{}

// NewChannelLetters creates the calculator.
func NewChannelLetters() *ChannelLetters { return &ChannelLetters{} }

// Category returns the line-item category key.
func (c *ChannelLetters) Category() string { return "channel_letters" }

// Compute prices one channel letter line. The letters field is a list of
// letter heights, each row optionally "height x count".
func (c *ChannelLetters) Compute(ctx *estimate.Context) *estimate.LineResult {
	lr := estimate.NewLineResult(c.Category())

	dims, err := ctx.ParseDims("letters", dimension.GrammarList)
	if err != nil {
		lr.AddWarning(err)
		lr.Description = "channel letters (unparseable letter list)"
		return lr
	}

	style := ctx.Field("style")
	if style == "" {
		style = "front-lit"
	}
	depth := 5.0
	if raw := ctx.Field("depth"); raw != "" {
		d, err := dimension.Parse(raw, dimension.GrammarSingle)
		if err != nil {
			lr.AddWarning(err)
		} else {
			depth = d.Total()
		}
	}

	letterCount := 0
	for _, row := range dims.Rows() {
		letterCount += row.Count
	}

	styleRec, ok := ctx.LookupRate(rates.CategoryChannel, style)
	if !ok {
		lr.AddWarning(errors.LookupMiss(rates.CategoryChannel, style))
	} else {
		lr.AddComponent("letter fabrication", mulFloat(styleRec.UnitPrice, dims.Total()))
	}

	// LED sizing: summed stroke area vs. summed illuminated perimeter, the
	// larger estimate wins after the resolved type's coverage is applied.
	var strokeArea, perimModules float64
	for _, row := range dims.Rows() {
		h := row.Value
		strokeArea += h * h * strokeAreaFactor * float64(row.Count)
		perimModules += h * 4 * strokePerimeterFactor / moduleSpacingInches * float64(row.Count)
	}

	leds := resolveLEDs(ctx, lr, strokeArea, perimModules)

	var planUnits int
	if !leds.Off {
		plan := addPowerSupplies(ctx, lr, leds.Watts, ctx.ULRequired())
		planUnits = plan.UnitCount()
	}

	ctx.ChargeUL(lr)

	desc := fmt.Sprintf("%s\" deep %s channel letters, %d letters", fmtIn(depth), style, letterCount)
	if !leds.Off && leds.Modules > 0 {
		desc += fmt.Sprintf(", %d %s LED modules (%sW)", leds.Modules, leds.Type, fmtIn(math.Ceil(leds.Watts)))
	}
	if planUnits > 0 {
		desc += fmt.Sprintf(", %d power supplies", planUnits)
	}
	lr.Description = desc

	if ok {
		lr.ApplyMinCharge(styleRec.MinCharge)
	}
	return lr
}
