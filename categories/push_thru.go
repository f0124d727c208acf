// Package categories - push-thru panel calculator.
package categories

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"signcost/core/dimension"
	"signcost/core/estimate"
	"signcost/core/rates"
	"signcost/internal/errors"
)

// Share of the backer face taken up by push-thru copy when the caller does
// not supply a measured copy area.
const defaultCopyShare = 0.4

// PushThru prices push-thru letter panels: a sheet-good backer, routed
// acrylic copy, and LED illumination behind the copy.
type PushThru struct{}

// NewPushThru creates the calculator.
func NewPushThru() *PushThru { return &PushThru{} }

// Category returns the line-item category key.
func (p *PushThru) Category() string { return "push_thru" }

// Compute prices one push-thru panel.
func (p *PushThru) Compute(ctx *estimate.Context) *estimate.LineResult {
	lr := estimate.NewLineResult(p.Category())

	dims, err := ctx.ParseDims("size", dimension.GrammarPair)
	if err != nil {
		lr.AddWarning(err)
		lr.Description = "push-thru panel (unparseable size)"
		return lr
	}
	area := dims.Area()

	copyArea := area * defaultCopyShare
	if raw := ctx.Field("copy_area"); raw != "" {
		copyDims, err := dimension.Parse(raw, dimension.GrammarFreeformTotal)
		if err != nil {
			lr.AddWarning(err)
		} else {
			copyArea = copyDims.Total()
		}
	}

	backerRec, haveBacker := ctx.LookupRate(rates.CategoryPushThru, "backer")
	if !haveBacker {
		lr.AddWarning(errors.LookupMiss(rates.CategoryPushThru, "backer"))
	} else {
		sheetSplit(lr, area, backerRec, "backer setup", "backer material")
	}

	// Acrylic copy: the larger of an area-priced estimate and a routing
	// estimate that scales with the copy outline (square root of area).
	if acrylicRec, ok := ctx.LookupRate(rates.CategoryPushThru, "acrylic"); ok {
		areaCost := acrylicRec.UnitPrice.Mul(decimal.NewFromFloat(copyArea))
		routeCost := acrylicRec.MarginalRate.Mul(decimal.NewFromFloat(math.Sqrt(copyArea)))
		cost := areaCost
		if routeCost.GreaterThan(cost) {
			cost = routeCost
		}
		lr.AddComponent("push-thru acrylic", estimate.RoundUpCents(cost))
	} else {
		lr.AddWarning(errors.LookupMiss(rates.CategoryPushThru, "acrylic"))
	}

	leds := resolveLEDs(ctx, lr, copyArea, 0)
	if !leds.Off {
		addPowerSupplies(ctx, lr, leds.Watts, ctx.ULRequired())
	}

	ctx.ChargeUL(lr)

	lr.Description = fmt.Sprintf("%sx%s push-thru panel, %s sq in copy",
		fmtIn(dims.Width()), fmtIn(dims.Height()), fmtIn(math.Ceil(copyArea)))
	if !leds.Off && leds.Modules > 0 {
		lr.Description += fmt.Sprintf(", %d LED modules", leds.Modules)
	}

	if haveBacker {
		lr.ApplyMinCharge(backerRec.MinCharge)
	}
	return lr
}
