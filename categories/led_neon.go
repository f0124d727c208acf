// Package categories - LED neon calculator.
package categories

import (
	"fmt"
	"math"

	"signcost/core/dimension"
	"signcost/core/estimate"
	"signcost/core/rates"
	"signcost/internal/errors"
)

// LEDNeon prices flexible LED neon by the linear foot.
type LEDNeon struct{}

// NewLEDNeon creates the calculator.
func NewLEDNeon() *LEDNeon { return &LEDNeon{} }

// Category returns the line-item category key.
func (n *LEDNeon) Category() string { return "led_neon" }

// Compute prices one LED neon line. Runs is a list of segment lengths in
// inches; billing rounds the combined length up to whole feet.
func (n *LEDNeon) Compute(ctx *estimate.Context) *estimate.LineResult {
	lr := estimate.NewLineResult(n.Category())

	dims, err := ctx.ParseDims("runs", dimension.GrammarList)
	if err != nil {
		lr.AddWarning(err)
		lr.Description = "LED neon (unparseable run list)"
		return lr
	}

	neonType := ctx.Field("neon_type")
	if neonType == "" {
		neonType = "standard"
	}

	feet := math.Ceil(dims.Total() / 12)

	rec, ok := ctx.LookupRate(rates.CategoryNeon, neonType)
	var watts float64
	if !ok {
		lr.AddWarning(errors.LookupMiss(rates.CategoryNeon, neonType))
	} else if rec.Maximum > 0 && feet > rec.Maximum {
		lr.AddWarning(errors.RangeExceeded(n.Category(), feet, rec.Maximum))
		lr.Description = fmt.Sprintf("%s ft %s LED neon (over run limit)", fmtIn(feet), neonType)
		return lr
	} else {
		lr.AddComponent("LED neon", mulFloat(rec.UnitPrice, feet))
		watts = rec.Watts * feet
	}

	plan := addPowerSupplies(ctx, lr, watts, ctx.ULRequired())
	ctx.ChargeUL(lr)

	lr.Description = fmt.Sprintf("%s ft %s LED neon, %d segments", fmtIn(feet), neonType, len(dims.Rows()))
	if plan.UnitCount() > 0 {
		lr.Description += fmt.Sprintf(", %d power supplies", plan.UnitCount())
	}

	if ok {
		lr.ApplyMinCharge(rec.MinCharge)
	}
	return lr
}
