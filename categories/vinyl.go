// Package categories - vinyl calculator.
package categories

import (
	"fmt"
	"math"

	"signcost/core/dimension"
	"signcost/core/estimate"
	"signcost/core/rates"
	"signcost/internal/errors"
)

// Vinyl prices cut or printed vinyl by the square foot, with a per-item
// application fee.
type Vinyl struct{}

// NewVinyl creates the calculator.
func NewVinyl() *Vinyl { return &Vinyl{} }

// Category returns the line-item category key.
func (v *Vinyl) Category() string { return "vinyl" }

// Compute prices one vinyl line.
func (v *Vinyl) Compute(ctx *estimate.Context) *estimate.LineResult {
	lr := estimate.NewLineResult(v.Category())

	dims, err := ctx.ParseDims("size", dimension.GrammarPair)
	if err != nil {
		lr.AddWarning(err)
		lr.Description = "vinyl (unparseable size)"
		return lr
	}

	vinylType := ctx.Field("vinyl_type")
	if vinylType == "" {
		vinylType = "cut-standard"
	}
	qty := ctx.Quantity()

	rec, ok := ctx.LookupRate(rates.CategoryVinyl, vinylType)
	if !ok {
		lr.AddWarning(errors.LookupMiss(rates.CategoryVinyl, vinylType))
		lr.Description = fmt.Sprintf("%sx%s %s vinyl", fmtIn(dims.Width()), fmtIn(dims.Height()), vinylType)
		return lr
	}

	// Roll waste inflates the area before the square-foot round-up.
	sqft := math.Ceil(dims.Area() * rec.Waste() / 144)
	lr.AddComponent("vinyl", mulFloat(rec.UnitPrice, sqft*float64(qty)))
	if rec.SetupFee.IsPositive() {
		lr.AddComponent("application", mulInt(rec.SetupFee, qty))
	}

	lr.Description = fmt.Sprintf("%sx%s %s vinyl, %s sq ft", fmtIn(dims.Width()), fmtIn(dims.Height()), vinylType, fmtIn(sqft))
	if qty > 1 {
		lr.Description += fmt.Sprintf(" (qty %d)", qty)
	}

	lr.ApplyMinCharge(rec.MinCharge)
	return lr
}
