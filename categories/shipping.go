// Package categories - shipping calculator.
package categories

import (
	"fmt"
	"math"

	"signcost/core/estimate"
	"signcost/core/rates"
	"signcost/internal/errors"
)

// Carrier dimensional-weight divisor (cubic inches per pound).
const dimWeightDivisor = 139.0

// Shipping prices crating and freight on billable weight: the larger of
// actual and dimensional weight, rounded up to whole pounds.
type Shipping struct{}

// NewShipping creates the calculator.
func NewShipping() *Shipping { return &Shipping{} }

// Category returns the line-item category key.
func (s *Shipping) Category() string { return "shipping" }

// Compute prices one shipping line from length/width/height/weight fields.
func (s *Shipping) Compute(ctx *estimate.Context) *estimate.LineResult {
	lr := estimate.NewLineResult(s.Category())

	length := ctx.FieldFloat("length", 0)
	width := ctx.FieldFloat("width", 0)
	height := ctx.FieldFloat("height", 0)
	actual := ctx.FieldFloat("weight", 0)

	if actual <= 0 && (length <= 0 || width <= 0 || height <= 0) {
		lr.AddWarning(errors.New(errors.TypeInput, "shipping requires a weight or full box dimensions"))
		lr.Description = "shipping (missing weight and dimensions)"
		return lr
	}

	method := ctx.Field("method")
	if method == "" {
		method = "ground"
	}

	rec, ok := ctx.LookupRate(rates.CategoryShipping, method)
	if !ok {
		lr.AddWarning(errors.LookupMiss(rates.CategoryShipping, method))
		lr.Description = fmt.Sprintf("shipping via %s", method)
		return lr
	}

	dimensional := length * width * height / dimWeightDivisor
	billable := math.Ceil(math.Max(actual, dimensional))

	lr.AddComponent("crating and handling", rec.BaseFee)
	lr.AddComponent("freight", mulFloat(rec.UnitPrice, billable))

	lr.Description = fmt.Sprintf("shipping via %s, %s lb billable", method, fmtIn(billable))
	if dimensional > actual {
		lr.Description += " (dimensional)"
	}

	lr.ApplyMinCharge(rec.MinCharge)
	return lr
}
