// Package categories - painting calculator.
package categories

import (
	"fmt"
	"math"

	"signcost/core/dimension"
	"signcost/core/estimate"
	"signcost/core/rates"
	"signcost/internal/errors"
)

// Painting prices spray finishing by coverage area plus a per-color mix fee.
type Painting struct{}

// NewPainting creates the calculator.
func NewPainting() *Painting { return &Painting{} }

// Category returns the line-item category key.
func (p *Painting) Category() string { return "painting" }

// Compute prices one painting line.
func (p *Painting) Compute(ctx *estimate.Context) *estimate.LineResult {
	lr := estimate.NewLineResult(p.Category())

	dims, err := ctx.ParseDims("size", dimension.GrammarPair)
	if err != nil {
		lr.AddWarning(err)
		lr.Description = "painting (unparseable size)"
		return lr
	}

	finish := ctx.Field("finish")
	if finish == "" {
		finish = "standard"
	}
	colors := int(ctx.FieldFloat("colors", 1))
	if colors < 1 {
		colors = 1
	}

	rec, ok := ctx.LookupRate(rates.CategoryPainting, finish)
	if !ok {
		lr.AddWarning(errors.LookupMiss(rates.CategoryPainting, finish))
		lr.Description = fmt.Sprintf("painting, %s finish", finish)
		return lr
	}

	sqft := math.Ceil(dims.Area() / 144)
	lr.AddComponent("paint coverage", mulFloat(rec.UnitPrice, sqft))
	lr.AddComponent("color mixing", mulInt(rec.SetupFee, colors))

	lr.Description = fmt.Sprintf("%s paint, %s sq ft, %d colors", finish, fmtIn(sqft), colors)

	lr.ApplyMinCharge(rec.MinCharge)
	return lr
}
