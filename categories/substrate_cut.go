// Package categories - substrate cut calculator.
package categories

import (
	"fmt"
	"math"

	"signcost/core/dimension"
	"signcost/core/estimate"
	"signcost/core/rates"
	"signcost/internal/errors"
)

// SubstrateCut prices parts cut from substrate sheet stock. The setup fee
// bills per sheet started; material bills the exact fractional usage.
type SubstrateCut struct{}

// NewSubstrateCut creates the calculator.
func NewSubstrateCut() *SubstrateCut { return &SubstrateCut{} }

// Category returns the line-item category key.
func (s *SubstrateCut) Category() string { return "substrate_cut" }

// Compute prices one substrate cut line. Area comes from an explicit "area"
// total in sq in, or from a WxH size field.
func (s *SubstrateCut) Compute(ctx *estimate.Context) *estimate.LineResult {
	lr := estimate.NewLineResult(s.Category())

	var area float64
	if raw := ctx.Field("area"); raw != "" {
		dims, err := dimension.Parse(raw, dimension.GrammarFreeformTotal)
		if err != nil {
			lr.AddWarning(err)
			lr.Description = "substrate cut (unparseable area)"
			return lr
		}
		area = dims.Total()
	} else {
		dims, err := ctx.ParseDims("size", dimension.GrammarPair)
		if err != nil {
			lr.AddWarning(err)
			lr.Description = "substrate cut (unparseable size)"
			return lr
		}
		area = dims.Area()
	}

	material := ctx.Field("material")
	if material == "" {
		material = "acm-3mm"
	}
	qty := ctx.Quantity()
	area *= float64(qty)

	rec, ok := ctx.LookupRate(rates.CategoryMaterial, material)
	if !ok {
		lr.AddWarning(errors.LookupMiss(rates.CategoryMaterial, material))
		lr.Description = fmt.Sprintf("substrate cut, %s sq in %s", fmtIn(area), material)
		return lr
	}

	started, _ := sheetSplit(lr, area, rec, "cut setup", "substrate material")

	lr.Description = fmt.Sprintf("substrate cut, %s sq in %s, %d sheets started",
		fmtIn(math.Ceil(area)), material, started)

	lr.ApplyMinCharge(rec.MinCharge)
	return lr
}
