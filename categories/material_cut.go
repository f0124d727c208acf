// Package categories - material cutting service calculator.
package categories

import (
	"fmt"
	"math"

	"signcost/core/dimension"
	"signcost/core/estimate"
	"signcost/core/rates"
	"signcost/internal/errors"
)

// MaterialCut prices router/laser cutting by the inch of cut path.
type MaterialCut struct{}

// NewMaterialCut creates the calculator.
func NewMaterialCut() *MaterialCut { return &MaterialCut{} }

// Category returns the line-item category key.
func (m *MaterialCut) Category() string { return "material_cut" }

// Compute prices one cutting line. The cut_length field lists the cut path
// inches per piece, each row optionally "inches x count".
func (m *MaterialCut) Compute(ctx *estimate.Context) *estimate.LineResult {
	lr := estimate.NewLineResult(m.Category())

	dims, err := ctx.ParseDims("cut_length", dimension.GrammarList)
	if err != nil {
		lr.AddWarning(err)
		lr.Description = "material cutting (unparseable cut list)"
		return lr
	}

	material := ctx.Field("material")
	if material == "" {
		material = "acrylic"
	}

	rec, ok := ctx.LookupRate(rates.CategoryMaterialCut, material)
	if !ok {
		lr.AddWarning(errors.LookupMiss(rates.CategoryMaterialCut, material))
		lr.Description = fmt.Sprintf("%s cutting", material)
		return lr
	}

	inches := math.Ceil(dims.Total())
	if rec.Maximum > 0 && inches > rec.Maximum {
		lr.AddWarning(errors.RangeExceeded(m.Category(), inches, rec.Maximum))
		lr.Description = fmt.Sprintf("%s cutting, %s in of cut path (over machine limit)", material, fmtIn(inches))
		return lr
	}

	lr.AddComponent("machine setup", rec.SetupFee)
	lr.AddComponent("cutting", mulFloat(rec.UnitPrice, inches))

	lr.Description = fmt.Sprintf("%s cutting, %s in of cut path", material, fmtIn(inches))

	lr.ApplyMinCharge(rec.MinCharge)
	return lr
}
