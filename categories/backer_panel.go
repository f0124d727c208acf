// Package categories - backer panel calculator.
// Folded pans are entered depth-first (DxWxH): the return depth keeps its
// position while the face pair sorts, so a 3" return on a 48x24 pan never
// reads as a 48" return on a 3x24 pan.
package categories

import (
	"fmt"

	"signcost/core/dimension"
	"signcost/core/estimate"
	"signcost/core/rates"
	"signcost/internal/errors"
)

// BackerPanel prices folded aluminum backer pans cut from sheet stock.
type BackerPanel struct{}

// NewBackerPanel creates the calculator.
func NewBackerPanel() *BackerPanel { return &BackerPanel{} }

// Category returns the line-item category key.
func (b *BackerPanel) Category() string { return "backer_panel" }

// Compute prices one backer panel line.
func (b *BackerPanel) Compute(ctx *estimate.Context) *estimate.LineResult {
	lr := estimate.NewLineResult(b.Category())

	dims, err := ctx.ParseDims("size", dimension.GrammarPairDepth)
	if err != nil {
		lr.AddWarning(err)
		lr.Description = "backer panel (unparseable size)"
		return lr
	}

	material := ctx.Field("material")
	if material == "" {
		material = "aluminum-063"
	}
	qty := ctx.Quantity()

	// The flat blank unfolds the returns on all four edges.
	blank := (dims.Width() + 2*dims.Depth()) * (dims.Height() + 2*dims.Depth())

	matRec, haveMat := ctx.LookupRate(rates.CategoryMaterial, material)
	if !haveMat {
		lr.AddWarning(errors.LookupMiss(rates.CategoryMaterial, material))
	} else {
		sheetSplit(lr, blank*float64(qty), matRec, "sheet setup", "sheet material")
	}

	panelRec, havePanel := ctx.LookupRate(rates.CategoryBacker, "panel")
	if !havePanel {
		lr.AddWarning(errors.LookupMiss(rates.CategoryBacker, "panel"))
	} else {
		folding := mulFloat(panelRec.UnitPrice, dims.Perimeter()*float64(qty))
		lr.AddComponent("folding and welding", folding)
	}

	ctx.ChargeUL(lr)

	lr.Description = fmt.Sprintf("%sx%s backer pan, %s\" returns, %s", fmtIn(dims.Width()), fmtIn(dims.Height()), fmtIn(dims.Depth()), material)
	if qty > 1 {
		lr.Description += fmt.Sprintf(" (qty %d)", qty)
	}

	if havePanel {
		lr.ApplyMinCharge(panelRec.MinCharge)
	}
	return lr
}
