// Package categories - custom entry calculator.
package categories

import (
	"fmt"

	"github.com/shopspring/decimal"

	"signcost/core/estimate"
	"signcost/internal/errors"
)

// Custom passes a manually priced entry through the engine so it still
// participates in ordering, multipliers, and the job total.
type Custom struct{}

// NewCustom creates the calculator.
func NewCustom() *Custom { return &Custom{} }

// Category returns the line-item category key.
func (c *Custom) Category() string { return "custom" }

// Compute records the caller-supplied amount and description.
func (c *Custom) Compute(ctx *estimate.Context) *estimate.LineResult {
	lr := estimate.NewLineResult(c.Category())

	raw := ctx.Field("amount")
	if raw == "" {
		lr.AddWarning(errors.New(errors.TypeInput, "custom entry requires an amount field"))
		lr.Description = "custom entry (no amount)"
		return lr
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		lr.AddWarning(errors.Wrapf(errors.TypeParse, err, "custom amount %q is not a number", raw))
		lr.Description = "custom entry (unparseable amount)"
		return lr
	}

	qty := ctx.Quantity()
	lr.AddComponent("custom amount", amount.Mul(decimal.NewFromInt(int64(qty))).Round(2))

	desc := ctx.Field("description")
	if desc == "" {
		desc = "custom entry"
	}
	if qty > 1 {
		desc += fmt.Sprintf(" (qty %d)", qty)
	}
	lr.Description = desc

	return lr
}
