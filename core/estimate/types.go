// Package estimate defines the engine's line-item types and the orchestrator
// that runs category calculators in document order.
package estimate

import (
	"github.com/shopspring/decimal"

	"signcost/internal/errors"
)

// LineItemInput is one raw line item supplied by the caller. The engine
// never mutates it.
type LineItemInput struct {
	// Category is the product category key (e.g. "channel_letters").
	Category string `json:"category" yaml:"category"`

	// Fields maps field names to raw text or numeric values.
	Fields map[string]interface{} `json:"fields" yaml:"fields"`

	// Overrides maps attribute names to raw override text. A field of the
	// same name is consulted when no entry exists here.
	Overrides map[string]string `json:"overrides,omitempty" yaml:"overrides,omitempty"`

	// Position is the display-order index within the job.
	Position int `json:"position" yaml:"position"`
}

// Field returns a raw field as string, empty when absent.
func (li LineItemInput) Field(name string) string {
	switch v := li.Fields[name].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return stringify(v)
	}
}

// FieldFloat returns a raw field as float64 with a default.
func (li LineItemInput) FieldFloat(name string, def float64) float64 {
	switch v := li.Fields[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		if f, err := decimal.NewFromString(v); err == nil {
			out, _ := f.Float64()
			return out
		}
	}
	return def
}

func stringify(v interface{}) string {
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n).String()
	case int:
		return decimal.NewFromInt(int64(n)).String()
	case bool:
		if n {
			return "yes"
		}
		return "no"
	}
	return ""
}

// Preferences is the customer/job preference map, consumed read-only.
type Preferences map[string]string

// Preference keys.
const (
	PrefLEDType         = "led_type"
	PrefPowerSupplyType = "power_supply_type"
	PrefNoLEDs          = "no_leds"
	PrefULDefault       = "ul_default"
)

// Get returns a preference value, empty when absent.
func (p Preferences) Get(key string) string {
	if p == nil {
		return ""
	}
	return p[key]
}

// Warning is a non-fatal problem attached to a line result. Sentinel costs
// never flow into totals; the failure is carried here instead.
type Warning struct {
	Code    errors.Type `json:"code"`
	Message string      `json:"message"`
}

// WarningFromError converts a domain error into a line warning.
func WarningFromError(err error) Warning {
	if e, ok := err.(*errors.Error); ok {
		return Warning{Code: e.Type, Message: e.Message}
	}
	return Warning{Code: errors.TypeInternal, Message: err.Error()}
}

// Component is one labeled amount in a line's cost breakdown.
type Component struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// LineResult is the computed outcome for one line item.
type LineResult struct {
	// Index is the line's position within the estimate.
	Index int `json:"index"`

	// Category echoes the input category.
	Category string `json:"category"`

	// Components is the ordered cost breakdown.
	Components []Component `json:"components"`

	// Total is the summed, clamped line total.
	Total decimal.Decimal `json:"total"`

	// Description is the human-readable line presentation.
	Description string `json:"description"`

	// Sets is the number of UL-certified sets this line contributed.
	Sets int `json:"sets,omitempty"`

	// Warnings lists non-fatal problems (parse errors, manual-pricing flags).
	Warnings []Warning `json:"warnings,omitempty"`
}

// NewLineResult creates an empty result for a category.
func NewLineResult(category string) *LineResult {
	return &LineResult{Category: category, Total: decimal.Zero}
}

// AddComponent appends a breakdown component and adds it to the total.
func (lr *LineResult) AddComponent(label string, amount decimal.Decimal) {
	lr.Components = append(lr.Components, Component{Label: label, Amount: amount})
	lr.Total = lr.Total.Add(amount)
}

// AddWarning attaches a warning built from a domain error.
func (lr *LineResult) AddWarning(err error) {
	lr.Warnings = append(lr.Warnings, WarningFromError(err))
}

// HasWarning reports whether a warning of the given code is attached.
func (lr *LineResult) HasWarning(code errors.Type) bool {
	for _, w := range lr.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

// ApplyMinCharge clamps the line total up to min after all components are
// summed. The shortfall appears as its own component so the breakdown still
// sums to the total.
func (lr *LineResult) ApplyMinCharge(min decimal.Decimal) {
	if min.IsPositive() && lr.Total.LessThan(min) {
		lr.AddComponent("minimum charge", min.Sub(lr.Total))
	}
}

// EstimateResult is the full outcome of one orchestrator run.
type EstimateResult struct {
	// Lines is the ordered list of line results, adjustments included.
	Lines []*LineResult `json:"lines"`

	// GrandTotal is the cascaded job total.
	GrandTotal decimal.Decimal `json:"grand_total"`

	// ULSets is the total number of certified sets across the job.
	ULSets int `json:"ul_sets,omitempty"`
}

// RoundUpCents rounds a charge up to the next cent. Chargeable amounts are
// never rounded down.
func RoundUpCents(d decimal.Decimal) decimal.Decimal {
	return d.RoundCeil(2)
}
