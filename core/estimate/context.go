// Package estimate - calculation context handed to category calculators.
package estimate

import (
	"strings"

	"github.com/shopspring/decimal"

	"signcost/core/dimension"
	"signcost/core/override"
	"signcost/core/rates"
	"signcost/core/ul"
)

// Context carries everything one calculator invocation needs: the raw item,
// the sealed rate snapshot, customer preferences, and the job's UL state.
type Context struct {
	Item  LineItemInput
	Rates *rates.Snapshot
	Prefs Preferences
	UL    *ul.JobState
}

// Field returns a raw field value.
func (c *Context) Field(name string) string {
	return c.Item.Field(name)
}

// FieldFloat returns a raw field as float64 with a default.
func (c *Context) FieldFloat(name string, def float64) float64 {
	return c.Item.FieldFloat(name, def)
}

// Override returns the parsed override for an attribute. The dedicated
// overrides map wins; a plain field of the same name is the fallback.
func (c *Context) Override(name string) override.Value {
	if c.Item.Overrides != nil {
		if raw, ok := c.Item.Overrides[name]; ok {
			return override.ParseField(raw)
		}
	}
	return override.ParseField(c.Field(name))
}

// ParseDims parses a dimension field under a grammar.
func (c *Context) ParseDims(field string, g dimension.Grammar) (dimension.Dims, error) {
	return dimension.Parse(c.Field(field), g)
}

// Quantity returns the item quantity, minimum 1.
func (c *Context) Quantity() int {
	q := int(c.FieldFloat("quantity", 1))
	if q < 1 {
		return 1
	}
	return q
}

// ULRequired resolves the item's "ul" field against the customer default.
func (c *Context) ULRequired() bool {
	switch c.Override("ul").Kind {
	case override.Auto:
		return true
	case override.Suppressed:
		return false
	case override.Explicit:
		v := c.Override("ul")
		if v.HasNum {
			return v.Num != 0
		}
		return strings.EqualFold(v.Text, "yes")
	}
	return strings.EqualFold(c.Prefs.Get(PrefULDefault), "yes")
}

// ULSets returns the certified set count for this item, default 1.
func (c *Context) ULSets() int {
	sets := int(c.FieldFloat("ul_sets", 1))
	if sets < 1 {
		return 1
	}
	return sets
}

// ChargeUL applies the job-level UL charge for this item and records it on
// the result. Must be called at most once per line, in line order.
func (c *Context) ChargeUL(lr *LineResult) {
	if !c.ULRequired() {
		return
	}
	baseFee, _ := c.Rates.Constant(rates.ConstULBaseFee)
	perSet, _ := c.Rates.Constant(rates.ConstULSetFee)
	sets := c.ULSets()
	cost := c.UL.Charge(true, baseFee, perSet, sets)
	lr.Sets = sets
	lr.AddComponent("UL certification", cost)
}

// PreferredLEDType resolves the LED type for this item through the override
// hierarchy. Off means the item carries no LEDs.
func (c *Context) PreferredLEDType(categoryDefault string) override.StringResult {
	pref := c.Prefs.Get(PrefLEDType)
	if strings.EqualFold(c.Prefs.Get(PrefNoLEDs), "yes") && pref == "" {
		pref = "none"
	}
	return override.ResolveString(c.Override("led_type"), categoryDefault, pref, "")
}

// LookupRate is sugar over the snapshot lookup.
func (c *Context) LookupRate(category, key string) (rates.Record, bool) {
	return c.Rates.Lookup(category, key)
}

// Constant is sugar over the snapshot numeric constant lookup.
func (c *Context) Constant(name string) decimal.Decimal {
	v, _ := c.Rates.Constant(name)
	return v
}

// Calculator prices one product category.
type Calculator interface {
	// Category returns the line-item category key this calculator handles.
	Category() string

	// Compute prices one line item. It always returns a result; failures
	// surface as warnings on the result, never as silent zero rates.
	Compute(ctx *Context) *LineResult
}
