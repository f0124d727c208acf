// Package override implements the four-level fallback hierarchy used to
// resolve every configurable attribute: explicit item override, then
// category/material default, then customer or job preference, then the
// system-wide constant.
//
// The legacy system expressed this as nested conditional formulas where an
// empty cell and a zero were easy to confuse. Here the distinction is carried
// in the type: zero is an Explicit value meaning "deliberately none", while
// an empty field is Unset and falls through the hierarchy.
package override

import (
	"strconv"
	"strings"
)

// Kind is the tri-state-plus-unset tag of an override value.
type Kind int

const (
	// Unset means the field was empty: fall through the hierarchy.
	Unset Kind = iota

	// Explicit means the item carries its own value, numeric or text.
	// Any parseable number is Explicit, zero and negatives included.
	Explicit

	// Auto forces the computed/derived value, even over a stored preference.
	Auto

	// Suppressed turns the whole sub-feature off. Terminal, not a fall-through.
	Suppressed
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case Explicit:
		return "explicit"
	case Auto:
		return "auto"
	case Suppressed:
		return "suppressed"
	}
	return "unset"
}

// Value is one parsed override field.
type Value struct {
	Kind Kind

	// Num carries the numeric payload of an Explicit value.
	Num float64

	// HasNum reports whether Num is meaningful.
	HasNum bool

	// Text carries the textual payload of an Explicit value (type names).
	Text string
}

// ParseField interprets a raw field cell as an override value.
func ParseField(raw string) Value {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	switch cleaned {
	case "":
		return Value{Kind: Unset}
	case "auto", "yes":
		return Value{Kind: Auto}
	case "no", "none", "skip", "off":
		return Value{Kind: Suppressed}
	}
	if n, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return Value{Kind: Explicit, Num: n, HasNum: true}
	}
	return Value{Kind: Explicit, Text: strings.TrimSpace(raw)}
}

// FromNumber builds an explicit numeric value.
func FromNumber(n float64) Value {
	return Value{Kind: Explicit, Num: n, HasNum: true}
}

// State classifies the outcome of a resolution.
type State int

const (
	// StateValue means a concrete value was resolved.
	StateValue State = iota

	// StateComputed means the caller must derive the value itself.
	StateComputed

	// StateOff means the sub-feature is suppressed entirely.
	StateOff
)

// StringResult is the outcome of resolving a string-valued attribute.
type StringResult struct {
	State State
	Value string
}

// offWords are default strings that read as "feature disabled". A customer
// whose stored preference is "none" has opted the feature off, not left it
// unconfigured.
func isOffWord(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "no", "none", "off":
		return true
	}
	return false
}

// ResolveString resolves a string attribute (LED type, power supply type,
// material) through the hierarchy. Precedence, first match wins:
//
//  1. explicit item override
//  2. "auto": force the computed value even over preferences
//  3. "no"/"none": suppress the feature
//  4. category/material built-in default
//  5. customer or job preference
//  6. system default
func ResolveString(v Value, categoryDefault, customerPref, systemDefault string) StringResult {
	switch v.Kind {
	case Explicit:
		if v.HasNum {
			// A numeric override of a string attribute still short-circuits;
			// callers treat it as a key.
			return StringResult{State: StateValue, Value: strconv.FormatFloat(v.Num, 'f', -1, 64)}
		}
		return StringResult{State: StateValue, Value: v.Text}
	case Auto:
		return StringResult{State: StateComputed}
	case Suppressed:
		return StringResult{State: StateOff}
	}

	for _, fallback := range []string{categoryDefault, customerPref, systemDefault} {
		if strings.TrimSpace(fallback) == "" {
			continue
		}
		if isOffWord(fallback) {
			return StringResult{State: StateOff}
		}
		return StringResult{State: StateValue, Value: fallback}
	}
	return StringResult{State: StateComputed}
}

// NumberResult is the outcome of resolving a numeric attribute.
type NumberResult struct {
	State State
	Value float64
}

// ResolveNumber resolves a numeric attribute through the same ladder.
// Fallbacks use NaN-free sentinel semantics: pass negative values for levels
// that have no opinion.
func ResolveNumber(v Value, categoryDefault, customerPref, systemDefault float64) NumberResult {
	switch v.Kind {
	case Explicit:
		if v.HasNum {
			return NumberResult{State: StateValue, Value: v.Num}
		}
		// Textual override of a numeric attribute cannot be applied.
		return NumberResult{State: StateComputed}
	case Auto:
		return NumberResult{State: StateComputed}
	case Suppressed:
		return NumberResult{State: StateOff}
	}

	for _, fallback := range []float64{categoryDefault, customerPref, systemDefault} {
		if fallback >= 0 {
			return NumberResult{State: StateValue, Value: fallback}
		}
	}
	return NumberResult{State: StateComputed}
}
