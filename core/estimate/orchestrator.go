// Package estimate - estimate orchestrator.
// Runs calculators strictly in input order: order carries meaning for UL
// base-fee absorption and for multiplier/discount scope.
package estimate

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"signcost/core/rates"
	"signcost/core/ul"
	"signcost/internal/errors"
)

// Adjustment category keys handled by the orchestrator itself.
const (
	CategoryMultiplier = "multiplier"
	CategoryDiscount   = "discount"
)

// Orchestrator dispatches line items to registered calculators and applies
// multiplier/discount adjustments. Safe for concurrent Run calls: all
// per-job state lives in the run, not the orchestrator.
type Orchestrator struct {
	calculators map[string]Calculator
	logger      *zap.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the orchestrator logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// NewOrchestrator creates an orchestrator with the given calculators.
func NewOrchestrator(calculators []Calculator, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		calculators: make(map[string]Calculator, len(calculators)),
		logger:      zap.NewNop(),
	}
	for _, c := range calculators {
		o.calculators[c.Category()] = c
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run executes one estimate. A missing base constant is the only fatal
// error; everything per-line degrades to warnings on that line.
//
// Runs are pure and bounded: same items, same snapshot, same result.
func (o *Orchestrator) Run(items []LineItemInput, snap *rates.Snapshot, prefs Preferences) (*EstimateResult, error) {
	if snap == nil {
		return nil, errors.Config("nil rate-table snapshot")
	}
	if err := snap.Require(rates.RequiredConstants...); err != nil {
		return nil, err
	}

	result := &EstimateResult{GrandTotal: decimal.Zero}
	state := ul.NewJobState()

	// sectionStart marks the first line after the previous adjustment item;
	// section-scoped adjustments cover [sectionStart, current).
	sectionStart := 0

	for i, item := range items {
		var lr *LineResult

		switch item.Category {
		case CategoryMultiplier:
			lr = o.applyMultiplier(item, result.Lines, sectionStart)
			sectionStart = i + 1
		case CategoryDiscount:
			lr = o.applyDiscount(item, result.Lines, sectionStart)
			sectionStart = i + 1
		default:
			lr = o.computeLine(item, snap, prefs, state)
		}

		lr.Index = i
		result.Lines = append(result.Lines, lr)
		result.GrandTotal = result.GrandTotal.Add(lr.Total)

		o.logger.Debug("line computed",
			zap.Int("index", i),
			zap.String("category", item.Category),
			zap.String("total", lr.Total.String()),
			zap.Int("warnings", len(lr.Warnings)))
	}

	result.ULSets = state.Sets
	return result, nil
}

func (o *Orchestrator) computeLine(item LineItemInput, snap *rates.Snapshot, prefs Preferences, state *ul.JobState) *LineResult {
	calc, ok := o.calculators[item.Category]
	if !ok {
		lr := NewLineResult(item.Category)
		lr.Description = "unknown category"
		lr.AddWarning(errors.Newf(errors.TypeInput, "no calculator registered for category %q", item.Category))
		return lr
	}

	ctx := &Context{Item: item, Rates: snap, Prefs: prefs, UL: state}
	return calc.Compute(ctx)
}

// scopeSubtotal sums the amounts an adjustment operates on. Section scope
// covers the lines since the previous adjustment; job scope covers every
// preceding line, earlier adjustments included — which is what makes
// stacked adjustments cascade instead of re-reading raw subtotals.
func scopeSubtotal(lines []*LineResult, sectionStart int, scope string) decimal.Decimal {
	start := 0
	if scope != "job" {
		start = sectionStart
	}
	subtotal := decimal.Zero
	for _, lr := range lines[start:] {
		subtotal = subtotal.Add(lr.Total)
	}
	return subtotal
}

func (o *Orchestrator) applyMultiplier(item LineItemInput, lines []*LineResult, sectionStart int) *LineResult {
	lr := NewLineResult(CategoryMultiplier)

	factor := item.FieldFloat("factor", 0)
	if factor <= 0 {
		lr.Description = "multiplier (invalid factor)"
		lr.AddWarning(errors.Newf(errors.TypeInput, "multiplier requires a positive factor, got %q", item.Field("factor")))
		return lr
	}

	scope := item.Field("scope")
	subtotal := scopeSubtotal(lines, sectionStart, scope)
	adjustment := subtotal.Mul(decimal.NewFromFloat(factor).Sub(decimal.NewFromInt(1))).Round(2)

	scopeName := "section"
	if scope == "job" {
		scopeName = "job"
	}
	lr.AddComponent(fmt.Sprintf("%gx multiplier (%s)", factor, scopeName), adjustment)
	lr.Description = fmt.Sprintf("%gx multiplier on %s subtotal %s", factor, scopeName, subtotal.StringFixed(2))
	return lr
}

func (o *Orchestrator) applyDiscount(item LineItemInput, lines []*LineResult, sectionStart int) *LineResult {
	lr := NewLineResult(CategoryDiscount)

	scope := item.Field("scope")
	scopeName := "section"
	if scope == "job" {
		scopeName = "job"
	}

	if pct := item.FieldFloat("percent", 0); pct > 0 {
		subtotal := scopeSubtotal(lines, sectionStart, scope)
		adjustment := subtotal.Mul(decimal.NewFromFloat(pct)).Div(decimal.NewFromInt(100)).Round(2).Neg()
		lr.AddComponent(fmt.Sprintf("%g%% discount (%s)", pct, scopeName), adjustment)
		lr.Description = fmt.Sprintf("%g%% discount on %s subtotal %s", pct, scopeName, subtotal.StringFixed(2))
		return lr
	}

	if amt := item.FieldFloat("amount", 0); amt > 0 {
		adjustment := decimal.NewFromFloat(amt).Round(2).Neg()
		lr.AddComponent("discount", adjustment)
		lr.Description = fmt.Sprintf("discount of %s", adjustment.Neg().StringFixed(2))
		return lr
	}

	lr.Description = "discount (no amount)"
	lr.AddWarning(errors.New(errors.TypeInput, "discount requires a percent or amount field"))
	return lr
}
