// Package ul tracks UL certification charges across the line items of one
// estimate run. UL is priced per job: a one-time base fee absorbed by the
// first UL-bearing line item in display order, plus a per-set fee for every
// certified set.
package ul

import (
	"github.com/shopspring/decimal"
)

// JobState is the cross-line-item accumulator for one estimate run. It is
// created fresh at the start of a run, threaded by reference through the
// calculators in line-item order, and discarded afterwards — never persisted,
// never shared between jobs.
type JobState struct {
	seenFirst bool

	// Sets is the running count of certified sets in the job.
	Sets int
}

// NewJobState creates a fresh accumulator.
func NewJobState() *JobState {
	return &JobState{}
}

// SeenFirst reports whether a UL-bearing item has already absorbed the base fee.
func (s *JobState) SeenFirst() bool { return s.seenFirst }

// Charge computes the UL cost for one line item and advances the state.
// Reordering line items moves the base fee to a different item; that is
// intentional business behavior.
func (s *JobState) Charge(required bool, baseFee, perSetFee decimal.Decimal, sets int) decimal.Decimal {
	if !required {
		return decimal.Zero
	}
	if sets <= 0 {
		sets = 1
	}

	cost := perSetFee.Mul(decimal.NewFromInt(int64(sets)))
	if !s.seenFirst {
		cost = cost.Add(baseFee)
		s.seenFirst = true
	}
	s.Sets += sets
	return cost
}
