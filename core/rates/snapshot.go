// Package rates - Sealed rate-table snapshot.
// A snapshot is write-once: built through a Builder, sealed, then read-only
// for the lifetime of every estimate run that holds it.
package rates

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"signcost/internal/errors"
)

// Snapshot is an immutable point-in-time capture of the rate tables and
// system constants. Safe for concurrent use by multiple estimate runs.
type Snapshot struct {
	// EffectiveAt is when these rates became effective
	EffectiveAt time.Time

	// Version is the external rate-table version this was captured from
	Version string

	records      map[string]map[string]Record
	constants    map[string]decimal.Decimal
	strConstants map[string]string
	sealed       bool
}

// Lookup returns the record for (category, key). The second return is false
// on a miss; callers surface that as a manual-pricing warning, never as a
// silent zero rate.
func (s *Snapshot) Lookup(category, key string) (Record, bool) {
	byKey, ok := s.records[category]
	if !ok {
		return Record{}, false
	}
	rec, ok := byKey[strings.ToLower(strings.TrimSpace(key))]
	return rec, ok
}

// Keys returns the configured keys for a category, sorted.
func (s *Snapshot) Keys(category string) []string {
	byKey := s.records[category]
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Constant returns a numeric system constant.
func (s *Snapshot) Constant(name string) (decimal.Decimal, bool) {
	v, ok := s.constants[name]
	return v, ok
}

// ConstantFloat returns a numeric system constant as float64, with a default.
func (s *Snapshot) ConstantFloat(name string, def float64) float64 {
	if v, ok := s.constants[name]; ok {
		f, _ := v.Float64()
		return f
	}
	return def
}

// StringConstant returns a string-valued system constant (type names).
func (s *Snapshot) StringConstant(name string) (string, bool) {
	v, ok := s.strConstants[name]
	return v, ok
}

// Require verifies every named constant is present, in either the numeric or
// string table. It returns a single CONFIG_ERROR naming all missing constants
// so a broken rate file is diagnosed in one pass.
func (s *Snapshot) Require(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, ok := s.constants[name]; ok {
			continue
		}
		if _, ok := s.strConstants[name]; ok {
			continue
		}
		missing = append(missing, name)
	}
	if len(missing) > 0 {
		return errors.Config("rate table missing required constants: " + strings.Join(missing, ", "))
	}
	return nil
}

// Builder accumulates rates and constants, then seals them into a Snapshot.
// A Builder must not be reused after Build.
type Builder struct {
	snapshot *Snapshot
	built    bool
}

// NewBuilder creates a snapshot builder.
func NewBuilder() *Builder {
	return &Builder{
		snapshot: &Snapshot{
			records:      make(map[string]map[string]Record),
			constants:    make(map[string]decimal.Decimal),
			strConstants: make(map[string]string),
		},
	}
}

// EffectiveAt sets the snapshot effective date.
func (b *Builder) EffectiveAt(t time.Time) *Builder {
	b.mustOpen()
	b.snapshot.EffectiveAt = t
	return b
}

// Version sets the external rate-table version identifier.
func (b *Builder) Version(v string) *Builder {
	b.mustOpen()
	b.snapshot.Version = v
	return b
}

// AddRate registers a record under (category, key). Keys are case-insensitive.
func (b *Builder) AddRate(category, key string, rec Record) *Builder {
	b.mustOpen()
	byKey, ok := b.snapshot.records[category]
	if !ok {
		byKey = make(map[string]Record)
		b.snapshot.records[category] = byKey
	}
	byKey[strings.ToLower(strings.TrimSpace(key))] = rec
	return b
}

// AddConstant registers a numeric system constant.
func (b *Builder) AddConstant(name string, value decimal.Decimal) *Builder {
	b.mustOpen()
	b.snapshot.constants[name] = value
	return b
}

// AddStringConstant registers a string-valued system constant.
func (b *Builder) AddStringConstant(name, value string) *Builder {
	b.mustOpen()
	b.snapshot.strConstants[name] = value
	return b
}

// Build seals the snapshot. Further builder calls panic.
func (b *Builder) Build() *Snapshot {
	b.mustOpen()
	b.built = true
	b.snapshot.sealed = true
	return b.snapshot
}

func (b *Builder) mustOpen() {
	if b.built {
		panic("rates: builder used after Build")
	}
}
