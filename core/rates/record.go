// Package rates provides the immutable rate-table snapshot consumed by
// every category calculator. Rates are externally owned and versioned;
// the engine only ever sees a sealed point-in-time capture.
package rates

import (
	"github.com/shopspring/decimal"
)

// Record holds the configured pricing for one (category, key) pair.
// Which fields are meaningful depends on the category: an LED module record
// carries Watts and Coverage, a sheet-good record carries SheetArea and
// SetupFee, a power supply record carries RatedWatts.
type Record struct {
	// UnitPrice is the price per unit (sheet, module, foot, pound, sq in)
	UnitPrice decimal.Decimal `json:"unit_price"`

	// SetupFee is a per-sheet or per-job setup charge
	SetupFee decimal.Decimal `json:"setup_fee"`

	// BaseFee is the flat component of a tiered or base-plus-rate price
	BaseFee decimal.Decimal `json:"base_fee"`

	// MarginalRate is the per-unit rate applied above Threshold
	MarginalRate decimal.Decimal `json:"marginal_rate"`

	// MinCharge is a post-summation floor for the whole line (zero = none)
	MinCharge decimal.Decimal `json:"min_charge"`

	// Threshold is the quantity at which MarginalRate starts to apply
	Threshold float64 `json:"threshold"`

	// Maximum is the hard quantity limit; beyond it pricing needs manual review
	Maximum float64 `json:"maximum"`

	// Watts is the power draw per unit (LED module, neon foot)
	Watts float64 `json:"watts"`

	// RatedWatts is the load capacity of a power supply or transformer
	RatedWatts float64 `json:"rated_watts"`

	// Coverage is the sq-in area one LED module illuminates
	Coverage float64 `json:"coverage"`

	// SheetArea is the sq-in area of one sheet of this material
	SheetArea float64 `json:"sheet_area"`

	// WasteFactor inflates raw area before sheet division (1.0 = no waste)
	WasteFactor float64 `json:"waste_factor"`
}

// Waste returns the waste factor, defaulting to 1.0 when unconfigured.
func (r Record) Waste() float64 {
	if r.WasteFactor <= 0 {
		return 1.0
	}
	return r.WasteFactor
}

// Rate-table category names. Calculators look rates up under these.
const (
	CategoryLED         = "led"
	CategoryPowerSupply = "power_supply"
	CategoryMaterial    = "material"
	CategoryChannel     = "channel_letters"
	CategoryBlade       = "blade_sign"
	CategoryNeon        = "led_neon"
	CategoryPushThru    = "push_thru"
	CategoryBacker      = "backer_panel"
	CategoryVinyl       = "vinyl"
	CategoryPainting    = "painting"
	CategoryMaterialCut = "material_cut"
	CategoryShipping    = "shipping"
)

// System constant names. Require lists the ones every run depends on.
const (
	ConstULBaseFee     = "ul_base_fee"
	ConstULSetFee      = "ul_set_fee"
	ConstWirePerFoot   = "wire_per_foot"
	ConstPinUnit       = "pin_unit"
	ConstStandoffUnit  = "standoff_unit"
	ConstPSSmallType   = "ps_small_type"
	ConstPSLargeType   = "ps_large_type"
	ConstPSDefaultType = "ps_default_type"
)

// RequiredConstants are the base constants all downstream math depends on.
// A snapshot missing any of them aborts the whole estimate run.
var RequiredConstants = []string{
	ConstULBaseFee,
	ConstULSetFee,
	ConstWirePerFoot,
	ConstPinUnit,
	ConstStandoffUnit,
	ConstPSSmallType,
	ConstPSLargeType,
	ConstPSDefaultType,
}
