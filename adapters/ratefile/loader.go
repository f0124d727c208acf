// Package ratefile loads rate-table snapshots from HCL files.
//
// A rate file carries the externally owned pricing configuration: system
// constants plus one rate block per (category, key) pair:
//
//	version      = "2025-08"
//	effective_at = "2025-08-01"
//
//	constants {
//	  ul_base_fee   = 150
//	  ps_small_type = "ul-60"
//	}
//
//	rate "power_supply" "ul-60" {
//	  unit_price  = 42.50
//	  rated_watts = 60
//	}
package ratefile

import (
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"signcost/core/rates"
	"signcost/internal/errors"
)

var fileSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "version"},
		{Name: "effective_at"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "constants"},
		{Type: "rate", LabelNames: []string{"category", "key"}},
	},
}

type rateBody struct {
	UnitPrice    float64 `hcl:"unit_price,optional"`
	SetupFee     float64 `hcl:"setup_fee,optional"`
	BaseFee      float64 `hcl:"base_fee,optional"`
	MarginalRate float64 `hcl:"marginal_rate,optional"`
	MinCharge    float64 `hcl:"min_charge,optional"`
	Threshold    float64 `hcl:"threshold,optional"`
	Maximum      float64 `hcl:"maximum,optional"`
	Watts        float64 `hcl:"watts,optional"`
	RatedWatts   float64 `hcl:"rated_watts,optional"`
	Coverage     float64 `hcl:"coverage,optional"`
	SheetArea    float64 `hcl:"sheet_area,optional"`
	WasteFactor  float64 `hcl:"waste_factor,optional"`
}

// Load parses an HCL rate file into a sealed snapshot.
func Load(path string) (*rates.Snapshot, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Wrapf(errors.TypeConfig, diags, "failed to parse rate file %s", path)
	}
	return build(file.Body, path)
}

// LoadBytes parses rate-file source already in memory (tests, embedding).
func LoadBytes(src []byte, filename string) (*rates.Snapshot, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(errors.TypeConfig, diags, "failed to parse rate source %s", filename)
	}
	return build(file.Body, filename)
}

func build(body hcl.Body, path string) (*rates.Snapshot, error) {
	content, diags := body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, errors.Wrapf(errors.TypeConfig, diags, "invalid rate file %s", path)
	}

	builder := rates.NewBuilder()

	if attr, ok := content.Attributes["version"]; ok {
		var version string
		if diags := gohcl.DecodeExpression(attr.Expr, nil, &version); !diags.HasErrors() {
			builder.Version(version)
		}
	}
	if attr, ok := content.Attributes["effective_at"]; ok {
		var raw string
		if diags := gohcl.DecodeExpression(attr.Expr, nil, &raw); !diags.HasErrors() {
			if t, err := time.Parse("2006-01-02", raw); err == nil {
				builder.EffectiveAt(t)
			}
		}
	}

	for _, block := range content.Blocks {
		switch block.Type {
		case "constants":
			if err := decodeConstants(block, builder); err != nil {
				return nil, err
			}
		case "rate":
			var rb rateBody
			if diags := gohcl.DecodeBody(block.Body, nil, &rb); diags.HasErrors() {
				return nil, errors.Wrapf(errors.TypeConfig, diags,
					"invalid rate block %s/%s", block.Labels[0], block.Labels[1])
			}
			builder.AddRate(block.Labels[0], block.Labels[1], rates.Record{
				UnitPrice:    decimal.NewFromFloat(rb.UnitPrice),
				SetupFee:     decimal.NewFromFloat(rb.SetupFee),
				BaseFee:      decimal.NewFromFloat(rb.BaseFee),
				MarginalRate: decimal.NewFromFloat(rb.MarginalRate),
				MinCharge:    decimal.NewFromFloat(rb.MinCharge),
				Threshold:    rb.Threshold,
				Maximum:      rb.Maximum,
				Watts:        rb.Watts,
				RatedWatts:   rb.RatedWatts,
				Coverage:     rb.Coverage,
				SheetArea:    rb.SheetArea,
				WasteFactor:  rb.WasteFactor,
			})
		}
	}

	return builder.Build(), nil
}

// decodeConstants accepts any attribute name: numbers become numeric
// constants, strings become string constants (type-name defaults).
func decodeConstants(block *hcl.Block, builder *rates.Builder) error {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return errors.Wrap(errors.TypeConfig, "invalid constants block", diags)
	}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return errors.Wrapf(errors.TypeConfig, diags, "invalid constant %s", name)
		}
		switch val.Type() {
		case cty.Number:
			dec, err := decimal.NewFromString(val.AsBigFloat().Text('f', -1))
			if err != nil {
				return errors.Wrapf(errors.TypeConfig, err, "constant %s is not a valid number", name)
			}
			builder.AddConstant(name, dec)
		case cty.String:
			builder.AddStringConstant(name, val.AsString())
		default:
			return errors.Newf(errors.TypeConfig, "constant %s must be a number or string", name)
		}
	}
	return nil
}
