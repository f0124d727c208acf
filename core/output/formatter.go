// Package output provides output formatting interfaces.
// This package produces human and machine-readable renderings of an estimate.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"signcost/core/estimate"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *estimate.EstimateResult) error
}

// New returns the formatter for a format name, defaulting to CLI.
func New(format string) Formatter {
	if Format(format) == FormatJSON {
		return &jsonFormatter{}
	}
	return &cliFormatter{}
}

type jsonFormatter struct{}

func (f *jsonFormatter) Format() Format { return FormatJSON }

func (f *jsonFormatter) Render(w io.Writer, result *estimate.EstimateResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

type cliFormatter struct{}

func (f *cliFormatter) Format() Format { return FormatCLI }

func (f *cliFormatter) Render(w io.Writer, result *estimate.EstimateResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "#\tCATEGORY\tDESCRIPTION\tAMOUNT")
	for _, line := range result.Lines {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			line.Index+1, line.Category, line.Description, line.Total.StringFixed(2))
		for _, comp := range line.Components {
			fmt.Fprintf(tw, "\t\t  %s\t%s\n", comp.Label, comp.Amount.StringFixed(2))
		}
	}
	fmt.Fprintf(tw, "\t\tTOTAL\t%s\n", result.GrandTotal.StringFixed(2))
	if err := tw.Flush(); err != nil {
		return err
	}

	var warnings []string
	for _, line := range result.Lines {
		for _, warn := range line.Warnings {
			warnings = append(warnings, fmt.Sprintf("line %d [%s]: %s", line.Index+1, warn.Code, warn.Message))
		}
	}
	if len(warnings) > 0 {
		fmt.Fprintf(w, "\nWarnings:\n  %s\n", strings.Join(warnings, "\n  "))
	}
	return nil
}
