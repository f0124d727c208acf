// Package cmd - estimate command
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"signcost/adapters/jobfile"
	"signcost/adapters/ratefile"
	"signcost/categories"
	"signcost/core/estimate"
	"signcost/core/output"
	"signcost/internal/config"
	"signcost/internal/logging"
)

var (
	outputFormat string
	ratesPath    string
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate [job file]",
	Short: "Price a job file",
	Long: `Run the pricing engine over a YAML job file.

The job file carries the ordered line items and any customer preferences;
rates come from an HCL rate file.

Examples:
  signcost estimate job.yaml --rates rates.hcl
  signcost estimate job.yaml --rates rates.hcl --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	estimateCmd.Flags().StringVarP(&ratesPath, "rates", "r", "", "rate file (default from config)")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	startTime := time.Now()
	runID := uuid.NewString()

	jobPath := args[0]
	if _, err := os.Stat(jobPath); os.IsNotExist(err) {
		return fmt.Errorf("job file does not exist: %s", jobPath)
	}

	path := ratesPath
	if path == "" {
		path = config.Get().Rates.DefaultPath
	}

	snapshot, err := ratefile.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load rate file: %w", err)
	}

	job, err := jobfile.Load(jobPath)
	if err != nil {
		return fmt.Errorf("failed to load job file: %w", err)
	}

	logging.Info("starting estimate run",
		zap.String("run_id", runID),
		zap.String("job", job.Name),
		zap.Int("items", len(job.Items)),
		zap.String("rate_version", snapshot.Version))

	orch := estimate.NewOrchestrator(categories.All(), estimate.WithLogger(logging.Logger))
	result, err := orch.Run(job.Items, snapshot, job.Preferences)
	if err != nil {
		return fmt.Errorf("estimate run failed: %w", err)
	}

	format := outputFormat
	if format == "" {
		format = config.Get().Output.DefaultFormat
	}
	if err := output.New(format).Render(os.Stdout, result); err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}

	logging.Info("estimate run complete",
		zap.String("run_id", runID),
		zap.String("grand_total", result.GrandTotal.StringFixed(2)),
		zap.Duration("duration", time.Since(startTime)))
	return nil
}
