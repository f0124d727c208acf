// Package cmd provides the CLI commands for signcost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"signcost/internal/config"
	"signcost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "signcost",
	Short: "Price custom sign manufacturing jobs",
	Long: `signcost is a pricing engine for custom sign manufacturing.

It computes per-line-item cost breakdowns for channel letters, blade signs,
LED neon, push-thru panels, and the other shop categories, threading
job-level UL certification state and multiplier/discount adjustments in
line-item order.

Examples:
  signcost estimate job.yaml --rates rates.hcl
  signcost estimate job.yaml --rates rates.hcl --format json
  signcost rates validate rates.hcl`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.signcost/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	logCfg := config.Get().Logging
	if verbose {
		logCfg.Level = "debug"
	}
	if err := logging.Initialize(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
}

// versionCmd prints the build version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the signcost version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("signcost 0.1.0")
	},
}
