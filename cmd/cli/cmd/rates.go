// Package cmd - rates commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"signcost/adapters/ratefile"
	"signcost/core/rates"
)

// ratesCmd groups rate-file operations
var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Inspect and validate rate files",
}

// ratesValidateCmd checks a rate file for completeness
var ratesValidateCmd = &cobra.Command{
	Use:   "validate [rate file]",
	Short: "Validate a rate file",
	Long: `Parse a rate file and verify the base constants every estimate run
depends on are present.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot, err := ratefile.Load(args[0])
		if err != nil {
			return err
		}
		if err := snapshot.Require(rates.RequiredConstants...); err != nil {
			return err
		}

		fmt.Printf("%s: OK (version %q", args[0], snapshot.Version)
		if !snapshot.EffectiveAt.IsZero() {
			fmt.Printf(", effective %s", snapshot.EffectiveAt.Format("2006-01-02"))
		}
		fmt.Println(")")
		return nil
	},
}

func init() {
	ratesCmd.AddCommand(ratesValidateCmd)
}
