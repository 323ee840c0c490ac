package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaunpsauer/Actuals/pkg/constants"
)

var (
	// cfgFile holds the path to the configuration file; overridable with
	// --config.
	cfgFile string

	// logLevel overrides the configured log level when set.
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "actuals",
	Short: "Transform SAP cost-accounting exports into HeavyBid import workbooks",
	Long: `actuals converts a SAP cost-accounting export (one row per ledger
posting for a single accounting order) into the three-sheet HeavyBid import
workbook: the Actuals Report, the Actual BoE notes, and the Resource File.

The SAP export is expected to carry the columns Order, Operation,
Cost Element, Cost element name, Partner-CCtr, Total quantity, and
Val.in rep.cur. Rows without an Order value (subtotal and header rows) are
ignored.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", constants.DefaultConfigFile, "path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
}
