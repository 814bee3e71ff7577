package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var verbose int

	rootCmd := &cobra.Command{
		Use:   "textparse",
		Short: "Combinator-based text parsing tools",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}
	rootCmd.PersistentFlags().IntVarP(&verbose, "verbose", "v", 0, "log verbosity (engine traces at 2 and above)")

	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newSumCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
