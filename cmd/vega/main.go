package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "vega",
	Short: "VEGA - 0DTE options trading dashboard",
	Long: `VEGA is a browser dashboard for same-day-expiry options trading.
It serves index quotes, a volatility snapshot, AI trade signals,
strategy P&L and the options chain for a small set of tracked symbols.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug mode")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
