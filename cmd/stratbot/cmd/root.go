package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stratbot",
	Short: "An automated strategy execution engine with daily risk governance",
	Long: `Stratbot runs a catalog of toggleable trading strategies on a fixed tick,
synthesizing simulated trade outcomes and enforcing hard daily risk limits.

It provides:
  - A strategy registry with per-strategy cumulative stats
  - A risk governor that halts the session on a daily loss breach
  - A bounded session ledger plus a durable SQLite/CSV trade journal
  - A config-driven scheduler (arm/disarm) for periodic evaluation

All trade outcomes are SIMULATED. Nothing here routes real orders.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
