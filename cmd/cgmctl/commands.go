package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "cgmctl",
	Short: "Discover causal graphical model structure from tabular data",
}

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Run a structure discovery engine over a CSV dataset",
}

func init() {
	rootCmd.AddCommand(discoverCmd)
	discoverCmd.AddCommand(pcCmd)
	discoverCmd.AddCommand(hcCmd)
}
