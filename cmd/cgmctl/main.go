// Command cgmctl is a command-line front-end over the causal structure
// discovery engines: it loads a CSV dataset and runs PC-Stable or
// Hill-Climbing against it, printing the discovered graph's edge list
// and optionally a DOT file. Grounded on jinterlante1206-AleutianLocal's
// cobra command tree (root command + RunE subcommands).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
