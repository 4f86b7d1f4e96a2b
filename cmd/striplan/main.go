// Command striplan loads a domain/problem YAML pair, runs the striplan
// planner, and prints the resulting plan (or "No plan found"). See
// SPEC_FULL.md §6 for the CLI surface contract.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}
