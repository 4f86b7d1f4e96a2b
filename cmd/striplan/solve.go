package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/strips-go/striplan"
	"github.com/strips-go/striplan/domain"
)

var (
	domainPath  string
	problemPath string
	heuristic   string
	explain     bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Find a plan from a domain/problem YAML pair",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&domainPath, "domain", "", "path to domain YAML file (required)")
	solveCmd.Flags().StringVar(&problemPath, "problem", "", "path to problem YAML file (required)")
	solveCmd.Flags().StringVar(&heuristic, "heuristic", "h_add", "heuristic to use: h_max or h_add")
	solveCmd.Flags().BoolVar(&explain, "explain", false, "dump the relaxed planning graph before solving")
	solveCmd.MarkFlagRequired("domain")
	solveCmd.MarkFlagRequired("problem")
}

func parseHeuristic(s string) (striplan.HeuristicMode, error) {
	switch s {
	case "h_max":
		return striplan.HMax, nil
	case "h_add":
		return striplan.HAdd, nil
	default:
		return 0, fmt.Errorf("unknown heuristic %q (want h_max or h_add)", s)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	mode, err := parseHeuristic(heuristic)
	if err != nil {
		return err
	}

	prob, err := domain.LoadYAML(domainPath, problemPath)
	if err != nil {
		return err
	}

	planner := striplan.NewPlanner(prob, mode)
	logger.Debug().Str("heuristic", mode.String()).Msg("planner constructed")

	if explain {
		fmt.Fprintln(cmd.OutOrStdout(), planner.RPG().Dump())
	}

	plan, err := planner.Solve(prob.InitialState())
	if err != nil {
		if errors.Is(err, striplan.ErrNoPlan) {
			printNoPlan(cmd.OutOrStdout())
			return nil
		}
		return err
	}

	printPlan(cmd.OutOrStdout(), plan)
	return nil
}
