package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/strips-go/striplan"
)

var (
	stepColor = color.New(color.FgCyan, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	okColor   = color.New(color.FgGreen, color.Bold)
)

// printPlan renders a solved plan as a numbered, colorized action list.
func printPlan(w io.Writer, plan []striplan.GroundAction) {
	if len(plan) == 0 {
		okColor.Fprintln(w, "(empty plan: goal already satisfied)")
		return
	}
	for i, a := range plan {
		stepColor.Fprintf(w, "%3d: ", i+1)
		fmt.Fprintln(w, a.String())
	}
}

// printNoPlan reports the ErrNoPlan terminal outcome (spec.md §7 — not a
// programming error, so it gets a plain status line, not a stack trace).
func printNoPlan(w io.Writer) {
	failColor.Fprintln(w, "No plan found")
}
