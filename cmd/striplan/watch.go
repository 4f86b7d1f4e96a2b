package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	bt "github.com/joeycumines/go-behaviortree"
	"github.com/spf13/cobra"
	"github.com/strips-go/striplan"
	"github.com/strips-go/striplan/domain"
)

var (
	watchDomainPath  string
	watchProblemPath string
	watchHeuristic   string
	watchTickDelay   time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Step through A* search one tick at a time in a terminal UI",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchDomainPath, "domain", "", "path to domain YAML file (required)")
	watchCmd.Flags().StringVar(&watchProblemPath, "problem", "", "path to problem YAML file (required)")
	watchCmd.Flags().StringVar(&watchHeuristic, "heuristic", "h_add", "heuristic to use: h_max or h_add")
	watchCmd.Flags().DurationVar(&watchTickDelay, "delay", 50*time.Millisecond, "delay between search ticks")
	watchCmd.MarkFlagRequired("domain")
	watchCmd.MarkFlagRequired("problem")
}

// runWatch drives Planner.SearchNode one tick per frame, rendering open-list
// and closed-set size live via tcell — grounded on the teacher's own
// tcell-pick-and-place example (sim.Config{Screen}, screen.SetContent,
// screen.Show), repurposed here to visualize search progress instead of a
// grid simulation.
func runWatch(cmd *cobra.Command, args []string) error {
	mode, err := parseHeuristic(watchHeuristic)
	if err != nil {
		return err
	}
	prob, err := domain.LoadYAML(watchDomainPath, watchProblemPath)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	planner := striplan.NewPlanner(prob, mode)
	node := planner.SearchNode(prob.InitialState())
	tick, _ := node()

	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	ticks := 0

	for {
		select {
		case <-quit:
			return nil
		default:
		}

		st, err := tick(nil)
		ticks++
		drawWatchFrame(screen, planner, mode, ticks, st, err)

		if err != nil {
			return err
		}
		if st == bt.Success || st == bt.Failure {
			waitForQuit(screen, quit)
			return nil
		}
		time.Sleep(watchTickDelay)
	}
}

func waitForQuit(screen tcell.Screen, quit chan struct{}) {
	<-quit
}

func drawWatchFrame(screen tcell.Screen, planner *striplan.Planner, mode striplan.HeuristicMode, ticks int, st bt.Status, err error) {
	screen.Clear()
	lines := []string{
		fmt.Sprintf("striplan watch — heuristic=%s", mode),
		fmt.Sprintf("tick %d", ticks),
		fmt.Sprintf("open list size: %d", planner.OpenLen()),
		fmt.Sprintf("expanded states: %d", planner.Expanded()),
		fmt.Sprintf("status: %v", st),
	}
	if err != nil {
		lines = append(lines, fmt.Sprintf("error: %s", err))
	}
	if st == bt.Failure {
		lines = append(lines, "no plan found")
	}
	lines = append(lines, "press q to quit")
	for y, line := range lines {
		for x, r := range line {
			screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		}
	}
	screen.Show()
}
