package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/danielpatrickdp/limbic-state/internal/config"
	"github.com/danielpatrickdp/limbic-state/internal/replay"
	"github.com/danielpatrickdp/limbic-state/internal/state"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to replay fixture JSON")
	verbose := flag.Bool("v", false, "print every turn, not just mismatches")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [-v]")
		os.Exit(2)
	}

	fixture, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	summary, err := replay.Run(fixture, config.Default())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if fixture.Description != "" {
		fmt.Printf("%s\n\n", fixture.Description)
	}
	for _, r := range summary.Results {
		if len(r.Mismatches) == 0 {
			if *verbose {
				fmt.Printf("PASS %-12s emotion=%s urgency=%s mode=%s\n", r.TurnID, r.Emotion, r.Urgency, r.Mode)
			}
			continue
		}
		fmt.Printf("FAIL %-12s %s\n", r.TurnID, strings.Join(r.Mismatches, "; "))
	}

	fmt.Printf("\n%d turns: %d passed, %d failed\n", summary.TotalTurns, summary.Passed, summary.Failed)
	fmt.Printf("final: mode=%s trust=%.3f valence=%.3f arousal=%.3f\n",
		summary.FinalState.Mode,
		summary.FinalState.Vector[state.DimTrust],
		summary.FinalState.Vector[state.DimValence],
		summary.FinalState.Vector[state.DimArousal])

	if summary.Failed > 0 {
		os.Exit(1)
	}
}

// #endregion main
