package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/danielpatrickdp/limbic-state/internal/history"
	"github.com/danielpatrickdp/limbic-state/internal/state"
	"github.com/danielpatrickdp/limbic-state/internal/tier"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to limbic state db")
	last := flag.Int("last", 20, "show N most recent snapshots")
	journal := flag.Bool("journal", false, "show interaction journal instead of snapshots")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/limbic.db [--last N] [--journal] [--json]")
		os.Exit(2)
	}

	store, err := state.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *journal {
		err = runJournalMode(store, *last, *jsonOut)
	} else {
		err = runSnapshotMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region snapshot-mode

func runSnapshotMode(store *state.Store, last int, jsonOut bool) error {
	snaps, err := store.ListSnapshots(last)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snaps)
	}

	fmt.Printf("%-36s %-8s %-10s %-6s %-8s %s\n", "SNAPSHOT", "MODE", "POSTURE", "TRUST", "TIER", "CREATED")
	for _, s := range snaps {
		trust := s.State.Vector[state.DimTrust]
		t := tier.Resolve(trust)
		fmt.Printf("%-36s %-8s %-10s %.3f  %-8s %s\n",
			s.SnapshotID, s.State.Mode, s.State.Posture, trust, t.Name,
			s.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

// #endregion snapshot-mode

// #region journal-mode

func runJournalMode(store *state.Store, last int, jsonOut bool) error {
	entries, err := history.ListInteractions(store.DB(), last)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	fmt.Printf("%-20s %-12s %-8s %-6s %s\n", "CREATED", "EMOTION", "URGENCY", "ALIGN", "FLAGS")
	for _, e := range entries {
		fmt.Printf("%-20s %-12s %-8s %.2f   %s\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.Emotion, e.Urgency,
			e.Alignment, strings.Join(e.Flags, ","))
	}
	return nil
}

// #endregion journal-mode
