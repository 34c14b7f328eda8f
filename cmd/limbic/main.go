package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/danielpatrickdp/limbic-state/internal/config"
	"github.com/danielpatrickdp/limbic-state/internal/engine"
	"github.com/danielpatrickdp/limbic-state/internal/state"
)

// #region main
func main() {
	dbPath := envOr("LIMBIC_DB", "")
	cfg := config.Default()

	var opts []engine.Option
	var store *state.Store
	if dbPath != "" {
		var err error
		store, err = state.NewStore(dbPath)
		if err != nil {
			log.Fatalf("failed to open store: %v", err)
		}
		defer store.Close()
		opts = append(opts, engine.WithStore(store))
	}

	eng, err := engine.New(cfg, opts...)
	if err != nil {
		log.Fatalf("failed to build engine: %v", err)
	}
	eng.StartDecayLoop()
	defer eng.Close()

	fmt.Println("Limbic State Engine ready.")
	if dbPath != "" {
		fmt.Printf("  DB: %s\n", dbPath)
	}
	fmt.Println("Type a message (or 'state', 'tier', 'history', 'reset', 'elastic on|off', 'reunion', 'quit'):")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		if handleCommand(eng, line) {
			continue
		}

		res := eng.ProcessPerception(line, state.Context{})
		st := eng.State()

		fmt.Printf("emotion=%s urgency=%s alignment=%.2f mode=%s posture=%s (%.2fms)\n",
			res.Emotion, res.Urgency, res.Alignment, st.Mode, st.Posture, res.ProcessingTimeMs)
		if len(res.Flags) > 0 {
			fmt.Printf("flags: %s\n", strings.Join(res.Flags, ", "))
		}
	}
}

// #endregion main

// #region commands
func handleCommand(eng *engine.Engine, line string) bool {
	switch line {
	case "state":
		st := eng.State()
		for i, v := range st.Vector {
			fmt.Printf("  %-10s %.3f\n", state.Dimension(i).String(), v)
		}
		fmt.Printf("  mode=%s posture=%s interactions=%d elastic=%v door_slam=%v\n",
			st.Mode, st.Posture, st.InteractionCount, st.ElasticMode, st.DoorSlamActive)
	case "tier":
		t := eng.CurrentTrustTier()
		fmt.Printf("  tier %d %s [%.2f, %.2f]: %s\n",
			t.Index, t.Name, t.TrustMin, t.TrustMax, strings.Join(t.Capabilities, ", "))
	case "history":
		for _, e := range eng.History(10) {
			fmt.Printf("  %s emotion=%s urgency=%s alignment=%.2f\n",
				e.CreatedAt.Format("15:04:05"), e.Emotion, e.Urgency, e.Alignment)
		}
	case "reset":
		eng.Reset()
		fmt.Println("  state reset to bootstrap")
	case "elastic on":
		eng.EnableElasticMode()
		fmt.Println("  elastic mode on")
	case "elastic off":
		eng.DisableElasticMode()
		fmt.Println("  elastic mode off")
	case "reunion":
		if eng.TriggerReunionSurge() {
			fmt.Println("  reunion surge applied")
		} else {
			fmt.Println("  reunion window not met")
		}
	default:
		return false
	}
	return true
}

// #endregion commands

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
