package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skydive/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show landing statistics",
	Long: `Summarize every recorded jump: outcomes, how high chutes were opened
and how close good landings came to the zone center.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.JumpStats()
	if err != nil {
		return err
	}
	printStats(os.Stdout, stats)
	return nil
}

func printStats(w io.Writer, stats storage.JumpStats) {
	fmt.Fprintln(w, "Jump Statistics - Skydive")
	fmt.Fprintln(w)

	if stats.Total == 0 {
		fmt.Fprintln(w, "No jumps recorded yet.")
		return
	}

	fmt.Fprintf(w, "  Jumps:     %d\n", stats.Total)
	outcomes := make([]string, 0, len(stats.ByOutcome))
	for o := range stats.ByOutcome {
		outcomes = append(outcomes, o)
	}
	sort.Strings(outcomes)
	for _, o := range outcomes {
		n := stats.ByOutcome[o]
		fmt.Fprintf(w, "    %-12s %4d  (%.0f%%)\n", o, n, 100*float64(n)/float64(stats.Total))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Avg chute opened at height: %.1f\n", stats.AvgOpenAt)
	fmt.Fprintf(w, "  Avg landing offset:         %.1f\n", stats.AvgLandedOffset)
	fmt.Fprintf(w, "  Sessions won:               %d of %d\n", stats.Wins, stats.Sessions)
}
