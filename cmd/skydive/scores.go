package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skydive/internal/core"
	"github.com/vovakirdan/tui-skydive/internal/storage"
)

var (
	flagLimit int
	flagJumps bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best sessions",
	Long: `Display the best finished sessions: most landings first, then the
fastest.

Examples:
  skydive scores
  skydive scores --limit 20
  skydive scores --jumps     # latest individual landings instead
  skydive scores --clear     # delete every recorded session and jump`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rows to show")
	scoresCmd.Flags().BoolVar(&flagJumps, "jumps", false, "Show recent jumps instead of sessions")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded sessions and jumps")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearSessions(); err != nil {
			return err
		}
		fmt.Println("All sessions and jumps deleted.")
		return nil
	case flagJumps:
		jumps, err := store.RecentJumps(flagLimit)
		if err != nil {
			return err
		}
		printJumps(os.Stdout, jumps)
		return nil
	}

	sessions, err := store.TopSessions(flagLimit)
	if err != nil {
		return err
	}
	printSessions(os.Stdout, sessions)

	if len(sessions) > 0 {
		if best, err := store.HighScore(); err == nil {
			fmt.Printf("\nBest: %d\n", best)
		}
	}
	return nil
}

func printSessions(w io.Writer, sessions []storage.Session) {
	fmt.Fprintln(w, "High Scores - Skydive")
	fmt.Fprintln(w)

	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'skydive play' to set the first high score!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-12s  %-5s  %-5s  %-9s  %-6s  %s\n", "Rank", "Player", "Score", "Tries", "Outcome", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-12s  %-5s  %-5s  %-9s  %-6s  %s\n", "----", "------", "-----", "-----", "-------", "----", "----")
	for i, s := range sessions {
		secs := s.Ticks / core.TickRate
		fmt.Fprintf(w, "  %-4d  %-12s  %-5d  %-5d  %-9s  %-6s  %s\n",
			i+1, s.Player, s.Score, s.TriesLeft, s.Outcome,
			fmt.Sprintf("%d:%02d", secs/60, secs%60),
			s.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}

func printJumps(w io.Writer, jumps []storage.Jump) {
	fmt.Fprintln(w, "Recent Jumps - Skydive")
	fmt.Fprintln(w)

	if len(jumps) == 0 {
		fmt.Fprintln(w, "No jumps recorded yet.")
		return
	}

	fmt.Fprintf(w, "  %-12s  %-12s  %-6s  %-8s  %-8s  %s\n", "Player", "Outcome", "X", "Zone", "Chute at", "Date")
	fmt.Fprintf(w, "  %-12s  %-12s  %-6s  %-8s  %-8s  %s\n", "------", "-------", "-", "----", "--------", "----")
	for _, j := range jumps {
		chute := "-"
		if j.ChuteOpen {
			chute = fmt.Sprintf("%.0f", j.OpenAt)
		}
		fmt.Fprintf(w, "  %-12s  %-12s  %-6.0f  %-8s  %-8s  %s\n",
			j.Player, j.Outcome, j.LandingX,
			fmt.Sprintf("%.0f-%.0f", j.TargetLeft, j.TargetRight),
			chute,
			j.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
}
