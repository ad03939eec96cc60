package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skydive/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available games",
	Long:  `Shows every game compiled into this binary.`,
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		printGames(os.Stdout, registry.List())
	},
}

func printGames(w io.Writer, games []registry.GameInfo) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	idW := len("ID")
	for _, g := range games {
		idW = max(idW, len(g.ID))
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-*s  %s\n", idW, "ID", "Title")
	fmt.Fprintf(w, "  %-*s  %s\n", idW, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(w, "  %-*s  %s\n", idW, g.ID, g.Title)
	}
}
