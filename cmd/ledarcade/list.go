package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/led-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the games built into the arcade.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----------")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Description)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'ledarcade play <id>' to start a game.")
}
