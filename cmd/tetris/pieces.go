package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "Show the piece catalog and randomizers",
	Long:  `Prints the seven pieces in their spawn orientation and lists the randomizers that deal them.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		printPieces(cmd.OutOrStdout())
	},
}

func printPieces(w io.Writer) {
	fmt.Fprintln(w, "Pieces:")
	fmt.Fprintln(w)

	for _, d := range tetris.Catalog() {
		for i, row := range d.Shape {
			label := "   "
			if i == 0 {
				label = " " + d.Name + " "
			}
			var sb strings.Builder
			for _, v := range row {
				if v != 0 {
					sb.WriteString("[]")
				} else {
					sb.WriteString("  ")
				}
			}
			fmt.Fprintf(w, "  %s %s\n", label, strings.TrimRight(sb.String(), " "))
		}
		fmt.Fprintln(w)
	}

	infos := registry.List()
	maxNameLen := 4 // "Name" header
	for _, r := range infos {
		maxNameLen = max(maxNameLen, len(r.Name))
	}

	fmt.Fprintln(w, "Randomizers:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, "----", "-----------")
	for _, r := range infos {
		name := r.Name
		if name == tetris.DefaultRandomizer {
			name += "*"
		}
		fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, name, r.Description)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "* default. Run 'tetris play --randomizer <name>' to pick another.")
}
