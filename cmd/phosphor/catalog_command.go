package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"phosphor/internal/selection"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	var (
		layerFlag int
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the overlay catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.loadCatalog()
			if err != nil {
				return err
			}

			entries := cat.Entries()
			if cmd.Flags().Changed("layer") {
				entries = cat.LayerEntries(layerFlag)
			}

			if jsonOut {
				return writeJSON(cmd, entries)
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				always := ""
				if e.AlwaysActive {
					always = "yes"
				}
				rows = append(rows, []string{
					displayName(e.Name),
					e.Name,
					fmt.Sprintf("%d", e.Layer),
					fmt.Sprintf("%d", e.Weight),
					string(e.EnergyBand),
					strings.Join(e.Tags, ", "),
					always,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Overlay", "ID", "Layer", "Weight", "Band", "Tags", "Always"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft, alignLeft},
			))
			if !cmd.Flags().Changed("layer") {
				fmt.Fprintf(out, "%d overlays, %d always active, weight budget %d\n",
					cat.Len(), len(cat.AlwaysActive()), selection.MaxTotalWeight)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&layerFlag, "layer", 0, "Only list overlays on this layer")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print catalog entries as JSON")
	return cmd
}

var titleCaser = cases.Title(language.Und)

// displayName turns a camelCase overlay identifier into a human-readable
// title, e.g. "auroraWash" becomes "Aurora Wash".
func displayName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return titleCaser.String(b.String())
}
