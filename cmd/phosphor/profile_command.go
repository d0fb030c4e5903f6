package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"phosphor/internal/analysis"
	"phosphor/internal/profile"
	"phosphor/internal/setlist"
)

func newProfileCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "profile <trackId>",
		Short: "Show the derived audio profile for one setlist track",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			trackID := args[0]

			sl, err := setlist.Load(cfg.Paths.SetlistPath)
			if err != nil {
				return fmt.Errorf("load setlist: %w", err)
			}
			song, ok := sl.Find(trackID)
			if !ok {
				return fmt.Errorf("track %s is not in the setlist", trackID)
			}

			ta, err := analysis.LoadTrack(cfg.Paths.TracksDir, trackID)
			if err != nil {
				return fmt.Errorf("load analysis: %w", err)
			}

			p := profile.Build(ta.Frames, ta.Meta.Tempo, len(ta.Meta.Sections))
			p.TrackID = song.TrackID
			p.Title = song.Title
			p.Set = song.Set

			if jsonOut {
				return writeJSON(cmd, p)
			}

			rows := [][]string{
				{"Title", p.Title},
				{"Set", fmt.Sprintf("%d", p.Set)},
				{"Avg energy", fmt.Sprintf("%.4f", p.AvgEnergy)},
				{"Energy variance", fmt.Sprintf("%.4f", p.EnergyVariance)},
				{"Dominant band", string(p.DominantBand)},
				{"Peak energy ratio", fmt.Sprintf("%.4f", p.PeakEnergyRatio)},
				{"Avg centroid", fmt.Sprintf("%.4f", p.AvgCentroid)},
				{"Avg flatness", fmt.Sprintf("%.4f", p.AvgFlatness)},
				{"Avg sub", fmt.Sprintf("%.4f", p.AvgSub)},
				{"Chroma spread", fmt.Sprintf("%.4f", p.ChromaSpread)},
				{"Tempo", fmt.Sprintf("%.1f", p.Tempo)},
				{"Sections", fmt.Sprintf("%d", p.SectionCount)},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Feature", p.TrackID},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the profile as JSON")
	return cmd
}
