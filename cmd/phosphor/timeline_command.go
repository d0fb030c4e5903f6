package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"phosphor/internal/analysis"
	"phosphor/internal/fileutil"
	"phosphor/internal/logging"
	"phosphor/internal/setlist"
)

func newTimelineCommand(ctx *commandContext) *cobra.Command {
	var (
		outputFlag string
		jsonOut    bool
	)

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Build the global show frame timeline",
		Long: `Build the global show frame timeline.

Each setlist track is placed at a cumulative frame offset so a renderer can
map any global frame back to a song. Tracks without an analysis artifact
occupy a zero-width slot at their position in the running order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := logging.NewComponentLogger(ctx.logger(), "timeline")

			sl, err := setlist.Load(cfg.Paths.SetlistPath)
			if err != nil {
				return fmt.Errorf("load setlist: %w", err)
			}

			inputs := make([]analysis.TimelineInput, 0, len(sl.Songs))
			for _, song := range sl.Songs {
				ta, err := analysis.LoadTrack(cfg.Paths.TracksDir, song.TrackID)
				if err != nil {
					if !errors.Is(err, fs.ErrNotExist) {
						return fmt.Errorf("load analysis for %s: %w", song.TrackID, err)
					}
					logger.Warn("analysis artifact missing, track holds a zero-width slot",
						logging.String(logging.FieldTrackID, song.TrackID))
					inputs = append(inputs, analysis.TimelineInput{TrackID: song.TrackID, Missing: true})
					continue
				}
				inputs = append(inputs, analysis.TimelineInput{
					TrackID:     song.TrackID,
					TotalFrames: ta.Meta.TotalFrames,
					Duration:    ta.Meta.Duration,
				})
			}

			tl := analysis.BuildTimeline(sl.Date, inputs)

			outputPath := cfg.Paths.TimelinePath
			if outputFlag != "" {
				outputPath = outputFlag
			}
			data, err := marshalArtifact(tl)
			if err != nil {
				return err
			}
			if err := fileutil.WriteFileAtomic(outputPath, data, 0o644); err != nil {
				return fmt.Errorf("write timeline: %w", err)
			}
			logger.Info("timeline written",
				logging.String("path", outputPath),
				logging.Int("total_frames", tl.TotalFrames))

			if jsonOut {
				return writeJSON(cmd, tl)
			}

			rows := make([][]string, 0, len(tl.Tracks))
			for _, tr := range tl.Tracks {
				note := ""
				if tr.Missing {
					note = "missing"
				}
				rows = append(rows, []string{
					tr.TrackID,
					fmt.Sprintf("%d", tr.GlobalFrameStart),
					fmt.Sprintf("%d", tr.GlobalFrameEnd),
					fmt.Sprintf("%d", tr.TotalFrames),
					note,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Track", "Start", "End", "Frames", "Notes"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft},
			))
			fmt.Fprintf(out, "Wrote %s (%d frames, %.2fs)\n", outputPath, tl.TotalFrames, tl.TotalDuration)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Timeline output path override")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the timeline as JSON instead of a summary table")
	return cmd
}
