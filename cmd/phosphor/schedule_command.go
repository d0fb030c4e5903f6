package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"phosphor/internal/logging"
	"phosphor/internal/preflight"
	"phosphor/internal/schedule"
	"phosphor/internal/setlist"
	"phosphor/internal/store"
)

func newScheduleCommand(ctx *commandContext) *cobra.Command {
	var (
		seedFlag   int64
		resume     bool
		outputFlag string
		jsonOut    bool
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Generate the overlay schedule for the configured show",
		Long: `Generate the overlay schedule for the configured show.

Each setlist song is profiled from its analysis artifact, scored against the
overlay catalog, and allocated a set of active overlays within per-layer and
show-wide limits. The same setlist, catalog, and seed always produce the
same schedule.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := logging.NewComponentLogger(ctx.logger(), "schedule")

			lock := flock.New(cfg.LockPath())
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !locked {
				return errors.New("another phosphor run is in progress (lock held at " + cfg.LockPath() + ")")
			}
			defer func() { _ = lock.Unlock() }()

			results := preflight.RunAll(cfg)
			if !preflight.AllPassed(results) {
				for _, r := range results {
					if !r.Passed {
						fmt.Fprintf(cmd.ErrOrStderr(), "preflight: %s: %s\n", r.Name, r.Detail)
					}
				}
				return errors.New("preflight checks failed")
			}

			sl, err := setlist.Load(cfg.Paths.SetlistPath)
			if err != nil {
				return fmt.Errorf("load setlist: %w", err)
			}
			cat, err := ctx.loadCatalog()
			if err != nil {
				return err
			}

			st, err := store.Open(cfg)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer func() { _ = st.Close() }()

			seed := cfg.Show.Seed
			if cmd.Flags().Changed("seed") {
				seed = seedFlag
			}

			started := time.Now().UTC()
			runID := store.NewRunID()
			logger = logger.With(
				logging.String(logging.FieldRunID, runID),
				logging.String(logging.FieldShow, sl.Date),
			)
			logger.Info("schedule run started",
				logging.Int64("seed", seed),
				logging.Int("songs", len(sl.Songs)),
				logging.Bool("resume", resume))

			tracks, err := buildProfiles(cmd.Context(), cfg, st, sl, resume, logger)
			if err != nil {
				return err
			}

			inputs := make([]schedule.SongInput, 0, len(tracks))
			for _, tp := range tracks {
				inputs = append(inputs, schedule.SongInput{
					Profile:   tp.profile,
					Overrides: tp.song.Overrides,
				})
			}

			outcomes := schedule.Run(cat, inputs, seed)
			sched := schedule.Build(started.Format(time.RFC3339), outcomes)

			outputPath := cfg.Paths.OutputPath
			if outputFlag != "" {
				outputPath = outputFlag
			}
			if err := schedule.WriteFile(outputPath, sched); err != nil {
				return fmt.Errorf("write schedule: %w", err)
			}

			totalOverlays := 0
			for _, out := range outcomes {
				totalOverlays += out.Result.TotalCount
			}

			finished := time.Now().UTC()
			if err := st.RecordRun(cmd.Context(), store.Run{
				ID:            runID,
				ShowDate:      sl.Date,
				Seed:          seed,
				SongCount:     len(outcomes),
				TotalOverlays: totalOverlays,
				OutputPath:    outputPath,
				StartedAt:     started,
				FinishedAt:    finished,
			}); err != nil {
				return err
			}

			logger.Info("schedule written",
				logging.String("path", outputPath),
				logging.Int("total_overlays", totalOverlays),
				logging.Duration("elapsed", finished.Sub(started)))

			if jsonOut {
				return writeJSON(cmd, sched)
			}

			rows := make([][]string, 0, len(outcomes))
			for i, out := range outcomes {
				note := ""
				if tracks[i].missing {
					note = "no analysis"
				} else if tracks[i].cached {
					note = "cached"
				}
				rows = append(rows, []string{
					out.TrackID,
					out.Title,
					fmt.Sprintf("%d", out.Result.TotalCount),
					fmt.Sprintf("%d", out.Result.TotalWeight),
					note,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Track", "Title", "Overlays", "Weight", "Notes"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
			))
			fmt.Fprintf(out, "Wrote %s (%d songs, %d overlay activations, seed %d)\n",
				outputPath, len(outcomes), totalOverlays, seed)
			return nil
		},
	}

	cmd.Flags().Int64Var(&seedFlag, "seed", 0, "Show seed override")
	cmd.Flags().BoolVar(&resume, "resume", false, "Reuse cached profiles for unchanged analysis artifacts")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Schedule output path override")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the schedule as JSON instead of a summary table")

	return cmd
}
