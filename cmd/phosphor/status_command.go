package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"phosphor/internal/preflight"
	"phosphor/internal/schedule"
	"phosphor/internal/store"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Report environment readiness and the latest run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			for _, line := range renderSectionHeader("Preflight", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, r := range preflight.RunAll(cfg) {
				kind := statusError
				if r.Passed {
					kind = statusOK
				}
				fmt.Fprintln(out, renderStatusLine(r.Name, kind, r.Detail, colorize))
			}

			fmt.Fprintln(out)
			for _, line := range renderSectionHeader("Store", colorize) {
				fmt.Fprintln(out, line)
			}

			st, err := store.Open(cfg)
			if err != nil {
				fmt.Fprintln(out, renderStatusLine("Database", statusError, err.Error(), colorize))
				return nil
			}
			defer func() { _ = st.Close() }()

			fmt.Fprintln(out, renderStatusLine("Database", statusOK, st.Path(), colorize))

			count, err := st.ProfileCount(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(out, renderStatusLine("Cached profiles", statusInfo, fmt.Sprintf("%d", count), colorize))

			latest, err := st.LatestRun(cmd.Context())
			if err != nil {
				return err
			}
			if latest == nil {
				fmt.Fprintln(out, renderStatusLine("Last run", statusWarn, "none recorded", colorize))
				return nil
			}
			fmt.Fprintln(out, renderStatusLine("Last run", statusOK,
				fmt.Sprintf("%s (%d songs, %d overlays, seed %d)",
					latest.FinishedAt.Format(time.RFC3339), latest.SongCount, latest.TotalOverlays, latest.Seed),
				colorize))

			if sched, err := schedule.ReadFile(latest.OutputPath); err == nil {
				fmt.Fprintln(out, renderStatusLine("Schedule artifact", statusOK,
					fmt.Sprintf("%s (generated %s)", latest.OutputPath, sched.GeneratedAt), colorize))
			} else {
				fmt.Fprintln(out, renderStatusLine("Schedule artifact", statusWarn,
					fmt.Sprintf("%s (unreadable: %v)", latest.OutputPath, err), colorize))
			}
			return nil
		},
	}
}
