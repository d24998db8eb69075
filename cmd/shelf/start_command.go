package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shelf/internal/entry"
	"shelf/internal/tracker"
)

func newStartCommand(ctx *commandContext) *cobra.Command {
	var startDate string

	cmd := &cobra.Command{
		Use:   "start <id>",
		Short: "Start a pending entry",
		Long:  "Flip a pending entry to in-progress, stamping the start date (today unless --date is given).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withTracker(cmd, func(cctx context.Context, tr *tracker.Tracker) error {
				started, err := tr.StartPending(cctx, args[0], startDate)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Started %q on %s\n",
					started.Title, entry.FormatDate(started.StartDate))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&startDate, "date", "", "Start date (YYYY-MM-DD, defaults to today)")
	return cmd
}
