package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shelf/internal/tracker"
)

func newRateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rate <id> <rating>",
		Short: "Rate an entry",
		Long:  `Set an entry's rating: 1-10, "0" or "n/a" for not applicable, "" to clear.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withTracker(cmd, func(cctx context.Context, tr *tracker.Tracker) error {
				updated, err := tr.Update(cctx, args[0], tracker.UpdateRequest{
					Rating: &args[1],
				})
				if err != nil {
					return err
				}
				rendered := updated.Rating.String()
				if rendered == "" {
					rendered = "unset"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Rated %q: %s\n", updated.Title, rendered)
				return nil
			})
		},
	}
}
