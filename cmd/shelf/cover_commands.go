package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shelf/internal/tracker"
)

func newCoverCommand(ctx *commandContext) *cobra.Command {
	coverCmd := &cobra.Command{
		Use:   "cover",
		Short: "Cover art operations",
	}

	coverCmd.AddCommand(newCoverRefreshCommand(ctx))
	coverCmd.AddCommand(newCoverPlaceholderCommand(ctx))
	coverCmd.AddCommand(newCoverRepairCommand(ctx))

	return coverCmd
}

func newCoverRefreshCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh <id>",
		Short: "Fetch a new cover via the alternative lookup path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withTracker(cmd, func(cctx context.Context, tr *tracker.Tracker) error {
				refreshed, err := tr.RequestNewCover(cctx, args[0])
				if err != nil {
					return err
				}
				if refreshed.CoverURL == "" {
					fmt.Fprintf(cmd.OutOrStdout(), "No cover found for %q\n", refreshed.Title)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cover for %q: %s\n", refreshed.Title, refreshed.CoverURL)
				return nil
			})
		},
	}
}

func newCoverPlaceholderCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "placeholder <id>",
		Short: "Replace the cover with a synthesized placeholder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withTracker(cmd, func(cctx context.Context, tr *tracker.Tracker) error {
				replaced, err := tr.FallbackToPlaceholder(cctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Placeholder cover for %q: %s\n", replaced.Title, replaced.CoverURL)
				return nil
			})
		},
	}
}

func newCoverRepairCommand(ctx *commandContext) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "repair",
		Short: "Re-resolve every low-quality cover",
		Long: `Walk all entries in order and re-resolve covers that fail the
quality check. Failures are reported per entry and never stop the batch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withTracker(cmd, func(cctx context.Context, tr *tracker.Tracker) error {
				report, err := tr.RepairCovers(cctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, result := range report.Results {
					if !verbose && result.Outcome == tracker.RepairOutcomeSkipped {
						continue
					}
					fmt.Fprintf(out, "%-8s %s (%s): %s\n",
						result.Outcome, result.Title, shortID(result.ID), result.Detail)
				}
				repaired, skipped, failed := report.Counts()
				fmt.Fprintf(out, "Repaired %d, skipped %d, failed %d\n", repaired, skipped, failed)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&verbose, "all", false, "Also list entries whose covers were left untouched")
	return cmd
}
