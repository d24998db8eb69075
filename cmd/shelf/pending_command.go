package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shelf/internal/tracker"
)

func newPendingCommand(ctx *commandContext) *cobra.Command {
	var (
		mediaType  string
		hypeRating int
		tags       []string
		jsonOut    bool
	)

	cmd := &cobra.Command{
		Use:   "pending <title>",
		Short: "Add a wishlist entry",
		Long: `Add an entry with status fixed to pending. Pending entries carry
no dates; use "shelf start" when you begin it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withTracker(cmd, func(cctx context.Context, tr *tracker.Tracker) error {
				created, err := tr.CreatePending(cctx, tracker.PendingRequest{
					Title:      strings.Join(args, " "),
					MediaType:  mediaType,
					HypeRating: hypeRating,
					Tags:       tags,
				})
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd.OutOrStdout(), toEntryJSON(created))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %q to the wishlist\n", created.Title)
				fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\n", created.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&mediaType, "type", "t", "", "Media type: book, film, series, game, paper")
	cmd.Flags().IntVar(&hypeRating, "hype", 0, "Anticipation rating 0-10")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Comma-separated tags")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the created entry as JSON")
	cmd.MarkFlagRequired("type")

	return cmd
}
