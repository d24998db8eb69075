package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shelf/internal/tracker"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var (
		mediaType  string
		startDate  string
		finishDate string
		rating     string
		hypeRating int
		status     string
		tags       []string
		finished   bool
		jsonOut    bool
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add an entry",
		Long: `Add an entry. The status is computed from the dates and rating
unless --status is given; a cover is fetched from the provider for the
media type.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withTracker(cmd, func(cctx context.Context, tr *tracker.Tracker) error {
				created, err := tr.Create(cctx, tracker.CreateRequest{
					Title:      strings.Join(args, " "),
					MediaType:  mediaType,
					StartDate:  startDate,
					FinishDate: finishDate,
					Rating:     rating,
					HypeRating: hypeRating,
					Status:     status,
					Tags:       tags,
					Finished:   finished,
				})
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd.OutOrStdout(), toEntryJSON(created))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %q (%s, %s)\n",
					created.Title, typeLabel(created.MediaType), statusLabel(created.Status))
				fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\n", created.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&mediaType, "type", "t", "", "Media type: book, film, series, game, paper")
	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&finishDate, "finish", "", "Finish date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&rating, "rating", "r", "", "Rating 1-10, or 0 for not applicable")
	cmd.Flags().IntVar(&hypeRating, "hype", 0, "Anticipation rating 0-10")
	cmd.Flags().StringVar(&status, "status", "", "Explicit status (overrides inference)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Comma-separated tags")
	cmd.Flags().BoolVar(&finished, "finished", false, "Mark completed even without dates or a rating")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the created entry as JSON")
	cmd.MarkFlagRequired("type")

	return cmd
}
