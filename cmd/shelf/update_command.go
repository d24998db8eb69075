package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shelf/internal/tracker"
)

func newUpdateCommand(ctx *commandContext) *cobra.Command {
	var (
		title      string
		mediaType  string
		startDate  string
		finishDate string
		rating     string
		hypeRating int
		status     string
		tags       []string
		coverURL   string
		jsonOut    bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of an entry",
		Long: `Update an entry. Only flags you pass are written; passing an empty
value clears the field ('--finish ""' removes the finish date,
'--status ""' returns the status to inference).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req tracker.UpdateRequest
			flags := cmd.Flags()
			if flags.Changed("title") {
				req.Title = &title
			}
			if flags.Changed("type") {
				req.MediaType = &mediaType
			}
			if flags.Changed("start") {
				req.StartDate = &startDate
			}
			if flags.Changed("finish") {
				req.FinishDate = &finishDate
			}
			if flags.Changed("rating") {
				req.Rating = &rating
			}
			if flags.Changed("hype") {
				req.HypeRating = &hypeRating
			}
			if flags.Changed("status") {
				req.Status = &status
			}
			if flags.Changed("tags") {
				req.Tags = &tags
			}
			if flags.Changed("cover") {
				req.CoverURL = &coverURL
			}

			return ctx.withTracker(cmd, func(cctx context.Context, tr *tracker.Tracker) error {
				updated, err := tr.Update(cctx, args[0], req)
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd.OutOrStdout(), toEntryJSON(updated))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %q (%s)\n",
					updated.Title, statusLabel(updated.Status))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVarP(&mediaType, "type", "t", "", "New media type")
	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringVar(&finishDate, "finish", "", "Finish date (YYYY-MM-DD, empty clears)")
	cmd.Flags().StringVarP(&rating, "rating", "r", "", "Rating 1-10, 0 for not applicable, empty clears")
	cmd.Flags().IntVar(&hypeRating, "hype", 0, "Anticipation rating 0-10")
	cmd.Flags().StringVar(&status, "status", "", "Explicit status (empty returns to inference)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Replacement tag list")
	cmd.Flags().StringVar(&coverURL, "cover", "", "Cover URL override")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the updated entry as JSON")

	return cmd
}
