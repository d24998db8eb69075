package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shelf/internal/entry"
	"shelf/internal/tracker"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var (
		statuses   []string
		mediaTypes []string
		jsonOut    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := buildFilter(statuses, mediaTypes)
			if err != nil {
				return err
			}
			return ctx.withTracker(cmd, func(cctx context.Context, tr *tracker.Tracker) error {
				entries, err := tr.List(cctx, filter)
				if err != nil {
					return err
				}
				if jsonOut {
					out := make([]entryJSON, 0, len(entries))
					for _, e := range entries {
						out = append(out, toEntryJSON(e))
					}
					return writeJSON(cmd.OutOrStdout(), out)
				}
				if len(entries) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No entries")
					return nil
				}
				renderEntryList(cmd, entries)
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVarP(&statuses, "status", "s", nil, "Filter by status (repeatable)")
	cmd.Flags().StringSliceVarP(&mediaTypes, "type", "t", nil, "Filter by media type (repeatable)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit entries as JSON")

	return cmd
}

func buildFilter(statuses, mediaTypes []string) (tracker.Filter, error) {
	var filter tracker.Filter
	for _, raw := range statuses {
		status, ok := entry.ParseStatus(raw)
		if !ok {
			return tracker.Filter{}, fmt.Errorf("unknown status %q", raw)
		}
		filter.Statuses = append(filter.Statuses, status)
	}
	for _, raw := range mediaTypes {
		mediaType, ok := entry.ParseMediaType(raw)
		if !ok {
			return tracker.Filter{}, fmt.Errorf("unknown media type %q", raw)
		}
		filter.MediaTypes = append(filter.MediaTypes, mediaType)
	}
	return filter, nil
}
