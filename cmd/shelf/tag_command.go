package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shelf/internal/tracker"
)

func newTagCommand(ctx *commandContext) *cobra.Command {
	var remove []string

	cmd := &cobra.Command{
		Use:   "tag <id> [tag...]",
		Short: "Add or remove tags on an entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			add := args[1:]
			if len(add) == 0 && len(remove) == 0 {
				return fmt.Errorf("nothing to do: pass tags to add or --remove")
			}
			return ctx.withTracker(cmd, func(cctx context.Context, tr *tracker.Tracker) error {
				current, err := tr.Get(cctx, args[0])
				if err != nil {
					return err
				}
				tags := mergeTags(current.Tags, add, remove)
				updated, err := tr.Update(cctx, args[0], tracker.UpdateRequest{
					Tags: &tags,
				})
				if err != nil {
					return err
				}
				if len(updated.Tags) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%q has no tags\n", updated.Title)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Tags for %q: %s\n", updated.Title, strings.Join(updated.Tags, ", "))
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVar(&remove, "remove", nil, "Tags to remove")
	return cmd
}

// mergeTags appends new tags (deduplicated, order preserved) and drops
// removed ones.
func mergeTags(current, add, remove []string) []string {
	removed := make(map[string]bool, len(remove))
	for _, tag := range remove {
		removed[strings.TrimSpace(tag)] = true
	}
	seen := make(map[string]bool, len(current)+len(add))
	merged := make([]string, 0, len(current)+len(add))
	for _, tag := range append(append([]string{}, current...), add...) {
		tag = strings.TrimSpace(tag)
		if tag == "" || removed[tag] || seen[tag] {
			continue
		}
		seen[tag] = true
		merged = append(merged, tag)
	}
	return merged
}
