package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"shelf/internal/entry"
	"shelf/internal/metadata"
)

var labelCaser = cases.Title(language.English)

// typeLabel renders a media type for humans ("videogame" -> "Videogame").
func typeLabel(mediaType entry.MediaType) string {
	return labelCaser.String(string(mediaType))
}

// statusLabel renders a status for humans ("in-progress-no-dates" ->
// "In Progress No Dates").
func statusLabel(status entry.Status) string {
	return labelCaser.String(strings.ReplaceAll(string(status), "-", " "))
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func entryTableRows(entries []*entry.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			shortID(e.ID),
			e.Title,
			typeLabel(e.MediaType),
			statusLabel(e.Status),
			e.Rating.String(),
			entry.FormatDate(e.StartDate),
			entry.FormatDate(e.FinishDate),
		})
	}
	return rows
}

var entryTableHeaders = []string{"ID", "Title", "Type", "Status", "Rating", "Started", "Finished"}

const ratingColumn = 4

// renderEntryList writes a rounded table on a terminal and
// tab-separated lines when piped.
func renderEntryList(cmd *cobra.Command, entries []*entry.Entry) {
	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		for _, row := range entryTableRows(entries) {
			fmt.Fprintln(out, strings.Join(row, "\t"))
		}
		return
	}
	fmt.Fprintln(out, entryTable(entries))
}

// writeJSON emits the indented JSON shape scripts consume via --json.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderEntryDetails writes the full record including the decoded
// metadata envelope.
func renderEntryDetails(cmd *cobra.Command, e *entry.Entry) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:        %s\n", e.ID)
	fmt.Fprintf(out, "Title:     %s\n", e.Title)
	fmt.Fprintf(out, "Type:      %s\n", typeLabel(e.MediaType))
	fmt.Fprintf(out, "Status:    %s\n", statusLabel(e.Status))
	if e.Rating.IsSet() {
		fmt.Fprintf(out, "Rating:    %s\n", e.Rating.String())
	}
	if e.HypeRating > 0 {
		fmt.Fprintf(out, "Hype:      %d\n", e.HypeRating)
	}
	if e.StartDate != nil {
		fmt.Fprintf(out, "Started:   %s\n", entry.FormatDate(e.StartDate))
	}
	if e.FinishDate != nil {
		fmt.Fprintf(out, "Finished:  %s\n", entry.FormatDate(e.FinishDate))
	}
	if len(e.Tags) > 0 {
		fmt.Fprintf(out, "Tags:      %s\n", strings.Join(e.Tags, ", "))
	}
	if e.CoverURL != "" {
		fmt.Fprintf(out, "Cover:     %s\n", e.CoverURL)
	}

	env, err := metadata.DecodeEnvelope(e.MetadataJSON)
	if err != nil {
		return
	}
	fmt.Fprintf(out, "Source:    %s\n", env.Source)
	for _, key := range sortedKeys(env.AdditionalInfo) {
		fmt.Fprintf(out, "  %s: %s\n", key, env.AdditionalInfo[key])
	}
}

// entryJSON is the stable JSON shape emitted by --json.
type entryJSON struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	MediaType  string             `json:"mediaType"`
	Status     string             `json:"status"`
	Rating     string             `json:"rating,omitempty"`
	HypeRating int                `json:"hypeRating,omitempty"`
	StartDate  string             `json:"startDate,omitempty"`
	FinishDate string             `json:"finishDate,omitempty"`
	Tags       []string           `json:"tags,omitempty"`
	CoverURL   string             `json:"coverUrl,omitempty"`
	Metadata   *metadata.Envelope `json:"metadata,omitempty"`
	CreatedAt  string             `json:"createdAt"`
	UpdatedAt  string             `json:"updatedAt"`
}

func toEntryJSON(e *entry.Entry) entryJSON {
	out := entryJSON{
		ID:         e.ID,
		Title:      e.Title,
		MediaType:  string(e.MediaType),
		Status:     string(e.Status),
		Rating:     e.Rating.String(),
		HypeRating: e.HypeRating,
		StartDate:  entry.FormatDate(e.StartDate),
		FinishDate: entry.FormatDate(e.FinishDate),
		Tags:       e.Tags,
		CoverURL:   e.CoverURL,
		CreatedAt:  e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  e.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if env, err := metadata.DecodeEnvelope(e.MetadataJSON); err == nil {
		out.Metadata = &env
	}
	return out
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
