package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"shelf/internal/entry"
)

// entryTable renders the list view as a rounded table. The rating
// column is right-aligned so single-digit and "n/a" ratings line up.
func entryTable(entries []*entry.Entry) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(entryTableHeaders))
	for i, name := range entryTableHeaders {
		header[i] = name
	}
	tw.AppendHeader(header)

	for _, row := range entryTableRows(entries) {
		cells := make(table.Row, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		tw.AppendRow(cells)
	}

	configs := make([]table.ColumnConfig, len(entryTableHeaders))
	for i := range configs {
		configs[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft}
	}
	configs[ratingColumn].Align = text.AlignRight
	tw.SetColumnConfigs(configs)

	return tw.Render()
}
