package main

import (
	"fmt"

	"isitcinema/internal/movie"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderAspectTable renders the chart's aspects with like/dislike columns.
func renderAspectTable(chart movie.Chart) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Aspect", "Like", "Dislike", "Mentions"})

	for _, a := range chart.Aspects {
		tw.AppendRow(table.Row{
			a.Label,
			chart.Format(a.Positive),
			chart.Format(a.Negative),
			fmt.Sprintf("%.0f", a.Mentions()),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
