package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/a-bouts/great-circle/latlon"
)

func newTable(out io.Writer, headers ...string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault

	row := table.Row{}
	for _, h := range headers {
		row = append(row, h)
	}
	t.AppendHeader(row)

	return t
}

func printJSON(out io.Writer, v interface{}) error {
	x, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal: %w", err)
	}
	fmt.Fprintln(out, string(x))
	return nil
}

func nm(distance float64) string {
	return fmt.Sprintf("%.3f nm", distance)
}

func heading(a latlon.Angle) string {
	return a.Format(2, false, latlon.Markers{}) + "°"
}
