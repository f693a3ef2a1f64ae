package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"hbasekit/rsregions/internal/domain"

	"github.com/spf13/cobra"
)

// printReportsText writes one block per server in input order: a host
// header line, then one row per table with the region count left-aligned
// in a uniq -c style column, sorted by table name, then a blank line.
func printReportsText(cmd *cobra.Command, reports []domain.Report) {
	w := cmd.OutOrStdout()
	for _, r := range reports {
		writeReportBlock(w, r)
	}
}

func writeReportBlock(w io.Writer, r domain.Report) {
	fmt.Fprintf(w, "%s:\n", r.Target.Host)

	if r.Failed() {
		fmt.Fprintf(w, "  fetch failed: %v\n", r.Err)
		fmt.Fprintln(w)
		return
	}

	for _, table := range r.Histogram.Tables() {
		fmt.Fprintf(w, "%7d %s\n", r.Histogram[table], table)
	}
	fmt.Fprintln(w)
}

// reportJSON is the machine-readable shape of one server's result.
type reportJSON struct {
	Server string           `json:"server"`
	Port   int              `json:"port"`
	Tables domain.Histogram `json:"tables,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// printReportsJSON encodes all reports as an indented JSON array to stdout.
func printReportsJSON(cmd *cobra.Command, reports []domain.Report) {
	out := make([]reportJSON, 0, len(reports))
	for _, r := range reports {
		item := reportJSON{
			Server: r.Target.Host,
			Port:   r.Target.Port,
			Tables: r.Histogram,
		}
		if r.Failed() {
			item.Error = r.Err.Error()
		}
		out = append(out, item)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.Encode(out)
}
