package cmd

import (
	"fmt"
	"os"

	"hbasekit/rsregions/internal/domain"
	"hbasekit/rsregions/internal/tui/components"
	"hbasekit/rsregions/internal/tui/styles"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// chartFallbackWidth is used when stdout is not a terminal (e.g. piped).
const chartFallbackWidth = 80

// printReportsChart renders one bar chart per server, region count per
// table, sized to the terminal width when stdout is a TTY.
func printReportsChart(cmd *cobra.Command, reports []domain.Report) {
	w := cmd.OutOrStdout()
	width := chartWidth()

	for _, r := range reports {
		fmt.Fprintln(w, styles.Title.Render(r.Target.Host+":"))

		switch {
		case r.Failed():
			fmt.Fprintln(w, styles.ErrorText.Render("  fetch failed: "+r.Err.Error()))
		case len(r.Histogram) == 0:
			fmt.Fprintln(w, styles.MutedText.Render("  no region metrics"))
		default:
			fmt.Fprintln(w, components.HistogramChart(r.Histogram, width))
		}

		fmt.Fprintln(w)
	}
}

// chartWidth returns the current terminal width, or a fixed fallback when
// stdout is not a terminal.
func chartWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 20 {
			return w
		}
	}
	return chartFallbackWidth
}
