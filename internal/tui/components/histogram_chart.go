package components

import (
	"hbasekit/rsregions/internal/domain"
	"hbasekit/rsregions/internal/tui/styles"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/x/ansi"
)

// chartHeight is the fixed height for histogram bar charts.
const chartHeight = 10

// maxLabelWidth bounds bar labels so long table names don't blow up the
// chart layout.
const maxLabelWidth = 12

// HistogramChart renders a bar chart of region counts per table, one bar
// per table in lexicographic order. Returns an empty string for an empty
// histogram.
func HistogramChart(hist domain.Histogram, width int) string {
	if len(hist) == 0 {
		return ""
	}
	if width < 20 {
		width = 20
	}

	tables := hist.Tables()
	bars := make([]barchart.BarData, 0, len(tables))
	for _, table := range tables {
		bars = append(bars, barchart.BarData{
			Label: ansi.Truncate(table, maxLabelWidth, "…"),
			Values: []barchart.BarValue{
				{Name: table, Value: float64(hist[table]), Style: styles.Bar},
			},
		})
	}

	bc := barchart.New(width, chartHeight)
	bc.PushAll(bars)
	bc.Draw()

	return bc.View()
}
