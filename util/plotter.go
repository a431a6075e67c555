package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"chivent/models"
)

// priceBuckets are the histogram edges; the last bucket is open-ended.
var priceBuckets = []float64{25, 50, 75, 100}

var priceBucketLabels = []string{"< $25", "$25-50", "$50-75", "$75-100", "$100+"}

// PlotPriceHistogram renders a bar chart of the feed's price distribution
// as a standalone HTML page.
func PlotPriceHistogram(events []models.DisplayEvent, w io.Writer) error {
	counts := make([]int, len(priceBucketLabels))
	for _, ev := range events {
		counts[bucketFor(ev.PriceValue)]++
	}

	data := make([]opts.BarData, 0, len(counts))
	for _, c := range counts {
		data = append(data, opts.BarData{Value: c})
	}

	// Create a new bar chart.
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Feed Price Distribution",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Ticket prices in the current feed",
		}),
	)

	bar.SetXAxis(priceBucketLabels).
		AddSeries("Events", data,
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Formatter: "{c}",
			}),
		)

	// Render the chart into the writer.
	return bar.Render(w)
}

func bucketFor(price float64) int {
	for i, edge := range priceBuckets {
		if price < edge {
			return i
		}
	}
	return len(priceBuckets)
}
