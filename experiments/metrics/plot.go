package metrics

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// PlotTraining renders the rolling win rate and the value store growth of a
// training run to an HTML page at path.
func PlotTraining(path, title string, episodes []EpisodeMetric, window int) error {
	rates := RollingWinRate(episodes, window)

	steps := make([]string, len(episodes))
	winRate := make([]opts.LineData, len(episodes))
	states := make([]opts.LineData, len(episodes))
	for i, e := range episodes {
		steps[i] = fmt.Sprintf("%d", e.Episode)
		winRate[i] = opts.LineData{Value: rates[i]}
		states[i] = opts.LineData{Value: e.States}
	}

	rateChart := charts.NewLine()
	rateChart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("win rate over the last %d episodes", window),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)
	rateChart.SetXAxis(steps).AddSeries("win rate", winRate)

	storeChart := charts.NewLine()
	storeChart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "value store size",
		}),
	)
	storeChart.SetXAxis(steps).AddSeries("states", states)

	page := components.NewPage()
	page.AddCharts(rateChart, storeChart)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	err = page.Render(f)
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
