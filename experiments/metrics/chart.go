package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// PlotLearningCurve renders the win rate, exploration rate and table growth of
// a run as an HTML page at path.
func PlotLearningCurve(path string, title string, points []Point) error {
	games := make([]string, len(points))
	winRates := make([]opts.LineData, len(points))
	epsilons := make([]opts.LineData, len(points))
	sizes := make([]opts.LineData, len(points))
	for i, p := range points {
		games[i] = strconv.Itoa(p.Game)
		winRates[i] = opts.LineData{Value: p.WinRate}
		epsilons[i] = opts.LineData{Value: p.Epsilon}
		sizes[i] = opts.LineData{Value: p.TableSize}
	}

	rates := charts.NewLine()
	rates.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "win rate and exploration"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
	)
	rates.SetXAxis(games).
		AddSeries("win rate", winRates).
		AddSeries("epsilon", epsilons)

	table := charts.NewLine()
	table.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "utility table size"}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
	)
	table.SetXAxis(games).AddSeries("table size", sizes)

	page := components.NewPage()
	page.AddCharts(rates, table)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
