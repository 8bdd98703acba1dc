package render

import (
	"bytes"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/PranavU-Coder/bitsatards-bot/pkg/domain/model/cutoff"
)

var (
	branchLineColor = drawing.ColorFromHex("2e86ab")
	minMarkColor    = drawing.ColorFromHex("e63946")
	maxMarkColor    = drawing.ColorFromHex("2a9d8f")
)

func yearFormatter(v any) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%d", int(f))
	}
	return ""
}

func seriesFromTable(table cutoff.Table) (xs, ys []float64) {
	sorted := table.SortByYear()
	xs = make([]float64, 0, len(sorted))
	ys = make([]float64, 0, len(sorted))
	for _, r := range sorted {
		xs = append(xs, float64(r.Year))
		ys = append(ys, float64(r.Marks))
	}
	return xs, ys
}

// renderCampusTrend draws one line per branch, year vs. marks, with a
// legend listing the branch names.
func renderCampusTrend(campus string, table cutoff.Table) ([]byte, error) {
	branches := table.Branches()

	series := make([]chart.Series, 0, len(branches))
	for i, name := range branches {
		xs, ys := seriesFromTable(table.FilterBranch(name))
		color := chart.GetDefaultColor(i)
		series = append(series, chart.ContinuousSeries{
			Name:    name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: color,
				StrokeWidth: 2.5,
				DotColor:    color,
				DotWidth:    3,
			},
		})
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Cutoff Trends: %s", campus),
		Width:  1200,
		Height: 800,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 240, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "Year",
			ValueFormatter: yearFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Marks",
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, goerr.Wrap(err, "failed to render campus trend chart",
			goerr.V("campus", campus))
	}
	return buf.Bytes(), nil
}

// renderBranchTrend draws the single-series trend for one branch with
// dashed guide lines and labels at the minimum and maximum marks.
func renderBranchTrend(campus, branchName string, table cutoff.Table) ([]byte, error) {
	xs, ys := seriesFromTable(table)
	min, max := table.MarksRange()

	firstYear := xs[0]
	lastYear := xs[len(xs)-1]
	if firstYear == lastYear {
		// a single observation still needs a non-degenerate x range
		firstYear -= 1
		lastYear += 1
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    branchName,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: branchLineColor,
				StrokeWidth: 3,
				DotColor:    branchLineColor,
				DotWidth:    4.5,
			},
		},
		chart.ContinuousSeries{
			XValues: []float64{firstYear, lastYear},
			YValues: []float64{float64(max), float64(max)},
			Style: chart.Style{
				StrokeColor:     maxMarkColor,
				StrokeWidth:     1,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		},
		chart.ContinuousSeries{
			XValues: []float64{firstYear, lastYear},
			YValues: []float64{float64(min), float64(min)},
			Style: chart.Style{
				StrokeColor:     minMarkColor,
				StrokeWidth:     1,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		},
		chart.AnnotationSeries{
			Annotations: []chart.Value2{
				{XValue: firstYear, YValue: float64(max), Label: fmt.Sprintf("Max: %d", max)},
				{XValue: firstYear, YValue: float64(min), Label: fmt.Sprintf("Min: %d", min)},
			},
			Style: chart.Style{
				StrokeColor: drawing.ColorFromHex("999999"),
				FillColor:   drawing.ColorWhite,
			},
		},
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s Campus: %s", campus, branchName),
		Width:  1000,
		Height: 600,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 80, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "Year",
			ValueFormatter: yearFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Marks",
			Range: &chart.ContinuousRange{
				Min: float64(min - 15),
				Max: float64(max + 15),
			},
		},
		Series: series,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, goerr.Wrap(err, "failed to render branch trend chart",
			goerr.V("campus", campus), goerr.V("branch", branchName))
	}
	return buf.Bytes(), nil
}
