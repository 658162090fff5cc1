package render

import (
	"bytes"
	"html/template"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/labcore/lims/internal/domain/report"
)

// ogttChart renders the glucose curve with dashed reference lines at
// each time point's normal band bounds.
func ogttChart(points []report.ChartPoint) (template.HTML, error) {
	if len(points) == 0 {
		return "", nil
	}

	xAxis := make([]string, 0, len(points))
	yData := make([]opts.LineData, 0, len(points))
	var bandLow, bandHigh float64
	for i, p := range points {
		xAxis = append(xAxis, p.Label)
		yData = append(yData, opts.LineData{Value: p.Value})
		if i == 0 || p.BandLow < bandLow {
			bandLow = p.BandLow
		}
		if p.BandHigh > bandHigh {
			bandHigh = p.BandHigh
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Oral Glucose Tolerance",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "mg/dL",
		}),
	)

	markLineItems := []interface{}{
		opts.MarkLineNameYAxisItem{Name: "Band Low", YAxis: bandLow},
		opts.MarkLineNameYAxisItem{Name: "Band High", YAxis: bandHigh},
	}

	line.SetXAxis(xAxis).
		AddSeries("Glucose", yData).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{
				Smooth:     opts.Bool(true),
				ShowSymbol: opts.Bool(true),
			}),
			func(s *charts.SingleSeries) {
				s.MarkLines = &opts.MarkLines{
					Data: markLineItems,
					MarkLineStyle: opts.MarkLineStyle{
						Symbol: []string{"none", "none"},
						LineStyle: &opts.LineStyle{
							Color: "rgba(128, 128, 128, 0.6)",
							Type:  "dashed",
							Width: 1.5,
						},
					},
				}
			},
		)

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
