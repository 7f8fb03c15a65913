package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/cwbudde/algo-doppler/measure/doppler"
)

// writeChart renders the tracked frequency-over-time curve as a standalone
// HTML line chart.
func writeChart(path string, res doppler.Result) error {
	if len(res.FreqOverTime) == 0 {
		return fmt.Errorf("no frequency track to chart")
	}

	x := make([]string, len(res.FreqTimeAxis))
	y := make([]opts.LineData, len(res.FreqOverTime))

	for i := range res.FreqOverTime {
		x[i] = fmt.Sprintf("%.2f", res.FreqTimeAxis[i])
		y[i] = opts.LineData{Value: res.FreqOverTime[i]}
	}

	subtitle := fmt.Sprintf("%.1f km/h, source %.1f Hz, band %.0f-%.0f Hz",
		res.VelocityKmh, res.EstimatedFreq, res.Band.Low, res.Band.High)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Doppler Pass", Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: "Tracked Frequency", Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time (s)", NameLocation: "middle", NameGap: 30}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Frequency (Hz)", NameLocation: "middle", NameGap: 45}),
	)

	line.SetXAxis(x).AddSeries("centroid", y,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return line.Render(f)
}
