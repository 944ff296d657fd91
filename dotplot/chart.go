package dotplot

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Chart renders segments as a go-echarts line chart, one two-point series per
// segment, drawn over numeric "position" x "position" axes.  Forward and
// reverse segments take their colors from o.  The chart carries no toolbox
// and no legend.
func Chart(segs []Segment, o Opts) *charts.Line {
	line := charts.NewLine()
	showLegend := false
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: o.Width, Height: o.Height}),
		charts.WithTitleOpts(opts.Title{Title: o.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "position", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "position", Type: "value"}),
		charts.WithLegendOpts(opts.Legend{Show: &showLegend}),
	)
	for i, seg := range segs {
		color := o.ForwardColor
		if seg.Strand == Reverse {
			color = o.ReverseColor
		}
		data := []opts.LineData{
			{Value: []interface{}{seg.X0, seg.Y0}},
			{Value: []interface{}{seg.X1, seg.Y1}},
		}
		line.AddSeries(fmt.Sprintf("aln%d", i), data,
			charts.WithLineStyleOpts(opts.LineStyle{Color: color}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
		)
	}
	return line
}
