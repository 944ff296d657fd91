package report

import (
	"context"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/tsv"
	"github.com/pkg/errors"
)

// Cerulean is the house color for bar charts.
const Cerulean = "#0084A9"

// SampleCount is one bar of the read-count chart.
type SampleCount struct {
	Sample string
	Count  int
}

type perReadRow struct {
	SampleName string `tsv:"sample_name"`
}

// ReadCounts tallies reads per sample from fastcat per-read stats files, one
// file per barcode.  The sample name is taken from the sample_name column of
// each file, and the count is the file's row count.  Results are sorted by
// sample name.
func ReadCounts(ctx context.Context, paths []string) ([]SampleCount, error) {
	counts := map[string]int{}
	for _, path := range paths {
		sample, n, err := countReads(ctx, path)
		if err != nil {
			return nil, err
		}
		counts[sample] = n
	}
	out := make([]SampleCount, 0, len(counts))
	for sample, n := range counts {
		out = append(out, SampleCount{Sample: sample, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sample < out[j].Sample })
	return out, nil
}

func countReads(ctx context.Context, path string) (sample string, n int, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return "", 0, err
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	r := tsv.NewReader(in.Reader(ctx))
	r.HasHeaderRow = true
	r.UseHeaderNames = true
	for {
		var row perReadRow
		if err := r.Read(&row); err != nil {
			if err == io.EOF {
				break
			}
			return "", 0, errors.Wrapf(err, "read per-read stats %s", path)
		}
		if n == 0 {
			sample = row.SampleName
		}
		n++
	}
	if n == 0 {
		return "", 0, errors.Errorf("per-read stats %s: no reads", path)
	}
	return sample, n, nil
}

// ReadCountChart renders per-sample read counts as a bar chart.
func ReadCountChart(counts []SampleCount) *charts.Bar {
	bar := charts.NewBar()
	showLegend := false
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Read Counts"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Sample",
			Type: "category",
			AxisLabel: &opts.AxisLabel{
				Interval: "0",
				Rotate:   45,
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Count", Type: "value"}),
		charts.WithLegendOpts(opts.Legend{Show: &showLegend}),
	)
	samples := make([]string, 0, len(counts))
	data := make([]opts.BarData, 0, len(counts))
	for _, c := range counts {
		samples = append(samples, c.Sample)
		data = append(data, opts.BarData{Value: c.Count})
	}
	bar.SetXAxis(samples).AddSeries("Count", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: Cerulean}))
	return bar
}
