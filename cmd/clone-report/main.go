package main

/*
clone-report assembles the clone validation report artifacts: an assembly dot
plot and a per-sample read count chart rendered into one HTML page, plus
sample status, variant count, transition/transversion and assembly summary
tables written as TSV files next to it.
*/

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/egar360/wf-clone-validation/dotplot"
	"github.com/egar360/wf-clone-validation/encoding/maf"
	"github.com/egar360/wf-clone-validation/report"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
)

var (
	mafPath      = flag.String("maf", "", "Alignment of reads back to the assembly in MAF-like text format; enables the dot plot")
	statusPath   = flag.String("status", "", "Sample status sheet (CSV of sample,status rows)")
	annotations  = flag.String("annotations", "", "Comma-separated names of samples with database annotations")
	perReadStats = flag.String("per-read-stats", "", "Comma-separated fastcat per-read stats TSVs, one per barcode; enables the read count chart")
	bcfStatsPath = flag.String("bcf-stats", "", "Comma-separated bcftools stats outputs, one per sample")
	assemblyPath = flag.String("assembly", "", "Final assembly FASTA; enables the assembly summary table")
	rawStats     = flag.String("raw-stats", "", "Comma-separated raw fastcat stats files; with -status, enables the fastcat availability table")
	hostStats    = flag.String("host-filter-stats", "", "Comma-separated host-filtered fastcat stats files")
	dsStats      = flag.String("downsampled-stats", "", "Comma-separated downsampled fastcat stats files")
	outPrefix    = flag.String("out", "clone-report", "Output path prefix")
)

func cloneReportUsage() {
	fmt.Printf("Usage: %s [OPTIONS]\n", os.Args[0])
	fmt.Printf("Options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = cloneReportUsage
	shutdown := grail.Init()
	defer shutdown()
	ctx := vcontext.Background()

	page := components.NewPage()
	nCharts := 0

	if *mafPath != "" {
		recs, readLength, hasReadLength, err := maf.Read(ctx, *mafPath)
		if err != nil {
			log.Fatalf("read %s: %v", *mafPath, err)
		}
		segs, err := dotplot.Build(recs, readLength, hasReadLength)
		if err != nil {
			log.Fatalf("build dot plot from %s: %v", *mafPath, err)
		}
		log.Debug.Printf("%s: %d alignment blocks, %d segments", *mafPath, len(recs), len(segs))
		page.AddCharts(dotplot.Chart(segs, dotplot.DefaultOpts))
		nCharts++
	}

	if *perReadStats != "" {
		counts, err := report.ReadCounts(ctx, splitList(*perReadStats))
		if err != nil {
			log.Fatalf("read counts: %v", err)
		}
		page.AddCharts(report.ReadCountChart(counts))
		nCharts++
	}

	if *statusPath != "" {
		passed, all, status, err := report.TidyStatus(ctx, *statusPath, splitList(*annotations))
		if err != nil {
			log.Fatalf("tidy status %s: %v", *statusPath, err)
		}
		log.Printf("%d of %d samples passed", len(passed), len(all))
		tbl := &report.Table{Columns: []string{"Sample", "Status"}}
		for _, sample := range all {
			tbl.Rows = append(tbl.Rows, []string{sample, status[sample]})
		}
		writeTable(ctx, *outPrefix+".status.tsv", tbl)

		if *rawStats != "" || *hostStats != "" || *dsStats != "" {
			groups := report.FastcatGroups(all,
				splitList(*rawStats), splitList(*hostStats), splitList(*dsStats))
			writeTable(ctx, *outPrefix+".fastcat.tsv", report.FastcatTable(all, groups))
		}
	}

	if *bcfStatsPath != "" {
		stats, err := report.LoadBCFStats(ctx, splitList(*bcfStatsPath))
		if err != nil {
			log.Fatalf("load bcftools stats: %v", err)
		}
		variants, err := stats.VariantCounts()
		if err != nil {
			log.Fatalf("variant counts: %v", err)
		}
		writeTable(ctx, *outPrefix+".variants.tsv", variants)
		transitions, err := stats.Transitions()
		if err != nil {
			log.Fatalf("transition counts: %v", err)
		}
		writeTable(ctx, *outPrefix+".tstv.tsv", transitions)
	}

	if *assemblyPath != "" {
		tbl, err := report.AssemblySummary(ctx, *assemblyPath)
		if err != nil {
			log.Fatalf("assembly summary: %v", err)
		}
		writeTable(ctx, *outPrefix+".assembly.tsv", tbl)
	}

	if nCharts > 0 {
		out, err := file.Create(ctx, *outPrefix+".html")
		if err != nil {
			log.Fatalf("create %s.html: %v", *outPrefix, err)
		}
		if err := page.Render(out.Writer(ctx)); err != nil {
			log.Fatalf("render %s.html: %v", *outPrefix, err)
		}
		if err := out.Close(ctx); err != nil {
			log.Fatalf("close %s.html: %v", *outPrefix, err)
		}
	}
	log.Debug.Printf("exiting")
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func writeTable(ctx context.Context, path string, tbl *report.Table) {
	out, err := file.Create(ctx, path)
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	if err := tbl.WriteTSV(out.Writer(ctx)); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
	if err := out.Close(ctx); err != nil {
		log.Fatalf("close %s: %v", path, err)
	}
}
