package report

import (
	"path"
	"strings"
)

// OptionalFile is the placeholder base name the pipeline stages in place of a
// genuinely optional input.  Placeholders never name real stats files.
const OptionalFile = "OPTIONAL_FILE"

// Fastcat stage labels, in report order.
const (
	StageRaw         = "Raw"
	StageHostFilt    = "Hostfilt"
	StageDownsampled = "Downsampled"
)

// FastcatGroups maps each sample to its available fastcat stats file per
// pipeline stage.  A stage with no file for the sample is simply absent from
// that sample's map.  Files are matched by the "/<sample>." path fragment the
// pipeline uses when staging per-sample outputs; the first match per stage
// wins.
func FastcatGroups(samples, raw, hostFilt, downsampled []string) map[string]map[string]string {
	stages := []struct {
		name  string
		files []string
	}{
		{StageRaw, dropOptional(raw)},
		{StageHostFilt, dropOptional(hostFilt)},
		{StageDownsampled, dropOptional(downsampled)},
	}
	groups := make(map[string]map[string]string, len(samples))
	for _, sample := range samples {
		needle := "/" + sample + "."
		m := map[string]string{}
		for _, stage := range stages {
			for _, f := range stage.files {
				if strings.Contains(f, needle) {
					m[stage.name] = f
					break
				}
			}
		}
		groups[sample] = m
	}
	return groups
}

// FastcatTable renders per-stage fastcat file availability as one row per
// sample, in the given sample order.  A stage with no file for the sample is
// left blank.
func FastcatTable(samples []string, groups map[string]map[string]string) *Table {
	tbl := &Table{Columns: []string{"Sample", StageRaw, StageHostFilt, StageDownsampled}}
	for _, sample := range samples {
		m := groups[sample]
		tbl.Rows = append(tbl.Rows, []string{
			sample, m[StageRaw], m[StageHostFilt], m[StageDownsampled],
		})
	}
	return tbl
}

func dropOptional(files []string) []string {
	out := files[:0:0]
	for _, f := range files {
		if path.Base(f) == OptionalFile {
			continue
		}
		out = append(out, f)
	}
	return out
}

// InsertLen returns the length of an insert running from start to end on a
// circular sequence of the given total length.  An end upstream of start
// means the insert wraps through the origin.
func InsertLen(start, end, length int) int {
	if end >= start {
		return end - start
	}
	return (length - start) + end
}
