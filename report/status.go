package report

import (
	"context"
	"encoding/csv"
	"sort"

	"github.com/grailbio/base/file"
	"github.com/pkg/errors"
)

// Per-sample status strings written by the pipeline and synthesized here.
const (
	StatusSuccess       = "Completed successfully"
	StatusNoAnnotations = "Completed but no annotations found in the database"
	StatusNoReconcile   = "Completed but failed to reconcile"
)

// TidyStatus reads the sample status sheet (headerless CSV of sample,status
// rows) and reconciles it against the set of samples that produced
// annotations.  It returns the sorted list of samples that passed, the sorted
// list of all samples seen, and the final per-sample status.
//
// A sample whose every row reports success but which has no annotations is
// demoted to StatusNoAnnotations.  Samples with any failure row are dropped
// from the passed list, except StatusNoReconcile, which keeps the sample in
// the report.
func TidyStatus(ctx context.Context, path string, annotated []string) (passed, all []string, status map[string]string, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, nil, nil, err
	}
	defer func() {
		if cerr := in.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()
	r := csv.NewReader(in.Reader(ctx))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, nil, errors.Wrapf(err, "read status sheet %s", path)
	}

	hasAnnotations := make(map[string]bool, len(annotated))
	for _, s := range annotated {
		hasAnnotations[s] = true
	}

	status = map[string]string{}
	var unique []string
	for _, row := range rows {
		if len(row) < 2 {
			return nil, nil, nil, errors.Errorf("status sheet %s: short row %v", path, row)
		}
		if _, seen := status[row[0]]; !seen {
			status[row[0]] = StatusSuccess
			unique = append(unique, row[0])
		}
	}

	failures := map[string]string{}
	for _, row := range rows {
		if row[1] != StatusSuccess {
			failures[row[0]] = row[1]
		}
	}
	for _, row := range rows {
		if row[1] == StatusSuccess && !hasAnnotations[row[0]] {
			failures[row[0]] = StatusNoAnnotations
		}
	}

	for sample, v := range failures {
		status[sample] = v
	}
	for _, sample := range unique {
		v, failed := failures[sample]
		if !failed || v == StatusNoReconcile {
			passed = append(passed, sample)
		}
	}
	sort.Strings(passed)
	all = append(all, unique...)
	sort.Strings(all)
	return passed, all, status, nil
}
