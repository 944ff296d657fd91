package report

import (
	"context"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTidyStatus(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	sheet := writeFile(t, tempDir, "status.csv", `barcode01,Completed successfully
barcode02,Completed successfully
barcode03,Assembly failed
barcode04,Completed but failed to reconcile
`)
	passed, all, status, err := TidyStatus(context.Background(), sheet,
		[]string{"barcode01", "barcode04"})
	require.NoError(t, err)
	expect.EQ(t, all, []string{"barcode01", "barcode02", "barcode03", "barcode04"})
	expect.EQ(t, passed, []string{"barcode01", "barcode04"})
	expect.EQ(t, status, map[string]string{
		"barcode01": StatusSuccess,
		"barcode02": StatusNoAnnotations,
		"barcode03": "Assembly failed",
		"barcode04": StatusNoReconcile,
	})
}

func TestTidyStatusNoAnnotationDemotion(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	sheet := writeFile(t, tempDir, "status.csv", "barcode01,Completed successfully\n")
	passed, all, status, err := TidyStatus(context.Background(), sheet, nil)
	require.NoError(t, err)
	expect.EQ(t, all, []string{"barcode01"})
	expect.EQ(t, len(passed), 0)
	expect.EQ(t, status["barcode01"], StatusNoAnnotations)
}

func TestTidyStatusShortRow(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	sheet := writeFile(t, tempDir, "status.csv", "barcode01\n")
	_, _, _, err := TidyStatus(context.Background(), sheet, nil)
	expect.HasSubstr(t, err, "short row")
}
