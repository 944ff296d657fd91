package report

import (
	"context"
	"testing"

	"github.com/grailbio/testutil"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/require"
)

const perReadHeader = "read_id\tfilename\tsample_name\tread_length\tmean_quality\n"

func TestReadCounts(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	b1 := writeFile(t, tempDir, "barcode01.stats.tsv", perReadHeader+
		"r1\tf.fq\tbarcode01\t5012\t11.2\n"+
		"r2\tf.fq\tbarcode01\t4981\t10.8\n"+
		"r3\tf.fq\tbarcode01\t5103\t12.0\n")
	b2 := writeFile(t, tempDir, "barcode02.stats.tsv", perReadHeader+
		"r4\tg.fq\tbarcode02\t7719\t9.9\n")
	counts, err := ReadCounts(context.Background(), []string{b2, b1})
	require.NoError(t, err)
	expect.EQ(t, counts, []SampleCount{
		{Sample: "barcode01", Count: 3},
		{Sample: "barcode02", Count: 1},
	})
}

func TestReadCountsEmptyFile(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	empty := writeFile(t, tempDir, "barcode03.stats.tsv", perReadHeader)
	_, err := ReadCounts(context.Background(), []string{empty})
	expect.HasSubstr(t, err, "no reads")
}

func TestReadCountChart(t *testing.T) {
	bar := ReadCountChart([]SampleCount{
		{Sample: "barcode01", Count: 3},
		{Sample: "barcode02", Count: 1},
	})
	require.Equal(t, 1, len(bar.MultiSeries))
	expect.EQ(t, bar.MultiSeries[0].ItemStyle.Color, Cerulean)
}
