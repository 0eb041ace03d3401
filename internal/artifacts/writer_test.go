package artifacts

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/RivinJayawardhana/GoAML-dekstop-tool/internal/config"
	"github.com/RivinJayawardhana/GoAML-dekstop-tool/internal/validate"
)

func testWriter(t *testing.T, maxRows int) (*Writer, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.OutputDir = dir
	cfg.MaxRowsExcel = maxRows
	cfg.ReportingEntity = config.ReportingEntity{ID: "1001", Name: "SampleBank", Swift: "SAMPLKLX"}
	return NewWriter(cfg, zap.NewNop()), dir
}

func sampleIssues(n int) []validate.Issue {
	issues := make([]validate.Issue, n)
	for i := range issues {
		issues[i] = validate.Issue{
			ReportName:        "CTR: R1",
			TransactionNumber: fmt.Sprintf("T%d", i+1),
			Category:          "late_submission",
			Element:           "date_transaction",
			Message:           "transaction date: 2022-03-01 is a late submission for submission date: 2022-06-15",
		}
	}
	return issues
}

func TestWriteIssuesSpreadsheet(t *testing.T) {
	w, dir := testWriter(t, 1000)

	paths, err := w.WriteIssues(sampleIssues(3))
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(dir, "report_issues_[SampleBank_1001].xlsx"), paths[0])

	f, err := excelize.OpenFile(paths[0])
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"report_name", "transaction_number", "category", "element", "issue"}, rows[0])
	assert.Equal(t, "CTR: R1", rows[1][0])
	assert.Equal(t, "T3", rows[3][1])
}

func TestWriteIssuesSplitsWhenOverCeiling(t *testing.T) {
	w, dir := testWriter(t, 2)

	paths, err := w.WriteIssues(sampleIssues(3))
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "report_issues_all_[SampleBank_1001].csv"), paths[0])
	assert.Equal(t, filepath.Join(dir, "report_issues_part_[SampleBank_1001].xlsx"), paths[1])

	// The CSV carries every row.
	cf, err := os.Open(paths[0])
	require.NoError(t, err)
	defer cf.Close()
	records, err := csv.NewReader(cf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 4)

	// The spreadsheet is capped at the ceiling.
	xf, err := excelize.OpenFile(paths[1])
	require.NoError(t, err)
	defer xf.Close()
	rows, err := xf.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestWriteIssuesEmpty(t *testing.T) {
	w, dir := testWriter(t, 1000)

	paths, err := w.WriteIssues(nil)
	require.NoError(t, err)
	assert.Empty(t, paths)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteFlaggedUploadIDs(t *testing.T) {
	w, dir := testWriter(t, 1000)

	path, err := w.WriteFlaggedUploadIDs([]string{"1002", "1005"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "SampleBank_upload_ids.csv"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"upload_id"}, {"1002"}, {"1005"}}, records)
}

func TestWriteFlaggedUploadIDsEmpty(t *testing.T) {
	w, _ := testWriter(t, 1000)
	path, err := w.WriteFlaggedUploadIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, path)
}
