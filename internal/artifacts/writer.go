// =============================================================================
// goAML Report Validator - Output Artifacts
// =============================================================================
//
// Writes the finalized batch results to the output directory:
//
//   - issue rows as a spreadsheet, or, when the row count exceeds the
//     spreadsheet ceiling, the full set as CSV plus the leading slice as a
//     spreadsheet
//   - the de-duplicated flagged upload ids as CSV, input to the separate
//     report re-fetch step
//
// Nothing is written when a result set is empty.
//
// =============================================================================

package artifacts

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/RivinJayawardhana/GoAML-dekstop-tool/internal/config"
	"github.com/RivinJayawardhana/GoAML-dekstop-tool/internal/validate"
	"github.com/RivinJayawardhana/GoAML-dekstop-tool/pkg/fileops"
)

var issueHeader = []string{"report_name", "transaction_number", "category", "element", "issue"}

// Writer persists batch results for one reporting entity.
type Writer struct {
	outputDir    string
	maxRowsExcel int
	entityName   string
	entityID     string
	log          *zap.Logger
}

// NewWriter builds a writer from the configuration.
func NewWriter(cfg *config.Config, log *zap.Logger) *Writer {
	return &Writer{
		outputDir:    cfg.OutputDir,
		maxRowsExcel: cfg.MaxRowsExcel,
		entityName:   cfg.ReportingEntity.Name,
		entityID:     cfg.ReportingEntity.ID,
		log:          log,
	}
}

// WriteIssues persists the issue rows and returns the paths written. An
// empty row set writes nothing.
func (w *Writer) WriteIssues(issues []validate.Issue) ([]string, error) {
	if len(issues) == 0 {
		w.log.Info("no reporting issues found")
		return nil, nil
	}
	if err := fileops.EnsureDir(w.outputDir); err != nil {
		return nil, err
	}

	tag := fmt.Sprintf("[%s_%s]", w.entityName, w.entityID)

	if len(issues) > w.maxRowsExcel {
		w.log.Info("issue rows exceed the spreadsheet ceiling, splitting output",
			zap.Int("rows", len(issues)), zap.Int("ceiling", w.maxRowsExcel))
		csvPath := filepath.Join(w.outputDir, fmt.Sprintf("report_issues_all_%s.csv", tag))
		if err := w.writeIssuesCSV(csvPath, issues); err != nil {
			return nil, err
		}
		xlsxPath := filepath.Join(w.outputDir, fmt.Sprintf("report_issues_part_%s.xlsx", tag))
		if err := w.writeIssuesXLSX(xlsxPath, issues[:w.maxRowsExcel]); err != nil {
			return []string{csvPath}, err
		}
		return []string{csvPath, xlsxPath}, nil
	}

	xlsxPath := filepath.Join(w.outputDir, fmt.Sprintf("report_issues_%s.xlsx", tag))
	if err := w.writeIssuesXLSX(xlsxPath, issues); err != nil {
		return nil, err
	}
	return []string{xlsxPath}, nil
}

// WriteFlaggedUploadIDs persists the flagged upload ids. An empty list
// writes nothing and returns an empty path.
func (w *Writer) WriteFlaggedUploadIDs(ids []string) (string, error) {
	if len(ids) == 0 {
		return "", nil
	}
	if err := fileops.EnsureDir(w.outputDir); err != nil {
		return "", err
	}

	path := filepath.Join(w.outputDir, fmt.Sprintf("%s_upload_ids.csv", w.entityName))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload id file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"upload_id"}); err != nil {
		return "", fmt.Errorf("failed to write upload id file: %w", err)
	}
	for _, id := range ids {
		if err := cw.Write([]string{id}); err != nil {
			return "", fmt.Errorf("failed to write upload id file: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("failed to write upload id file: %w", err)
	}
	w.log.Info("flagged upload ids saved", zap.String("file", path), zap.Int("reports", len(ids)))
	return path, nil
}

func (w *Writer) writeIssuesCSV(path string, issues []validate.Issue) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create issue file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(issueHeader); err != nil {
		return fmt.Errorf("failed to write issue file: %w", err)
	}
	for _, issue := range issues {
		row := []string{issue.ReportName, issue.TransactionNumber, issue.Category, issue.Element, issue.Message}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write issue file: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write issue file: %w", err)
	}
	w.log.Info("reporting issues saved", zap.String("file", path), zap.Int("rows", len(issues)))
	return nil
}

func (w *Writer) writeIssuesXLSX(path string, issues []validate.Issue) error {
	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter("Sheet1")
	if err != nil {
		return fmt.Errorf("failed to create spreadsheet: %w", err)
	}

	cell, _ := excelize.CoordinatesToCellName(1, 1)
	header := make([]interface{}, len(issueHeader))
	for i, h := range issueHeader {
		header[i] = h
	}
	if err := sw.SetRow(cell, header); err != nil {
		return fmt.Errorf("failed to write spreadsheet header: %w", err)
	}

	for i, issue := range issues {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{issue.ReportName, issue.TransactionNumber, issue.Category, issue.Element, issue.Message}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("failed to write spreadsheet row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush spreadsheet: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save spreadsheet: %w", err)
	}
	w.log.Info("reporting issues saved", zap.String("file", path), zap.Int("rows", len(issues)))
	return nil
}
