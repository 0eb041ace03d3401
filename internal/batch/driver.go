// =============================================================================
// goAML Report Validator - Batch Driver
// =============================================================================
//
// Runs the validation engine over every report file in the input directory.
// Fault isolation is strict: a file that cannot be read or scanned is logged
// and skipped, never aborting the batch.
//
// After each file the driver samples heap usage. Above the hard ceiling it
// forces a collection pass and stops early; the partial batch is a normal,
// reported outcome. Above the soft ceiling it forces a collection pass and
// continues.
//
// =============================================================================

package batch

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RivinJayawardhana/GoAML-dekstop-tool/internal/config"
	"github.com/RivinJayawardhana/GoAML-dekstop-tool/internal/dictionary"
	"github.com/RivinJayawardhana/GoAML-dekstop-tool/internal/report"
	"github.com/RivinJayawardhana/GoAML-dekstop-tool/internal/validate"
	"github.com/RivinJayawardhana/GoAML-dekstop-tool/pkg/fileops"
)

// Result summarizes one batch run.
type Result struct {
	RunID               uuid.UUID
	FilesFound          int
	ReportsProcessed    int
	InvalidTransactions int
	SkippedFiles        int
	StoppedEarly        bool
	HeapMB              uint64

	Issues           []validate.Issue
	FlaggedUploadIDs []string
}

// Driver owns one batch run's engine wiring.
type Driver struct {
	cfg     *config.Config
	scanner *report.Scanner
	txn     *validate.TransactionValidator
	sink    *validate.Sink
	log     *zap.Logger
}

// New wires a driver from the configuration, the SWIFT lookup table, and the
// word dictionary.
func New(cfg *config.Config, table *config.SwiftTable, words dictionary.Dictionary, log *zap.Logger) *Driver {
	sink := validate.NewSink()
	fields := validate.NewFieldValidator(validate.Rules{
		DomesticCountry:               cfg.DomesticCountry,
		IncorpNumberRegTypes:          cfg.IncorpNumberRegTypes,
		InvalidAccPrefixes:            cfg.InvalidAccPrefixes,
		InvalidAccChars:               cfg.InvalidAccChars,
		SwiftNameMatchThreshold:       cfg.SwiftNameMatchThreshold,
		LocalInstitutionSwiftPrefixes: cfg.LocalInstitutionSwiftPrefixes,
		ReportingEntitySwift:          cfg.ReportingEntity.Swift,
		Words:                         words,
		SwiftTable:                    table,
	})

	cashRules := make(map[string]bool, len(cfg.CashRuleReportTypes))
	for _, code := range cfg.CashRuleReportTypes {
		cashRules[code] = true
	}
	txn := validate.NewTransactionValidator(validate.TxnConfig{
		StartDate:            cfg.StartDate(),
		ReportingWindow:      cfg.ReportingWindow,
		CheckLateSubmissions: cfg.CheckLateSubmissions,
		CTRThreshold:         cfg.CTRThreshold,
		CashRuleCodes:        cashRules,
		DomesticCountry:      cfg.DomesticCountry,
	}, fields, sink)

	return &Driver{
		cfg:     cfg,
		scanner: report.NewScanner(cfg.ReportTypes),
		txn:     txn,
		sink:    sink,
		log:     log,
	}
}

// Run validates every report in the input directory and finalizes the sink.
func (d *Driver) Run() (*Result, error) {
	files, err := fileops.ListReports(d.cfg.InputDir)
	if err != nil {
		return nil, err
	}

	res := &Result{RunID: uuid.New(), FilesFound: len(files)}
	d.log.Info("starting batch run",
		zap.String("run_id", res.RunID.String()),
		zap.String("input_dir", d.cfg.InputDir),
		zap.Int("files", len(files)),
		zap.String("reporting_entity", d.cfg.ReportingEntity.Name))

	for _, path := range files {
		uploadID := fileops.UploadID(path)
		sr, err := d.processFile(path, uploadID)
		if err != nil {
			d.log.Warn("report skipped", zap.String("upload_id", uploadID), zap.Error(err))
			res.SkippedFiles++
		} else if !sr.Processed {
			d.log.Warn("unrecognized report code, report not processed", zap.String("upload_id", uploadID))
			res.SkippedFiles++
		} else {
			res.ReportsProcessed++
			res.InvalidTransactions += sr.InvalidTransactions
		}

		heap := heapMB()
		if heap > uint64(d.cfg.MemoryThresholdBreak) {
			freeMemory()
			res.StoppedEarly = true
			d.log.Warn("memory ceiling reached, stopping batch early",
				zap.Uint64("heap_mb", heap), zap.Int("ceiling_mb", d.cfg.MemoryThresholdBreak))
			break
		}
		if heap > uint64(d.cfg.MemoryThresholdClean) {
			freeMemory()
		}
	}

	res.Issues = d.sink.Issues()
	res.FlaggedUploadIDs = d.sink.FlaggedUploadIDs()
	res.HeapMB = heapMB()

	d.log.Info("batch run finished",
		zap.String("run_id", res.RunID.String()),
		zap.Int("files_found", res.FilesFound),
		zap.Int("reports_processed", res.ReportsProcessed),
		zap.Int("skipped_files", res.SkippedFiles),
		zap.Int("invalid_transactions", res.InvalidTransactions),
		zap.Int("issues", len(res.Issues)),
		zap.Int("flagged_reports", len(res.FlaggedUploadIDs)),
		zap.Bool("stopped_early", res.StoppedEarly),
		zap.Uint64("heap_mb", res.HeapMB))
	return res, nil
}

func (d *Driver) processFile(path, uploadID string) (report.ScanResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return report.ScanResult{}, fmt.Errorf("failed to open report: %w", err)
	}
	defer f.Close()

	return d.scanner.Scan(f, func(h report.Header, seq int, txn *report.Transaction) bool {
		rc := validate.ReportContext{
			Code:              h.Code,
			Type:              report.TypeFromCode(h.Code),
			UploadID:          uploadID,
			SubmissionDate:    h.SubmissionDate,
			HasSubmissionDate: h.HasSubmissionDate,
		}
		return d.txn.Validate(rc, seq, txn)
	})
}

func heapMB() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc / (1024 * 1024)
}

func freeMemory() {
	runtime.GC()
	debug.FreeOSMemory()
}
