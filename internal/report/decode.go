// =============================================================================
// goAML Report Validator - Streaming Report Decoder
// =============================================================================
//
// Walks one report file as an XML token stream. Only a single transaction
// subtree is ever materialized at a time, so peak memory stays bounded no
// matter how many transactions a report carries.
//
// Report handling rules:
//   - report_code not in the recognized set: the report is refused on the
//     spot (Processed=false, zero transactions seen), no further scanning.
//   - submission_date: parsed once and carried on the Header handed to the
//     transaction callback.
//   - each transaction subtree: decoded into the typed model, given the next
//     1-based sequence number, handed to the callback, then dropped.
//
// Any decoder fault surfaces as a *ScanError carrying the byte offset and the
// in-progress sequence number; the caller abandons the report, not the batch.
//
// =============================================================================

package report

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"
)

// Header carries the report-level fields known before any transaction is
// decoded.
type Header struct {
	Code              string
	SubmissionDate    time.Time
	HasSubmissionDate bool
}

// TransactionFunc handles one decoded transaction and reports whether it
// passed validation.
type TransactionFunc func(h Header, seq int, txn *Transaction) bool

// ScanResult summarizes one report scan.
type ScanResult struct {
	// Processed is false when the report carried an unrecognized report_code
	// and was refused without scanning its transactions.
	Processed bool

	// Transactions is the number of transaction subtrees decoded.
	Transactions int

	// InvalidTransactions counts transactions the callback rejected.
	InvalidTransactions int
}

// ScanError is a decoder fault localized to a byte offset and the transaction
// sequence in progress when it happened.
type ScanError struct {
	Offset   int64
	Sequence int
	Err      error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("report scan failed at byte %d, transaction %d: %v", e.Offset, e.Sequence, e.Err)
}

func (e *ScanError) Unwrap() error { return e.Err }

// Scanner decodes report files transaction by transaction.
type Scanner struct {
	recognized map[string]struct{}
}

// NewScanner builds a Scanner that accepts the given report codes.
func NewScanner(codes []string) *Scanner {
	s := &Scanner{recognized: make(map[string]struct{}, len(codes))}
	for _, c := range codes {
		s.recognized[strings.TrimSpace(c)] = struct{}{}
	}
	return s
}

// Scan walks one report stream and hands each transaction to handle. See the
// package comment for the report handling rules.
func (s *Scanner) Scan(r io.Reader, handle TransactionFunc) (ScanResult, error) {
	var (
		res    ScanResult
		header Header
		seq    int
	)

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			res.Processed = true
			return res, nil
		}
		if err != nil {
			return res, &ScanError{Offset: dec.InputOffset(), Sequence: seq, Err: err}
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "report_code":
			var code string
			if err := dec.DecodeElement(&code, &start); err != nil {
				return res, &ScanError{Offset: dec.InputOffset(), Sequence: seq, Err: err}
			}
			header.Code = strings.TrimSpace(code)
			if _, known := s.recognized[header.Code]; !known {
				return res, nil
			}

		case "submission_date":
			var raw string
			if err := dec.DecodeElement(&raw, &start); err != nil {
				return res, &ScanError{Offset: dec.InputOffset(), Sequence: seq, Err: err}
			}
			header.SubmissionDate, header.HasSubmissionDate = ParseDate(raw)

		case "transaction":
			seq++
			var txn Transaction
			if err := dec.DecodeElement(&txn, &start); err != nil {
				return res, &ScanError{Offset: dec.InputOffset(), Sequence: seq, Err: err}
			}
			res.Transactions++
			if !handle(header, seq, &txn) {
				res.InvalidTransactions++
			}
		}
	}
}
