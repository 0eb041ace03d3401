// =============================================================================
// goAML Report Validator - Issue Sink
// =============================================================================
//
// Batch-wide accumulator for flagged problems. Validators record entries
// whose Messages slice may hold several distinct violations from one check
// site; finalization explodes each entry into one Issue row per message.
//
// The sink is safe for concurrent append so a future per-file worker pool can
// share it, but within one report entries keep strict insertion order.
//
// =============================================================================

package validate

import "sync"

// Issue is one finalized output row.
type Issue struct {
	ReportName        string
	TransactionNumber string
	Category          string
	Element           string
	Message           string
}

// Entry is one recorded check result before explosion.
type Entry struct {
	ReportName        string
	TransactionNumber string
	Category          string
	Element           string
	Messages          []string
}

// Sink accumulates entries and flagged upload ids for a whole batch run.
type Sink struct {
	mu        sync.Mutex
	entries   []Entry
	uploadIDs []string
}

// NewSink returns an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

// Record appends one entry. Entries without messages are dropped.
func (s *Sink) Record(e Entry) {
	if len(e.Messages) == 0 {
		return
	}
	s.mu.Lock()
	s.entries = append(s.entries, e)
	s.mu.Unlock()
}

// Flag marks an upload id as carrying at least one issue. Duplicates are
// allowed here and removed by FlaggedUploadIDs.
func (s *Sink) Flag(uploadID string) {
	s.mu.Lock()
	s.uploadIDs = append(s.uploadIDs, uploadID)
	s.mu.Unlock()
}

// Issues explodes the recorded entries into one row per message, preserving
// entry order and message order within each entry.
func (s *Sink) Issues() []Issue {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []Issue
	for _, e := range s.entries {
		for _, msg := range e.Messages {
			rows = append(rows, Issue{
				ReportName:        e.ReportName,
				TransactionNumber: e.TransactionNumber,
				Category:          e.Category,
				Element:           e.Element,
				Message:           msg,
			})
		}
	}
	return rows
}

// FlaggedUploadIDs returns the distinct flagged upload ids in first-seen
// order.
func (s *Sink) FlaggedUploadIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.uploadIDs))
	var ids []string
	for _, id := range s.uploadIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
