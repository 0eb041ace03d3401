package config

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// SwiftEntry is one lookup-table row: a SWIFT-code prefix and the
// institution-name variants registered under it.
type SwiftEntry struct {
	Prefix string
	Names  []string
}

// SwiftTable maps institution SWIFT-code prefixes to registered name
// variants. Entries keep source-file order: the name cross-check takes the
// first variant scoring above the threshold, so reordering the CSV can change
// which prefix wins for borderline names.
type SwiftTable struct {
	entries []SwiftEntry
	index   map[string]int
}

// NewSwiftTable builds a table from entries, merging repeated prefixes in
// order.
func NewSwiftTable(entries []SwiftEntry) *SwiftTable {
	table := &SwiftTable{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		for _, name := range e.Names {
			table.add(e.Prefix, name)
		}
	}
	return table
}

func (t *SwiftTable) add(prefix, name string) {
	if pos, ok := t.index[prefix]; ok {
		t.entries[pos].Names = append(t.entries[pos].Names, name)
		return
	}
	t.index[prefix] = len(t.entries)
	t.entries = append(t.entries, SwiftEntry{Prefix: prefix, Names: []string{name}})
}

// LoadSwiftTable reads a two-column CSV of prefix,name-variant rows. Repeated
// prefixes append further variants to the existing entry.
func LoadSwiftTable(path string) (*SwiftTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open swift codes file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse swift codes file: %w", err)
	}

	table := &SwiftTable{index: make(map[string]int)}
	for i, record := range records {
		if len(record) < 2 {
			return nil, fmt.Errorf("swift codes file row %d: want prefix,name columns, got %d", i+1, len(record))
		}
		// Strip a UTF-8 BOM: the table is often exported from spreadsheets.
		prefix := strings.TrimSpace(strings.TrimPrefix(record[0], "\uFEFF"))
		name := strings.TrimSpace(record[1])
		if prefix == "" || name == "" {
			continue
		}
		table.add(prefix, name)
	}
	if len(table.entries) == 0 {
		return nil, fmt.Errorf("swift codes file %s holds no usable rows", path)
	}
	return table, nil
}

// Entries returns the table rows in source-file order.
func (t *SwiftTable) Entries() []SwiftEntry {
	if t == nil {
		return nil
	}
	return t.entries
}

// Len returns the number of distinct prefixes.
func (t *SwiftTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}
