// =============================================================================
// goAML Report Validator - File Operations
// =============================================================================
//
// Small filesystem helpers shared by the batch driver and artifact writer.
//
// =============================================================================

package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// EnsureDir creates the directory and any missing parents.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// ListReports returns the report files in dir, sorted by name for a stable
// processing order.
func ListReports(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.xml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list reports in %s: %w", dir, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// UploadID derives a report's external id from its file name: the base name
// up to the first dot.
func UploadID(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		return base[:i]
	}
	return base
}
