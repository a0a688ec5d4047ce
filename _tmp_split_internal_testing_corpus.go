package testing

import (
	"fmt"
	"os"

	"github.com/bgrewell/marc-kit/pkg/boundary"
)

// CountRecordsInFile counts the 0x1D record terminators in the file at
// path without parsing any record, the same cheap pre-flight check
// corpus-driven tests use before running the full pipeline over a file.
func CountRecordsInFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading corpus file: %w", err)
	}
	return boundary.CountRecords(data), nil
}

// RequireRecordCount reads path and returns an error unless it contains
// exactly want records, the ground-truth-comparison role the teacher's
// Validate/LoadGroundTruth pairing played for directory-tree fixtures.
func RequireRecordCount(path string, want int) error {
	got, err := CountRecordsInFile(path)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("corpus file %s: expected %d records, found %d", path, want, got)
	}
	return nil
}


