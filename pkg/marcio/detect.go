package marcio

import "github.com/bgrewell/marc-kit/pkg/marc8"

// FieldEncodingReport pairs a field's tag with the advisory encoding
// classification marc8.DetectLikelyEncoding produced for its raw bytes.
type FieldEncodingReport struct {
	Tag string
	marc8.DetectionReport
}

// LastEncodingReports returns the per-field detection reports gathered
// while decoding the most recent ReadRecord call, in field order. It is
// always empty unless the reader was built WithEncodingDetection(true).
func (r *Reader) LastEncodingReports() []FieldEncodingReport {
	return r.reports
}

// Mismatches filters reports down to the ones flagged LikelyMismatch.
func Mismatches(reports []FieldEncodingReport) []FieldEncodingReport {
	var out []FieldEncodingReport
	for _, rep := range reports {
		if rep.LikelyMismatch {
			out = append(out, rep)
		}
	}
	return out
}
