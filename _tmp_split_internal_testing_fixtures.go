// Package testing carries small fixture builders shared across the
// module's test files: record byte-builders and corpus file helpers.
// Adapted from the teacher's internal/testing/count.go and validate.go,
// which built directory-tree fixtures and compared BFS walks against a
// ground-truth JSON file the same structural way this package builds
// records and compares parsed counts against an expected total.
package testing

import (
	"github.com/bgrewell/marc-kit/pkg/leader"
	"github.com/bgrewell/marc-kit/pkg/record"
)

// NewBibliographicRecord builds a minimal but valid bibliographic record
// with a 245 title field and, when author is non-empty, a 100 main entry.
func NewBibliographicRecord(title, author string) *record.Record {
	rec := record.New(leader.New('a', 'a'))
	_ = rec.AddControlField("001", "t0000001")
	_ = rec.AddControlField("008", "880101s1988    nyu           000 0 eng  ")

	if author != "" {
		main := &record.Field{Tag: "100", Indicator1: '1', Indicator2: ' '}
		main.AddSubfield('a', author)
		_ = rec.AddField(main)
	}

	titleField := &record.Field{Tag: "245", Indicator1: '1', Indicator2: '0'}
	titleField.AddSubfield('a', title)
	_ = rec.AddField(titleField)

	return rec
}

// NewAuthorityRecord builds a minimal authority record with a 1XX
// established heading on tag.
func NewAuthorityRecord(tag, heading string) *record.Record {
	rec := record.New(leader.New('z', 'a'))
	_ = rec.AddControlField("001", "n0000001")
	_ = rec.AddControlField("008", "880101n| azannaabn          |a ana     ")

	f := &record.Field{Tag: tag, Indicator1: ' ', Indicator2: ' '}
	f.AddSubfield('a', heading)
	_ = rec.AddField(f)

	return rec
}

// NewHoldingsRecord builds a minimal holdings record with a single 852
// location field.
func NewHoldingsRecord(location string) *record.Record {
	rec := record.New(leader.New('x', 'a'))
	_ = rec.AddControlField("001", "h0000001")
	_ = rec.AddControlField("008", "880101c|  ||||||||||||0000000eng0")

	f := &record.Field{Tag: "852", Indicator1: ' ', Indicator2: ' '}
	f.AddSubfield('a', location)
	_ = rec.AddField(f)

	return rec
}

// WithLinkedField adds field and its 880 counterpart to rec, wiring
// subfield 6 on both sides to the given occurrence number so
// query.GetLinkedField/GetOriginalField can resolve them.
func WithLinkedField(rec *record.Record, field, field880 *record.Field, occurrence string) {
	field.AddSubfield('6', "880-"+occurrence)
	field880.AddSubfield('6', field.Tag+"-"+occurrence)
	_ = rec.AddField(field)
	_ = rec.AddField(field880)
}


