package query

import "github.com/bgrewell/marc-kit/pkg/record"

// subjectTags mirrors the fixed subject-tag list record.Subjects scans,
// duplicated here so the query layer stays decoupled from the record
// package's bibliographic helpers.
var subjectTags = []string{
	"600", "610", "611", "630", "648", "650", "651",
	"653", "654", "655", "656", "657", "658", "662",
	"690", "691", "696", "697", "698", "699",
}

// FieldsMatching returns every field in rec matching q, in record order.
func FieldsMatching(rec *record.Record, q FieldQuery) []*record.Field {
	var out []*record.Field
	for _, f := range rec.Fields() {
		if q.Matches(f) {
			out = append(out, f)
		}
	}
	return out
}

// FieldsMatchingRange returns every field in rec matching the tag-range
// query q, in record order.
func FieldsMatchingRange(rec *record.Record, q TagRangeQuery) []*record.Field {
	var out []*record.Field
	for _, f := range rec.Fields() {
		if q.Matches(f) {
			out = append(out, f)
		}
	}
	return out
}

// FieldsMatchingPattern returns every field in rec matching the subfield
// regex query q.
func FieldsMatchingPattern(rec *record.Record, q SubfieldPatternQuery) []*record.Field {
	var out []*record.Field
	for _, f := range rec.Fields() {
		if q.Matches(f) {
			out = append(out, f)
		}
	}
	return out
}

// FieldsMatchingValue returns every field in rec matching the subfield
// value query q.
func FieldsMatchingValue(rec *record.Record, q SubfieldValueQuery) []*record.Field {
	var out []*record.Field
	for _, f := range rec.Fields() {
		if q.Matches(f) {
			out = append(out, f)
		}
	}
	return out
}

// SubjectsWithSubdivision scans every subject tag for a subdivision
// subfield equal to value, grounded in field_query_helpers.rs's
// subjects_with_subdivision.
func SubjectsWithSubdivision(rec *record.Record, code byte, value string) []*record.Field {
	var out []*record.Field
	for _, tag := range subjectTags {
		out = append(out, FieldsMatchingValue(rec, NewSubfieldValue(tag, code, value))...)
	}
	return out
}

// SubjectsWithNote scans every subject tag for a $x subdivision
// containing text (substring match).
func SubjectsWithNote(rec *record.Record, text string) []*record.Field {
	var out []*record.Field
	for _, tag := range subjectTags {
		out = append(out, FieldsMatchingValue(rec, NewSubfieldValuePartial(tag, 'x', text))...)
	}
	return out
}

// ISBNsMatching runs a subfield-pattern query against 020$a.
func ISBNsMatching(rec *record.Record, pattern string) ([]*record.Field, error) {
	q, err := NewSubfieldPattern("020", 'a', pattern)
	if err != nil {
		return nil, err
	}
	return FieldsMatchingPattern(rec, q), nil
}

// NamesInRange returns every field within [start, end] — typically a
// name-tag range such as 700-711 (added entries).
func NamesInRange(rec *record.Record, start, end string) []*record.Field {
	return FieldsMatchingRange(rec, NewTagRange(start, end))
}

// AuthorDates pairs a name with its dates subfield.
type AuthorDates struct {
	Name  string
	Dates string
}

// AuthorsWithDates returns (name, dates) pairs from every 100/700 field
// carrying both $a and $d.
func AuthorsWithDates(rec *record.Record) []AuthorDates {
	var out []AuthorDates
	for _, tag := range []string{"100", "700"} {
		for _, f := range rec.FieldsByTag(tag) {
			name, hasName := f.Get('a')
			dates, hasDates := f.Get('d')
			if hasName && hasDates {
				out = append(out, AuthorDates{Name: name, Dates: dates})
			}
		}
	}
	return out
}


