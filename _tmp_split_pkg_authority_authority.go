// Package authority adds the authority-record semantic view over the
// shared record model: a heading, see-from/see-also tracings, notes, and
// linking entries, all implemented as filter iterators over one field map
// rather than separate stored collections (SPEC_FULL.md §5/§9 design
// note — this is the one place the original Rust implementation's
// per-bucket storage is deliberately not mirrored).
package authority

import (
	"github.com/bgrewell/marc-kit/pkg/leader"
	"github.com/bgrewell/marc-kit/pkg/record"
)

// headingTags is the fixed, ordered tag list Heading scans.
var headingTags = []string{"100", "110", "111", "130", "148", "150", "151", "155"}

// Record embeds the shared field model and adds authority-flavour
// derived accessors.
type Record struct {
	*record.Record
}

// New constructs an empty authority record with the given leader.
func New(lead leader.Leader) *Record {
	return &Record{Record: record.New(lead)}
}

// Heading scans the fixed 1XX heading tag list in order and returns the
// first field found, plus the tag it was found under.
func (r *Record) Heading() (field *record.Field, tag string, ok bool) {
	for _, tag := range headingTags {
		if f, found := r.GetField(tag); found {
			return f, tag, true
		}
	}
	return nil, "", false
}

// SeeFromTracings returns every 4XX field (see-from references).
func (r *Record) SeeFromTracings() []*record.Field {
	return r.fieldsWithPrefix('4')
}

// SeeAlsoTracings returns every 5XX field (see-also references).
func (r *Record) SeeAlsoTracings() []*record.Field {
	return r.fieldsWithPrefix('5')
}

// Notes returns every field with a prefix of '6', excluding exactly 650,
// 651, and 655 (which carry subject-heading cross-references, not notes,
// in the authority schema).
func (r *Record) Notes() []*record.Field {
	var out []*record.Field
	for _, f := range r.Fields() {
		if len(f.Tag) == 3 && f.Tag[0] == '6' && f.Tag != "650" && f.Tag != "651" && f.Tag != "655" {
			out = append(out, f)
		}
	}
	return out
}

// SourceDataFound returns every 670 field (found data sources).
func (r *Record) SourceDataFound() []*record.Field {
	return r.FieldsByTag("670")
}

// SourceDataNotFound returns every 671 field (data not found sources).
func (r *Record) SourceDataNotFound() []*record.Field {
	return r.FieldsByTag("671")
}

// LinkingEntries returns every 7XX field.
func (r *Record) LinkingEntries() []*record.Field {
	return r.fieldsWithPrefix('7')
}

func (r *Record) fieldsWithPrefix(prefix byte) []*record.Field {
	var out []*record.Field
	for _, f := range r.Fields() {
		if len(f.Tag) == 3 && f.Tag[0] == prefix {
			out = append(out, f)
		}
	}
	return out
}

// RecordKind decodes 008/09.
type RecordKind byte

const (
	KindUnknown                   RecordKind = 0
	KindPersonalName              RecordKind = 'a'
	KindCorporateName             RecordKind = 'b'
	KindMeetingName               RecordKind = 'c'
	KindUniformTitle              RecordKind = 'd'
	KindChronTerm                 RecordKind = 'e'
	KindTopicalTerm                RecordKind = 'f'
	KindGenreTerm                  RecordKind = 'g'
	KindReferenceOrSubjectSplit    RecordKind = 'i'
	KindGeographicName             RecordKind = 'j'
)

// RecordKind returns the decoded 008/09 value, or KindUnknown if the
// control field is too short or absent.
func (r *Record) RecordKind() RecordKind {
	f008, ok := r.GetControlField("008")
	if !ok || len(f008) < 10 {
		return KindUnknown
	}
	return RecordKind(f008[9])
}

// LevelOfEstablishment decodes 008/33.
type LevelOfEstablishment byte

const (
	LevelUnknown               LevelOfEstablishment = 0
	LevelEstablished           LevelOfEstablishment = 'a'
	LevelProvisional           LevelOfEstablishment = 'b'
	LevelPreliminary           LevelOfEstablishment = 'c'
	LevelMemorandum            LevelOfEstablishment = 'd'
	LevelUndifferentiatedPersonalName LevelOfEstablishment = 'n'
)

// LevelOfEstablishment returns the decoded 008/33 value, or LevelUnknown
// if the control field is too short or absent.
func (r *Record) LevelOfEstablishment() LevelOfEstablishment {
	f008, ok := r.GetControlField("008")
	if !ok || len(f008) < 34 {
		return LevelUnknown
	}
	return LevelOfEstablishment(f008[33])
}

// IsEstablished reports whether this heading is fully established
// (level 'a').
func (r *Record) IsEstablished() bool {
	return r.LevelOfEstablishment() == LevelEstablished
}

// IsReference reports whether this heading is a 4XX/5XX reference-only
// record with no 1XX heading of its own.
func (r *Record) IsReference() bool {
	_, _, hasHeading := r.Heading()
	return !hasHeading
}

// HeadingTypeLabel names which heading tag was found, for diagnostics.
func HeadingTypeLabel(tag string) string {
	switch tag {
	case "100":
		return "personal name"
	case "110":
		return "corporate name"
	case "111":
		return "meeting name"
	case "130":
		return "uniform title"
	case "148":
		return "chronological term"
	case "150":
		return "topical term"
	case "151":
		return "geographic name"
	case "155":
		return "genre/form term"
	default:
		return "unknown"
	}
}


