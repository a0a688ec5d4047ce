// Package validation offers advisory checks layered on top of what the
// reader enforces while parsing: leader byte values against the
// documented MARC 21 enumeration, and subfield 6 linkage occurrence
// uniqueness. Adapted from the teacher's ISO 9660 d-character/directory
// identifier validators, which played the same role — a second,
// optional pass applied after a structurally valid object is already in
// hand, not a parsing gate.
package validation

import (
	"fmt"

	"github.com/bgrewell/marc-kit/pkg/leader"
	"github.com/bgrewell/marc-kit/pkg/query"
	"github.com/bgrewell/marc-kit/pkg/record"
)

// leaderPosition names one leader byte position this package checks
// against the documented MARC 21 enumeration.
type leaderPosition struct {
	pos   int
	name  string
	value byte
}

// ValidateLeader checks l's enumerated byte positions against the
// documented MARC 21 value tables and returns one advisory message per
// position whose value isn't a documented enumeration member. An empty
// result doesn't certify the leader is right for this record's content,
// only that every checked byte matches something MARC 21 describes;
// ValidateForReading enforces the narrower set FromBytes actually
// requires.
func ValidateLeader(l leader.Leader) []string {
	positions := []leaderPosition{
		{5, "record status", l.RecordStatus},
		{6, "record type", l.RecordType},
		{7, "bibliographic level", l.BibliographicLevel},
		{8, "control type", l.ControlType},
		{9, "character coding", l.CharacterCoding},
		{17, "encoding level", l.EncodingLevel},
		{18, "cataloging form", l.CatalogingForm},
		{19, "multipart level", l.MultipartLevel},
	}

	var messages []string
	for _, p := range positions {
		if !leader.IsValidValue(p.pos, p.value) {
			messages = append(messages, fmt.Sprintf("leader/%02d (%s): %q is not a documented value", p.pos, p.name, p.value))
		}
	}
	return messages
}

// ValidateLinkageOccurrences reports the first duplicate subfield 6
// occurrence number found among rec's fields sharing a tag. 880 linkage
// resolution (query.GetLinkedField/GetOriginalField) matches fields by
// tag plus occurrence number alone, so a duplicate within a tag makes
// linkage ambiguous; this is the invariant that guards against it.
func ValidateLinkageOccurrences(rec *record.Record) error {
	seen := make(map[string]map[string]bool)
	for _, f := range rec.Fields() {
		raw, ok := f.Get('6')
		if !ok {
			continue
		}
		info, ok := query.ParseLinkage(raw)
		if !ok {
			continue
		}
		if seen[f.Tag] == nil {
			seen[f.Tag] = make(map[string]bool)
		}
		if seen[f.Tag][info.Occurrence] {
			return fmt.Errorf("validation: tag %s has duplicate subfield 6 occurrence %q", f.Tag, info.Occurrence)
		}
		seen[f.Tag][info.Occurrence] = true
	}
	return nil
}


