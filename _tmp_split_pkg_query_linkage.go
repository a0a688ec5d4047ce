package query

import (
	"regexp"

	"github.com/bgrewell/marc-kit/pkg/record"
)

// linkagePattern parses subfield 6's "TAG-OCC[/script][/r]" grammar,
// grounded in the original implementation's field_linkage.rs. TAG is a
// 3-digit field tag, OCC a 2-3 digit occurrence number, and the optional
// script segment is either a parenthesized code ((2, (3, (B, (N, (S, ...)
// or a dollar-sign CJK code ($1).
var linkagePattern = regexp.MustCompile(`^(\d{3})-(\d{2,3})(?:/([(\$][A-Za-z0-9]))?(?:/r)?$`)

// LinkageInfo is the parsed form of a subfield 6 linkage value.
type LinkageInfo struct {
	Tag        string
	Occurrence string
	ScriptID   string
	IsReverse  bool
}

// ParseLinkage parses value into a LinkageInfo, or returns ok=false
// without panicking if value doesn't match the linkage grammar.
func ParseLinkage(value string) (LinkageInfo, bool) {
	m := linkagePattern.FindStringSubmatch(value)
	if m == nil {
		return LinkageInfo{}, false
	}
	info := LinkageInfo{
		Tag:        m[1],
		Occurrence: m[2],
		ScriptID:   m[3],
	}
	info.IsReverse = len(value) >= 2 && value[len(value)-2:] == "/r"
	return info, true
}

// GetLinkedField finds the 880 field whose subfield 6 occurrence matches
// field's own subfield 6 occurrence. Returns ok=false if field has no
// parseable linkage or no matching 880 field exists.
func GetLinkedField(rec *record.Record, field *record.Field) (*record.Field, bool) {
	raw, ok := field.Get('6')
	if !ok {
		return nil, false
	}
	info, ok := ParseLinkage(raw)
	if !ok {
		return nil, false
	}
	for _, f880 := range rec.FieldsByTag("880") {
		linkRaw, ok := f880.Get('6')
		if !ok {
			continue
		}
		linkInfo, ok := ParseLinkage(linkRaw)
		if !ok {
			continue
		}
		if linkInfo.Occurrence == info.Occurrence {
			return f880, true
		}
	}
	return nil, false
}

// GetOriginalField finds the original field that field880's subfield 6
// links back to: the tag prefix of its linkage names the tag to search,
// and the occurrence number must match.
func GetOriginalField(rec *record.Record, field880 *record.Field) (*record.Field, bool) {
	raw, ok := field880.Get('6')
	if !ok {
		return nil, false
	}
	info, ok := ParseLinkage(raw)
	if !ok {
		return nil, false
	}
	for _, f := range rec.FieldsByTag(info.Tag) {
		linkRaw, ok := f.Get('6')
		if !ok {
			continue
		}
		linkInfo, ok := ParseLinkage(linkRaw)
		if !ok {
			continue
		}
		if linkInfo.Occurrence == info.Occurrence {
			return f, true
		}
	}
	return nil, false
}

// FieldPair is an original field paired with its optional 880 linked
// counterpart.
type FieldPair struct {
	Original *record.Field
	Linked   *record.Field
}

// GetFieldPairs returns a (original, optional 880) pair for every field
// on tag in rec.
func GetFieldPairs(rec *record.Record, tag string) []FieldPair {
	var out []FieldPair
	for _, f := range rec.FieldsByTag(tag) {
		linked, _ := GetLinkedField(rec, f)
		out = append(out, FieldPair{Original: f, Linked: linked})
	}
	return out
}

// All880Fields returns every 880 field in rec.
func All880Fields(rec *record.Record) []*record.Field {
	return rec.FieldsByTag("880")
}


