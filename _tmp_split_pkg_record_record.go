// Package record implements the in-memory MARC 21 record object model:
// the leader plus two insertion-order-preserving field collections, field
// and subfield accessors, and the bibliographic-flavour derived
// accessors. Authority and holdings flavours live in sibling packages
// that embed *Record and add their own derived bucket views over the same
// underlying field map, per the no-separate-storage design in
// SPEC_FULL.md §5.
package record

import (
	"fmt"
	"strings"

	"github.com/bgrewell/marc-kit/pkg/consts"
	"github.com/bgrewell/marc-kit/pkg/leader"
)

// Subfield is a single (code, value) pair inside a data field. Value is
// always decoded Unicode, regardless of the record's on-wire encoding.
type Subfield struct {
	Code  byte
	Value string
}

// Field is either a control field (Tag < "010": Value set, no indicators
// or subfields) or a data field (Tag >= "010": Indicator1/Indicator2 set,
// Subfields populated).
type Field struct {
	Tag        string
	Value      string // control fields only
	Indicator1 byte   // data fields only
	Indicator2 byte   // data fields only
	Subfields  SubfieldVec
}

// IsControl reports whether this field is a control field by tag value.
func (f *Field) IsControl() bool {
	return IsControlTag(f.Tag)
}

// IsControlTag reports whether tag sorts before the control/data boundary
// "010" (three ASCII digits, lexicographic order over zero-padded digits
// is numeric order).
func IsControlTag(tag string) bool {
	return tag < consts.ControlTagBoundary
}

// AddSubfield appends one subfield to a data field.
func (f *Field) AddSubfield(code byte, value string) {
	f.Subfields.Append(Subfield{Code: code, Value: value})
}

// Get returns the first subfield value for code.
func (f *Field) Get(code byte) (string, bool) {
	for i := 0; i < f.Subfields.Len(); i++ {
		sf := f.Subfields.At(i)
		if sf.Code == code {
			return sf.Value, true
		}
	}
	return "", false
}

// MustGet returns the first subfield value for code, panicking if absent.
// This is deliberate ergonomics sugar mirrored from the scripting-library
// convention the source library uses (§9 design note): callers that want
// the fallible form use Get instead.
func (f *Field) MustGet(code byte) string {
	v, ok := f.Get(code)
	if !ok {
		panic(fmt.Sprintf("record: field %q has no subfield %q", f.Tag, code))
	}
	return v
}

// GetAll returns every subfield value for code, in field order.
func (f *Field) GetAll(code byte) []string {
	var out []string
	for i := 0; i < f.Subfields.Len(); i++ {
		sf := f.Subfields.At(i)
		if sf.Code == code {
			out = append(out, sf.Value)
		}
	}
	return out
}

// GetMulti returns every subfield value whose code is in codes, in field
// order.
func (f *Field) GetMulti(codes ...byte) []string {
	set := make(map[byte]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	var out []string
	for i := 0; i < f.Subfields.Len(); i++ {
		sf := f.Subfields.At(i)
		if set[sf.Code] {
			out = append(out, sf.Value)
		}
	}
	return out
}

// Multimap builds a code -> ordered values map over every subfield.
func (f *Field) Multimap() map[byte][]string {
	out := make(map[byte][]string)
	for i := 0; i < f.Subfields.Len(); i++ {
		sf := f.Subfields.At(i)
		out[sf.Code] = append(out[sf.Code], sf.Value)
	}
	return out
}

// Display joins every subfield value with a single space, in field order.
func (f *Field) Display() string {
	var parts []string
	for i := 0; i < f.Subfields.Len(); i++ {
		parts = append(parts, f.Subfields.At(i).Value)
	}
	return strings.Join(parts, " ")
}

// Formatted renders a cataloguing-convention display string: for subject
// tags (those beginning with '6') subfields v/x/y/z are joined with
// " -- ", and the linkage subfield 6 is silently dropped. Other fields
// fall back to Display.
func (f *Field) Formatted() string {
	if len(f.Tag) == 0 || f.Tag[0] != '6' {
		return f.Display()
	}

	var parts []string
	for i := 0; i < f.Subfields.Len(); i++ {
		sf := f.Subfields.At(i)
		if sf.Code == '6' {
			continue
		}
		switch sf.Code {
		case 'v', 'x', 'y', 'z':
			parts = append(parts, sf.Value)
		default:
			if len(parts) == 0 {
				parts = append(parts, sf.Value)
			} else {
				parts[len(parts)-1] = parts[len(parts)-1] + " " + sf.Value
			}
		}
	}
	return strings.Join(parts, " -- ")
}

// ControlFieldEntry is one (tag, value) pair in a record's control-field
// insertion order.
type ControlFieldEntry struct {
	Tag   string
	Value string
}

// Record is the leader plus the two insertion-order-preserving field
// collections described in SPEC_FULL.md §5. A plain hash map is
// deliberately not used for either collection: it would lose the
// insertion-order round-trip fidelity §3 requires.
type Record struct {
	Leader        leader.Leader
	controlFields []ControlFieldEntry
	dataFields    []*Field
}

// New constructs an empty record with the given leader.
func New(lead leader.Leader) *Record {
	return &Record{Leader: lead}
}

// AddControlField sets tag's value, preserving tag's original insertion
// position if it is already present (control fields are unique per tag,
// per §3).
func (r *Record) AddControlField(tag, value string) error {
	if !IsControlTag(tag) {
		return fmt.Errorf("record: tag %q is not a control-field tag", tag)
	}
	for i := range r.controlFields {
		if r.controlFields[i].Tag == tag {
			r.controlFields[i].Value = value
			return nil
		}
	}
	r.controlFields = append(r.controlFields, ControlFieldEntry{Tag: tag, Value: value})
	return nil
}

// GetControlField returns tag's value.
func (r *Record) GetControlField(tag string) (string, bool) {
	for _, e := range r.controlFields {
		if e.Tag == tag {
			return e.Value, true
		}
	}
	return "", false
}

// ControlFields returns every control field in insertion order.
func (r *Record) ControlFields() []ControlFieldEntry {
	return r.controlFields
}

// ClearControlFields removes every control field.
func (r *Record) ClearControlFields() {
	r.controlFields = nil
}

// AddField appends a data field, preserving overall insertion order even
// across repeated tags.
func (r *Record) AddField(f *Field) error {
	if IsControlTag(f.Tag) {
		return fmt.Errorf("record: tag %q is not a data-field tag", f.Tag)
	}
	r.dataFields = append(r.dataFields, f)
	return nil
}

// GetField returns the first data field with the given tag.
func (r *Record) GetField(tag string) (*Field, bool) {
	for _, f := range r.dataFields {
		if f.Tag == tag {
			return f, true
		}
	}
	return nil, false
}

// MustField returns the first data field with the given tag, panicking if
// absent. Deliberate ergonomics sugar mirrored from the same convention as
// Field.MustGet (§9 design note); GetField is the fallible companion.
func (r *Record) MustField(tag string) *Field {
	f, ok := r.GetField(tag)
	if !ok {
		panic(fmt.Sprintf("record: no field with tag %q", tag))
	}
	return f
}

// FieldsByTag returns every data field with the given tag, in insertion
// order.
func (r *Record) FieldsByTag(tag string) []*Field {
	var out []*Field
	for _, f := range r.dataFields {
		if f.Tag == tag {
			out = append(out, f)
		}
	}
	return out
}

// Fields returns every data field in insertion order. The returned slice
// shares storage with the record, so in-place mutation through the
// pointers is visible to subsequent calls.
func (r *Record) Fields() []*Field {
	return r.dataFields
}

// RemoveFieldsByTag removes every data field with the given tag and
// returns the removed fields.
func (r *Record) RemoveFieldsByTag(tag string) []*Field {
	return r.RemoveFieldsWhere(func(f *Field) bool { return f.Tag == tag })
}

// RemoveFieldsWhere removes every data field matching pred and returns the
// removed fields.
func (r *Record) RemoveFieldsWhere(pred func(*Field) bool) []*Field {
	var kept, removed []*Field
	for _, f := range r.dataFields {
		if pred(f) {
			removed = append(removed, f)
		} else {
			kept = append(kept, f)
		}
	}
	r.dataFields = kept
	return removed
}

// UpdateFieldsWhere applies fn to every data field matching pred in place,
// returning the number of fields touched.
func (r *Record) UpdateFieldsWhere(pred func(*Field) bool, fn func(*Field)) int {
	count := 0
	for _, f := range r.dataFields {
		if pred(f) {
			fn(f)
			count++
		}
	}
	return count
}

// UpdateAllSubfields rewrites every subfield with the given code, across
// every data field, to newValue. It returns the number of subfields
// touched.
func (r *Record) UpdateAllSubfields(code byte, newValue string) int {
	count := 0
	for _, f := range r.dataFields {
		for i := 0; i < f.Subfields.Len(); i++ {
			if f.Subfields.At(i).Code == code {
				if i < 4 {
					f.Subfields.inline[i].Value = newValue
				} else {
					f.Subfields.overflow[i-4].Value = newValue
				}
				count++
			}
		}
	}
	return count
}

// ClearFields removes every data field.
func (r *Record) ClearFields() {
	r.dataFields = nil
}


