// Package query implements the composable field-query DSL: value objects
// that describe a match (tag, tag range, subfield regex, subfield value)
// constructed at one call site and executed at another, grounded in the
// original implementation's field_query.rs and field_query_helpers.rs.
package query

import (
	"regexp"
	"strings"

	"github.com/bgrewell/marc-kit/pkg/record"
)

// FieldQuery matches on tag equality, indicator equality (wildcard when
// unset), and a set of required subfield codes (AND semantics).
type FieldQuery struct {
	tag               string
	hasTag            bool
	indicator1        byte
	hasIndicator1     bool
	indicator2        byte
	hasIndicator2     bool
	requiredSubfields []byte
}

// New returns a query that matches every field until narrowed.
func New() FieldQuery {
	return FieldQuery{}
}

// Tag restricts the query to fields with an exact tag match.
func (q FieldQuery) Tag(tag string) FieldQuery {
	q.tag = tag
	q.hasTag = true
	return q
}

// Indicator1 restricts the query to fields whose first indicator equals
// ind. Not calling this leaves the position a wildcard.
func (q FieldQuery) Indicator1(ind byte) FieldQuery {
	q.indicator1 = ind
	q.hasIndicator1 = true
	return q
}

// Indicator2 restricts the query to fields whose second indicator equals
// ind. Not calling this leaves the position a wildcard.
func (q FieldQuery) Indicator2(ind byte) FieldQuery {
	q.indicator2 = ind
	q.hasIndicator2 = true
	return q
}

// HasSubfield requires the field to carry a subfield with the given
// code. Repeated calls accumulate additional required codes (AND logic).
func (q FieldQuery) HasSubfield(code byte) FieldQuery {
	for _, c := range q.requiredSubfields {
		if c == code {
			return q
		}
	}
	q.requiredSubfields = append(append([]byte(nil), q.requiredSubfields...), code)
	return q
}

// HasSubfields requires all of the given codes.
func (q FieldQuery) HasSubfields(codes ...byte) FieldQuery {
	for _, c := range codes {
		q = q.HasSubfield(c)
	}
	return q
}

// TagRange converts the query into a TagRangeQuery covering the inclusive
// [start, end] tag range, carrying over indicator and subfield filters.
func (q FieldQuery) TagRange(start, end string) TagRangeQuery {
	return TagRangeQuery{
		startTag:          start,
		endTag:            end,
		indicator1:        q.indicator1,
		hasIndicator1:     q.hasIndicator1,
		indicator2:        q.indicator2,
		hasIndicator2:     q.hasIndicator2,
		requiredSubfields: q.requiredSubfields,
	}
}

// Matches reports whether f satisfies every non-wildcard component.
func (q FieldQuery) Matches(f *record.Field) bool {
	if q.hasTag && f.Tag != q.tag {
		return false
	}
	if q.hasIndicator1 && f.Indicator1 != q.indicator1 {
		return false
	}
	if q.hasIndicator2 && f.Indicator2 != q.indicator2 {
		return false
	}
	return hasAllSubfields(f, q.requiredSubfields)
}

// TagRangeQuery matches a lexicographic (equivalently, numeric for
// zero-padded 3-digit tags) inclusive tag range plus the same indicator
// and subfield filters as FieldQuery.
type TagRangeQuery struct {
	startTag, endTag  string
	indicator1        byte
	hasIndicator1     bool
	indicator2        byte
	hasIndicator2     bool
	requiredSubfields []byte
}

// NewTagRange constructs a range query directly.
func NewTagRange(start, end string) TagRangeQuery {
	return TagRangeQuery{startTag: start, endTag: end}
}

// InRange reports whether tag falls within [start, end] inclusive.
func (q TagRangeQuery) InRange(tag string) bool {
	return tag >= q.startTag && tag <= q.endTag
}

// Matches reports whether f's tag is in range and satisfies the indicator
// and subfield filters.
func (q TagRangeQuery) Matches(f *record.Field) bool {
	if !q.InRange(f.Tag) {
		return false
	}
	if q.hasIndicator1 && f.Indicator1 != q.indicator1 {
		return false
	}
	if q.hasIndicator2 && f.Indicator2 != q.indicator2 {
		return false
	}
	return hasAllSubfields(f, q.requiredSubfields)
}

// SubfieldPatternQuery matches fields whose tag equals Tag and whose
// first SubfieldCode subfield matches a compiled regular expression.
type SubfieldPatternQuery struct {
	Tag          string
	SubfieldCode byte
	pattern      *regexp.Regexp
}

// NewSubfieldPattern compiles pattern and returns a query, or an error if
// pattern is not a valid regular expression.
func NewSubfieldPattern(tag string, subfieldCode byte, pattern string) (SubfieldPatternQuery, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return SubfieldPatternQuery{}, err
	}
	return SubfieldPatternQuery{Tag: tag, SubfieldCode: subfieldCode, pattern: re}, nil
}

// Matches reports whether f's tag equals Tag and its first SubfieldCode
// subfield matches the compiled pattern.
func (q SubfieldPatternQuery) Matches(f *record.Field) bool {
	if f.Tag != q.Tag {
		return false
	}
	val, ok := f.Get(q.SubfieldCode)
	if !ok {
		return false
	}
	return q.pattern.MatchString(val)
}

// SubfieldValueQuery matches fields whose tag equals Tag and whose first
// SubfieldCode subfield equals (or contains, if Partial) Value.
type SubfieldValueQuery struct {
	Tag          string
	SubfieldCode byte
	Value        string
	Partial      bool
}

// NewSubfieldValue constructs an exact-match subfield value query.
func NewSubfieldValue(tag string, subfieldCode byte, value string) SubfieldValueQuery {
	return SubfieldValueQuery{Tag: tag, SubfieldCode: subfieldCode, Value: value}
}

// NewSubfieldValuePartial constructs a substring-match subfield value
// query.
func NewSubfieldValuePartial(tag string, subfieldCode byte, value string) SubfieldValueQuery {
	return SubfieldValueQuery{Tag: tag, SubfieldCode: subfieldCode, Value: value, Partial: true}
}

// Matches reports whether f's tag equals Tag and its first SubfieldCode
// subfield equals, or contains, Value.
func (q SubfieldValueQuery) Matches(f *record.Field) bool {
	if f.Tag != q.Tag {
		return false
	}
	val, ok := f.Get(q.SubfieldCode)
	if !ok {
		return false
	}
	if q.Partial {
		return strings.Contains(val, q.Value)
	}
	return val == q.Value
}

func hasAllSubfields(f *record.Field, codes []byte) bool {
	for _, code := range codes {
		if _, ok := f.Get(code); !ok {
			return false
		}
	}
	return true
}



