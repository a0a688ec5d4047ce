package leader

// ValueInfo names one allowed value at a leader byte position together
// with its MARC 21 label. These tables are a reference lookup for tooling
// (e.g. cmd/marcdump) and are deliberately wider than the technical set
// FromBytes accepts: parsing enforces only what §4.1 requires (indicator
// and subfield-code counts, numeric widths), while these tables describe
// the full MARC 21-documented enumeration for positions 05-19.
type ValueInfo struct {
	Value byte
	Label string
}

// positionTables holds, per leader byte position, its documented
// enumeration. Positions not present here (00-04, 12-16, 20-23) are
// numeric or reserved and have no enumeration.
var positionTables = map[int][]ValueInfo{
	5: {
		{'a', "Increase in encoding level"},
		{'c', "Corrected or revised"},
		{'d', "Deleted"},
		{'n', "New"},
		{'p', "Increase in encoding level from prepublication"},
	},
	6: {
		{'a', "Language material"},
		{'c', "Notated music"},
		{'d', "Manuscript notated music"},
		{'e', "Cartographic material"},
		{'f', "Manuscript cartographic material"},
		{'g', "Projected medium"},
		{'i', "Nonmusical sound recording"},
		{'j', "Musical sound recording"},
		{'k', "Two-dimensional nonprojectable graphic"},
		{'m', "Computer file"},
		{'o', "Kit"},
		{'p', "Mixed materials"},
		{'r', "Three-dimensional artifact or naturally occurring object"},
		{'t', "Manuscript language material"},
		{'v', "Multipart holdings"},
		{'u', "Single-part holdings"},
		{'x', "Serial holdings"},
		{'y', "Basic holdings"},
		{'z', "Authority data"},
	},
	7: {
		{'a', "Monographic component part"},
		{'b', "Serial component part"},
		{'c', "Collection"},
		{'d', "Subunit"},
		{'i', "Integrating resource"},
		{'m', "Monograph/item"},
		{'s', "Serial"},
	},
	8: {
		{' ', "No specified type"},
		{'a', "Archival"},
	},
	9: {
		{' ', "MARC-8"},
		{'a', "UTF-8"},
	},
	10: {
		{'2', "2 indicator positions"},
	},
	11: {
		{'2', "2 subfield code positions"},
	},
	17: {
		{' ', "Full level"},
		{'1', "Full level, material not examined"},
		{'2', "Less-than-full level, material not examined"},
		{'3', "Abbreviated level"},
		{'4', "Core level"},
		{'5', "Partial (preliminary) level"},
		{'7', "Minimal level"},
		{'8', "Prepublication level"},
		{'u', "Unknown"},
		{'z', "Not applicable"},
	},
	18: {
		{' ', "Non-ISBD"},
		{'a', "AACR 2"},
		{'c', "ISBD punctuation omitted"},
		{'i', "ISBD punctuation included"},
		{'n', "Non-ISBD punctuation omitted"},
		{'u', "Unknown"},
	},
	19: {
		{' ', "Not specified or not applicable"},
		{'a', "Set"},
		{'b', "Part with independent title"},
		{'c', "Part with dependent title"},
	},
}

// ValidValuesAtPosition returns the documented enumeration for a leader
// byte position, or nil if that position has no enumeration (it is
// numeric or reserved).
func ValidValuesAtPosition(pos int) []ValueInfo {
	return positionTables[pos]
}

// DescribeValue returns the MARC 21 label for value at position, and
// whether that (position, value) pair is documented at all.
func DescribeValue(pos int, value byte) (string, bool) {
	for _, v := range positionTables[pos] {
		if v.Value == value {
			return v.Label, true
		}
	}
	return "", false
}

// IsValidValue reports whether value is a documented enumeration member at
// position. Positions with no enumeration always report true (nothing to
// check).
func IsValidValue(pos int, value byte) bool {
	table, ok := positionTables[pos]
	if !ok {
		return true
	}
	for _, v := range table {
		if v.Value == value {
			return true
		}
	}
	return false
}


