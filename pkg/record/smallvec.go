package record

// SubfieldVec is a small-vector-optimized container for a field's
// subfields. The overwhelming majority of MARC data fields carry four or
// fewer subfields; storing the first four inline avoids a heap
// allocation per field for the common case, spilling to a slice only once
// a fifth subfield is appended. This matters because a parsed record
// document can carry hundreds of fields (see DESIGN.md).
type SubfieldVec struct {
	inline   [4]Subfield
	n        int
	overflow []Subfield
}

// Append adds sf as the last subfield.
func (v *SubfieldVec) Append(sf Subfield) {
	if v.n < len(v.inline) {
		v.inline[v.n] = sf
		v.n++
		return
	}
	v.overflow = append(v.overflow, sf)
	v.n++
}

// Len returns the number of subfields stored.
func (v *SubfieldVec) Len() int {
	return v.n
}

// At returns the subfield at position i in insertion order.
func (v *SubfieldVec) At(i int) Subfield {
	if i < len(v.inline) {
		return v.inline[i]
	}
	return v.overflow[i-len(v.inline)]
}

// SetAt replaces the subfield at position i in insertion order.
func (v *SubfieldVec) SetAt(i int, sf Subfield) {
	if i < len(v.inline) {
		v.inline[i] = sf
		return
	}
	v.overflow[i-len(v.inline)] = sf
}

// All materializes every subfield as an ordinary slice, for callers that
// want to range over them or build a new vector from a filtered subset.
func (v *SubfieldVec) All() []Subfield {
	out := make([]Subfield, v.n)
	for i := 0; i < v.n; i++ {
		out[i] = v.At(i)
	}
	return out
}

// Remove deletes every subfield for which keep returns false, compacting
// the remaining ones in place. It returns the removed subfields.
func (v *SubfieldVec) Remove(keep func(Subfield) bool) []Subfield {
	all := v.All()
	var removed []Subfield
	*v = SubfieldVec{}
	for _, sf := range all {
		if keep(sf) {
			v.Append(sf)
		} else {
			removed = append(removed, sf)
		}
	}
	return removed
}
