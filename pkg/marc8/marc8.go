// Package marc8 implements the stateful ISO 2022-style MARC-8 character
// encoding used by legacy MARC 21 records, and the UTF-8 alternative the
// leader's character-coding position also allows.
package marc8

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Encoding selects which of the two leader-declared character codings a
// Decode/Encode call operates under.
type Encoding int

const (
	EncodingMARC8 Encoding = iota
	EncodingUTF8
)

const (
	esc             byte = 0x1B
	replacementRune      = 0xFFFD
)

// Decode converts on-wire bytes into Unicode text. For EncodingUTF8 this
// is a validity check; for EncodingMARC8 it runs the ISO 2022 state
// machine described in SPEC_FULL.md §6/C3 and normalises the result to
// NFC.
func Decode(data []byte, enc Encoding) (string, error) {
	if enc == EncodingUTF8 {
		if !utf8.Valid(data) {
			return "", &decodeError{msg: "invalid UTF-8 byte sequence"}
		}
		return string(data), nil
	}
	return decodeMARC8(data), nil
}

// Encode converts Unicode text into on-wire bytes. For EncodingUTF8 this
// is the identity byte representation; for EncodingMARC8 it runs the
// reverse-table state machine described in SPEC_FULL.md §6/C3.
func Encode(text string, enc Encoding) ([]byte, error) {
	if enc == EncodingUTF8 {
		return []byte(text), nil
	}
	return encodeMARC8(text), nil
}

type decodeError struct{ msg string }

func (e *decodeError) Error() string { return e.msg }

// decoderState tracks the two single-byte registers plus whether the
// East-Asian multi-byte set is currently active.
type decoderState struct {
	g0        CharSet
	g1        CharSet
	multibyte bool
}

func decodeMARC8(data []byte) string {
	st := decoderState{g0: SetBasicLatin, g1: SetExtendedLatin}
	var out []rune
	var combining []rune

	emit := func(r rune, isCombining bool) {
		if isCombining {
			combining = append(combining, r)
			return
		}
		out = append(out, r)
		out = append(out, combining...)
		combining = combining[:0]
	}

	i := 0
	for i < len(data) {
		b := data[i]

		if b == esc {
			consumed, ok := applyEscape(data[i:], &st)
			if !ok {
				emit(replacementRune, false)
				break
			}
			i += consumed
			continue
		}

		if st.multibyte && b >= 0x21 && b <= 0x7E {
			if i+3 > len(data) {
				emit(replacementRune, false)
				break
			}
			key := uint32(data[i])<<16 | uint32(data[i+1])<<8 | uint32(data[i+2])
			r, found := eaccTable[key]
			if !found {
				r = replacementRune
			}
			emit(r, false)
			i += 3
			continue
		}

		if b == 0x0A || b == 0x0D {
			emit(rune(b), false)
			i++
			continue
		}

		if b < 0x20 || b == 0x7F {
			i++
			continue
		}

		var set CharSet
		switch {
		case b >= 0x20 && b <= 0x7E:
			set = st.g0
		case b >= 0xA0 && b <= 0xFE:
			set = st.g1
		default:
			i++
			continue
		}

		entry, found := singleByteTables[set][b]
		if !found {
			emit(replacementRune, false)
			i++
			continue
		}
		emit(entry.Rune, entry.Combining)
		i++
	}

	out = append(out, combining...)
	return norm.NFC.String(string(out))
}

// applyEscape interprets one escape sequence starting at data[0] == ESC,
// mutating st in place. It returns the number of bytes consumed and false
// if the escape was incomplete (ran off the end of data).
func applyEscape(data []byte, st *decoderState) (int, bool) {
	if len(data) < 2 {
		return 0, false
	}
	switch data[1] {
	case '(':
		if len(data) < 3 {
			return 0, false
		}
		if set, ok := fByteToSet[data[2]]; ok {
			st.g0 = set
		}
		return 3, true
	case ')':
		if len(data) < 3 {
			return 0, false
		}
		if set, ok := fByteToSet[data[2]]; ok {
			st.g1 = set
		}
		return 3, true
	case '$':
		if len(data) < 3 {
			return 0, false
		}
		if data[2] == '1' {
			st.multibyte = true
			return 3, true
		}
		// ESC $ M F: a multi-byte set with a modifier byte. Only EACC is
		// supported as a multi-byte set; anything else is consumed and
		// otherwise ignored.
		if len(data) < 4 {
			return 0, false
		}
		return 4, true
	case 's':
		st.g0 = SetBasicLatin
		st.multibyte = false
		return 2, true
	case 'g':
		st.g0 = SetGreekSymbols
		return 2, true
	case 'b':
		st.g0 = SetSubscripts
		return 2, true
	case 'p':
		st.g0 = SetSuperscripts
		return 2, true
	default:
		// Unknown escape sequence: skip two bytes, no output.
		return 2, true
	}
}

func encodeMARC8(text string) []byte {
	// Decompose first: Decode produces NFC (base+diacritic precomposed
	// into one scalar), but reverseSingleByte only knows the base
	// character and the standalone combining mark, matching the bytes
	// MARC-8 actually stores.
	decomposed := []rune(norm.NFD.String(text))

	var out []byte
	active := SetBasicLatin
	inEACC := false

	// leaveEACC returns from the EACC multibyte set to the default sets
	// before any single-byte output.
	leaveEACC := func() {
		if inEACC {
			out = append(out, esc, 's')
			active = SetBasicLatin
			inEACC = false
		}
	}

	emit := func(r rune) {
		if target, ok := reverseSingleByte[r]; ok {
			leaveEACC()
			if target.Set != active {
				out = append(out, designationEscape(target.Set)...)
				active = target.Set
			}
			out = append(out, target.Byte)
			return
		}
		if key, ok := reverseEACC[r]; ok {
			out = append(out, esc, '$', '1')
			out = append(out, key[0], key[1], key[2])
			inEACC = true
			return
		}
		leaveEACC()
		out = append(out, '?')
	}

	i := 0
	for i < len(decomposed) {
		r := decomposed[i]
		if combiningRunes[r] {
			emit(r)
			i++
			continue
		}
		j := i + 1
		for j < len(decomposed) && combiningRunes[decomposed[j]] {
			j++
		}
		// MARC-8 combining marks precede, rather than follow, their
		// base character; NFD decomposition orders them the other way.
		for k := i + 1; k < j; k++ {
			emit(decomposed[k])
		}
		emit(r)
		i = j
	}

	if active != SetBasicLatin || inEACC {
		out = append(out, esc, 's')
	}
	return out
}

func designationEscape(set CharSet) []byte {
	meta := setInfo[set]
	if meta.group == 0 {
		return []byte{esc, meta.code}
	}
	return []byte{esc, meta.group, meta.code}
}
