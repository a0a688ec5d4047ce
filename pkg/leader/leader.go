// Package leader parses and emits the 24-byte fixed header that begins
// every MARC 21 / ISO 2709 record.
package leader

import (
	"fmt"

	"github.com/bgrewell/marc-kit/pkg/consts"
	"github.com/bgrewell/marc-kit/pkg/encoding"
)

// Leader is the structured form of the 24-byte MARC 21 leader. Field names
// and byte offsets follow the MARC 21 leader layout (positions 00-23).
type Leader struct {
	// RecordLength is leader/00-04, the total record length in bytes
	// including the leader itself. Advisory between reads and writes: the
	// writer recomputes it from actual field content (§3 invariant).
	RecordLength int
	// RecordStatus is leader/05, one of {a,c,d,n,p}.
	RecordStatus byte
	// RecordType is leader/06. 'z' marks an authority record; one of
	// {x,y,v,u} marks a holdings record; the rest mark bibliographic.
	RecordType byte
	// BibliographicLevel is leader/07.
	BibliographicLevel byte
	// ControlType is leader/08, ' ' or 'a'.
	ControlType byte
	// CharacterCoding is leader/09: ' ' selects MARC-8, 'a' selects UTF-8.
	CharacterCoding byte
	// IndicatorCount is leader/10. Must be '2' per §4.1.
	IndicatorCount byte
	// SubfieldCodeCount is leader/11. Must be '2' per §4.1.
	SubfieldCodeCount byte
	// BaseAddress is leader/12-16, the byte offset of the data section
	// (24 + directory length + 1 for the field terminator). Advisory
	// between reads and writes, same as RecordLength.
	BaseAddress int
	// EncodingLevel is leader/17.
	EncodingLevel byte
	// CatalogingForm is leader/18.
	CatalogingForm byte
	// MultipartLevel is leader/19.
	MultipartLevel byte
	// Reserved is leader/20-23, conventionally "4500".
	Reserved [4]byte
}

// New returns a Leader with the structural defaults every freshly built
// record needs: 2 indicators, 2 subfield-code width, and the conventional
// reserved bytes. RecordLength and BaseAddress are left at zero; the writer
// fills them in from actual content.
func New(recordType, characterCoding byte) Leader {
	l := Leader{
		RecordStatus:      'n',
		RecordType:        recordType,
		ControlType:       ' ',
		CharacterCoding:   characterCoding,
		IndicatorCount:    consts.RequiredIndicatorCount,
		SubfieldCodeCount: consts.RequiredSubfieldCodeCount,
		EncodingLevel:     ' ',
		CatalogingForm:    ' ',
		MultipartLevel:    ' ',
	}
	copy(l.Reserved[:], consts.ReservedLeaderBytes)
	return l
}

// FromBytes parses exactly 24 bytes into a Leader. It does not call
// ValidateForReading; callers that are about to do offset arithmetic on
// RecordLength/BaseAddress must call that separately.
func FromBytes(data []byte) (Leader, error) {
	if len(data) != consts.LeaderLength {
		return Leader{}, fmt.Errorf("leader: expected %d bytes, got %d", consts.LeaderLength, len(data))
	}

	recLen, err := encoding.ParseDigits(data[0:5])
	if err != nil {
		return Leader{}, fmt.Errorf("leader: record length: %w", err)
	}

	if data[10] != consts.RequiredIndicatorCount {
		return Leader{}, fmt.Errorf("leader: indicator count must be '2', got %q", data[10])
	}
	if data[11] != consts.RequiredSubfieldCodeCount {
		return Leader{}, fmt.Errorf("leader: subfield code count must be '2', got %q", data[11])
	}

	baseAddr, err := encoding.ParseDigits(data[12:17])
	if err != nil {
		return Leader{}, fmt.Errorf("leader: base address: %w", err)
	}

	l := Leader{
		RecordLength:       recLen,
		RecordStatus:       data[5],
		RecordType:         data[6],
		BibliographicLevel: data[7],
		ControlType:        data[8],
		CharacterCoding:    data[9],
		IndicatorCount:     data[10],
		SubfieldCodeCount:  data[11],
		BaseAddress:        baseAddr,
		EncodingLevel:      data[17],
		CatalogingForm:     data[18],
		MultipartLevel:     data[19],
	}
	copy(l.Reserved[:], data[20:24])
	return l, nil
}

// AsBytes emits exactly 24 bytes from l, zero-padding the numeric fields to
// their fixed width.
func (l Leader) AsBytes() []byte {
	buf := make([]byte, consts.LeaderLength)
	copy(buf[0:5], encoding.PadDigits(l.RecordLength, 5))
	buf[5] = l.RecordStatus
	buf[6] = l.RecordType
	buf[7] = l.BibliographicLevel
	buf[8] = l.ControlType
	buf[9] = l.CharacterCoding
	buf[10] = l.IndicatorCount
	buf[11] = l.SubfieldCodeCount
	copy(buf[12:17], encoding.PadDigits(l.BaseAddress, 5))
	buf[17] = l.EncodingLevel
	buf[18] = l.CatalogingForm
	buf[19] = l.MultipartLevel
	reserved := l.Reserved
	if reserved == ([4]byte{}) {
		copy(reserved[:], consts.ReservedLeaderBytes)
	}
	copy(buf[20:24], reserved[:])
	return buf
}

// ValidateForReading rejects a leader whose record length or base address
// would wrap around in later slice arithmetic: both must be at least the
// leader's own length.
func (l Leader) ValidateForReading() error {
	if l.RecordLength < consts.LeaderLength {
		return fmt.Errorf("leader: record length %d is less than %d", l.RecordLength, consts.LeaderLength)
	}
	if l.BaseAddress < consts.LeaderLength {
		return fmt.Errorf("leader: base address %d is less than %d", l.BaseAddress, consts.LeaderLength)
	}
	return nil
}

// IsAuthority reports whether RecordType marks this as an authority record.
func (l Leader) IsAuthority() bool {
	return l.RecordType == 'z'
}

// IsHoldings reports whether RecordType marks this as a holdings record.
func (l Leader) IsHoldings() bool {
	for _, t := range consts.HoldingsRecordTypes {
		if l.RecordType == t {
			return true
		}
	}
	return false
}

// IsMARC8 reports whether CharacterCoding selects MARC-8 rather than UTF-8.
func (l Leader) IsMARC8() bool {
	return l.CharacterCoding == consts.EncodingMARC8
}
