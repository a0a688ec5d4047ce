// Package consts holds the fixed byte-layout constants of the ISO 2709 /
// MARC 21 interchange format.
package consts

const (
	// RecordTerminator (0x1D) ends every record; it is the byte the
	// boundary scanner searches for.
	RecordTerminator = 0x1D

	// FieldTerminator (0x1E) ends each control/data field and the
	// directory itself.
	FieldTerminator = 0x1E

	// SubfieldDelimiter (0x1F) introduces a subfield code within a data
	// field.
	SubfieldDelimiter = 0x1F

	// LeaderLength is the fixed size, in bytes, of every record's leader.
	LeaderLength = 24

	// MaxRecordLength is the largest value the leader's 5-digit ASCII
	// record-length field can represent.
	MaxRecordLength = 99999

	// DirectoryEntryLength is the fixed size, in bytes, of one directory
	// entry: 3 tag digits + 4 length digits + 5 start-offset digits.
	DirectoryEntryLength = 12

	// DirectoryTagWidth, DirectoryLengthWidth, and DirectoryOffsetWidth
	// are the field widths within one 12-byte directory entry.
	DirectoryTagWidth    = 3
	DirectoryLengthWidth = 4
	DirectoryOffsetWidth = 5

	// ControlTagBoundary is the lowest tag value treated as a data field;
	// tags that compare less than this string are control fields.
	ControlTagBoundary = "010"

	// EncodingMARC8 and EncodingUTF8 are the two leader position 9 values.
	EncodingMARC8 byte = ' '
	EncodingUTF8  byte = 'a'

	// RequiredIndicatorCount and RequiredSubfieldCodeCount are the only
	// legal values for leader positions 10 and 11; any other value is an
	// InvalidLeader parse error.
	RequiredIndicatorCount   = '2'
	RequiredSubfieldCodeCount = '2'

	// ReservedLeaderBytes is the conventional content of leader positions
	// 20-23.
	ReservedLeaderBytes = "4500"
)

// AuthorityRecordTypes are leader position 6 values that mark an authority
// record.
var AuthorityRecordTypes = []byte{'z'}

// HoldingsRecordTypes are leader position 6 values that mark a holdings
// record.
var HoldingsRecordTypes = []byte{'x', 'y', 'v', 'u'}

// BibliographicRecordTypes are the remaining leader position 6 values,
// covering language material, manuscripts, maps, music, and mixed
// materials.
var BibliographicRecordTypes = []byte{'a', 'c', 'd', 'e', 'f', 'g', 'i', 'j', 'k', 'm', 'o', 'p', 'r', 't'}


