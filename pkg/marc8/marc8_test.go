package marc8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeASCIIIdentity(t *testing.T) {
	text, err := Decode([]byte("Hello, World!"), EncodingMARC8)
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", text)
}

func TestDecodeSubscriptSequence(t *testing.T) {
	// §8 scenario 4: H, ESC, 'b', '2', ESC, 's', 'O' -> H₂O
	input := []byte{'H', esc, 'b', '2', esc, 's', 'O'}
	text, err := Decode(input, EncodingMARC8)
	require.NoError(t, err)
	assert.Equal(t, "H₂O", text)
}

func TestDecodeEACCMultiByte(t *testing.T) {
	// §8 scenario 5: ESC, '$', '1', 0x21, 0x23, 0x20 -> U+3000
	input := []byte{esc, '$', '1', 0x21, 0x23, 0x20}
	text, err := Decode(input, EncodingMARC8)
	require.NoError(t, err)
	assert.Equal(t, "　", text)
}

func TestDecodeUnknownEscapeSkipped(t *testing.T) {
	input := []byte{'A', esc, 'Z', 'B'}
	text, err := Decode(input, EncodingMARC8)
	require.NoError(t, err)
	assert.Equal(t, "AB", text)
}

func TestDecodeIncompleteEscapeAtEOF(t *testing.T) {
	input := []byte{'A', esc, '('}
	text, err := Decode(input, EncodingMARC8)
	require.NoError(t, err)
	assert.Equal(t, "A�", text)
}

func TestDecodeLookupMissProducesReplacementChar(t *testing.T) {
	input := []byte{0xA0} // not present in the ANSEL subset table
	text, err := Decode(input, EncodingMARC8)
	require.NoError(t, err)
	assert.Equal(t, "�", text)
}

func TestEncodeDecodeRoundTripASCII(t *testing.T) {
	text := "The quick brown fox"
	encoded, err := Encode(text, EncodingMARC8)
	require.NoError(t, err)
	decoded, err := Decode(encoded, EncodingMARC8)
	require.NoError(t, err)
	assert.Equal(t, text, decoded)
}

func TestEncodeDecodeRoundTripSubscript(t *testing.T) {
	text := "H₂O"
	encoded, err := Encode(text, EncodingMARC8)
	require.NoError(t, err)
	decoded, err := Decode(encoded, EncodingMARC8)
	require.NoError(t, err)
	assert.Equal(t, text, decoded)
}

func TestEncodeUnknownScalarEmitsQuestionMark(t *testing.T) {
	encoded, err := Encode("\U0001F600", EncodingMARC8) // emoji, not in any table
	require.NoError(t, err)
	assert.Equal(t, []byte("?"), encoded)
}

func TestUTF8PassThrough(t *testing.T) {
	text, err := Decode([]byte("Héllo"), EncodingUTF8)
	require.NoError(t, err)
	assert.Equal(t, "Héllo", text)

	encoded, err := Encode("Héllo", EncodingUTF8)
	require.NoError(t, err)
	assert.Equal(t, []byte("Héllo"), encoded)
}

func TestUTF8DecodeRejectsInvalidBytes(t *testing.T) {
	_, err := Decode([]byte{0xFF, 0xFE}, EncodingUTF8)
	assert.Error(t, err)
}

func TestDetectLikelyEncodingFlagsMismatch(t *testing.T) {
	report := DetectLikelyEncoding([]byte("Héllo Wörld"), EncodingMARC8)
	assert.True(t, report.LikelyMismatch)
	assert.Greater(t, report.UTF8LeadBytes, 0)
}

func TestDetectLikelyEncodingAcceptsConsistentMARC8(t *testing.T) {
	report := DetectLikelyEncoding([]byte("Plain ASCII text"), EncodingMARC8)
	assert.False(t, report.LikelyMismatch)
}
