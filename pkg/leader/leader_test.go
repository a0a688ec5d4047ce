package leader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBytesRoundTrip(t *testing.T) {
	raw := []byte("01234567892201234567DUMM")
	l, err := FromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, l.AsBytes())
}

func TestFromBytesWrongLength(t *testing.T) {
	_, err := FromBytes([]byte("too short"))
	assert.Error(t, err)
}

func TestFromBytesBadIndicatorCount(t *testing.T) {
	raw := []byte("00050nam a1200025 i 4500")
	_, err := FromBytes(raw)
	assert.Error(t, err)
}

func TestValidateForReadingRejectsShortLength(t *testing.T) {
	l, err := FromBytes([]byte("00010nam a2200025 i 4500"))
	require.NoError(t, err)
	assert.Error(t, l.ValidateForReading())
}

func TestValidateForReadingRejectsShortBaseAddress(t *testing.T) {
	l, err := FromBytes([]byte("00050nam a2200010 i 4500"))
	require.NoError(t, err)
	assert.Error(t, l.ValidateForReading())
}

func TestValidateForReadingAcceptsMinimum(t *testing.T) {
	l, err := FromBytes([]byte("00024nam a2200024 i 4500"))
	require.NoError(t, err)
	assert.NoError(t, l.ValidateForReading())
}

func TestRecordTypeClassification(t *testing.T) {
	l := New('z', 'a')
	assert.True(t, l.IsAuthority())
	assert.False(t, l.IsHoldings())

	l = New('x', ' ')
	assert.True(t, l.IsHoldings())
	assert.True(t, l.IsMARC8())

	l = New('a', 'a')
	assert.False(t, l.IsAuthority())
	assert.False(t, l.IsHoldings())
	assert.False(t, l.IsMARC8())
}

func TestDescribeValue(t *testing.T) {
	label, ok := DescribeValue(9, 'a')
	require.True(t, ok)
	assert.Equal(t, "UTF-8", label)

	_, ok = DescribeValue(9, 'Q')
	assert.False(t, ok)
}
