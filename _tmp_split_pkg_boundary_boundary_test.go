package boundary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanEmptyBuffer(t *testing.T) {
	_, err := New().Scan(nil)
	assert.ErrorIs(t, err, ErrEmptyBuffer)
}

func TestScanNoTerminators(t *testing.T) {
	_, err := New().Scan([]byte("no terminators here"))
	assert.ErrorIs(t, err, ErrNoCompleteRecords)
}

func TestScanConcatenatedRecords(t *testing.T) {
	a := []byte("AAA")
	b := []byte("BB")
	c := []byte("C")
	buf := append(append(append(append(append(
		append([]byte{}, a...), 0x1D), b...), 0x1D), c...), 0x1D)

	spans, err := New().Scan(buf)
	require.NoError(t, err)
	require.Len(t, spans, 3)
	assert.Equal(t, Span{Offset: 0, Length: len(a) + 1}, spans[0])
	assert.Equal(t, Span{Offset: len(a) + 1, Length: len(b) + 1}, spans[1])
	assert.Equal(t, Span{Offset: len(a) + len(b) + 2, Length: len(c) + 1}, spans[2])
}

func TestScanTrailingPartialRecordDiscarded(t *testing.T) {
	buf := []byte("AAA\x1DBBB")
	spans, err := New().Scan(buf)
	require.NoError(t, err)
	require.Len(t, spans, 1)
	assert.Equal(t, Span{Offset: 0, Length: 4}, spans[0])
}

func TestScanLimited(t *testing.T) {
	buf := []byte("A\x1DB\x1DC\x1D")
	spans, err := New().ScanLimited(buf, 2)
	require.NoError(t, err)
	assert.Len(t, spans, 2)
}

func TestScannerReuseAcrossCalls(t *testing.T) {
	s := New()
	_, err := s.Scan([]byte("A\x1D"))
	require.NoError(t, err)
	firstCap := s.Capacity()
	assert.GreaterOrEqual(t, firstCap, 1)

	spans, err := s.Scan([]byte("B\x1DC\x1D"))
	require.NoError(t, err)
	assert.Len(t, spans, 2)
}

func TestCountRecords(t *testing.T) {
	assert.Equal(t, 3, CountRecords([]byte("A\x1DB\x1DC\x1D")))
	assert.Equal(t, 0, CountRecords([]byte("none")))
}


