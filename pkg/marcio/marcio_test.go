package marcio

import (
	"bytes"
	"io"
	"testing"

	"github.com/bgrewell/marc-kit/pkg/leader"
	"github.com/bgrewell/marc-kit/pkg/record"
	"github.com/bgrewell/marc-kit/pkg/recovery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSampleRecord() *record.Record {
	rec := record.New(leader.New('a', 'a'))
	_ = rec.AddControlField("001", "12345")
	_ = rec.AddControlField("008", "880101s1988    nyu           000 0 eng  ")

	title := &record.Field{Tag: "245", Indicator1: '1', Indicator2: '0'}
	title.AddSubfield('a', "The Go Programming Language")
	title.AddSubfield('c', "Donovan & Kernighan.")
	_ = rec.AddField(title)

	subject := &record.Field{Tag: "650", Indicator1: ' ', Indicator2: '0'}
	subject.AddSubfield('a', "Go (Computer program language)")
	_ = rec.AddField(subject)

	return rec
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	rec := buildSampleRecord()

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteRecord(rec))

	r := NewReader(&buf)
	got, err := r.ReadRecord()
	require.NoError(t, err)

	title, ok := got.Title()
	require.True(t, ok)
	assert.Equal(t, "The Go Programming Language", title)

	cf, ok := got.GetControlField("001")
	require.True(t, ok)
	assert.Equal(t, "12345", cf)

	subjects := got.FieldsByTag("650")
	require.Len(t, subjects, 1)
	val, _ := subjects[0].Get('a')
	assert.Equal(t, "Go (Computer program language)", val)

	_, err = r.ReadRecord()
	assert.Equal(t, io.EOF, err)
}

func TestWriteThenReadTwoRecords(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteRecord(buildSampleRecord()))
	require.NoError(t, w.WriteRecord(buildSampleRecord()))

	r := NewReader(&buf)
	first, err := r.ReadRecord()
	require.NoError(t, err)
	second, err := r.ReadRecord()
	require.NoError(t, err)
	assert.NotNil(t, first)
	assert.NotNil(t, second)

	_, err = r.ReadRecord()
	assert.Equal(t, io.EOF, err)
}

func TestReaderFlavorMismatchErrors(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteRecord(buildSampleRecord()))

	r := NewReader(&buf, WithFlavor(FlavorAuthority))
	_, err := r.ReadRecord()
	assert.Error(t, err)
}

func TestReaderLenientRecoversMalformedDirectoryEntry(t *testing.T) {
	rec := buildSampleRecord()
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).WriteRecord(rec))
	raw := buf.Bytes()

	// Corrupt the first directory entry's length field with non-digits so
	// strict parsing fails but lenient recovery can skip it.
	corrupted := append([]byte(nil), raw...)
	corrupted[27] = 'X'

	r := NewReader(bytes.NewReader(corrupted), WithRecoveryMode(recovery.Lenient))
	got, err := r.ReadRecord()
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestReaderStrictFailsOnMalformedDirectoryEntry(t *testing.T) {
	rec := buildSampleRecord()
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).WriteRecord(rec))
	raw := buf.Bytes()

	corrupted := append([]byte(nil), raw...)
	corrupted[27] = 'X'

	r := NewReader(bytes.NewReader(corrupted))
	_, err := r.ReadRecord()
	assert.Error(t, err)
}
