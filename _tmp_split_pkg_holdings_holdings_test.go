package holdings

import (
	"testing"

	"github.com/bgrewell/marc-kit/pkg/leader"
	"github.com/bgrewell/marc-kit/pkg/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(recordType byte) *Record {
	return New(leader.New(recordType, 'a'))
}

func TestHoldingsTypeDecoding(t *testing.T) {
	assert.Equal(t, TypeSerial, newTestRecord('x').HoldingsType())
	assert.Equal(t, TypeBasic, newTestRecord('y').HoldingsType())
	assert.Equal(t, TypeMultipart, newTestRecord('v').HoldingsType())
	assert.Equal(t, TypeSinglePart, newTestRecord('u').HoldingsType())
	assert.Equal(t, TypeUnknown, newTestRecord('a').HoldingsType())
}

func TestIsSerialAndIsMultipart(t *testing.T) {
	assert.True(t, newTestRecord('x').IsSerial())
	assert.False(t, newTestRecord('x').IsMultipart())
	assert.True(t, newTestRecord('v').IsMultipart())
	assert.False(t, newTestRecord('v').IsSerial())
}

func TestLocationsReturnsEvery852(t *testing.T) {
	r := newTestRecord('x')
	require.NoError(t, r.AddField(&record.Field{Tag: "852"}))
	require.NoError(t, r.AddField(&record.Field{Tag: "852"}))
	require.NoError(t, r.AddField(&record.Field{Tag: "866"}))

	assert.Len(t, r.Locations(), 2)
}

func TestCaptionsEnumerationTextualAndItemRanges(t *testing.T) {
	r := newTestRecord('x')
	require.NoError(t, r.AddField(&record.Field{Tag: "853"}))
	require.NoError(t, r.AddField(&record.Field{Tag: "855"}))
	require.NoError(t, r.AddField(&record.Field{Tag: "863"}))
	require.NoError(t, r.AddField(&record.Field{Tag: "865"}))
	require.NoError(t, r.AddField(&record.Field{Tag: "866"}))
	require.NoError(t, r.AddField(&record.Field{Tag: "868"}))
	require.NoError(t, r.AddField(&record.Field{Tag: "876"}))
	require.NoError(t, r.AddField(&record.Field{Tag: "878"}))
	require.NoError(t, r.AddField(&record.Field{Tag: "852"}))

	assert.Len(t, r.Captions(), 2)
	assert.Len(t, r.Enumeration(), 2)
	assert.Len(t, r.TextualHoldings(), 2)
	assert.Len(t, r.ItemInformation(), 2)
}

const testField008 = "      1p        1                       "

func TestAcquisitionStatusMethodAndCompleteness(t *testing.T) {
	r := newTestRecord('x')
	require.NoError(t, r.AddControlField("008", testField008))

	assert.Equal(t, AcqStatusCurrentlyReceived, r.AcquisitionStatus())
	assert.Equal(t, MethodPurchase, r.MethodOfAcquisition())
	assert.Equal(t, CompletenessComplete, r.Completeness())
}

func TestAcquisitionFieldsUnknownWhenControlFieldMissing(t *testing.T) {
	r := newTestRecord('x')
	assert.Equal(t, AcqStatusUnknown, r.AcquisitionStatus())
	assert.Equal(t, MethodUnknown, r.MethodOfAcquisition())
	assert.Equal(t, CompletenessUnknown, r.Completeness())
}

func TestAcquisitionFieldsUnknownWhenTooShort(t *testing.T) {
	r := newTestRecord('x')
	require.NoError(t, r.AddControlField("008", "123"))
	assert.Equal(t, AcqStatusUnknown, r.AcquisitionStatus())
}


