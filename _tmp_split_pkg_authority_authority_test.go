package authority

import (
	"testing"

	"github.com/bgrewell/marc-kit/pkg/leader"
	"github.com/bgrewell/marc-kit/pkg/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord() *Record {
	return New(leader.New('z', 'a'))
}

func TestHeadingScansFixedTagList(t *testing.T) {
	r := newTestRecord()
	f150 := &record.Field{Tag: "150"}
	f150.AddSubfield('a', "Cataloging")
	require.NoError(t, r.AddField(f150))

	field, tag, ok := r.Heading()
	require.True(t, ok)
	assert.Equal(t, "150", tag)
	val, _ := field.Get('a')
	assert.Equal(t, "Cataloging", val)
}

func TestHeadingPrefersEarlierTagInList(t *testing.T) {
	r := newTestRecord()
	f150 := &record.Field{Tag: "150"}
	f150.AddSubfield('a', "Topical")
	f100 := &record.Field{Tag: "100"}
	f100.AddSubfield('a', "Personal")
	require.NoError(t, r.AddField(f150))
	require.NoError(t, r.AddField(f100))

	_, tag, ok := r.Heading()
	require.True(t, ok)
	assert.Equal(t, "100", tag)
}

func TestSeeFromAndSeeAlsoTracings(t *testing.T) {
	r := newTestRecord()
	require.NoError(t, r.AddField(&record.Field{Tag: "400"}))
	require.NoError(t, r.AddField(&record.Field{Tag: "450"}))
	require.NoError(t, r.AddField(&record.Field{Tag: "500"}))

	assert.Len(t, r.SeeFromTracings(), 2)
	assert.Len(t, r.SeeAlsoTracings(), 1)
}

func TestNotesExcludesSubjectCrossReferenceTags(t *testing.T) {
	r := newTestRecord()
	require.NoError(t, r.AddField(&record.Field{Tag: "680"}))
	require.NoError(t, r.AddField(&record.Field{Tag: "650"}))
	require.NoError(t, r.AddField(&record.Field{Tag: "651"}))
	require.NoError(t, r.AddField(&record.Field{Tag: "655"}))

	notes := r.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "680", notes[0].Tag)
}

func TestSourceDataFoundAndNotFound(t *testing.T) {
	r := newTestRecord()
	require.NoError(t, r.AddField(&record.Field{Tag: "670"}))
	require.NoError(t, r.AddField(&record.Field{Tag: "671"}))
	require.NoError(t, r.AddField(&record.Field{Tag: "670"}))

	assert.Len(t, r.SourceDataFound(), 2)
	assert.Len(t, r.SourceDataNotFound(), 1)
}

func TestLinkingEntries(t *testing.T) {
	r := newTestRecord()
	require.NoError(t, r.AddField(&record.Field{Tag: "700"}))
	require.NoError(t, r.AddField(&record.Field{Tag: "710"}))

	assert.Len(t, r.LinkingEntries(), 2)
}

const testField008 = "880101   a                       a      "

func TestRecordKindDecoding(t *testing.T) {
	r := newTestRecord()
	require.NoError(t, r.AddControlField("008", testField008))

	assert.Equal(t, KindPersonalName, r.RecordKind())
}

func TestRecordKindUnknownWhenControlFieldMissing(t *testing.T) {
	r := newTestRecord()
	assert.Equal(t, KindUnknown, r.RecordKind())
}

func TestRecordKindUnknownWhenTooShort(t *testing.T) {
	r := newTestRecord()
	require.NoError(t, r.AddControlField("008", "88010"))
	assert.Equal(t, KindUnknown, r.RecordKind())
}

func TestLevelOfEstablishmentDecoding(t *testing.T) {
	r := newTestRecord()
	require.NoError(t, r.AddControlField("008", testField008))

	assert.Equal(t, LevelEstablished, r.LevelOfEstablishment())
	assert.True(t, r.IsEstablished())
}

func TestIsReferenceWhenNoHeadingPresent(t *testing.T) {
	r := newTestRecord()
	require.NoError(t, r.AddField(&record.Field{Tag: "400"}))
	assert.True(t, r.IsReference())

	require.NoError(t, r.AddField(&record.Field{Tag: "150"}))
	assert.False(t, r.IsReference())
}

func TestHeadingTypeLabel(t *testing.T) {
	assert.Equal(t, "personal name", HeadingTypeLabel("100"))
	assert.Equal(t, "geographic name", HeadingTypeLabel("151"))
	assert.Equal(t, "unknown", HeadingTypeLabel("999"))
}


