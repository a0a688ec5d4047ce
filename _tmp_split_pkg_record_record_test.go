package record

import (
	"testing"

	"github.com/bgrewell/marc-kit/pkg/leader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord() *Record {
	return New(leader.New('a', 'a'))
}

func TestControlFieldUpsertPreservesOrder(t *testing.T) {
	r := newTestRecord()
	require.NoError(t, r.AddControlField("001", "TST"))
	require.NoError(t, r.AddControlField("003", "DLC"))
	require.NoError(t, r.AddControlField("001", "TST2"))

	fields := r.ControlFields()
	require.Len(t, fields, 2)
	assert.Equal(t, "001", fields[0].Tag)
	assert.Equal(t, "TST2", fields[0].Value)
	assert.Equal(t, "003", fields[1].Tag)
}

func TestAddControlFieldRejectsDataTag(t *testing.T) {
	r := newTestRecord()
	assert.Error(t, r.AddControlField("245", "nope"))
}

func TestDataFieldInsertionOrderAndRepeatedTags(t *testing.T) {
	r := newTestRecord()
	f1 := &Field{Tag: "650", Indicator1: ' ', Indicator2: '0'}
	f1.AddSubfield('a', "History")
	f2 := &Field{Tag: "700", Indicator1: '1', Indicator2: ' '}
	f2.AddSubfield('a', "Jones")
	f3 := &Field{Tag: "650", Indicator1: ' ', Indicator2: '0'}
	f3.AddSubfield('a', "Literature")

	require.NoError(t, r.AddField(f1))
	require.NoError(t, r.AddField(f2))
	require.NoError(t, r.AddField(f3))

	all := r.Fields()
	require.Len(t, all, 3)
	assert.Equal(t, "650", all[0].Tag)
	assert.Equal(t, "700", all[1].Tag)
	assert.Equal(t, "650", all[2].Tag)

	byTag := r.FieldsByTag("650")
	require.Len(t, byTag, 2)
	assert.Equal(t, "History", byTag[0].MustGet('a'))
	assert.Equal(t, "Literature", byTag[1].MustGet('a'))
}

func TestMustFieldPanicsOnMiss(t *testing.T) {
	r := newTestRecord()
	assert.Panics(t, func() { r.MustField("245") })
}

func TestRemoveFieldsByTag(t *testing.T) {
	r := newTestRecord()
	require.NoError(t, r.AddField(&Field{Tag: "650"}))
	require.NoError(t, r.AddField(&Field{Tag: "700"}))

	removed := r.RemoveFieldsByTag("650")
	require.Len(t, removed, 1)
	assert.Len(t, r.Fields(), 1)
	assert.Equal(t, "700", r.Fields()[0].Tag)
}

func TestUpdateAllSubfields(t *testing.T) {
	r := newTestRecord()
	f1 := &Field{Tag: "650"}
	f1.AddSubfield('a', "old")
	f1.AddSubfield('x', "History")
	f2 := &Field{Tag: "651"}
	f2.AddSubfield('a', "old")

	require.NoError(t, r.AddField(f1))
	require.NoError(t, r.AddField(f2))

	count := r.UpdateAllSubfields('a', "new")
	assert.Equal(t, 2, count)
	assert.Equal(t, "new", f1.MustGet('a'))
	assert.Equal(t, "new", f2.MustGet('a'))
}

func TestSubfieldVecSpillsPastFour(t *testing.T) {
	f := &Field{Tag: "650"}
	for i := 0; i < 6; i++ {
		f.AddSubfield('a', string(rune('a'+i)))
	}
	assert.Equal(t, 6, f.Subfields.Len())
	all := f.Subfields.All()
	require.Len(t, all, 6)
	assert.Equal(t, "a", all[0].Value)
	assert.Equal(t, "f", all[5].Value)
}

func TestFieldFormattedJoinsSubjectSubdivisions(t *testing.T) {
	f := &Field{Tag: "650"}
	f.AddSubfield('a', "History")
	f.AddSubfield('6', "880-01")
	f.AddSubfield('x', "War")

	assert.Equal(t, "History -- War", f.Formatted())
}

func TestBibliographicAccessors(t *testing.T) {
	r := newTestRecord()
	require.NoError(t, r.AddControlField("008", "880101s1988    nyu           000 0 eng  "))

	title := &Field{Tag: "245", Indicator1: '1', Indicator2: '0'}
	title.AddSubfield('a', "X")
	require.NoError(t, r.AddField(title))

	pub := &Field{Tag: "260"}
	pub.AddSubfield('a', "New York")
	pub.AddSubfield('b', "Acme")
	pub.AddSubfield('c', "1988")
	require.NoError(t, r.AddField(pub))

	name, ok := r.Title()
	require.True(t, ok)
	assert.Equal(t, "X", name)

	assert.Equal(t, "New York : Acme, 1988.", r.PublicationStatement())

	year, ok := r.PublicationYear()
	require.True(t, ok)
	assert.Equal(t, "1988", year)
}

func TestPublicationYearFallsBackTo008(t *testing.T) {
	r := newTestRecord()
	require.NoError(t, r.AddControlField("008", "880101s1975    nyu           000 0 eng  "))

	year, ok := r.PublicationYear()
	require.True(t, ok)
	assert.Equal(t, "1975", year)
}

func TestISBNValidation(t *testing.T) {
	assert.True(t, ValidateISBN("0-306-40615-2"))
	assert.False(t, ValidateISBN("0-306-40615-3"))
	assert.True(t, ValidateISBN("978-0-306-40615-7"))
	assert.False(t, ValidateISBN("not an isbn"))
}


