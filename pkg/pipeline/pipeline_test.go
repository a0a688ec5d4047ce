package pipeline

import (
	"bytes"
	"io"
	"testing"

	"github.com/bgrewell/marc-kit/pkg/leader"
	"github.com/bgrewell/marc-kit/pkg/marcio"
	"github.com/bgrewell/marc-kit/pkg/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecordBytes(t *testing.T, title string) []byte {
	t.Helper()
	rec := record.New(leader.New('a', 'a'))
	require.NoError(t, rec.AddControlField("001", "1"))
	f := &record.Field{Tag: "245", Indicator1: '0', Indicator2: '0'}
	f.AddSubfield('a', title)
	require.NoError(t, rec.AddField(f))

	var buf bytes.Buffer
	require.NoError(t, marcio.NewWriter(&buf).WriteRecord(rec))
	return buf.Bytes()
}

func TestPipelineYieldsAllRecords(t *testing.T) {
	var source bytes.Buffer
	titles := []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon"}
	for _, title := range titles {
		source.Write(sampleRecordBytes(t, title))
	}

	p := New(bytes.NewReader(source.Bytes()), WithWorkers(2), WithOrdered(true))
	defer p.Close()

	seen := map[string]bool{}
	for {
		rec, err := p.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		title, ok := rec.Title()
		require.True(t, ok)
		seen[title] = true
	}

	for _, title := range titles {
		assert.True(t, seen[title], "missing title %s", title)
	}
}

func TestPipelineSmallBufferForcesMultipleChunks(t *testing.T) {
	var source bytes.Buffer
	for i := 0; i < 10; i++ {
		source.Write(sampleRecordBytes(t, "Title"))
	}

	p := New(bytes.NewReader(source.Bytes()), WithBufferSize(32), WithWorkers(2))
	defer p.Close()

	count := 0
	for {
		_, err := p.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		count++
	}
	assert.Equal(t, 10, count)
}

func TestPipelineResultsChannel(t *testing.T) {
	var source bytes.Buffer
	source.Write(sampleRecordBytes(t, "Solo"))

	p := New(bytes.NewReader(source.Bytes()))
	defer p.Close()

	var got []Result
	for res := range p.Results() {
		got = append(got, res)
	}
	require.Len(t, got, 1)
	require.NoError(t, got[0].Err)
	title, ok := got[0].Record.Title()
	require.True(t, ok)
	assert.Equal(t, "Solo", title)
}
