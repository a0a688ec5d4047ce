package marcio

import (
	"os"
	"path/filepath"
	"testing"

	fixtures "github.com/bgrewell/marc-kit/internal/testing"
	"github.com/stretchr/testify/require"
)

func TestWriterProducesExpectedCorpusRecordCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.mrc")

	f, err := os.Create(path)
	require.NoError(t, err)

	w := NewWriter(f)
	require.NoError(t, w.WriteRecord(fixtures.NewBibliographicRecord("The Go Programming Language", "Donovan, Alan")))
	require.NoError(t, w.WriteRecord(fixtures.NewAuthorityRecord("100", "Donovan, Alan")))
	require.NoError(t, w.WriteRecord(fixtures.NewHoldingsRecord("Main Library")))
	require.NoError(t, f.Close())

	require.NoError(t, fixtures.RequireRecordCount(path, 3))
}


