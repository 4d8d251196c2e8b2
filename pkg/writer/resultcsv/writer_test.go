package resultcsv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChrisMcGann/TMTQuant/pkg/core"
)

func TestWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result_run01.csv")

	w, err := NewWriter(path, core.TMT10Reporters)
	require.NoError(t, err)

	require.NoError(t, w.WriteRecord(core.SearchRecord{
		Scan:        101,
		PrecursorMZ: 1000,
		Reporters: map[float64]float64{
			126.127726: 50000,
			128.128116: 70000,
		},
	}))
	require.NoError(t, w.WriteRecord(core.SearchRecord{
		Scan:        102,
		PrecursorMZ: 820.41,
	}))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t,
		"scan,precursor,126.127726,127.124761,127.131081,128.128116,128.134436,129.131471,129.13779,130.134825,130.141145,131.13818",
		lines[0])
	assert.Equal(t, "101,1000,50000,0,0,70000,0,0,0,0,0,0", lines[1])

	// A record with no reporter map at all writes zeros throughout.
	assert.Equal(t, "102,820.41,0,0,0,0,0,0,0,0,0,0", lines[2])
}

func TestNewWriterBadPath(t *testing.T) {
	_, err := NewWriter(filepath.Join(t.TempDir(), "missing", "out.csv"), core.TMT10Reporters)
	assert.Error(t, err)
}
