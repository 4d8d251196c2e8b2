package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairFiles(t *testing.T) {
	tests := []struct {
		name         string
		file1, file2 string
		wantMGF      string
		wantList     string
		wantErr      bool
	}{
		{"mgf first", "run.mgf", "list.csv", "run.mgf", "list.csv", false},
		{"csv first", "list.csv", "run.mgf", "run.mgf", "list.csv", false},
		{"case insensitive", "RUN.MGF", "LIST.CSV", "RUN.MGF", "LIST.CSV", false},
		{"two mgf files", "a.mgf", "b.mgf", "", "", true},
		{"two csv files", "a.csv", "b.csv", "", "", true},
		{"unknown extension", "run.raw", "list.csv", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgfFile, listFile, err := pairFiles(tt.file1, tt.file2)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMGF, mgfFile)
			assert.Equal(t, tt.wantList, listFile)
		})
	}
}

func TestResultPath(t *testing.T) {
	got := resultPath(filepath.Join("data", "run01.mgf"))
	assert.Equal(t, filepath.Join("data", "result_run01.csv"), got)

	assert.Equal(t, "result_run01.csv", resultPath("run01.mgf"))
}
