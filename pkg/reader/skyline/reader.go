// Package skyline loads reference precursor ions from Skyline
// transition-list CSV exports.
package skyline

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ChrisMcGann/TMTQuant/pkg/core"
)

// ReadIons parses a Skyline CSV export: one header row, then one ion per
// row with m/z in the first column and charge in the second. Any further
// columns are ignored. A row whose m/z or charge does not parse is an
// error.
func ReadIons(r io.Reader) ([]core.Ion, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	// Header row.
	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty reference list")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var ions []core.Ion
	row := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row+1, err)
		}
		row++

		if len(record) < 2 {
			return nil, fmt.Errorf("row %d: expected at least 2 fields (m/z, charge), got %d", row, len(record))
		}

		mz, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid m/z value %q: %w", row, record[0], err)
		}

		charge, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid charge value %q: %w", row, record[1], err)
		}

		ions = append(ions, core.Ion{MZ: mz, Charge: charge})
	}

	return ions, nil
}

// LoadIons reads a reference ion list from a file path.
func LoadIons(path string) ([]core.Ion, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference list: %w", err)
	}
	defer f.Close()

	ions, err := ReadIons(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ions, nil
}
