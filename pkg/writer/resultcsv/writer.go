// Package resultcsv writes reporter search results as CSV rows.
package resultcsv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/ChrisMcGann/TMTQuant/pkg/core"
)

// Writer writes search records to a CSV file. The header row is
// "scan,precursor" followed by one column per reporter m/z, named by the
// literal m/z value.
type Writer struct {
	file      *os.File
	w         *csv.Writer
	reporters []float64
}

// NewWriter creates the output file and writes the header row.
func NewWriter(path string, reporters []float64) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	w := &Writer{
		file:      f,
		w:         csv.NewWriter(f),
		reporters: reporters,
	}

	header := make([]string, 0, len(reporters)+2)
	header = append(header, "scan", "precursor")
	for _, mz := range reporters {
		header = append(header, formatMZ(mz))
	}
	if err := w.w.Write(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	return w, nil
}

// WriteRecord writes one result row. Reporters absent from the record's
// map are written as 0.
func (w *Writer) WriteRecord(rec core.SearchRecord) error {
	row := make([]string, 0, len(w.reporters)+2)
	row = append(row, strconv.Itoa(rec.Scan), formatMZ(rec.PrecursorMZ))
	for _, mz := range w.reporters {
		row = append(row, formatMZ(rec.Reporters[mz]))
	}

	if err := w.w.Write(row); err != nil {
		return fmt.Errorf("failed to write record for scan %d: %w", rec.Scan, err)
	}
	return nil
}

// Flush writes buffered rows through to the file and reports any write
// error. Call before Close to verify the output landed.
func (w *Writer) Flush() error {
	if err := w.flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// Close flushes buffered rows and closes the file.
func (w *Writer) Close() error {
	if err := w.flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return w.file.Close()
}

func (w *Writer) flush() error {
	w.w.Flush()
	return w.w.Error()
}

// formatMZ renders an m/z or intensity value with the shortest
// representation that round-trips, so 126.127726 stays 126.127726 and 0
// stays 0.
func formatMZ(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
