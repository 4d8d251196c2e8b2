package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ChrisMcGann/TMTQuant/pkg/reader/mgf"
	"github.com/ChrisMcGann/TMTQuant/pkg/reader/skyline"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Validate input file format and contents",
	Long: `Validate that an MGF spectrum file or Skyline precursor CSV is properly
formatted and contains valid data. Stops at the first invalid entry.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mgf":
		return validateMGF(path)
	case ".csv":
		return validateCSV(path)
	default:
		return fmt.Errorf("unsupported file type '%s', expected .mgf or .csv", filepath.Ext(path))
	}
}

func validateMGF(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	reader := mgf.NewReader(f)
	count := 0
	for reader.Next() {
		spec := reader.Spectrum()
		if err := spec.Validate(); err != nil {
			return fmt.Errorf("invalid spectrum %s: %w", spec.Name(), err)
		}
		count++
	}
	if err := reader.Err(); err != nil {
		return fmt.Errorf("error reading MGF file: %w", err)
	}

	fmt.Printf("OK: %d valid spectra in %s\n", count, path)
	return nil
}

func validateCSV(path string) error {
	ions, err := skyline.LoadIons(path)
	if err != nil {
		return err
	}

	for i, ion := range ions {
		if ion.MZ <= 0 {
			return fmt.Errorf("ion %d: m/z must be positive, got %g", i+1, ion.MZ)
		}
		if ion.Charge <= 0 {
			return fmt.Errorf("ion %d: charge must be positive, got %d", i+1, ion.Charge)
		}
	}

	fmt.Printf("OK: %d valid reference ions in %s\n", len(ions), path)
	return nil
}
