// Package cmd provides CLI command implementations
package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// Flags for search command
	ms1PPM float64
	ms2PPM float64
)

var rootCmd = &cobra.Command{
	Use:   "tmtquant",
	Short: "TMTQuant - TMT reporter ion extraction tool",
	Long: `TMTQuant matches MGF spectra against a Skyline precursor list and
extracts TMT 10-plex reporter ion intensities from each matched spectrum.

Precursors are matched by m/z (within an MS1 ppm tolerance) and charge;
reporter peaks are picked within an MS2 ppm tolerance. Results are written
as one CSV row per matched spectrum.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(summarizeCmd)

	searchCmd.Flags().Float64Var(&ms1PPM, "ms1-ppm", 20, "Precursor match tolerance in ppm")
	searchCmd.Flags().Float64Var(&ms2PPM, "ms2-ppm", 20, "Reporter peak tolerance in ppm")
}

// pairFiles splits the two input paths into the MGF file and the Skyline
// CSV file, in either argument order. Any other extension pair is a usage
// error, raised before anything is opened.
func pairFiles(file1, file2 string) (mgfFile, listFile string, err error) {
	ext1 := strings.ToLower(filepath.Ext(file1))
	ext2 := strings.ToLower(filepath.Ext(file2))

	switch {
	case ext1 == ".mgf" && ext2 == ".csv":
		return file1, file2, nil
	case ext1 == ".csv" && ext2 == ".mgf":
		return file2, file1, nil
	default:
		return "", "", fmt.Errorf("expected one .mgf and one .csv file, got '%s' and '%s'", file1, file2)
	}
}

// resultPath places the output next to the MGF file, prefixed with
// "result_" and with a .csv extension.
func resultPath(mgfFile string) string {
	stem := strings.TrimSuffix(filepath.Base(mgfFile), filepath.Ext(mgfFile))
	return filepath.Join(filepath.Dir(mgfFile), "result_"+stem+".csv")
}
