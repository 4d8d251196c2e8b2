package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ChrisMcGann/TMTQuant/pkg/core"
	"github.com/ChrisMcGann/TMTQuant/pkg/reader/mgf"
	"github.com/ChrisMcGann/TMTQuant/pkg/reader/skyline"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize FILE",
	Short: "Summarize spectrum file or precursor list contents",
	Long: `Print summary statistics for an MGF spectrum file (spectrum count,
precursor m/z range, charge distribution) or a Skyline precursor CSV
(ion count, m/z range, charge distribution).`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func runSummarize(cmd *cobra.Command, args []string) error {
	path := args[0]
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mgf":
		return summarizeMGF(path)
	case ".csv":
		return summarizeCSV(path)
	default:
		return fmt.Errorf("unsupported file type '%s', expected .mgf or .csv", filepath.Ext(path))
	}
}

func summarizeMGF(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	reader := mgf.NewReader(f)
	count := 0
	peaks := 0
	minMZ, maxMZ := 0.0, 0.0
	charges := make(map[int]int)

	for reader.Next() {
		spec := reader.Spectrum()
		if count == 0 || spec.PrecursorMZ < minMZ {
			minMZ = spec.PrecursorMZ
		}
		if count == 0 || spec.PrecursorMZ > maxMZ {
			maxMZ = spec.PrecursorMZ
		}
		charges[spec.PrecursorCharge]++
		peaks += len(spec.FragmentMZ)
		count++
	}
	if err := reader.Err(); err != nil {
		return fmt.Errorf("error reading MGF file: %w", err)
	}

	fmt.Printf("File: %s\n", path)
	fmt.Printf("Spectra: %d\n", count)
	fmt.Printf("Fragment peaks: %d\n", peaks)
	if count > 0 {
		fmt.Printf("Precursor m/z range: %.4f - %.4f\n", minMZ, maxMZ)
		printChargeHistogram(charges)
	}
	return nil
}

func summarizeCSV(path string) error {
	ions, err := skyline.LoadIons(path)
	if err != nil {
		return err
	}

	list := core.NewIonList(ions)
	charges := make(map[int]int)
	for _, ion := range ions {
		charges[ion.Charge]++
	}

	fmt.Printf("File: %s\n", path)
	fmt.Printf("Reference ions: %d\n", list.Len())
	if lo, hi, ok := list.MZRange(); ok {
		fmt.Printf("m/z range: %.4f - %.4f\n", lo, hi)
		printChargeHistogram(charges)
	}
	return nil
}

func printChargeHistogram(charges map[int]int) {
	keys := make([]int, 0, len(charges))
	for z := range charges {
		keys = append(keys, z)
	}
	sort.Ints(keys)

	fmt.Printf("Charge states:\n")
	for _, z := range keys {
		fmt.Printf("  %d+: %d\n", z, charges[z])
	}
}
