package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ChrisMcGann/TMTQuant/pkg/core"
	"github.com/ChrisMcGann/TMTQuant/pkg/reader/mgf"
	"github.com/ChrisMcGann/TMTQuant/pkg/reader/skyline"
	"github.com/ChrisMcGann/TMTQuant/pkg/writer/resultcsv"
)

var searchCmd = &cobra.Command{
	Use:   "search FILE1 FILE2",
	Short: "Extract reporter intensities for spectra matching a precursor list",
	Long: `Search an MGF file against a Skyline precursor list and extract TMT
reporter ion intensities from every matched spectrum.

The two arguments are one .mgf file and one .csv file, in either order.
The result CSV is written next to the MGF file with a "result_" prefix.

Examples:
  # Default 20 ppm tolerances
  tmtquant search run01.mgf precursors.csv

  # Tighter precursor matching
  tmtquant search precursors.csv run01.mgf --ms1-ppm 10`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	mgfFile, listFile, err := pairFiles(args[0], args[1])
	if err != nil {
		return err
	}
	outFile := resultPath(mgfFile)

	ions, err := skyline.LoadIons(listFile)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d reference ions from %s\n", len(ions), listFile)

	searcher, err := core.NewReporterSearcher(core.NewIonList(ions), core.PPM(ms1PPM), core.PPM(ms2PPM))
	if err != nil {
		return err
	}

	inFile, err := os.Open(mgfFile)
	if err != nil {
		return fmt.Errorf("failed to open MGF file: %w", err)
	}
	defer inFile.Close()

	writer, err := resultcsv.NewWriter(outFile, core.TMT10Reporters)
	if err != nil {
		return err
	}
	defer writer.Close()

	reader := mgf.NewReader(inFile)
	stream := searcher.Run(reader)

	matched := 0
	for stream.Next() {
		if err := writer.WriteRecord(stream.Record()); err != nil {
			return err
		}
		matched++
		if matched%1000 == 0 {
			fmt.Printf("Matched %d spectra...\n", matched)
		}
	}
	if err := stream.Err(); err != nil {
		return fmt.Errorf("error reading MGF file: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nSearch complete!\n")
	fmt.Printf("Matched: %d spectra\n", matched)
	fmt.Printf("Result saved in %s\n", outFile)

	return nil
}
