// Package mgf provides a streaming reader for MGF (Mascot Generic Format)
// spectrum files.
package mgf

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/ChrisMcGann/TMTQuant/pkg/core"
)

var scanRE = regexp.MustCompile(`scan=([0-9]+)`)

// Reader provides streaming access to MGF files, one spectrum block at a
// time.
type Reader struct {
	scanner     *bufio.Scanner
	lineNum     int
	currentSpec *core.Spectrum
	err         error
}

// NewReader creates a new MGF reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(r),
	}
}

// Next advances to the next spectrum. Returns false when no more spectra or error.
func (r *Reader) Next() bool {
	r.currentSpec = nil

	spec, err := r.readSpectrum()
	if err != nil {
		if err != io.EOF {
			r.err = err
		}
		return false
	}

	r.currentSpec = spec
	return true
}

// Spectrum returns the current spectrum.
func (r *Reader) Spectrum() *core.Spectrum {
	return r.currentSpec
}

// Err returns any error encountered during reading.
func (r *Reader) Err() error {
	return r.err
}

// readSpectrum reads a single BEGIN IONS .. END IONS block.
func (r *Reader) readSpectrum() (*core.Spectrum, error) {
	// Skip to the opening of the next block. Anything between blocks
	// (blank lines, comments) is ignored.
	inBlock := false
	for r.scanner.Scan() {
		r.lineNum++
		if strings.TrimSpace(r.scanner.Text()) == "BEGIN IONS" {
			inBlock = true
			break
		}
	}
	if !inBlock {
		if err := r.scanner.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}

	blockLine := r.lineNum
	spec := &core.Spectrum{Scan: -1}
	haveMass := false

	for r.scanner.Scan() {
		r.lineNum++
		line := strings.TrimSpace(r.scanner.Text())

		if line == "" {
			continue
		}
		if line == "END IONS" {
			if spec.Scan < 0 {
				return nil, fmt.Errorf("line %d: block has no TITLE with a scan number", blockLine)
			}
			if !haveMass {
				return nil, fmt.Errorf("line %d: block has no PEPMASS", blockLine)
			}
			if spec.PrecursorCharge == 0 {
				return nil, fmt.Errorf("line %d: block has no CHARGE", blockLine)
			}
			if !spec.FragmentsSorted() {
				spec.SortFragments()
			}
			return spec, nil
		}

		if key, value, ok := strings.Cut(line, "="); ok && !strings.ContainsAny(key, " \t") {
			if err := r.parseParam(spec, key, value, &haveMass); err != nil {
				return nil, fmt.Errorf("line %d: %w", r.lineNum, err)
			}
			continue
		}

		if err := r.parsePeak(spec, line); err != nil {
			return nil, fmt.Errorf("line %d: %w", r.lineNum, err)
		}
	}

	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("line %d: unterminated spectrum block (missing END IONS)", blockLine)
}

// parseParam handles a KEY=VALUE header line. Unknown keys are skipped.
func (r *Reader) parseParam(spec *core.Spectrum, key, value string, haveMass *bool) error {
	switch key {
	case "TITLE":
		m := scanRE.FindStringSubmatch(value)
		if m == nil {
			return fmt.Errorf("no scan number in title %q", value)
		}
		scan, err := strconv.Atoi(m[1])
		if err != nil {
			return fmt.Errorf("invalid scan number in title %q: %w", value, err)
		}
		spec.Scan = scan

	case "PEPMASS":
		// First field is the precursor m/z; an optional second field
		// carries the precursor intensity, which we ignore.
		fields := strings.Fields(value)
		if len(fields) == 0 {
			return fmt.Errorf("empty PEPMASS")
		}
		mz, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return fmt.Errorf("invalid PEPMASS value %q: %w", fields[0], err)
		}
		spec.PrecursorMZ = mz
		*haveMass = true

	case "CHARGE":
		charge, err := parseCharge(value)
		if err != nil {
			return err
		}
		spec.PrecursorCharge = charge
	}

	return nil
}

// parseCharge parses MGF charge notation: "2+", "2-", or a bare integer.
func parseCharge(s string) (int, error) {
	s = strings.TrimSpace(s)
	sign := 1
	if strings.HasSuffix(s, "+") {
		s = strings.TrimSuffix(s, "+")
	} else if strings.HasSuffix(s, "-") {
		s = strings.TrimSuffix(s, "-")
		sign = -1
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid CHARGE value %q: %w", s, err)
	}
	return sign * n, nil
}

// parsePeak parses a fragment peak line (format: "mz intensity [extras]").
func (r *Reader) parsePeak(spec *core.Spectrum, line string) error {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return fmt.Errorf("invalid peak format, expected at least 2 fields")
	}

	mz, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return fmt.Errorf("invalid m/z value: %w", err)
	}

	intensity, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return fmt.Errorf("invalid intensity value: %w", err)
	}

	spec.FragmentMZ = append(spec.FragmentMZ, mz)
	spec.FragmentIntensity = append(spec.FragmentIntensity, intensity)
	return nil
}
