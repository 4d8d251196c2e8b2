package core

import "fmt"

// ConfigError represents an invalid searcher configuration, detected at
// construction before any spectrum is processed.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error in %s: %s", e.Field, e.Message)
}

// SpectrumSource is a pull-based stream of spectra, the shape exposed by
// the format readers: Next advances, Spectrum returns the current record,
// Err reports the first read error after Next returns false.
type SpectrumSource interface {
	Next() bool
	Spectrum() *Spectrum
	Err() error
}

// SearchRecord is one extraction result: the scan, the matched reference
// precursor m/z (the canonical value from the ion list, not the observed
// one), and the intensity observed at each reporter m/z. Reporters nowhere
// near a peak map to 0.
type SearchRecord struct {
	Scan        int
	PrecursorMZ float64
	Reporters   map[float64]float64
}

// ReporterSearcher matches spectra against a reference ion list and
// extracts TMT reporter intensities from the matches. It is read-only once
// constructed.
type ReporterSearcher struct {
	list      *IonList
	ms1       Tolerance
	ms2       Tolerance
	reporters []float64
}

// NewReporterSearcher validates the tolerances against the reporter
// spacing and returns a searcher. An MS2 tolerance whose window at the
// heaviest reporter exceeds the minimum gap between reporters would make
// two channels indistinguishable, so it is rejected here rather than
// producing ambiguous intensities later.
func NewReporterSearcher(list *IonList, ms1, ms2 Tolerance) (*ReporterSearcher, error) {
	maxReporter := TMT10Reporters[len(TMT10Reporters)-1]
	if w := ms2.Window(maxReporter); w > minSpacing(TMT10Reporters) {
		return nil, &ConfigError{
			Field:   "ms2 tolerance",
			Message: fmt.Sprintf("window %g at m/z %g exceeds the minimum reporter spacing %g",
				w, maxReporter, minSpacing(TMT10Reporters)),
		}
	}

	return &ReporterSearcher{
		list:      list,
		ms1:       ms1,
		ms2:       ms2,
		reporters: TMT10Reporters,
	}, nil
}

// Search matches a single spectrum's precursor against the reference list
// and, on a hit, extracts every reporter intensity. The second return
// value is false when the precursor matches no reference ion; the spectrum
// is simply skipped.
func (s *ReporterSearcher) Search(spec *Spectrum) (SearchRecord, bool) {
	ion, ok := s.list.Find(spec.PrecursorMZ, s.ms1, spec.PrecursorCharge)
	if !ok {
		return SearchRecord{}, false
	}

	reporters := make(map[float64]float64, len(s.reporters))
	for _, mz := range s.reporters {
		reporters[mz] = spec.IntensityNear(mz, s.ms2)
	}

	return SearchRecord{
		Scan:        spec.Scan,
		PrecursorMZ: ion.MZ,
		Reporters:   reporters,
	}, true
}

// Run returns a lazy stream of search records over the source. Spectra are
// pulled one at a time; unmatched spectra produce no record. The stream
// surfaces the source's read error, if any, once exhausted.
func (s *ReporterSearcher) Run(src SpectrumSource) *ResultStream {
	return &ResultStream{searcher: s, src: src}
}

// ResultStream is a single-pass, pull-based sequence of SearchRecord.
type ResultStream struct {
	searcher *ReporterSearcher
	src      SpectrumSource
	current  SearchRecord
}

// Next advances to the next matched spectrum. It returns false when the
// source is exhausted or fails; check Err afterwards.
func (r *ResultStream) Next() bool {
	for r.src.Next() {
		if rec, ok := r.searcher.Search(r.src.Spectrum()); ok {
			r.current = rec
			return true
		}
	}
	return false
}

// Record returns the current search record.
func (r *ResultStream) Record() SearchRecord {
	return r.current
}

// Err returns any error encountered by the underlying spectrum source.
func (r *ResultStream) Err() error {
	return r.src.Err()
}
