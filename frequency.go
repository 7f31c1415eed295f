package pixorder

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/unixpickle/num-analysis/linalg"
)

// Frequency stores how often a pattern occurred.
type Frequency struct {
	Count     int
	Frequency float64
}

// A FrequencyTable maps every observed pattern to its
// count and relative frequency.
type FrequencyTable struct {
	// Total is the number of patterns tabulated.
	Total int

	entries map[string]Frequency
}

// Tabulate counts the patterns in a sequence.
//
// An empty sequence has no distribution, so it results in
// an error with ErrEmptySequence as its cause.
func Tabulate(patterns []string) (*FrequencyTable, error) {
	if len(patterns) == 0 {
		return nil, errors.Wrap(ErrEmptySequence, "tabulate")
	}
	counts := map[string]int{}
	for _, p := range patterns {
		counts[p]++
	}
	res := &FrequencyTable{
		Total:   len(patterns),
		entries: make(map[string]Frequency, len(counts)),
	}
	for p, c := range counts {
		res.entries[p] = Frequency{
			Count:     c,
			Frequency: float64(c) / float64(len(patterns)),
		}
	}
	return res, nil
}

// Len returns the number of distinct patterns.
func (f *FrequencyTable) Len() int {
	return len(f.entries)
}

// Get looks up a pattern.
func (f *FrequencyTable) Get(pattern string) (Frequency, bool) {
	e, ok := f.entries[pattern]
	return e, ok
}

// Count returns the number of occurrences of a pattern,
// which is 0 for unseen patterns.
func (f *FrequencyTable) Count(pattern string) int {
	return f.entries[pattern].Count
}

// Frequency returns the relative frequency of a pattern,
// which is 0 for unseen patterns.
func (f *FrequencyTable) Frequency(pattern string) float64 {
	return f.entries[pattern].Frequency
}

// Symbols returns the observed patterns in sorted order.
func (f *FrequencyTable) Symbols() []string {
	res := make([]string, 0, len(f.entries))
	for p := range f.entries {
		res = append(res, p)
	}
	sort.Strings(res)
	return res
}

// Vector creates a frequency profile with one component
// per symbol.
func (f *FrequencyTable) Vector(symbols []string) linalg.Vector {
	res := make(linalg.Vector, len(symbols))
	for i, s := range symbols {
		res[i] = f.Frequency(s)
	}
	return res
}

// Correlation computes the cosine similarity between the
// frequency profiles of two tables, over the union of
// their symbols.
func Correlation(f1, f2 *FrequencyTable) float64 {
	symbols := unionSymbols(f1, f2)
	v1 := f1.Vector(symbols)
	v2 := f2.Vector(symbols)
	return v1.Dot(v2) / (v1.Mag() * v2.Mag())
}

func unionSymbols(f1, f2 *FrequencyTable) []string {
	res := f1.Symbols()
	for _, s := range f2.Symbols() {
		if _, ok := f1.entries[s]; !ok {
			res = append(res, s)
		}
	}
	sort.Strings(res)
	return res
}
