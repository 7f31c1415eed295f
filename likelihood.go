package pixorder

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/anyvec/anyvec64"
)

// LogFactorial computes log(n!).
func LogFactorial(n int) float64 {
	res, _ := math.Lgamma(float64(n) + 1)
	return res
}

// LogLikelihood computes the multinomial log-probability
// of the pattern counts in candidate, given pattern
// probabilities estimated from reference:
//
//	log(n!) + sum_s [count(s)*log(freq(s)) - log(count(s)!)]
//
// If candidate contains a pattern that never occurs in
// reference, the result is -Inf.
func LogLikelihood(reference, candidate []string) (float64, error) {
	ref, err := Tabulate(reference)
	if err != nil {
		return 0, errors.Wrap(err, "log likelihood: reference")
	}
	cand, err := Tabulate(candidate)
	if err != nil {
		return 0, errors.Wrap(err, "log likelihood: candidate")
	}
	return LogLikelihoodTables(ref, cand), nil
}

// LogLikelihoodTables is like LogLikelihood, but operates
// on tables which have already been tabulated.
func LogLikelihoodTables(ref, cand *FrequencyTable) float64 {
	symbols := cand.Symbols()
	counts := make([]float64, len(symbols))
	logFreqs := make([]float64, len(symbols))

	var total kahanSum
	total.Add(LogFactorial(cand.Total))
	for i, s := range symbols {
		freq := ref.Frequency(s)
		if freq == 0 {
			// Unseen under the reference, so impossible.
			return math.Inf(-1)
		}
		count := cand.Count(s)
		counts[i] = float64(count)
		logFreqs[i] = math.Log(freq)
		total.Add(-LogFactorial(count))
	}

	countVec := anyvec64.MakeVectorData(counts)
	logFreqVec := anyvec64.MakeVectorData(logFreqs)
	return total.Sum() + countVec.Dot(logFreqVec).(float64)
}
