package pixorder

import (
	"cmp"
	"context"
	"encoding/json"
	"math"
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// RankedTriple is the score of one candidate triple.
type RankedTriple struct {
	Triple Triple

	// LogLikelihood is the log-probability of the
	// candidate's pattern counts under the reference
	// pattern frequencies. It may be -Inf.
	LogLikelihood float64

	// Correlation is the cosine similarity between the
	// candidate and reference frequency profiles.
	Correlation float64

	// Rank is 1 for the most likely candidate.
	Rank int
}

type rankedTripleJSON struct {
	Triple        Triple   `json:"triple"`
	LogLikelihood *float64 `json:"log_likelihood"`
	Correlation   float64  `json:"correlation"`
	Rank          int      `json:"rank"`
}

// MarshalJSON encodes a -Inf log-likelihood as null.
func (r RankedTriple) MarshalJSON() ([]byte, error) {
	obj := rankedTripleJSON{Triple: r.Triple, Correlation: r.Correlation, Rank: r.Rank}
	if !math.IsInf(r.LogLikelihood, -1) {
		obj.LogLikelihood = &r.LogLikelihood
	}
	return json.Marshal(obj)
}

// UnmarshalJSON decodes a null log-likelihood as -Inf.
func (r *RankedTriple) UnmarshalJSON(data []byte) error {
	var obj rankedTripleJSON
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*r = RankedTriple{Triple: obj.Triple, Correlation: obj.Correlation, Rank: obj.Rank,
		LogLikelihood: math.Inf(-1)}
	if obj.LogLikelihood != nil {
		r.LogLikelihood = *obj.LogLikelihood
	}
	return nil
}

// A Ranking orders every candidate triple in a zone by
// similarity to a reference triple.
type Ranking struct {
	Reference Selection      `json:"reference"`
	Zone      []int          `json:"zone"`
	Results   []RankedTriple `json:"results"`
}

// Reverse creates a ranking with the least likely
// candidates first, where each rank r becomes N+1-r.
func (r *Ranking) Reverse() *Ranking {
	n := len(r.Results)
	res := &Ranking{Reference: r.Reference, Zone: r.Zone, Results: make([]RankedTriple, n)}
	for i, x := range r.Results {
		x.Rank = n + 1 - x.Rank
		res.Results[n-1-i] = x
	}
	return res
}

// Top returns at most the first n results.
func (r *Ranking) Top(n int) []RankedTriple {
	if n > len(r.Results) {
		n = len(r.Results)
	}
	return r.Results[:n]
}

// Find looks up the result for a triple.
func (r *Ranking) Find(t Triple) (RankedTriple, bool) {
	for _, x := range r.Results {
		if x.Triple == t {
			return x, true
		}
	}
	return RankedTriple{}, false
}

// A Ranker scores every ordered triple in a zone against
// a reference triple.
type Ranker struct {
	// Workers is the number of candidates to score at
	// once. Values below 2 score candidates sequentially.
	//
	// The resulting ranking does not depend on Workers.
	Workers int
}

// Rank is like RankContext with a background context.
func (r *Ranker) Rank(ds *Dataset, ref Selection, zone []int) (*Ranking, error) {
	return r.RankContext(context.Background(), ds, ref, zone)
}

// RankContext enumerates every ordered triple of
// distinct zone pixels, scores each one against the
// reference, and sorts them by descending log-likelihood.
//
// Ties are broken by the lexicographic order of the
// triples, and -Inf scores come last.
//
// The context is checked between candidates.
func (r *Ranker) RankContext(ctx context.Context, ds *Dataset, ref Selection,
	zone []int) (*Ranking, error) {
	if len(ref) != 3 {
		return nil, errors.Wrapf(ErrInvalidSelection, "rank: reference %v is not a triple", ref)
	}
	if err := Selection(zone).Validate(ds.Geometry()); err != nil {
		return nil, errors.Wrap(err, "rank: zone")
	}
	if len(zone) < 3 {
		return nil, errors.Wrapf(ErrInvalidSelection, "rank: zone has %d pixels", len(zone))
	}
	refPatterns, err := EncodePatterns(ds, ref)
	if err != nil {
		return nil, errors.Wrap(err, "rank: reference")
	}
	refTable, err := Tabulate(refPatterns)
	if err != nil {
		return nil, errors.Wrap(err, "rank: reference")
	}

	triples := Triples(zone)
	results := make([]RankedTriple, len(triples))
	score := func(ctx context.Context, i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := scoreTriple(ds, refTable, triples[i])
		if err != nil {
			return errors.Wrapf(err, "rank: candidate %v", triples[i])
		}
		results[i] = res
		return nil
	}

	if r.Workers < 2 {
		for i := range triples {
			if err := score(ctx, i); err != nil {
				return nil, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.Workers)
		for i := range triples {
			i := i
			g.Go(func() error {
				return score(gctx, i)
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	sortResults(results)
	return &Ranking{
		Reference: append(Selection{}, ref...),
		Zone:      append([]int{}, zone...),
		Results:   results,
	}, nil
}

func scoreTriple(ds *Dataset, refTable *FrequencyTable, t Triple) (RankedTriple, error) {
	patterns, err := EncodePatterns(ds, t.Selection())
	if err != nil {
		return RankedTriple{}, err
	}
	table, err := Tabulate(patterns)
	if err != nil {
		return RankedTriple{}, err
	}
	return RankedTriple{
		Triple:        t,
		LogLikelihood: LogLikelihoodTables(refTable, table),
		Correlation:   Correlation(refTable, table),
	}, nil
}

func sortResults(results []RankedTriple) {
	slices.SortFunc(results, func(a, b RankedTriple) int {
		if c := cmp.Compare(b.LogLikelihood, a.LogLikelihood); c != 0 {
			return c
		}
		return slices.Compare(a.Triple[:], b.Triple[:])
	})
	for i := range results {
		results[i].Rank = i + 1
	}
}
