package pixorder

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

var rankGeometry = Geometry{Width: 5, Height: 5}

func TestRank(t *testing.T) {
	ds := randomDataset(t, rankGeometry, 200, 5)
	ref := Selection{11, 12, 13}
	zone := Neighborhood(rankGeometry, 12, 1)
	ranking, err := (&Ranker{}).Rank(ds, ref, zone)
	if err != nil {
		t.Fatal(err)
	}
	if len(ranking.Results) != NumTriples(len(zone)) {
		t.Fatalf("expected %d results but got %d", NumTriples(len(zone)), len(ranking.Results))
	}
	for i, r := range ranking.Results {
		if r.Rank != i+1 {
			t.Errorf("result %d has rank %d", i, r.Rank)
		}
		if i > 0 && r.LogLikelihood > ranking.Results[i-1].LogLikelihood {
			t.Errorf("result %d is out of order", i)
		}
	}

	// The reference counts are the mode of their own
	// multinomial distribution.
	self, ok := ranking.Find(Triple{11, 12, 13})
	if !ok {
		t.Fatal("missing reference triple")
	}
	if math.Abs(self.LogLikelihood-ranking.Results[0].LogLikelihood) > 1e-9 {
		t.Errorf("reference should score best: %f vs %f", self.LogLikelihood,
			ranking.Results[0].LogLikelihood)
	}
	if math.Abs(self.Correlation-1) > 1e-9 {
		t.Errorf("reference correlation should be 1 but got %f", self.Correlation)
	}
}

func TestRankDeterministic(t *testing.T) {
	ds := randomDataset(t, rankGeometry, 100, 6)
	ref := Selection{6, 7, 8}
	zone := Neighborhood(rankGeometry, 7, 1)
	r1, err := (&Ranker{}).Rank(ds, ref, zone)
	if err != nil {
		t.Fatal(err)
	}
	r2, _ := (&Ranker{}).Rank(ds, ref, zone)
	if !reflect.DeepEqual(r1, r2) {
		t.Error("repeated rankings differ")
	}
	for _, workers := range []int{2, 4, 16} {
		r3, err := (&Ranker{Workers: workers}).Rank(ds, ref, zone)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(r1, r3) {
			t.Errorf("ranking with %d workers differs", workers)
		}
	}
}

func TestRankingReverse(t *testing.T) {
	ds := randomDataset(t, rankGeometry, 50, 7)
	ranking, err := (&Ranker{}).Rank(ds, Selection{0, 1, 2}, []int{0, 1, 2, 3, 5})
	if err != nil {
		t.Fatal(err)
	}
	reversed := ranking.Reverse()
	n := len(ranking.Results)
	for i, r := range reversed.Results {
		if r.Rank != i+1 {
			t.Errorf("reversed result %d has rank %d", i, r.Rank)
		}
		orig := ranking.Results[n-1-i]
		if orig.Triple != r.Triple || orig.Rank != n+1-r.Rank {
			t.Errorf("reversed result %d does not match %+v", i, orig)
		}
	}
}

func TestSortResults(t *testing.T) {
	inf := math.Inf(-1)
	results := []RankedTriple{
		{Triple: Triple{3, 1, 2}, LogLikelihood: -2},
		{Triple: Triple{0, 1, 2}, LogLikelihood: inf},
		{Triple: Triple{2, 1, 0}, LogLikelihood: -2},
		{Triple: Triple{1, 0, 2}, LogLikelihood: -1},
		{Triple: Triple{0, 2, 1}, LogLikelihood: inf},
	}
	sortResults(results)
	expected := []Triple{{1, 0, 2}, {2, 1, 0}, {3, 1, 2}, {0, 1, 2}, {0, 2, 1}}
	for i, x := range expected {
		if results[i].Triple != x || results[i].Rank != i+1 {
			t.Errorf("position %d: expected %v but got %v (rank %d)", i, x,
				results[i].Triple, results[i].Rank)
		}
	}
}

func TestRankInvalid(t *testing.T) {
	ds := randomDataset(t, rankGeometry, 10, 8)
	cases := []struct {
		ref  Selection
		zone []int
	}{
		{Selection{0, 1}, []int{0, 1, 2}},
		{Selection{0, 1, 1}, []int{0, 1, 2}},
		{Selection{0, 1, 2}, []int{0, 1}},
		{Selection{0, 1, 2}, []int{0, 1, 1, 2}},
		{Selection{0, 1, 2}, []int{0, 1, 25}},
	}
	for _, c := range cases {
		_, err := (&Ranker{}).Rank(ds, c.ref, c.zone)
		if errors.Cause(err) != ErrInvalidSelection {
			t.Errorf("ref %v zone %v: unexpected error %v", c.ref, c.zone, err)
		}
	}

	empty := ds.Head(0)
	if _, err := (&Ranker{}).Rank(empty, Selection{0, 1, 2}, []int{0, 1, 2}); errors.Cause(err) !=
		ErrEmptySequence {
		t.Errorf("empty dataset: unexpected error %v", err)
	}
}

func TestRankCanceled(t *testing.T) {
	ds := randomDataset(t, rankGeometry, 10, 9)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, workers := range []int{1, 4} {
		_, err := (&Ranker{Workers: workers}).RankContext(ctx, ds, Selection{0, 1, 2},
			[]int{0, 1, 2, 3})
		if errors.Cause(err) != context.Canceled {
			t.Errorf("workers=%d: unexpected error %v", workers, err)
		}
	}
}

func TestRankingSaveLoad(t *testing.T) {
	ranking := &Ranking{
		Reference: Selection{3, 4, 5},
		Zone:      []int{3, 4, 5},
		Results: []RankedTriple{
			{Triple: Triple{3, 4, 5}, LogLikelihood: -1.5, Correlation: 1, Rank: 1},
			{Triple: Triple{4, 3, 5}, LogLikelihood: math.Inf(-1), Correlation: 0.25, Rank: 2},
		},
	}
	path := filepath.Join(t.TempDir(), "ranking.json")
	if err := ranking.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadRanking(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ranking, loaded) {
		t.Errorf("expected %+v but got %+v", ranking, loaded)
	}
}

func BenchmarkRank(b *testing.B) {
	ds := randomDataset(b, MNISTGeometry, 500, 10)
	zone := Neighborhood(MNISTGeometry, 406, 1)
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("Workers%d", workers), func(b *testing.B) {
			r := &Ranker{Workers: workers}
			for i := 0; i < b.N; i++ {
				r.Rank(ds, Selection{405, 406, 407}, zone)
			}
		})
	}
}
