package pixorder

import (
	"strconv"

	"github.com/unixpickle/essentials"
	"gonum.org/v1/gonum/stat/combin"
)

// A Triple is an ordered selection of three pixels.
type Triple [3]int

// Selection converts the triple to a Selection.
func (t Triple) Selection() Selection {
	return Selection{t[0], t[1], t[2]}
}

// String formats the triple like "(405,406,407)".
func (t Triple) String() string {
	return "(" + strconv.Itoa(t[0]) + "," + strconv.Itoa(t[1]) + "," +
		strconv.Itoa(t[2]) + ")"
}

// TripleGenerator iterates over every ordered triple of
// distinct pixels drawn from a zone.
//
// Triples follow gonum's permutation index order over
// zone indices: the six orderings of each 3-pixel set are
// adjacent, and sets appear in combination index order.
// Rankings do not depend on this order.
type TripleGenerator struct {
	zone []int
	gen  *combin.PermutationGenerator
	perm []int
}

// NewTripleGenerator creates a generator for the zone.
// If the zone has fewer than three pixels, the generator
// produces nothing.
func NewTripleGenerator(zone []int) *TripleGenerator {
	res := &TripleGenerator{zone: zone, perm: make([]int, 3)}
	if len(zone) >= 3 {
		res.gen = combin.NewPermutationGenerator(len(zone), 3)
	}
	return res
}

// Next advances to the next triple, returning false when
// there are no triples left.
func (t *TripleGenerator) Next() bool {
	return t.gen != nil && t.gen.Next()
}

// Triple returns the current triple.
func (t *TripleGenerator) Triple() Triple {
	t.gen.Permutation(t.perm)
	return Triple{t.zone[t.perm[0]], t.zone[t.perm[1]], t.zone[t.perm[2]]}
}

// Triples collects every triple from a TripleGenerator.
func Triples(zone []int) []Triple {
	res := make([]Triple, 0, NumTriples(len(zone)))
	gen := NewTripleGenerator(zone)
	for gen.Next() {
		res = append(res, gen.Triple())
	}
	return res
}

// NumTriples returns the number of ordered triples in a
// zone of n distinct pixels.
func NumTriples(n int) int {
	if n < 3 {
		return 0
	}
	return combin.NumPermutations(n, 3)
}

// Neighborhood returns the pixels within radius steps
// (in both x and y) of a center pixel, clipped to the
// image, in ascending id order.
func Neighborhood(g Geometry, center, radius int) []int {
	cx, cy := g.Coord(center)
	minY := essentials.MaxInt(1, cy-radius)
	maxY := essentials.MinInt(g.Height, cy+radius)
	minX := essentials.MaxInt(0, cx-radius)
	maxX := essentials.MinInt(g.Width-1, cx+radius)

	var res []int
	for y := maxY; y >= minY; y-- {
		for x := minX; x <= maxX; x++ {
			id, _ := g.PixelID(x, y)
			res = append(res, id)
		}
	}
	return res
}
