package pixorder

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// A Transform maps a selection to another selection.
//
// Geometric transforms move each pixel, while reorderings
// keep the pixels and change their roles.
type Transform interface {
	Apply(g Geometry, sel Selection) (Selection, error)
	String() string
}

// Identity leaves a selection unchanged.
type Identity struct{}

func (Identity) Apply(g Geometry, sel Selection) (Selection, error) {
	return append(Selection{}, sel...), nil
}

func (Identity) String() string {
	return "identity"
}

// Reorder permutes the roles of a selection's pixels.
// Output position i takes the pixel at input position
// Order[i].
type Reorder struct {
	Order []int
}

func (r Reorder) Apply(g Geometry, sel Selection) (Selection, error) {
	if len(r.Order) != len(sel) {
		return nil, errors.Wrapf(ErrInvalidSelection, "reorder %v: selection %v has %d pixels",
			r.Order, sel, len(sel))
	}
	res := make(Selection, len(sel))
	for i, j := range r.Order {
		if j < 0 || j >= len(sel) {
			return nil, errors.Wrapf(ErrInvalidSelection, "reorder %v: index %d", r.Order, j)
		}
		res[i] = sel[j]
	}
	return res, res.Validate(g)
}

func (r Reorder) String() string {
	return fmt.Sprintf("reorder %v", r.Order)
}

// Reverse reverses the order of a selection, turning
// (p1,p2,p3) into (p3,p2,p1).
type Reverse struct{}

func (Reverse) Apply(g Geometry, sel Selection) (Selection, error) {
	return sel.Reverse(), nil
}

func (Reverse) String() string {
	return "reverse"
}

// ReflectX mirrors pixels across the vertical center line
// of the image.
type ReflectX struct{}

func (ReflectX) Apply(g Geometry, sel Selection) (Selection, error) {
	return mapPixels(g, sel, "reflect x", func(x, y float64) (float64, float64) {
		return float64(g.Width-1) - x, y
	})
}

func (ReflectX) String() string {
	return "reflect x"
}

// ReflectY mirrors pixels across the horizontal center
// line of the image.
type ReflectY struct{}

func (ReflectY) Apply(g Geometry, sel Selection) (Selection, error) {
	return mapPixels(g, sel, "reflect y", func(x, y float64) (float64, float64) {
		return x, float64(g.Height+1) - y
	})
}

func (ReflectY) String() string {
	return "reflect y"
}

// Rotate90 rotates pixels a quarter turn counterclockwise
// about the image center.
//
// For images whose width and height have different
// parity, some pixels do not land on the pixel grid and
// Apply fails.
type Rotate90 struct{}

func (Rotate90) Apply(g Geometry, sel Selection) (Selection, error) {
	cx, cy := center(g)
	return mapPixels(g, sel, "rotate 90", func(x, y float64) (float64, float64) {
		return cx - (y - cy), cy + (x - cx)
	})
}

func (Rotate90) String() string {
	return "rotate 90"
}

// Rotate180 rotates pixels a half turn about the image
// center.
type Rotate180 struct{}

func (Rotate180) Apply(g Geometry, sel Selection) (Selection, error) {
	cx, cy := center(g)
	return mapPixels(g, sel, "rotate 180", func(x, y float64) (float64, float64) {
		return 2*cx - x, 2*cy - y
	})
}

func (Rotate180) String() string {
	return "rotate 180"
}

// Translate shifts pixels by DX to the right and DY
// upward.
type Translate struct {
	DX int
	DY int
}

func (t Translate) Apply(g Geometry, sel Selection) (Selection, error) {
	return mapPixels(g, sel, t.String(), func(x, y float64) (float64, float64) {
		return x + float64(t.DX), y + float64(t.DY)
	})
}

func (t Translate) String() string {
	return fmt.Sprintf("translate (%d,%d)", t.DX, t.DY)
}

// Scale moves pixels away from (or toward) the image
// center by Factor, rounding to the nearest pixel.
//
// Scaling down can merge pixels, which makes the result
// an invalid selection.
type Scale struct {
	Factor float64
}

func (s Scale) Apply(g Geometry, sel Selection) (Selection, error) {
	cx, cy := center(g)
	return mapPixels(g, sel, s.String(), func(x, y float64) (float64, float64) {
		return math.Round(cx + s.Factor*(x-cx)), math.Round(cy + s.Factor*(y-cy))
	})
}

func (s Scale) String() string {
	return fmt.Sprintf("scale %g", s.Factor)
}

// Compose applies transforms from first to last.
type Compose []Transform

func (c Compose) Apply(g Geometry, sel Selection) (Selection, error) {
	res := sel
	for _, t := range c {
		var err error
		res, err = t.Apply(g, res)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (c Compose) String() string {
	var res string
	for i, t := range c {
		if i > 0 {
			res += ", then "
		}
		res += t.String()
	}
	return res
}

func center(g Geometry) (float64, float64) {
	return float64(g.Width-1) / 2, float64(g.Height+1) / 2
}

func mapPixels(g Geometry, sel Selection, name string,
	f func(x, y float64) (float64, float64)) (Selection, error) {
	res := make(Selection, len(sel))
	for i, id := range sel {
		if !g.Contains(id) {
			return nil, errors.Wrapf(ErrInvalidSelection, "%s: position %d out of range", name, id)
		}
		x, y := g.Coord(id)
		fx, fy := f(float64(x), float64(y))
		rx, ry := math.Round(fx), math.Round(fy)
		if math.Abs(fx-rx) > 1e-8 || math.Abs(fy-ry) > 1e-8 {
			return nil, errors.Wrapf(ErrInvalidSelection, "%s: pixel %d lands off the grid", name, id)
		}
		newID, ok := g.PixelID(int(rx), int(ry))
		if !ok {
			return nil, errors.Wrapf(ErrInvalidSelection, "%s: pixel %d leaves the image", name, id)
		}
		res[i] = newID
	}
	if err := res.Validate(g); err != nil {
		return nil, errors.Wrap(err, name)
	}
	return res, nil
}

// A NamedTransform labels a transform for reports.
type NamedTransform struct {
	Label     string
	Transform Transform
}

// DefaultTransforms lists the orderings and geometric
// transforms compared in reports.
func DefaultTransforms() []NamedTransform {
	return []NamedTransform{
		{"identity (p1,p2,p3)", Identity{}},
		{"reversal (p3,p2,p1)", Reverse{}},
		{"swap (p1,p3,p2)", Reorder{Order: []int{0, 2, 1}}},
		{"swap (p2,p1,p3)", Reorder{Order: []int{1, 0, 2}}},
		{"reflect x", ReflectX{}},
		{"reflect y", ReflectY{}},
		{"rotate 90", Rotate90{}},
		{"rotate 180", Rotate180{}},
		{"translate right", Translate{DX: 1}},
		{"translate up", Translate{DY: 1}},
		{"scale 2", Scale{Factor: 2}},
	}
}

// A TransformScore is the log-likelihood of a transformed
// reference selection.
type TransformScore struct {
	Label         string
	Selection     Selection
	LogLikelihood float64
}

// ScoreTransforms applies each transform to the reference
// and scores the resulting pattern counts against the
// reference's pattern frequencies.
//
// Results are in the same order as transforms.
func ScoreTransforms(ds *Dataset, ref Selection, transforms []NamedTransform) ([]TransformScore,
	error) {
	refPatterns, err := EncodePatterns(ds, ref)
	if err != nil {
		return nil, errors.Wrap(err, "score transforms: reference")
	}
	refTable, err := Tabulate(refPatterns)
	if err != nil {
		return nil, errors.Wrap(err, "score transforms: reference")
	}
	res := make([]TransformScore, len(transforms))
	for i, nt := range transforms {
		sel, err := nt.Transform.Apply(ds.Geometry(), ref)
		if err != nil {
			return nil, errors.Wrapf(err, "score transforms: %s", nt.Label)
		}
		patterns, err := EncodePatterns(ds, sel)
		if err != nil {
			return nil, errors.Wrapf(err, "score transforms: %s", nt.Label)
		}
		table, err := Tabulate(patterns)
		if err != nil {
			return nil, errors.Wrapf(err, "score transforms: %s", nt.Label)
		}
		res[i] = TransformScore{
			Label:         nt.Label,
			Selection:     sel,
			LogLikelihood: LogLikelihoodTables(refTable, table),
		}
	}
	return res, nil
}
