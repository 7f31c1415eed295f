package pixorder

import (
	"flag"
	"strings"

	"github.com/pkg/errors"
)

const (
	DefaultRows      = 1000
	DefaultReference = "405,406,407"
	DefaultRadius    = 2
)

// Flags is used to configure an analysis from
// command-line arguments.
type Flags struct {
	Data      string
	Rows      int
	Threshold float64
	Label     int
	Reference string
	Center    int
	Radius    int
	Workers   int
	OutDir    string
	Top       int
}

// AddToSet adds the struct fields of f as arguments to
// the flag set.
func (f *Flags) AddToSet(set *flag.FlagSet) {
	set.StringVar(&f.Data, "data", "mnist-train", "CSV path or URL "+
		"(or mnist-train, mnist-test for the bundled MNIST data)")
	set.IntVar(&f.Rows, "rows", DefaultRows, "maximum number of images to load (0 for all)")
	set.Float64Var(&f.Threshold, "threshold", DefaultThreshold,
		"fraction of the maximum intensity at which pixels are set")
	set.IntVar(&f.Label, "label", -1, "only use images with this label (-1 for all)")
	set.StringVar(&f.Reference, "ref", DefaultReference, "comma-separated reference triple")
	set.IntVar(&f.Center, "center", -1, "zone center pixel (default: middle of reference)")
	set.IntVar(&f.Radius, "radius", DefaultRadius, "zone radius in pixels")
	set.IntVar(&f.Workers, "workers", 1, "number of candidates to score concurrently")
	set.StringVar(&f.OutDir, "out", "report", "output directory")
	set.IntVar(&f.Top, "top", 10, "number of ranked triples to list in tables")
}

// LoadDataset loads, binarizes, and filters the dataset
// named by the flags.
func (f *Flags) LoadDataset() (*Dataset, error) {
	var ds *Dataset
	var err error
	switch f.Data {
	case "":
		return nil, errors.New("missing -data flag")
	case "mnist-train", "mnist-test":
		ds, err = LoadMNIST(f.Data == "mnist-train", f.Threshold, f.readLimit())
	default:
		ds, err = LoadCSV(f.Data, CSVOptions{Threshold: f.Threshold, MaxRows: f.readLimit()})
	}
	if err != nil {
		return nil, err
	}
	if f.Label >= 0 {
		ds = ds.Filter(func(r Row) bool {
			return r.Label == f.Label
		})
		if f.Rows > 0 {
			ds = ds.Head(f.Rows)
		}
	}
	if ds.Len() == 0 {
		return nil, errors.Wrapf(ErrEmptySequence, "no images in %s", f.Data)
	}
	return ds, nil
}

// ReferenceSelection parses and validates the -ref flag.
func (f *Flags) ReferenceSelection(g Geometry) (Selection, error) {
	sel, err := ParseSelection(f.Reference)
	if err != nil {
		return nil, err
	}
	if len(sel) != 3 {
		return nil, errors.Wrapf(ErrInvalidSelection, "reference %s is not a triple",
			strings.TrimSpace(f.Reference))
	}
	if err := sel.Validate(g); err != nil {
		return nil, err
	}
	return sel, nil
}

// Zone computes the candidate zone around -center, or
// around the middle reference pixel if -center is unset.
func (f *Flags) Zone(g Geometry, ref Selection) ([]int, error) {
	center := f.Center
	if center < 0 {
		center = ref[len(ref)/2]
	}
	if !g.Contains(center) {
		return nil, errors.Wrapf(ErrInvalidSelection, "zone center %d", center)
	}
	if f.Radius < 0 {
		return nil, errors.Errorf("invalid radius %d", f.Radius)
	}
	return Neighborhood(g, center, f.Radius), nil
}

// readLimit is the number of rows to read before label
// filtering.
func (f *Flags) readLimit() int {
	if f.Label >= 0 {
		return 0
	}
	return f.Rows
}
