package pixorder

import "github.com/pkg/errors"

// A Row is a single labeled image in a Dataset.
type Row struct {
	// ID is the row's index in the source data.
	// It is preserved by Head and Filter.
	ID int

	// Label is the digit class, or -1 if the source had
	// no labels.
	Label int

	Image BoolImg
}

// A Dataset is an immutable, ordered collection of
// binarized images which share a Geometry.
type Dataset struct {
	geometry Geometry
	rows     []Row
}

// NewDataset creates a dataset from rows.
// Every image must have exactly g.NumPixels() pixels.
// The rows are copied, so the caller may reuse the slice.
func NewDataset(g Geometry, rows []Row) (*Dataset, error) {
	if err := g.validate(); err != nil {
		return nil, errors.Wrap(err, "new dataset")
	}
	res := &Dataset{geometry: g, rows: make([]Row, len(rows))}
	for i, r := range rows {
		if len(r.Image) != g.NumPixels() {
			return nil, errors.Errorf("new dataset: row %d has %d pixels (expected %d)",
				r.ID, len(r.Image), g.NumPixels())
		}
		res.rows[i] = Row{ID: r.ID, Label: r.Label, Image: append(BoolImg{}, r.Image...)}
	}
	return res, nil
}

// Geometry returns the shared image geometry.
func (d *Dataset) Geometry() Geometry {
	return d.geometry
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.rows)
}

// Row returns the i-th row.
// The returned image must not be modified.
func (d *Dataset) Row(i int) Row {
	return d.rows[i]
}

// Head returns a dataset with at most the first n rows.
func (d *Dataset) Head(n int) *Dataset {
	if n < 0 || n >= len(d.rows) {
		return d
	}
	return &Dataset{geometry: d.geometry, rows: d.rows[:n]}
}

// Filter returns a dataset with the rows for which keep
// returns true, in their original order.
func (d *Dataset) Filter(keep func(r Row) bool) *Dataset {
	var rows []Row
	for _, r := range d.rows {
		if keep(r) {
			rows = append(rows, r)
		}
	}
	return &Dataset{geometry: d.geometry, rows: rows}
}
