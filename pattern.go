package pixorder

import "github.com/pkg/errors"

// EncodePatterns reads the selected pixels of every row,
// in selection order, and joins them into a '0'/'1'
// string per row.
//
// The result has one pattern per row, in row order.
func EncodePatterns(ds *Dataset, sel Selection) ([]string, error) {
	if err := sel.Validate(ds.Geometry()); err != nil {
		return nil, errors.Wrap(err, "encode patterns")
	}
	res := make([]string, ds.Len())
	buf := make([]byte, len(sel))
	for i := range res {
		img := ds.Row(i).Image
		for j, id := range sel {
			buf[j] = '0' + img.Bit(id)
		}
		res[i] = string(buf)
	}
	return res, nil
}
