package pixorder

import (
	"encoding/csv"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	DefaultLabelColumn  = "label"
	DefaultMaxIntensity = 255
)

// CSVOptions controls how CSV image data is parsed.
//
// Zero values select the defaults.
type CSVOptions struct {
	// Geometry defaults to MNISTGeometry.
	Geometry Geometry

	// LabelColumn is the header of the label column.
	// If the header has no such column, every row gets the
	// label -1.
	LabelColumn string

	// MaxIntensity is the brightest raw intensity.
	MaxIntensity float64

	// Threshold is passed to NewBoolImg.
	Threshold float64

	// MaxRows, if non-zero, stops reading after this many
	// images.
	MaxRows int
}

func (c CSVOptions) withDefaults() CSVOptions {
	if c.Geometry == (Geometry{}) {
		c.Geometry = MNISTGeometry
	}
	if c.LabelColumn == "" {
		c.LabelColumn = DefaultLabelColumn
	}
	if c.MaxIntensity == 0 {
		c.MaxIntensity = DefaultMaxIntensity
	}
	if c.Threshold == 0 {
		c.Threshold = DefaultThreshold
	}
	return c
}

// ReadCSV parses a CSV with a header row and one image
// per record.
//
// Every column other than the label column is a pixel
// intensity, in pixel id order.
func ReadCSV(r io.Reader, opts CSVOptions) (*Dataset, error) {
	opts = opts.withDefaults()
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read csv: header")
	}
	labelIdx := -1
	for i, name := range header {
		if strings.TrimSpace(name) == opts.LabelColumn {
			labelIdx = i
			break
		}
	}
	numPixels := len(header)
	if labelIdx != -1 {
		numPixels--
	}
	if numPixels != opts.Geometry.NumPixels() {
		return nil, errors.Errorf("read csv: %d pixel columns for %dx%d images", numPixels,
			opts.Geometry.Width, opts.Geometry.Height)
	}

	var rows []Row
	intensities := make([]float64, numPixels)
	for opts.MaxRows == 0 || len(rows) < opts.MaxRows {
		record, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrap(err, "read csv")
		}
		row := Row{ID: len(rows), Label: -1}
		pixel := 0
		for i, field := range record {
			value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "read csv: row %d column %q", row.ID, header[i])
			}
			if i == labelIdx {
				row.Label = int(value)
				continue
			}
			if value < 0 {
				return nil, errors.Errorf("read csv: row %d column %q: negative intensity %v",
					row.ID, header[i], value)
			}
			intensities[pixel] = value
			pixel++
		}
		row.Image = NewBoolImg(intensities, opts.MaxIntensity, opts.Threshold)
		rows = append(rows, row)
	}
	return NewDataset(opts.Geometry, rows)
}

// LoadCSV reads a CSV file from a local path or an
// http(s) URL.
func LoadCSV(source string, opts CSVOptions) (*Dataset, error) {
	var r io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, errors.Wrap(err, "load csv")
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, errors.Errorf("load csv: %s: %s", source, resp.Status)
		}
		r = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, errors.Wrap(err, "load csv")
		}
		r = f
	}
	defer r.Close()
	ds, err := ReadCSV(r, opts)
	if err != nil {
		return nil, errors.Wrap(err, source)
	}
	return ds, nil
}
