package pixorder

import "github.com/pkg/errors"

const (
	// ImageSize is the side length of MNIST-style digits.
	ImageSize = 28

	// DefaultThreshold is the fraction of the maximum
	// intensity at or above which a pixel is set.
	DefaultThreshold = 0.5
)

// Geometry describes the dimensions of every image in a
// dataset.
//
// Pixels are identified by a linear id in row-major order.
// The id maps to coordinates where x grows to the right
// and y grows upward, so that the top row of an image has
// y == Height and the bottom row has y == 1.
type Geometry struct {
	Width  int
	Height int
}

// MNISTGeometry is the 28x28 digit geometry.
var MNISTGeometry = Geometry{Width: ImageSize, Height: ImageSize}

// NumPixels returns the number of pixels in an image.
func (g Geometry) NumPixels() int {
	return g.Width * g.Height
}

// Contains checks if a pixel id is in range.
func (g Geometry) Contains(id int) bool {
	return id >= 0 && id < g.NumPixels()
}

// Coord converts a pixel id into (x, y) coordinates using
// x = id mod W and y = H - floor(id / W).
func (g Geometry) Coord(id int) (x, y int) {
	return id % g.Width, g.Height - id/g.Width
}

// PixelID is the inverse of Coord.
// The second return value is false if the coordinates lie
// outside of the image.
func (g Geometry) PixelID(x, y int) (int, bool) {
	if x < 0 || x >= g.Width || y < 1 || y > g.Height {
		return 0, false
	}
	return (g.Height-y)*g.Width + x, true
}

func (g Geometry) validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return errors.Errorf("invalid geometry %dx%d", g.Width, g.Height)
	}
	return nil
}

// A BoolImg is a binarized image, stored in the same
// row-major order as pixel ids.
type BoolImg []bool

// NewBoolImg binarizes raw intensities.
// A pixel is set if intensity/maxIntensity >= threshold.
func NewBoolImg(intensities []float64, maxIntensity, threshold float64) BoolImg {
	res := make(BoolImg, len(intensities))
	for i, x := range intensities {
		res[i] = x/maxIntensity >= threshold
	}
	return res
}

// Bit returns 1 if the pixel is set, or 0 otherwise.
func (b BoolImg) Bit(id int) byte {
	if b[id] {
		return 1
	}
	return 0
}

// PixelValue is a single displayable pixel.
type PixelValue struct {
	ID        int
	X         int
	Y         int
	Intensity byte
}

// PixelTable lists every pixel of an image with its
// coordinates, in id order.
func PixelTable(g Geometry, img BoolImg) []PixelValue {
	res := make([]PixelValue, len(img))
	for id := range img {
		x, y := g.Coord(id)
		res[id] = PixelValue{ID: id, X: x, Y: y, Intensity: img.Bit(id)}
	}
	return res
}
