package pixorder

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strconv"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const captionHeight = 16

var (
	zoneColor      = color.RGBA{R: 0xc0, G: 0xd8, B: 0xf0, A: 0xff}
	selectionColor = color.RGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff}
	gridBackground = color.RGBA{R: 0xf4, G: 0xf4, B: 0xf4, A: 0xff}
)

// RenderGrid draws the given dataset rows as a grid of
// white-on-black digits, cols per line, each pixel scaled
// to a scale x scale square.
// Every digit is captioned with its row id and label.
func RenderGrid(ds *Dataset, rows []int, cols, scale int) (image.Image, error) {
	if cols <= 0 || scale <= 0 {
		return nil, errors.Errorf("render grid: invalid cols=%d scale=%d", cols, scale)
	}
	g := ds.Geometry()
	cellWidth := g.Width * scale
	cellHeight := g.Height*scale + captionHeight
	numLines := (len(rows) + cols - 1) / cols
	out := image.NewRGBA(image.Rect(0, 0, cellWidth*cols, cellHeight*numLines))
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)

	for i, rowIdx := range rows {
		if rowIdx < 0 || rowIdx >= ds.Len() {
			return nil, errors.Errorf("render grid: row %d out of range", rowIdx)
		}
		row := ds.Row(rowIdx)
		small := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
		for id, set := range row.Image {
			if set {
				small.SetGray(id%g.Width, id/g.Width, color.Gray{Y: 0xff})
			}
		}
		big := resize.Resize(uint(cellWidth), uint(g.Height*scale), small, resize.NearestNeighbor)
		x := (i % cols) * cellWidth
		y := (i / cols) * cellHeight
		draw.Draw(out, image.Rect(x, y, x+cellWidth, y+g.Height*scale), big, image.Point{},
			draw.Src)

		caption := "#" + strconv.Itoa(row.ID)
		if row.Label >= 0 {
			caption += " (" + strconv.Itoa(row.Label) + ")"
		}
		drawText(out, x+2, y+g.Height*scale+basicfont.Face7x13.Ascent+2, caption, color.Black)
	}
	return out, nil
}

// RenderSelection draws an empty image grid with the zone
// shaded and the selection's pixels numbered in order.
func RenderSelection(g Geometry, zone []int, sel Selection, scale int) (image.Image, error) {
	if scale <= 0 {
		return nil, errors.Errorf("render selection: invalid scale %d", scale)
	}
	small := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	draw.Draw(small, small.Bounds(), image.NewUniform(gridBackground), image.Point{}, draw.Src)
	for _, id := range zone {
		if !g.Contains(id) {
			return nil, errors.Wrapf(ErrInvalidSelection, "render selection: zone pixel %d", id)
		}
		small.Set(id%g.Width, id/g.Width, zoneColor)
	}
	if err := sel.Validate(g); err != nil {
		return nil, errors.Wrap(err, "render selection")
	}
	for _, id := range sel {
		small.Set(id%g.Width, id/g.Width, selectionColor)
	}

	big := resize.Resize(uint(g.Width*scale), uint(g.Height*scale), small, resize.NearestNeighbor)
	out := image.NewRGBA(big.Bounds())
	draw.Draw(out, out.Bounds(), big, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	if scale >= face.Height {
		for i, id := range sel {
			x := (id%g.Width)*scale + (scale-face.Advance)/2
			y := (id/g.Width)*scale + (scale+face.Ascent)/2
			drawText(out, x, y, strconv.Itoa(i+1), color.White)
		}
	}
	return out, nil
}

// SavePNG encodes an image to a PNG file.
func SavePNG(path string, img image.Image) error {
	w, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save png")
	}
	defer w.Close()
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(err, "save png")
	}
	return nil
}

func drawText(dst draw.Image, x, y int, text string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
