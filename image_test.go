package pixorder

import "testing"

func TestGeometryCoord(t *testing.T) {
	cases := []struct {
		id   int
		x, y int
	}{
		{0, 0, 28},
		{27, 27, 28},
		{28, 0, 27},
		{406, 14, 14},
		{783, 27, 1},
	}
	for _, c := range cases {
		x, y := MNISTGeometry.Coord(c.id)
		if x != c.x || y != c.y {
			t.Errorf("pixel %d: expected (%d,%d) but got (%d,%d)", c.id, c.x, c.y, x, y)
		}
	}

	for id := 0; id < MNISTGeometry.NumPixels(); id++ {
		actual, ok := MNISTGeometry.PixelID(MNISTGeometry.Coord(id))
		if !ok || actual != id {
			t.Errorf("pixel %d round trip gave %d (ok=%v)", id, actual, ok)
		}
	}

	for _, p := range [][2]int{{-1, 5}, {28, 5}, {5, 0}, {5, 29}} {
		if _, ok := MNISTGeometry.PixelID(p[0], p[1]); ok {
			t.Errorf("coordinates %v should be out of range", p)
		}
	}
}

func TestNewBoolImg(t *testing.T) {
	img := NewBoolImg([]float64{0, 127, 128, 255}, 255, 0.5)
	expected := []bool{false, false, true, true}
	for i, x := range expected {
		if img[i] != x {
			t.Errorf("pixel %d: expected %v but got %v", i, x, img[i])
		}
	}
}

func TestPixelTable(t *testing.T) {
	img := make(BoolImg, 9)
	img[4] = true
	table := PixelTable(tripleGeometry, img)
	if len(table) != 9 {
		t.Fatalf("expected 9 pixels but got %d", len(table))
	}
	expected := PixelValue{ID: 4, X: 1, Y: 2, Intensity: 1}
	if table[4] != expected {
		t.Errorf("expected %+v but got %+v", expected, table[4])
	}
	if table[0].Intensity != 0 || table[0].Y != 3 {
		t.Errorf("unexpected first pixel %+v", table[0])
	}
}
