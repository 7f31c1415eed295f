package pixorder

import (
	"testing"

	"github.com/pkg/errors"
)

func TestEncodePatterns(t *testing.T) {
	ds := tripleDataset(t, map[string]int{"011": 2, "110": 1, "000": 1})
	actual, err := EncodePatterns(ds, Selection{3, 4, 5})
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"000", "011", "011", "110"}
	for i, x := range expected {
		if actual[i] != x {
			t.Errorf("row %d: expected %s but got %s", i, x, actual[i])
		}
	}

	reversed, err := EncodePatterns(ds, Selection{5, 4, 3})
	if err != nil {
		t.Fatal(err)
	}
	expected = []string{"000", "110", "110", "011"}
	for i, x := range expected {
		if reversed[i] != x {
			t.Errorf("reversed row %d: expected %s but got %s", i, x, reversed[i])
		}
	}
}

func TestEncodePatternsDeterministic(t *testing.T) {
	ds := randomDataset(t, MNISTGeometry, 100, 2)
	sel := Selection{406, 100, 5, 783}
	p1, err := EncodePatterns(ds, sel)
	if err != nil {
		t.Fatal(err)
	}
	p2, _ := EncodePatterns(ds, sel)
	for i := range p1 {
		if p1[i] != p2[i] || len(p1[i]) != len(sel) {
			t.Fatalf("row %d: %s vs %s", i, p1[i], p2[i])
		}
	}
}

func TestEncodePatternsInvalid(t *testing.T) {
	ds := tripleDataset(t, symmetricCounts)
	for _, sel := range []Selection{{}, {3, 3, 4}, {3, 4, 9}, {-1, 2, 3}} {
		_, err := EncodePatterns(ds, sel)
		if errors.Cause(err) != ErrInvalidSelection {
			t.Errorf("selection %v: unexpected error %v", sel, err)
		}
	}
}

func TestParseSelection(t *testing.T) {
	sel, err := ParseSelection("405, 406,407")
	if err != nil {
		t.Fatal(err)
	}
	if sel.String() != "(405,406,407)" {
		t.Errorf("unexpected selection %v", sel)
	}
	if sel.Reverse().String() != "(407,406,405)" {
		t.Errorf("unexpected reverse %v", sel.Reverse())
	}
	if _, err := ParseSelection("1,x,3"); err == nil {
		t.Error("expected parse error")
	}
}
