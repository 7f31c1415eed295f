package pixorder

import "testing"

func TestTriples(t *testing.T) {
	zone := []int{7, 3, 11, 20}
	triples := Triples(zone)
	if len(triples) != 24 || NumTriples(len(zone)) != 24 {
		t.Fatalf("expected 24 triples but got %d", len(triples))
	}
	seen := map[Triple]bool{}
	for _, tr := range triples {
		if tr[0] == tr[1] || tr[1] == tr[2] || tr[0] == tr[2] {
			t.Errorf("triple %v has duplicates", tr)
		}
		if seen[tr] {
			t.Errorf("triple %v repeated", tr)
		}
		seen[tr] = true
	}

	if n := len(Triples([]int{1, 2})); n != 0 {
		t.Errorf("expected no triples but got %d", n)
	}
	if NumTriples(2) != 0 {
		t.Error("expected zero triples for two pixels")
	}
}

func TestNeighborhood(t *testing.T) {
	actual := Neighborhood(MNISTGeometry, 406, 1)
	expected := []int{377, 378, 379, 405, 406, 407, 433, 434, 435}
	if len(actual) != len(expected) {
		t.Fatalf("expected %v but got %v", expected, actual)
	}
	for i, x := range expected {
		if actual[i] != x {
			t.Errorf("expected %v but got %v", expected, actual)
			break
		}
	}

	corner := Neighborhood(MNISTGeometry, 0, 1)
	expected = []int{0, 1, 28, 29}
	if len(corner) != len(expected) {
		t.Fatalf("expected %v but got %v", expected, corner)
	}
	for i, x := range expected {
		if corner[i] != x {
			t.Errorf("expected %v but got %v", expected, corner)
			break
		}
	}
}
