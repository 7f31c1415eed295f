package pixorder

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidSelection is the cause of errors caused by
	// duplicate or out-of-range pixel positions.
	ErrInvalidSelection = errors.New("invalid pixel selection")

	// ErrEmptySequence is the cause of errors caused by
	// tabulating or scoring zero patterns.
	ErrEmptySequence = errors.New("empty pattern sequence")
)

// A Selection is an ordered list of pixel ids.
// The order defines the role each pixel plays in a
// pattern, so two selections with the same pixels in a
// different order are different selections.
type Selection []int

// ParseSelection parses a comma-separated list of pixel
// ids, such as "405,406,407".
func ParseSelection(s string) (Selection, error) {
	var res Selection
	for _, part := range strings.Split(s, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Wrapf(err, "parse selection %q", s)
		}
		res = append(res, id)
	}
	return res, nil
}

// Validate checks that the selection is non-empty and
// that its pixels are in range and pairwise distinct.
//
// Errors have ErrInvalidSelection as their cause.
func (s Selection) Validate(g Geometry) error {
	if len(s) == 0 {
		return errors.Wrap(ErrInvalidSelection, "no positions")
	}
	seen := map[int]bool{}
	for _, id := range s {
		if !g.Contains(id) {
			return errors.Wrapf(ErrInvalidSelection, "position %d out of range [0,%d) in %v",
				id, g.NumPixels(), s)
		}
		if seen[id] {
			return errors.Wrapf(ErrInvalidSelection, "duplicate position %d in %v", id, s)
		}
		seen[id] = true
	}
	return nil
}

// Reverse creates the selection with the pixel order
// reversed.
func (s Selection) Reverse() Selection {
	res := make(Selection, len(s))
	for i, id := range s {
		res[len(s)-1-i] = id
	}
	return res
}

// String formats the selection like "(405,406,407)".
func (s Selection) String() string {
	parts := make([]string, len(s))
	for i, id := range s {
		parts[i] = strconv.Itoa(id)
	}
	return "(" + strings.Join(parts, ",") + ")"
}
