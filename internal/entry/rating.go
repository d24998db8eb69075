package entry

import (
	"fmt"
	"strconv"
	"strings"
)

// NotApplicableMarker is the persisted representation of a rating the
// user explicitly marked as not applicable. It is distinct from a blank
// rating: the marker survives round trips through the store.
const NotApplicableMarker = "n/a"

// Rating bounds for scored ratings.
const (
	MinRating = 1
	MaxRating = 10
)

// Rating is a completion score between 1 and 10, the explicit
// "not applicable" marker, or unset. The zero value is unset.
type Rating struct {
	value int
	na    bool
}

// RatingOf builds a scored rating. A value of zero is normalized to the
// not-applicable marker before any status inference sees it.
func RatingOf(value int) Rating {
	if value == 0 {
		return RatingNotApplicable()
	}
	return Rating{value: value}
}

// RatingNotApplicable returns the explicit not-applicable marker.
func RatingNotApplicable() Rating {
	return Rating{na: true}
}

// ParseRating converts a stored or user-supplied rating string.
// "" stays unset, "0" and the marker spellings normalize to the
// not-applicable marker, and digits between 1 and 10 become a score.
func ParseRating(raw string) (Rating, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Rating{}, nil
	}
	switch strings.ToLower(trimmed) {
	case NotApplicableMarker, "na", "n.a.", "-":
		return RatingNotApplicable(), nil
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return Rating{}, fmt.Errorf("rating %q is not a number or the %q marker", raw, NotApplicableMarker)
	}
	if value == 0 {
		return RatingNotApplicable(), nil
	}
	if value < MinRating || value > MaxRating {
		return Rating{}, fmt.Errorf("rating %d outside %d-%d", value, MinRating, MaxRating)
	}
	return Rating{value: value}, nil
}

// IsSet reports whether the rating carries any state, scored or marker.
func (r Rating) IsSet() bool {
	return r.na || r.value != 0
}

// IsScored reports whether the rating holds a numeric score.
func (r Rating) IsScored() bool {
	return r.value != 0
}

// IsNotApplicable reports whether the rating is the explicit marker.
func (r Rating) IsNotApplicable() bool {
	return r.na
}

// Value returns the numeric score when one is present.
func (r Rating) Value() (int, bool) {
	if r.value == 0 {
		return 0, false
	}
	return r.value, true
}

// String renders the persisted form: "" for unset, the marker, or the
// decimal score.
func (r Rating) String() string {
	if r.na {
		return NotApplicableMarker
	}
	if r.value == 0 {
		return ""
	}
	return strconv.Itoa(r.value)
}
