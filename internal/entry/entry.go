package entry

import (
	"strings"
	"time"
)

// MediaType identifies the kind of media an entry tracks.
type MediaType string

const (
	TypeVideogame MediaType = "videogame"
	TypeFilm      MediaType = "film"
	TypeSeries    MediaType = "series"
	TypeBook      MediaType = "book"
	TypePaper     MediaType = "paper"
)

// Tag limits enforced on create and update.
const (
	MaxTags      = 20
	MaxTagLength = 50
)

var allMediaTypes = []MediaType{
	TypeVideogame,
	TypeFilm,
	TypeSeries,
	TypeBook,
	TypePaper,
}

var mediaTypeAliases = map[string]MediaType{
	"game":       TypeVideogame,
	"videogame":  TypeVideogame,
	"movie":      TypeFilm,
	"film":       TypeFilm,
	"tv":         TypeSeries,
	"series":     TypeSeries,
	"book":       TypeBook,
	"paper":      TypePaper,
	"scientific": TypePaper,
}

// AllMediaTypes returns the ordered list of known media types.
func AllMediaTypes() []MediaType {
	cp := make([]MediaType, len(allMediaTypes))
	copy(cp, allMediaTypes)
	return cp
}

// ParseMediaType converts a string (including common aliases such as
// "movie" or "game") into a known MediaType.
func ParseMediaType(value string) (MediaType, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return "", false
	}
	mt, ok := mediaTypeAliases[normalized]
	return mt, ok
}

// Entry is a single tracked media item.
type Entry struct {
	ID           string
	Title        string
	MediaType    MediaType
	StartDate    *time.Time
	FinishDate   *time.Time
	Rating       Rating
	HypeRating   int
	Status       Status
	Tags         []string
	CoverURL     string
	MetadataJSON string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DateFormat is the calendar-date layout used for persistence and input.
const DateFormat = "2006-01-02"

// ParseDate parses a calendar date in the canonical layout. An empty
// string yields a nil date.
func ParseDate(value string) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := time.Parse(DateFormat, trimmed)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// FormatDate renders a date in the canonical layout, or "" for nil.
func FormatDate(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format(DateFormat)
}

// IsPending reports whether the entry is a wishlist-style pending record.
func (e *Entry) IsPending() bool {
	return e.Status == StatusPending
}

// Clone returns a deep copy of the entry.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	cp := *e
	if e.StartDate != nil {
		start := *e.StartDate
		cp.StartDate = &start
	}
	if e.FinishDate != nil {
		finish := *e.FinishDate
		cp.FinishDate = &finish
	}
	if len(e.Tags) > 0 {
		cp.Tags = make([]string, len(e.Tags))
		copy(cp.Tags, e.Tags)
	}
	return &cp
}
