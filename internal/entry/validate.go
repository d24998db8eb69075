package entry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Draft carries raw user-supplied fields for an entry before parsing.
// Validation happens here, ahead of status inference and cover
// resolution, so both engines only ever see well-formed values.
type Draft struct {
	Title      string
	MediaType  string
	StartDate  string
	FinishDate string
	Rating     string
	HypeRating int
	Status     string
	Tags       []string
}

// Validate checks the draft and returns an error describing every
// violated rule.
func (d Draft) Validate() error {
	err := validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Required, validation.Length(1, 500)),
		validation.Field(&d.MediaType, validation.Required, validation.By(checkMediaType)),
		validation.Field(&d.StartDate, validation.By(checkDate)),
		validation.Field(&d.FinishDate, validation.By(checkDate)),
		validation.Field(&d.Rating, validation.By(checkRating)),
		validation.Field(&d.HypeRating, validation.Min(0), validation.Max(MaxRating)),
		validation.Field(&d.Status, validation.By(checkStatus)),
		validation.Field(&d.Tags, validation.Length(0, MaxTags), validation.Each(validation.Required, validation.Length(1, MaxTagLength))),
	)
	if err != nil {
		return err
	}
	return d.checkConsistency()
}

func (d Draft) checkConsistency() error {
	errs := validation.Errors{}
	if d.Status == string(StatusPending) && (strings.TrimSpace(d.StartDate) != "" || strings.TrimSpace(d.FinishDate) != "") {
		errs["Status"] = errors.New("a pending entry cannot carry start or finish dates")
	}
	start, _ := ParseDate(d.StartDate)
	finish, _ := ParseDate(d.FinishDate)
	if start != nil && finish != nil && finish.Before(*start) {
		errs["FinishDate"] = errors.New("finish date precedes start date")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func checkMediaType(value any) error {
	raw, _ := value.(string)
	if _, ok := ParseMediaType(raw); !ok {
		return fmt.Errorf("unknown media type %q (expected one of %s)", raw, joinMediaTypes())
	}
	return nil
}

func checkDate(value any) error {
	raw, _ := value.(string)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if _, err := time.Parse(DateFormat, strings.TrimSpace(raw)); err != nil {
		return fmt.Errorf("not a calendar date in %s form", DateFormat)
	}
	return nil
}

func checkRating(value any) error {
	raw, _ := value.(string)
	_, err := ParseRating(raw)
	return err
}

func checkStatus(value any) error {
	raw, _ := value.(string)
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if _, ok := ParseStatus(raw); !ok {
		return fmt.Errorf("unknown status %q", raw)
	}
	return nil
}

func joinMediaTypes() string {
	parts := make([]string, 0, len(allMediaTypes))
	for _, mt := range allMediaTypes {
		parts = append(parts, string(mt))
	}
	return strings.Join(parts, ", ")
}

// ValidationMessages flattens a validation error into one human-readable
// message per violated field, sorted by field name for stable output.
func ValidationMessages(err error) []string {
	if err == nil {
		return nil
	}
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	fields := make([]string, 0, len(verrs))
	for field := range verrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, fmt.Sprintf("%s: %s", field, verrs[field]))
	}
	return messages
}
