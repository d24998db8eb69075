package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"shelf/internal/entry"
)

const entryColumns = `id, title, media_type, start_date, finish_date, rating,
    hype_rating, status, tags_json, cover_url, metadata_json, created_at, updated_at`

// Insert persists a new entry.
func (s *Store) Insert(ctx context.Context, e *entry.Entry) error {
	if e == nil {
		return errors.New("entry is nil")
	}
	if strings.TrimSpace(e.ID) == "" {
		return errors.New("entry id is required")
	}
	tagsJSON, err := marshalTags(e.Tags)
	if err != nil {
		return err
	}
	if _, err := s.execWithRetry(
		ctx,
		`INSERT INTO entries (`+entryColumns+`)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.Title,
		string(e.MediaType),
		nullableString(entry.FormatDate(e.StartDate)),
		nullableString(entry.FormatDate(e.FinishDate)),
		nullableString(e.Rating.String()),
		e.HypeRating,
		string(e.Status),
		tagsJSON,
		e.CoverURL,
		e.MetadataJSON,
		e.CreatedAt.UTC().Format(time.RFC3339Nano),
		e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// GetByID fetches an entry by identifier. A missing row yields (nil, nil).
func (s *Store) GetByID(ctx context.Context, id string) (*entry.Entry, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM entries WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return e, nil
}

// Filter narrows List results. Empty slices match everything.
type Filter struct {
	Statuses   []entry.Status
	MediaTypes []entry.MediaType
}

// List returns entries matching the filter ordered by creation time.
func (s *Store) List(ctx context.Context, filter Filter) ([]*entry.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries`
	var (
		clauses []string
		args    []any
	)
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			placeholders[i] = "?"
			args = append(args, string(status))
		}
		clauses = append(clauses, `status IN (`+strings.Join(placeholders, ", ")+`)`)
	}
	if len(filter.MediaTypes) > 0 {
		placeholders := make([]string, len(filter.MediaTypes))
		for i, mt := range filter.MediaTypes {
			placeholders[i] = "?"
			args = append(args, string(mt))
		}
		clauses = append(clauses, `media_type IN (`+strings.Join(placeholders, ", ")+`)`)
	}
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []*entry.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes an entry by identifier, reporting whether a row existed.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.execWithRetry(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// DateChange sets or clears an optional date column. A nil Value clears it.
type DateChange struct {
	Value *time.Time
}

// Patch declares the columns an update may touch. Nil fields are left
// untouched; the merge with the stored row happens entirely in SQL so a
// patch can never carry stray keys into unrelated columns.
type Patch struct {
	Title        *string
	MediaType    *entry.MediaType
	StartDate    *DateChange
	FinishDate   *DateChange
	Rating       *entry.Rating
	HypeRating   *int
	Status       *entry.Status
	Tags         *[]string
	CoverURL     *string
	MetadataJSON *string
}

// IsZero reports whether the patch declares no changes.
func (p Patch) IsZero() bool {
	return p.Title == nil && p.MediaType == nil && p.StartDate == nil &&
		p.FinishDate == nil && p.Rating == nil && p.HypeRating == nil &&
		p.Status == nil && p.Tags == nil && p.CoverURL == nil && p.MetadataJSON == nil
}

// Apply merges the patch into the stored row, reporting whether the row
// existed. updated_at is always refreshed.
func (s *Store) Apply(ctx context.Context, id string, patch Patch) (bool, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC().Format(time.RFC3339Nano)}

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.MediaType != nil {
		sets = append(sets, "media_type = ?")
		args = append(args, string(*patch.MediaType))
	}
	if patch.StartDate != nil {
		sets = append(sets, "start_date = ?")
		args = append(args, nullableString(entry.FormatDate(patch.StartDate.Value)))
	}
	if patch.FinishDate != nil {
		sets = append(sets, "finish_date = ?")
		args = append(args, nullableString(entry.FormatDate(patch.FinishDate.Value)))
	}
	if patch.Rating != nil {
		sets = append(sets, "rating = ?")
		args = append(args, nullableString(patch.Rating.String()))
	}
	if patch.HypeRating != nil {
		sets = append(sets, "hype_rating = ?")
		args = append(args, *patch.HypeRating)
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*patch.Status))
	}
	if patch.Tags != nil {
		tagsJSON, err := marshalTags(*patch.Tags)
		if err != nil {
			return false, err
		}
		sets = append(sets, "tags_json = ?")
		args = append(args, tagsJSON)
	}
	if patch.CoverURL != nil {
		sets = append(sets, "cover_url = ?")
		args = append(args, *patch.CoverURL)
	}
	if patch.MetadataJSON != nil {
		sets = append(sets, "metadata_json = ?")
		args = append(args, *patch.MetadataJSON)
	}

	args = append(args, id)
	res, err := s.execWithRetry(ctx, `UPDATE entries SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return false, fmt.Errorf("apply patch: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*entry.Entry, error) {
	var (
		e          entry.Entry
		mediaType  string
		startDate  sql.NullString
		finishDate sql.NullString
		rating     sql.NullString
		status     string
		tagsJSON   string
		createdAt  string
		updatedAt  string
	)
	if err := row.Scan(
		&e.ID,
		&e.Title,
		&mediaType,
		&startDate,
		&finishDate,
		&rating,
		&e.HypeRating,
		&status,
		&tagsJSON,
		&e.CoverURL,
		&e.MetadataJSON,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	e.MediaType = entry.MediaType(mediaType)
	e.Status = entry.Status(status)

	var err error
	if e.StartDate, err = entry.ParseDate(startDate.String); err != nil {
		return nil, fmt.Errorf("parse start date: %w", err)
	}
	if e.FinishDate, err = entry.ParseDate(finishDate.String); err != nil {
		return nil, fmt.Errorf("parse finish date: %w", err)
	}
	if e.Rating, err = entry.ParseRating(rating.String); err != nil {
		return nil, fmt.Errorf("parse rating: %w", err)
	}
	if tagsJSON != "" {
		if err := json.Unmarshal([]byte(tagsJSON), &e.Tags); err != nil {
			return nil, fmt.Errorf("parse tags: %w", err)
		}
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if e.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &e, nil
}

func marshalTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("marshal tags: %w", err)
	}
	return string(raw), nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
