package tracker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"shelf/internal/entry"
	"shelf/internal/logging"
	"shelf/internal/metadata"
	"shelf/internal/services"
	"shelf/internal/store"
)

const component = "tracker"

// CoverResolver is the slice of the metadata resolver the tracker
// depends on. All three calls are infallible by contract.
type CoverResolver interface {
	Resolve(ctx context.Context, title string, mediaType entry.MediaType) metadata.Envelope
	ResolveAlternative(ctx context.Context, title string, mediaType entry.MediaType) metadata.Envelope
	Placeholder(title string, mediaType entry.MediaType) metadata.Envelope
}

// Tracker implements the entry operations.
type Tracker struct {
	store    *store.Store
	resolver CoverResolver
	logger   *slog.Logger
}

// New creates a tracker backed by the given store and resolver.
func New(st *store.Store, resolver CoverResolver, logger *slog.Logger) (*Tracker, error) {
	if st == nil {
		return nil, errors.New("tracker requires a store")
	}
	if resolver == nil {
		return nil, errors.New("tracker requires a cover resolver")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Tracker{
		store:    st,
		resolver: resolver,
		logger:   logging.NewComponentLogger(logger, component),
	}, nil
}

// CreateRequest carries the raw fields for a new entry.
type CreateRequest struct {
	Title      string
	MediaType  string
	StartDate  string
	FinishDate string
	Rating     string
	HypeRating int
	Status     string
	Tags       []string
	// Finished marks an entry completed even without dates or a
	// rating (books finished years ago, dates long forgotten).
	Finished bool
}

// Create validates the request, computes the status once, resolves a
// cover, and persists the entry.
func (t *Tracker) Create(ctx context.Context, req CreateRequest) (*entry.Entry, error) {
	draft := entry.Draft{
		Title:      req.Title,
		MediaType:  req.MediaType,
		StartDate:  req.StartDate,
		FinishDate: req.FinishDate,
		Rating:     req.Rating,
		HypeRating: req.HypeRating,
		Status:     req.Status,
		Tags:       req.Tags,
	}
	if err := draft.Validate(); err != nil {
		return nil, services.Wrap(services.ErrValidation, component, "create", "invalid entry", err)
	}

	mediaType, _ := entry.ParseMediaType(req.MediaType)
	start, _ := entry.ParseDate(req.StartDate)
	finish, _ := entry.ParseDate(req.FinishDate)
	rating, _ := entry.ParseRating(req.Rating)

	status, explicit := entry.ParseStatus(req.Status)
	if !explicit {
		status = entry.ComputeStatus(start, finish, rating, req.Finished)
	}

	e := &entry.Entry{
		ID:         uuid.NewString(),
		Title:      req.Title,
		MediaType:  mediaType,
		StartDate:  start,
		FinishDate: finish,
		Rating:     rating,
		HypeRating: req.HypeRating,
		Status:     status,
		Tags:       req.Tags,
	}
	t.attachCover(ctx, e, t.resolver.Resolve(ctx, e.Title, e.MediaType))

	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	if err := t.store.Insert(ctx, e); err != nil {
		return nil, services.Wrap(services.ErrTransient, component, "create", "persist entry", err)
	}
	t.logger.Info("entry created",
		logging.String("id", e.ID),
		logging.String("media_type", string(e.MediaType)),
		logging.String("status", string(e.Status)))
	return e, nil
}

// PendingRequest carries the fields for a wishlist-style entry.
type PendingRequest struct {
	Title      string
	MediaType  string
	HypeRating int
	Tags       []string
}

// CreatePending persists an entry with status fixed to pending. The
// cover is resolved up front so the wishlist renders with art.
func (t *Tracker) CreatePending(ctx context.Context, req PendingRequest) (*entry.Entry, error) {
	return t.Create(ctx, CreateRequest{
		Title:      req.Title,
		MediaType:  req.MediaType,
		HypeRating: req.HypeRating,
		Status:     string(entry.StatusPending),
		Tags:       req.Tags,
	})
}

// StartPending flips a pending entry to in-progress, stamping the
// start date. An empty startDate means today.
func (t *Tracker) StartPending(ctx context.Context, id, startDate string) (*entry.Entry, error) {
	current, err := t.load(ctx, "start-pending", id)
	if err != nil {
		return nil, err
	}
	if !current.IsPending() {
		return nil, services.Wrap(services.ErrValidation, component, "start-pending",
			"entry is not pending (status "+string(current.Status)+")", nil)
	}

	start, err := entry.ParseDate(startDate)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, component, "start-pending", "invalid start date", err)
	}
	if start == nil {
		today := time.Now().UTC().Truncate(24 * time.Hour)
		start = &today
	}

	status := entry.StatusInProgress
	patch := store.Patch{
		StartDate: &store.DateChange{Value: start},
		Status:    &status,
	}
	if err := t.apply(ctx, "start-pending", id, patch); err != nil {
		return nil, err
	}
	t.logger.Info("pending entry started",
		logging.String("id", id),
		logging.String("start_date", entry.FormatDate(start)))
	return t.Get(ctx, id)
}

// UpdateRequest declares the fields an update touches. Nil fields are
// left alone; a pointer to "" clears the field where clearing is
// meaningful (dates, rating, status, cover).
type UpdateRequest struct {
	Title      *string
	MediaType  *string
	StartDate  *string
	FinishDate *string
	Rating     *string
	HypeRating *int
	Status     *string
	Tags       *[]string
	CoverURL   *string
}

// IsZero reports whether the request declares no changes.
func (r UpdateRequest) IsZero() bool {
	return r.Title == nil && r.MediaType == nil && r.StartDate == nil &&
		r.FinishDate == nil && r.Rating == nil && r.HypeRating == nil &&
		r.Status == nil && r.Tags == nil && r.CoverURL == nil
}

// Update validates the merged result of the stored entry and the
// request, then applies only the requested fields.
func (t *Tracker) Update(ctx context.Context, id string, req UpdateRequest) (*entry.Entry, error) {
	if req.IsZero() {
		return nil, services.Wrap(services.ErrValidation, component, "update", "no fields to update", nil)
	}
	current, err := t.load(ctx, "update", id)
	if err != nil {
		return nil, err
	}

	draft := mergedDraft(current, req)
	if err := draft.Validate(); err != nil {
		return nil, services.Wrap(services.ErrValidation, component, "update", "invalid update", err)
	}

	patch, err := buildPatch(req)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, component, "update", "invalid update", err)
	}
	if err := t.apply(ctx, "update", id, patch); err != nil {
		return nil, err
	}
	t.logger.Info("entry updated", logging.String("id", id))
	return t.Get(ctx, id)
}

// Get loads one entry. A blank stored status is inferred on read and
// never written back.
func (t *Tracker) Get(ctx context.Context, id string) (*entry.Entry, error) {
	return t.load(ctx, "get", id)
}

// Filter narrows List results.
type Filter struct {
	Statuses   []entry.Status
	MediaTypes []entry.MediaType
}

// List returns entries ordered by creation time. Status filtering
// happens after inference so blank-status rows match their inferred
// status.
func (t *Tracker) List(ctx context.Context, filter Filter) ([]*entry.Entry, error) {
	rows, err := t.store.List(ctx, store.Filter{MediaTypes: filter.MediaTypes})
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, component, "list", "list entries", err)
	}
	matched := make([]*entry.Entry, 0, len(rows))
	for _, row := range rows {
		e := row.Clone()
		e.Status = entry.InferStatus(e.Status, e.StartDate, e.FinishDate, e.Rating)
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, e.Status) {
			continue
		}
		matched = append(matched, e)
	}
	return matched, nil
}

// Delete removes an entry. A missing id is a terminal error.
func (t *Tracker) Delete(ctx context.Context, id string) error {
	deleted, err := t.store.Delete(ctx, id)
	if err != nil {
		return services.Wrap(services.ErrTransient, component, "delete", "delete entry", err)
	}
	if !deleted {
		return services.Wrap(services.ErrNotFound, component, "delete", "entry "+id, nil)
	}
	t.logger.Info("entry deleted", logging.String("id", id))
	return nil
}

// load fetches one entry and applies read-time status inference to a
// snapshot, leaving the stored row untouched.
func (t *Tracker) load(ctx context.Context, operation, id string) (*entry.Entry, error) {
	row, err := t.store.GetByID(ctx, id)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, component, operation, "load entry", err)
	}
	if row == nil {
		return nil, services.Wrap(services.ErrNotFound, component, operation, "entry "+id, nil)
	}
	e := row.Clone()
	e.Status = entry.InferStatus(e.Status, e.StartDate, e.FinishDate, e.Rating)
	return e, nil
}

func (t *Tracker) apply(ctx context.Context, operation, id string, patch store.Patch) error {
	applied, err := t.store.Apply(ctx, id, patch)
	if err != nil {
		return services.Wrap(services.ErrTransient, component, operation, "apply patch", err)
	}
	if !applied {
		return services.Wrap(services.ErrNotFound, component, operation, "entry "+id, nil)
	}
	return nil
}

// attachCover stores the resolved envelope on the entry. Encoding
// failures leave the entry without metadata rather than failing the
// operation.
func (t *Tracker) attachCover(ctx context.Context, e *entry.Entry, env metadata.Envelope) {
	e.CoverURL = env.CoverURL
	encoded, err := env.EncodeJSON()
	if err != nil {
		t.logger.Warn("metadata envelope not encodable",
			logging.String("id", e.ID),
			logging.Error(err))
		return
	}
	e.MetadataJSON = encoded
}

// mergedDraft overlays the request on the stored entry so validation
// sees the state the update would produce.
func mergedDraft(current *entry.Entry, req UpdateRequest) entry.Draft {
	draft := entry.Draft{
		Title:      current.Title,
		MediaType:  string(current.MediaType),
		StartDate:  entry.FormatDate(current.StartDate),
		FinishDate: entry.FormatDate(current.FinishDate),
		Rating:     current.Rating.String(),
		HypeRating: current.HypeRating,
		Status:     string(current.Status),
		Tags:       current.Tags,
	}
	if req.Title != nil {
		draft.Title = *req.Title
	}
	if req.MediaType != nil {
		draft.MediaType = *req.MediaType
	}
	if req.StartDate != nil {
		draft.StartDate = *req.StartDate
	}
	if req.FinishDate != nil {
		draft.FinishDate = *req.FinishDate
	}
	if req.Rating != nil {
		draft.Rating = *req.Rating
	}
	if req.HypeRating != nil {
		draft.HypeRating = *req.HypeRating
	}
	if req.Status != nil {
		draft.Status = *req.Status
	}
	if req.Tags != nil {
		draft.Tags = *req.Tags
	}
	return draft
}

// buildPatch translates a validated request into a store patch.
func buildPatch(req UpdateRequest) (store.Patch, error) {
	var patch store.Patch
	if req.Title != nil {
		patch.Title = req.Title
	}
	if req.MediaType != nil {
		mediaType, _ := entry.ParseMediaType(*req.MediaType)
		patch.MediaType = &mediaType
	}
	if req.StartDate != nil {
		start, err := entry.ParseDate(*req.StartDate)
		if err != nil {
			return store.Patch{}, err
		}
		patch.StartDate = &store.DateChange{Value: start}
	}
	if req.FinishDate != nil {
		finish, err := entry.ParseDate(*req.FinishDate)
		if err != nil {
			return store.Patch{}, err
		}
		patch.FinishDate = &store.DateChange{Value: finish}
	}
	if req.Rating != nil {
		rating, err := entry.ParseRating(*req.Rating)
		if err != nil {
			return store.Patch{}, err
		}
		patch.Rating = &rating
	}
	if req.HypeRating != nil {
		patch.HypeRating = req.HypeRating
	}
	if req.Status != nil {
		// An empty status clears the stored value so read-time
		// inference takes over again.
		status := entry.Status("")
		if *req.Status != "" {
			parsed, ok := entry.ParseStatus(*req.Status)
			if !ok {
				return store.Patch{}, errors.New("unknown status " + *req.Status)
			}
			status = parsed
		}
		patch.Status = &status
	}
	if req.Tags != nil {
		patch.Tags = req.Tags
	}
	if req.CoverURL != nil {
		patch.CoverURL = req.CoverURL
	}
	return patch, nil
}

func containsStatus(statuses []entry.Status, status entry.Status) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
