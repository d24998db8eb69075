package tracker

import (
	"context"

	"shelf/internal/entry"
	"shelf/internal/logging"
	"shelf/internal/metadata"
	"shelf/internal/services"
	"shelf/internal/store"
)

// RequestNewCover runs the alternative resolution path for one entry
// and stores the result. Only the cover fields are written; every
// other column is frozen for the duration of the operation.
func (t *Tracker) RequestNewCover(ctx context.Context, id string) (*entry.Entry, error) {
	current, err := t.load(ctx, "request-new-cover", id)
	if err != nil {
		return nil, err
	}
	env := t.resolver.ResolveAlternative(ctx, current.Title, current.MediaType)
	if err := t.applyCover(ctx, "request-new-cover", id, env); err != nil {
		return nil, err
	}
	t.logger.Info("cover refreshed",
		logging.String("id", id),
		logging.String("source", env.Source))
	return t.Get(ctx, id)
}

// FallbackToPlaceholder replaces an entry's cover with a synthesized
// placeholder, bypassing all providers.
func (t *Tracker) FallbackToPlaceholder(ctx context.Context, id string) (*entry.Entry, error) {
	current, err := t.load(ctx, "fallback-placeholder", id)
	if err != nil {
		return nil, err
	}
	env := t.resolver.Placeholder(current.Title, current.MediaType)
	if err := t.applyCover(ctx, "fallback-placeholder", id, env); err != nil {
		return nil, err
	}
	t.logger.Info("cover replaced with placeholder", logging.String("id", id))
	return t.Get(ctx, id)
}

// applyCover writes a restricted patch carrying only cover_url and
// metadata_json.
func (t *Tracker) applyCover(ctx context.Context, operation, id string, env metadata.Envelope) error {
	encoded, err := env.EncodeJSON()
	if err != nil {
		return services.Wrap(services.ErrTransient, component, operation, "encode envelope", err)
	}
	patch := store.Patch{
		CoverURL:     &env.CoverURL,
		MetadataJSON: &encoded,
	}
	return t.apply(ctx, operation, id, patch)
}

// Repair outcomes.
const (
	RepairOutcomeRepaired = "repaired"
	RepairOutcomeSkipped  = "skipped"
	RepairOutcomeFailed   = "failed"
)

// RepairResult records what happened to one entry during a batch
// repair.
type RepairResult struct {
	ID      string
	Title   string
	Outcome string
	Detail  string
}

// RepairReport summarizes a batch cover repair.
type RepairReport struct {
	Results []RepairResult
}

// Counts tallies results per outcome.
func (r RepairReport) Counts() (repaired, skipped, failed int) {
	for _, result := range r.Results {
		switch result.Outcome {
		case RepairOutcomeRepaired:
			repaired++
		case RepairOutcomeSkipped:
			skipped++
		case RepairOutcomeFailed:
			failed++
		}
	}
	return repaired, skipped, failed
}

// RepairCovers walks every entry strictly in order and re-resolves
// covers that fail the quality predicate. Per-entry failures are
// recorded in the report and never abort the batch.
func (t *Tracker) RepairCovers(ctx context.Context) (RepairReport, error) {
	rows, err := t.store.List(ctx, store.Filter{})
	if err != nil {
		return RepairReport{}, services.Wrap(services.ErrTransient, component, "repair-covers", "list entries", err)
	}

	report := RepairReport{Results: make([]RepairResult, 0, len(rows))}
	for _, e := range rows {
		report.Results = append(report.Results, t.repairOne(ctx, e))
	}
	repaired, skipped, failed := report.Counts()
	t.logger.Info("cover repair finished",
		logging.Int("repaired", repaired),
		logging.Int("skipped", skipped),
		logging.Int("failed", failed))
	return report, nil
}

func (t *Tracker) repairOne(ctx context.Context, e *entry.Entry) RepairResult {
	result := RepairResult{ID: e.ID, Title: e.Title}

	reason := metadata.LowQualityReason(e.CoverURL)
	if reason == "" {
		result.Outcome = RepairOutcomeSkipped
		result.Detail = "cover acceptable"
		return result
	}

	env := t.resolver.Resolve(ctx, e.Title, e.MediaType)
	if !env.HasCover() {
		result.Outcome = RepairOutcomeFailed
		result.Detail = "no cover resolved (" + reason + ")"
		return result
	}
	if env.CoverURL == e.CoverURL {
		result.Outcome = RepairOutcomeSkipped
		result.Detail = "resolved cover unchanged"
		return result
	}
	if err := t.applyCover(ctx, "repair-covers", e.ID, env); err != nil {
		result.Outcome = RepairOutcomeFailed
		result.Detail = err.Error()
		return result
	}
	result.Outcome = RepairOutcomeRepaired
	result.Detail = "cover from " + env.Source
	return result
}
