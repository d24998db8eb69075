package metadata

import (
	"context"
	"log/slog"

	"shelf/internal/config"
	"shelf/internal/entry"
	"shelf/internal/logging"
	"shelf/internal/metadata/googlebooks"
	"shelf/internal/metadata/openalex"
	"shelf/internal/metadata/openlibrary"
	"shelf/internal/metadata/rawg"
	"shelf/internal/metadata/tmdb"
)

// Resolver maps (title, media type) to a cover URL and metadata
// envelope. All provider failures degrade to the next fallback tier;
// Resolve and ResolveAlternative never return an error.
type Resolver struct {
	primaries   map[entry.MediaType]Provider
	books       *bookProvider
	openCatalog Provider
	placeholder *PlaceholderSynth
	logger      *slog.Logger
}

// New builds a resolver from configuration. Providers whose API key
// is missing are skipped; their media types degrade straight to the
// placeholder tier.
func New(cfg *config.Config, logger *slog.Logger) (*Resolver, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.NewComponentLogger(logger, "metadata")

	r := &Resolver{
		primaries:   map[entry.MediaType]Provider{},
		placeholder: NewPlaceholderSynth(cfg.Placeholder.Services),
		logger:      logger,
	}

	booksClient, err := googlebooks.New(cfg.GoogleBooks.BaseURL, cfg.GoogleBooks.APIKey, cfg.GoogleBooks.MaxResults)
	if err != nil {
		return nil, err
	}
	r.books = &bookProvider{catalog: booksClient}
	r.primaries[entry.TypeBook] = r.books

	if cfg.TMDB.APIKey != "" {
		titleClient, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.ImageBaseURL, cfg.TMDB.Language)
		if err != nil {
			return nil, err
		}
		r.primaries[entry.TypeFilm] = &titleProvider{index: titleClient}
		r.primaries[entry.TypeSeries] = &titleProvider{index: titleClient, tv: true}
	} else {
		logger.Info("tmdb api key not configured, films and series use placeholder covers")
	}

	if cfg.RAWG.APIKey != "" {
		gameClient, err := rawg.New(cfg.RAWG.APIKey, cfg.RAWG.BaseURL)
		if err != nil {
			return nil, err
		}
		r.primaries[entry.TypeVideogame] = &gameProvider{catalog: gameClient}
	} else {
		logger.Info("rawg api key not configured, videogames use placeholder covers")
	}

	graphClient, err := openalex.New(cfg.OpenAlex.BaseURL, cfg.OpenAlex.MailTo)
	if err != nil {
		return nil, err
	}
	r.primaries[entry.TypePaper] = &paperProvider{graph: graphClient}

	openClient, err := openlibrary.New(cfg.OpenLibrary.BaseURL, cfg.OpenLibrary.CoversBaseURL)
	if err != nil {
		return nil, err
	}
	r.openCatalog = &openCatalogProvider{catalog: openClient}

	return r, nil
}

// tier is one step of a fallback chain.
type tier struct {
	source string
	fetch  func(ctx context.Context) (Envelope, error)
}

func providerTier(p Provider, title string) tier {
	return tier{
		source: p.Source(),
		fetch: func(ctx context.Context) (Envelope, error) {
			return p.FetchCandidate(ctx, title)
		},
	}
}

func (r *Resolver) placeholderTier(title string, mediaType entry.MediaType) tier {
	return tier{
		source: SourcePlaceholder,
		fetch: func(context.Context) (Envelope, error) {
			return r.placeholder.Envelope(title, mediaType), nil
		},
	}
}

// Resolve runs the primary fallback chain for a media type: primary
// provider, open catalog (books only), then placeholder.
func (r *Resolver) Resolve(ctx context.Context, title string, mediaType entry.MediaType) Envelope {
	if !knownMediaType(mediaType) {
		return DefaultEnvelope()
	}
	var tiers []tier
	if primary, ok := r.primaries[mediaType]; ok {
		tiers = append(tiers, providerTier(primary, title))
	}
	if mediaType == entry.TypeBook && r.openCatalog != nil {
		tiers = append(tiers, providerTier(r.openCatalog, title))
	}
	tiers = append(tiers, r.placeholderTier(title, mediaType))
	return r.evaluate(ctx, title, tiers)
}

// ResolveAlternative runs the manual-refresh chain. Books invert the
// primary priority (open catalog first, then an exhaustive catalog
// retry); every other type goes straight to a placeholder. The
// asymmetry is deliberate: only book covers have proven worth a
// second, more expensive pass.
func (r *Resolver) ResolveAlternative(ctx context.Context, title string, mediaType entry.MediaType) Envelope {
	if mediaType != entry.TypeBook {
		return r.Placeholder(title, mediaType)
	}
	var tiers []tier
	if r.openCatalog != nil {
		tiers = append(tiers, providerTier(r.openCatalog, title))
	}
	if r.books != nil {
		tiers = append(tiers, tier{
			source: SourceGoogleBooks,
			fetch: func(ctx context.Context) (Envelope, error) {
				return r.books.fetchExhaustive(ctx, title)
			},
		})
	}
	tiers = append(tiers, r.placeholderTier(title, mediaType))
	return r.evaluate(ctx, title, tiers)
}

// Placeholder synthesizes the placeholder envelope directly,
// bypassing all provider tiers.
func (r *Resolver) Placeholder(title string, mediaType entry.MediaType) Envelope {
	return r.placeholder.Envelope(title, mediaType)
}

// evaluate walks tiers in order until one yields a cover. An
// info-only envelope from an earlier tier (papers have no cover art)
// is remembered and merged with the first cover found later, keeping
// the info tier's provenance.
func (r *Resolver) evaluate(ctx context.Context, title string, tiers []tier) Envelope {
	var infoOnly *Envelope
	for _, t := range tiers {
		env, err := t.fetch(ctx)
		if err != nil {
			r.logger.Debug("metadata tier failed",
				logging.String("source", t.source),
				logging.String("title", title),
				logging.Error(err))
			continue
		}
		if env.HasCover() {
			if infoOnly != nil && !env.HasInfo() {
				infoOnly.CoverURL = env.CoverURL
				return *infoOnly
			}
			return env
		}
		if env.HasInfo() && infoOnly == nil {
			infoOnly = &env
		}
	}
	if infoOnly != nil {
		return *infoOnly
	}
	return DefaultEnvelope()
}

func knownMediaType(mediaType entry.MediaType) bool {
	_, ok := entry.ParseMediaType(string(mediaType))
	return ok
}
