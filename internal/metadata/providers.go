package metadata

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"shelf/internal/metadata/googlebooks"
	"shelf/internal/metadata/openalex"
	"shelf/internal/metadata/openlibrary"
	"shelf/internal/metadata/rawg"
	"shelf/internal/metadata/tmdb"
)

// Provider fetches one metadata candidate for a title from an
// upstream catalog. A provider returning an empty envelope without an
// error means "nothing found"; the resolver moves to the next tier
// either way.
type Provider interface {
	Source() string
	FetchCandidate(ctx context.Context, title string) (Envelope, error)
}

// Narrow views over the concrete clients so provider adapters stay
// testable against stubs.
type bookCatalog interface {
	Search(ctx context.Context, query string) ([]googlebooks.Volume, error)
}

type titleIndex interface {
	SearchMovie(ctx context.Context, query string) (*tmdb.Response, error)
	SearchTV(ctx context.Context, query string) (*tmdb.Response, error)
	PosterURL(result tmdb.Result) string
}

type gameCatalog interface {
	Search(ctx context.Context, query string) ([]rawg.Game, error)
}

type citationGraph interface {
	SearchWorks(ctx context.Context, query string) ([]openalex.Work, error)
}

type openCatalog interface {
	SearchByTitle(ctx context.Context, title string) ([]openlibrary.Doc, error)
	CoverURL(doc openlibrary.Doc) string
}

// bookProvider scores catalog volumes against the entry title and
// picks the best acceptable cover link.
type bookProvider struct {
	catalog bookCatalog
}

func (p *bookProvider) Source() string { return SourceGoogleBooks }

func (p *bookProvider) FetchCandidate(ctx context.Context, title string) (Envelope, error) {
	volumes, err := p.catalog.Search(ctx, title)
	if err != nil {
		return Envelope{}, err
	}
	best, ok := selectBestVolume(title, volumes)
	if !ok {
		return Envelope{}, nil
	}
	// The cover may come up empty; the envelope still carries the
	// descriptive fields so a later tier only has to supply the image.
	cover, _ := bestCoverFromVolume(best)
	return bookEnvelope(best, cover), nil
}

// fetchExhaustive is the retry path: three query formulations, every
// candidate, every image size, first link passing the quality
// predicate wins.
func (p *bookProvider) fetchExhaustive(ctx context.Context, title string) (Envelope, error) {
	queries := []string{
		fmt.Sprintf("intitle:%q", title),
		title,
		strings.ReplaceAll(title, " ", "+"),
	}
	for _, query := range queries {
		volumes, err := p.catalog.Search(ctx, query)
		if err != nil {
			continue
		}
		for _, volume := range volumes {
			for _, link := range volume.LinksBySize() {
				enhanced := enhanceCoverURL(link)
				if !IsLowQualityCover(enhanced) {
					return bookEnvelope(volume, enhanced), nil
				}
			}
		}
	}
	return Envelope{}, nil
}

// titleProvider serves films and series from the title database.
type titleProvider struct {
	index titleIndex
	tv    bool
}

func (p *titleProvider) Source() string { return SourceTMDB }

func (p *titleProvider) FetchCandidate(ctx context.Context, title string) (Envelope, error) {
	search := p.index.SearchMovie
	if p.tv {
		search = p.index.SearchTV
	}
	resp, err := search(ctx, title)
	if err != nil {
		return Envelope{}, err
	}
	if resp == nil || len(resp.Results) == 0 {
		return Envelope{}, nil
	}
	result := resp.Results[0]
	env := DefaultEnvelope()
	env.CoverURL = p.index.PosterURL(result)
	env.Source = SourceTMDB
	if year := result.ReleaseYear(); year != "" {
		env.AdditionalInfo["releaseYear"] = year
	}
	if result.Overview != "" {
		env.AdditionalInfo["overview"] = result.Overview
	}
	if result.VoteAverage > 0 {
		env.AdditionalInfo["voteAverage"] = strconv.FormatFloat(result.VoteAverage, 'f', 1, 64)
	}
	return env, nil
}

// gameProvider serves videogames from the game catalog.
type gameProvider struct {
	catalog gameCatalog
}

func (p *gameProvider) Source() string { return SourceRAWG }

func (p *gameProvider) FetchCandidate(ctx context.Context, title string) (Envelope, error) {
	games, err := p.catalog.Search(ctx, title)
	if err != nil {
		return Envelope{}, err
	}
	if len(games) == 0 {
		return Envelope{}, nil
	}
	game := games[0]
	env := DefaultEnvelope()
	env.CoverURL = game.BackgroundImage
	env.Source = SourceRAWG
	if year := game.ReleaseYear(); year != "" {
		env.AdditionalInfo["releaseYear"] = year
	}
	if game.Rating > 0 {
		env.AdditionalInfo["rating"] = strconv.FormatFloat(game.Rating, 'f', 2, 64)
	}
	if game.Metacritic > 0 {
		env.AdditionalInfo["metacritic"] = strconv.Itoa(game.Metacritic)
	}
	return env, nil
}

// paperProvider serves papers from the citation graph. The graph has
// no cover art, so its envelopes are info-only and the cover always
// comes from a later tier.
type paperProvider struct {
	graph citationGraph
}

func (p *paperProvider) Source() string { return SourceOpenAlex }

func (p *paperProvider) FetchCandidate(ctx context.Context, title string) (Envelope, error) {
	works, err := p.graph.SearchWorks(ctx, title)
	if err != nil {
		return Envelope{}, err
	}
	if len(works) == 0 {
		return Envelope{}, nil
	}
	work := works[0]
	env := DefaultEnvelope()
	env.Source = SourceOpenAlex
	if authors := work.AuthorNames(); len(authors) > 0 {
		env.AdditionalInfo["authors"] = strings.Join(authors, ", ")
	}
	if work.PublicationYear > 0 {
		env.AdditionalInfo["publicationYear"] = strconv.Itoa(work.PublicationYear)
	}
	if work.DOI != "" {
		env.AdditionalInfo["doi"] = work.DOI
	}
	if work.CitedByCount > 0 {
		env.AdditionalInfo["citedByCount"] = strconv.FormatInt(work.CitedByCount, 10)
	}
	return env, nil
}

// openCatalogProvider serves book covers from the open catalog via
// its deterministic cover URL scheme.
type openCatalogProvider struct {
	catalog openCatalog
}

func (p *openCatalogProvider) Source() string { return SourceOpenLibrary }

func (p *openCatalogProvider) FetchCandidate(ctx context.Context, title string) (Envelope, error) {
	docs, err := p.catalog.SearchByTitle(ctx, title)
	if err != nil {
		return Envelope{}, err
	}
	for _, doc := range docs {
		cover := p.catalog.CoverURL(doc)
		if cover == "" {
			continue
		}
		env := DefaultEnvelope()
		env.CoverURL = cover
		env.Source = SourceOpenLibrary
		if len(doc.AuthorName) > 0 {
			env.AdditionalInfo["authors"] = strings.Join(doc.AuthorName, ", ")
		}
		if doc.FirstPublishYear > 0 {
			env.AdditionalInfo["firstPublishYear"] = strconv.Itoa(doc.FirstPublishYear)
		}
		return env, nil
	}
	return Envelope{}, nil
}
