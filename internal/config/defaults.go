package config

const (
	defaultDataDir               = "~/.local/share/shelf"
	defaultLogDir                = "~/.local/share/shelf/logs"
	defaultGoogleBooksBaseURL    = "https://www.googleapis.com/books/v1"
	defaultGoogleBooksMaxResults = 10
	defaultTMDBBaseURL           = "https://api.themoviedb.org/3"
	defaultTMDBImageBaseURL      = "https://image.tmdb.org/t/p/w500"
	defaultTMDBLanguage          = "en-US"
	defaultRAWGBaseURL           = "https://api.rawg.io/api"
	defaultOpenAlexBaseURL       = "https://api.openalex.org"
	defaultOpenLibraryBaseURL    = "https://openlibrary.org"
	defaultOpenLibraryCoversURL  = "https://covers.openlibrary.org"
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// defaultPlaceholderServices is a preference list; the resolver only
// ever uses the first entry, the rest document known alternatives.
var defaultPlaceholderServices = []string{
	"https://placehold.co",
	"https://dummyimage.com",
	"https://via.placeholder.com",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		GoogleBooks: GoogleBooks{
			BaseURL:    defaultGoogleBooksBaseURL,
			MaxResults: defaultGoogleBooksMaxResults,
		},
		TMDB: TMDB{
			BaseURL:      defaultTMDBBaseURL,
			ImageBaseURL: defaultTMDBImageBaseURL,
			Language:     defaultTMDBLanguage,
		},
		RAWG: RAWG{
			BaseURL: defaultRAWGBaseURL,
		},
		OpenAlex: OpenAlex{
			BaseURL: defaultOpenAlexBaseURL,
		},
		OpenLibrary: OpenLibrary{
			BaseURL:       defaultOpenLibraryBaseURL,
			CoversBaseURL: defaultOpenLibraryCoversURL,
		},
		Placeholder: Placeholder{
			Services: append([]string{}, defaultPlaceholderServices...),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
