// Package key defines the dotted configuration identifiers shared by viper, flags and env bindings.
package key

// Catalog credentials. Each can also live in the system keyring, see the auth package.
const (
	TMDBAPIKey         = "catalog.tmdb.api_key"
	RapidAPIKey        = "catalog.rapidapi.key"
	IGDBClientID       = "catalog.igdb.client_id"
	IGDBAccessToken    = "catalog.igdb.access_token"
	GoogleBooksAPIKey  = "catalog.googlebooks.api_key"
	TMDBLanguage       = "catalog.tmdb.language"
	GoogleBooksCountry = "catalog.googlebooks.country"
)

// Catalog endpoints, overridable for proxies and self-hosted mirrors.
const (
	TMDBBaseURL        = "catalog.tmdb.base_url"
	IGDBBaseURL        = "catalog.igdb.base_url"
	SpotifyBaseURL     = "catalog.spotify.base_url"
	TastyBaseURL       = "catalog.tasty.base_url"
	GoogleBooksBaseURL = "catalog.googlebooks.base_url"
)

// Suggestion fetching.
const (
	SuggestLimit         = "suggest.limit"
	SuggestDetailWorkers = "suggest.detail_workers"
	SuggestTimeout       = "suggest.timeout"
)

// Outbound HTTP behaviour.
const (
	NetworkRequestsPerSecond = "network.requests_per_second"
	NetworkBurst             = "network.burst"
	NetworkBreakerFailures   = "network.breaker_failures"
	NetworkBreakerCooldown   = "network.breaker_cooldown"
)

// Defaults picked when a flag or prompt is left empty.
const (
	DefaultMediaType = "default.media_type"
	DefaultMood      = "default.mood"
)

const (
	HistorySaveOnOpen = "history.save_on_open"
)

const (
	OpenBrowser = "open.browser"
)

const (
	MoodsShowSuggestions = "moods.show_suggestions"
)

const (
	MiniShowFields = "mini.show_fields"
)

const (
	IconsVariant = "icons.variant"
)

// Terminal user interface.
const (
	TUIItemSpacing = "tui.item_spacing"
	TUIShowURLs    = "tui.show_urls"
	TUIWrapWidth   = "tui.wrap_width"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI execution environment.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
