package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/goccy/go-json"
	"github.com/moodbuster/moodbuster/color"
	"github.com/moodbuster/moodbuster/key"
	"github.com/moodbuster/moodbuster/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a registered configuration entry with its factory value.
type Field struct {
	Key         string
	Value       any
	Description string
	Secret      bool
}

// Pretty returns a colored, multi-line description of the field.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the primary environment variable name for this field.
func (f *Field) Env() string {
	return envName(f.Key)
}

// MarshalJSON includes the current and default values. Secrets are masked.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
		Env         string `json:"env"`
	}{
		Key:         f.Key,
		Value:       f.current(),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Env:         f.Env(),
	})
}

func (f *Field) current() any {
	v := viper.Get(f.Key)
	if f.Secret {
		return Mask(fmt.Sprint(v))
	}
	return v
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Mask hides all but the last four characters of a secret.
func Mask(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}

// Default holds every registered field keyed by its dotted name.
var Default = make(map[string]Field)

// EnvExposed lists keys bound to environment variables.
var EnvExposed []string

// EnvAliases maps a key to additional, unprefixed environment names that are also honoured.
var EnvAliases = map[string][]string{
	key.TMDBAPIKey:        {"TMDB_API_KEY"},
	key.RapidAPIKey:       {"RAPIDAPI_KEY"},
	key.IGDBClientID:      {"IGDB_CLIENT_ID", "TWITCH_CLIENT_ID"},
	key.IGDBAccessToken:   {"IGDB_ACCESS_TOKEN"},
	key.GoogleBooksAPIKey: {"GOOGLE_BOOKS_API_KEY"},
}

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	secret := func(k, desc string) {
		register(k, "", desc)
		f := Default[k]
		f.Secret = true
		Default[k] = f
	}

	secret(key.TMDBAPIKey, "TMDB v3 API key, used for movies, TV shows and anime")
	secret(key.RapidAPIKey, "RapidAPI key, used for Spotify (music, playlists, podcasts) and Tasty (food, drinks)")
	secret(key.IGDBClientID, "Twitch client ID for the IGDB games API")
	secret(key.IGDBAccessToken, "Twitch app access token for the IGDB games API")
	secret(key.GoogleBooksAPIKey, "Google Books API key.\nOptional, anonymous requests work with a lower quota")

	register(key.TMDBLanguage, "en-US", "Language passed to TMDB")
	register(key.GoogleBooksCountry, "", "Two letter country code passed to Google Books.\nEmpty lets the API guess from the IP")

	register(key.TMDBBaseURL, "https://api.themoviedb.org/3", "TMDB API base URL")
	register(key.IGDBBaseURL, "https://api.igdb.com/v4", "IGDB API base URL")
	register(key.SpotifyBaseURL, "https://spotify23.p.rapidapi.com", "Spotify (RapidAPI) base URL")
	register(key.TastyBaseURL, "https://tasty.p.rapidapi.com", "Tasty (RapidAPI) base URL")
	register(key.GoogleBooksBaseURL, "https://www.googleapis.com/books/v1", "Google Books API base URL")

	register(key.SuggestLimit, 20, "Maximum number of suggestions kept after a fetch.\n0 keeps everything")
	register(key.SuggestDetailWorkers, 6, "How many TMDB detail lookups run at once")
	register(key.SuggestTimeout, 30, "Seconds allowed for a whole fetch chain")

	register(key.NetworkRequestsPerSecond, 8, "Requests per second allowed against a single catalog host")
	register(key.NetworkBurst, 8, "Burst size for the per-host request limiter")
	register(key.NetworkBreakerFailures, 5, "Consecutive failures before requests to a host are short-circuited")
	register(key.NetworkBreakerCooldown, 30, "Seconds a tripped host stays short-circuited")

	register(key.DefaultMediaType, "", "Media type preselected when none is given.\nType \"moodbuster types\" to list them")
	register(key.DefaultMood, "", "Mood preselected when none is given.\nType \"moodbuster moods\" to list them")

	register(key.HistorySaveOnOpen, true, "Save a suggestion to your picks when its link is opened")
	register(key.OpenBrowser, "", "Application links are opened with.\nEmpty uses the system default")
	register(key.MoodsShowSuggestions, true, "Show moods you pick often first")
	register(key.MiniShowFields, true, "Print every card field in mini mode, not only title and description")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")

	register(key.TUIItemSpacing, 1, "Spacing between items in the TUI")
	register(key.TUIShowURLs, true, "Show links on suggestion cards")
	register(key.TUIWrapWidth, 80, "Maximum width of card descriptions")

	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")

	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"bold":   style.Bold,
	"purple": style.Fg(color.Purple),
	"blue":   style.Fg(color.Blue),
	"cyan":   style.Fg(color.Cyan),
	"value": func(f *Field) any {
		return f.current()
	},
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
