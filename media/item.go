package media

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Item is the display record every catalog answer is normalized into.
// Zero values mean "the catalog did not say".
type Item struct {
	ID          string `json:"id"`
	Type        Type   `json:"type" jsonschema:"enum=Movie,enum=TV Show,enum=Anime,enum=Music,enum=Book,enum=Food,enum=Drink,enum=Playlist,enum=Podcast,enum=Video Game"`
	Catalog     string `json:"catalog"`
	Mood        string `json:"mood,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	URL         string `json:"url,omitempty"`
	ReleaseDate string `json:"release_date,omitempty"`

	Rating      float64 `json:"rating,omitempty"`
	RatingScale int     `json:"rating_scale,omitempty"`
	Genres      []string `json:"genres,omitempty"`

	// screen
	RuntimeMinutes int      `json:"runtime_minutes,omitempty"`
	Seasons        int      `json:"seasons,omitempty"`
	Episodes       int      `json:"episodes,omitempty"`
	Director       string   `json:"director,omitempty"`
	Cast           []string `json:"cast,omitempty"`
	Creators       []string `json:"creators,omitempty"`

	// books
	Authors    []string `json:"authors,omitempty"`
	Categories []string `json:"categories,omitempty"`

	// audio
	Artists    []string `json:"artists,omitempty"`
	Album      string   `json:"album,omitempty"`
	DurationMs int      `json:"duration_ms,omitempty"`
	Explicit   *bool    `json:"explicit,omitempty"`
	PreviewURL string   `json:"preview_url,omitempty"`
	Publisher  string   `json:"publisher,omitempty"`
	Owner      string   `json:"owner,omitempty"`
	ShowKind   string   `json:"show_kind,omitempty"`
	MediaKind  string   `json:"media_kind,omitempty"`

	// games
	Platforms []string `json:"platforms,omitempty"`
	Developer string   `json:"developer,omitempty"`
	GameModes []string `json:"game_modes,omitempty"`

	// recipes
	TotalMinutes int      `json:"total_minutes,omitempty"`
	Servings     int      `json:"servings,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	Ingredients  string   `json:"ingredients,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
}

// Field is one labelled row of a suggestion card.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// MaxTags is how many recipe tags a card shows.
const MaxTags = 3

// DateLabel names the release date row for the item's type.
func (i *Item) DateLabel() string {
	switch i.Type {
	case Book:
		return "Published Date"
	case TVShow:
		return "First Air Date"
	case Music:
		return "Release Year"
	default:
		return "Release Date"
	}
}

// LinkLabel names the external link for the item's type.
func (i *Item) LinkLabel() string {
	switch i.Type {
	case Music, Playlist, Podcast:
		return "Open in Spotify"
	case Book:
		return "More Info"
	default:
		return "Link"
	}
}

// Fields renders the card rows in display order. Empty values are skipped.
func (i *Item) Fields() []Field {
	var fields []Field
	add := func(label, value string) {
		if value != "" {
			fields = append(fields, Field{Label: label, Value: value})
		}
	}
	joined := func(values []string) string {
		return strings.Join(values, ", ")
	}
	count := func(n int) string {
		if n <= 0 {
			return ""
		}
		return strconv.Itoa(n)
	}

	switch i.Type {
	case Game:
		add("Platforms", joined(i.Platforms))
		add("Developer", i.Developer)
		add("Publisher", i.Publisher)
		add("Game Mode", joined(i.GameModes))
	case Podcast:
		add("Publisher", i.Publisher)
		add("Type", i.ShowKind)
		add("Media Type", i.MediaKind)
	case Playlist:
		add("Owner", i.Owner)
	case Music:
		add("Artist(s)", joined(i.Artists))
		add("Album", i.Album)
		if i.DurationMs > 0 {
			add("Duration", FormatDuration(i.DurationMs))
		}
		if i.Explicit != nil {
			add("Explicit", yesNo(*i.Explicit))
		}
	case Food, Drink:
		if i.TotalMinutes > 0 {
			add("Total Time", fmt.Sprintf("%d minutes", i.TotalMinutes))
		}
		add("Servings", count(i.Servings))
		add("Tags", joined(LimitTags(i.Tags)))
		add("Ingredients", i.Ingredients)
		add("Instructions", i.Instructions)
	}

	if i.Type != Food && i.Type != Drink {
		add(i.DateLabel(), i.ReleaseDate)
	}

	if i.Type == Book {
		add("Author(s)", joined(i.Authors))
		add("Categories", joined(i.Categories))
	}

	if i.Rating > 0 {
		add("Rating", FormatRating(i.Rating, i.RatingScale))
	}

	add("Genres", joined(i.Genres))

	if i.RuntimeMinutes > 0 {
		add("Runtime", fmt.Sprintf("%d minutes", i.RuntimeMinutes))
	}

	if i.Type == TVShow || i.Type == Anime {
		add("Seasons", count(i.Seasons))
		add("Episodes", count(i.Episodes))
	}

	add("Created By", joined(i.Creators))
	add("Director", i.Director)
	add("Cast", joined(i.Cast))

	return fields
}

// FormatDuration renders milliseconds as m:ss.
func FormatDuration(ms int) string {
	seconds := int(math.Round(float64(ms) / 1000))
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatRating renders a score with one decimal against its scale, e.g. 7.3/10.
func FormatRating(value float64, scale int) string {
	if scale <= 0 {
		return fmt.Sprintf("%.1f", value)
	}
	return fmt.Sprintf("%.1f/%d", value, scale)
}

// LimitTags keeps the first MaxTags tags.
func LimitTags(tags []string) []string {
	if len(tags) > MaxTags {
		return tags[:MaxTags]
	}
	return tags
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
