// Package media defines the media categories a user can ask for and the
// display record every catalog result is normalized into.
package media

import (
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// Type is a media category as shown to the user.
type Type string

const (
	Movie    Type = "Movie"
	TVShow   Type = "TV Show"
	Anime    Type = "Anime"
	Music    Type = "Music"
	Book     Type = "Book"
	Food     Type = "Food"
	Drink    Type = "Drink"
	Playlist Type = "Playlist"
	Podcast  Type = "Podcast"
	Game     Type = "Video Game"
)

var types = []Type{Movie, TVShow, Anime, Music, Book, Food, Drink, Playlist, Podcast, Game}

// Types returns every category in menu order.
func Types() []Type {
	return append([]Type(nil), types...)
}

func (t Type) String() string {
	return string(t)
}

// Noun is the lower-case form used inside sentences.
func (t Type) Noun() string {
	return strings.ToLower(string(t))
}

// Blurb is a one-line description for menus.
func (t Type) Blurb() string {
	switch t {
	case Movie:
		return "Films from TMDB"
	case TVShow:
		return "Series from TMDB"
	case Anime:
		return "Animated series from TMDB"
	case Music:
		return "Tracks from Spotify"
	case Book:
		return "Books from Google Books"
	case Food:
		return "Recipes from Tasty"
	case Drink:
		return "Drink recipes from Tasty"
	case Playlist:
		return "Playlists from Spotify"
	case Podcast:
		return "Shows from Spotify"
	case Game:
		return "Games from IGDB"
	default:
		return ""
	}
}

var aliases = map[string]Type{
	"movie": Movie, "movies": Movie, "film": Movie, "films": Movie,
	"tv": TVShow, "tv show": TVShow, "tv shows": TVShow, "tvshow": TVShow, "show": TVShow, "shows": TVShow, "series": TVShow,
	"anime": Anime,
	"music": Music, "track": Music, "tracks": Music, "song": Music, "songs": Music,
	"book": Book, "books": Book,
	"food": Food, "recipe": Food, "recipes": Food, "dish": Food,
	"drink": Drink, "drinks": Drink, "beverage": Drink,
	"playlist": Playlist, "playlists": Playlist,
	"podcast": Podcast, "podcasts": Podcast,
	"game": Game, "games": Game, "video game": Game, "video games": Game, "videogame": Game,
}

// ParseType resolves a label or alias case-insensitively.
func ParseType(s string) (Type, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.Join(strings.Fields(strings.NewReplacer("-", " ", "_", " ").Replace(normalized)), " ")

	if t, ok := aliases[normalized]; ok {
		return t, nil
	}

	closest := lo.MinBy(lo.Keys(aliases), func(a, b string) bool {
		return levenshtein.Distance(normalized, a) < levenshtein.Distance(normalized, b)
	})
	return "", fmt.Errorf("unknown media type %q, did you mean %q?", s, aliases[closest])
}
