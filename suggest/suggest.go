// Package suggest turns a mood and a media type into a list of suggestions by
// running a fallback chain of catalog queries and normalizing what comes back.
package suggest

import (
	"context"
	"fmt"
	"net/url"

	"github.com/moodbuster/moodbuster/auth"
	"github.com/moodbuster/moodbuster/googlebooks"
	"github.com/moodbuster/moodbuster/igdb"
	"github.com/moodbuster/moodbuster/key"
	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/mood"
	"github.com/moodbuster/moodbuster/provider"
	"github.com/moodbuster/moodbuster/spotify"
	"github.com/moodbuster/moodbuster/tasty"
	"github.com/moodbuster/moodbuster/tmdb"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Catalog interfaces, satisfied by the client packages.
type (
	Screen interface {
		Discover(ctx context.Context, kind tmdb.Kind, params url.Values) ([]*tmdb.Title, error)
		Popular(ctx context.Context, kind tmdb.Kind) ([]*tmdb.Title, error)
		Details(ctx context.Context, kind tmdb.Kind, id int) (*tmdb.Title, error)
	}

	Games interface {
		Games(ctx context.Context, q igdb.Query) ([]*igdb.Game, error)
	}

	Audio interface {
		Search(ctx context.Context, q string, limit int) (*spotify.Results, error)
	}

	Recipes interface {
		Recipes(ctx context.Context, q string) ([]*tasty.Recipe, error)
	}

	Books interface {
		Volumes(ctx context.Context, q string) ([]*googlebooks.Volume, error)
	}
)

// Suggester holds one client per catalog. A nil client means the catalog is
// not configured and its media types fail with ErrNotConfigured.
type Suggester struct {
	Screen  Screen
	Games   Games
	Audio   Audio
	Recipes Recipes
	Books   Books

	// DetailWorkers bounds concurrent TMDB detail lookups.
	DetailWorkers int
	// Limit keeps the first N results, 0 keeps all.
	Limit int
}

// FromConfig builds a Suggester from the configured credentials and endpoints.
func FromConfig() *Suggester {
	s := &Suggester{
		DetailWorkers: viper.GetInt(key.SuggestDetailWorkers),
		Limit:         viper.GetInt(key.SuggestLimit),
	}

	if provider.TMDB.Configured() {
		s.Screen = tmdb.New(
			viper.GetString(key.TMDBBaseURL),
			auth.Get(key.TMDBAPIKey),
			viper.GetString(key.TMDBLanguage),
		)
	}

	if provider.IGDB.Configured() {
		s.Games = igdb.New(
			viper.GetString(key.IGDBBaseURL),
			auth.Get(key.IGDBClientID),
			auth.Get(key.IGDBAccessToken),
		)
	}

	if provider.Spotify.Configured() {
		s.Audio = spotify.New(viper.GetString(key.SpotifyBaseURL), auth.Get(key.RapidAPIKey))
	}

	if provider.Tasty.Configured() {
		s.Recipes = tasty.New(viper.GetString(key.TastyBaseURL), auth.Get(key.RapidAPIKey))
	}

	s.Books = googlebooks.New(
		viper.GetString(key.GoogleBooksBaseURL),
		auth.Get(key.GoogleBooksAPIKey),
		viper.GetString(key.GoogleBooksCountry),
	)

	return s
}

// Suggest fetches suggestions of type t for mood m.
func (s *Suggester) Suggest(ctx context.Context, m mood.Mood, t media.Type) ([]*media.Item, error) {
	if err := s.ready(t); err != nil {
		return nil, err
	}

	profile := mood.ProfileOf(m)

	var (
		items []*media.Item
		err   error
	)

	switch t {
	case media.Movie, media.TVShow, media.Anime:
		items, err = s.screen(ctx, t, profile)
	case media.Game:
		items, err = s.games(ctx, profile)
	case media.Music:
		items, err = s.music(ctx, profile)
	case media.Playlist:
		items, err = s.playlists(ctx, profile)
	case media.Podcast:
		items, err = s.podcasts(ctx, profile)
	case media.Food, media.Drink:
		items, err = s.recipes(ctx, t, m, profile)
	case media.Book:
		items, err = s.books(ctx, profile)
	default:
		return nil, fmt.Errorf("unsupported media type %q", t)
	}

	if err != nil {
		return nil, err
	}

	for _, item := range items {
		item.Mood = m.String()
	}

	return items, nil
}

// SuggestByGenre finds movies of genre g, narrowed by the mood's keywords when possible.
func (s *Suggester) SuggestByGenre(ctx context.Context, m mood.Mood, g mood.Genre) ([]*media.Item, error) {
	if err := s.ready(media.Movie); err != nil {
		return nil, err
	}

	keywords := joinInts(mood.ProfileOf(m).TMDBKeywords, "|")
	base := func() url.Values {
		return url.Values{
			"with_genres": {fmt.Sprint(g.ID)},
			"sort_by":     {"popularity.desc"},
		}
	}

	var steps []step[*tmdb.Title]
	if keywords != "" {
		steps = append(steps, step[*tmdb.Title]{
			name: "genre and keywords",
			run: func(ctx context.Context) ([]*tmdb.Title, error) {
				params := base()
				params["with_keywords"] = []string{keywords}
				return s.Screen.Discover(ctx, tmdb.Movie, params)
			},
		})
	}
	steps = append(steps, step[*tmdb.Title]{
		name: "genre",
		run: func(ctx context.Context) ([]*tmdb.Title, error) {
			return s.Screen.Discover(ctx, tmdb.Movie, base())
		},
	})

	titles, err := runChain(ctx, media.Movie, steps)
	if err != nil {
		return nil, err
	}

	items, err := s.enrich(ctx, media.Movie, s.limit(titles))
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		item.Mood = m.String()
	}

	return items, nil
}

// ready fails fast when t's catalog has no client.
func (s *Suggester) ready(t media.Type) error {
	p, ok := provider.For(t)
	if !ok {
		return fmt.Errorf("unsupported media type %q", t)
	}

	var configured bool
	switch p {
	case provider.TMDB:
		configured = s.Screen != nil
	case provider.IGDB:
		configured = s.Games != nil
	case provider.Spotify:
		configured = s.Audio != nil
	case provider.Tasty:
		configured = s.Recipes != nil
	case provider.GoogleBooks:
		configured = s.Books != nil
	}

	if !configured {
		return notConfigured(p.Name, p.Required)
	}

	return nil
}

// limit keeps the first Limit elements.
func (s *Suggester) limit(items []*tmdb.Title) []*tmdb.Title {
	return firstN(items, s.Limit)
}

func firstN[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}

// shuffled shuffles and then applies the limit.
func shuffled[T any](items []T, n int) []T {
	return firstN(lo.Shuffle(items), n)
}
