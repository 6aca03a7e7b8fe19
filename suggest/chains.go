package suggest

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/moodbuster/moodbuster/googlebooks"
	"github.com/moodbuster/moodbuster/igdb"
	"github.com/moodbuster/moodbuster/log"
	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/mood"
	"github.com/moodbuster/moodbuster/normalize"
	"github.com/moodbuster/moodbuster/spotify"
	"github.com/moodbuster/moodbuster/tasty"
	"github.com/moodbuster/moodbuster/tmdb"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Page sizes asked from Spotify.
const (
	TrackLimit    = 50
	PlaylistLimit = 10
	PodcastLimit  = 10
)

const (
	popularityDesc = "popularity.desc"
	fallbackBook   = "fiction"
	fallbackDrink  = "drink"
)

func kindOf(t media.Type) tmdb.Kind {
	if t == media.Movie {
		return tmdb.Movie
	}
	return tmdb.TV
}

func joinInts(ids []int, sep string) string {
	return strings.Join(lo.Map(ids, func(id int, _ int) string { return strconv.Itoa(id) }), sep)
}

// screen runs the TMDB chain: keywords and genres, genres, keywords, then popular.
// Anime keeps the anime keyword in every discover step and tries popular anime
// before popular TV.
func (s *Suggester) screen(ctx context.Context, t media.Type, p mood.Profile) ([]*media.Item, error) {
	kind := kindOf(t)
	anime := t == media.Anime
	keywords := joinInts(p.TMDBKeywords, "|")
	genres := joinInts(p.TMDBGenres, ",")
	animeKeyword := strconv.Itoa(mood.AnimeKeyword)

	withKeywords := func(params url.Values, kw string) url.Values {
		switch {
		case anime && kw != "":
			params.Set("with_keywords", kw+","+animeKeyword)
		case anime:
			params.Set("with_keywords", animeKeyword)
		case kw != "":
			params.Set("with_keywords", kw)
		}
		return params
	}

	discover := func(name string, params url.Values) step[*tmdb.Title] {
		return step[*tmdb.Title]{
			name: name,
			run: func(ctx context.Context) ([]*tmdb.Title, error) {
				return s.Screen.Discover(ctx, kind, params)
			},
		}
	}

	both := url.Values{}
	if genres != "" {
		both.Set("with_genres", genres)
	}
	steps := []step[*tmdb.Title]{discover("keywords and genres", withKeywords(both, keywords))}

	if genres != "" {
		steps = append(steps, discover("genres", withKeywords(url.Values{"with_genres": {genres}}, "")))
	}
	if keywords != "" {
		steps = append(steps, discover("keywords", withKeywords(url.Values{}, keywords)))
	}
	if anime {
		steps = append(steps, discover("popular anime", url.Values{
			"with_keywords": {animeKeyword},
			"sort_by":       {popularityDesc},
		}))
	}

	steps = append(steps, step[*tmdb.Title]{
		name: "popular",
		run: func(ctx context.Context) ([]*tmdb.Title, error) {
			return s.Screen.Popular(ctx, kind)
		},
	})

	titles, err := runChain(ctx, t, steps)
	if err != nil {
		return nil, err
	}

	return s.enrich(ctx, t, s.limit(titles))
}

// enrich fetches details and credits for each title with at most DetailWorkers
// lookups in flight. A failed lookup keeps the summary from the list answer.
func (s *Suggester) enrich(ctx context.Context, t media.Type, titles []*tmdb.Title) ([]*media.Item, error) {
	kind := kindOf(t)

	var g errgroup.Group
	g.SetLimit(max(s.DetailWorkers, 1))

	for _, title := range titles {
		g.Go(func() error {
			details, err := s.Screen.Details(ctx, kind, title.ID)
			if err != nil {
				log.With(log.Fields{"id": title.ID, "kind": kind}).Warnf("details lookup failed: %v", err)
				return nil
			}
			title.Merge(details)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Type: t, Step: "details", Err: err}
	}

	return lo.Map(titles, func(title *tmdb.Title, _ int) *media.Item {
		return normalize.TMDB(title, t)
	}), nil
}

// games tries a random mood keyword, then the remaining ones, then popular games.
func (s *Suggester) games(ctx context.Context, p mood.Profile) ([]*media.Item, error) {
	keywords := p.GameKeywords()
	first := lo.Sample(keywords)
	order := append([]string{first}, lo.Without(keywords, first)...)

	steps := lo.Map(order, func(kw string, _ int) step[*igdb.Game] {
		return step[*igdb.Game]{
			name: "keyword " + kw,
			run: func(ctx context.Context) ([]*igdb.Game, error) {
				return s.Games.Games(ctx, igdb.ByKeyword(kw))
			},
		}
	})
	steps = append(steps, step[*igdb.Game]{
		name: "popular",
		run: func(ctx context.Context) ([]*igdb.Game, error) {
			return s.Games.Games(ctx, igdb.Popular())
		},
	})

	games, err := runChain(ctx, media.Game, steps)
	if err != nil {
		return nil, err
	}

	return lo.Map(firstN(games, s.Limit), func(g *igdb.Game, _ int) *media.Item {
		return normalize.Game(g)
	}), nil
}

// search is a Spotify step keeping one section of the answer.
func search[T any](s *Suggester, q string, limit int, pick func(*spotify.Results) []*T) step[*T] {
	return step[*T]{
		name: q,
		run: func(ctx context.Context) ([]*T, error) {
			res, err := s.Audio.Search(ctx, q, limit)
			if err != nil {
				return nil, err
			}
			return pick(res), nil
		},
	}
}

func tracks(r *spotify.Results) []*spotify.Track          { return r.Tracks }
func playlistsOf(r *spotify.Results) []*spotify.Playlist { return r.Playlists }
func podcastsOf(r *spotify.Results) []*spotify.Podcast   { return r.Podcasts }

func (s *Suggester) music(ctx context.Context, p mood.Profile) ([]*media.Item, error) {
	kw := lo.Sample(p.MusicKeywords())

	found, err := runChain(ctx, media.Music, []step[*spotify.Track]{
		search(s, "genre:"+kw, TrackLimit, tracks),
		search(s, kw, TrackLimit, tracks),
		search(s, "genre:"+mood.DefaultMusic[0], TrackLimit, tracks),
	})
	if err != nil {
		return nil, err
	}

	return lo.Map(shuffled(found, s.Limit), func(t *spotify.Track, _ int) *media.Item {
		return normalize.Track(t)
	}), nil
}

func (s *Suggester) playlists(ctx context.Context, p mood.Profile) ([]*media.Item, error) {
	kw := lo.Sample(p.MusicKeywords())

	found, err := runChain(ctx, media.Playlist, []step[*spotify.Playlist]{
		search(s, kw+" playlist", PlaylistLimit, playlistsOf),
		search(s, mood.DefaultMusic[0]+" playlist", PlaylistLimit, playlistsOf),
	})
	if err != nil {
		return nil, err
	}

	return lo.Map(shuffled(found, s.Limit), func(pl *spotify.Playlist, _ int) *media.Item {
		return normalize.Playlist(pl)
	}), nil
}

func (s *Suggester) podcasts(ctx context.Context, p mood.Profile) ([]*media.Item, error) {
	kw := lo.Sample(p.PodcastKeywords())

	found, err := runChain(ctx, media.Podcast, []step[*spotify.Podcast]{
		search(s, kw+" podcast", PodcastLimit, podcastsOf),
		search(s, mood.DefaultPodcast[0]+" podcast", PodcastLimit, podcastsOf),
	})
	if err != nil {
		return nil, err
	}

	return lo.Map(shuffled(found, s.Limit), func(pc *spotify.Podcast, _ int) *media.Item {
		return normalize.Podcast(pc)
	}), nil
}

// recipes serves Food and Drink: a random mood keyword, then a broad query.
func (s *Suggester) recipes(ctx context.Context, t media.Type, m mood.Mood, p mood.Profile) ([]*media.Item, error) {
	keywords, fallback := p.FoodKeywords(), ""
	if t == media.Drink {
		keywords, fallback = p.DrinkKeywords(), fallbackDrink
	}

	queries := lo.Uniq([]string{lo.Sample(keywords), fallback})
	steps := lo.Map(queries, func(q string, _ int) step[*tasty.Recipe] {
		return step[*tasty.Recipe]{
			name: strconv.Quote(q),
			run: func(ctx context.Context) ([]*tasty.Recipe, error) {
				return s.Recipes.Recipes(ctx, q)
			},
		}
	})

	found, err := runChain(ctx, t, steps)
	if err != nil {
		return nil, err
	}

	return lo.Map(firstN(found, s.Limit), func(r *tasty.Recipe, _ int) *media.Item {
		return normalize.Recipe(r, t, m)
	}), nil
}

// books searches all mood keywords together, then the first keyword, then fiction.
func (s *Suggester) books(ctx context.Context, p mood.Profile) ([]*media.Item, error) {
	keywords := p.BookKeywords()

	var queries []string
	if len(keywords) > 0 {
		queries = append(queries, strings.Join(keywords, " "), keywords[0])
	}
	queries = lo.Uniq(append(queries, fallbackBook))

	steps := lo.Map(queries, func(q string, _ int) step[*googlebooks.Volume] {
		return step[*googlebooks.Volume]{
			name: strconv.Quote(q),
			run: func(ctx context.Context) ([]*googlebooks.Volume, error) {
				return s.Books.Volumes(ctx, q)
			},
		}
	})

	found, err := runChain(ctx, media.Book, steps)
	if err != nil {
		return nil, err
	}

	return lo.Map(firstN(found, s.Limit), func(v *googlebooks.Volume, _ int) *media.Item {
		return normalize.Volume(v)
	}), nil
}
