package suggest

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/moodbuster/moodbuster/googlebooks"
	"github.com/moodbuster/moodbuster/igdb"
	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/mood"
	"github.com/moodbuster/moodbuster/network"
	"github.com/moodbuster/moodbuster/spotify"
	"github.com/moodbuster/moodbuster/tasty"
	"github.com/moodbuster/moodbuster/tmdb"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeScreen struct {
	mu       sync.Mutex
	discover []url.Values
	popular  int
	// answer decides what a discover call returns
	answer      func(params url.Values) []*tmdb.Title
	popularList []*tmdb.Title
	detailsErr  map[int]bool
	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func (f *fakeScreen) Discover(_ context.Context, _ tmdb.Kind, params url.Values) ([]*tmdb.Title, error) {
	f.mu.Lock()
	f.discover = append(f.discover, params)
	f.mu.Unlock()
	if f.answer == nil {
		return nil, nil
	}
	return f.answer(params), nil
}

func (f *fakeScreen) Popular(context.Context, tmdb.Kind) ([]*tmdb.Title, error) {
	f.mu.Lock()
	f.popular++
	f.mu.Unlock()
	return f.popularList, nil
}

func (f *fakeScreen) Details(_ context.Context, _ tmdb.Kind, id int) (*tmdb.Title, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		old := f.maxInFlight.Load()
		if n <= old || f.maxInFlight.CompareAndSwap(old, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)

	if f.detailsErr[id] {
		return nil, &network.StatusError{Code: 404}
	}
	return &tmdb.Title{Runtime: 100 + id}, nil
}

type fakeAudio struct {
	queries []string
	answer  func(q string) *spotify.Results
}

func (f *fakeAudio) Search(_ context.Context, q string, _ int) (*spotify.Results, error) {
	f.queries = append(f.queries, q)
	if f.answer == nil {
		return &spotify.Results{}, nil
	}
	return f.answer(q), nil
}

type fakeGames struct {
	queries []igdb.Query
	err     error
}

func (f *fakeGames) Games(_ context.Context, q igdb.Query) ([]*igdb.Game, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	if q.Sort != "" {
		return []*igdb.Game{{ID: 1, Name: "Popular"}}, nil
	}
	return nil, nil
}

type fakeRecipes struct {
	queries []string
}

func (f *fakeRecipes) Recipes(_ context.Context, q string) ([]*tasty.Recipe, error) {
	f.queries = append(f.queries, q)
	if q == "" || q == "drink" {
		return []*tasty.Recipe{{ID: 9, Name: "Anything"}}, nil
	}
	return nil, nil
}

type fakeBooks struct {
	queries []string
}

func (f *fakeBooks) Volumes(_ context.Context, q string) ([]*googlebooks.Volume, error) {
	f.queries = append(f.queries, q)
	if q == "fiction" {
		return []*googlebooks.Volume{{ID: "b", VolumeInfo: googlebooks.VolumeInfo{Title: "Fallback"}}}, nil
	}
	return nil, nil
}

func titles(ids ...int) []*tmdb.Title {
	out := make([]*tmdb.Title, len(ids))
	for i, id := range ids {
		out[i] = &tmdb.Title{ID: id, Title: "t"}
	}
	return out
}

func TestScreenChain(t *testing.T) {
	ctx := context.Background()

	Convey("Given a mood whose keyword and genre query matches", t, func() {
		screen := &fakeScreen{answer: func(url.Values) []*tmdb.Title { return titles(1, 2) }}
		s := &Suggester{Screen: screen, DetailWorkers: 2}

		items, err := s.Suggest(ctx, mood.Cozy, media.Movie)

		Convey("The first query combines keywords and genres", func() {
			So(err, ShouldBeNil)
			So(items, ShouldHaveLength, 2)
			So(screen.discover, ShouldHaveLength, 1)
			So(screen.discover[0].Get("with_keywords"), ShouldEqual, "10024")
			So(screen.discover[0].Get("with_genres"), ShouldEqual, "35,10751")
		})

		Convey("Items are enriched and tagged with the mood", func() {
			So(items[0].RuntimeMinutes, ShouldEqual, 101)
			So(items[0].Mood, ShouldEqual, mood.Cozy.String())
			So(items[0].Type, ShouldEqual, media.Movie)
		})
	})

	Convey("Given a mood with no matches anywhere", t, func() {
		screen := &fakeScreen{popularList: titles(7)}
		s := &Suggester{Screen: screen}

		items, err := s.Suggest(ctx, mood.Epic, media.TVShow)

		Convey("It falls back to genres, then keywords, then popular", func() {
			So(err, ShouldBeNil)
			So(items, ShouldHaveLength, 1)
			So(screen.discover, ShouldHaveLength, 3)
			So(screen.discover[1].Has("with_keywords"), ShouldBeFalse)
			So(screen.discover[1].Get("with_genres"), ShouldEqual, "12,14")
			So(screen.discover[2].Has("with_genres"), ShouldBeFalse)
			So(screen.popular, ShouldEqual, 1)
		})
	})

	Convey("Given anime", t, func() {
		screen := &fakeScreen{answer: func(p url.Values) []*tmdb.Title {
			if p.Get("sort_by") == "popularity.desc" {
				return titles(3)
			}
			return nil
		}}
		s := &Suggester{Screen: screen}

		items, err := s.Suggest(ctx, mood.Playful, media.Anime)

		Convey("Every discover step carries the anime keyword", func() {
			So(err, ShouldBeNil)
			So(items, ShouldHaveLength, 1)
			So(screen.discover, ShouldHaveLength, 4)
			for _, p := range screen.discover {
				So(p.Get("with_keywords"), ShouldContainSubstring, "210024")
			}
			So(screen.discover[0].Get("with_keywords"), ShouldEqual, "9663,210024")
			So(screen.popular, ShouldEqual, 0)
		})
	})

	Convey("Given an empty catalog", t, func() {
		s := &Suggester{Screen: &fakeScreen{}}

		_, err := s.Suggest(ctx, mood.Somber, media.Movie)

		Convey("The chain ends with NoResultsError", func() {
			var noResults *NoResultsError
			So(errors.As(err, &noResults), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "no movie found for the selected mood, try a different mood")
		})
	})

	Convey("Given a failing details lookup", t, func() {
		screen := &fakeScreen{
			answer:     func(url.Values) []*tmdb.Title { return titles(1, 2, 3, 4, 5, 6) },
			detailsErr: map[int]bool{2: true},
		}
		s := &Suggester{Screen: screen, DetailWorkers: 2, Limit: 5}

		items, err := s.Suggest(ctx, mood.Cozy, media.Movie)

		Convey("The entry is kept, the limit applies and workers stay bounded", func() {
			So(err, ShouldBeNil)
			So(items, ShouldHaveLength, 5)
			So(items[1].ID, ShouldEqual, "2")
			So(items[1].RuntimeMinutes, ShouldEqual, 0)
			So(screen.maxInFlight.Load(), ShouldBeLessThanOrEqualTo, 2)
		})
	})
}

func TestSuggestByGenre(t *testing.T) {
	Convey("Given the genre flow", t, func() {
		screen := &fakeScreen{answer: func(p url.Values) []*tmdb.Title {
			if p.Has("with_keywords") {
				return nil
			}
			return titles(42)
		}}
		s := &Suggester{Screen: screen}

		items, err := s.SuggestByGenre(context.Background(), mood.ThrillSeeker, mood.Genre{ID: 27, Name: "Horror"})

		Convey("It retries without keywords", func() {
			So(err, ShouldBeNil)
			So(items, ShouldHaveLength, 1)
			So(screen.discover, ShouldHaveLength, 2)
			So(screen.discover[0].Get("with_keywords"), ShouldEqual, "10663")
			So(screen.discover[1].Get("with_genres"), ShouldEqual, "27")
			So(screen.discover[1].Get("sort_by"), ShouldEqual, "popularity.desc")
		})
	})
}

func TestGamesChain(t *testing.T) {
	Convey("Given games that only match the popular query", t, func() {
		games := &fakeGames{}
		s := &Suggester{Games: games}

		items, err := s.Suggest(context.Background(), mood.Cozy, media.Game)

		Convey("Every mood keyword is tried once before popular games", func() {
			So(err, ShouldBeNil)
			So(items[0].Title, ShouldEqual, "Popular")
			So(games.queries, ShouldHaveLength, 4)

			tried := map[string]bool{}
			for _, q := range games.queries[:3] {
				tried[q.Where] = true
			}
			So(tried, ShouldHaveLength, 3)
			So(games.queries[3].Sort, ShouldNotBeEmpty)
		})
	})

	Convey("Given a failing IGDB", t, func() {
		games := &fakeGames{err: &network.StatusError{Code: 401}}
		s := &Suggester{Games: games}

		_, err := s.Suggest(context.Background(), mood.Cozy, media.Game)

		Convey("The chain stops at the first error", func() {
			var fetch *FetchError
			So(errors.As(err, &fetch), ShouldBeTrue)
			So(fetch.Type, ShouldEqual, media.Game)
			So(err.Error(), ShouldStartWith, "failed to fetch video game")
			So(games.queries, ShouldHaveLength, 1)

			var status *network.StatusError
			So(errors.As(err, &status), ShouldBeTrue)
		})
	})
}

func TestSpotifyChains(t *testing.T) {
	Convey("Given music that only matches the pop fallback", t, func() {
		audio := &fakeAudio{answer: func(q string) *spotify.Results {
			if q == "genre:pop" {
				return &spotify.Results{Tracks: []*spotify.Track{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
			}
			return &spotify.Results{}
		}}
		s := &Suggester{Audio: audio, Limit: 2}

		items, err := s.Suggest(context.Background(), mood.Relaxed, media.Music)

		Convey("Genre, plain keyword and pop are tried in order", func() {
			So(err, ShouldBeNil)
			So(items, ShouldHaveLength, 2)
			So(audio.queries, ShouldHaveLength, 3)
			So(audio.queries[0], ShouldStartWith, "genre:")
			So(audio.queries[1], ShouldNotStartWith, "genre:")
			So(audio.queries[2], ShouldEqual, "genre:pop")
		})
	})

	Convey("Given podcasts", t, func() {
		audio := &fakeAudio{answer: func(q string) *spotify.Results {
			return &spotify.Results{Podcasts: []*spotify.Podcast{{URI: "spotify:show:x", Name: q}}}
		}}
		s := &Suggester{Audio: audio}

		items, err := s.Suggest(context.Background(), mood.Relaxed, media.Podcast)

		So(err, ShouldBeNil)
		So(items, ShouldHaveLength, 1)
		So(audio.queries[0], ShouldEndWith, " podcast")
		So(items[0].ID, ShouldEqual, "x")
	})

	Convey("Given playlists with no matches", t, func() {
		audio := &fakeAudio{}
		s := &Suggester{Audio: audio}

		_, err := s.Suggest(context.Background(), mood.Relaxed, media.Playlist)

		var noResults *NoResultsError
		So(errors.As(err, &noResults), ShouldBeTrue)
		So(audio.queries[1], ShouldEqual, "pop playlist")
	})
}

func TestRecipeChains(t *testing.T) {
	Convey("Food falls back to the unfiltered list", t, func() {
		recipes := &fakeRecipes{}
		s := &Suggester{Recipes: recipes}

		items, err := s.Suggest(context.Background(), mood.Cozy, media.Food)
		So(err, ShouldBeNil)
		So(recipes.queries, ShouldHaveLength, 2)
		So(recipes.queries[1], ShouldBeEmpty)
		So(items[0].Description, ShouldContainSubstring, "Cozy and Comforting")
	})

	Convey("Drinks fall back to drink", t, func() {
		recipes := &fakeRecipes{}
		s := &Suggester{Recipes: recipes}

		items, err := s.Suggest(context.Background(), mood.Cozy, media.Drink)
		So(err, ShouldBeNil)
		So(recipes.queries[1], ShouldEqual, "drink")
		So(items[0].Type, ShouldEqual, media.Drink)
	})
}

func TestBookChain(t *testing.T) {
	Convey("Books try joined keywords, the first keyword, then fiction", t, func() {
		books := &fakeBooks{}
		s := &Suggester{Books: books}

		items, err := s.Suggest(context.Background(), mood.Epic, media.Book)
		So(err, ShouldBeNil)
		So(items[0].Title, ShouldEqual, "Fallback")
		So(books.queries, ShouldResemble, []string{"epic saga", "epic", "fiction"})
	})
}

func TestNotConfigured(t *testing.T) {
	Convey("A type whose catalog has no client fails fast", t, func() {
		s := &Suggester{}

		_, err := s.Suggest(context.Background(), mood.Cozy, media.Music)
		So(errors.Is(err, ErrNotConfigured), ShouldBeTrue)
		So(strings.Contains(err.Error(), "catalog.rapidapi.key"), ShouldBeTrue)
	})
}

func TestCancelled(t *testing.T) {
	Convey("A cancelled context aborts the chain", t, func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		screen := &fakeScreen{}
		s := &Suggester{Screen: screen}

		_, err := s.Suggest(ctx, mood.Cozy, media.Movie)
		So(errors.Is(err, context.Canceled), ShouldBeTrue)
		So(screen.discover, ShouldBeEmpty)
	})
}
