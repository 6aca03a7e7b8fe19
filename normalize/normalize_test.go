package normalize

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/moodbuster/moodbuster/googlebooks"
	"github.com/moodbuster/moodbuster/igdb"
	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/mood"
	"github.com/moodbuster/moodbuster/spotify"
	"github.com/moodbuster/moodbuster/tasty"
	"github.com/moodbuster/moodbuster/tmdb"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTMDB(t *testing.T) {
	Convey("Given a TV title enriched with details", t, func() {
		title := &tmdb.Title{
			ID:             1396,
			Name:           "Breaking Bad",
			FirstAirDate:   "2008-01-20",
			PosterPath:     "/poster.jpg",
			VoteAverage:    8.9,
			Genres:         []tmdb.Genre{{18, "Drama"}},
			EpisodeRunTime: []int{45, 47},
			CreatedBy:      []tmdb.Person{{Name: "Vince Gilligan"}},
			Credits: &tmdb.Credits{
				Cast: []tmdb.Person{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"}, {Name: "f"}},
				Crew: []tmdb.Person{{Name: "Writer", Job: "Writer"}, {Name: "Michelle MacLaren", Job: "Director"}, {Name: "Other", Job: "Director"}},
			},
		}

		item := TMDB(title, media.TVShow)

		Convey("Name, air date and the first episode runtime are used", func() {
			So(item.Title, ShouldEqual, "Breaking Bad")
			So(item.ReleaseDate, ShouldEqual, "2008-01-20")
			So(item.RuntimeMinutes, ShouldEqual, 45)
			So(item.ImageURL, ShouldEqual, "https://image.tmdb.org/t/p/w300/poster.jpg")
			So(item.URL, ShouldEqual, "https://www.themoviedb.org/tv/1396")
		})

		Convey("Credits give the first director and five cast members", func() {
			So(item.Director, ShouldEqual, "Michelle MacLaren")
			So(item.Cast, ShouldResemble, []string{"a", "b", "c", "d", "e"})
			So(item.Creators, ShouldResemble, []string{"Vince Gilligan"})
		})
	})

	Convey("Given a bare discover result", t, func() {
		item := TMDB(&tmdb.Title{ID: 550, Title: "Fight Club", ReleaseDate: "1999-10-15", GenreIDs: []int{18, 53, 424242}}, media.Movie)

		Convey("Genre ids are named from the genre table", func() {
			So(item.Genres, ShouldResemble, []string{"Drama", "Thriller"})
			So(item.ImageURL, ShouldBeEmpty)
			So(item.Director, ShouldBeEmpty)
			So(item.URL, ShouldEqual, "https://www.themoviedb.org/movie/550")
		})
	})
}

func TestGame(t *testing.T) {
	Convey("Given an IGDB game", t, func() {
		item := Game(&igdb.Game{
			ID:               1,
			Name:             "Hades",
			Rating:           93.1,
			FirstReleaseDate: 1600992000,
			InvolvedCompanies: []igdb.InvolvedCompany{
				{Company: igdb.Named{Name: "Private Division"}, Publisher: true},
				{Company: igdb.Named{Name: "Supergiant Games"}, Developer: true},
			},
			GameModes: []igdb.Named{{Name: "Single player"}},
			Cover:     &igdb.Cover{URL: "//images.igdb.com/igdb/image/upload/t_thumb/co1.jpg"},
		})

		Convey("Dates, companies and the big cover are derived", func() {
			So(item.ReleaseDate, ShouldEqual, "2020-09-25")
			So(item.Developer, ShouldEqual, "Supergiant Games")
			So(item.Publisher, ShouldEqual, "Private Division")
			So(item.ImageURL, ShouldEqual, "https://images.igdb.com/igdb/image/upload/t_cover_big/co1.jpg")
			So(item.RatingScale, ShouldEqual, 100)
		})
	})
}

func TestSpotify(t *testing.T) {
	Convey("Given a decoded track", t, func() {
		var track spotify.Track
		So(json.Unmarshal([]byte(`{"id":"t1","name":"One More Time",
			"artists":{"items":[{"profile":{"name":"Daft Punk"}},{"profile":{"name":"Romanthony"}}]},
			"albumOfTrack":{"name":"Discovery","coverArt":{"sources":[{"url":"s","width":64,"height":64},{"url":"l","width":300,"height":300}]},
				"releases":{"items":[{"date":{"year":2001}}]}},
			"duration":{"totalMilliseconds":320357},"contentRating":{"label":"EXPLICIT"}}`), &track), ShouldBeNil)

		item := Track(&track)

		So(item.Artists, ShouldResemble, []string{"Daft Punk", "Romanthony"})
		So(item.ReleaseDate, ShouldEqual, "2001")
		So(item.ImageURL, ShouldEqual, "l")
		So(*item.Explicit, ShouldBeTrue)
		So(item.URL, ShouldEqual, "https://open.spotify.com/track/t1")
	})

	Convey("Given a podcast", t, func() {
		item := Podcast(&spotify.Podcast{URI: "spotify:show:abc", Name: "Talk", Publisher: "Pod Co", Type: "podcast", MediaType: "AUDIO"})

		So(item.ID, ShouldEqual, "abc")
		So(item.Publisher, ShouldEqual, "Pod Co")
		So(item.MediaKind, ShouldEqual, "AUDIO")
		So(item.URL, ShouldEqual, "https://open.spotify.com/show/abc")
	})

	Convey("Given a playlist", t, func() {
		item := Playlist(&spotify.Playlist{URI: "spotify:playlist:p1", Name: "Lofi"})

		So(item.URL, ShouldEqual, "https://open.spotify.com/playlist/p1")
		So(item.Type, ShouldEqual, media.Playlist)
	})
}

func TestRecipe(t *testing.T) {
	Convey("Given a drink recipe without a description or steps", t, func() {
		item := Recipe(&tasty.Recipe{ID: 3, Name: "Iced Tea", PrepTimeMinutes: 5, CookTimeMinutes: 10}, media.Drink, mood.Relaxed)

		So(item.Description, ShouldEqual, "A refreshing drink that complements your Relaxed and Chill mood.")
		So(item.Ingredients, ShouldEqual, NoIngredients)
		So(item.Instructions, ShouldEqual, NoInstructions)
		So(item.TotalMinutes, ShouldEqual, 15)
		So(item.URL, ShouldBeEmpty)
	})

	Convey("Given a full food recipe", t, func() {
		item := Recipe(&tasty.Recipe{
			ID:               4,
			Name:             "Stew",
			Slug:             "beef-stew",
			TotalTimeMinutes: 90,
			Sections:         []tasty.Section{{Components: []tasty.Component{{RawText: "beef"}, {RawText: "carrots"}}}},
			Instructions:     []tasty.Instruction{{DisplayText: "Brown the beef."}, {DisplayText: "Simmer."}},
		}, media.Food, mood.Cozy)

		So(item.Description, ShouldEqual, "A delicious dish that perfectly matches your Cozy and Comforting mood.")
		So(item.Ingredients, ShouldEqual, "beef, carrots")
		So(item.Instructions, ShouldEqual, "Brown the beef. Simmer.")
		So(item.URL, ShouldEqual, "https://tasty.co/recipe/beef-stew")
	})
}

func TestVolume(t *testing.T) {
	Convey("Given a book volume", t, func() {
		item := Volume(&googlebooks.Volume{ID: "v1", VolumeInfo: googlebooks.VolumeInfo{
			Title:         "Dune",
			AverageRating: 4.5,
			ImageLinks:    &googlebooks.ImageLinks{SmallThumbnail: "small"},
			InfoLink:      "https://books.google.com/books?id=v1",
		}})

		So(item.ImageURL, ShouldEqual, "small")
		So(item.RatingScale, ShouldEqual, 5)
		So(item.URL, ShouldEqual, "https://books.google.com/books?id=v1")
	})
}
