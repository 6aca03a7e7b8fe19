package media

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func labels(fields []Field) []string {
	return lo.Map(fields, func(f Field, _ int) string { return f.Label })
}

func value(fields []Field, label string) string {
	f, _ := lo.Find(fields, func(f Field) bool { return f.Label == label })
	return f.Value
}

func TestParseType(t *testing.T) {
	Convey("Given media type input", t, func() {
		Convey("Labels and aliases resolve case-insensitively", func() {
			for input, want := range map[string]Type{
				"Movie":      Movie,
				"tv":         TVShow,
				"TV Show":    TVShow,
				"tv-show":    TVShow,
				"video_game": Game,
				"games":      Game,
				"PODCAST":    Podcast,
			} {
				got, err := ParseType(input)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, want)
			}
		})

		Convey("Unknown input suggests the closest type", func() {
			_, err := ParseType("podcsat")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, `"Podcast"`)
		})

		Convey("Exercise is not a media type", func() {
			_, err := ParseType("exercise")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestTypes(t *testing.T) {
	Convey("Types lists ten categories with blurbs", t, func() {
		types := Types()
		So(types, ShouldHaveLength, 10)
		for _, typ := range types {
			So(typ.Blurb(), ShouldNotBeEmpty)
		}
		So(Game.Noun(), ShouldEqual, "video game")
	})
}

func TestFields(t *testing.T) {
	Convey("Given a book", t, func() {
		item := &Item{
			Type:        Book,
			Title:       "Dune",
			ReleaseDate: "1965",
			Authors:     []string{"Frank Herbert"},
			Categories:  []string{"Fiction"},
			Rating:      4.3,
			RatingScale: 5,
		}

		Convey("Its card shows the published date, authors and a /5 rating in order", func() {
			fields := item.Fields()
			So(labels(fields), ShouldResemble, []string{"Published Date", "Author(s)", "Categories", "Rating"})
			So(value(fields, "Rating"), ShouldEqual, "4.3/5")
			So(item.LinkLabel(), ShouldEqual, "More Info")
		})
	})

	Convey("Given a TV show", t, func() {
		item := &Item{
			Type:           TVShow,
			ReleaseDate:    "2008-01-20",
			Rating:         8.9,
			RatingScale:    10,
			Genres:         []string{"Drama", "Crime"},
			RuntimeMinutes: 47,
			Seasons:        5,
			Episodes:       62,
			Cast:           []string{"Bryan Cranston", "Aaron Paul"},
		}

		Convey("Its card uses the first air date label and lists seasons", func() {
			fields := item.Fields()
			So(labels(fields), ShouldResemble, []string{
				"First Air Date", "Rating", "Genres", "Runtime", "Seasons", "Episodes", "Cast",
			})
			So(value(fields, "Runtime"), ShouldEqual, "47 minutes")
			So(value(fields, "Genres"), ShouldEqual, "Drama, Crime")
			So(value(fields, "Rating"), ShouldEqual, "8.9/10")
		})
	})

	Convey("Given a track", t, func() {
		explicit := true
		item := &Item{
			Type:        Music,
			Artists:     []string{"Daft Punk"},
			Album:       "Discovery",
			ReleaseDate: "2001",
			DurationMs:  239_999,
			Explicit:    &explicit,
		}

		Convey("Its card shows release year, duration and explicit flag", func() {
			fields := item.Fields()
			So(labels(fields), ShouldResemble, []string{"Artist(s)", "Album", "Duration", "Explicit", "Release Year"})
			So(value(fields, "Duration"), ShouldEqual, "4:00")
			So(value(fields, "Explicit"), ShouldEqual, "Yes")
			So(item.LinkLabel(), ShouldEqual, "Open in Spotify")
		})
	})

	Convey("Given a recipe", t, func() {
		item := &Item{
			Type:         Food,
			ReleaseDate:  "ignored",
			TotalMinutes: 25,
			Servings:     4,
			Tags:         []string{"easy", "vegan", "dinner", "under_30_minutes"},
			Ingredients:  "1 onion",
			Instructions: "Chop.",
		}

		Convey("Its card has no date row and at most three tags", func() {
			fields := item.Fields()
			So(labels(fields), ShouldNotContain, "Release Date")
			So(value(fields, "Tags"), ShouldEqual, "easy, vegan, dinner")
			So(value(fields, "Total Time"), ShouldEqual, "25 minutes")
			So(value(fields, "Servings"), ShouldEqual, "4")
		})
	})

	Convey("Given a game", t, func() {
		item := &Item{
			Type:        Game,
			Platforms:   []string{"PC", "Switch"},
			Developer:   "Supergiant Games",
			GameModes:   []string{"Single player"},
			Rating:      93.4,
			RatingScale: 100,
		}

		Convey("Its card leads with platforms and rates out of 100", func() {
			fields := item.Fields()
			So(labels(fields)[0], ShouldEqual, "Platforms")
			So(value(fields, "Rating"), ShouldEqual, "93.4/100")
		})
	})
}

func TestFormatDuration(t *testing.T) {
	Convey("FormatDuration never renders sixty seconds", t, func() {
		So(FormatDuration(59_600), ShouldEqual, "1:00")
		So(FormatDuration(61_000), ShouldEqual, "1:01")
		So(FormatDuration(0), ShouldEqual, "0:00")
	})
}
