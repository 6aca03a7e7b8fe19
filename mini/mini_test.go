package mini

import (
	"testing"

	"github.com/moodbuster/moodbuster/filesystem"
	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/mood"
	"github.com/moodbuster/moodbuster/selection"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestRenderCard(t *testing.T) {
	Convey("Given a track", t, func() {
		item := &media.Item{
			Type:       media.Music,
			Title:      "Clair de Lune",
			Artists:    []string{"Claude Debussy"},
			DurationMs: 300_000,
			URL:        "https://open.spotify.com/track/x",
		}

		Convey("The full card lists every field", func() {
			card := renderCard(item, true)
			So(card, ShouldContainSubstring, "Clair de Lune")
			So(card, ShouldContainSubstring, "Claude Debussy")
			So(card, ShouldContainSubstring, "5:00")
			So(card, ShouldContainSubstring, "Open in Spotify: https://open.spotify.com/track/x")
		})

		Convey("The short card keeps the title and link", func() {
			card := renderCard(item, false)
			So(card, ShouldNotContainSubstring, "Claude Debussy")
			So(card, ShouldContainSubstring, "https://open.spotify.com/track/x")
		})
	})
}

func TestPreselect(t *testing.T) {
	Convey("Given a media type and a mood up front", t, func() {
		m := newMini(&Options{
			MediaType: mo.Some(media.Book),
			Mood:      mo.Some(mood.Nostalgic),
		})
		m.state = mediaTypeSelectState

		So(m.preselect(), ShouldBeNil)

		Convey("It goes straight to fetching", func() {
			So(m.machine.Stage(), ShouldEqual, selection.Fetching)
			So(m.state, ShouldEqual, fetchState)
		})
	})

	Convey("Given only saved picks", t, func() {
		m := newMini(&Options{Saved: true})
		m.state = mediaTypeSelectState
		So(m.preselect(), ShouldBeNil)
		So(m.state, ShouldEqual, historySelectState)

		Convey("Leaving them lands on media types", func() {
			m.leaveHistory()
			So(m.state, ShouldEqual, mediaTypeSelectState)
		})
	})
}

func TestBind(t *testing.T) {
	Convey("Binds print their key", t, func() {
		So(next.String(), ShouldEqual, "[n] next")
		So(quit.eq(quit), ShouldBeTrue)
		So(quit.eq(back), ShouldBeFalse)
	})
}

func TestTruncate(t *testing.T) {
	Convey("Long menu lines are cut", t, func() {
		prev := truncateAt
		truncateAt = 10
		Reset(func() { truncateAt = prev })

		So(truncate("short"), ShouldEqual, "short")
		So(truncate("a much longer line"), ShouldEqual, "a much ...")
		So(truncate("two\nlines"), ShouldEqual, "two lines")
	})
}
