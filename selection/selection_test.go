package selection

import (
	"errors"
	"testing"

	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/mood"
	. "github.com/smartystreets/goconvey/convey"
)

func items(titles ...string) []*media.Item {
	out := make([]*media.Item, len(titles))
	for i, title := range titles {
		out[i] = &media.Item{ID: title, Title: title}
	}
	return out
}

func TestMachine(t *testing.T) {
	Convey("Given a new machine", t, func() {
		m := New()

		Convey("It waits for a media type", func() {
			So(m.Stage(), ShouldEqual, ChooseMediaType)
			So(m.Current(), ShouldBeNil)
		})

		Convey("Picking a mood first is rejected", func() {
			err := m.PickMood(mood.Cozy)
			So(errors.Is(err, ErrInvalidTransition), ShouldBeTrue)
			So(m.Stage(), ShouldEqual, ChooseMediaType)
		})

		Convey("An unknown media type is rejected", func() {
			So(errors.Is(m.PickMediaType("Exercise"), ErrInvalidTransition), ShouldBeTrue)
		})

		Convey("ChangeMood needs a media type", func() {
			So(errors.Is(m.ChangeMood(), ErrInvalidTransition), ShouldBeTrue)
		})

		Convey("When a type and a mood are picked", func() {
			So(m.PickMediaType(media.Movie), ShouldBeNil)
			So(m.Stage(), ShouldEqual, ChooseMood)
			So(m.PickMood(mood.Epic), ShouldBeNil)

			Convey("It is fetching for that selection", func() {
				So(m.Stage(), ShouldEqual, Fetching)
				So(m.MediaType(), ShouldEqual, media.Movie)
				So(m.Mood(), ShouldEqual, mood.Epic)
				So(m.Attempt(), ShouldEqual, 1)
			})

			Convey("Paging is rejected until items arrive", func() {
				_, err := m.Next()
				So(errors.Is(err, ErrInvalidTransition), ShouldBeTrue)
			})

			Convey("Resolving shows the first item and pages cyclically", func() {
				So(m.Resolve(items("a", "b", "c")), ShouldBeNil)
				So(m.Stage(), ShouldEqual, Showing)
				So(m.Current().Title, ShouldEqual, "a")

				prev, err := m.Prev()
				So(err, ShouldBeNil)
				So(prev.Title, ShouldEqual, "c")

				next, _ := m.Next()
				So(next.Title, ShouldEqual, "a")
				next, _ = m.Next()
				So(next.Title, ShouldEqual, "b")
				So(m.Index(), ShouldEqual, 1)

				Convey("ChangeMood keeps the media type and drops the items", func() {
					So(m.ChangeMood(), ShouldBeNil)
					So(m.Stage(), ShouldEqual, ChooseMood)
					So(m.MediaType(), ShouldEqual, media.Movie)
					So(m.Mood(), ShouldEqual, mood.Mood(""))
					So(m.Len(), ShouldEqual, 0)
				})

				Convey("BackToStart clears everything", func() {
					m.BackToStart()
					So(m.Stage(), ShouldEqual, ChooseMediaType)
					So(m.MediaType(), ShouldEqual, media.Type(""))
					So(m.Len(), ShouldEqual, 0)
				})
			})

			Convey("Resolving with nothing fails", func() {
				So(m.Resolve(nil), ShouldBeNil)
				So(m.Stage(), ShouldEqual, Failed)
				So(errors.Is(m.Err(), ErrNothingToShow), ShouldBeTrue)
			})

			Convey("A failure can be retried", func() {
				boom := errors.New("failed to fetch movie")
				So(m.Fail(boom), ShouldBeNil)
				So(m.Stage(), ShouldEqual, Failed)
				So(m.Err(), ShouldEqual, boom)

				So(m.Retry(), ShouldBeNil)
				So(m.Stage(), ShouldEqual, Fetching)
				So(m.Err(), ShouldBeNil)
				So(m.Attempt(), ShouldEqual, 2)
				So(m.Mood(), ShouldEqual, mood.Epic)
			})

			Convey("Retry outside Failed is rejected", func() {
				So(errors.Is(m.Retry(), ErrInvalidTransition), ShouldBeTrue)
			})

			Convey("A late answer after going back is rejected", func() {
				m.BackToStart()
				So(errors.Is(m.Resolve(items("late")), ErrInvalidTransition), ShouldBeTrue)
			})
		})
	})
}

func TestStageString(t *testing.T) {
	Convey("Stages have readable names", t, func() {
		So(Showing.String(), ShouldEqual, "showing")
		So(Stage(42).String(), ShouldEqual, "stage(42)")
	})
}
