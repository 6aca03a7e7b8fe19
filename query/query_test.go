package query

import (
	"testing"

	"github.com/moodbuster/moodbuster/filesystem"
	"github.com/moodbuster/moodbuster/key"
	"github.com/moodbuster/moodbuster/mood"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.MoodsShowSuggestions, true)
}

func TestQuery(t *testing.T) {
	Convey("Given remembered moods", t, func() {
		So(Remember(mood.Relaxed, 1), ShouldBeNil)
		So(Remember(mood.Romantic, 10), ShouldBeNil)

		Convey("Then suggestions should be sorted by rank", func() {
			s := SuggestMany("r")
			So(len(s), ShouldBeGreaterThanOrEqualTo, 2)
			So(s[0], ShouldEqual, mood.Romantic)
		})

		Convey("Then a fragment finds its mood", func() {
			So(Suggest("chill").MustGet(), ShouldEqual, mood.Relaxed)
			So(Suggest("xyz").IsAbsent(), ShouldBeTrue)
		})

		Convey("Then remembered moods lead the menu", func() {
			ranked := Ranked(mood.All())
			So(ranked, ShouldHaveLength, len(mood.All()))
			So(ranked[0], ShouldEqual, mood.Romantic)
			So(ranked[1], ShouldEqual, mood.Relaxed)
			So(ranked[2], ShouldEqual, mood.Cozy)
		})

		Convey("Then nothing is suggested when suggestions are off", func() {
			viper.Set(key.MoodsShowSuggestions, false)
			Reset(func() { viper.Set(key.MoodsShowSuggestions, true) })

			So(SuggestMany(""), ShouldBeEmpty)
			So(Ranked(mood.All())[0], ShouldEqual, mood.Cozy)
		})

		Convey("It sanitizes input", func() {
			So(sanitize("  COZY  "), ShouldEqual, "cozy")
		})
	})
}
