package inline

import (
	"bytes"
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/moodbuster/moodbuster/filesystem"
	"github.com/moodbuster/moodbuster/googlebooks"
	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/mood"
	"github.com/moodbuster/moodbuster/suggest"
	"github.com/samber/lo"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

type fakeBooks struct {
	volumes []*googlebooks.Volume
}

func (f *fakeBooks) Volumes(context.Context, string) ([]*googlebooks.Volume, error) {
	return f.volumes, nil
}

func items(titles ...string) []*media.Item {
	return lo.Map(titles, func(t string, _ int) *media.Item { return &media.Item{Title: t} })
}

func titles(items []*media.Item) []string {
	return lo.Map(items, func(i *media.Item, _ int) string { return i.Title })
}

func TestParsePicker(t *testing.T) {
	Convey("Given three suggestions", t, func() {
		all := items("a", "b", "c")

		Convey("Keywords pick the expected ones", func() {
			for description, want := range map[string][]string{
				"first": {"a"},
				"last":  {"c"},
				"all":   {"a", "b", "c"},
				"1":     {"b"},
				"9":     {},
				"1-2":   {"b", "c"},
				"2-7":   {"c"},
			} {
				picker, err := ParsePicker(description)
				So(err, ShouldBeNil)
				So(titles(picker(all)), ShouldResemble, want)
			}
		})

		Convey("Random picks exactly one", func() {
			picker, err := ParsePicker("random")
			So(err, ShouldBeNil)
			So(picker(all), ShouldHaveLength, 1)
			So(picker(nil), ShouldBeEmpty)
		})

		Convey("Garbage is rejected", func() {
			for _, description := range []string{"middle", "3-1", "a-b"} {
				_, err := ParsePicker(description)
				So(err, ShouldNotBeNil)
			}
		})
	})
}

func TestRun(t *testing.T) {
	Convey("Given a books catalog", t, func() {
		books := &fakeBooks{volumes: []*googlebooks.Volume{
			{ID: "x1", VolumeInfo: googlebooks.VolumeInfo{Title: "Dune", Authors: []string{"Frank Herbert"}, InfoLink: "https://books.google.com/x1"}},
		}}

		var buf bytes.Buffer
		options := &Options{
			Out:       &buf,
			Suggester: &suggest.Suggester{Books: books},
			Mood:      mood.Imaginative,
			Type:      media.Book,
		}

		Convey("When printing json", func() {
			options.Json = true
			So(Run(context.Background(), options), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Mood, ShouldEqual, mood.Imaginative.String())
			So(output.Type, ShouldEqual, "Book")
			So(output.Result, ShouldHaveLength, 1)
			So(output.Result[0].Title, ShouldEqual, "Dune")
			So(output.Result[0].Mood, ShouldEqual, mood.Imaginative.String())
		})

		Convey("When printing text", func() {
			So(Run(context.Background(), options), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, "Dune\n")
			So(buf.String(), ShouldContainSubstring, "Frank Herbert")
			So(buf.String(), ShouldContainSubstring, "More Info: https://books.google.com/x1")
		})

		Convey("When nothing is found", func() {
			books.volumes = nil

			Convey("Json prints an empty result", func() {
				options.Json = true
				So(Run(context.Background(), options), ShouldBeNil)

				var output Output
				So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
				So(output.Result, ShouldBeEmpty)
			})

			Convey("Text fails with the no results error", func() {
				err := Run(context.Background(), options)
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "try a different mood")
			})
		})

		Convey("When a picker is set", func() {
			picker, _ := ParsePicker("9")
			options.Picker = mo.Some(picker)
			options.Json = true
			So(Run(context.Background(), options), ShouldBeNil)
			So(buf.String(), ShouldContainSubstring, `"result":[]`)
		})
	})
}
