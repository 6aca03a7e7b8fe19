package util

import (
	"testing"

	"github.com/moodbuster/moodbuster/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "suggestion", "suggestions"), ShouldEqual, "1 suggestion")
		So(Quantify(0, "suggestion", "suggestions"), ShouldEqual, "0 suggestions")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("movie"), ShouldEqual, "Movie")
		So(Capitalize("élan"), ShouldEqual, "Élan")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestClamp(t *testing.T) {
	Convey("Clamp", t, func() {
		So(Clamp(5, 0, 3), ShouldEqual, 3)
		So(Clamp(-1, 0, 3), ShouldEqual, 0)
		So(Clamp(2, 0, 3), ShouldEqual, 2)
	})
}

func TestFirstNonEmpty(t *testing.T) {
	Convey("FirstNonEmpty", t, func() {
		So(FirstNonEmpty("", "name", "title"), ShouldEqual, "name")
		So(FirstNonEmpty("", ""), ShouldEqual, "")
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete removes files and directories", t, func() {
		So(filesystem.API().MkdirAll("/d/e", 0755), ShouldBeNil)
		So(filesystem.API().WriteFile("/d/e/f.json", []byte("{}"), 0644), ShouldBeNil)

		So(Delete("/d/e/f.json"), ShouldBeNil)
		exists, _ := filesystem.API().Exists("/d/e/f.json")
		So(exists, ShouldBeFalse)

		So(Delete("/d"), ShouldBeNil)
		exists, _ = filesystem.API().Exists("/d")
		So(exists, ShouldBeFalse)
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[string]
		s.Push("types")
		s.Push("moods")
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, "moods")
		So(s.Pop(), ShouldEqual, "moods")
		So(s.Pop(), ShouldEqual, "types")
		So(s.Pop(), ShouldEqual, "")
		s.Push("x")
		s.Clear()
		So(s.Len(), ShouldEqual, 0)
	})
}
