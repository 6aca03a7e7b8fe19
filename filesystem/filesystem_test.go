package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackend(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("Given the gache adapter over a memory filesystem", t, func() {
		SetMemMapFs()
		fs := GacheFs{}
		dir := filepath.Join("/", "picks")

		Convey("It creates directories and files through the backend", func() {
			So(fs.MkdirAll(dir, os.ModePerm), ShouldBeNil)

			f, err := fs.OpenFile(filepath.Join(dir, "a.json"), os.O_CREATE|os.O_RDWR, 0644)
			So(err, ShouldBeNil)
			_, err = f.Write([]byte("{}"))
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			content, err := API().ReadFile(filepath.Join(dir, "a.json"))
			So(err, ShouldBeNil)
			So(string(content), ShouldEqual, "{}")
		})
	})
}
