package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/moodbuster/moodbuster/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		So(result(Compare("1.2.3", "1.2.3")), ShouldEqual, 0)
		So(result(Compare("v1.3.0", "1.2.9")), ShouldEqual, 1)
		So(result(Compare("1.2", "1.2.1")), ShouldEqual, -1)
		So(result(Compare("2.0.0-rc.1", "2.0.0")), ShouldEqual, 0)

		_, err := Compare("latest", "1.0.0")
		So(err, ShouldNotBeNil)
	})
}

func TestLatest(t *testing.T) {
	Convey("Given a releases endpoint", t, func() {
		hits := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			_, _ = w.Write([]byte(`{"tag_name":"v9.1.0"}`))
		}))
		defer server.Close()

		prev := ReleasesURL
		ReleasesURL = server.URL
		Reset(func() { ReleasesURL = prev })

		Convey("It strips the prefix and caches the answer", func() {
			v, err := Latest(context.Background())
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "9.1.0")

			v, err = Latest(context.Background())
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "9.1.0")
			So(hits, ShouldBeLessThanOrEqualTo, 1)
		})
	})
}

func result(n int, _ error) int { return n }
