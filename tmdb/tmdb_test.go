package tmdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/moodbuster/moodbuster/key"
	"github.com/moodbuster/moodbuster/network"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	viper.Set(key.NetworkRequestsPerSecond, 0)
	viper.Set(key.NetworkBreakerFailures, 100)
}

func TestClient(t *testing.T) {
	Convey("Given a TMDB server", t, func() {
		var got *http.Request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r
			w.Header().Set("Content-Type", "application/json")
			switch r.URL.Path {
			case "/discover/movie", "/tv/popular":
				_, _ = w.Write([]byte(`{"page":1,"results":[{"id":550,"title":"Fight Club","genre_ids":[18]}]}`))
			case "/tv/1396":
				_, _ = w.Write([]byte(`{"id":1396,"name":"Breaking Bad","number_of_seasons":5,"episode_run_time":[45],
					"credits":{"cast":[{"name":"Bryan Cranston"}],"crew":[{"name":"Vince Gilligan","job":"Director"}]}}`))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		client := New(server.URL+"/", "secret", "en-US")
		ctx := context.Background()

		Convey("Discover passes filters and the api key", func() {
			titles, err := client.Discover(ctx, Movie, url.Values{"with_genres": {"35,10751"}, "with_keywords": {"10024"}})
			So(err, ShouldBeNil)
			So(titles, ShouldHaveLength, 1)
			So(titles[0].Title, ShouldEqual, "Fight Club")
			So(titles[0].GenreIDs, ShouldResemble, []int{18})

			q := got.URL.Query()
			So(q.Get("api_key"), ShouldEqual, "secret")
			So(q.Get("with_genres"), ShouldEqual, "35,10751")
			So(q.Get("language"), ShouldEqual, "en-US")
		})

		Convey("Popular hits the kind's popular list", func() {
			titles, err := client.Popular(ctx, TV)
			So(err, ShouldBeNil)
			So(titles, ShouldHaveLength, 1)
			So(got.URL.Path, ShouldEqual, "/tv/popular")
		})

		Convey("Details appends credits", func() {
			title, err := client.Details(ctx, TV, 1396)
			So(err, ShouldBeNil)
			So(got.URL.Query().Get("append_to_response"), ShouldEqual, "credits")
			So(title.Name, ShouldEqual, "Breaking Bad")
			So(title.Credits.Crew[0].Job, ShouldEqual, "Director")
		})

		Convey("An unknown title surfaces the status", func() {
			_, err := client.Details(ctx, Movie, 1)
			var status *network.StatusError
			So(errors.As(err, &status), ShouldBeTrue)
			So(status.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestMerge(t *testing.T) {
	Convey("Merge keeps list fields the details answer omits", t, func() {
		title := &Title{ID: 1, Title: "Up", GenreIDs: []int{16}, VoteAverage: 7.9}
		title.Merge(&Title{Runtime: 96, Genres: []Genre{{16, "Animation"}}})

		So(title.Title, ShouldEqual, "Up")
		So(title.VoteAverage, ShouldEqual, 7.9)
		So(title.Runtime, ShouldEqual, 96)
		So(title.Genres[0].Name, ShouldEqual, "Animation")

		title.Merge(nil)
		So(title.Runtime, ShouldEqual, 96)
	})
}
