package igdb

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/moodbuster/moodbuster/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	viper.Set(key.NetworkRequestsPerSecond, 0)
	viper.Set(key.NetworkBreakerFailures, 100)
}

func TestQuery(t *testing.T) {
	Convey("Given a keyword query", t, func() {
		body := ByKeyword("dating sim").String()

		Convey("It asks for every card field and filters by keyword", func() {
			So(body, ShouldStartWith, "fields name,genres.name,platforms.name,")
			So(body, ShouldContainSubstring, `where keywords.name = "dating sim";`)
			So(body, ShouldEndWith, "limit 20;")
		})
	})

	Convey("The popular query sorts by votes", t, func() {
		So(Popular().String(), ShouldContainSubstring, "sort rating_count desc;")
	})
}

func TestGames(t *testing.T) {
	Convey("Given an IGDB server", t, func() {
		var (
			body    string
			headers http.Header
		)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			body, headers = string(raw), r.Header
			_, _ = w.Write([]byte(`[{"id":1,"name":"Hades","rating":93.1,"first_release_date":1600992000,
				"involved_companies":[{"company":{"name":"Supergiant Games"},"developer":true,"publisher":true}],
				"cover":{"url":"//images.igdb.com/igdb/image/upload/t_thumb/co1.jpg"}}]`))
		}))
		defer server.Close()

		client := New(server.URL, "client", "token")

		Convey("Games posts the body with Twitch credentials", func() {
			games, err := client.Games(context.Background(), ByKeyword("roguelike"))
			So(err, ShouldBeNil)
			So(games, ShouldHaveLength, 1)
			So(games[0].Name, ShouldEqual, "Hades")
			So(games[0].InvolvedCompanies[0].Developer, ShouldBeTrue)

			So(headers.Get("Client-ID"), ShouldEqual, "client")
			So(headers.Get("Authorization"), ShouldEqual, "Bearer token")
			So(body, ShouldContainSubstring, `"roguelike"`)
		})
	})
}
