package tasty

import (
	"context"
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

func TestRecipes(t *testing.T) {
	Convey("Given the Tasty API", t, func() {
		var got *http.Request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r
			_, _ = w.Write([]byte(`{"count":1,"results":[{"id":7,"name":"Hot Chocolate","slug":"hot-chocolate",
				"num_servings":2,"tags":[{"name":"easy"}],
				"sections":[{"components":[{"raw_text":"1 cup milk"},{"raw_text":"cocoa"}]}],
				"instructions":[{"display_text":"Heat milk."},{"display_text":"Stir."}]}]}`))
		}))
		defer server.Close()

		client := New(server.URL, "rapid")

		Convey("Recipes asks for the first page and decodes it", func() {
			recipes, err := client.Recipes(context.Background(), "hot chocolate")
			So(err, ShouldBeNil)
			So(recipes, ShouldHaveLength, 1)
			So(recipes[0].Sections[0].Components, ShouldHaveLength, 2)
			So(recipes[0].Instructions[1].DisplayText, ShouldEqual, "Stir.")

			So(got.URL.Path, ShouldEqual, "/recipes/list")
			So(got.URL.Query().Get("size"), ShouldEqual, "20")
			So(got.URL.Query().Get("q"), ShouldEqual, "hot chocolate")
			So(got.Header.Get("X-RapidAPI-Key"), ShouldEqual, "rapid")
		})
	})
}
