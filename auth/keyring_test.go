package auth

import (
	"testing"

	"github.com/moodbuster/moodbuster/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

func init() {
	keyring.MockInit()
}

func TestLookup(t *testing.T) {
	Convey("Given a credential only in the keyring", t, func() {
		viper.Set(key.TMDBAPIKey, "")
		So(Set(key.TMDBAPIKey, "from-keyring"), ShouldBeNil)
		Reset(func() {
			_ = Delete(key.TMDBAPIKey)
			viper.Set(key.TMDBAPIKey, "")
		})

		Convey("It is found in the keyring", func() {
			v, src := Lookup(key.TMDBAPIKey)
			So(v, ShouldEqual, "from-keyring")
			So(src, ShouldEqual, SourceKeyring)
		})

		Convey("The configuration takes precedence", func() {
			viper.Set(key.TMDBAPIKey, "from-config")
			v, src := Lookup(key.TMDBAPIKey)
			So(v, ShouldEqual, "from-config")
			So(src, ShouldEqual, SourceConfig)
		})

		Convey("Deleting it leaves nothing", func() {
			So(Delete(key.TMDBAPIKey), ShouldBeNil)
			So(Get(key.TMDBAPIKey), ShouldBeEmpty)
		})
	})

	Convey("Deleting a credential that was never stored is fine", t, func() {
		So(Delete(key.GoogleBooksAPIKey), ShouldBeNil)
	})

	Convey("Only credentials can be stored", t, func() {
		So(Set(key.SuggestLimit, "5"), ShouldNotBeNil)
		So(IsSecret(key.RapidAPIKey), ShouldBeTrue)
	})
}
