package pager

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestIndex(t *testing.T) {
	Convey("Next and Prev wrap around", t, func() {
		So(Next(0, 3), ShouldEqual, 1)
		So(Next(2, 3), ShouldEqual, 0)
		So(Prev(0, 3), ShouldEqual, 2)
		So(Prev(1, 3), ShouldEqual, 0)
	})

	Convey("An empty ring always yields 0", t, func() {
		So(Next(5, 0), ShouldEqual, 0)
		So(Prev(0, 0), ShouldEqual, 0)
	})

	Convey("n steps forward return to the start", t, func() {
		i := 0
		for range 7 {
			i = Next(i, 7)
		}
		So(i, ShouldEqual, 0)
	})
}

func TestPager(t *testing.T) {
	Convey("Given a pager over three items", t, func() {
		p := New([]string{"a", "b", "c"})

		Convey("It starts at the first item", func() {
			cur, ok := p.Current()
			So(ok, ShouldBeTrue)
			So(cur, ShouldEqual, "a")
		})

		Convey("Prev from the start wraps to the last item", func() {
			cur, _ := p.Prev()
			So(cur, ShouldEqual, "c")
			So(p.Index(), ShouldEqual, 2)
		})

		Convey("Next then Prev is a no-op", func() {
			p.Next()
			cur, _ := p.Prev()
			So(cur, ShouldEqual, "a")
		})

		Convey("Reset replaces the items and rewinds", func() {
			p.Next()
			p.Reset([]string{"x"})
			So(p.Index(), ShouldEqual, 0)
			So(p.Len(), ShouldEqual, 1)
			cur, _ := p.Next()
			So(cur, ShouldEqual, "x")
		})
	})

	Convey("An empty pager has no current item", t, func() {
		p := New[int](nil)
		_, ok := p.Current()
		So(ok, ShouldBeFalse)
		_, ok = p.Next()
		So(ok, ShouldBeFalse)
	})
}
