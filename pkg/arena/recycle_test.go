package arena_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"wavltree/pkg/arena"
)

type node struct{ a, b, c int64 }

func TestRecycled(t *testing.T) {
	Convey("Given a Recycled allocator", t, func() {
		a := &arena.Recycled{}

		Convey("When a value is freed and a same-sized value is allocated again", func() {
			p1 := arena.New(a, node{1, 2, 3})
			arena.Free(a, p1)

			p2 := arena.New(a, node{4, 5, 6})

			Convey("Then the block is reused", func() {
				So(p2, ShouldEqual, p1)
				So(p2.a, ShouldEqual, 4)
			})
		})

		Convey("When many values of mixed lifetime churn through the allocator", func() {
			live := make([]*node, 0, 64)

			for i := range 256 {
				p := arena.New(a, node{int64(i), 0, 0})

				if i%2 == 0 {
					live = append(live, p)
				} else {
					arena.Free(a, p)
				}
			}

			Convey("Then every retained value still holds its own data", func() {
				for i, p := range live {
					So(p.a, ShouldEqual, int64(i*2))
				}
			})
		})

		Convey("When Reset is called", func() {
			p := arena.New(a, node{1, 2, 3})
			arena.Free(a, p)
			a.Reset()

			Convey("Then the free list no longer offers stale blocks", func() {
				q := arena.New(a, node{9, 9, 9})
				So(q.a, ShouldEqual, 9)
			})
		})
	})
}
