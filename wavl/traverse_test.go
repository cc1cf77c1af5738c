package wavl_test

import (
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"wavltree/wavl"
)

func TestTraverseEmptyTree(t *testing.T) {
	Convey("Given an empty tree", t, func() {
		var root wavl.Root

		So(root.First(), ShouldBeNil)
		So(root.Last(), ShouldBeNil)
		So(root.Empty(), ShouldBeTrue)
	})
}

func TestTraverseOrder(t *testing.T) {
	Convey("Given a tree built from a shuffled key set", t, func() {
		rng := rand.New(rand.NewSource(1))
		keys := shuffledKeys(200, rng)

		var root wavl.Root
		for _, k := range keys {
			insertKey(&root, k)
		}

		Convey("First/Next sweeps every key in order (P1, P6)", func() {
			got := inorder(&root)

			So(len(got), ShouldEqual, len(keys))
			for i := 1; i < len(got); i++ {
				So(got[i-1], ShouldBeLessThan, got[i])
			}
		})

		Convey("Last/Prev sweeps the same keys in reverse", func() {
			var got []int
			for n := root.Last(); n != nil; n = wavl.Prev(n) {
				got = append(got, asItem(n).key)
			}

			So(len(got), ShouldEqual, len(keys))
			for i := 1; i < len(got); i++ {
				So(got[i-1], ShouldBeGreaterThan, got[i])
			}
		})

		Convey("Next from the last node is nil", func() {
			So(wavl.Next(root.Last()), ShouldBeNil)
		})

		Convey("Prev from the first node is nil", func() {
			So(wavl.Prev(root.First()), ShouldBeNil)
		})
	})
}
