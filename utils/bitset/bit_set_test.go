package bitset

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBitSetBasic(t *testing.T) {
	Convey("TestBitSetBasic", t, func() {
		Convey("set get clear", func() {
			bs := NewBitSet(100)
			So(bs.BitLength(), ShouldEqual, 100)
			So(bs.GetBit(3), ShouldEqual, 0)
			bs.SetBit(3)
			bs.SetBit(64)
			bs.SetBit(99)
			So(bs.GetBit(3), ShouldEqual, 1)
			So(bs.GetBit(64), ShouldEqual, 1)
			So(bs.GetBit(99), ShouldEqual, 1)
			So(bs.GetBit(4), ShouldEqual, 0)
			So(bs.Count(), ShouldEqual, 3)
			bs.ClearBit(64)
			So(bs.GetBit(64), ShouldEqual, 0)
			So(bs.Count(), ShouldEqual, 2)
		})
		Convey("越界的位自动扩容", func() {
			bs := NewBitSet(10)
			bs.SetBit(130)
			So(bs.GetBit(130), ShouldEqual, 1)
			So(bs.BitLength(), ShouldEqual, 131)
		})
		Convey("负数位忽略", func() {
			bs := NewBitSet(10)
			bs.SetBit(-1)
			So(bs.Count(), ShouldEqual, 0)
			So(bs.GetBit(-1), ShouldEqual, 0)
		})
	})
}

func TestBitSetOps(t *testing.T) {
	Convey("TestBitSetOps", t, func() {
		Convey("union和xor", func() {
			a := NewBitSet(70)
			a.SetBit(1)
			a.SetBit(65)
			b := NewBitSet(70)
			b.SetBit(1)
			b.SetBit(2)
			a.Union(b)
			So(a.AllOneBits(), ShouldResemble, []int{1, 2, 65})

			c := NewBitSet(70)
			c.SetBit(1)
			c.SetBit(65)
			c.Xor(b)
			So(c.AllOneBits(), ShouldResemble, []int{2, 65})
		})
		Convey("containsAll", func() {
			tx := NewBitSet(10)
			tx.SetBit(0)
			tx.SetBit(2)
			tx.SetBit(5)
			sub := NewBitSet(10)
			sub.SetBit(0)
			sub.SetBit(5)
			So(tx.ContainsAll(sub), ShouldBeTrue)
			sub.SetBit(3)
			So(tx.ContainsAll(sub), ShouldBeFalse)
			// 空集是任何集合的子集
			So(tx.ContainsAll(NewBitSet(10)), ShouldBeTrue)
		})
		Convey("containsWord", func() {
			tx := NewBitSet(10)
			tx.SetBit(0)
			tx.SetBit(2)
			So(tx.ContainsWord(0b101), ShouldBeTrue)
			So(tx.ContainsWord(0b111), ShouldBeFalse)
			So(tx.ContainsWord(0), ShouldBeTrue)
		})
		Convey("clone不共享底层数据", func() {
			a := NewBitSet(10)
			a.SetBit(1)
			b := a.Clone()
			b.SetBit(2)
			So(a.GetBit(2), ShouldEqual, 0)
			So(b.GetBit(1), ShouldEqual, 1)
		})
		Convey("copyFrom整体覆盖", func() {
			a := NewBitSet(10)
			a.SetBit(1)
			b := NewBitSet(70)
			b.SetBit(65)
			a.CopyFrom(b)
			So(a.AllOneBits(), ShouldResemble, []int{65})
			So(a.BitLength(), ShouldEqual, 70)
		})
	})
}

func TestNextSetBit(t *testing.T) {
	Convey("TestNextSetBit", t, func() {
		bs := NewBitSet(130)
		bs.SetBit(0)
		bs.SetBit(63)
		bs.SetBit(64)
		bs.SetBit(129)
		So(bs.NextSetBit(0), ShouldEqual, 0)
		So(bs.NextSetBit(1), ShouldEqual, 63)
		So(bs.NextSetBit(64), ShouldEqual, 64)
		So(bs.NextSetBit(65), ShouldEqual, 129)
		So(bs.NextSetBit(130), ShouldEqual, -1)
		So(NewBitSet(0).NextSetBit(0), ShouldEqual, -1)
	})
}
