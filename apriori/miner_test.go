package apriori

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"fim-shenglin/fim_config"
	"fim-shenglin/utils"
	"fim-shenglin/utils/bitset"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// relationOf 按下标集合建事务集
func relationOf(dim int, transactions ...[]int) *MemoryRelation {
	vectors := make([]*bitset.BitSet, 0, len(transactions))
	for _, tx := range transactions {
		vectors = append(vectors, vector(dim, tx...))
	}
	return NewMemoryRelation(vectors, dim, nil)
}

// marketRelation 固定的演示数据,维度5
func marketRelation() *MemoryRelation {
	return relationOf(5,
		[]int{0, 1, 2},
		[]int{0, 1},
		[]int{1, 2, 3},
		[]int{0, 2, 3},
		[]int{4},
	)
}

func TestNewMinerValidation(t *testing.T) {
	Convey("TestNewMinerValidation", t, func() {
		Convey("两个阈值都给报错", func() {
			_, err := NewMiner(MinerOptions{MinFrequency: floatPtr(0.5), MinSupport: intPtr(2)})
			So(err, ShouldEqual, utils.ErrThresholdBothSet)
		})
		Convey("一个都不给也报错", func() {
			_, err := NewMiner(MinerOptions{})
			So(err, ShouldEqual, utils.ErrThresholdNoneSet)
		})
		Convey("频率越界", func() {
			_, err := NewMiner(MinerOptions{MinFrequency: floatPtr(1.5)})
			So(err, ShouldEqual, utils.ErrFrequencyOutOfRange)
			_, err = NewMiner(MinerOptions{MinFrequency: floatPtr(-0.1)})
			So(err, ShouldEqual, utils.ErrFrequencyOutOfRange)
		})
		Convey("支持度为负", func() {
			_, err := NewMiner(MinerOptions{MinSupport: intPtr(-1)})
			So(err, ShouldEqual, utils.ErrSupportNegative)
		})
		Convey("未知编码", func() {
			_, err := NewMiner(MinerOptions{MinSupport: intPtr(2), Encoding: "bitmap"})
			So(err, ShouldEqual, utils.ErrUnknownEncoding)
		})
		Convey("空编码当sparse", func() {
			m, err := NewMiner(MinerOptions{MinSupport: intPtr(2)})
			So(err, ShouldBeNil)
			So(m.encoding, ShouldEqual, fim_config.EncodingSparse)
		})
	})
}

func TestRequiredSupport(t *testing.T) {
	Convey("TestRequiredSupport", t, func() {
		Convey("频率阈值向上取整", func() {
			m, _ := NewMiner(MinerOptions{MinFrequency: floatPtr(0.5)})
			So(m.RequiredSupport(4), ShouldEqual, 2)
			So(m.RequiredSupport(5), ShouldEqual, 3)
			So(m.RequiredSupport(0), ShouldEqual, 0)
		})
		Convey("绝对阈值不随事务数变", func() {
			m, _ := NewMiner(MinerOptions{MinSupport: intPtr(3)})
			So(m.RequiredSupport(4), ShouldEqual, 3)
			So(m.RequiredSupport(400), ShouldEqual, 3)
		})
	})
}

func TestResolveEncoding(t *testing.T) {
	Convey("TestResolveEncoding", t, func() {
		Convey("auto按维度挑", func() {
			m, _ := NewMiner(MinerOptions{MinSupport: intPtr(2), Encoding: fim_config.EncodingAuto})
			So(m.resolveEncoding(5), ShouldEqual, fim_config.EncodingSmallDense)
			So(m.resolveEncoding(64), ShouldEqual, fim_config.EncodingSmallDense)
			So(m.resolveEncoding(65), ShouldEqual, fim_config.EncodingDense)
			So(m.resolveEncoding(512), ShouldEqual, fim_config.EncodingDense)
			So(m.resolveEncoding(513), ShouldEqual, fim_config.EncodingSparse)
		})
		Convey("smalldense放不下退回dense", func() {
			m, _ := NewMiner(MinerOptions{MinSupport: intPtr(2), Encoding: fim_config.EncodingSmallDense})
			So(m.resolveEncoding(64), ShouldEqual, fim_config.EncodingSmallDense)
			So(m.resolveEncoding(65), ShouldEqual, fim_config.EncodingDense)
		})
	})
}

func TestRunMarketData(t *testing.T) {
	Convey("TestRunMarketData", t, func() {
		for _, encoding := range []string{
			fim_config.EncodingSparse,
			fim_config.EncodingDense,
			fim_config.EncodingSmallDense,
			fim_config.EncodingAuto,
		} {
			Convey("编码"+encoding, func() {
				m, err := NewMiner(MinerOptions{MinSupport: intPtr(2), Encoding: encoding})
				So(err, ShouldBeNil)
				result, err := m.Run(marketRelation())
				So(err, ShouldBeNil)
				So(result.Lines(), ShouldResemble, []string{
					"0: 3",
					"1: 3",
					"2: 3",
					"3: 2",
					"0, 1: 2",
					"0, 2: 2",
					"1, 2: 2",
					"2, 3: 2",
				})
			})
		}
	})
}

func TestRunProperties(t *testing.T) {
	Convey("TestRunProperties", t, func() {
		m, _ := NewMiner(MinerOptions{MinSupport: intPtr(2)})
		relation := marketRelation()
		result, err := m.Run(relation)
		So(err, ShouldBeNil)

		Convey("支持度等于精确重数", func() {
			for _, is := range result.Itemsets {
				count := 0
				for i := 0; i < relation.Size(); i++ {
					if is.ContainedIn(relation.Get(i)) {
						count++
					}
				}
				So(is.Support(), ShouldEqual, count)
				So(is.Support(), ShouldBeGreaterThanOrEqualTo, 2)
			}
		})
		Convey("向下封闭:频繁项集的全部子集也频繁且支持度不小", func() {
			for _, is := range result.Itemsets {
				if is.Length() < 2 {
					continue
				}
				indices := is.Indices()
				for drop := range indices {
					sub := make([]int, 0, len(indices)-1)
					for k, idx := range indices {
						if k != drop {
							sub = append(sub, idx)
						}
					}
					found := false
					for _, other := range result.Itemsets {
						if ItemsetEqual(other, NewSparseItemset(sub...)) {
							found = true
							So(other.Support(), ShouldBeGreaterThanOrEqualTo, is.Support())
						}
					}
					So(found, ShouldBeTrue)
				}
			}
		})
		Convey("两次运行结果逐位一致", func() {
			m2, _ := NewMiner(MinerOptions{MinSupport: intPtr(2)})
			again, err := m2.Run(marketRelation())
			So(err, ShouldBeNil)
			So(again.Lines(), ShouldResemble, result.Lines())
		})
	})
}

func TestRunEdgeCases(t *testing.T) {
	Convey("TestRunEdgeCases", t, func() {
		Convey("零事务返回空结果", func() {
			m, _ := NewMiner(MinerOptions{MinSupport: intPtr(1)})
			result, err := m.Run(relationOf(5))
			So(err, ShouldBeNil)
			So(result.Itemsets, ShouldBeEmpty)
		})
		Convey("零维度返回空结果", func() {
			m, _ := NewMiner(MinerOptions{MinSupport: intPtr(0)})
			result, err := m.Run(relationOf(0, []int{}, []int{}))
			So(err, ShouldBeNil)
			So(result.Itemsets, ShouldBeEmpty)
		})
		Convey("频率0.5等价于4条事务上支持度2", func() {
			data := relationOf(4,
				[]int{0, 1, 2},
				[]int{0, 1},
				[]int{0, 2, 3},
				[]int{2, 3},
			)
			byFreq, _ := NewMiner(MinerOptions{MinFrequency: floatPtr(0.5)})
			bySupp, _ := NewMiner(MinerOptions{MinSupport: intPtr(2)})
			r1, err := byFreq.Run(data)
			So(err, ShouldBeNil)
			r2, err := bySupp.Run(relationOf(4,
				[]int{0, 1, 2},
				[]int{0, 1},
				[]int{0, 2, 3},
				[]int{2, 3},
			))
			So(err, ShouldBeNil)
			So(r1.Lines(), ShouldResemble, r2.Lines())
		})
		Convey("阈值0时全幂集频繁也能跑完", func() {
			m, _ := NewMiner(MinerOptions{MinSupport: intPtr(1)})
			result, err := m.Run(relationOf(3, []int{0, 1, 2}))
			So(err, ShouldBeNil)
			// 3个1项集+3个2项集+1个3项集
			So(len(result.Itemsets), ShouldEqual, 7)
		})
	})
}
