package apriori

import (
	"math/bits"
	"strconv"
	"strings"

	"fim-shenglin/fim_config"
	"fim-shenglin/utils/bitset"
)

// Itemset 一个项集:一组属性下标加上扫描时累计的支持度
// 同一次挖掘里同一层只会用同一种编码,混用会在连接步报内部错误
// 除支持度计数外项集都是不可变的,计数只归当层的扫描步改
type Itemset interface {
	// ContainedIn 该项集的全部属性位在事务里是否都为1
	ContainedIn(bv *bitset.BitSet) bool
	// Length 项集的基数
	Length() int
	// Indices 全部属性下标,升序
	Indices() []int
	// Support 当前累计的支持度
	Support() int
	// AppendTo 输出成 "标签, 标签: 支持度" 的形式,meta为nil时用下标
	AppendTo(buf *strings.Builder, meta *Meta)

	addSupport()
}

// CompareItemsets 项集全序:先比基数,再按下标字典序升序
// dense编码在字上比bit反转后的数值,等价于字典序但不用展开下标
// 连接步的二分查找依赖这个序,不是随便挑的
func CompareItemsets(a, b Itemset) int {
	if c := a.Length() - b.Length(); c != 0 {
		if c < 0 {
			return -1
		}
		return 1
	}
	switch x := a.(type) {
	case *OneItemset:
		if y, ok := b.(*OneItemset); ok {
			return intCompare(x.item, y.item)
		}
	case *SparseItemset:
		if y, ok := b.(*SparseItemset); ok {
			for i := range x.indices {
				if c := intCompare(x.indices[i], y.indices[i]); c != 0 {
					return c
				}
			}
			return 0
		}
	case *DenseItemset:
		if y, ok := b.(*DenseItemset); ok {
			return compareWords(x.items.Words(), y.items.Words())
		}
	case *SmallDenseItemset:
		if y, ok := b.(*SmallDenseItemset); ok {
			return compareReversedWord(x.items, y.items)
		}
	}
	// 跨编码时退化成比下标序列
	return compareIndexSlices(a.Indices(), b.Indices())
}

// ItemsetEqual 相等即全序比较为0,跨编码也成立
func ItemsetEqual(a, b Itemset) bool {
	return CompareItemsets(a, b) == 0
}

// ItemsString 只有项没有支持度的文本形式,给csv输出用
func ItemsString(is Itemset, meta *Meta) string {
	parts := make([]string, 0, is.Length())
	for _, idx := range is.Indices() {
		parts = append(parts, meta.Label(idx))
	}
	return strings.Join(parts, fim_config.ItemDelimiter)
}

// Render 单个项集的完整文本形式
func Render(is Itemset, meta *Meta) string {
	var buf strings.Builder
	is.AppendTo(&buf, meta)
	return buf.String()
}

func intCompare(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func compareIndexSlices(xs, ys []int) int {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	for i := 0; i < n; i++ {
		if c := intCompare(xs[i], ys[i]); c != 0 {
			return c
		}
	}
	return intCompare(len(xs), len(ys))
}

// compareWords 低位块在前逐块比,第一个不同的块按bit反转值定序
func compareWords(xs, ys []uint64) int {
	n := len(xs)
	if len(ys) > n {
		n = len(ys)
	}
	for i := 0; i < n; i++ {
		var x, y uint64
		if i < len(xs) {
			x = xs[i]
		}
		if i < len(ys) {
			y = ys[i]
		}
		if x != y {
			return compareReversedWord(x, y)
		}
	}
	return 0
}

// compareReversedWord 反转后数值大的那个最低下标更小,排前面
func compareReversedWord(x, y uint64) int {
	rx, ry := bits.Reverse64(x), bits.Reverse64(y)
	if rx > ry {
		return -1
	}
	if rx < ry {
		return 1
	}
	return 0
}

// OneItemset 1项集,第一层专用
type OneItemset struct {
	item    int
	support int
}

func NewOneItemset(item int) *OneItemset {
	return &OneItemset{item: item}
}

func (is *OneItemset) Length() int {
	return 1
}

func (is *OneItemset) ContainedIn(bv *bitset.BitSet) bool {
	return bv.GetBit(is.item) != 0
}

func (is *OneItemset) Indices() []int {
	return []int{is.item}
}

func (is *OneItemset) Support() int {
	return is.support
}

func (is *OneItemset) addSupport() {
	is.support++
}

func (is *OneItemset) AppendTo(buf *strings.Builder, meta *Meta) {
	buf.WriteString(meta.Label(is.item))
	buf.WriteString(": ")
	buf.WriteString(strconv.Itoa(is.support))
}

// SparseItemset 有序下标数组编码,基数远小于维度时省内存
type SparseItemset struct {
	indices []int
	support int
}

// NewSparseItemset 下标必须严格升序
func NewSparseItemset(indices ...int) *SparseItemset {
	return &SparseItemset{indices: indices}
}

func (is *SparseItemset) Length() int {
	return len(is.indices)
}

func (is *SparseItemset) ContainedIn(bv *bitset.BitSet) bool {
	for _, item := range is.indices {
		if bv.GetBit(item) == 0 {
			return false
		}
	}
	return true
}

func (is *SparseItemset) Indices() []int {
	result := make([]int, len(is.indices))
	copy(result, is.indices)
	return result
}

func (is *SparseItemset) Support() int {
	return is.support
}

func (is *SparseItemset) addSupport() {
	is.support++
}

func (is *SparseItemset) AppendTo(buf *strings.Builder, meta *Meta) {
	for j, idx := range is.indices {
		if j > 0 {
			buf.WriteString(fim_config.ItemDelimiter)
		}
		buf.WriteString(meta.Label(idx))
	}
	buf.WriteString(": ")
	buf.WriteString(strconv.Itoa(is.support))
}

// DenseItemset 全维度位图编码加显式基数,维度小或基数大时更划算
type DenseItemset struct {
	items   *bitset.BitSet
	length  int
	support int
}

// NewDenseItemset 由下标构造,dim是全维度
func NewDenseItemset(dim int, indices ...int) *DenseItemset {
	mask := bitset.NewBitSet(dim)
	for _, idx := range indices {
		mask.SetBit(idx)
	}
	return &DenseItemset{items: mask, length: len(indices)}
}

func (is *DenseItemset) Length() int {
	return is.length
}

func (is *DenseItemset) ContainedIn(bv *bitset.BitSet) bool {
	return bv.ContainsAll(is.items)
}

func (is *DenseItemset) Indices() []int {
	return is.items.AllOneBits()
}

func (is *DenseItemset) Support() int {
	return is.support
}

func (is *DenseItemset) addSupport() {
	is.support++
}

func (is *DenseItemset) AppendTo(buf *strings.Builder, meta *Meta) {
	first := true
	for i := is.items.NextSetBit(0); i >= 0; i = is.items.NextSetBit(i + 1) {
		if !first {
			buf.WriteString(fim_config.ItemDelimiter)
		}
		first = false
		buf.WriteString(meta.Label(i))
	}
	buf.WriteString(": ")
	buf.WriteString(strconv.Itoa(is.support))
}

// SmallDenseItemset 单机器字版本的位图编码,维度不超过64时用
type SmallDenseItemset struct {
	items   uint64
	length  int
	support int
}

func NewSmallDenseItemset(indices ...int) *SmallDenseItemset {
	var mask uint64
	for _, idx := range indices {
		mask |= 1 << uint(idx)
	}
	return &SmallDenseItemset{items: mask, length: len(indices)}
}

func (is *SmallDenseItemset) Length() int {
	return is.length
}

func (is *SmallDenseItemset) ContainedIn(bv *bitset.BitSet) bool {
	return bv.ContainsWord(is.items)
}

func (is *SmallDenseItemset) Indices() []int {
	result := make([]int, 0, is.length)
	for i := nextSetBit64(is.items, 0); i >= 0; i = nextSetBit64(is.items, i+1) {
		result = append(result, i)
	}
	return result
}

func (is *SmallDenseItemset) Support() int {
	return is.support
}

func (is *SmallDenseItemset) addSupport() {
	is.support++
}

func (is *SmallDenseItemset) AppendTo(buf *strings.Builder, meta *Meta) {
	first := true
	for i := nextSetBit64(is.items, 0); i >= 0; i = nextSetBit64(is.items, i+1) {
		if !first {
			buf.WriteString(fim_config.ItemDelimiter)
		}
		first = false
		buf.WriteString(meta.Label(i))
	}
	buf.WriteString(": ")
	buf.WriteString(strconv.Itoa(is.support))
}

// nextSetBit64 单字版的找下一个1位,没有返回-1
func nextSetBit64(w uint64, from int) int {
	if from < 0 {
		from = 0
	}
	if from >= 64 {
		return -1
	}
	w >>= uint(from)
	if w == 0 {
		return -1
	}
	return from + bits.TrailingZeros64(w)
}
