package apriori

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/slices"

	"fim-shenglin/fim_config"
	"fim-shenglin/utils/bitset"
)

// InternalError 连接步遇到了不该出现的项集编码
// 说明同一层混进了不同编码,是构造期的bug,不可恢复,和参数校验错误区分开
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return "InternalError: " + e.Msg
}

func internalErrorf(format string, args ...interface{}) *InternalError {
	return &InternalError{Msg: fmt.Sprintf(format, args...)}
}

// searchItemset 在有序频繁项集列表里二分找目标子集
func searchItemset(sorted []Itemset, target Itemset) bool {
	_, found := slices.BinarySearchFunc(sorted, target, CompareItemsets)
	return found
}

// aprioriGenerate 由L层频繁项集两两连接生成L+1层候选,并按向下封闭性剪枝
// 输入必须按CompareItemsets有序,输出保持有序
// 向下封闭性的完整子集验证是候选集远小于幂集的关键,不能省;
// 末尾两位来自连接双方本身已证频繁,不重复验
func aprioriGenerate(supported []Itemset, length, dim int, encoding string) ([]Itemset, error) {
	candidateList := make([]Itemset, 0)
	if len(supported) == 0 {
		return candidateList, nil
	}
	// 第二层不用剪枝,频繁1项集两两都是候选
	if length == 2 {
		ssize := len(supported)
		for i := 0; i < ssize; i++ {
			ii, ok := supported[i].(*OneItemset)
			if !ok {
				return nil, internalErrorf("itemset of length 1 not using OneItemset: %T", supported[i])
			}
			for j := i + 1; j < ssize; j++ {
				ij, ok := supported[j].(*OneItemset)
				if !ok {
					return nil, internalErrorf("itemset of length 1 not using OneItemset: %T", supported[j])
				}
				candidateList = append(candidateList, newPairItemset(ii.item, ij.item, dim, encoding))
			}
		}
		return candidateList, nil
	}
	switch supported[0].(type) {
	case *SparseItemset:
		return generateSparse(supported, length)
	case *DenseItemset:
		return generateDense(supported, length, dim)
	case *SmallDenseItemset:
		return generateSmallDense(supported, length)
	default:
		return nil, internalErrorf("unexpected itemset type %T", supported[0])
	}
}

// newPairItemset 按会话编码建2项集,a<b
func newPairItemset(a, b, dim int, encoding string) Itemset {
	switch encoding {
	case fim_config.EncodingDense:
		mask := bitset.NewBitSet(dim)
		mask.SetBit(a)
		mask.SetBit(b)
		return &DenseItemset{items: mask, length: 2}
	case fim_config.EncodingSmallDense:
		return &SmallDenseItemset{items: 1<<uint(a) | 1<<uint(b), length: 2}
	default:
		return &SparseItemset{indices: []int{a, b}}
	}
}

func generateSparse(supported []Itemset, length int) ([]Itemset, error) {
	candidateList := make([]Itemset, 0)
	// 搜索用的临时项集,反复改下标复用
	scratch := &SparseItemset{indices: make([]int, length-1)}
	ssize := len(supported)
	for i := 0; i < ssize; i++ {
		ii, ok := supported[i].(*SparseItemset)
		if !ok {
			return nil, internalErrorf("itemset of length %d not using SparseItemset: %T", length-1, supported[i])
		}
	prefix:
		for j := i + 1; j < ssize; j++ {
			ij, ok := supported[j].(*SparseItemset)
			if !ok {
				return nil, internalErrorf("itemset of length %d not using SparseItemset: %T", length-1, supported[j])
			}
			// 前L-2位要完全一致;sparse的不匹配不保证单调,只能跳过当前j,不能break
			for k := length - 3; k >= 0; k-- {
				if ii.indices[k] != ij.indices[k] {
					continue prefix
				}
			}
			// 向下封闭性:候选删去前L-2位中任意一位得到的子集都得是频繁的
			copy(scratch.indices, ii.indices[1:])
			scratch.indices[length-2] = ij.indices[length-2]
			for k := 0; k <= length-3; k++ {
				// 此时scratch是候选删去第k位的子集
				if !searchItemset(supported, scratch) {
					continue prefix
				}
				scratch.indices[k] = ii.indices[k] // 恢复第k位,变成删去第k+1位的子集
			}
			items := make([]int, length)
			copy(items, ii.indices)
			items[length-1] = ij.indices[length-2]
			candidateList = append(candidateList, &SparseItemset{indices: items})
		}
	}
	return candidateList, nil
}

func generateDense(supported []Itemset, length, dim int) ([]Itemset, error) {
	candidateList := make([]Itemset, 0)
	scratch := &DenseItemset{items: bitset.NewBitSet(dim), length: length - 1}
	ssize := len(supported)
	for i := 0; i < ssize; i++ {
		ii, ok := supported[i].(*DenseItemset)
		if !ok {
			return nil, internalErrorf("itemset of length %d not using DenseItemset: %T", length-1, supported[i])
		}
	prefix:
		for j := i + 1; j < ssize; j++ {
			ij, ok := supported[j].(*DenseItemset)
			if !ok {
				return nil, internalErrorf("itemset of length %d not using DenseItemset: %T", length-1, supported[j])
			}
			// 前缀检查走位运算:掩码异或后恰好两位不同
			scratch.items.CopyFrom(ii.items)
			scratch.items.Xor(ij.items)
			if scratch.items.Count() != 2 {
				break prefix // 列表有序,这个检查对全序单调,后面的j不会再匹配
			}
			// 两个不同位里低的那位必须是ii的最高位,保证连接方向一致
			first := scratch.items.NextSetBit(0)
			if ii.items.NextSetBit(first+1) >= 0 {
				break prefix
			}
			scratch.items.Union(ij.items) // 此时scratch是两者的并,即候选
			// 向下封闭性:从低到高逐位清掉再查,最高两位不用验
			b := scratch.items.NextSetBit(0)
			for l := length; l > 2; l-- {
				scratch.items.ClearBit(b)
				if !searchItemset(supported, scratch) {
					continue prefix
				}
				scratch.items.SetBit(b)
				b = scratch.items.NextSetBit(b + 1)
			}
			candidateList = append(candidateList, &DenseItemset{items: scratch.items.Clone(), length: length})
		}
	}
	return candidateList, nil
}

// generateSmallDense 单字版本的dense连接,逻辑和generateDense一致
func generateSmallDense(supported []Itemset, length int) ([]Itemset, error) {
	candidateList := make([]Itemset, 0)
	scratch := &SmallDenseItemset{length: length - 1}
	ssize := len(supported)
	for i := 0; i < ssize; i++ {
		ii, ok := supported[i].(*SmallDenseItemset)
		if !ok {
			return nil, internalErrorf("itemset of length %d not using SmallDenseItemset: %T", length-1, supported[i])
		}
	prefix:
		for j := i + 1; j < ssize; j++ {
			ij, ok := supported[j].(*SmallDenseItemset)
			if !ok {
				return nil, internalErrorf("itemset of length %d not using SmallDenseItemset: %T", length-1, supported[j])
			}
			xor := ii.items ^ ij.items
			if bits.OnesCount64(xor) != 2 {
				break prefix
			}
			first := bits.TrailingZeros64(xor)
			if ii.items>>(uint(first)+1) != 0 {
				break prefix
			}
			union := ii.items | ij.items
			b := nextSetBit64(union, 0)
			for l := length; l > 2; l-- {
				scratch.items = union &^ (1 << uint(b))
				if !searchItemset(supported, scratch) {
					continue prefix
				}
				b = nextSetBit64(union, b+1)
			}
			candidateList = append(candidateList, &SmallDenseItemset{items: union, length: length})
		}
	}
	return candidateList, nil
}
