package apriori

import (
	"strconv"

	"fim-shenglin/utils/bitset"
)

// Meta 属性元信息:维度和可选的属性标签,标签只用于结果展示
type Meta struct {
	Dim    int
	Labels []string
}

// Label 取属性标签,没有就退回下标
func (m *Meta) Label(i int) string {
	if m != nil && i < len(m.Labels) && m.Labels[i] != "" {
		return m.Labels[i]
	}
	return strconv.Itoa(i)
}

// Relation 事务数据源:一组定宽布尔向量,引擎只读
// 同一份数据可以被多个挖掘任务共享,各任务的项集和支持度计数互不相干
type Relation interface {
	Size() int
	Dimensionality() int
	Get(i int) *bitset.BitSet
	Meta() *Meta
}

// MemoryRelation 全内存的事务集
type MemoryRelation struct {
	vectors []*bitset.BitSet
	meta    *Meta
}

func NewMemoryRelation(vectors []*bitset.BitSet, dim int, labels []string) *MemoryRelation {
	return &MemoryRelation{
		vectors: vectors,
		meta:    &Meta{Dim: dim, Labels: labels},
	}
}

func (r *MemoryRelation) Size() int {
	return len(r.vectors)
}

func (r *MemoryRelation) Dimensionality() int {
	return r.meta.Dim
}

func (r *MemoryRelation) Get(i int) *bitset.BitSet {
	return r.vectors[i]
}

func (r *MemoryRelation) Meta() *Meta {
	return r.meta
}
