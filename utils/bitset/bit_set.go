package bitset

import "math/bits"

// BitSet 定长位串,用来存一条事务(一行布尔向量),也用作dense项集的掩码
type BitSet struct {
	data      []uint64
	bitLength int
}

// NewBitSet 预先分配位串的长度,输入参数为需要的位数
func NewBitSet(bitLength int) *BitSet {
	blockSize := 0
	if bitLength > 0 {
		blockSize = (bitLength + 63) / 64
	}
	return &BitSet{
		data:      make([]uint64, blockSize),
		bitLength: bitLength,
	}
}

// BitLength 位串的定长宽度
func (bitSet *BitSet) BitLength() int {
	return bitSet.bitLength
}

// Words 返回底层的块,低位块在前,外面不要改
func (bitSet *BitSet) Words() []uint64 {
	return bitSet.data
}

// SetBit 设置该位为1
func (bitSet *BitSet) SetBit(pos int) {
	if pos < 0 {
		return
	}
	blockIndex := pos / 64 // 设置哪一块,从0起
	posInBlock := pos % 64
	if len(bitSet.data) < blockIndex+1 { // 要扩容
		newData := make([]uint64, blockIndex+1)
		copy(newData, bitSet.data)
		bitSet.data = newData
		if pos+1 > bitSet.bitLength {
			bitSet.bitLength = pos + 1
		}
	}
	bitSet.data[blockIndex] |= 1 << posInBlock
}

// ClearBit 设置该位为0
func (bitSet *BitSet) ClearBit(pos int) {
	if pos < 0 {
		return
	}
	blockIndex := pos / 64
	if len(bitSet.data) < blockIndex+1 {
		return
	}
	bitSet.data[blockIndex] &^= 1 << (pos % 64)
}

// GetBit 获取该位bit,返回0则该位为0,返回非0则是1
func (bitSet *BitSet) GetBit(pos int) int {
	if pos < 0 {
		return 0
	}
	blockIndex := pos / 64
	if len(bitSet.data) < blockIndex+1 {
		return 0
	}
	if bitSet.data[blockIndex]&(1<<(pos%64)) != 0 {
		return 1
	}
	return 0
}

// Count 计数,位串中有几个1
func (bitSet *BitSet) Count() int {
	count := 0
	for _, block := range bitSet.data {
		count += bits.OnesCount64(block)
	}
	return count
}

// Union 与另一个位串进行或操作
func (bitSet *BitSet) Union(other *BitSet) {
	if len(other.data) > len(bitSet.data) {
		newData := make([]uint64, len(other.data))
		copy(newData, bitSet.data)
		bitSet.data = newData
		bitSet.bitLength = other.bitLength
	}
	for i, block := range other.data {
		bitSet.data[i] |= block
	}
}

// Xor 与另一个位串进行异或操作
func (bitSet *BitSet) Xor(other *BitSet) {
	if len(other.data) > len(bitSet.data) {
		newData := make([]uint64, len(other.data))
		copy(newData, bitSet.data)
		bitSet.data = newData
		bitSet.bitLength = other.bitLength
	}
	for i, block := range other.data {
		bitSet.data[i] ^= block
	}
}

// CopyFrom 整体覆盖成另一个位串的内容
func (bitSet *BitSet) CopyFrom(other *BitSet) {
	if len(bitSet.data) != len(other.data) {
		bitSet.data = make([]uint64, len(other.data))
	}
	copy(bitSet.data, other.data)
	bitSet.bitLength = other.bitLength
}

// Clone 复制一份
func (bitSet *BitSet) Clone() *BitSet {
	data := make([]uint64, len(bitSet.data))
	copy(data, bitSet.data)
	return &BitSet{data: data, bitLength: bitSet.bitLength}
}

// ContainsAll 是否包含另一个位串的全部1位,即 this & other == other
func (bitSet *BitSet) ContainsAll(other *BitSet) bool {
	for i, block := range other.data {
		if block == 0 {
			continue
		}
		if i >= len(bitSet.data) || bitSet.data[i]&block != block {
			return false
		}
	}
	return true
}

// ContainsWord 单字掩码版本的ContainsAll
func (bitSet *BitSet) ContainsWord(mask uint64) bool {
	if mask == 0 {
		return true
	}
	if len(bitSet.data) == 0 {
		return false
	}
	return bitSet.data[0]&mask == mask
}

// NextSetBit 从from(含)开始找下一个1位,没有则返回-1
func (bitSet *BitSet) NextSetBit(from int) int {
	if from < 0 {
		from = 0
	}
	blockIndex := from / 64
	if blockIndex >= len(bitSet.data) {
		return -1
	}
	block := bitSet.data[blockIndex] >> (from % 64)
	if block != 0 {
		return from + bits.TrailingZeros64(block)
	}
	for i := blockIndex + 1; i < len(bitSet.data); i++ {
		if bitSet.data[i] != 0 {
			return i*64 + bits.TrailingZeros64(bitSet.data[i])
		}
	}
	return -1
}

// AllOneBits 获得具体有哪几位为1,升序
func (bitSet *BitSet) AllOneBits() []int {
	result := make([]int, 0, bitSet.Count())
	for pos := bitSet.NextSetBit(0); pos >= 0; pos = bitSet.NextSetBit(pos + 1) {
		result = append(result, pos)
	}
	return result
}

// Clear 清空一下数据,为了复用
func (bitSet *BitSet) Clear() {
	for i := range bitSet.data {
		bitSet.data[i] = 0
	}
}
