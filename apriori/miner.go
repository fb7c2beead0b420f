package apriori

import (
	"math"

	"fim-shenglin/fim_config"
	"fim-shenglin/rock-share/base/logger"
	"fim-shenglin/utils"
)

// MinerOptions 挖掘参数
// MinFrequency和MinSupport必须且只能设置一个,两个都给或都不给是配置错误
type MinerOptions struct {
	MinFrequency *float64 // 最小频率,[0,1],阈值取ceil(频率*事务数)
	MinSupport   *int     // 最小支持度,>=0的绝对事务数
	Encoding     string   // 项集编码: sparse/dense/smalldense/auto,空串当sparse
}

// Miner 逐层挖掘驱动,一个实例对应一次参数配置,可在不同数据上复用
type Miner struct {
	minfreq  float64 // 未设置时为-1
	minsupp  int
	encoding string
}

// NewMiner 校验参数并构造,校验失败同步返回,不做静默兜底
func NewMiner(opt MinerOptions) (*Miner, error) {
	if opt.MinFrequency != nil && opt.MinSupport != nil {
		return nil, utils.ErrThresholdBothSet
	}
	if opt.MinFrequency == nil && opt.MinSupport == nil {
		return nil, utils.ErrThresholdNoneSet
	}
	m := &Miner{minfreq: -1}
	if opt.MinFrequency != nil {
		if *opt.MinFrequency < 0 || *opt.MinFrequency > 1 {
			return nil, utils.ErrFrequencyOutOfRange
		}
		m.minfreq = *opt.MinFrequency
	}
	if opt.MinSupport != nil {
		if *opt.MinSupport < 0 {
			return nil, utils.ErrSupportNegative
		}
		m.minsupp = *opt.MinSupport
	}
	switch opt.Encoding {
	case "", fim_config.EncodingSparse:
		m.encoding = fim_config.EncodingSparse
	case fim_config.EncodingDense, fim_config.EncodingSmallDense, fim_config.EncodingAuto:
		m.encoding = opt.Encoding
	default:
		return nil, utils.ErrUnknownEncoding
	}
	return m, nil
}

// RequiredSupport 当前配置在给定事务数下的绝对支持度阈值
func (m *Miner) RequiredSupport(transactionCount int) int {
	if m.minfreq >= 0 {
		return int(math.Ceil(m.minfreq * float64(transactionCount)))
	}
	return m.minsupp
}

// resolveEncoding auto时按维度挑编码:一个机器字内用单字位图,中等维度用多字位图,高维用sparse
func (m *Miner) resolveEncoding(dim int) string {
	enc := m.encoding
	if enc == fim_config.EncodingAuto {
		switch {
		case dim <= fim_config.SmallDenseMaxDim:
			return fim_config.EncodingSmallDense
		case dim <= fim_config.DenseMaxDim:
			return fim_config.EncodingDense
		default:
			return fim_config.EncodingSparse
		}
	}
	if enc == fim_config.EncodingSmallDense && dim > fim_config.SmallDenseMaxDim {
		logger.Warnf("维度%v放不进一个机器字,smalldense退回dense", dim)
		return fim_config.EncodingDense
	}
	return enc
}

// Run 执行逐层挖掘:初始化1项集候选,计数、过滤、连接生成,直到没有新候选
// 事务数为0时直接返回空结果,不算错误
func (m *Miner) Run(relation Relation) (*AprioriResult, error) {
	solution := make([]Itemset, 0)
	size := relation.Size()
	if size > 0 {
		dim := relation.Dimensionality()
		encoding := m.resolveEncoding(dim)
		// 第一层候选:每个属性一个1项集
		candidates := make([]Itemset, 0, dim)
		for i := 0; i < dim; i++ {
			candidates = append(candidates, &OneItemset{item: i})
		}
		for length := 1; len(candidates) > 0; length++ {
			supported := m.frequentItemsets(candidates, relation)
			logger.Debugf("第%v层: 候选%v个, 频繁%v个", length, len(candidates), len(supported))
			if logger.IsDebugEnabled() {
				for _, is := range supported {
					logger.Debugf("频繁项集 [%v]", Render(is, relation.Meta()))
				}
			}
			solution = append(solution, supported...)
			var err error
			candidates, err = aprioriGenerate(supported, length+1, dim, encoding)
			if err != nil {
				return nil, err
			}
		}
	}
	return &AprioriResult{Itemsets: solution, Meta: relation.Meta()}, nil
}

// frequentItemsets 全量扫描事务,累计每个候选的支持度,再按阈值过滤
// 没有提前终止也没有索引,每层都是O(事务数*候选数),候选多时这里是大头
func (m *Miner) frequentItemsets(candidates []Itemset, relation Relation) []Itemset {
	size := relation.Size()
	for i := 0; i < size; i++ {
		bv := relation.Get(i)
		for _, candidate := range candidates {
			if candidate.ContainedIn(bv) {
				candidate.addSupport()
			}
		}
	}
	// 只留满足最小支持度的
	needed := m.RequiredSupport(size)
	supported := make([]Itemset, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Support() >= needed {
			supported = append(supported, candidate)
		}
	}
	return supported
}
