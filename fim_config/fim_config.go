package fim_config

const GinPort = "19123"

const ResultDir = "result"

// 挖掘结果中项之间的分隔符
const ItemDelimiter = ", "

// 项集编码方式
const (
	EncodingSparse     = "sparse"
	EncodingDense      = "dense"
	EncodingSmallDense = "smalldense"
	EncodingAuto       = "auto"
)

// auto策略下的编码选择阈值
const (
	SmallDenseMaxDim = 64  // 维度不超过一个机器字时用单字位图
	DenseMaxDim      = 512 // 超过该维度时位图扫描不划算,退回sparse
)

// 事务中取值为真的写法
var TrueValues = map[string]bool{
	"1":    true,
	"t":    true,
	"true": true,
	"y":    true,
	"yes":  true,
}

// 结果过滤表达式中可用的变量名
const (
	FilterVarSupport = "support"
	FilterVarLength  = "length"
)
