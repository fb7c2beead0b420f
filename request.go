package main

type FIMRequest struct {
	Table        Table    `json:"table"`
	MinFrequency *float64 `json:"minFrequency"` // 和minSupport二选一
	MinSupport   *int     `json:"minSupport"`
	Encoding     string   `json:"encoding"`     // sparse/dense/smalldense/auto,缺省走配置
	ResultFilter string   `json:"resultFilter"` // 结果过滤表达式,变量support和length
	WithRows     bool     `json:"withRows"`     // 结果里带不带支持行号
}

type Table struct {
	Path      string   `json:"path"`
	HasHeader bool     `json:"hasHeader"` // 首行是不是属性标签
	Labels    []string `json:"labels"`    // 不带表头时可以直接给标签
}
