package apriori

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// AprioriResult 全部层发现的频繁项集
// 层主序:先按发现层,层内按项集全序,每个项集带最终支持度
type AprioriResult struct {
	Itemsets []Itemset
	Meta     *Meta
}

// Lines 每个项集一行的文本形式
func (r *AprioriResult) Lines() []string {
	lines := make([]string, 0, len(r.Itemsets))
	var buf strings.Builder
	for _, is := range r.Itemsets {
		buf.Reset()
		is.AppendTo(&buf, r.Meta)
		lines = append(lines, buf.String())
	}
	return lines
}

// RenderTable 打一张结果摘要表
func (r *AprioriResult) RenderTable(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("FREQUENT ITEMSETS")
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Itemset", WidthMax: 60, WidthMin: 20},
		{Name: "Length", Align: text.AlignCenter, AlignHeader: text.AlignCenter},
		{Name: "Support", Align: text.AlignCenter, AlignHeader: text.AlignCenter},
	})
	t.AppendHeader(table.Row{"Itemset", "Length", "Support"})
	for _, is := range r.Itemsets {
		t.AppendRow(table.Row{ItemsString(is, r.Meta), is.Length(), is.Support()})
	}
	t.Render()
}
