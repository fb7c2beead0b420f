package apriori

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRenderTable(t *testing.T) {
	Convey("TestRenderTable", t, func() {
		meta := &Meta{Dim: 3, Labels: []string{"a", "b", "c"}}
		one := NewOneItemset(0)
		one.addSupport()
		one.addSupport()
		pair := NewSparseItemset(0, 2)
		pair.addSupport()
		result := &AprioriResult{Itemsets: []Itemset{one, pair}, Meta: meta}

		var buf strings.Builder
		result.RenderTable(&buf)
		out := buf.String()
		So(out, ShouldContainSubstring, "FREQUENT ITEMSETS")
		So(out, ShouldContainSubstring, "a, c")
		So(out, ShouldContainSubstring, "2")
	})
}
