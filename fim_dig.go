package main

import (
	"context"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Knetic/govaluate"
	"github.com/LinkinStars/golang-util/gu"
	"github.com/bovinae/common/util"
	mapset "github.com/deckarep/golang-set"
	"github.com/yourbasic/bit"

	"fim-shenglin/apriori"
	"fim-shenglin/fim_config"
	"fim-shenglin/rock-share/base/config"
	"fim-shenglin/rock-share/base/logger"
	"fim-shenglin/rock-share/global/enum"
	"fim-shenglin/utils"
	"fim-shenglin/utils/bitset"
)

// DigFrequentItemsets 一次完整的挖掘任务:读事务、挖掘、过滤、落csv
// 返回结果文件路径、项集数和耗时
func DigFrequentItemsets(request *FIMRequest) (string, int, int64, error) {
	startTime := time.Now().UnixMilli()
	taskId := startTime
	info := &TaskInfo{
		TaskId:    taskId,
		Status:    enum.DIG_EXEC,
		TablePath: request.Table.Path,
		StartTime: startTime,
	}
	Tasks.Set(strconv.FormatInt(taskId, 10), info)
	logger.Infof("taskId:%v,频繁项集挖掘开始,数据:%v", taskId, request.Table.Path)

	p, size, err := digFrequentItemsets(taskId, request, info)
	info.SpentTime = time.Now().UnixMilli() - startTime
	info.Status = enum.DigStatusFromErr(err)
	if err != nil {
		info.Error = err.Error()
		logger.Errorf("taskId:%v,挖掘失败:%v", taskId, err)
		return "", 0, 0, err
	}
	info.ItemsetSize = size
	logger.Infof("taskId:%v,挖掘已完成,耗时%dms,频繁项集数:%v", taskId, info.SpentTime, size)
	return p, size, info.SpentTime, nil
}

func digFrequentItemsets(taskId int64, request *FIMRequest, info *TaskInfo) (string, int, error) {
	relation, err := LoadTransactions(&request.Table)
	if err != nil {
		return "", 0, err
	}
	info.Dim = relation.Dimensionality()
	info.RowSize = relation.Size()
	logger.Infof("taskId:%v,事务数:%v,维度:%v", taskId, relation.Size(), relation.Dimensionality())

	encoding := request.Encoding
	if encoding == "" && config.All != nil {
		encoding = config.All.Miner.Encoding
	}
	miner, err := apriori.NewMiner(apriori.MinerOptions{
		MinFrequency: request.MinFrequency,
		MinSupport:   request.MinSupport,
		Encoding:     encoding,
	})
	if err != nil {
		return "", 0, err
	}

	result, err := miner.Run(relation)
	if err != nil {
		return "", 0, err
	}
	logger.Infof("taskId:%v,共发现%v个频繁项集,阈值:%v", taskId, len(result.Itemsets), miner.RequiredSupport(relation.Size()))

	itemsets := result.Itemsets
	if request.ResultFilter != "" {
		itemsets, err = filterItemsets(itemsets, request.ResultFilter)
		if err != nil {
			return "", 0, err
		}
		logger.Infof("taskId:%v,过滤后剩%v个项集", taskId, len(itemsets))
	}

	// 结果摘要表打进日志,方便人肉看
	var tableBuf strings.Builder
	filtered := &apriori.AprioriResult{Itemsets: itemsets, Meta: result.Meta}
	filtered.RenderTable(&tableBuf)
	logger.Infof("taskId:%v,挖掘结果:\n%v", taskId, tableBuf.String())

	p, err := writeResultCsv(taskId, itemsets, result.Meta, relation, request.WithRows)
	if err != nil {
		return "", 0, err
	}
	return p, len(itemsets), nil
}

// LoadTransactions 读事务csv并转成定宽布尔向量
// 单元格取值在fim_config.TrueValues里的算1,其余算0
func LoadTransactions(t *Table) (*apriori.MemoryRelation, error) {
	data, err := util.NewCsvClient().ReadCsvFile(context.Background(), t.Path)
	if err != nil {
		logger.Errorf("读取事务csv失败:%v", err)
		return nil, utils.ErrReadCsv
	}
	rows := data
	labels := t.Labels
	if t.HasHeader && len(data) > 0 {
		labels = data[0]
		rows = data[1:]
	}
	if labels == nil {
		// 请求里不带标签时查标签字典
		labels = config.LabelsFor(filepath.Base(t.Path))
	}
	if err := checkLabels(labels); err != nil {
		return nil, err
	}

	dim := len(labels)
	if len(rows) > 0 {
		dim = len(rows[0])
		if len(labels) > 0 && len(labels) != dim {
			logger.Errorf("标签数%v和列数%v对不上", len(labels), dim)
			return nil, utils.ErrWrongDataType
		}
	}
	vectors := make([]*bitset.BitSet, 0, len(rows))
	for _, row := range rows {
		if len(row) != dim {
			return nil, utils.ErrRaggedRow
		}
		bv := bitset.NewBitSet(dim)
		for j, cell := range row {
			if fim_config.TrueValues[strings.ToLower(strings.TrimSpace(cell))] {
				bv.SetBit(j)
			}
		}
		vectors = append(vectors, bv)
	}
	return apriori.NewMemoryRelation(vectors, dim, labels), nil
}

// checkLabels 属性标签不允许重复,空串的列忽略
func checkLabels(labels []string) error {
	if len(labels) == 0 {
		return nil
	}
	s := mapset.NewSet()
	for _, label := range labels {
		if label == "" {
			continue
		}
		if !s.Add(label) {
			logger.Errorf("属性标签重复:%v", label)
			return utils.ErrDuplicateLabel
		}
	}
	return nil
}

// filterItemsets 按用户表达式过滤结果,变量是support和length
func filterItemsets(itemsets []apriori.Itemset, expressionStr string) ([]apriori.Itemset, error) {
	expression, err := govaluate.NewEvaluableExpression(expressionStr)
	if err != nil {
		logger.Errorf("EvaluableExpression err:%v", err)
		return nil, utils.ErrBadFilterExpression
	}
	kept := make([]apriori.Itemset, 0, len(itemsets))
	for _, is := range itemsets {
		variables := map[string]interface{}{
			fim_config.FilterVarSupport: float64(is.Support()),
			fim_config.FilterVarLength:  float64(is.Length()),
		}
		result, err := expression.Evaluate(variables)
		if err != nil {
			logger.Errorf("Evaluable err:%v", err)
			return nil, utils.ErrBadFilterExpression
		}
		if keep, ok := result.(bool); ok && keep {
			kept = append(kept, is)
		}
	}
	return kept, nil
}

// supportRows 项集具体由哪些行撑起来,结果里带出去给查错用
func supportRows(relation apriori.Relation, is apriori.Itemset) *bit.Set {
	rows := bit.New()
	size := relation.Size()
	for i := 0; i < size; i++ {
		if is.ContainedIn(relation.Get(i)) {
			rows.Add(i)
		}
	}
	return rows
}

func writeResultCsv(taskId int64, itemsets []apriori.Itemset, meta *apriori.Meta, relation apriori.Relation, withRows bool) (string, error) {
	resultDir := fim_config.ResultDir
	if config.All != nil && config.All.Miner.ResultDir != "" {
		resultDir = config.All.Miner.ResultDir
	}
	if err := gu.CreateDirIfNotExist(resultDir); err != nil {
		return "", err
	}
	header := []string{"itemset", "length", "support"}
	if withRows {
		header = append(header, "rows")
	}
	data := [][]string{header}
	for _, is := range itemsets {
		row := []string{
			apriori.ItemsString(is, meta),
			strconv.Itoa(is.Length()),
			strconv.Itoa(is.Support()),
		}
		if withRows {
			row = append(row, supportRows(relation, is).String())
		}
		data = append(data, row)
	}
	p := path.Join(resultDir, strconv.FormatInt(taskId, 10)+".csv")
	if err := utils.CreateCsv(p, data); err != nil {
		return "", err
	}
	return p, nil
}
