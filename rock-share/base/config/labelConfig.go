package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TableLabels 属性标签字典: 数据文件名(不含目录) -> 按列序的标签
var TableLabels map[string][]string

// initLabelConfig 读属性标签字典,文件不存在不算错,请求里不带标签时就只能用列下标了
func initLabelConfig() {
	TableLabels = make(map[string][]string)
	labelsPath := All.Miner.LabelsPath

	exists, _ := isExists(labelsPath)
	if !exists {
		fmt.Printf("%s not exists, attribute labels disabled\n", labelsPath)
		return
	}

	yamlFile, err := os.ReadFile(labelsPath)
	if err != nil {
		fmt.Println("ReadFile labels.yml failed:", err)
		panic(err)
	}
	if err := yaml.Unmarshal(yamlFile, &TableLabels); err != nil {
		fmt.Println("Unmarshal labels.yml failed:", err)
		panic(err)
	}
}

// LabelsFor 按数据文件名查标签,没有返回nil
func LabelsFor(fileName string) []string {
	if TableLabels == nil {
		return nil
	}
	return TableLabels[fileName]
}
