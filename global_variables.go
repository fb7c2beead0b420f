package main

import (
	cmap "github.com/orcaman/concurrent-map"
)

// Tasks 运行中和已结束的挖掘任务,[taskId,*TaskInfo]
var Tasks = cmap.New()

type TaskInfo struct {
	TaskId      int64  `json:"task_id"`
	Status      string `json:"status"`
	TablePath   string `json:"table_path"`
	Dim         int    `json:"dim"`
	RowSize     int    `json:"row_size"`
	ItemsetSize int    `json:"itemset_size"`
	StartTime   int64  `json:"start_time"`
	SpentTime   int64  `json:"spent_time"`
	Error       string `json:"error,omitempty"`
}
