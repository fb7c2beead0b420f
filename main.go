package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"fim-shenglin/fim_config"
	"fim-shenglin/rock-share/base/config"
	"fim-shenglin/rock-share/base/logger"
)

func main() {
	go func() {
		err := http.ListenAndServe(":8081", nil)
		if err != nil {
			fmt.Printf("http.ListenAndServe failed, err:%s", err)
		}
	}()

	// 一些初始化配置
	config.InitConfig()
	all := config.All
	l := all.Logger
	ss := all.Server
	logger.InitLogger(l.Level, "fim", l.Path, l.MaxAge, l.RotationTime, l.RotationSize, ss.SentryDsn)
	r := gin.Default()

	r.POST("/fim", start)
	r.GET("/fim/:taskId", status)

	address := ":" + fim_config.GinPort
	r.Run(address)
}

func start(c *gin.Context) {
	var requestJson FIMRequest
	if err := c.ShouldBindJSON(&requestJson); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		fmt.Println("_____________________请求异常:")
		fmt.Println(err)
		return
	}
	p, size, t, e := DigFrequentItemsets(&requestJson)
	if e != nil {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"error":   e.Error(),
		})
	} else {
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"result_path":  p,
			"itemset_size": size,
			"spent_time":   t,
		})
	}

}

func status(c *gin.Context) {
	taskId := c.Param("taskId")
	info, ok := Tasks.Get(taskId)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "task not found",
		})
		return
	}
	c.JSON(http.StatusOK, info)
}
