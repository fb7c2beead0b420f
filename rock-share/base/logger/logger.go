package logger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger 初始化全局日志,level不认识时默认info
func InitLogger(level, projectName, logPath string, maxAge, rotationTime time.Duration, rotationSize uint32, dsn string) {
	minLevel := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(level); err == nil {
		minLevel = parsed
	}
	initZap(projectName, minLevel, logPath, maxAge, rotationTime, rotationSize, dsn)
}

func Debugf(template string, args ...interface{}) {
	zap.S().Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	zap.S().Infof(template, args...)
}

func Warnf(template string, args ...interface{}) {
	zap.S().Warnf(template, args...)
}

func Errorf(template string, args ...interface{}) {
	zap.S().Errorf(template, args...)
}

func Error(args ...interface{}) {
	zap.S().Error(args...)
}

func Info(args ...interface{}) {
	zap.S().Info(args...)
}

// IsDebugEnabled 挖掘过程中逐项集的日志比较贵,打印前先问一下
func IsDebugEnabled() bool {
	return zap.L().Core().Enabled(zapcore.DebugLevel)
}

func Sync() {
	_ = zap.L().Sync()
}
