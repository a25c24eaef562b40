package logger

import (
	"io"
	"log"
	"os"

	"github.com/sirupsen/logrus"
)

// Log 是一个全局的、配置好的 logrus 实例
var Log *logrus.Logger

func init() {
	// 测试里不走InitLogger，给一个只打到控制台的兜底实例
	Log = logrus.New()
	Log.SetFormatter(&logrus.JSONFormatter{})
}

// InitLogger 初始化全局的Logger实例
func InitLogger() {
	Log = logrus.New()

	// 1. 日志格式设为JSON，结构化后方便ELK、Loki等工具分析
	Log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})

	// 2. 同时输出到文件和控制台
	file, err := os.OpenFile("vidtube.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("无法打开日志文件: %v", err)
	}
	mw := io.MultiWriter(os.Stdout, file)
	Log.SetOutput(mw)

	// 3. 日志级别，开发时可以调成Debug
	Log.SetLevel(logrus.InfoLevel)
}
