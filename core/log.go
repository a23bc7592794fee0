package core

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger = newLogger(logrus.InfoLevel)

func newLogger(level logrus.Level) *logrus.Logger {
	formatter := &logrus.TextFormatter{
		TimestampFormat:        "2006-01-02T15:04:05.000",
		FullTimestamp:          true,
		DisableColors:          true,
		DisableLevelTruncation: true,
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			return "", fmt.Sprintf("%s:%d", formatFilePath(f.File), f.Line)
		},
	}

	return &logrus.Logger{
		Out:          os.Stderr,
		Level:        level,
		Hooks:        make(logrus.LevelHooks),
		Formatter:    formatter,
		ExitFunc:     os.Exit,
		ReportCaller: false,
	}
}

// InitLogger applies the configured level. Verbose mode overrides it.
func InitLogger() {
	level, err := logrus.ParseLevel(Config.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if Config.Verbose >= 5 {
		level = logrus.TraceLevel
	} else if Config.Verbose >= 1 && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	Logger.SetLevel(level)
	Logger.SetReportCaller(level >= logrus.DebugLevel)
	if err != nil {
		Warn("parse log level %v failed: %v", Config.LogLevel, err)
	}
}

func formatFilePath(path string) string {
	arr := strings.Split(path, "/")
	return arr[len(arr)-1]
}

func Fatal(format string, v ...interface{}) {
	Logger.Fatalf(format, v...)
}

func Warn(format string, v ...interface{}) {
	Logger.Warnf(format, v...)
}

func Info(format string, v ...interface{}) {
	Logger.Infof(format, v...)
}

func V1(format string, v ...interface{}) {
	Logger.Debugf(format, v...)
}

func V5(format string, v ...interface{}) {
	Logger.Tracef(format, v...)
}
