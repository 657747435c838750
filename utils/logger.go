package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

var appLogger *log.Logger

// InitLogger opens logs/app.log; until it is called the Log* helpers are
// no-ops, which keeps tests quiet.
func InitLogger() error {
	logsDir := "logs"
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %v", err)
	}

	logFile, err := os.OpenFile(filepath.Join(logsDir, "app.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %v", err)
	}

	appLogger = log.New(logFile, "", 0)
	return nil
}

func logLine(level, context string, callerSkip int, v interface{}) {
	if appLogger == nil {
		return
	}
	_, file, line, ok := runtime.Caller(callerSkip)
	if !ok {
		file = "unknown"
		line = 0
	}
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	appLogger.Printf("[%s] %s in %s:%d - %s: %v", timestamp, level, filepath.Base(file), line, context, v)
}

func LogError(err error, context string) {
	logLine("ERROR", context, 2, err)
}

func LogInfo(message, context string) {
	logLine("INFO", context, 2, message)
}

// LogPanic is called from the recovery middleware, hence the deeper caller skip.
func LogPanic(recovered interface{}, context string) {
	logLine("PANIC", context, 3, recovered)
}
