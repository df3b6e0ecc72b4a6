package logx

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
)

// Level controls which messages are emitted
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	current = int32(LevelInfo)
	logger  = log.New(os.Stderr, "", log.LstdFlags)
)

// SetLevel sets the minimum emitted level
func SetLevel(l Level) {
	atomic.StoreInt32(&current, int32(l))
}

func enabled(l Level) bool {
	return int32(l) >= atomic.LoadInt32(&current)
}

func emit(l Level, tag, msg string) {
	if enabled(l) {
		logger.Printf("%s %s", tag, msg)
	}
}

func Debug(msg string) { emit(LevelDebug, "DEBUG", msg) }
func Info(msg string) { emit(LevelInfo, "INFO", msg) }
func Warn(msg string) { emit(LevelWarn, "WARN", msg) }
func Error(msg string) { emit(LevelError, "ERROR", msg) }

func Debugf(format string, args ...any) { emit(LevelDebug, "DEBUG", fmt.Sprintf(format, args...)) }
func Infof(format string, args ...any) { emit(LevelInfo, "INFO", fmt.Sprintf(format, args...)) }
func Warnf(format string, args ...any) { emit(LevelWarn, "WARN", fmt.Sprintf(format, args...)) }
func Errorf(format string, args ...any) { emit(LevelError, "ERROR", fmt.Sprintf(format, args...)) }

// Fatalf logs at error level and exits the process
func Fatalf(format string, args ...any) {
	logger.Printf("FATAL %s", fmt.Sprintf(format, args...))
	os.Exit(1)
}
