package ethanol

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// LogLevel represents severity.
type LogLevel int32

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]LogLevel{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var levelPrefix = map[LogLevel]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

var currentLevel = int32(LevelInfo)

var (
	logMu      sync.Mutex
	baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)
	runTag     string
)

// ParseLogLevel maps a level name to its LogLevel.
func ParseLogLevel(s string) (LogLevel, error) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return LevelInfo, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
	}
	return l, nil
}

// SetLogLevel parses and sets the global log level; unknown names leave it unchanged.
func SetLogLevel(s string) error {
	l, err := ParseLogLevel(s)
	if err != nil {
		return err
	}
	atomic.StoreInt32(&currentLevel, int32(l))
	return nil
}

// GetLogLevel returns the current global log level.
func GetLogLevel() LogLevel { return LogLevel(atomic.LoadInt32(&currentLevel)) }

// SetLogOutput redirects log lines, mostly for tests.
func SetLogOutput(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	baseLogger.SetOutput(w)
}

// SetRunTag prefixes every following line with the run identifier.
func SetRunTag(tag string) {
	logMu.Lock()
	defer logMu.Unlock()
	runTag = tag
}

func logf(l LogLevel, format string, args ...interface{}) {
	if GetLogLevel() > l {
		return
	}
	msg := format
	// A message without args may already contain literal % signs; don't run it through Sprintf.
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	logMu.Lock()
	defer logMu.Unlock()
	if runTag != "" {
		baseLogger.Printf("[%s] run=%s %s", levelPrefix[l], runTag, msg)
		return
	}
	baseLogger.Printf("[%s] %s", levelPrefix[l], msg)
}

func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// TimeTrack logs how long a phase took, at debug level.
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start))
}
