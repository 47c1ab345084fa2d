// Package logger provides centralized logging for the checker.
//
// The package-level helpers write through a single logrus logger to a file
// next to the executable (or the per-user data directory on macOS/Windows),
// and fan every line out to registered listeners in the order it was
// logged.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logFileName     = "checker.log"
	timestampFormat = "2006-01-02 15:04:05"
)

var (
	base      = newBase()
	logFile   *os.File
	logMutex  sync.Mutex
	logPath   string
	listeners []func(string)
	listMutex sync.RWMutex

	// console is the terminal stderr, kept across the redirect in Init.
	console io.Writer = os.Stderr

	lines        = make(chan string, 256)
	dispatchOnce sync.Once
)

func newBase() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
		DisableColors:   true,
	})
	l.SetLevel(logrus.DebugLevel)
	l.AddHook(listenerHook{})
	return l
}

// Init opens the log file in the default directory and captures stderr.
// The terminal stderr stays reachable through Console.
func Init() error {
	if err := InitFile(); err != nil {
		return err
	}
	logMutex.Lock()
	defer logMutex.Unlock()
	if orig := redirectStderr(logFile); orig != nil {
		console = orig
	}
	return nil
}

// InitFile opens the log file in the default directory and leaves stderr
// alone. Headless runs use it so their report reaches the terminal.
func InitFile() error {
	return InitAt(getLogDir())
}

// Console returns the stderr the process started with.
func Console() io.Writer {
	logMutex.Lock()
	defer logMutex.Unlock()
	return console
}

// InitAt opens (or creates) the log file inside dir.
func InitAt(dir string) error {
	logMutex.Lock()
	defer logMutex.Unlock()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path := filepath.Join(dir, logFileName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logPath = path
	base.SetOutput(f)
	return nil
}

// SetLevel changes the minimum level; unknown names keep the current level.
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	base.SetLevel(lvl)
	return nil
}

// Close closes the log file.
func Close() {
	logMutex.Lock()
	defer logMutex.Unlock()
	if logFile != nil {
		base.SetOutput(io.Discard)
		logFile.Close()
		logFile = nil
	}
}

// AddListener adds a callback that receives formatted log lines. All
// listeners run on one dispatcher goroutine, so lines arrive in order.
func AddListener(fn func(string)) {
	listMutex.Lock()
	listeners = append(listeners, fn)
	listMutex.Unlock()

	dispatchOnce.Do(func() { SafeGo("logDispatcher", dispatch) })
}

func dispatch() {
	for line := range lines {
		listMutex.RLock()
		fns := listeners
		listMutex.RUnlock()
		for _, fn := range fns {
			fn(line)
		}
	}
}

// WithComponent returns an entry tagged with the component name.
func WithComponent(name string) *logrus.Entry {
	return base.WithField("component", name)
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	base.Infof(format, args...)
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	base.Errorf(format, args...)
}

// Debug logs a debug message
func Debug(format string, args ...interface{}) {
	base.Debugf(format, args...)
}

// Warning logs a warning message
func Warning(format string, args ...interface{}) {
	base.Warnf(format, args...)
}

// GetLogPath returns the path to the log file
func GetLogPath() string {
	return logPath
}

// Recover should be deferred at the top of every goroutine to catch panics.
// Usage: go func() { defer logger.Recover("fetch"); ... }()
func Recover(name string) {
	if r := recover(); r != nil {
		msg := fmt.Sprintf("PANIC in %s: %v\n%s", name, r, debug.Stack())
		Error("%s", msg)
		// Also write directly in case the formatter is what broke.
		logMutex.Lock()
		if logFile != nil {
			logFile.WriteString(fmt.Sprintf("[%s] FATAL PANIC: %s\n",
				time.Now().Format(timestampFormat), msg))
			logFile.Sync()
		}
		logMutex.Unlock()
	}
}

// SafeGo launches a goroutine with panic recovery.
func SafeGo(name string, fn func()) {
	go func() {
		defer Recover(name)
		fn()
	}()
}

// ClearLogs truncates the log file and keeps logging into it.
func ClearLogs() error {
	logMutex.Lock()
	defer logMutex.Unlock()

	if logPath == "" {
		return nil
	}
	if logFile != nil {
		logFile.Close()
	}

	f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logFile = nil
		base.SetOutput(io.Discard)
		return err
	}
	logFile = f
	base.SetOutput(f)
	return nil
}

// listenerHook forwards every entry to the registered listeners.
type listenerHook struct{}

func (listenerHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (listenerHook) Fire(entry *logrus.Entry) error {
	listMutex.RLock()
	n := len(listeners)
	listMutex.RUnlock()
	if n == 0 {
		return nil
	}

	line := fmt.Sprintf("[%s] %s: %s", entry.Time.Format(timestampFormat),
		levelTag(entry.Level), entry.Message)
	if c, ok := entry.Data["component"]; ok {
		line = fmt.Sprintf("%s (%v)", line, c)
	}
	// A stalled listener drops lines rather than blocking the caller.
	select {
	case lines <- line:
	default:
	}
	return nil
}

func levelTag(l logrus.Level) string {
	switch l {
	case logrus.WarnLevel:
		return "WARN"
	case logrus.DebugLevel, logrus.TraceLevel:
		return "DEBUG"
	case logrus.InfoLevel:
		return "INFO"
	default:
		return "ERROR"
	}
}
