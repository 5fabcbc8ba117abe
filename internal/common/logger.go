package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"golang.org/x/xerrors"
)

// LoggerWrapper writes INFO (filtered by verbosity) and ERROR lines.
// Errors can be duplicated to stderr: a CLI user should see them even if logs go to a file.
type LoggerWrapper struct {
	mu                sync.Mutex
	impl              *log.Logger
	out               io.Closer
	fileName          string
	verbosity         int
	duplicateToStderr bool
}

// MakeLogger creates a logger to logFile; an empty logFile or "stderr" means stderr
// (or no logs at all if noLogsIfEmpty).
// verbosity is -1 (INFO off) .. 2 (the most detailed).
func MakeLogger(logFile string, verbosity int64, noLogsIfEmpty bool, duplicateToStderr bool) (*LoggerWrapper, error) {
	if verbosity < -1 || verbosity > 2 {
		return nil, xerrors.Errorf("incorrect verbosity passed: %d", verbosity)
	}

	logger := &LoggerWrapper{
		verbosity:         int(verbosity),
		duplicateToStderr: duplicateToStderr,
	}

	if logFile != "" && logFile != "stderr" {
		logger.fileName = logFile
		if err := logger.RotateLogFile(); err != nil {
			return nil, err
		}
	} else if !noLogsIfEmpty {
		logger.impl = log.New(os.Stderr, "", 0)
	}
	return logger, nil
}

// MakeLoggerToWriter is used in tests and when logs are captured by a parent process.
func MakeLoggerToWriter(w io.Writer, verbosity int64) *LoggerWrapper {
	return &LoggerWrapper{
		impl:      log.New(w, "", 0),
		verbosity: int(verbosity),
	}
}

func formatStr(prefix string, v ...interface{}) string {
	return fmt.Sprintf("%s %s %s", time.Now().Format("2006-01-02 15:04:05"), prefix, fmt.Sprintln(v...))
}

func (logger *LoggerWrapper) Info(verbosity int, v ...interface{}) {
	logger.mu.Lock()
	defer logger.mu.Unlock()
	if logger.verbosity >= verbosity && logger.impl != nil {
		_ = logger.impl.Output(0, formatStr("INFO", v...))
	}
}

func (logger *LoggerWrapper) Error(v ...interface{}) {
	logger.mu.Lock()
	defer logger.mu.Unlock()
	if logger.impl != nil {
		_ = logger.impl.Output(0, formatStr("ERROR", v...))
	}
	if logger.duplicateToStderr {
		_, _ = fmt.Fprint(os.Stderr, formatStr("[cxxflags]", v...))
	}
}

// RotateLogFile reopens a log file, it's called on SIGHUP after logrotate moved the previous one.
func (logger *LoggerWrapper) RotateLogFile() error {
	if logger.fileName == "" {
		return nil
	}
	out, err := os.OpenFile(logger.fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return xerrors.Errorf("failed to open log file %s: %w", logger.fileName, err)
	}

	logger.mu.Lock()
	defer logger.mu.Unlock()
	if logger.out != nil {
		_ = logger.out.Close()
	}
	logger.impl = log.New(out, "", 0)
	logger.out = out
	return nil
}

func (logger *LoggerWrapper) GetFileName() string {
	return logger.fileName
}
