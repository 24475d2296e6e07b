package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type Level = logrus.Level

const (
	DebugLevel = logrus.DebugLevel
	InfoLevel  = logrus.InfoLevel
	WarnLevel  = logrus.WarnLevel
	ErrorLevel = logrus.ErrorLevel
)

type Logger struct {
	entry *logrus.Entry
}

func New(levelStr string) *Logger {
	return NewWithOutput(levelStr, os.Stdout)
}

// NewWithOutput creates a logger writing to out
func NewWithOutput(levelStr string, out io.Writer) *Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(parseLevel(levelStr))
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})
	return &Logger{entry: logrus.NewEntry(l)}
}

func parseLevel(levelStr string) Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// WithField returns a child logger that adds key=value to every line
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}

// The variadic methods join their arguments with spaces, like log.Println
// without the trailing newline.

func sprint(v ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprintln(v...), "\n")
}

func (l *Logger) Debug(v ...interface{}) {
	l.entry.Debug(sprint(v...))
}

func (l *Logger) Info(v ...interface{}) {
	l.entry.Info(sprint(v...))
}

func (l *Logger) Warn(v ...interface{}) {
	l.entry.Warn(sprint(v...))
}

func (l *Logger) Error(v ...interface{}) {
	l.entry.Error(sprint(v...))
}

func (l *Logger) Fatal(v ...interface{}) {
	l.entry.Fatal(sprint(v...))
}
