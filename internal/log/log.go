package log

import (
	"io"
	"log"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
	LevelNone
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelError: "ERROR",
	LevelNone:  "NONE",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

func LevelFromString(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "ERROR":
		return LevelError
	case "NONE":
		return LevelNone
	default:
		return LevelInfo
	}
}

type Logger struct {
	logger *log.Logger
	level  Level
}

func New(out io.Writer, level Level) *Logger {
	return &Logger{
		logger: log.New(out, "", 0), // level tag lives in the format string
		level:  level,
	}
}

// Nop returns a logger that discards everything. Handy default for tests.
func Nop() *Logger {
	return New(io.Discard, LevelNone)
}

func (l *Logger) printf(at Level, tag, format string, v ...interface{}) {
	if l.level <= at {
		l.logger.Printf(tag+": "+format, v...)
	}
}

func (l *Logger) Debugf(format string, v ...interface{}) {
	l.printf(LevelDebug, "DEBUG", format, v...)
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l.printf(LevelInfo, "INFO", format, v...)
}

// Warnf logs at the info threshold with a WARN tag.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.printf(LevelInfo, "WARN", format, v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l.printf(LevelError, "ERROR", format, v...)
}

func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) Level() Level {
	return l.level
}
