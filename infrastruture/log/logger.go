// Package logger provides a prefixed, coloured, levelled logger.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-pathfinder/config"
)

var ErrNilWriter = errors.New("logger writer is nil")

// Logger writes lines of the form "[PREFIX] [LEVEL] message".
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a Logger writing to w. The prefix is painted with color.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write(config.LogInfoColor, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.write(config.LogWarningColor, "WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) write(levelColor, level, msg string) {
	l.out.Print(fmt.Sprintf("%s[%s]%s %s[%s]%s %s",
		l.color, l.prefix, config.LogColorReset,
		levelColor, level, config.LogColorReset,
		msg))
}
