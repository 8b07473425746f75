// Package zapadapter provides a logger that writes to a go.uber.org/zap.Logger.
package zapadapter

import (
	"context"

	"go.uber.org/zap"
)

type key string

var idKey key

type Logger struct {
	logger *zap.SugaredLogger
}

func NewContextWithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, idKey, id)
}

func IDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(idKey).(string)
	return id, ok
}

// NewLogger returns a Logger satisfying gocql.StdLogger so that driver
// messages end up in the application log instead of the process stderr
func NewLogger(logger *zap.Logger) *Logger {
	return &Logger{logger: logger.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (l *Logger) Print(v ...interface{}) {
	l.logger.Debug(v...)
}

func (l *Logger) Printf(format string, v ...interface{}) {
	l.logger.Debugf(format, v...)
}

func (l *Logger) Println(v ...interface{}) {
	l.logger.Debug(v...)
}
