package log

import (
	"context"

	logrus "github.com/sirupsen/logrus"
)

type contextKey string

const loggerKey contextKey = "logger"

func CreateContextWithLogger(logger *logrus.Entry) (context.Context, context.CancelFunc) {

	ctx, cancel := context.WithCancel(context.Background())
	ctx = context.WithValue(ctx, loggerKey, logger)

	return ctx, cancel
}

// Logger returns the logrus entry stored by CreateContextWithLogger, or a
// bare entry at the default level if the context carries none.
func Logger(ctx context.Context) *logrus.Entry {
	if logger, ok := ctx.Value(loggerKey).(*logrus.Entry); ok && logger != nil {
		return logger
	}

	return logrus.NewEntry(logrus.StandardLogger())
}
