package main

import (
	"context"

	logrus "github.com/sirupsen/logrus"

	opflowlog "github.com/opflow/flowengine/pkg/log"
)

// loggerFrom returns the correlation-tagged logrus entry the root command's
// Before hook attached to ctx.
func loggerFrom(ctx context.Context) *logrus.Entry {
	return opflowlog.Logger(ctx)
}
