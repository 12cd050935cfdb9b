package main

import (
	"context"
	"errors"
	"os"

	"github.com/google/uuid"
	logrus "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	opflowlog "github.com/opflow/flowengine/pkg/log"
)

func errStepNotFound(name string) error {
	return errors.New("step not found: " + name)
}

// rootBefore sets the global slog level the same way the teacher's own
// entrypoints do, then tags a fresh logrus entry with a correlation ID for
// this invocation and carries it on the context every subcommand receives.
func rootBefore(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	opflowlog.Setup(cmd.String("log-level"))

	level, err := logrus.ParseLevel(cmd.String("log-level"))
	if err != nil {
		level = logrus.InfoLevel
	}

	logger := logrus.New()
	logger.SetLevel(level)

	entry := logger.WithField("correlation_id", uuid.NewString())

	logCtx, cancel := opflowlog.CreateContextWithLogger(entry)
	context.AfterFunc(ctx, cancel)

	return logCtx, nil
}

func main() {
	// flowctl's own top-level logger, module-tagged the same way every
	// teacher cmd/operion-*/main.go tags its own: used for startup/fatal
	// logging outside the per-invocation correlation-tagged entry the
	// subcommands get from rootBefore.
	logger := opflowlog.WithModule("flowctl")

	cmd := &cli.Command{
		Name:                  "flowctl",
		Usage:                 "Inspect and mutate flow graphs from the command line",
		EnableShellCompletion: true,
		Before: rootBefore,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "debug, info, warn, or error",
			},
		},
		Commands: []*cli.Command{
			applyCommand(),
			allStepsCommand(),
			getStepCommand(),
			findPathCommand(),
			importOpsCommand(),
			usedPiecesCommand(),
			findAvailableNameCommand(),
			normalizeCommand(),
			updateSecretsCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Error("flowctl exited with an error", "error", err)
		os.Exit(1)
	}
}
