package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/opflow/flowengine/pkg/flowengine"
	"github.com/opflow/flowengine/pkg/pieceversion"
	"github.com/opflow/flowengine/pkg/schema"
)

func applyCommand() *cli.Command {
	return &cli.Command{
		Name:  "apply",
		Usage: "Apply one operation to a flow and print the resulting flow",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "flow", Required: true, Usage: "path to the flow JSON file"},
			&cli.StringFlag{Name: "operation", Required: true, Usage: "path to the operation JSON file"},
			&cli.StringFlag{Name: "legacy-pieces", Usage: "path to a legacy piece version YAML file"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := loggerFrom(ctx)

			flow, err := readFlow(cmd.String("flow"))
			if err != nil {
				return asProblem(err)
			}

			op, err := readOperation(cmd.String("operation"))
			if err != nil {
				return asProblem(err)
			}

			upgrader := pieceversion.NewUpgrader()

			if path := cmd.String("legacy-pieces"); path != "" {
				extra, err := pieceversion.LoadLegacyConfig(path)
				if err != nil {
					return asProblem(err)
				}

				upgrader = upgrader.WithLegacy(extra)
			}

			engine := flowengine.NewEngine(schema.AlwaysValid{}, upgrader)

			logger.WithField("operation", op.Type).Info("applying operation")

			result, err := engine.Apply(flow, *op)
			if err != nil {
				return asProblem(err)
			}

			return printJSON(result)
		},
	}
}
