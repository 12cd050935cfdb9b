package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/opflow/flowengine/pkg/flowengine"
	"github.com/opflow/flowengine/pkg/pieceversion"
	"github.com/opflow/flowengine/pkg/schema"
)

func normalizeCommand() *cli.Command {
	return &cli.Command{
		Name:  "normalize",
		Usage: "Strip UI-only state and credentials and pin piece versions to ranges",
		Flags: []cli.Flag{flowFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			flow, err := readFlow(cmd.String("flow"))
			if err != nil {
				return asProblem(err)
			}

			engine := flowengine.NewEngine(schema.AlwaysValid{}, pieceversion.NewUpgrader())

			return printJSON(engine.Normalize(flow))
		},
	}
}
