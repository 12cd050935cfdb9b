package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/opflow/flowengine/pkg/flowengine"
)

func updateSecretsCommand() *cli.Command {
	return &cli.Command{
		Name:  "update-secrets",
		Usage: "Carry forward credential references from an old flow version into a new one, by step name",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "old-flow", Required: true, Usage: "path to the previous flow JSON file"},
			&cli.StringFlag{Name: "flow", Required: true, Usage: "path to the new flow JSON file"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			oldFlow, err := readFlow(cmd.String("old-flow"))
			if err != nil {
				return asProblem(err)
			}

			newFlow, err := readFlow(cmd.String("flow"))
			if err != nil {
				return asProblem(err)
			}

			return printJSON(flowengine.UpdateFlowSecrets(oldFlow, newFlow))
		},
	}
}
