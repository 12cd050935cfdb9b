package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/opflow/flowengine/pkg/flowengine"
)

func flowFlag() cli.Flag {
	return &cli.StringFlag{Name: "flow", Required: true, Usage: "path to the flow JSON file"}
}

func allStepsCommand() *cli.Command {
	return &cli.Command{
		Name:  "all-steps",
		Usage: "Print every step reachable from the trigger, in canonical order",
		Flags: []cli.Flag{flowFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			flow, err := readFlow(cmd.String("flow"))
			if err != nil {
				return asProblem(err)
			}

			return printJSON(flowengine.AllSteps(flow.Trigger))
		},
	}
}

func getStepCommand() *cli.Command {
	return &cli.Command{
		Name:  "get-step",
		Usage: "Print the step with the given name",
		Flags: []cli.Flag{
			flowFlag(),
			&cli.StringFlag{Name: "name", Required: true},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			flow, err := readFlow(cmd.String("flow"))
			if err != nil {
				return asProblem(err)
			}

			step := flowengine.GetStep(flow.Trigger, cmd.String("name"))
			if step == nil {
				return asProblem(errStepNotFound(cmd.String("name")))
			}

			return printJSON(step)
		},
	}
}

func findPathCommand() *cli.Command {
	return &cli.Command{
		Name:  "find-path",
		Usage: "Print the ancestor path from the trigger down to the named step",
		Flags: []cli.Flag{
			flowFlag(),
			&cli.StringFlag{Name: "name", Required: true},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			flow, err := readFlow(cmd.String("flow"))
			if err != nil {
				return asProblem(err)
			}

			path, found := flowengine.FindPathToStep(flow.Trigger, cmd.String("name"))
			if !found {
				return asProblem(errStepNotFound(cmd.String("name")))
			}

			return printJSON(path)
		},
	}
}

func importOpsCommand() *cli.Command {
	return &cli.Command{
		Name:  "import-ops",
		Usage: "Print the ADD_ACTION operations that would reconstruct a step's descendants",
		Flags: []cli.Flag{
			flowFlag(),
			&cli.StringFlag{Name: "name", Usage: "root step name; defaults to the trigger"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			flow, err := readFlow(cmd.String("flow"))
			if err != nil {
				return asProblem(err)
			}

			root := flow.Trigger
			if name := cmd.String("name"); name != "" {
				root = flowengine.GetStep(flow.Trigger, name)
				if root == nil {
					return asProblem(errStepNotFound(name))
				}
			}

			return printJSON(flowengine.GetImportOperations(root))
		},
	}
}

func usedPiecesCommand() *cli.Command {
	return &cli.Command{
		Name:  "used-pieces",
		Usage: "Print the distinct pieces referenced by this flow",
		Flags: []cli.Flag{flowFlag()},
		Action: func(_ context.Context, cmd *cli.Command) error {
			flow, err := readFlow(cmd.String("flow"))
			if err != nil {
				return asProblem(err)
			}

			return printJSON(flowengine.GetUsedPieces(flow.Trigger))
		},
	}
}

func findAvailableNameCommand() *cli.Command {
	return &cli.Command{
		Name:  "find-available-name",
		Usage: "Print an unused step name with the given prefix",
		Flags: []cli.Flag{
			flowFlag(),
			&cli.StringFlag{Name: "prefix", Required: true},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			flow, err := readFlow(cmd.String("flow"))
			if err != nil {
				return asProblem(err)
			}

			return printJSON(flowengine.FindAvailableStepName(flow, cmd.String("prefix")))
		},
	}
}
