package main

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/moogar0880/problems"

	"github.com/opflow/flowengine/internal/domain"
)

// asProblem renders err as an RFC 7807 problem details document printed to
// stderr, then returns a plain error so the CLI exits non-zero.
func asProblem(err error) error {
	problem := problems.NewStatusProblem(422).
		WithType("flow_operation_invalid").
		WithDetail(err.Error())

	var opErr *domain.OperationError
	if errors.As(err, &opErr) {
		problem = problem.WithInstance(opErr.Name)
	}

	if data, marshalErr := json.MarshalIndent(problem, "", "  "); marshalErr == nil {
		_, _ = os.Stderr.Write(append(data, '\n'))
	}

	return err
}
