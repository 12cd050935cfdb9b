package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/opflow/flowengine/internal/domain"
)

// validate enforces the struct tags on Flow/Step/Operation at the CLI's
// input boundary, the same way the teacher validates request bodies before
// they reach any service logic.
var validate = validator.New(validator.WithRequiredStructEnabled())

func readFlow(path string) (*domain.Flow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read flow file: %w", err)
	}

	var flow domain.Flow
	if err := json.Unmarshal(data, &flow); err != nil {
		return nil, fmt.Errorf("parse flow file: %w", err)
	}

	if err := validate.Struct(&flow); err != nil {
		return nil, fmt.Errorf("flow file failed validation: %w", err)
	}

	return &flow, nil
}

func readOperation(path string) (*domain.Operation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read operation file: %w", err)
	}

	var op domain.Operation
	if err := json.Unmarshal(data, &op); err != nil {
		return nil, fmt.Errorf("parse operation file: %w", err)
	}

	if err := validate.Struct(&op); err != nil {
		return nil, fmt.Errorf("operation file failed validation: %w", err)
	}

	return &op, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	_, err = os.Stdout.Write(append(data, '\n'))

	return err
}
