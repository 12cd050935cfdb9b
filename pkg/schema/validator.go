// Package schema is the engine's schema-validator collaborator: given a step
// or trigger, it decides whether the step's settings satisfy the JSON Schema
// registered for its piece/kind. The engine only depends on the Validator
// interface; it never reaches into gojsonschema directly.
package schema

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/opflow/flowengine/internal/domain"
)

// Validator decides whether a step's settings satisfy its registered schema.
// It never errors on a caller's behalf — an invalid step simply reports
// false, which the engine turns into a cleared Valid flag rather than a
// thrown error (see §7 of the design notes: schema failures are not
// exceptional).
type Validator interface {
	ValidateStep(step *domain.Step) bool
}

// Registry is a Validator backed by per-piece JSON Schemas, validated with
// gojsonschema the same way the teacher validates inbound event payloads.
type Registry struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	schemas  map[string]map[string]any // piece_name -> JSON Schema for settings.input
}

// NewRegistry builds an empty schema registry. Pieces with no registered
// schema are treated as always valid — the engine has no piece catalog of
// its own (see spec §1 external collaborators), so callers register schemas
// for the pieces they care about validating.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	return &Registry{
		logger:  logger,
		schemas: make(map[string]map[string]any),
	}
}

// Register associates a JSON Schema with a piece name. Subsequent
// ValidateStep calls for steps with that piece name validate settings.input
// against it.
func (r *Registry) Register(pieceName string, jsonSchema map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.schemas[pieceName] = jsonSchema
}

// ValidateStep validates a piece step's input against its registered schema.
// Non-piece steps (code, branch, loop, router) and piece steps with no
// registered schema are always valid — schema validation only ever
// constrains the shape of piece input.
func (r *Registry) ValidateStep(step *domain.Step) bool {
	if step == nil {
		return false
	}

	if step.Kind != domain.StepKindActionPiece && step.Kind != domain.StepKindTriggerPiece {
		return true
	}

	r.mu.RLock()
	jsonSchema, ok := r.schemas[step.Settings.PieceName]
	r.mu.RUnlock()

	if !ok {
		return true
	}

	if err := r.validate(step.Settings.Input, jsonSchema); err != nil {
		r.logger.Debug("step failed schema validation",
			slog.String("step", step.Name),
			slog.String("piece", step.Settings.PieceName),
			slog.String("error", err.Error()),
		)

		return false
	}

	return true
}

func (r *Registry) validate(input any, jsonSchema map[string]any) error {
	schemaLoader := gojsonschema.NewGoLoader(jsonSchema)
	dataLoader := gojsonschema.NewGoLoader(input)

	result, err := gojsonschema.Validate(schemaLoader, dataLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, resultErr := range result.Errors() {
			details = append(details, resultErr.String())
		}

		return fmt.Errorf("settings.input invalid: %s", strings.Join(details, "; "))
	}

	return nil
}

// AlwaysValid is a Validator that never fails a step. It is useful for
// callers that want engine semantics without wiring a piece schema catalog
// (e.g. most unit tests).
type AlwaysValid struct{}

func (AlwaysValid) ValidateStep(*domain.Step) bool { return true }
