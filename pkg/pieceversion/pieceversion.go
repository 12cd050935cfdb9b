// Package pieceversion is the semver comparator collaborator: it decides
// whether a piece's version string predates the engine's semver-range
// convention and, if so, rewrites it to a caret or tilde constraint.
package pieceversion

import (
	"fmt"
	"os"
	"strings"

	"dario.cat/mergo"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/opflow/flowengine/internal/domain"
)

// LegacyPiece identifies a piece whose versions below MinVersion predate the
// semver-range convention and are never rewritten by Upgrade.
type LegacyPiece struct {
	Name       string `yaml:"name"`
	MinVersion string `yaml:"min_version"`
}

// legacyPieces is the built-in legacy list. A piece here is exempt from
// version-range rewriting while its current version is below MinVersion.
var legacyPieces = []LegacyPiece{
	{Name: "google-sheets", MinVersion: "0.3.0"},
	{Name: "gmail", MinVersion: "0.3.0"},
}

// Upgrader rewrites a piece step's version constraint during normalization.
type Upgrader struct {
	legacy []LegacyPiece
}

// NewUpgrader builds an Upgrader seeded with the built-in legacy piece list.
func NewUpgrader() *Upgrader {
	return &Upgrader{legacy: append([]LegacyPiece{}, legacyPieces...)}
}

// LoadLegacyConfig reads additional legacy-piece entries from a YAML file and
// returns them; Upgrader.WithLegacy merges them in. The file format mirrors the teacher's
// receivers.yaml loader: a flat list under a top-level key.
func LoadLegacyConfig(path string) ([]LegacyPiece, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read legacy piece config %s: %w", path, err)
	}

	var cfg struct {
		LegacyPieces []LegacyPiece `yaml:"legacy_pieces"`
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse legacy piece config: %w", err)
	}

	return cfg.LegacyPieces, nil
}

// WithLegacy returns a copy of u with extra merged into its legacy piece
// list by name: an entry that names an existing piece overrides its
// min_version rather than coexisting alongside it, so a caller-supplied
// config always wins over the built-in default for the same piece.
func (u *Upgrader) WithLegacy(extra []LegacyPiece) *Upgrader {
	byName := make(map[string]LegacyPiece, len(u.legacy)+len(extra))
	for _, lp := range u.legacy {
		byName[lp.Name] = lp
	}

	for _, lp := range extra {
		existing := byName[lp.Name]
		if err := mergo.Merge(&existing, lp, mergo.WithOverride); err != nil {
			byName[lp.Name] = lp
			continue
		}

		byName[lp.Name] = existing
	}

	merged := make([]LegacyPiece, 0, len(byName))
	for _, lp := range byName {
		merged = append(merged, lp)
	}

	return &Upgrader{legacy: merged}
}

func (u *Upgrader) isLegacy(pieceName, version string) bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}

	for _, lp := range u.legacy {
		if lp.Name != pieceName {
			continue
		}

		minV, err := semver.NewVersion(lp.MinVersion)
		if err != nil {
			continue
		}

		if v.LessThan(minV) {
			return true
		}
	}

	return false
}

// Upgrade rewrites step.Settings.PieceVersion in place according to the
// normalization rules: legacy pieces and already-ranged versions
// (prefixed "^" or "~") are left untouched; versions below 1.0.0 become a
// tilde (patch-range) pin; everything else becomes a caret (minor-range) pin.
// Non-piece steps are left untouched.
func (u *Upgrader) Upgrade(step *domain.Step) {
	if step == nil {
		return
	}

	if step.Kind != domain.StepKindActionPiece && step.Kind != domain.StepKindTriggerPiece {
		return
	}

	version := step.Settings.PieceVersion
	if version == "" {
		return
	}

	if strings.HasPrefix(version, "^") || strings.HasPrefix(version, "~") {
		return
	}

	if u.isLegacy(step.Settings.PieceName, version) {
		return
	}

	parsed, err := semver.NewVersion(version)
	if err != nil {
		return
	}

	one := semver.MustParse("1.0.0")

	if parsed.LessThan(one) {
		step.Settings.PieceVersion = "~" + version
	} else {
		step.Settings.PieceVersion = "^" + version
	}
}
