package flowengine

import (
	"github.com/opflow/flowengine/internal/domain"
	"github.com/opflow/flowengine/pkg/cloner"
	"github.com/opflow/flowengine/pkg/reftemplate"
)

// cloneSubtreeWithFreshNames deep-clones subtree and assigns every cloned
// step a fresh "step_K" name (K the smallest positive integer not already
// used anywhere in flow or by an earlier rename in this same clone),
// regardless of what the original step was named. References inside
// {{...}} templates are rewritten to follow along.
func cloneSubtreeWithFreshNames(flow *domain.Flow, subtree *domain.Step) *domain.Step {
	if subtree == nil {
		return nil
	}

	clone := cloner.Clone(subtree)
	used := namesOf(AllSteps(flow.Trigger))

	renames := map[string]string{}

	for _, step := range AllSteps(clone) {
		fresh := FindUnusedName(used, "step")
		used[fresh] = true
		renames[step.Name] = fresh
	}

	for _, step := range AllSteps(clone) {
		step.Name = renames[step.Name]
		step.DisplayName += " Copy"
		step.Settings.InputUIInfo = nil
		step.Settings = rewriteSettingsReferences(step.Settings, renames)
	}

	return clone
}

func rewriteSettingsReferences(settings domain.Settings, renames map[string]string) domain.Settings {
	for oldName, newName := range renames {
		if settings.Input != nil {
			settings.Input = reftemplate.RewriteValue(settings.Input, oldName, newName)
		}

		if settings.CodeInput != nil {
			settings.CodeInput = reftemplate.RewriteMap(settings.CodeInput, oldName, newName)
		}

		settings.SourceCode = reftemplate.RewriteString(settings.SourceCode, oldName, newName)
	}

	return settings
}
