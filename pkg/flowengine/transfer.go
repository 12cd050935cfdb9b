package flowengine

import (
	"context"

	"github.com/opflow/flowengine/internal/domain"
	"github.com/opflow/flowengine/pkg/cloner"
)

// Rewriter rewrites a single step and returns its replacement. It may mutate
// the step's own slot fields (Next, OnSuccess, OnFailure, FirstLoopAction,
// Children) — Transfer recurses into whatever the rewriter leaves there, not
// into the original values. Returning nil removes the step and everything
// it used to point to.
type Rewriter func(*domain.Step) *domain.Step

// Transfer returns a new flow whose trigger is obtained by applying f to
// every step reachable from the current trigger, deep-cloned first so the
// caller's flow is never mutated. f runs on the current node before Transfer
// recurses into its (possibly rewritten) structural children and Next — this
// lets a single Rewriter express "splice out the step named X" or "upgrade
// every piece step" without hand-rolling tree recursion at each call site.
func Transfer(flow *domain.Flow, f Rewriter) *domain.Flow {
	cloned := cloner.Clone(flow)
	cloned.Trigger = transferStep(cloned.Trigger, f)

	return cloned
}

func transferStep(step *domain.Step, f Rewriter) *domain.Step {
	if step == nil {
		return nil
	}

	updated := f(step)
	if updated == nil {
		return nil
	}

	switch updated.Kind {
	case domain.StepKindActionBranch:
		updated.OnSuccess = transferStep(updated.OnSuccess, f)
		updated.OnFailure = transferStep(updated.OnFailure, f)
	case domain.StepKindActionLoop:
		updated.FirstLoopAction = transferStep(updated.FirstLoopAction, f)
	case domain.StepKindActionRouter:
		for i, child := range updated.Children {
			updated.Children[i] = transferStep(child, f)
		}
	}

	updated.Next = transferStep(updated.Next, f)

	return updated
}

// AsyncRewriter is the future-returning counterpart to Rewriter, used by
// TransferAsync when rewriting a step requires an asynchronous lookup (e.g.
// fetching a piece's current schema before deciding whether it's still
// valid).
type AsyncRewriter func(context.Context, *domain.Step) (*domain.Step, error)

// TransferAsync mirrors Transfer but awaits f sequentially at each node,
// preserving the same DFS order as the synchronous form — no node is
// rewritten concurrently with another.
func TransferAsync(ctx context.Context, flow *domain.Flow, f AsyncRewriter) (*domain.Flow, error) {
	cloned := cloner.Clone(flow)

	trigger, err := transferStepAsync(ctx, cloned.Trigger, f)
	if err != nil {
		return nil, err
	}

	cloned.Trigger = trigger

	return cloned, nil
}

func transferStepAsync(ctx context.Context, step *domain.Step, f AsyncRewriter) (*domain.Step, error) {
	if step == nil {
		return nil, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	updated, err := f(ctx, step)
	if err != nil {
		return nil, err
	}

	if updated == nil {
		return nil, nil
	}

	switch updated.Kind {
	case domain.StepKindActionBranch:
		updated.OnSuccess, err = transferStepAsync(ctx, updated.OnSuccess, f)
		if err != nil {
			return nil, err
		}

		updated.OnFailure, err = transferStepAsync(ctx, updated.OnFailure, f)
		if err != nil {
			return nil, err
		}
	case domain.StepKindActionLoop:
		updated.FirstLoopAction, err = transferStepAsync(ctx, updated.FirstLoopAction, f)
		if err != nil {
			return nil, err
		}
	case domain.StepKindActionRouter:
		for i, child := range updated.Children {
			updated.Children[i], err = transferStepAsync(ctx, child, f)
			if err != nil {
				return nil, err
			}
		}
	}

	updated.Next, err = transferStepAsync(ctx, updated.Next, f)
	if err != nil {
		return nil, err
	}

	return updated, nil
}
