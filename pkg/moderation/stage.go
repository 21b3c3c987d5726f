// Package moderation composes the multi-stage content-safety pipeline every
// outgoing chat message passes through before being broadcast.
package moderation

import (
	"context"

	"github.com/WardMate/ChatGuard/pkg/types"
)

// StageResult is the tagged outcome of a single pipeline stage. A nil
// Decided means the stage abstained and the pipeline moves on; Err is
// informational only and never aborts the fold.
type StageResult struct {
	Decided *types.ModerationVerdict
	Err     error
}

// Stage is one ordered step of the moderation pipeline. Implementations
// must always return; a stage that cannot reach a decision abstains rather
// than erroring out.
type Stage interface {
	Name() string
	Evaluate(ctx context.Context, text string, mctx types.ModerationContext) StageResult
}

func abstain() StageResult {
	return StageResult{}
}

func abstainWith(err error) StageResult {
	return StageResult{Err: err}
}

func decide(v types.ModerationVerdict) StageResult {
	return StageResult{Decided: &v}
}
