package moderation

import (
	"context"
	"fmt"

	"github.com/WardMate/ChatGuard/pkg/infra/metrics"
	"github.com/WardMate/ChatGuard/pkg/types"
	"github.com/sirupsen/logrus"
)

// Orchestrator folds an ordered list of stages into a single verdict. The
// fallback order is data, not nested exception handling: the fold stops at
// the first stage that decides, and a stage failure is just an abstention.
type Orchestrator struct {
	stages  []Stage
	logger  *logrus.Logger
	metrics *metrics.Collector
}

func NewOrchestrator(logger *logrus.Logger, collector *metrics.Collector, stages ...Stage) *Orchestrator {
	return &Orchestrator{
		stages:  stages,
		logger:  logger,
		metrics: collector,
	}
}

// Moderate always resolves to a verdict; it never returns an error and
// never panics. If every stage abstains the message is allowed.
func (o *Orchestrator) Moderate(ctx context.Context, text string, mctx types.ModerationContext) types.ModerationVerdict {
	for _, stage := range o.stages {
		result := o.evaluate(ctx, stage, text, mctx)
		if result.Err != nil {
			o.logger.WithError(result.Err).
				WithField("stage", stage.Name()).
				Warn("moderation stage abstained with error")
		}
		if result.Decided != nil {
			verdict := *result.Decided
			o.observe(stage.Name(), verdict)
			return verdict
		}
	}
	verdict := types.ModerationVerdict{Decision: types.DecisionAllow}
	o.observe("none", verdict)
	return verdict
}

// evaluate shields the fold from a misbehaving stage: a panic inside any
// classifier is converted into an abstention so the pipeline continues.
func (o *Orchestrator) evaluate(
	ctx context.Context,
	stage Stage,
	text string,
	mctx types.ModerationContext,
) (result StageResult) {
	defer func() {
		if r := recover(); r != nil {
			result = abstainWith(fmt.Errorf("stage %s panicked: %v", stage.Name(), r))
		}
	}()
	return stage.Evaluate(ctx, text, mctx)
}

func (o *Orchestrator) observe(stageName string, verdict types.ModerationVerdict) {
	if o.metrics != nil {
		o.metrics.ObserveVerdict(string(verdict.Decision), verdict.Category)
	}
	o.logger.WithFields(logrus.Fields{
		"stage":    stageName,
		"decision": verdict.Decision,
		"category": verdict.Category,
	}).Debug("moderation verdict")
}
