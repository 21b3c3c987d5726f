package moderation

import (
	"context"

	"github.com/WardMate/ChatGuard/pkg/heuristic"
	"github.com/WardMate/ChatGuard/pkg/rules"
	"github.com/WardMate/ChatGuard/pkg/types"
)

// RulesStage wraps the deterministic pre-filter. It decides a block or
// abstains; it never flags and never touches the network.
type RulesStage struct {
	classifier *rules.Classifier
}

func NewRulesStage(classifier *rules.Classifier) *RulesStage {
	return &RulesStage{classifier: classifier}
}

func (s *RulesStage) Name() string { return "rules" }

func (s *RulesStage) Evaluate(_ context.Context, text string, _ types.ModerationContext) StageResult {
	result := s.classifier.Classify(text)
	if result.Passed {
		return abstain()
	}
	return decide(types.ModerationVerdict{
		Decision: types.DecisionBlock,
		Reason:   result.Reason,
		Category: result.Category,
	})
}

// HeuristicStage wraps the NLP scoring backstop. A warn becomes a flag
// verdict: the message stays visible but carries the warning annotation
// and rephrasing suggestions.
type HeuristicStage struct {
	classifier *heuristic.Classifier
}

func NewHeuristicStage(classifier *heuristic.Classifier) *HeuristicStage {
	return &HeuristicStage{classifier: classifier}
}

func (s *HeuristicStage) Name() string { return "heuristic" }

func (s *HeuristicStage) Evaluate(_ context.Context, text string, mctx types.ModerationContext) StageResult {
	profile := s.classifier.Classify(text, mctx.MessageHistory)
	assessment := s.classifier.Decide(profile)

	switch assessment.Action {
	case heuristic.ActionBlock:
		return decide(types.ModerationVerdict{
			Decision:   types.DecisionBlock,
			Reason:     assessment.Reason,
			Category:   assessment.Category,
			Confidence: assessment.Confidence,
		})
	case heuristic.ActionWarn:
		return decide(types.ModerationVerdict{
			Decision:    types.DecisionFlag,
			Reason:      assessment.Reason,
			Category:    assessment.Category,
			Confidence:  assessment.Confidence,
			Suggestions: assessment.Suggestions,
		})
	default:
		return abstain()
	}
}
