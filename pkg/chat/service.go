// Package chat is the send-path composition root: it runs the moderation
// orchestrator and the safety detector for every outgoing message and hands
// survivors to the message bus.
package chat

import (
	"context"
	"time"

	"github.com/WardMate/ChatGuard/pkg/infra/metrics"
	"github.com/WardMate/ChatGuard/pkg/moderation"
	"github.com/WardMate/ChatGuard/pkg/safety"
	"github.com/WardMate/ChatGuard/pkg/types"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SubmitRequest is one outgoing message from the UI.
type SubmitRequest struct {
	SessionID         string
	ClinicID          string
	Text              string
	CompanionIdentity string
	ReplyTo           string
}

// SubmitResult reports what happened to the message. Displayed and
// EmergencyFlag are independent: an emergency message may be displayed,
// blocked, or flagged, and the staff prompt fires regardless.
type SubmitResult struct {
	Displayed     bool
	Verdict       types.ModerationVerdict
	EmergencyFlag bool
	Message       types.Message
}

// Service is constructed per clinic room and holds no hidden global state;
// everything it needs is injected.
type Service struct {
	orchestrator *moderation.Orchestrator
	detector     *safety.Detector
	bus          Bus
	history      *HistoryStore
	logger       *logrus.Logger
	metrics      *metrics.Collector
}

func NewService(
	orchestrator *moderation.Orchestrator,
	detector *safety.Detector,
	bus Bus,
	history *HistoryStore,
	logger *logrus.Logger,
	collector *metrics.Collector,
) *Service {
	return &Service{
		orchestrator: orchestrator,
		detector:     detector,
		bus:          bus,
		history:      history,
		logger:       logger,
		metrics:      collector,
	}
}

// SubmitMessage always resolves: moderation failures surface as verdicts,
// never as errors. Bus failures are logged and do not change the verdict.
func (s *Service) SubmitMessage(ctx context.Context, req SubmitRequest) SubmitResult {
	now := time.Now().UTC()
	historyTexts, lastAt := s.history.Snapshot(req.SessionID)
	mctx := types.ModerationContext{
		SessionID:            req.SessionID,
		ClinicID:             req.ClinicID,
		MessageHistory:       historyTexts,
		LastMessageTimestamp: lastAt,
	}

	// The safety check is a side channel, not a gate: it runs for every
	// message and its outcome never influences the verdict.
	emergency := s.detector.DetectEmergency(req.Text)

	verdict := s.orchestrator.Moderate(ctx, req.Text, mctx)

	msg := types.Message{
		ID:                uuid.New().String(),
		ClinicID:          req.ClinicID,
		SessionID:         req.SessionID,
		AuthorType:        types.AuthorUser,
		Text:              req.Text,
		CreatedAt:         now,
		CompanionIdentity: req.CompanionIdentity,
		ReplyTo:           req.ReplyTo,
		Moderation: types.Moderation{
			Status: verdict.Status(),
			Reason: verdict.Reason,
		},
	}

	s.history.Append(req.SessionID, req.Text, now)

	displayed := verdict.Decision != types.DecisionBlock
	if displayed {
		if err := s.bus.Publish(ctx, msg); err != nil {
			s.logger.WithError(err).WithField("message_id", msg.ID).
				Error("failed to publish message to bus")
		}
	}

	if emergency {
		if s.metrics != nil {
			s.metrics.ObserveEmergencySignal()
		}
		s.publishStaffPrompt(ctx, req)
	}

	return SubmitResult{
		Displayed:     displayed,
		Verdict:       verdict,
		EmergencyFlag: emergency,
		Message:       msg,
	}
}

func (s *Service) publishStaffPrompt(ctx context.Context, req SubmitRequest) {
	prompt := types.Message{
		ID:         uuid.New().String(),
		ClinicID:   req.ClinicID,
		SessionID:  req.SessionID,
		AuthorType: types.AuthorSystem,
		Text:       safety.StaffPromptText,
		CreatedAt:  time.Now().UTC(),
		Moderation: types.Moderation{Status: types.StatusAllowed},
	}
	if err := s.bus.Publish(ctx, prompt); err != nil {
		s.logger.WithError(err).Error("failed to publish staff prompt")
	}
}
