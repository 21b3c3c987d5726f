package server

import (
	"github.com/WardMate/ChatGuard/pkg/chat"
	"github.com/WardMate/ChatGuard/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type submitRequest struct {
	SessionID         string `json:"session_id"`
	ClinicID          string `json:"clinic_id"`
	Text              string `json:"text"`
	CompanionIdentity string `json:"companion_identity,omitempty"`
	ReplyTo           string `json:"reply_to,omitempty"`
}

type submitResponse struct {
	Displayed bool                    `json:"displayed"`
	Verdict   types.ModerationVerdict `json:"verdict"`
	Emergency bool                    `json:"emergency"`
	MessageID string                  `json:"message_id"`
}

type ChatHandler struct {
	service *chat.Service
	logger  *logrus.Logger
}

func NewChatHandler(service *chat.Service, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{service: service, logger: logger}
}

// Submit runs one message through the moderation pipeline. A blocked
// message is still a 200: the block is the result, not an error.
func (h *ChatHandler) Submit(c *fiber.Ctx) error {
	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.SessionID == "" || req.ClinicID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "session_id and clinic_id are required",
		})
	}

	result := h.service.SubmitMessage(c.Context(), chat.SubmitRequest{
		SessionID:         req.SessionID,
		ClinicID:          req.ClinicID,
		Text:              req.Text,
		CompanionIdentity: req.CompanionIdentity,
		ReplyTo:           req.ReplyTo,
	})

	return c.Status(fiber.StatusOK).JSON(submitResponse{
		Displayed: result.Displayed,
		Verdict:   result.Verdict,
		Emergency: result.EmergencyFlag,
		MessageID: result.Message.ID,
	})
}
