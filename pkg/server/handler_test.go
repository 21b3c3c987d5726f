package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/WardMate/ChatGuard/pkg/chat"
	"github.com/WardMate/ChatGuard/pkg/heuristic"
	"github.com/WardMate/ChatGuard/pkg/moderation"
	"github.com/WardMate/ChatGuard/pkg/rules"
	"github.com/WardMate/ChatGuard/pkg/safety"
	"github.com/WardMate/ChatGuard/pkg/server"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	orchestrator := moderation.NewOrchestrator(logger, nil,
		moderation.NewRulesStage(rules.NewClassifier(500)),
		moderation.NewHeuristicStage(heuristic.NewClassifier()),
	)
	service := chat.NewService(orchestrator, safety.NewDetector(),
		chat.NewMemoryBus(8), chat.NewHistoryStore(5), logger, nil)
	handler := server.NewChatHandler(service, logger)

	app := fiber.New()
	app.Post("/v1/messages", handler.Submit)
	return app
}

func postMessage(t *testing.T, app *fiber.App, body map[string]interface{}) (int, map[string]interface{}) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/v1/messages", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestSubmitEndpointAllowsCleanMessage(t *testing.T) {
	app := newTestApp()

	status, body := postMessage(t, app, map[string]interface{}{
		"session_id": "s1",
		"clinic_id":  "c1",
		"text":       "hello, how is everyone",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["displayed"])
	assert.Equal(t, false, body["emergency"])
	assert.NotEmpty(t, body["message_id"])
}

func TestSubmitEndpointBlockedMessageIsStillOK(t *testing.T) {
	app := newTestApp()

	status, body := postMessage(t, app, map[string]interface{}{
		"session_id": "s1",
		"clinic_id":  "c1",
		"text":       "You are all idiots, I hate this place",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, body["displayed"])

	verdict, ok := body["verdict"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "block", verdict["decision"])
}

func TestSubmitEndpointRequiresSessionAndClinic(t *testing.T) {
	app := newTestApp()

	status, body := postMessage(t, app, map[string]interface{}{
		"text": "hello",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NotEmpty(t, body["error"])
}

func TestSubmitEndpointRejectsInvalidBody(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("POST", "/v1/messages", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
