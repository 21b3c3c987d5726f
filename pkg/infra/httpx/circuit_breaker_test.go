package httpx_test

import (
	"errors"
	"testing"
	"time"

	"github.com/WardMate/ChatGuard/pkg/infra/httpx"
	"github.com/stretchr/testify/assert"
)

func TestExecutePassesThroughSuccess(t *testing.T) {
	cb := httpx.NewCircuitBreaker("test", time.Minute, 3)

	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
}

func TestExecuteWrapsUnderlyingError(t *testing.T) {
	cb := httpx.NewCircuitBreaker("openai", time.Minute, 3)

	err := cb.Execute(func() error {
		return errors.New("connection refused")
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "openai")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestExecuteOpensAfterConsecutiveFailures(t *testing.T) {
	cb := httpx.NewCircuitBreaker("flaky", time.Minute, 2)

	for i := 0; i < 2; i++ {
		_ = cb.Execute(func() error { return errors.New("boom") })
	}

	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})
	assert.Error(t, err, "open breaker must reject the call")
	assert.False(t, called, "open breaker must not invoke the function")
}

func TestExecuteStaysClosedOnSuccesses(t *testing.T) {
	cb := httpx.NewCircuitBreaker("steady", time.Minute, 2)

	_ = cb.Execute(func() error { return errors.New("boom") })
	assert.NoError(t, cb.Execute(func() error { return nil }))

	// The success reset the consecutive-failure count, so one more failure
	// does not open the breaker.
	_ = cb.Execute(func() error { return errors.New("boom") })
	assert.NoError(t, cb.Execute(func() error { return nil }))
}
