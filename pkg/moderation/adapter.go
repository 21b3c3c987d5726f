package moderation

import (
	"context"
	"strings"
	"time"

	"github.com/WardMate/ChatGuard/pkg/infra/httpx"
	"github.com/WardMate/ChatGuard/pkg/infra/metrics"
	"github.com/WardMate/ChatGuard/pkg/infra/providers"
	"github.com/WardMate/ChatGuard/pkg/types"
	"github.com/sirupsen/logrus"
)

const (
	defaultAdapterTimeout = 8 * time.Second
	defaultMaxTokens      = 256

	breakerOpenFor     = 30 * time.Second
	breakerMaxFailures = 5
)

// AdapterConfig is the injected configuration for one provider adapter.
type AdapterConfig struct {
	Provider      string        `mapstructure:"provider"`
	Model         string        `mapstructure:"model"`
	FallbackModel string        `mapstructure:"fallback_model"`
	APIKey        string        `mapstructure:"api_key"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxTokens     int           `mapstructure:"max_tokens"`
}

// Outcome is the adapter-level decision. Allowed is true both for an
// explicit pass and for every failure mode: chat availability is
// prioritized over a single provider's opinion, because the local
// classifiers always run as a backstop.
type Outcome struct {
	Allowed  bool
	Reason   string
	Category string
}

// ProviderAdapter turns one external classification provider into a
// pipeline stage. It owns its own timeout, response validation and
// fail-open behavior; errors never escape it.
type ProviderAdapter struct {
	cfg     AdapterConfig
	client  providers.Client
	breaker httpx.CircuitBreaker
	logger  *logrus.Logger
	metrics *metrics.Collector
}

func NewProviderAdapter(
	cfg AdapterConfig,
	client providers.Client,
	logger *logrus.Logger,
	collector *metrics.Collector,
) *ProviderAdapter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultAdapterTimeout
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	return &ProviderAdapter{
		cfg:     cfg,
		client:  client,
		breaker: httpx.NewCircuitBreaker("moderation:"+cfg.Provider, breakerOpenFor, breakerMaxFailures),
		logger:  logger,
		metrics: collector,
	}
}

func (a *ProviderAdapter) Name() string {
	return "provider:" + a.cfg.Provider
}

func (a *ProviderAdapter) Evaluate(ctx context.Context, text string, mctx types.ModerationContext) StageResult {
	outcome := a.Moderate(ctx, text, mctx)
	if outcome.Allowed {
		return abstain()
	}
	category := outcome.Category
	if category == "" {
		category = "content_filter"
	}
	reason := outcome.Reason
	if reason == "" {
		reason = "message was blocked by the content safety review"
	}
	return decide(types.ModerationVerdict{
		Decision: types.DecisionBlock,
		Reason:   reason,
		Category: category,
	})
}

// Moderate asks the provider to classify the message. It always returns;
// any transport or contract failure resolves to a fail-open outcome.
func (a *ProviderAdapter) Moderate(ctx context.Context, text string, mctx types.ModerationContext) Outcome {
	resp, err := a.callModel(ctx, a.cfg.Model, text, mctx)
	if err != nil && a.cfg.FallbackModel != "" && isModelNotFound(err) {
		a.logger.WithError(err).WithField("provider", a.cfg.Provider).
			Warn("primary moderation model unavailable, retrying with fallback model")
		if a.metrics != nil {
			a.metrics.ObserveProviderFallback(a.cfg.Provider)
		}
		resp, err = a.callModel(ctx, a.cfg.FallbackModel, text, mctx)
	}
	if err != nil {
		return a.failOpen("provider_error", err)
	}
	if resp == nil || strings.TrimSpace(resp.Response) == "" {
		return a.failOpen("empty_response", nil)
	}

	decision, err := parseDecision(resp.Response)
	if err != nil {
		return a.failOpen("malformed_response", err)
	}
	return Outcome{
		Allowed:  decision.Allowed,
		Reason:   decision.Reason,
		Category: decision.Category,
	}
}

func (a *ProviderAdapter) callModel(
	ctx context.Context,
	model string,
	text string,
	mctx types.ModerationContext,
) (*providers.CompletionResponse, error) {
	callCtx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	var resp *providers.CompletionResponse
	err := a.breaker.Execute(func() error {
		var askErr error
		resp, askErr = a.client.Ask(callCtx, &providers.Config{
			Credentials:  providers.Credentials{ApiKey: a.cfg.APIKey},
			Model:        model,
			MaxTokens:    a.cfg.MaxTokens,
			Temperature:  0.0,
			SystemPrompt: SystemPrompt,
			History:      mctx.MessageHistory,
		}, text)
		return askErr
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (a *ProviderAdapter) failOpen(cause string, err error) Outcome {
	entry := a.logger.WithField("provider", a.cfg.Provider).WithField("cause", cause)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Warn("moderation provider failed open")
	if a.metrics != nil {
		a.metrics.ObserveProviderFailure(a.cfg.Provider, cause)
	}
	return Outcome{Allowed: true}
}

func isModelNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "404") ||
		strings.Contains(msg, "model_not_found") ||
		strings.Contains(msg, "model not found")
}
