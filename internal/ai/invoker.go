package ai

import (
	"context"
	"fmt"
	"log/slog"
)

// Result is a successful invocation outcome: which provider answered and
// the raw text it produced.
type Result struct {
	Provider string
	Model    string
	Text     string
}

// CombinedError is returned when the primary and the fallback provider
// both failed. The invocation is then terminal; there is no further retry.
type CombinedError struct {
	PrimaryProvider  string
	FallbackProvider string
	Primary          error
	Fallback         error
}

func (e *CombinedError) Error() string {
	return fmt.Sprintf("primary provider %s failed: %v; fallback provider %s failed: %v",
		e.PrimaryProvider, e.Primary, e.FallbackProvider, e.Fallback)
}

func (e *CombinedError) Unwrap() []error {
	return []error{e.Primary, e.Fallback}
}

// Invoker runs a prompt against the primary provider and falls back to the
// secondary exactly once. There is no retry against the same provider and
// no backoff at this layer.
type Invoker struct {
	feature  string
	primary  Provider
	fallback Provider // nil when no fallback key is configured
	model    string   // primary model id; fallback uses its own default
	usage    UsageRecorder
}

// InvokerConfig holds Invoker dependencies.
type InvokerConfig struct {
	Feature  string
	Primary  Provider
	Fallback Provider
	Model    string
	Usage    UsageRecorder
}

// NewInvoker creates an invoker for one generation feature.
func NewInvoker(cfg InvokerConfig) *Invoker {
	usage := cfg.Usage
	if usage == nil {
		usage = NopUsage{}
	}
	return &Invoker{
		feature:  cfg.Feature,
		primary:  cfg.Primary,
		fallback: cfg.Fallback,
		model:    cfg.Model,
		usage:    usage,
	}
}

// Invoke sends the prompt to the primary provider; on failure it tries the
// fallback once with the identical prompt. With no fallback configured the
// primary error is returned unchanged. When both fail the error is a
// *CombinedError.
func (i *Invoker) Invoke(ctx context.Context, promptText string) (Result, error) {
	req := CompletionRequest{
		Messages: []Message{{Role: "user", Content: promptText}},
		Model:    i.model,
	}

	resp, primaryErr := i.primary.Complete(ctx, req)
	if primaryErr == nil {
		i.usage.Record(i.feature, resp.TotalTokens())
		slog.Debug("generation completed",
			"feature", i.feature,
			"provider", i.primary.Name(),
			"model", resp.Model,
			"tokens", resp.TotalTokens(),
		)
		return Result{Provider: i.primary.Name(), Model: resp.Model, Text: resp.Content}, nil
	}

	if i.fallback == nil {
		return Result{}, primaryErr
	}

	slog.Warn("primary provider failed, trying fallback",
		"feature", i.feature,
		"provider", i.primary.Name(),
		"fallback", i.fallback.Name(),
		"error", primaryErr,
	)

	// Same prompt text; the fallback picks its own default model.
	req.Model = ""
	resp, fallbackErr := i.fallback.Complete(ctx, req)
	if fallbackErr != nil {
		return Result{}, &CombinedError{
			PrimaryProvider:  i.primary.Name(),
			FallbackProvider: i.fallback.Name(),
			Primary:          primaryErr,
			Fallback:         fallbackErr,
		}
	}

	i.usage.Record(i.feature, resp.TotalTokens())
	slog.Info("fallback provider answered",
		"feature", i.feature,
		"provider", i.fallback.Name(),
		"model", resp.Model,
	)
	return Result{Provider: i.fallback.Name(), Model: resp.Model, Text: resp.Content}, nil
}

// HasFallback reports whether a fallback provider is configured.
func (i *Invoker) HasFallback() bool {
	return i.fallback != nil
}
