package llm

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// External model calls are blocking; the wrappers below bound every call
// with a timeout and allow exactly one retry before giving up. Callers
// absorb the final error as data (zero vector, parse-failure record).
const (
	defaultCallTimeout = 30 * time.Second
	retryInterval      = 500 * time.Millisecond
	maxRetries         = 1
)

type ResilientLLM struct {
	inner   LLMClient
	timeout time.Duration
}

func NewResilientLLM(inner LLMClient, timeout time.Duration) *ResilientLLM {
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return &ResilientLLM{inner: inner, timeout: timeout}
}

func (r *ResilientLLM) Generate(ctx context.Context, prompt string) (string, error) {
	return retryWithTimeout(ctx, r.timeout, func(callCtx context.Context) (string, error) {
		return r.inner.Generate(callCtx, prompt)
	})
}

type ResilientEmbedder struct {
	inner   EmbedderClient
	timeout time.Duration
}

func NewResilientEmbedder(inner EmbedderClient, timeout time.Duration) *ResilientEmbedder {
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return &ResilientEmbedder{inner: inner, timeout: timeout}
}

func (r *ResilientEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return retryWithTimeout(ctx, r.timeout, func(callCtx context.Context) ([]float32, error) {
		return r.inner.Embed(callCtx, text)
	})
}

func retryWithTimeout[T any](ctx context.Context, timeout time.Duration, call func(context.Context) (T, error)) (T, error) {
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(retryInterval), maxRetries),
		ctx,
	)

	return backoff.RetryWithData(func() (T, error) {
		callCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return call(callCtx)
	}, policy)
}
