package salin

import (
	"context"
	"testing"
	"time"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  10 * time.Millisecond,
		MaxDelay:   100 * time.Millisecond,
	}
}

func TestWithRetry_Success(t *testing.T) {
	callCount := 0
	result, err := WithRetry(context.Background(), fastRetryConfig(), func() (string, error) {
		callCount++
		return "success", nil
	})

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result != "success" {
		t.Errorf("Expected 'success', got %q", result)
	}
	if callCount != 1 {
		t.Errorf("Expected 1 call, got %d", callCount)
	}
}

func TestWithRetry_RetryableError(t *testing.T) {
	callCount := 0
	result, err := WithRetry(context.Background(), fastRetryConfig(), func() (string, error) {
		callCount++
		if callCount < 3 {
			return "", &ProviderError{Message: "rate limited", Retryable: true}
		}
		return "success", nil
	})

	if err != nil {
		t.Fatalf("Expected no error after retries, got: %v", err)
	}
	if result != "success" {
		t.Errorf("Expected 'success', got %q", result)
	}
	if callCount != 3 {
		t.Errorf("Expected 3 calls, got %d", callCount)
	}
}

func TestWithRetry_NonRetryableError(t *testing.T) {
	callCount := 0
	_, err := WithRetry(context.Background(), fastRetryConfig(), func() (string, error) {
		callCount++
		return "", &ProviderError{Message: "invalid API key", Retryable: false}
	})

	if err == nil {
		t.Fatal("Expected error for non-retryable error")
	}
	if callCount != 1 {
		t.Errorf("Expected 1 call for non-retryable error, got %d", callCount)
	}
}

func TestWithRetry_MaxRetriesExceeded(t *testing.T) {
	cfg := fastRetryConfig()
	cfg.MaxRetries = 2

	callCount := 0
	_, err := WithRetry(context.Background(), cfg, func() (string, error) {
		callCount++
		return "", &ProviderError{Message: "rate limited", Retryable: true}
	})

	if err == nil {
		t.Fatal("Expected error after max retries")
	}
	// Initial attempt + 2 retries
	if callCount != 3 {
		t.Errorf("Expected 3 calls (1 + 2 retries), got %d", callCount)
	}
}

func TestWithRetry_ContextCanceled(t *testing.T) {
	cfg := RetryConfig{
		MaxRetries: 3,
		BaseDelay:  1 * time.Second,
		MaxDelay:   10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())

	callCount := 0
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := WithRetry(ctx, cfg, func() (string, error) {
			callCount++
			return "", &ProviderError{Message: "rate limited", Retryable: true}
		})
		if err == nil {
			t.Error("Expected error after cancellation")
		}
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WithRetry did not return after cancellation")
	}
	if callCount != 1 {
		t.Errorf("Expected 1 call before cancellation, got %d", callCount)
	}
}

// flakyProvider fails a fixed number of times before succeeding.
type flakyProvider struct {
	failures  int
	callCount int
}

func (f *flakyProvider) Translate(ctx context.Context, text, target, source string) (string, error) {
	f.callCount++
	if f.callCount <= f.failures {
		return "", &ProviderError{Message: "temporarily unavailable", Retryable: true}
	}
	return "ok: " + text, nil
}

func (f *flakyProvider) TranslateBatch(ctx context.Context, texts []string, target, source string) ([]string, error) {
	f.callCount++
	if f.callCount <= f.failures {
		return nil, &ProviderError{Message: "temporarily unavailable", Retryable: true}
	}
	out := make([]string, len(texts))
	for i, text := range texts {
		out[i] = "ok: " + text
	}
	return out, nil
}

func (f *flakyProvider) DetectLanguage(ctx context.Context, text string) (string, error) {
	f.callCount++
	if f.callCount <= f.failures {
		return "", &ProviderError{Message: "temporarily unavailable", Retryable: true}
	}
	return "tl", nil
}

func TestRetryableProvider_RecoversFromTransientFailure(t *testing.T) {
	flaky := &flakyProvider{failures: 2}
	p := NewRetryableProvider(flaky, fastRetryConfig())

	result, err := p.Translate(context.Background(), "Save", "tl", "en")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if result != "ok: Save" {
		t.Errorf("Expected 'ok: Save', got %q", result)
	}
	if flaky.callCount != 3 {
		t.Errorf("Expected 3 attempts, got %d", flaky.callCount)
	}
}

func TestRetryableProvider_Batch(t *testing.T) {
	flaky := &flakyProvider{failures: 1}
	p := NewRetryableProvider(flaky, fastRetryConfig())

	results, err := p.TranslateBatch(context.Background(), []string{"a", "b"}, "ceb", "en")
	if err != nil {
		t.Fatalf("TranslateBatch failed: %v", err)
	}
	if len(results) != 2 || results[0] != "ok: a" {
		t.Errorf("Unexpected results: %v", results)
	}
}
