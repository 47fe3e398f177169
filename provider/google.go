package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/TanglawLabs/salin"
)

const defaultGoogleBaseURL = "https://translation.googleapis.com/language"

// GoogleProvider implements Provider using the Google Cloud Translation v2
// REST API.
type GoogleProvider struct {
	apiKey    string
	projectID string
	baseURL   string
	client    *http.Client
}

// GoogleConfig holds configuration for the Google provider.
type GoogleConfig struct {
	APIKey    string        // API key, required
	ProjectID string        // Google Cloud project id, sent as the quota project
	BaseURL   string        // Custom base URL (used by tests)
	Timeout   time.Duration // Per-request timeout (default: 10s)
}

// NewGoogleProvider creates a new Google Translation provider. A missing API
// key is a configuration error: the service must not start without it.
func NewGoogleProvider(cfg GoogleConfig) (*GoogleProvider, error) {
	if cfg.APIKey == "" {
		return nil, &salin.ConfigError{Message: "google translation API key is required"}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGoogleBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &GoogleProvider{
		apiKey:    cfg.APIKey,
		projectID: cfg.ProjectID,
		baseURL:   baseURL,
		client:    &http.Client{Timeout: timeout},
	}, nil
}

// translateResponse mirrors the v2 translate payload.
type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// detectResponse mirrors the v2 detect payload.
type detectResponse struct {
	Data struct {
		Detections [][]struct {
			Language string `json:"language"`
		} `json:"detections"`
	} `json:"data"`
}

// Translate translates a single text.
func (p *GoogleProvider) Translate(ctx context.Context, text, target, source string) (string, error) {
	results, err := p.TranslateBatch(ctx, []string{text}, target, source)
	if err != nil {
		return "", err
	}
	return results[0], nil
}

// TranslateBatch translates texts in a single API call, preserving order.
func (p *GoogleProvider) TranslateBatch(ctx context.Context, texts []string, target, source string) ([]string, error) {
	if len(texts) == 0 {
		return []string{}, nil
	}

	body := map[string]any{
		"q":      texts,
		"target": target,
		"format": "text",
	}
	if source != "" {
		body["source"] = source
	}

	var parsed translateResponse
	if err := p.post(ctx, "/translate/v2", body, &parsed); err != nil {
		return nil, err
	}

	if len(parsed.Data.Translations) != len(texts) {
		return nil, &salin.CountMismatchError{
			Expected: len(texts),
			Got:      len(parsed.Data.Translations),
		}
	}

	results := make([]string, len(texts))
	for i, t := range parsed.Data.Translations {
		results[i] = t.TranslatedText
	}
	return results, nil
}

// DetectLanguage returns the provider's language code for text.
func (p *GoogleProvider) DetectLanguage(ctx context.Context, text string) (string, error) {
	var parsed detectResponse
	if err := p.post(ctx, "/translate/v2/detect", map[string]any{"q": text}, &parsed); err != nil {
		return "", err
	}

	if len(parsed.Data.Detections) == 0 || len(parsed.Data.Detections[0]) == 0 {
		return "", &salin.ProviderError{
			Message:   "no detection in Google response",
			Retryable: false,
		}
	}
	return parsed.Data.Detections[0][0].Language, nil
}

// post sends a JSON request and decodes the response into out.
func (p *GoogleProvider) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &salin.ProviderError{Message: "failed to encode request", Cause: err}
	}

	url := fmt.Sprintf("%s%s?key=%s", p.baseURL, path, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return &salin.ProviderError{Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", salin.UserAgent())
	if p.projectID != "" {
		req.Header.Set("X-Goog-User-Project", p.projectID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		// Network faults and timeouts are worth retrying.
		return &salin.ProviderError{Message: "Google API call failed", Cause: err, Retryable: true}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &salin.ProviderError{
			Message:   fmt.Sprintf("Google API returned status %d: %s", resp.StatusCode, string(raw)),
			Retryable: isRetryableStatus(resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &salin.ProviderError{Message: "invalid response from Google API", Cause: err}
	}
	return nil
}

// isRetryableStatus reports whether an HTTP status is worth retrying.
func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// Verify GoogleProvider implements Provider
var _ Provider = (*GoogleProvider)(nil)
