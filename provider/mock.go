package provider

import (
	"context"
	"fmt"
)

// MockProvider is a mock translation backend for testing.
type MockProvider struct {
	Translations map[string]string // Map of source text to translation
	Detected     string            // Language code returned by DetectLanguage
	Err          error             // When set, every call fails with this error
	CallCount    int               // Number of provider invocations
	LastTarget   string            // Target code of the last call
	LastSource   string            // Source code of the last call
}

// NewMockProvider creates a new mock provider with default translations.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Translations: map[string]string{
			"Dashboard":    "Dashboard",
			"Save":         "I-save",
			"Hello :name":  "Kumusta :name",
			"Applications": "Mga Aplikasyon",
		},
		Detected: "tl",
	}
}

// Translate returns the mock translation, or the text in brackets when none
// is configured.
func (m *MockProvider) Translate(ctx context.Context, text, target, source string) (string, error) {
	m.CallCount++
	m.LastTarget = target
	m.LastSource = source
	if m.Err != nil {
		return "", m.Err
	}
	return m.lookup(text), nil
}

// TranslateBatch returns mock translations in input order.
func (m *MockProvider) TranslateBatch(ctx context.Context, texts []string, target, source string) ([]string, error) {
	m.CallCount++
	m.LastTarget = target
	m.LastSource = source
	if m.Err != nil {
		return nil, m.Err
	}
	results := make([]string, len(texts))
	for i, text := range texts {
		results[i] = m.lookup(text)
	}
	return results, nil
}

// DetectLanguage returns the configured detection result.
func (m *MockProvider) DetectLanguage(ctx context.Context, text string) (string, error) {
	m.CallCount++
	if m.Err != nil {
		return "", m.Err
	}
	return m.Detected, nil
}

func (m *MockProvider) lookup(text string) string {
	if translation, ok := m.Translations[text]; ok {
		return translation
	}
	// Bracketed text marks an unconfigured translation
	return fmt.Sprintf("[%s]", text)
}

// Reset clears the call count and recorded request codes.
func (m *MockProvider) Reset() {
	m.CallCount = 0
	m.LastTarget = ""
	m.LastSource = ""
}

// Verify MockProvider implements Provider
var _ Provider = (*MockProvider)(nil)
