package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/TanglawLabs/salin"
)

// OpenAIProvider implements Provider using OpenAI's API. It is the fallback
// backend for dialects the primary provider handles poorly; a language model
// with an explicit dialect prompt often does better on Maranao or Tausug
// than a dedicated translation model.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key, required
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.3)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAIProvider creates a new OpenAI provider. A missing API key is a
// configuration error.
func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, &salin.ConfigError{Message: "openai API key is required"}
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}, nil
}

// Translate translates a single text.
func (p *OpenAIProvider) Translate(ctx context.Context, text, target, source string) (string, error) {
	results, err := p.TranslateBatch(ctx, []string{text}, target, source)
	if err != nil {
		return "", err
	}
	return results[0], nil
}

// TranslateBatch translates texts in a single chat completion.
func (p *OpenAIProvider) TranslateBatch(ctx context.Context, texts []string, target, source string) ([]string, error) {
	if len(texts) == 0 {
		return []string{}, nil
	}

	userMessage, _ := json.Marshal(texts)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.buildSystemPrompt(target, source)},
			{Role: openai.ChatMessageRoleUser, Content: string(userMessage)},
		},
		Temperature: p.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, &salin.ProviderError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return nil, &salin.ProviderError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	return parseResponse(resp.Choices[0].Message.Content, len(texts))
}

// DetectLanguage asks the model to classify the language of text.
func (p *OpenAIProvider) DetectLanguage(ctx context.Context, text string) (string, error) {
	prompt := fmt.Sprintf(`Identify the language of the user's text. Answer with a JSON object
{"language": "<code>"} where <code> is one of: %s. Use "en" if unsure.`,
		strings.Join(dialectCodes(), ", "))

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", &salin.ProviderError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return "", &salin.ProviderError{Message: "no response from OpenAI", Retryable: true}
	}

	var parsed struct {
		Language string `json:"language"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil || parsed.Language == "" {
		return "", &salin.ProviderError{Message: "invalid detection response from OpenAI", Cause: err}
	}
	return parsed.Language, nil
}

func (p *OpenAIProvider) buildSystemPrompt(target, source string) string {
	targetName := dialectName(target)
	sourceName := dialectName(source)

	return fmt.Sprintf(`# Role
You are an expert native translator for Philippine languages. You translate %s content into natural, fluent %s.

# Task
Translate the provided texts into %s as used in everyday municipal government communication: clear, respectful, and plain.

# Rules
- Do NOT translate placeholders such as :name or :count; copy them exactly.
- Do NOT translate proper nouns, ID numbers, or abbreviations like PWD.
- Preserve meaningful whitespace and punctuation.

# Format
Return a valid JSON object with a single key "translations" containing an array of strings in the exact same order as the input.
Example: { "translations": ["translated string 1", "translated string 2"] }`,
		sourceName, targetName, targetName)
}

// dialectName resolves a provider code to a prompt-friendly name.
func dialectName(code string) string {
	if name, ok := salin.ProviderLanguages[code]; ok {
		return name
	}
	return "English"
}

// dialectCodes lists the provider codes for the detection prompt.
func dialectCodes() []string {
	codes := make([]string, 0, len(salin.ProviderLanguages))
	for code := range salin.ProviderLanguages {
		codes = append(codes, code)
	}
	return codes
}

// parseResponse extracts the translations array from a model response.
func parseResponse(content string, expectedCount int) ([]string, error) {
	// Try parsing as object first
	var objResult map[string]interface{}
	if err := json.Unmarshal([]byte(content), &objResult); err == nil {
		if translations, ok := objResult["translations"]; ok {
			if arr, ok := translations.([]interface{}); ok {
				return toStringSlice(arr, expectedCount)
			}
		}

		// Fallback: find first array value
		for _, v := range objResult {
			if arr, ok := v.([]interface{}); ok {
				return toStringSlice(arr, expectedCount)
			}
		}
	}

	// Try parsing as direct array
	var arrResult []interface{}
	if err := json.Unmarshal([]byte(content), &arrResult); err == nil {
		return toStringSlice(arrResult, expectedCount)
	}

	return nil, &salin.ProviderError{
		Message:   "invalid response format from OpenAI",
		Retryable: false,
	}
}

func toStringSlice(arr []interface{}, expectedCount int) ([]string, error) {
	result := make([]string, len(arr))
	for i, v := range arr {
		if s, ok := v.(string); ok {
			result[i] = s
		} else {
			result[i] = fmt.Sprintf("%v", v)
		}
	}

	if len(result) != expectedCount {
		return nil, &salin.CountMismatchError{
			Expected: expectedCount,
			Got:      len(result),
		}
	}

	return result, nil
}

// isRetryableError checks for common retryable conditions by message.
func isRetryableError(err error) bool {
	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAIProvider implements Provider
var _ Provider = (*OpenAIProvider)(nil)
