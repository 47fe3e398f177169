package salin

import "context"

// Provider is the external translation capability. Implementations speak the
// provider's own language codes; callers map internal locales with
// ToProviderCode first.
type Provider interface {
	// Translate translates a single text.
	Translate(ctx context.Context, text, target, source string) (string, error)

	// TranslateBatch translates texts, returning results in the same order
	// and of the same length.
	TranslateBatch(ctx context.Context, texts []string, target, source string) ([]string, error)

	// DetectLanguage returns the provider's code for the language of text.
	DetectLanguage(ctx context.Context, text string) (string, error)
}

// TranslationCache is the interface for translation caching.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// ContentProcessor is the interface for rich content processing, used for
// translating announcement HTML.
type ContentProcessor interface {
	Extract(content string) (interface{}, []TextNode, error)
	Apply(parsed interface{}, nodes []TextNode, translations map[string]string) (string, error)
	ContentType() string
}

// TextNode represents a translatable unit extracted from rich content.
type TextNode struct {
	ID       string            // Unique identifier within the document
	Text     string            // Original text content (trimmed)
	Hash     string            // SHA-256 hash of Text
	Metadata map[string]string // Additional info (parent tag, etc.)
}

// ProcessedContent is the result of a rich content translation.
type ProcessedContent struct {
	Content         string // Translated content
	TranslatedCount int    // Number of newly translated items
	CachedCount     int    // Number of cache hits
	TotalNodes      int    // Total translatable nodes found
}
