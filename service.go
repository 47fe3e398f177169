package salin

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

// Service orchestrates cache lookups and provider calls for the registry's
// UI copy. Provider failures never escape it: every operation degrades to
// the untranslated English input and the failure is logged.
type Service struct {
	provider   Provider
	cache      TranslationCache
	processors map[string]ContentProcessor
	log        zerolog.Logger
}

// ServiceOption is a functional option for configuring the Service.
type ServiceOption func(*Service)

// WithCache sets the translation cache.
func WithCache(cache TranslationCache) ServiceOption {
	return func(s *Service) {
		s.cache = cache
	}
}

// WithLogger sets the logger used to report absorbed provider failures.
func WithLogger(log zerolog.Logger) ServiceOption {
	return func(s *Service) {
		s.log = log
	}
}

// WithProcessor registers a content processor.
func WithProcessor(processor ContentProcessor) ServiceOption {
	return func(s *Service) {
		s.processors[processor.ContentType()] = processor
	}
}

// NewService creates a Service backed by the given provider.
func NewService(provider Provider, opts ...ServiceOption) *Service {
	s := &Service{
		provider:   provider,
		processors: make(map[string]ContentProcessor),
		log:        zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Get returns key translated into locale. The key doubles as the English
// source text, so the default language returns it verbatim. Placeholder
// substitution (":name" style tokens) happens after translation, on every
// call, so a cached template can be reused with different replacements
// without another provider round-trip.
func (s *Service) Get(ctx context.Context, key string, replacements map[string]string, locale string) string {
	locale = normalizeUILocale(locale)
	if locale == DefaultLanguage {
		return replacePlaceholders(key, replacements)
	}

	cacheKey := CacheKey(HashText(key), locale)
	if s.cache != nil {
		if cached, ok := s.cache.Get(cacheKey); ok {
			return replacePlaceholders(cached, replacements)
		}
	}

	translated, err := s.provider.Translate(ctx, key, ToProviderCode(locale), ToProviderCode(DefaultLanguage))
	if err != nil {
		s.log.Error().Err(err).Str("locale", locale).Msg("translation failed, serving source text")
		return replacePlaceholders(key, replacements)
	}

	if s.cache != nil {
		if err := s.cache.Set(cacheKey, translated); err != nil {
			s.log.Warn().Err(err).Str("locale", locale).Msg("failed to cache translation")
		}
	}

	return replacePlaceholders(translated, replacements)
}

// GetSection returns the named UI section translated into locale. The
// default language returns an empty tree: the frontend falls back to its
// hardcoded English strings. Unknown section names also resolve to an empty
// tree rather than an error.
func (s *Service) GetSection(ctx context.Context, section, locale string) Tree {
	locale = normalizeUILocale(locale)
	if locale == DefaultLanguage {
		return Tree{}
	}
	return s.sectionFor(ctx, section, locale)
}

// TranslateSection translates a named section into any accepted dialect, for
// the pass-through API. Unlike GetSection, asking for the default language
// returns the English base copy itself.
func (s *Service) TranslateSection(ctx context.Context, section, target string) Tree {
	if ToProviderCode(target) == DefaultLanguage {
		base, ok := BaseSection(section)
		if !ok {
			return Tree{}
		}
		return base
	}
	return s.sectionFor(ctx, section, target)
}

// sectionFor translates the base copy of section into target, consulting the
// cache first. The whole tree is cached as one JSON document so a section is
// at most one provider call per TTL window.
func (s *Service) sectionFor(ctx context.Context, section, target string) Tree {
	base, ok := BaseSection(section)
	if !ok {
		return Tree{}
	}

	cacheKey := SectionCacheKey(section, target)
	if s.cache != nil {
		if cached, ok := s.cache.Get(cacheKey); ok {
			var tree Tree
			if err := json.Unmarshal([]byte(cached), &tree); err == nil {
				return tree
			}
			s.log.Warn().Str("section", section).Str("target", target).Msg("discarding unreadable cached section")
		}
	}

	leaves := base.Leaves()
	results, err := s.provider.TranslateBatch(ctx, leaves, ToProviderCode(target), ToProviderCode(DefaultLanguage))
	if err != nil || len(results) != len(leaves) {
		if err == nil {
			err = &CountMismatchError{Expected: len(leaves), Got: len(results)}
		}
		s.log.Error().Err(err).Str("section", section).Str("target", target).Msg("section translation failed, serving source copy")
		return base
	}

	i := 0
	translated := base.Map(func(string) string {
		v := results[i]
		i++
		return v
	})

	if s.cache != nil {
		if data, err := json.Marshal(translated); err == nil {
			if err := s.cache.Set(cacheKey, string(data)); err != nil {
				s.log.Warn().Err(err).Str("section", section).Msg("failed to cache section")
			}
		}
	}

	return translated
}

// Bundle returns every UI section translated into locale, keyed by section
// name. This is the `translations` object of the language API contract.
func (s *Service) Bundle(ctx context.Context, locale string) map[string]Tree {
	out := make(map[string]Tree, len(sectionNames))
	for _, name := range sectionNames {
		out[name] = s.GetSection(ctx, name, locale)
	}
	return out
}

// SupportedLanguages returns the UI locale table.
func (s *Service) SupportedLanguages() map[string]string {
	out := make(map[string]string, len(SupportedLanguages))
	for code, name := range SupportedLanguages {
		out[code] = name
	}
	return out
}

// LanguageName returns the display name for a UI locale, falling back to the
// code itself.
func (s *Service) LanguageName(code string) string {
	return GetLanguageName(code)
}

// Translate translates text between two dialects for the pass-through API.
// Provider failures degrade to the original text.
func (s *Service) Translate(ctx context.Context, text, target, source string) string {
	out, err := s.provider.Translate(ctx, text, ToProviderCode(target), ToProviderCode(source))
	if err != nil {
		s.log.Error().Err(err).Str("target", target).Msg("translation failed, serving source text")
		return text
	}
	return out
}

// TranslateBatch translates texts between two dialects, preserving order and
// length. Provider failures degrade to the original texts.
func (s *Service) TranslateBatch(ctx context.Context, texts []string, target, source string) []string {
	out, err := s.provider.TranslateBatch(ctx, texts, ToProviderCode(target), ToProviderCode(source))
	if err != nil || len(out) != len(texts) {
		if err == nil {
			err = &CountMismatchError{Expected: len(texts), Got: len(out)}
		}
		s.log.Error().Err(err).Str("target", target).Msg("batch translation failed, serving source texts")
		result := make([]string, len(texts))
		copy(result, texts)
		return result
	}
	return out
}

// Detect returns the internal locale code for the language of text.
// Provider failures degrade to the default language.
func (s *Service) Detect(ctx context.Context, text string) string {
	code, err := s.provider.DetectLanguage(ctx, text)
	if err != nil {
		s.log.Error().Err(err).Msg("language detection failed, assuming default")
		return DefaultLanguage
	}
	return FromProviderCode(code)
}

// TranslateHTML translates announcement-style HTML content into target,
// reusing cached node translations and batching the rest into a single
// provider call. Per-node results are cached under their text hash so edits
// to an announcement only re-translate the changed fragments.
func (s *Service) TranslateHTML(ctx context.Context, content, target, source string) (*ProcessedContent, error) {
	targetCode := ToProviderCode(target)
	if targetCode == ToProviderCode(source) {
		return &ProcessedContent{Content: content}, nil
	}

	processor, ok := s.processors["html"]
	if !ok {
		return nil, &ProcessorError{
			Message:     "no processor registered for content type",
			ContentType: "html",
		}
	}

	parsed, nodes, err := processor.Extract(content)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return &ProcessedContent{Content: content}, nil
	}

	translations, misses := ParallelCacheLookup(s.cache, nodes, targetCode)
	cachedCount := len(translations)

	translatedCount := 0
	if len(misses) > 0 {
		texts := make([]string, len(misses))
		for i, node := range misses {
			texts[i] = node.Text
		}

		results, err := s.provider.TranslateBatch(ctx, texts, targetCode, ToProviderCode(source))
		if err != nil || len(results) != len(texts) {
			if err == nil {
				err = &CountMismatchError{Expected: len(texts), Got: len(results)}
			}
			// Untranslated nodes keep their original text in Apply.
			s.log.Error().Err(err).Str("target", target).Msg("html translation failed, serving source fragments")
		} else {
			for i, node := range misses {
				translations[node.Hash] = results[i]
				if s.cache != nil {
					_ = s.cache.Set(CacheKey(node.Hash, targetCode), results[i])
				}
				translatedCount++
			}
		}
	}

	result, err := processor.Apply(parsed, nodes, translations)
	if err != nil {
		return nil, err
	}

	return &ProcessedContent{
		Content:         setHTMLLang(result, targetCode),
		TranslatedCount: translatedCount,
		CachedCount:     cachedCount,
		TotalNodes:      len(nodes),
	}, nil
}

// setHTMLLang sets the lang attribute on the <html> tag, when one exists.
func setHTMLLang(content, lang string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return content
	}

	htmlTag := doc.Find("html")
	if htmlTag.Length() == 0 {
		return content
	}
	htmlTag.SetAttr("lang", lang)

	result, err := doc.Html()
	if err != nil {
		return content
	}
	return result
}

// replacePlaceholders substitutes ":name" style tokens after translation. If
// the provider mangled a token inside the translated text the substitution
// silently leaves it in place.
func replacePlaceholders(text string, replacements map[string]string) string {
	for name, value := range replacements {
		text = strings.ReplaceAll(text, ":"+name, value)
	}
	return text
}
