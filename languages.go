package salin

import "strings"

// DefaultLanguage is the base locale. UI copy is authored in English and a
// translation key doubles as its own English source text.
const DefaultLanguage = "en"

// SupportedLanguages maps the UI locales a user can pick to display names.
// Deliberately smaller than the dialect list the provider endpoints accept.
var SupportedLanguages = map[string]string{
	"en":  "English",
	"tl":  "Filipino (Tagalog)",
	"bis": "Bisaya (Cebuano)",
}

// RequestLanguages is the broader set accepted from Accept-Language headers
// for unauthenticated traffic.
var RequestLanguages = map[string]bool{
	"en":  true,
	"tl":  true,
	"bis": true,
	"ceb": true,
	"hil": true,
	"ilo": true,
}

// ProviderLanguages maps every dialect code the translation endpoints accept
// to a display name.
var ProviderLanguages = map[string]string{
	"en":  "English",
	"tl":  "Filipino (Tagalog)",
	"ceb": "Cebuano",
	"hil": "Hiligaynon",
	"ilo": "Ilocano",
	"war": "Waray",
	"pam": "Kapampangan",
	"bik": "Bikol",
	"pag": "Pangasinan",
	"mrw": "Maranao",
	"tsg": "Tausug",
	"mbb": "Manobo",
}

// providerCodes maps internal locale codes to the codes the external
// provider understands. The registry's "bis" locale is served by the
// provider's Cebuano model.
var providerCodes = map[string]string{
	"en":  "en",
	"tl":  "tl",
	"bis": "ceb",
}

// internalCodes is the inverse of providerCodes.
var internalCodes = map[string]string{
	"en":  "en",
	"tl":  "tl",
	"ceb": "bis",
}

// ToProviderCode maps an internal locale to the provider's code. Extended
// dialect codes pass through unchanged; anything unknown falls back to the
// default language.
func ToProviderCode(locale string) string {
	if code, ok := providerCodes[locale]; ok {
		return code
	}
	if _, ok := ProviderLanguages[locale]; ok {
		return locale
	}
	return DefaultLanguage
}

// FromProviderCode maps a provider language code back to the internal
// locale. Known pairs round-trip exactly; unknown codes fall back to the
// default language.
func FromProviderCode(code string) string {
	if locale, ok := internalCodes[code]; ok {
		return locale
	}
	if _, ok := ProviderLanguages[code]; ok {
		return code
	}
	return DefaultLanguage
}

// IsSupportedLanguage reports whether code is one of the UI locales.
func IsSupportedLanguage(code string) bool {
	_, ok := SupportedLanguages[code]
	return ok
}

// IsProviderLanguage reports whether code can be sent to the translation
// endpoints, either directly or via the internal mapping.
func IsProviderLanguage(code string) bool {
	if _, ok := ProviderLanguages[code]; ok {
		return true
	}
	_, ok := providerCodes[code]
	return ok
}

// GetLanguageName returns the display name for a UI locale.
// Falls back to the code itself if not found.
func GetLanguageName(code string) string {
	if name, ok := SupportedLanguages[code]; ok {
		return name
	}
	return code
}

// GetDialectName returns the display name for a provider dialect code,
// resolving internal aliases first. Falls back to the code itself.
func GetDialectName(code string) string {
	if name, ok := ProviderLanguages[ToProviderCode(code)]; ok {
		return name
	}
	return code
}

// NormalizeRequestLocale derives a locale from an Accept-Language style
// header value: the value is truncated to its first two characters and
// validated against RequestLanguages. Anything else, including an empty
// header, resolves to the default language.
func NormalizeRequestLocale(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	if len(h) > 2 {
		h = h[:2]
	}
	if RequestLanguages[h] {
		return h
	}
	return DefaultLanguage
}

// normalizeUILocale coerces anything outside the supported UI set to the
// default language.
func normalizeUILocale(locale string) string {
	if IsSupportedLanguage(locale) {
		return locale
	}
	return DefaultLanguage
}
