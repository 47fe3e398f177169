package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TanglawLabs/salin"
)

// cookieMaxAge keeps the locale cookie for a year.
const cookieMaxAge = 365 * 24 * 60 * 60

type changeLanguageRequest struct {
	Locale string `json:"locale" binding:"required"`
}

// changeLanguage switches the caller's interface language. The new locale is
// written to the locale cookie and, for authenticated users, to the
// preference store. An invalid locale is rejected before any side effect.
func (h *handlers) changeLanguage(c *gin.Context) {
	var req changeLanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"errors":  gin.H{"locale": "The locale field is required."},
		})
		return
	}

	if !salin.IsSupportedLanguage(req.Locale) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"errors":  gin.H{"locale": "The selected locale is invalid."},
		})
		return
	}

	c.SetCookie(localeCookie, req.Locale, cookieMaxAge, "/", "", false, true)

	saved := false
	if id, ok := requestIdentity(c); ok && h.prefs != nil {
		if err := h.prefs.Set(c.Request.Context(), id, req.Locale); err != nil {
			// The cookie still carries the choice for this browser, so the
			// change itself succeeds.
			h.log.Error().Err(err).Str("role", id.Role).Str("id", id.ID).Msg("failed to persist language preference")
		} else {
			saved = true
		}
	}

	ctx := c.Request.Context()
	c.JSON(http.StatusOK, gin.H{
		"success":               true,
		"message":               h.svc.Get(ctx, "Language changed successfully", nil, req.Locale),
		"locale":                req.Locale,
		"language_name":         h.svc.LanguageName(req.Locale),
		"user_preference_saved": saved,
		"translations":          h.svc.Bundle(ctx, req.Locale),
	})
}

// currentLanguage reports the locale in effect for this request. A saved
// preference wins over the locale cookie, which wins over Accept-Language.
func (h *handlers) currentLanguage(c *gin.Context) {
	locale := requestLocale(c)
	if cookie, err := c.Cookie(localeCookie); err == nil && salin.IsSupportedLanguage(cookie) {
		locale = cookie
	}

	var preferred any
	if id, ok := requestIdentity(c); ok && h.prefs != nil {
		stored, err := h.prefs.Get(c.Request.Context(), id)
		if err != nil {
			h.log.Error().Err(err).Str("role", id.Role).Str("id", id.ID).Msg("failed to read language preference")
		} else if salin.IsSupportedLanguage(stored) {
			preferred = stored
			locale = stored
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":                 true,
		"locale":                  locale,
		"user_preferred_language": preferred,
		"language_name":           h.svc.LanguageName(locale),
		"supported_languages":     h.svc.SupportedLanguages(),
		"translations":            h.svc.Bundle(c.Request.Context(), locale),
	})
}

// supportedLanguages lists the locales a user can pick in the UI.
func (h *handlers) supportedLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"supported_languages": h.svc.SupportedLanguages(),
	})
}
