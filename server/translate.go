package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TanglawLabs/salin"
)

type translateRequest struct {
	Text           string `json:"text" binding:"required"`
	TargetLanguage string `json:"target_language" binding:"required"`
	SourceLanguage string `json:"source_language"`
}

type translateBatchRequest struct {
	Texts          []string `json:"texts" binding:"required"`
	TargetLanguage string   `json:"target_language" binding:"required"`
	SourceLanguage string   `json:"source_language"`
}

type detectRequest struct {
	Text string `json:"text" binding:"required"`
}

type translateSectionRequest struct {
	Section        string `json:"section" binding:"required"`
	TargetLanguage string `json:"target_language" binding:"required"`
}

type translateHTMLRequest struct {
	Content        string `json:"content" binding:"required"`
	TargetLanguage string `json:"target_language" binding:"required"`
	SourceLanguage string `json:"source_language"`
}

// validateDialects rejects locale codes outside the accepted dialect set.
// source may be empty, which defaults to English. Returns the resolved
// source code and whether validation passed (the 422 is already written on
// failure).
func validateDialects(c *gin.Context, target, source string) (string, bool) {
	if !salin.IsProviderLanguage(target) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"errors":  gin.H{"target_language": "The selected target language is invalid."},
		})
		return "", false
	}
	if source == "" {
		source = salin.DefaultLanguage
	}
	if !salin.IsProviderLanguage(source) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"errors":  gin.H{"source_language": "The selected source language is invalid."},
		})
		return "", false
	}
	return source, true
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"success": false,
		"errors":  gin.H{"request": err.Error()},
	})
}

// translate converts a single text between two dialects.
func (h *handlers) translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	source, ok := validateDialects(c, req.TargetLanguage, req.SourceLanguage)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"translated_text": h.svc.Translate(c.Request.Context(), req.Text, req.TargetLanguage, source),
		"target_language": req.TargetLanguage,
		"source_language": source,
	})
}

// translateBatch converts a slice of texts in one provider round-trip,
// preserving order.
func (h *handlers) translateBatch(c *gin.Context) {
	var req translateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	source, ok := validateDialects(c, req.TargetLanguage, req.SourceLanguage)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"translated_texts": h.svc.TranslateBatch(c.Request.Context(), req.Texts, req.TargetLanguage, source),
		"target_language":  req.TargetLanguage,
		"source_language":  source,
	})
}

// detect identifies the language of a text.
func (h *handlers) detect(c *gin.Context) {
	var req detectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	code := h.svc.Detect(c.Request.Context(), req.Text)
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"language":      code,
		"language_name": salin.GetDialectName(code),
	})
}

// translateSection converts a named UI section into any accepted dialect.
func (h *handlers) translateSection(c *gin.Context) {
	var req translateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if _, ok := validateDialects(c, req.TargetLanguage, ""); !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"section":         req.Section,
		"target_language": req.TargetLanguage,
		"translations":    h.svc.TranslateSection(c.Request.Context(), req.Section, req.TargetLanguage),
	})
}

// translateHTML converts announcement HTML, translating text nodes while
// leaving markup intact.
func (h *handlers) translateHTML(c *gin.Context) {
	var req translateHTMLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	source, ok := validateDialects(c, req.TargetLanguage, req.SourceLanguage)
	if !ok {
		return
	}

	result, err := h.svc.TranslateHTML(c.Request.Context(), req.Content, req.TargetLanguage, source)
	if err != nil {
		var procErr *salin.ProcessorError
		if errors.As(err, &procErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success": false,
				"errors":  gin.H{"content": procErr.Error()},
			})
			return
		}
		h.log.Error().Err(err).Msg("html translation failed")
		c.JSON(http.StatusOK, gin.H{
			"success":          true,
			"content":          req.Content,
			"translated_count": 0,
			"cached_count":     0,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"content":          result.Content,
		"translated_count": result.TranslatedCount,
		"cached_count":     result.CachedCount,
	})
}
