package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/TanglawLabs/salin"
	"github.com/TanglawLabs/salin/pref"
)

const (
	localeKey   = "salin.locale"
	identityKey = "salin.identity"

	// localeCookie carries the visitor's chosen locale between requests.
	localeCookie = "salin_locale"

	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

// LocaleResolver derives the request locale from the Accept-Language header
// and stores it in the gin context. Handlers that honor cookies or saved
// preferences layer those on top of this baseline.
func LocaleResolver() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(localeKey, salin.NormalizeRequestLocale(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// IdentityFromHeaders reads the authenticated account placed in the
// X-User-Id and X-User-Role headers by the gateway. Requests without both
// headers proceed as anonymous.
func IdentityFromHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := pref.Identity{
			Role: c.GetHeader(headerUserRole),
			ID:   c.GetHeader(headerUserID),
		}
		if id.Valid() {
			c.Set(identityKey, id)
		}
		c.Next()
	}
}

// RequestLogger emits one structured line per request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

// requestLocale returns the header-derived locale for the request.
func requestLocale(c *gin.Context) string {
	if v, ok := c.Get(localeKey); ok {
		if locale, ok := v.(string); ok {
			return locale
		}
	}
	return salin.DefaultLanguage
}

// requestIdentity returns the authenticated account, if any.
func requestIdentity(c *gin.Context) (pref.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return pref.Identity{}, false
	}
	id, ok := v.(pref.Identity)
	return id, ok
}
