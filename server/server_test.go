package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/TanglawLabs/salin"
	"github.com/TanglawLabs/salin/pref"
	"github.com/TanglawLabs/salin/provider"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router   *gin.Engine
	provider *provider.MockProvider
	prefs    *pref.MemoryStore
}

func newTestEnv() *testEnv {
	p := provider.NewMockProvider()
	svc := salin.NewService(p)
	prefs := pref.NewMemoryStore()
	return &testEnv{
		router:   New(svc, prefs, zerolog.Nop()),
		provider: p,
		prefs:    prefs,
	}
}

func (e *testEnv) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	return body
}

func TestHealth(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body["status"])
	}
}

func TestChangeLanguage(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodPost, "/api/language/change", `{"locale":"tl"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["success"] != true {
		t.Error("Expected success true")
	}
	if body["locale"] != "tl" {
		t.Errorf("Expected locale 'tl', got %v", body["locale"])
	}
	if body["language_name"] != "Filipino (Tagalog)" {
		t.Errorf("Unexpected language_name: %v", body["language_name"])
	}
	// Anonymous request: nothing to persist
	if body["user_preference_saved"] != false {
		t.Error("Expected user_preference_saved false for anonymous request")
	}

	translations, ok := body["translations"].(map[string]any)
	if !ok {
		t.Fatal("Expected a translations object")
	}
	if len(translations) != len(salin.SectionNames()) {
		t.Errorf("Expected %d sections, got %d", len(salin.SectionNames()), len(translations))
	}

	cookies := w.Result().Cookies()
	found := false
	for _, c := range cookies {
		if c.Name == "salin_locale" && c.Value == "tl" {
			found = true
		}
	}
	if !found {
		t.Error("Expected the locale cookie to be set")
	}
}

func TestChangeLanguage_InvalidLocale(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodPost, "/api/language/change", `{"locale":"fr"}`, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422, got %d", w.Code)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("Invalid locale must not set a cookie")
	}
	if env.provider.CallCount != 0 {
		t.Errorf("Invalid locale must not reach the provider, called %d times", env.provider.CallCount)
	}
}

func TestChangeLanguage_ExtendedCodeRejected(t *testing.T) {
	env := newTestEnv()

	// "ceb" is a valid dialect for the pass-through API but not a UI locale
	w := env.do(http.MethodPost, "/api/language/change", `{"locale":"ceb"}`, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422, got %d", w.Code)
	}
}

func TestChangeLanguage_MissingBody(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodPost, "/api/language/change", `{}`, nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422, got %d", w.Code)
	}
}

func TestChangeLanguage_PersistsPreference(t *testing.T) {
	env := newTestEnv()

	headers := map[string]string{
		"X-User-Id":   "42",
		"X-User-Role": pref.RolePWDMember,
	}
	w := env.do(http.MethodPost, "/api/language/change", `{"locale":"bis"}`, headers)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	if body["user_preference_saved"] != true {
		t.Error("Expected user_preference_saved true for authenticated request")
	}

	stored, err := env.prefs.Get(context.Background(), pref.Identity{Role: pref.RolePWDMember, ID: "42"})
	if err != nil {
		t.Fatalf("Preference read failed: %v", err)
	}
	if stored != "bis" {
		t.Errorf("Expected stored preference 'bis', got %q", stored)
	}
}

func TestCurrentLanguage_HeaderFallback(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodGet, "/api/language/current", "", map[string]string{
		"Accept-Language": "tl-PH,tl;q=0.9",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	if body["locale"] != "tl" {
		t.Errorf("Expected locale 'tl' from header, got %v", body["locale"])
	}
	if body["user_preferred_language"] != nil {
		t.Errorf("Expected nil preference, got %v", body["user_preferred_language"])
	}
	if _, ok := body["supported_languages"].(map[string]any); !ok {
		t.Error("Expected a supported_languages object")
	}
}

func TestCurrentLanguage_DefaultsToEnglish(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodGet, "/api/language/current", "", nil)
	body := decodeBody(t, w)
	if body["locale"] != "en" {
		t.Errorf("Expected default 'en', got %v", body["locale"])
	}
}

func TestCurrentLanguage_CookieBeatsHeader(t *testing.T) {
	env := newTestEnv()

	req := httptest.NewRequest(http.MethodGet, "/api/language/current", nil)
	req.Header.Set("Accept-Language", "en-US")
	req.AddCookie(&http.Cookie{Name: "salin_locale", Value: "bis"})
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	body := decodeBody(t, w)
	if body["locale"] != "bis" {
		t.Errorf("Expected cookie locale 'bis', got %v", body["locale"])
	}
}

func TestCurrentLanguage_PreferenceWins(t *testing.T) {
	env := newTestEnv()
	id := pref.Identity{Role: pref.RoleAdmin, ID: "1"}
	env.prefs.Set(context.Background(), id, "tl")

	req := httptest.NewRequest(http.MethodGet, "/api/language/current", nil)
	req.Header.Set("Accept-Language", "en-US")
	req.Header.Set("X-User-Id", "1")
	req.Header.Set("X-User-Role", pref.RoleAdmin)
	req.AddCookie(&http.Cookie{Name: "salin_locale", Value: "bis"})
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	body := decodeBody(t, w)
	if body["locale"] != "tl" {
		t.Errorf("Saved preference should win, got %v", body["locale"])
	}
	if body["user_preferred_language"] != "tl" {
		t.Errorf("Expected user_preferred_language 'tl', got %v", body["user_preferred_language"])
	}
}

func TestSupportedLanguages(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodGet, "/api/language/supported", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	langs, ok := body["supported_languages"].(map[string]any)
	if !ok {
		t.Fatal("Expected a supported_languages object")
	}
	if len(langs) != 3 {
		t.Errorf("Expected 3 locales, got %d", len(langs))
	}
	if langs["bis"] != "Bisaya (Cebuano)" {
		t.Errorf("Unexpected display name for bis: %v", langs["bis"])
	}
}
