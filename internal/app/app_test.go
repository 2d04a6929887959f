package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/config"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

func offlineConfig() config.Config {
	return config.Config{
		AppEnv:                  config.EnvDev,
		ServiceName:             "fantasy-cricket-api",
		HTTPAddr:                ":0",
		ReadTimeout:             time.Second,
		WriteTimeout:            time.Second,
		CacheEnabled:            true,
		CacheTTL:                time.Minute,
		CORSAllowedOrigins:      []string{"*"},
		SessionSecret:           "test-secret",
		SessionCookieName:       "app_session_id",
		SessionTTL:              time.Hour,
		OAuthTimeout:            time.Second,
		OAuthCircuitFailures:    1,
		OAuthCircuitOpenTimeout: time.Second,
		OAuthCircuitHalfOpenReq: 1,
	}
}

func TestNew_WithoutStoreServesDegradedReads(t *testing.T) {
	a, err := New(t.Context(), offlineConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer a.Close()

	rec := httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rpc/matches.list", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Fatalf("expected empty match list, got %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	body := strings.NewReader(`{"name":"Asha","email":"asha@example.com","message":"hello"}`)
	a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rpc/contact.submit", body))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without store, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNew_RequiresAddrAndSecret(t *testing.T) {
	cfg := offlineConfig()
	cfg.HTTPAddr = ""
	if _, err := New(t.Context(), cfg, nil); err == nil {
		t.Fatalf("expected error for empty addr")
	}

	cfg = offlineConfig()
	cfg.SessionSecret = ""
	if _, err := New(t.Context(), cfg, nil); err == nil {
		t.Fatalf("expected error for empty session secret")
	}
}
