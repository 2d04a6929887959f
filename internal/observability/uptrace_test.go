package observability

import (
	"testing"

	"github.com/riskibarqy/fantasy-cricket/internal/config"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

func TestInit_DisabledComponentsReturnNoopShutdown(t *testing.T) {
	cfg := config.Config{
		ServiceName:    "fantasy-cricket-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
		UptraceEnabled: true,
	}

	for name, start := range map[string]func(config.Config, *logging.Logger) (Shutdown, error){
		"uptrace":   InitUptrace,
		"pyroscope": InitPyroscope,
	} {
		shutdown, err := start(cfg, logging.NewNop())
		if err != nil {
			t.Fatalf("init %s: %v", name, err)
		}
		if err := shutdown(t.Context()); err != nil {
			t.Fatalf("shutdown %s: %v", name, err)
		}
	}
}

func TestProfilerConfig_PrefersTokenAuth(t *testing.T) {
	cfg := config.Config{
		AppEnv:                     config.EnvProd,
		ServiceName:                "fantasy-cricket-api",
		ServiceVersion:             "1.4.0",
		PyroscopeAppName:           "fantasy-cricket-api",
		PyroscopeServerAddress:     "http://pyroscope:4040",
		PyroscopeAuthToken:         "token",
		PyroscopeBasicAuthUser:     "user",
		PyroscopeBasicAuthPassword: "pass",
	}

	got := profilerConfig(cfg)
	if got.AuthToken != "token" || got.BasicAuthUser != "" || got.BasicAuthPassword != "" {
		t.Fatalf("expected token auth only, got %+v", got)
	}
	if got.Tags["env"] != config.EnvProd || got.Tags["version"] != "1.4.0" {
		t.Fatalf("unexpected tags: %v", got.Tags)
	}

	cfg.PyroscopeAuthToken = ""
	got = profilerConfig(cfg)
	if got.BasicAuthUser != "user" || got.BasicAuthPassword != "pass" {
		t.Fatalf("expected basic auth, got %+v", got)
	}
}
