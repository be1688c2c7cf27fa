package deepl

import (
	"os"
	"testing"
	"time"
)

// unsetenv removes key for the duration of the test. t.Setenv alone is
// not enough: envconfig only falls back to defaults when a variable is
// absent, and an empty value fails to parse for non-string fields.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "") // registers the restore
	_ = os.Unsetenv(key)
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("DEEPL_API_KEY", "env-key")
	unsetenv(t, "DEEPL_FREE_TIER")
	unsetenv(t, "DEEPL_HTTP_TIMEOUT")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Fatalf("APIKey = %q, want env-key", cfg.APIKey)
	}
	if cfg.FreeTier {
		t.Fatal("FreeTier must default to false")
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("HTTPTimeout = %v, want 30s", cfg.HTTPTimeout)
	}
}

func TestNewFromEnv_FreeTier(t *testing.T) {
	t.Setenv("DEEPL_API_KEY", "env-key")
	t.Setenv("DEEPL_FREE_TIER", "true")
	t.Setenv("DEEPL_HTTP_TIMEOUT", "10s")

	c, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if c.baseURL != freeBaseURL {
		t.Fatalf("baseURL = %q, want free-tier host", c.baseURL)
	}
	if c.http.Timeout != 10*time.Second {
		t.Fatalf("timeout = %v, want 10s", c.http.Timeout)
	}
}

func TestNewFromEnv_MissingKey(t *testing.T) {
	unsetenv(t, "DEEPL_API_KEY")
	unsetenv(t, "DEEPL_FREE_TIER")
	unsetenv(t, "DEEPL_HTTP_TIMEOUT")
	if _, err := NewFromEnv(); err == nil {
		t.Fatal("expected error when DEEPL_API_KEY is not set")
	}
}
