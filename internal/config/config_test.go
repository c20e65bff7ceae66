package config

import (
	"flag"
	"os"
	"testing"
	"time"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// подавляем вывод парсера флагов в тестах
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("DATABASE_URI", "")
	t.Setenv("USER_DB_PATH", "")
	t.Setenv("API_BASE_URL", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("SETTLE_DELAY", "")
	t.Setenv("ENABLE_HTTPS", "")
	t.Setenv("PAGE_SIZE", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.AuthSecret != "dev-secret-key" {
		t.Fatalf("AuthSecret default expected 'dev-secret-key', got %q", cfg.AuthSecret)
	}
	if cfg.ListenAddr != "localhost:8080" {
		t.Fatalf("ListenAddr default expected 'localhost:8080', got %q", cfg.ListenAddr)
	}
	if cfg.APIBaseURL != "https://ib.jetafx.com/api/customer" {
		t.Fatalf("APIBaseURL default wrong: %q", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 15*time.Second {
		t.Fatalf("RequestTimeout default expected 15s, got %v", cfg.RequestTimeout)
	}
	if cfg.SettleDelay != 300*time.Millisecond {
		t.Fatalf("SettleDelay default expected 300ms, got %v", cfg.SettleDelay)
	}
	if cfg.PageSize != 10 {
		t.Fatalf("PageSize default expected 10, got %d", cfg.PageSize)
	}
	if cfg.UserDBPath == "" {
		t.Fatalf("UserDBPath default must be non-empty")
	}
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "example.com:443")
	t.Setenv("AUTH_SECRET", "top")
	t.Setenv("API_BASE_URL", "http://stub.local/api/customer")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("SETTLE_DELAY", "50ms")
	t.Setenv("PAGE_SIZE", "25")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.ListenAddr != "example.com:443" {
		t.Fatalf("ListenAddr expected 'example.com:443', got %q", cfg.ListenAddr)
	}
	if cfg.AuthSecret != "top" {
		t.Fatalf("AuthSecret expected from env 'top', got %q", cfg.AuthSecret)
	}
	if cfg.APIBaseURL != "http://stub.local/api/customer" {
		t.Fatalf("APIBaseURL expected from env, got %q", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 2*time.Second {
		t.Fatalf("RequestTimeout expected 2s, got %v", cfg.RequestTimeout)
	}
	if cfg.SettleDelay != 50*time.Millisecond {
		t.Fatalf("SettleDelay expected 50ms, got %v", cfg.SettleDelay)
	}
	if cfg.PageSize != 25 {
		t.Fatalf("PageSize expected 25, got %d", cfg.PageSize)
	}
}

func TestNewConfig_InvalidListenAddrFallback(t *testing.T) {
	// Невалидный LISTEN_ADDR (со схемой) должен откатиться на localhost:8080
	t.Setenv("LISTEN_ADDR", "http://bad:8080")
	t.Setenv("ENABLE_HTTPS", "false")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.ListenAddr != "localhost:8080" {
		t.Fatalf("invalid LISTEN_ADDR must fallback to 'localhost:8080', got %q", cfg.ListenAddr)
	}
}
