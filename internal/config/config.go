package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	ListenAddr  string `env:"LISTEN_ADDR"`
	AuthSecret  string `env:"AUTH_SECRET"`
	DatabaseDSN string `env:"DATABASE_URI"` // postgres DSN; пусто — локальный sqlite
	UserDBPath  string `env:"USER_DB_PATH"` // путь к sqlite-файлу справочника операторов

	// Back-office API
	APIBaseURL     string        `env:"API_BASE_URL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	SettleDelay    time.Duration `env:"SETTLE_DELAY"`

	// Shared settings
	EnableHTTPS bool `env:"ENABLE_HTTPS"`
	PageSize    int  `env:"PAGE_SIZE"`

	Version bool `env:"-"` // show client version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.ListenAddr, "a", cfg.ListenAddr, "адрес и порт дашборда (host:port)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи session cookie")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к postgres (опционально)")
	flag.StringVar(&cfg.UserDBPath, "user-db", cfg.UserDBPath, "path to operator directory SQLite DB")
	flag.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "base URL of the back-office REST API")
	flag.DurationVar(&cfg.RequestTimeout, "request-timeout", cfg.RequestTimeout, "timeout for outbound API calls")
	flag.DurationVar(&cfg.SettleDelay, "settle-delay", cfg.SettleDelay, "delay between a successful mutation and list refresh")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "mark session cookies Secure")
	flag.IntVar(&cfg.PageSize, "page-size", cfg.PageSize, "rows per table page")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	// Defaults
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	// validate ListenAddr: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]*:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.ListenAddr) {
		cfg.ListenAddr = "localhost:8080"
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "https://ib.jetafx.com/api/customer"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}
	if cfg.SettleDelay == 0 {
		// компенсация eventual consistency удалённого стора (см. DESIGN.md)
		cfg.SettleDelay = 300 * time.Millisecond
	} else if cfg.SettleDelay < 0 {
		cfg.SettleDelay = 0
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}

	// Fill operator DB default if neither store is configured
	if cfg.DatabaseDSN == "" && cfg.UserDBPath == "" {
		home, _ := os.UserHomeDir()
		cfg.UserDBPath = filepath.Join(home, "ibdesk.db")
	}

	return cfg
}
