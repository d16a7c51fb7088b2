package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/faq-match/internal/domain/match"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Matcher MatcherConfig `yaml:"matcher"`
	Corpus  CorpusConfig  `yaml:"corpus"`
	Valkey  ValkeyConfig  `yaml:"valkey"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// MatcherConfig carries the matching tunables. The threshold values and the
// Chinese fallback are deliberate product choices surfaced here rather than
// constants buried in the matcher.
type MatcherConfig struct {
	BaseThreshold   float64 `yaml:"baseThreshold"`
	MinThreshold    float64 `yaml:"minThreshold"`
	MinQueryChars   int     `yaml:"minQueryChars"`
	DefaultLang     string  `yaml:"defaultLang"`
	ChineseFallback string  `yaml:"chineseFallback"`
	TopStats        int     `yaml:"topStats"`
	NoAnswerMessage string  `yaml:"noAnswerMessage"`
}

// CorpusConfig points at the corpus sources. Postgres wins when a DSN is
// set and reachable; otherwise the path list is probed in order.
type CorpusConfig struct {
	Paths    []string       `yaml:"paths"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// ValkeyConfig contains connection information for the statistics store.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("FAQ_BASE_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Matcher.BaseThreshold = parsed
		}
	}
	if v := os.Getenv("FAQ_MIN_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Matcher.MinThreshold = parsed
		}
	}
	if v := os.Getenv("FAQ_MIN_QUERY_CHARS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Matcher.MinQueryChars = parsed
		}
	}
	if v := os.Getenv("FAQ_DEFAULT_LANG"); v != "" {
		cfg.Matcher.DefaultLang = v
	}
	if v := os.Getenv("FAQ_CHINESE_FALLBACK"); v != "" {
		cfg.Matcher.ChineseFallback = v
	}
	if v := os.Getenv("FAQ_TOP_STATS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Matcher.TopStats = parsed
		}
	}
	if v := os.Getenv("FAQ_NO_ANSWER_MESSAGE"); v != "" {
		cfg.Matcher.NoAnswerMessage = v
	}
	if v := os.Getenv("FAQ_CORPUS_PATH"); v != "" {
		cfg.Corpus.Paths = splitList(v)
	}
	if v := os.Getenv("FAQ_POSTGRES_DSN"); v != "" {
		cfg.Corpus.Postgres.DSN = v
	}
	if v := os.Getenv("FAQ_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Corpus.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("FAQ_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Corpus.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("FAQ_VALKEY_ENABLED"); v != "" {
		cfg.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("FAQ_VALKEY_ADDR"); v != "" {
		cfg.Valkey.Addr = v
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
		},
		Matcher: MatcherConfig{
			BaseThreshold:   0.30,
			MinThreshold:    0.25,
			MinQueryChars:   2,
			DefaultLang:     "ko",
			ChineseFallback: "zh-hans",
			TopStats:        10,
			NoAnswerMessage: "죄송합니다. 해당 질문에 등록된 답변이 없습니다.",
		},
		Corpus: CorpusConfig{
			Paths: []string{
				"configs/faq.yaml",
				"/etc/faq-match/faq.yaml",
			},
			Postgres: PostgresConfig{
				DSN:      "",
				MaxConns: 4,
				MinConns: 0,
			},
		},
		Valkey: ValkeyConfig{
			Enabled: false,
			Addr:    "",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.Matcher.BaseThreshold < 0 || c.Matcher.BaseThreshold > 1 {
		return errors.New("matcher.baseThreshold must be within [0,1]")
	}
	if c.Matcher.MinThreshold < 0 || c.Matcher.MinThreshold > 1 {
		return errors.New("matcher.minThreshold must be within [0,1]")
	}
	if c.Matcher.MinQueryChars < 1 {
		return errors.New("matcher.minQueryChars must be positive")
	}
	if !match.Lang(c.Matcher.DefaultLang).Valid() {
		return fmt.Errorf("matcher.defaultLang %q is not a canonical language tag", c.Matcher.DefaultLang)
	}
	switch match.Lang(c.Matcher.ChineseFallback) {
	case match.LangSimplified, match.LangTraditional:
	default:
		return fmt.Errorf("matcher.chineseFallback %q must be zh-hans or zh-hant", c.Matcher.ChineseFallback)
	}
	if c.Matcher.TopStats < 0 {
		return errors.New("matcher.topStats cannot be negative")
	}
	if len(c.Corpus.Paths) == 0 && strings.TrimSpace(c.Corpus.Postgres.DSN) == "" {
		return errors.New("corpus.paths cannot be empty when no postgres dsn is set")
	}
	if c.Valkey.Enabled && strings.TrimSpace(c.Valkey.Addr) == "" {
		return errors.New("valkey.addr cannot be empty when the valkey store is enabled")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
