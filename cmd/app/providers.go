package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/faq-match/internal/domain/match"
	"github.com/yanqian/faq-match/internal/infra/config"
	"github.com/yanqian/faq-match/internal/infra/corpus"
	"github.com/yanqian/faq-match/internal/infra/trendstore"
	"github.com/yanqian/faq-match/pkg/metrics"
)

func provideMatchConfig(cfg *config.Config) match.Config {
	return match.Config{
		BaseThreshold:   cfg.Matcher.BaseThreshold,
		MinThreshold:    cfg.Matcher.MinThreshold,
		MinQueryChars:   cfg.Matcher.MinQueryChars,
		DefaultLang:     match.Lang(cfg.Matcher.DefaultLang),
		ChineseFallback: match.Lang(cfg.Matcher.ChineseFallback),
		TopStats:        cfg.Matcher.TopStats,
	}
}

func provideCounters() *metrics.MatchCounters {
	return metrics.NewMatchCounters()
}

// provideCorpus loads the corpus exactly once at startup: Postgres when a
// DSN is configured and reachable, otherwise the probed file paths, and
// finally an explicit empty corpus so matching still operates (every query
// simply misses).
func provideCorpus(cfg *config.Config, matchCfg match.Config, logger *slog.Logger) *match.Corpus {
	loader := corpus.NewLoader(matchCfg.ChineseFallback, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if source := providePostgresSource(cfg, loader, logger); source != nil {
		entries, err := source.Load(ctx)
		if err == nil {
			return match.NewCorpus(entries)
		}
		logger.Error("postgres corpus load failed, trying file source", "error", err)
	}

	fileSource := corpus.NewFileSource(cfg.Corpus.Paths, loader, logger)
	entries, err := fileSource.Load(ctx)
	if err != nil {
		logger.Warn("corpus unavailable, starting with empty corpus", "error", err)
		return match.NewCorpus(nil)
	}
	return match.NewCorpus(entries)
}

func providePostgresSource(cfg *config.Config, loader *corpus.Loader, logger *slog.Logger) *corpus.PostgresSource {
	dsn := strings.TrimSpace(cfg.Corpus.Postgres.DSN)
	if dsn == "" {
		return nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, skipping postgres corpus source", "error", err)
		return nil
	}
	if cfg.Corpus.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Corpus.Postgres.MaxConns
	}
	if cfg.Corpus.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Corpus.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, skipping postgres corpus source", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, skipping postgres corpus source", "error", err)
		pool.Close()
		return nil
	}
	logger.Info("faq postgres corpus source enabled")
	return corpus.NewPostgresSource(pool, loader, logger)
}

func provideStatsStore(cfg *config.Config, logger *slog.Logger) match.StatsStore {
	if cfg.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return trendstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return trendstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("faq valkey stats store enabled", "addr", cfg.Valkey.Addr)
			return trendstore.NewValkeyStore(client, "faq")
		}
	}
	return trendstore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
