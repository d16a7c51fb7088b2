package corpus

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/faq-match/internal/domain/match"
	apperrors "github.com/yanqian/faq-match/pkg/errors"
)

// PostgresSource loads the corpus from the faq_entries table, one jsonb
// payload per entry. The payload shape matches the YAML entry schema.
type PostgresSource struct {
	pool   *pgxpool.Pool
	loader *Loader
	logger *slog.Logger
}

// NewPostgresSource constructs the source.
func NewPostgresSource(pool *pgxpool.Pool, loader *Loader, logger *slog.Logger) *PostgresSource {
	return &PostgresSource{
		pool:   pool,
		loader: loader,
		logger: logger.With("component", "corpus.postgres"),
	}
}

// Load implements Source.
func (s *PostgresSource) Load(ctx context.Context) ([]match.Entry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT entry_id, payload
		FROM faq_entries
		ORDER BY position, entry_id
	`)
	if err != nil {
		return nil, apperrors.Wrap("corpus_error", "query faq_entries", err)
	}
	defer rows.Close()

	var raws []rawEntry
	for rows.Next() {
		var (
			id      string
			payload []byte
		)
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, apperrors.Wrap("corpus_error", "scan faq_entries row", err)
		}
		var raw rawEntry
		if err := json.Unmarshal(payload, &raw); err != nil {
			s.logger.Warn("skipping malformed corpus row", "entryId", id, "error", err)
			continue
		}
		if raw.ID == "" {
			raw.ID = id
		}
		raws = append(raws, raw)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap("corpus_error", "iterate faq_entries rows", err)
	}

	entries := s.loader.resolveEntries(raws)
	s.logger.Info("faq corpus loaded", "source", "postgres", "entries", len(entries))
	return entries, nil
}

var _ Source = (*PostgresSource)(nil)
