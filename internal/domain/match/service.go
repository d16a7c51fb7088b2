package match

import (
	"context"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/yanqian/faq-match/pkg/errors"
	"github.com/yanqian/faq-match/pkg/metrics"
)

// Service exposes the FAQ matching operations consumed by the transport.
type Service interface {
	Resolve(query string, hints Hints) Lang
	Match(ctx context.Context, req Request) (Response, error)
	Trending(ctx context.Context) (TrendingReport, error)
}

type service struct {
	cfg      Config
	corpus   *Corpus
	store    StatsStore
	counters *metrics.MatchCounters
	logger   *slog.Logger
}

// NewService wires up the matching domain over an immutable corpus.
func NewService(cfg Config, corpus *Corpus, store StatsStore, counters *metrics.MatchCounters, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		corpus:   corpus,
		store:    store,
		counters: counters,
		logger:   logger.With("component", "match.service"),
	}
}

// Resolve infers the canonical request language from the query text and
// request metadata.
func (s *service) Resolve(query string, hints Hints) Lang {
	return Detect(query, hints, s.cfg)
}

func (s *service) Match(ctx context.Context, req Request) (Response, error) {
	started := time.Now()

	question := strings.TrimSpace(req.Question)
	if question == "" {
		return Response{}, apperrors.Wrap("invalid_input", "question cannot be empty", nil)
	}

	lang := s.Resolve(question, Hints{ExplicitTag: req.Lang, AcceptLanguage: req.AcceptLanguage})
	result := FindBestMatch(s.corpus, question, lang, s.cfg)

	canonical := comparisonKey(question)
	if result == nil {
		s.counters.Observe(string(lang), false, false)
		if err := s.store.RecordMiss(ctx, canonical, question); err != nil {
			s.logger.Warn("miss stat update failed", "error", err)
		}
		return Response{
			Matched:    false,
			Question:   question,
			Lang:       lang,
			DurationMs: time.Since(started).Milliseconds(),
		}, nil
	}

	s.counters.Observe(string(lang), true, result.Score >= 1.0)
	if err := s.store.IncrementQuery(ctx, canonical, question); err != nil {
		s.logger.Warn("query stat update failed", "error", err)
	}

	answer := PickAnswer(result.Entry, lang)
	if answer == "" {
		s.logger.Warn("matched entry has no answer content", "entryId", result.Entry.ID, "lang", lang)
	}

	return Response{
		Matched:     true,
		Question:    question,
		Lang:        lang,
		Score:       result.Score,
		EntryID:     result.Entry.ID,
		MatchedText: result.MatchedText,
		MatchedFrom: result.MatchedFrom,
		Answer:      answer,
		URL:         result.Entry.URL,
		URLTitle:    result.Entry.URLTitle,
		DurationMs:  time.Since(started).Milliseconds(),
	}, nil
}

func (s *service) Trending(ctx context.Context) (TrendingReport, error) {
	queries, err := s.store.TopQueries(ctx, s.cfg.TopStats)
	if err != nil {
		return TrendingReport{}, apperrors.Wrap("match_error", "failed to load trending queries", err)
	}
	misses, err := s.store.TopMisses(ctx, s.cfg.TopStats)
	if err != nil {
		return TrendingReport{}, apperrors.Wrap("match_error", "failed to load missed queries", err)
	}
	return TrendingReport{Queries: queries, Misses: misses}, nil
}
