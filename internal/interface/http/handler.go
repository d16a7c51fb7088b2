package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/faq-match/internal/domain/match"
	"github.com/yanqian/faq-match/internal/infra/config"
	apperrors "github.com/yanqian/faq-match/pkg/errors"
	"github.com/yanqian/faq-match/pkg/metrics"
)

// Handler wires the HTTP transport to the matching domain.
type Handler struct {
	matchSvc        match.Service
	counters        *metrics.MatchCounters
	noAnswerMessage string
	logger          *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(matchSvc match.Service, counters *metrics.MatchCounters, cfg *config.Config, logger *slog.Logger) *Handler {
	return &Handler{
		matchSvc:        matchSvc,
		counters:        counters,
		noAnswerMessage: cfg.Matcher.NoAnswerMessage,
		logger:          logger.With("component", "http.handler"),
	}
}

// MatchFAQ answers a free-text question from the FAQ corpus.
func (h *Handler) MatchFAQ(c *gin.Context) {
	var req match.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if req.Lang == "" {
		req.Lang = c.Query("lang")
	}
	req.AcceptLanguage = c.GetHeader("Accept-Language")

	resp, err := h.matchSvc.Match(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "match_failed"
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	// Found-but-unanswerable entries get the configured fallback text so
	// clients always have something to show.
	if resp.Matched && resp.Answer == "" && h.noAnswerMessage != "" {
		h.logger.Warn("substituting fallback answer", "entryId", resp.EntryID, "lang", resp.Lang)
		resp.Answer = h.noAnswerMessage
	}

	c.JSON(http.StatusOK, resp)
}

// TrendingFAQ returns the most frequent matched and missed questions.
func (h *Handler) TrendingFAQ(c *gin.Context) {
	report, err := h.matchSvc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "match_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, report)
}

// Stats exposes the in-process match counters.
func (h *Handler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.counters.Snapshot())
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
