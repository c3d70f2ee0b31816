package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rankedlog/internal/common"
	"rankedlog/internal/game"
	"rankedlog/internal/store/rabbitmq"
)

// Handler carries the wired dependencies for all routes. Rabbit is nil when
// no broker is configured; note summaries then fall back to the synchronous
// heuristic at create time.
type Handler struct {
	Repo      *game.Repo
	Query     *game.Query
	Summaries *game.SummaryService
	Notes     NoteSummarizer
	Rabbit    *rabbitmq.Publisher
}

// NoteSummarizer is the per-record note collaborator; nil or failing calls
// degrade to the deterministic heuristic.
type NoteSummarizer interface {
	SummarizeNotes(ctx context.Context, notes string) (string, error)
}

func NewHandler(repo *game.Repo, summaries *game.SummaryService, notes NoteSummarizer, rabbit *rabbitmq.Publisher) *Handler {
	return &Handler{
		Repo:      repo,
		Query:     game.NewQuery(repo),
		Summaries: summaries,
		Notes:     notes,
		Rabbit:    rabbit,
	}
}

func (h *Handler) Ping(c *gin.Context) {
	common.Ok(c, gin.H{"pong": true})
}

// respondErr maps domain error kinds onto HTTP statuses and app codes.
// Collaborator unavailability never reaches here: it is recovered inside
// the summary service.
func respondErr(c *gin.Context, err error) {
	var ve *game.ValidationError
	switch {
	case errors.As(err, &ve):
		common.Fail(c, http.StatusBadRequest, 10002, ve.Error())
	case errors.Is(err, game.ErrInvalidRole):
		common.Fail(c, http.StatusBadRequest, 10004, "invalid role")
	case errors.Is(err, game.ErrNoOpUpdate):
		common.Fail(c, http.StatusBadRequest, 10003, "no fields to update")
	case errors.Is(err, game.ErrNotFound):
		common.Fail(c, http.StatusNotFound, 40401, "record not found")
	case errors.Is(err, game.ErrStoreUnavailable):
		common.Fail(c, http.StatusServiceUnavailable, 50301, "store unavailable")
	default:
		common.Fail(c, http.StatusInternalServerError, 50001, "internal error")
	}
}
