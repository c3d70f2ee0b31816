package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rankedlog/internal/common"
	"rankedlog/internal/game"
)

type championSummaryReq struct {
	Champion string `json:"champion" binding:"required"`
	// RecordIDs pins the record set explicitly; when omitted the set is the
	// current filtered view for the champion.
	RecordIDs []uint64 `json:"record_ids"`
}

// ChampionSummary serves the cached narrative for a champion, recomputing
// through the collaborator only when the record set changed. Collaborator
// failure is invisible here: the fallback text comes back with cached=false.
func (h *Handler) ChampionSummary(c *gin.Context) {
	var req championSummaryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "champion required")
		return
	}

	ctx := c.Request.Context()

	var (
		records []game.GameRecord
		err     error
	)
	if len(req.RecordIDs) > 0 {
		records, err = h.Repo.GetMany(ctx, req.RecordIDs)
	} else {
		records, err = h.Query.Records(ctx, game.Filter{TrackedChampion: req.Champion})
	}
	if err != nil {
		respondErr(c, err)
		return
	}
	if len(records) == 0 {
		common.Fail(c, http.StatusBadRequest, 10006, "no games for champion")
		return
	}

	summary, cached, err := h.Summaries.GetOrCompute(ctx, req.Champion, records)
	if err != nil {
		respondErr(c, err)
		return
	}
	common.Ok(c, gin.H{"summary": summary, "cached": cached})
}

type summarizeReq struct {
	Notes string `json:"notes"`
}

// SummarizeNotes is the one-shot note summary used by the logging flow
// before a record exists. Provider failures silently degrade to the
// heuristic summary.
func (h *Handler) SummarizeNotes(c *gin.Context) {
	var req summarizeReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Notes) == "" {
		common.Fail(c, http.StatusBadRequest, 10001, "notes required")
		return
	}

	summary := ""
	if h.Notes != nil {
		if out, err := h.Notes.SummarizeNotes(c.Request.Context(), req.Notes); err == nil {
			summary = out
		}
	}
	if summary == "" {
		summary = game.SummarizeNotes(req.Notes)
	}
	common.Ok(c, gin.H{"summary": summary})
}
