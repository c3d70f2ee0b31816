package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"rankedlog/internal/common"
	"rankedlog/internal/game"
)

func (h *Handler) GetStats(c *gin.Context) {
	f := game.Filter{
		Role:             c.Query("role"),
		TrackedChampion:  c.Query("champion"),
		OpposingChampion: c.Query("enemyChampion"),
		MatchCategory:    c.Query("gameType"),
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			f.Limit = n
		}
	}

	records, err := h.Query.Records(c.Request.Context(), f)
	if err != nil {
		respondErr(c, err)
		return
	}

	common.Ok(c, gin.H{
		"overall":   game.Aggregate(records),
		"daily":     game.DailyBuckets(records),
		"champions": game.Leaderboard(records, game.LeaderboardSize),
	})
}

// GetDailySummary lists the most recent seven day buckets, newest first,
// each with a deterministic narrative.
func (h *Handler) GetDailySummary(c *gin.Context) {
	records, err := h.Query.Records(c.Request.Context(), game.Filter{})
	if err != nil {
		respondErr(c, err)
		return
	}

	type daySummary struct {
		Date        string `json:"date"`
		GamesPlayed int    `json:"games_played"`
		Wins        int    `json:"wins"`
		Losses      int    `json:"losses"`
		WinRate     int    `json:"win_rate"`
		Notes       string `json:"notes,omitempty"`
		Summary     string `json:"summary"`
	}

	buckets := game.RecentDays(records, 7)
	out := make([]daySummary, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, daySummary{
			Date:        b.Date,
			GamesPlayed: b.Games,
			Wins:        b.Wins,
			Losses:      b.Losses,
			WinRate:     b.WinRate,
			Notes:       b.Notes,
			Summary:     game.DailyNarrative(b),
		})
	}
	common.Ok(c, gin.H{"summaries": out})
}
