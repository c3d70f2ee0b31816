package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rankedlog/internal/common"
	"rankedlog/internal/game"
)

type createGameReq struct {
	Role string `json:"role"`

	MyTop        *string `json:"my_top"`
	MyJungle     *string `json:"my_jungle"`
	MyMid        *string `json:"my_mid"`
	MyADC        *string `json:"my_adc"`
	MySupport    *string `json:"my_support"`
	EnemyTop     *string `json:"enemy_top"`
	EnemyJungle  *string `json:"enemy_jungle"`
	EnemyMid     *string `json:"enemy_mid"`
	EnemyADC     *string `json:"enemy_adc"`
	EnemySupport *string `json:"enemy_support"`

	Kills             *int     `json:"kills"`
	Deaths            *int     `json:"deaths"`
	Assists           *int     `json:"assists"`
	KillParticipation *float64 `json:"kill_participation"`
	CSPerMin          *float64 `json:"cs_per_min"`
	Win               bool     `json:"win"`

	Notes         *string `json:"notes"`
	VideoURL      *string `json:"video_url"`
	MatchCategory string  `json:"match_category"`
	OccurredOn    string  `json:"occurred_on"` // YYYY-MM-DD, defaults to today
	AISummary     *string `json:"ai_summary"`
}

func (r *createGameReq) toDraft() (*game.GameRecord, error) {
	if r.Kills == nil {
		return nil, &game.ValidationError{Field: "kills", Reason: "required"}
	}
	if r.Deaths == nil {
		return nil, &game.ValidationError{Field: "deaths", Reason: "required"}
	}
	if r.Assists == nil {
		return nil, &game.ValidationError{Field: "assists", Reason: "required"}
	}
	if r.KillParticipation == nil {
		return nil, &game.ValidationError{Field: "kill_participation", Reason: "required"}
	}
	if r.CSPerMin == nil {
		return nil, &game.ValidationError{Field: "cs_per_min", Reason: "required"}
	}

	draft := &game.GameRecord{
		Role:              r.Role,
		MyTop:             r.MyTop,
		MyJungle:          r.MyJungle,
		MyMid:             r.MyMid,
		MyADC:             r.MyADC,
		MySupport:         r.MySupport,
		EnemyTop:          r.EnemyTop,
		EnemyJungle:       r.EnemyJungle,
		EnemyMid:          r.EnemyMid,
		EnemyADC:          r.EnemyADC,
		EnemySupport:      r.EnemySupport,
		Kills:             *r.Kills,
		Deaths:            *r.Deaths,
		Assists:           *r.Assists,
		KillParticipation: *r.KillParticipation,
		CSPerMin:          *r.CSPerMin,
		Win:               r.Win,
		Notes:             r.Notes,
		VideoURL:          r.VideoURL,
		MatchCategory:     r.MatchCategory,
		AISummary:         r.AISummary,
	}

	if r.OccurredOn != "" {
		day, err := game.ParseDay(r.OccurredOn)
		if err != nil {
			return nil, &game.ValidationError{Field: "occurred_on", Reason: "expected YYYY-MM-DD"}
		}
		draft.OccurredOn = day
	}
	return draft, nil
}

func (h *Handler) CreateGame(c *gin.Context) {
	var req createGameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	draft, err := req.toDraft()
	if err != nil {
		respondErr(c, err)
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), draft)
	if err != nil {
		respondErr(c, err)
		return
	}

	h.queueNoteSummary(c, draft)

	common.Ok(c, gin.H{"id": id})
}

// queueNoteSummary kicks off the one-time ai_summary generation for a new
// record. With a broker the work is asynchronous; without one the heuristic
// fallback is stored right away. Either way create has already succeeded,
// so failures here are logged, not surfaced.
func (h *Handler) queueNoteSummary(c *gin.Context, rec *game.GameRecord) {
	if rec.AISummary != nil || rec.Notes == nil || *rec.Notes == "" {
		return
	}
	ctx := c.Request.Context()

	if h.Rabbit != nil {
		jobID, err := common.NewULID()
		if err == nil {
			job := &game.SummaryJob{ID: jobID, RecordID: rec.ID, Status: game.JobQueued}
			if err = h.Repo.CreateJob(ctx, job); err == nil {
				err = h.Rabbit.PublishJob(ctx, jobID)
			}
		}
		if err != nil {
			log.Printf("note summary enqueue failed record=%d err=%v", rec.ID, err)
		}
		return
	}

	if err := h.Repo.SetAISummaryOnce(ctx, rec.ID, game.SummarizeNotes(*rec.Notes)); err != nil {
		log.Printf("note summary store failed record=%d err=%v", rec.ID, err)
	}
}

func (h *Handler) ListGames(c *gin.Context) {
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
	common.Ok(c, gin.H{"games": records})
}

func (h *Handler) GetGame(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rec, err := h.Repo.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	common.Ok(c, gin.H{"game": rec})
}

type updateGameReq struct {
	Notes    *string `json:"notes"`
	VideoURL *string `json:"video_url"`

	Kills             *int     `json:"kills"`
	Deaths            *int     `json:"deaths"`
	Assists           *int     `json:"assists"`
	KillParticipation *float64 `json:"kill_participation"`
	CSPerMin          *float64 `json:"cs_per_min"`
	Win               *bool    `json:"win"`
}

func (h *Handler) UpdateGame(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateGameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	err := h.Repo.Update(c.Request.Context(), id, game.UpdateParams{
		Notes:             req.Notes,
		VideoURL:          req.VideoURL,
		Kills:             req.Kills,
		Deaths:            req.Deaths,
		Assists:           req.Assists,
		KillParticipation: req.KillParticipation,
		CSPerMin:          req.CSPerMin,
		Win:               req.Win,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	common.Ok(c, gin.H{"id": id})
}

func (h *Handler) DeleteGame(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err)
		return
	}
	common.Ok(c, gin.H{"id": id})
}

func pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		common.Fail(c, http.StatusBadRequest, 10005, "invalid id")
		return 0, false
	}
	return id, true
}
