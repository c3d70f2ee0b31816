package game

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Repo is the record store: the only writer of games rows. All other
// components read through the query engine.
type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

// Create validates a draft, assigns id and created_at, and persists it.
// Slots outside the role's schema are cleared rather than stored.
func (r *Repo) Create(ctx context.Context, draft *GameRecord) (uint64, error) {
	role, err := ParseRole(draft.Role)
	if err != nil {
		return 0, invalidField("role", "unrecognized role tag")
	}
	draft.Role = string(role)

	if err := validateStats(draft); err != nil {
		return 0, err
	}

	slots, _ := Slots(role)
	active := make(map[string]bool, len(slots))
	for _, s := range slots {
		active[s.Name] = true
		if strings.TrimSpace(draft.SlotValue(s.Name)) == "" {
			return 0, invalidField(s.Name, "required for role "+string(role))
		}
	}
	for _, name := range allSlotNames {
		if !active[name] {
			draft.setSlot(name, nil)
		}
	}

	if draft.MatchCategory == "" {
		draft.MatchCategory = "solo_queue"
	}
	if !validMatchCategory(draft.MatchCategory) {
		return 0, invalidField("match_category", "unknown match category")
	}

	// The match's logical date, independent of entry time.
	if draft.OccurredOn.IsZero() {
		draft.OccurredOn = DayOf(time.Now())
	} else {
		draft.OccurredOn = DayOf(draft.OccurredOn)
	}

	draft.ID = 0
	draft.CreatedAt = time.Time{}
	if err := r.db.WithContext(ctx).Create(draft).Error; err != nil {
		return 0, storeErr(err)
	}
	return draft.ID, nil
}

func validateStats(g *GameRecord) error {
	if g.Kills < 0 {
		return invalidField("kills", "must be non-negative")
	}
	if g.Deaths < 0 {
		return invalidField("deaths", "must be non-negative")
	}
	if g.Assists < 0 {
		return invalidField("assists", "must be non-negative")
	}
	if g.KillParticipation < 0 || g.KillParticipation > 100 {
		return invalidField("kill_participation", "must be between 0 and 100")
	}
	if g.CSPerMin < 0 {
		return invalidField("cs_per_min", "must be non-negative")
	}
	return nil
}

func validMatchCategory(c string) bool {
	switch c {
	case "solo_queue", "flex", "scrim", "official_match":
		return true
	}
	return false
}

func (r *Repo) Get(ctx context.Context, id uint64) (*GameRecord, error) {
	var g GameRecord
	if err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr(err)
	}
	return &g, nil
}

// UpdateParams carries a partial update. Nil fields are left untouched, not
// nulled. Notes and VideoURL cover the quick-edit flow; the stat fields
// support full edit mode.
type UpdateParams struct {
	Notes    *string
	VideoURL *string

	Kills             *int
	Deaths            *int
	Assists           *int
	KillParticipation *float64
	CSPerMin          *float64
	Win               *bool
}

func (p UpdateParams) empty() bool {
	return p.Notes == nil && p.VideoURL == nil &&
		p.Kills == nil && p.Deaths == nil && p.Assists == nil &&
		p.KillParticipation == nil && p.CSPerMin == nil && p.Win == nil
}

// Update applies the present fields in a single UPDATE statement, so two
// concurrent calls resolve last-write-wins at whole-call granularity.
func (r *Repo) Update(ctx context.Context, id uint64, p UpdateParams) error {
	if p.empty() {
		return ErrNoOpUpdate
	}

	cols := map[string]any{}
	if p.Notes != nil {
		cols["notes"] = *p.Notes
	}
	if p.VideoURL != nil {
		cols["video_url"] = *p.VideoURL
	}
	if p.Kills != nil {
		if *p.Kills < 0 {
			return invalidField("kills", "must be non-negative")
		}
		cols["kills"] = *p.Kills
	}
	if p.Deaths != nil {
		if *p.Deaths < 0 {
			return invalidField("deaths", "must be non-negative")
		}
		cols["deaths"] = *p.Deaths
	}
	if p.Assists != nil {
		if *p.Assists < 0 {
			return invalidField("assists", "must be non-negative")
		}
		cols["assists"] = *p.Assists
	}
	if p.KillParticipation != nil {
		if *p.KillParticipation < 0 || *p.KillParticipation > 100 {
			return invalidField("kill_participation", "must be between 0 and 100")
		}
		cols["kill_participation"] = *p.KillParticipation
	}
	if p.CSPerMin != nil {
		if *p.CSPerMin < 0 {
			return invalidField("cs_per_min", "must be non-negative")
		}
		cols["cs_per_min"] = *p.CSPerMin
	}
	if p.Win != nil {
		cols["win"] = *p.Win
	}

	res := r.db.WithContext(ctx).Model(&GameRecord{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a record. Deleting an unknown id is an error, not a no-op.
func (r *Repo) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&GameRecord{}, "id = ?", id)
	if res.Error != nil {
		return storeErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAll returns every record newest first. Id breaks created_at ties so
// the order is deterministic.
func (r *Repo) ListAll(ctx context.Context) ([]GameRecord, error) {
	var out []GameRecord
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&out).Error; err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

// GetMany loads the given ids, newest first. Unknown ids are skipped.
func (r *Repo) GetMany(ctx context.Context, ids []uint64) ([]GameRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []GameRecord
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("created_at DESC, id DESC").
		Find(&out).Error; err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

// Job CRUD

func (r *Repo) CreateJob(ctx context.Context, job *SummaryJob) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *Repo) GetJob(ctx context.Context, id string) (*SummaryJob, error) {
	var j SummaryJob
	if err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storeErr(err)
	}
	return &j, nil
}

func (r *Repo) MarkJobRunning(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Model(&SummaryJob{}).
		Where("id = ? AND status = ?", id, JobQueued).
		Update("status", JobRunning).Error
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *Repo) MarkJobSucceeded(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Model(&SummaryJob{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": JobSucceeded, "error": nil}).Error
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *Repo) MarkJobFailed(ctx context.Context, id string, errMsg string) error {
	err := r.db.WithContext(ctx).Model(&SummaryJob{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": JobFailed, "error": errMsg}).Error
	if err != nil {
		return storeErr(err)
	}
	return nil
}

// SetAISummaryOnce writes a record's note summary only when none exists yet;
// ai_summary is produced once at creation time and never recomputed.
func (r *Repo) SetAISummaryOnce(ctx context.Context, recordID uint64, summary string) error {
	res := r.db.WithContext(ctx).Model(&GameRecord{}).
		Where("id = ? AND ai_summary IS NULL", recordID).
		Update("ai_summary", summary)
	if res.Error != nil {
		return storeErr(res.Error)
	}
	return nil
}
