package game

import "time"

// GameRecord is one logged match. The ten champion slot columns are all
// nullable; which of them are live for a given row is decided solely by
// Role through the slot schema.
type GameRecord struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Role string `gorm:"type:varchar(16);index;not null" json:"role"`

	MyTop        *string `gorm:"type:varchar(64)" json:"my_top,omitempty"`
	MyJungle     *string `gorm:"type:varchar(64)" json:"my_jungle,omitempty"`
	MyMid        *string `gorm:"type:varchar(64)" json:"my_mid,omitempty"`
	MyADC        *string `gorm:"column:my_adc;type:varchar(64)" json:"my_adc,omitempty"`
	MySupport    *string `gorm:"type:varchar(64)" json:"my_support,omitempty"`
	EnemyTop     *string `gorm:"type:varchar(64)" json:"enemy_top,omitempty"`
	EnemyJungle  *string `gorm:"type:varchar(64)" json:"enemy_jungle,omitempty"`
	EnemyMid     *string `gorm:"type:varchar(64)" json:"enemy_mid,omitempty"`
	EnemyADC     *string `gorm:"column:enemy_adc;type:varchar(64)" json:"enemy_adc,omitempty"`
	EnemySupport *string `gorm:"type:varchar(64)" json:"enemy_support,omitempty"`

	Kills             int     `gorm:"not null" json:"kills"`
	Deaths            int     `gorm:"not null" json:"deaths"`
	Assists           int     `gorm:"not null" json:"assists"`
	KillParticipation float64 `gorm:"not null" json:"kill_participation"`
	CSPerMin          float64 `gorm:"column:cs_per_min;not null" json:"cs_per_min"`
	Win               bool    `gorm:"not null" json:"win"`

	Notes         *string   `gorm:"type:text" json:"notes,omitempty"`
	VideoURL      *string   `gorm:"column:video_url;type:varchar(512)" json:"video_url,omitempty"`
	MatchCategory string    `gorm:"type:varchar(32);index;not null;default:solo_queue" json:"match_category"`
	OccurredOn    time.Time `gorm:"index;not null" json:"occurred_on"`
	AISummary     *string   `gorm:"column:ai_summary;type:text" json:"ai_summary,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (GameRecord) TableName() string { return "games" }

// slotField maps a slot name to the backing column pointer.
func (g *GameRecord) slotField(name string) **string {
	switch name {
	case "my_top":
		return &g.MyTop
	case "my_jungle":
		return &g.MyJungle
	case "my_mid":
		return &g.MyMid
	case "my_adc":
		return &g.MyADC
	case "my_support":
		return &g.MySupport
	case "enemy_top":
		return &g.EnemyTop
	case "enemy_jungle":
		return &g.EnemyJungle
	case "enemy_mid":
		return &g.EnemyMid
	case "enemy_adc":
		return &g.EnemyADC
	case "enemy_support":
		return &g.EnemySupport
	}
	return nil
}

// SlotValue returns the champion stored in a slot, "" when the slot is
// empty or unknown.
func (g *GameRecord) SlotValue(name string) string {
	f := g.slotField(name)
	if f == nil || *f == nil {
		return ""
	}
	return **f
}

// setSlot overwrites a slot value; nil clears it.
func (g *GameRecord) setSlot(name string, v *string) {
	if f := g.slotField(name); f != nil {
		*f = v
	}
}

// TrackedChampion returns the tracked player's champion for this record,
// "" when the role tag is unknown or the slot is empty.
func (g *GameRecord) TrackedChampion() string {
	slot, err := TrackedSlot(Role(g.Role))
	if err != nil {
		return ""
	}
	return g.SlotValue(slot.Name)
}

// ChampionSummary is the cached narrative for one champion. At most one row
// per champion; Fingerprint pins the exact record-id set the summary was
// computed from.
type ChampionSummary struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	Champion    string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"champion"`
	Summary     string    `gorm:"type:text;not null" json:"summary"`
	Fingerprint string    `gorm:"type:text;not null" json:"-"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ChampionSummary) TableName() string { return "champion_summaries" }
