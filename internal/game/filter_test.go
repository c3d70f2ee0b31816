package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func supportDraft() *GameRecord {
	return &GameRecord{
		Role:              "support",
		MySupport:         strptr("Thresh"),
		MyADC:             strptr("Jinx"),
		MyJungle:          strptr("Lee Sin"),
		EnemySupport:      strptr("Lux"),
		EnemyADC:          strptr("Caitlyn"),
		EnemyJungle:       strptr("Elise"),
		Kills:             1,
		Deaths:            3,
		Assists:           15,
		KillParticipation: 70,
		CSPerMin:          1.2,
		MatchCategory:     "flex",
	}
}

func seedMixed(t *testing.T, repo *Repo) (adcID, supID uint64) {
	t.Helper()
	ctx := context.Background()

	var err error
	adcID, err = repo.Create(ctx, adcDraft())
	require.NoError(t, err)
	supID, err = repo.Create(ctx, supportDraft())
	require.NoError(t, err)
	return adcID, supID
}

func TestQuery_RoleFilter(t *testing.T) {
	repo := NewRepo(openTestDB(t))
	adcID, _ := seedMixed(t, repo)
	q := NewQuery(repo)

	got, err := q.Records(context.Background(), Filter{Role: "adc"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, adcID, got[0].ID)

	all, err := q.Records(context.Background(), Filter{Role: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestQuery_RoleAndCategoryFiltersNormalized(t *testing.T) {
	repo := NewRepo(openTestDB(t))
	adcID, _ := seedMixed(t, repo)
	q := NewQuery(repo)
	ctx := context.Background()

	// stored values are normalized at create time; filter values get the
	// same trim + lowercase so ?role=ADC is not silently empty
	got, err := q.Records(ctx, Filter{Role: " ADC "})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, adcID, got[0].ID)

	got, err = q.Records(ctx, Filter{MatchCategory: "FLEX"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "support", got[0].Role)
}

func TestQuery_ChampionMatchesRoleSlots(t *testing.T) {
	repo := NewRepo(openTestDB(t))
	seedMixed(t, repo)
	q := NewQuery(repo)
	ctx := context.Background()

	// Jinx appears in my_adc of both records (adc game and support game
	// duo slot), so the tracked-champion filter matches both.
	got, err := q.Records(ctx, Filter{TrackedChampion: "Jinx"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Lee Sin is only a live slot for the support-role record.
	got, err = q.Records(ctx, Filter{TrackedChampion: "Lee Sin"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "support", got[0].Role)

	// case-sensitive exact match
	got, err = q.Records(ctx, Filter{TrackedChampion: "jinx"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQuery_OpposingChampion(t *testing.T) {
	repo := NewRepo(openTestDB(t))
	seedMixed(t, repo)
	q := NewQuery(repo)
	ctx := context.Background()

	got, err := q.Records(ctx, Filter{OpposingChampion: "Elise"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "support", got[0].Role)

	// a my-side champion never matches the enemy filter
	got, err = q.Records(ctx, Filter{OpposingChampion: "Jinx"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestQuery_CategoryAndLimit(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepo(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		id, err := repo.Create(ctx, adcDraft())
		require.NoError(t, err)
		require.NoError(t, db.Model(&GameRecord{}).Where("id = ?", id).
			Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}
	q := NewQuery(repo)

	got, err := q.Records(ctx, Filter{MatchCategory: "flex"})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = q.Records(ctx, Filter{MatchCategory: "solo_queue", Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	// limit keeps the most recent N
	assert.True(t, got[0].CreatedAt.After(got[1].CreatedAt))
}

func TestQuery_Idempotent(t *testing.T) {
	repo := NewRepo(openTestDB(t))
	seedMixed(t, repo)
	q := NewQuery(repo)
	ctx := context.Background()

	f := Filter{TrackedChampion: "Jinx", MatchCategory: "all"}
	first, err := q.Records(ctx, f)
	require.NoError(t, err)
	second, err := q.Records(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
