package game

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSummarizer counts calls and can be flipped into failure mode.
type fakeSummarizer struct {
	calls int
	fail  bool
}

func (f *fakeSummarizer) Summarize(_ context.Context, champion string, records []GameRecord) (string, error) {
	f.calls++
	if f.fail {
		return "", errors.New("provider down")
	}
	return fmt.Sprintf("%s summary over %d games", champion, len(records)), nil
}

func withIDs(ids ...uint64) []GameRecord {
	out := make([]GameRecord, len(ids))
	for i, id := range ids {
		out[i].ID = id
	}
	return out
}

func TestFingerprint_OrderIndependent(t *testing.T) {
	a := Fingerprint(withIDs(3, 1, 2))
	b := Fingerprint(withIDs(1, 2, 3))
	assert.Equal(t, "1,2,3", a)
	assert.Equal(t, a, b)

	assert.NotEqual(t, a, Fingerprint(withIDs(1, 2, 3, 4)))
	assert.NotEqual(t, a, Fingerprint(withIDs(1, 2)))
	assert.Equal(t, "", Fingerprint(nil))
}

func TestGetOrCompute_CachesUntilSetChanges(t *testing.T) {
	store := NewGormSummaryStore(openTestDB(t))
	sum := &fakeSummarizer{}
	svc := NewSummaryService(store, sum)
	ctx := context.Background()

	got, cached, err := svc.GetOrCompute(ctx, "Jinx", withIDs(1, 2, 3))
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 1, sum.calls)

	// same set, any order: served from cache without calling the collaborator
	again, cached, err := svc.GetOrCompute(ctx, "Jinx", withIDs(3, 2, 1))
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, got, again)
	assert.Equal(t, 1, sum.calls)

	// set changed: recompute and overwrite
	_, cached, err = svc.GetOrCompute(ctx, "Jinx", withIDs(1, 2, 3, 4))
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 2, sum.calls)

	entry, err := store.Get(ctx, "Jinx")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "1,2,3,4", entry.Fingerprint)
}

func TestGetOrCompute_ChampionsAreIndependent(t *testing.T) {
	store := NewGormSummaryStore(openTestDB(t))
	sum := &fakeSummarizer{}
	svc := NewSummaryService(store, sum)
	ctx := context.Background()

	_, _, err := svc.GetOrCompute(ctx, "Jinx", withIDs(1, 2))
	require.NoError(t, err)
	_, _, err = svc.GetOrCompute(ctx, "Thresh", withIDs(3))
	require.NoError(t, err)
	assert.Equal(t, 2, sum.calls)

	// recomputing Jinx leaves the Thresh entry alone
	_, _, err = svc.GetOrCompute(ctx, "Jinx", withIDs(1, 2, 5))
	require.NoError(t, err)

	entry, err := store.Get(ctx, "Thresh")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "3", entry.Fingerprint)
}

func TestGetOrCompute_FallbackIsNeverCached(t *testing.T) {
	store := NewGormSummaryStore(openTestDB(t))
	sum := &fakeSummarizer{fail: true}
	svc := NewSummaryService(store, sum)
	ctx := context.Background()

	records := withIDs(1, 2)
	got, cached, err := svc.GetOrCompute(ctx, "Jinx", records)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Contains(t, got, "Jinx")

	entry, err := store.Get(ctx, "Jinx")
	require.NoError(t, err)
	assert.Nil(t, entry)

	// collaborator recovers: the very next call retries and caches the
	// real summary instead of pinning the degraded one
	sum.fail = false
	fresh, cached, err := svc.GetOrCompute(ctx, "Jinx", records)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.NotEqual(t, got, fresh)

	_, cached, err = svc.GetOrCompute(ctx, "Jinx", records)
	require.NoError(t, err)
	assert.True(t, cached)
}

func TestGetOrCompute_NilCollaboratorUsesFallback(t *testing.T) {
	store := NewGormSummaryStore(openTestDB(t))
	svc := NewSummaryService(store, nil)

	got, cached, err := svc.GetOrCompute(context.Background(), "Jinx", withIDs(7))
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Contains(t, got, "Jinx Performance Summary")
}

func TestGormSummaryStore_PutOverwrites(t *testing.T) {
	store := NewGormSummaryStore(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &ChampionSummary{Champion: "Jinx", Summary: "v1", Fingerprint: "1"}))
	require.NoError(t, store.Put(ctx, &ChampionSummary{Champion: "Jinx", Summary: "v2", Fingerprint: "1,2"}))

	entry, err := store.Get(ctx, "Jinx")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "v2", entry.Summary)
	assert.Equal(t, "1,2", entry.Fingerprint)
}
