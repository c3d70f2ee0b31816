package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackChampionSummary(t *testing.T) {
	records := []GameRecord{
		rec(5, 5, 5, true),
		rec(2, 0, 2, true),
		rec(3, 4, 3, false),
	}
	got := FallbackChampionSummary("Jinx", records)
	assert.Contains(t, got, "Jinx Performance Summary")
	assert.Contains(t, got, "Record: 2W-1L (67% WR) across 3 games")
	assert.Contains(t, got, "KDA: 3.3/3.0/3.3")
}

func TestSummarizeNotes(t *testing.T) {
	notes := "laning went well\ndied twice to ganks\nneed to ward river more"
	got := SummarizeNotes(notes)
	assert.Contains(t, got, "Strengths: laning went well")
	assert.Contains(t, got, "Areas to improve: died twice to ganks")
	assert.Contains(t, got, "Action items: need to ward river more")

	assert.Equal(t, "No notes to summarize.", SummarizeNotes("  \n "))
	assert.Equal(t, "Keep practicing and learning from each game!", SummarizeNotes("queued up"))
}

func TestDailyNarrative(t *testing.T) {
	bucket := DayBucket{
		Rollup: Rollup{Games: 2, Wins: 1, Losses: 1, WinRate: 50},
		Notes:  "played well early\nbig mistake at baron",
	}
	got := DailyNarrative(bucket)
	assert.Contains(t, got, "Played 2 games: 1W-1L (50% WR)")
	assert.Contains(t, got, "strong performances")
	assert.Contains(t, got, "areas for improvement")

	one := DailyNarrative(DayBucket{Rollup: Rollup{Games: 1, Wins: 1, WinRate: 100}})
	assert.Contains(t, one, "Played 1 game: 1W-0L (100% WR)")
}
