package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(kills, deaths, assists int, win bool) GameRecord {
	return GameRecord{
		Role:              "adc",
		MyADC:             strptr("Jinx"),
		MySupport:         strptr("Thresh"),
		EnemyADC:          strptr("Caitlyn"),
		EnemySupport:      strptr("Lux"),
		Kills:             kills,
		Deaths:            deaths,
		Assists:           assists,
		KillParticipation: 50,
		CSPerMin:          7,
		Win:               win,
		OccurredOn:        DayOf(time.Now()),
	}
}

func TestAggregate_EmptyIsZeroValued(t *testing.T) {
	r := Aggregate(nil)
	assert.Equal(t, 0, r.Games)
	// zero-games policy: win rate is 0, never NaN or an error
	assert.Equal(t, 0, r.WinRate)
	assert.Zero(t, r.AvgKDA)
	assert.Zero(t, r.AvgCSPerMin)
}

func TestAggregate_KDAZeroDeathRule(t *testing.T) {
	// deaths=0: KDA is kills+assists, by policy
	r := Aggregate([]GameRecord{rec(5, 0, 10, true)})
	assert.InDelta(t, 15.00, r.AvgKDA, 1e-9)

	r = Aggregate([]GameRecord{rec(5, 2, 10, true)})
	assert.InDelta(t, 7.50, r.AvgKDA, 1e-9)
}

func TestAggregate_JinxScenario(t *testing.T) {
	records := []GameRecord{
		rec(5, 5, 5, true),
		rec(2, 0, 2, true),
		rec(3, 4, 3, false),
	}
	r := Aggregate(records)

	assert.Equal(t, 3, r.Games)
	assert.Equal(t, 2, r.Wins)
	assert.Equal(t, 67, r.WinRate)
	// totals 10/9/10 -> (10+10)/9 = 2.22
	assert.InDelta(t, 2.22, r.AvgKDA, 1e-9)
	assert.InDelta(t, 3.3, r.AvgKills, 1e-9)
	assert.InDelta(t, 3.0, r.AvgDeaths, 1e-9)
	assert.InDelta(t, 3.3, r.AvgAssists, 1e-9)
}

func TestDailyBuckets_GroupingAndOrder(t *testing.T) {
	day1 := time.Date(2025, 3, 1, 0, 0, 0, 0, statsLocation)
	day2 := time.Date(2025, 3, 2, 0, 0, 0, 0, statsLocation)

	a := rec(1, 1, 1, true)
	a.OccurredOn = day2
	b := rec(2, 2, 2, false)
	b.OccurredOn = day1
	c := rec(3, 3, 3, true)
	c.OccurredOn = day1
	c.Notes = strptr("played well, should practice csing")

	buckets := DailyBuckets([]GameRecord{a, b, c})
	require.Len(t, buckets, 2)

	// chronological ascending for charting
	assert.Equal(t, "2025-03-01", buckets[0].Date)
	assert.Equal(t, "2025-03-02", buckets[1].Date)

	assert.Equal(t, 2, buckets[0].Games)
	assert.Equal(t, 50, buckets[0].WinRate)
	assert.Contains(t, buckets[0].Notes, "practice csing")

	recent := RecentDays([]GameRecord{a, b, c}, 7)
	require.Len(t, recent, 2)
	assert.Equal(t, "2025-03-02", recent[0].Date)
}

func TestDailyBuckets_TimezonePinned(t *testing.T) {
	// 2025-03-02 02:00 UTC is still 2025-03-01 in the stats timezone;
	// bucketing must not depend on the server's locale.
	g := rec(1, 1, 1, true)
	g.OccurredOn = time.Date(2025, 3, 2, 2, 0, 0, 0, time.UTC)

	buckets := DailyBuckets([]GameRecord{g})
	require.Len(t, buckets, 1)
	assert.Equal(t, "2025-03-01", buckets[0].Date)
}

func TestLeaderboard_OrderingAndTies(t *testing.T) {
	var records []GameRecord
	add := func(champ string, n int) {
		for i := 0; i < n; i++ {
			g := rec(2, 1, 3, i%2 == 0)
			g.MyADC = strptr(champ)
			records = append(records, g)
		}
	}
	add("Ashe", 5)
	add("Caitlyn", 3)
	add("Jinx", 3)

	rows := Leaderboard(records, LeaderboardSize)
	require.Len(t, rows, 3)

	// most games first
	assert.Equal(t, "Ashe", rows[0].Champion)
	assert.Equal(t, 5, rows[0].Games)

	// ties broken alphabetically
	assert.Equal(t, "Caitlyn", rows[1].Champion)
	assert.Equal(t, "Jinx", rows[2].Champion)
}

func TestLeaderboard_TruncatesAndUsesTrackedSlot(t *testing.T) {
	var records []GameRecord
	for i := 0; i < 12; i++ {
		g := rec(1, 1, 1, true)
		g.MyADC = strptr(string(rune('A' + i)))
		records = append(records, g)
	}
	rows := Leaderboard(records, LeaderboardSize)
	assert.Len(t, rows, LeaderboardSize)

	// support record: tracked champion is my_support, not my_adc
	sup := GameRecord{
		Role:      "support",
		MySupport: strptr("Thresh"),
		MyADC:     strptr("Jinx"),
		Win:       true,
	}
	rows = Leaderboard([]GameRecord{sup}, LeaderboardSize)
	require.Len(t, rows, 1)
	assert.Equal(t, "Thresh", rows[0].Champion)
}

func TestDayOf(t *testing.T) {
	ts := time.Date(2025, 7, 4, 23, 30, 0, 0, statsLocation)
	day := DayOf(ts)
	assert.Equal(t, "2025-07-04", day.Format("2006-01-02"))
	assert.Equal(t, 0, day.Hour())
}
