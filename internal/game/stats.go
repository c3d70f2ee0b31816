package game

import (
	"sort"
	"time"

	"rankedlog/internal/common"
)

// statsLocation pins day bucketing to one calendar, independent of the
// server's locale. Changing it re-buckets historical days.
var statsLocation = func() *time.Location {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		return time.FixedZone("PST", -8*60*60)
	}
	return loc
}()

// DayOf truncates a timestamp to midnight of its stats-timezone day.
func DayOf(t time.Time) time.Time {
	y, m, d := t.In(statsLocation).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, statsLocation)
}

// ParseDay parses a YYYY-MM-DD date as midnight in the stats timezone, so a
// submitted match date names that calendar day and never shifts across it.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, statsLocation)
}

// Rollup is the aggregate view of a record set. A zero Rollup is the
// defined result for an empty set: win rate is 0 by policy when no games
// were played, never NaN.
type Rollup struct {
	Games   int `json:"games"`
	Wins    int `json:"wins"`
	Losses  int `json:"losses"`
	WinRate int `json:"win_rate"`

	AvgKills    float64 `json:"avg_kills"`
	AvgDeaths   float64 `json:"avg_deaths"`
	AvgAssists  float64 `json:"avg_assists"`
	AvgKDA      float64 `json:"avg_kda"`
	AvgKP       float64 `json:"avg_kp"`
	AvgCSPerMin float64 `json:"avg_cs_per_min"`
}

// kda applies the zero-death rule: with no deaths the score is kills plus
// assists, not infinity. Deliberate, permanent policy.
func kda(kills, deaths, assists float64) float64 {
	if deaths == 0 {
		return kills + assists
	}
	return (kills + assists) / deaths
}

// Aggregate computes the overall rollup of a record list.
func Aggregate(records []GameRecord) Rollup {
	n := len(records)
	if n == 0 {
		return Rollup{}
	}

	var wins, kills, deaths, assists int
	var kp, cs float64
	for i := range records {
		g := &records[i]
		if g.Win {
			wins++
		}
		kills += g.Kills
		deaths += g.Deaths
		assists += g.Assists
		kp += g.KillParticipation
		cs += g.CSPerMin
	}

	fn := float64(n)
	avgKills := float64(kills) / fn
	avgDeaths := float64(deaths) / fn
	avgAssists := float64(assists) / fn

	return Rollup{
		Games:       n,
		Wins:        wins,
		Losses:      n - wins,
		WinRate:     common.RoundPercent(float64(wins) / fn),
		AvgKills:    common.Round1(avgKills),
		AvgDeaths:   common.Round1(avgDeaths),
		AvgAssists:  common.Round1(avgAssists),
		AvgKDA:      common.Round2(kda(avgKills, avgDeaths, avgAssists)),
		AvgKP:       common.Round1(kp / fn),
		AvgCSPerMin: common.Round1(cs / fn),
	}
}

// DayBucket is one calendar day's rollup plus the day's combined notes.
type DayBucket struct {
	Date string    `json:"date"` // YYYY-MM-DD in the stats timezone
	Day  time.Time `json:"-"`
	Rollup
	Notes string `json:"notes,omitempty"`
}

// DailyBuckets groups records by stats-timezone calendar day and rolls each
// day up, oldest day first (charting order).
func DailyBuckets(records []GameRecord) []DayBucket {
	byDay := map[string][]GameRecord{}
	dayTime := map[string]time.Time{}
	for i := range records {
		day := DayOf(records[i].OccurredOn)
		key := day.Format("2006-01-02")
		byDay[key] = append(byDay[key], records[i])
		dayTime[key] = day
	}

	out := make([]DayBucket, 0, len(byDay))
	for key, group := range byDay {
		var notes string
		for i := range group {
			if group[i].Notes == nil || *group[i].Notes == "" {
				continue
			}
			if notes != "" {
				notes += "\n\n"
			}
			notes += *group[i].Notes
		}
		out = append(out, DayBucket{
			Date:   key,
			Day:    dayTime[key],
			Rollup: Aggregate(group),
			Notes:  notes,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out
}

// RecentDays returns the newest n day buckets, newest first.
func RecentDays(records []GameRecord, n int) []DayBucket {
	asc := DailyBuckets(records)
	out := make([]DayBucket, 0, n)
	for i := len(asc) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, asc[i])
	}
	return out
}

// LeaderboardSize caps the champion leaderboard.
const LeaderboardSize = 10

// ChampionRow is one leaderboard line for a tracked champion.
type ChampionRow struct {
	Champion string `json:"champion"`
	Games    int    `json:"games"`
	Wins     int    `json:"wins"`
	WinRate  int    `json:"win_rate"`

	AvgKDA      float64 `json:"avg_kda"`
	AvgCSPerMin float64 `json:"avg_cs_per_min"`
	AvgKP       float64 `json:"avg_kp"`
}

// Leaderboard groups records by the tracked player's champion, most played
// first, name ascending on ties, truncated to topN.
func Leaderboard(records []GameRecord, topN int) []ChampionRow {
	byChampion := map[string][]GameRecord{}
	for i := range records {
		champ := records[i].TrackedChampion()
		if champ == "" {
			continue
		}
		byChampion[champ] = append(byChampion[champ], records[i])
	}

	rows := make([]ChampionRow, 0, len(byChampion))
	for champ, group := range byChampion {
		r := Aggregate(group)
		rows = append(rows, ChampionRow{
			Champion:    champ,
			Games:       r.Games,
			Wins:        r.Wins,
			WinRate:     r.WinRate,
			AvgKDA:      r.AvgKDA,
			AvgCSPerMin: r.AvgCSPerMin,
			AvgKP:       r.AvgKP,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Games != rows[j].Games {
			return rows[i].Games > rows[j].Games
		}
		return rows[i].Champion < rows[j].Champion
	})
	if topN > 0 && len(rows) > topN {
		rows = rows[:topN]
	}
	return rows
}
