package game

import (
	"fmt"
	"strings"
)

// Deterministic, locally computable narratives. These back every summary
// path when the external summarizer is unavailable, so they must not depend
// on anything but the record set itself.

// FallbackChampionSummary renders the win/loss tally and average stats for
// a champion. Served (and never cached) when the summarizer fails.
func FallbackChampionSummary(champion string, records []GameRecord) string {
	r := Aggregate(records)
	return fmt.Sprintf(
		"%s Performance Summary:\n\n"+
			"Record: %dW-%dL (%d%% WR) across %d games\n\n"+
			"Average Stats:\n"+
			"- KDA: %.1f/%.1f/%.1f\n"+
			"- Kill Participation: %.1f%%\n"+
			"- CS/min: %.1f\n\n"+
			"Keep reviewing your game notes to identify patterns and areas for improvement.",
		champion, r.Wins, r.Losses, r.WinRate, r.Games,
		r.AvgKills, r.AvgDeaths, r.AvgAssists, r.AvgKP, r.AvgCSPerMin,
	)
}

// SummarizeNotes extracts strengths, mistakes and action items from raw
// game notes by keyword. Used for the one-shot note summary when no
// provider is configured or the provider call fails.
func SummarizeNotes(notes string) string {
	var lines []string
	for _, line := range strings.Split(notes, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	if len(lines) == 0 {
		return "No notes to summarize."
	}

	firstMatching := func(words ...string) string {
		for _, line := range lines {
			lower := strings.ToLower(line)
			for _, w := range words {
				if strings.Contains(lower, w) {
					return line
				}
			}
		}
		return ""
	}

	positive := firstMatching("good", "well", "won", "outplayed")
	mistake := firstMatching("mistake", "died", "bad", "missed")
	action := firstMatching("need to", "should", "improve", "practice")

	var b strings.Builder
	if positive != "" {
		b.WriteString("Strengths: " + positive + "\n")
	}
	if mistake != "" {
		b.WriteString("Areas to improve: " + mistake + "\n")
	}
	if action != "" {
		b.WriteString("Action items: " + action)
	}
	if b.Len() == 0 {
		return "Keep practicing and learning from each game!"
	}
	return strings.TrimRight(b.String(), "\n")
}

// DailyNarrative renders a short summary of one day bucket: the tally line
// plus observations keyed off the day's combined notes.
func DailyNarrative(bucket DayBucket) string {
	plural := ""
	if bucket.Games != 1 {
		plural = "s"
	}
	out := fmt.Sprintf("Played %d game%s: %dW-%dL (%d%% WR)\n\n",
		bucket.Games, plural, bucket.Wins, bucket.Losses, bucket.WinRate)

	lower := strings.ToLower(bucket.Notes)
	if lower != "" {
		if strings.Contains(lower, "good") || strings.Contains(lower, "well") {
			out += "- Had some strong performances\n"
		}
		if strings.Contains(lower, "mistake") || strings.Contains(lower, "died") {
			out += "- Identified areas for improvement\n"
		}
		if strings.Contains(lower, "improve") || strings.Contains(lower, "practice") {
			out += "- Set practice goals\n"
		}
	}
	return strings.TrimRight(out, "\n")
}
