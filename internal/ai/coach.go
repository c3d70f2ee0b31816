package ai

import (
	"context"
	"fmt"
	"strings"

	"rankedlog/internal/game"
)

const championSystemPrompt = `You are a League of Legends coach providing an overall performance summary for a player on a specific champion. Analyze their games and provide a 150-200 word summary covering:
- Overall performance trends and win rate context
- Key strengths they've demonstrated
- Common mistakes or patterns to improve
- Specific actionable advice for this champion

Use plain text with simple bullet points (dashes, not asterisks). Be concise and actionable.`

const noteSystemPrompt = `You are a League of Legends coach. Summarize the player's post-game notes in 2-4 short lines: what went well, what to fix, and one concrete practice goal. Plain text only.`

// ChampionCoach turns a champion's record set into a coaching narrative via
// a chat provider. It implements game.Summarizer.
type ChampionCoach struct {
	Provider Provider
}

func (c *ChampionCoach) Summarize(ctx context.Context, champion string, records []game.GameRecord) (string, error) {
	if c.Provider == nil {
		return "", game.ErrCollaboratorUnavailable
	}

	r := game.Aggregate(records)

	var b strings.Builder
	fmt.Fprintf(&b, "Champion: %s\n", champion)
	fmt.Fprintf(&b, "Record: %dW-%dL (%d%% WR)\n", r.Wins, r.Losses, r.WinRate)
	fmt.Fprintf(&b, "Total games: %d\n\n", r.Games)

	for i := range records {
		g := &records[i]
		result := "Lost"
		if g.Win {
			result = "Won"
		}
		notes := "No notes"
		if g.Notes != nil && *g.Notes != "" {
			notes = *g.Notes
		}
		fmt.Fprintf(&b, "Game %d (%s): KDA %d/%d/%d, KP %.0f%%\nNotes: %s\n",
			i+1, result, g.Kills, g.Deaths, g.Assists, g.KillParticipation, notes)
		if g.AISummary != nil && *g.AISummary != "" {
			fmt.Fprintf(&b, "AI Summary: %s\n", *g.AISummary)
		}
		b.WriteString("\n")
	}

	out, err := c.Provider.Chat(ctx, []Message{
		{Role: "system", Content: championSystemPrompt},
		{Role: "user", Content: strings.TrimSpace(b.String())},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", game.ErrCollaboratorUnavailable, err)
	}
	if strings.TrimSpace(out) == "" {
		return "", game.ErrCollaboratorUnavailable
	}
	return out, nil
}

// NoteCoach produces the one-time note summary stored on a record.
type NoteCoach struct {
	Provider Provider
}

func (c *NoteCoach) SummarizeNotes(ctx context.Context, notes string) (string, error) {
	if c.Provider == nil {
		return "", game.ErrCollaboratorUnavailable
	}
	out, err := c.Provider.Chat(ctx, []Message{
		{Role: "system", Content: noteSystemPrompt},
		{Role: "user", Content: notes},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", game.ErrCollaboratorUnavailable, err)
	}
	if strings.TrimSpace(out) == "" {
		return "", game.ErrCollaboratorUnavailable
	}
	return out, nil
}
