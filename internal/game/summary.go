package game

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Summarizer is the external narrative collaborator. Implementations may
// fail (network, quota, not configured); the cache recovers locally.
type Summarizer interface {
	Summarize(ctx context.Context, champion string, records []GameRecord) (string, error)
}

// SummaryStore persists champion summary cache entries: at most one per
// champion, overwritten on recomputation.
type SummaryStore interface {
	// Get returns the entry for a champion, or (nil, nil) when absent.
	Get(ctx context.Context, champion string) (*ChampionSummary, error)
	// Put inserts or overwrites the champion's entry.
	Put(ctx context.Context, entry *ChampionSummary) error
}

// Fingerprint canonicalizes a record-id set: ids sorted ascending, joined
// with commas. Order-independent and sensitive to any set change.
func Fingerprint(records []GameRecord) string {
	ids := make([]uint64, len(records))
	for i := range records {
		ids[i] = records[i].ID
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(id, 10)
	}
	return strings.Join(parts, ",")
}

// SummaryService is the per-champion cache state machine. A cached entry is
// valid only while its fingerprint matches the current record-id set;
// anything else triggers recomputation through the collaborator.
//
// Two concurrent callers that both see a stale fingerprint may both invoke
// the collaborator and both write; the contract is eventual consistency
// with the latest write, not exactly-once computation.
type SummaryService struct {
	store      SummaryStore
	summarizer Summarizer
}

// NewSummaryService wires the cache. A nil summarizer means no collaborator
// is configured; every miss is then served by the deterministic fallback.
func NewSummaryService(store SummaryStore, summarizer Summarizer) *SummaryService {
	return &SummaryService{store: store, summarizer: summarizer}
}

// GetOrCompute returns the champion summary for the given record set and
// whether it was served from cache. Collaborator failures degrade to the
// fallback narrative, which is returned uncached so the next call retries;
// caching a degraded summary would pin it forever.
func (s *SummaryService) GetOrCompute(ctx context.Context, champion string, records []GameRecord) (summary string, cached bool, err error) {
	fp := Fingerprint(records)

	entry, err := s.store.Get(ctx, champion)
	if err != nil {
		return "", false, err
	}
	if entry != nil && entry.Fingerprint == fp {
		return entry.Summary, true, nil
	}

	fresh, genErr := s.generate(ctx, champion, records)
	if genErr != nil {
		return FallbackChampionSummary(champion, records), false, nil
	}

	if err := s.store.Put(ctx, &ChampionSummary{
		Champion:    champion,
		Summary:     fresh,
		Fingerprint: fp,
		UpdatedAt:   time.Now(),
	}); err != nil {
		return "", false, err
	}
	return fresh, false, nil
}

func (s *SummaryService) generate(ctx context.Context, champion string, records []GameRecord) (string, error) {
	if s.summarizer == nil {
		return "", ErrCollaboratorUnavailable
	}
	return s.summarizer.Summarize(ctx, champion, records)
}
