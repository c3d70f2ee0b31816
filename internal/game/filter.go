package game

import (
	"context"
	"strings"
)

// Filter narrows the record set. Zero values (and "all" for Role and
// MatchCategory) mean "no constraint". Limit keeps the most recent N after
// ordering.
type Filter struct {
	Role             string
	TrackedChampion  string
	OpposingChampion string
	MatchCategory    string
	Limit            int
}

type predicate func(*GameRecord) bool

func matchRole(role string) predicate {
	return func(g *GameRecord) bool { return g.Role == role }
}

func matchCategory(category string) predicate {
	return func(g *GameRecord) bool { return g.MatchCategory == category }
}

// matchChampionInSlots tests whether any slot live for the record's own
// role on the given side holds the champion. Case-sensitive exact match on
// the stored value.
func matchChampionInSlots(side Side, champion string) predicate {
	return func(g *GameRecord) bool {
		slots, err := SideSlots(Role(g.Role), side)
		if err != nil {
			return false
		}
		for _, s := range slots {
			if g.SlotValue(s.Name) == champion {
				return true
			}
		}
		return false
	}
}

func (f Filter) predicates() []predicate {
	var ps []predicate
	// role and category are stored normalized, so filter values get the
	// same treatment; champion matching stays case-sensitive
	role := strings.ToLower(strings.TrimSpace(f.Role))
	category := strings.ToLower(strings.TrimSpace(f.MatchCategory))
	if role != "" && role != "all" {
		ps = append(ps, matchRole(role))
	}
	if f.TrackedChampion != "" {
		ps = append(ps, matchChampionInSlots(SideMine, f.TrackedChampion))
	}
	if f.OpposingChampion != "" {
		ps = append(ps, matchChampionInSlots(SideEnemy, f.OpposingChampion))
	}
	if category != "" && category != "all" {
		ps = append(ps, matchCategory(category))
	}
	return ps
}

// ApplyFilter keeps the records matching every predicate, preserving input
// order, then truncates to Limit.
func ApplyFilter(records []GameRecord, f Filter) []GameRecord {
	ps := f.predicates()
	out := make([]GameRecord, 0, len(records))
	for i := range records {
		keep := true
		for _, p := range ps {
			if !p(&records[i]) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, records[i])
		}
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

// Query is the read path over the record store: a filtered, newest-first,
// side-effect-free view. Identical inputs over an unchanged store yield an
// identically ordered result.
type Query struct {
	repo *Repo
}

func NewQuery(repo *Repo) *Query {
	return &Query{repo: repo}
}

func (q *Query) Records(ctx context.Context, f Filter) ([]GameRecord, error) {
	all, err := q.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return ApplyFilter(all, f), nil
}
