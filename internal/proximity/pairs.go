package proximity

import (
	"math"
	"sort"
)

// BuildPairs enumerates all unordered pairs of assigned desks whose occupants
// have a known profile, keeps the ones within the adjacency threshold, and
// scores each. Desks with a missing room or profile are skipped, never an
// error. The result is sorted by overall score descending; ties keep
// enumeration order so output is reproducible.
func BuildPairs(desks []Desk, rooms []Room, profiles map[int64]PersonProfile) []ScoredPair {
	idx := RoomIndex(rooms)

	eligible := make([]Desk, 0, len(desks))
	for _, d := range desks {
		if d.MemberID == nil {
			continue
		}
		if _, ok := profiles[*d.MemberID]; !ok {
			continue
		}
		if _, ok := idx[d.RoomID]; !ok {
			continue
		}
		eligible = append(eligible, d)
	}

	pairs := make([]ScoredPair, 0)
	for i := 0; i < len(eligible); i++ {
		for j := i + 1; j < len(eligible); j++ {
			a, b := eligible[i], eligible[j]
			dist, ok := DeskDistance(a, b, idx)
			if !ok || !IsAdjacent(dist) {
				continue
			}
			pairs = append(pairs, ScoredPair{
				DeskA:    a,
				DeskB:    b,
				PersonA:  profiles[*a.MemberID],
				PersonB:  profiles[*b.MemberID],
				Distance: dist,
				Result:   Score(profiles[*a.MemberID], profiles[*b.MemberID]),
			})
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Result.Overall > pairs[j].Result.Overall
	})
	return pairs
}

// DeskScores aggregates per-desk averages over the scored pairs. Desks that
// appear in no pair are absent from the map.
func DeskScores(pairs []ScoredPair) map[int64]DeskStats {
	sums := make(map[int64]int)
	counts := make(map[int64]int)
	for _, p := range pairs {
		sums[p.DeskA.ID] += p.Result.Overall
		counts[p.DeskA.ID]++
		sums[p.DeskB.ID] += p.Result.Overall
		counts[p.DeskB.ID]++
	}

	stats := make(map[int64]DeskStats, len(counts))
	for id, n := range counts {
		stats[id] = DeskStats{
			AverageScore: int(math.Round(float64(sums[id]) / float64(n))),
			PairCount:    n,
		}
	}
	return stats
}

// GlobalAverage is the arithmetic mean of all pair scores, defined as 0 when
// there are no pairs so downstream display code stays total.
func GlobalAverage(pairs []ScoredPair) float64 {
	if len(pairs) == 0 {
		return 0
	}
	var sum int
	for _, p := range pairs {
		sum += p.Result.Overall
	}
	return float64(sum) / float64(len(pairs))
}
