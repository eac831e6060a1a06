package proximity

import (
	"math"
	"sort"
)

const (
	// flowNoiseFloor drops team-derived effective percentages below 3; a
	// 1-2% share of a team's work is not a seating signal.
	flowNoiseFloor = 3.0

	// distantAlertMinPercentage is the strongest-direction collaboration
	// percentage at which a far-apart pair becomes an alert.
	distantAlertMinPercentage = 20.0
)

// candidate is one observed directional declaration before merging.
type candidate struct {
	from, to int64
	pct      float64
	affinity int
}

// BuildFlowConnections derives the declared-collaboration graph over the
// seated members, independent of physical adjacency. Directional links are
// merged per unordered member pair; a direction observed more than once
// (direct link plus team breakdown) keeps the max percentage rather than the
// sum. Connections where both desks sit beyond the adjacency threshold and
// the strongest direction is at least 20% are flagged as distant
// collaborators.
func BuildFlowConnections(desks []Desk, rooms []Room, profiles map[int64]PersonProfile) []FlowConnection {
	idx := RoomIndex(rooms)

	// Seated members with a resolvable desk position.
	deskOf := make(map[int64]Desk)
	for _, d := range desks {
		if d.MemberID == nil {
			continue
		}
		if _, ok := idx[d.RoomID]; !ok {
			continue
		}
		if _, ok := profiles[*d.MemberID]; !ok {
			continue
		}
		deskOf[*d.MemberID] = d
	}

	var cands []candidate
	for _, d := range desks {
		if d.MemberID == nil {
			continue
		}
		from := *d.MemberID
		profile, ok := profiles[from]
		if !ok {
			continue
		}
		if _, ok := deskOf[from]; !ok {
			continue
		}
		for _, link := range profile.Links {
			cands = append(cands, expandLink(from, link, deskOf)...)
		}
	}

	merged := make(map[[2]int64]*FlowConnection)
	for _, c := range cands {
		lo, hi := c.from, c.to
		if lo > hi {
			lo, hi = hi, lo
		}
		key := [2]int64{lo, hi}
		conn, ok := merged[key]
		if !ok {
			conn = &FlowConnection{
				MemberA: lo,
				MemberB: hi,
				DeskA:   deskOf[lo].ID,
				DeskB:   deskOf[hi].ID,
			}
			merged[key] = conn
		}
		dir := &conn.AToB
		if c.from == hi {
			dir = &conn.BToA
		}
		if *dir == nil || c.pct > (*dir).Percentage ||
			(c.pct == (*dir).Percentage && c.affinity > (*dir).Affinity) {
			*dir = &FlowDirection{Percentage: c.pct, Affinity: c.affinity}
		}
	}

	out := make([]FlowConnection, 0, len(merged))
	for _, conn := range merged {
		conn.Bidirectional = conn.AToB != nil && conn.BToA != nil
		if dist, ok := DeskDistance(deskOf[conn.MemberA], deskOf[conn.MemberB], idx); ok {
			conn.Distance = dist
			conn.DistantAlert = strongestPercentage(*conn) >= distantAlertMinPercentage && dist > AdjacencyThreshold
		}
		out = append(out, *conn)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].MemberA != out[j].MemberA {
			return out[i].MemberA < out[j].MemberA
		}
		return out[i].MemberB < out[j].MemberB
	})
	return out
}

// expandLink turns one declared link into directional candidates toward
// seated members. Team links fan out through the member breakdown with
// effective percentage round(link.pct * share / 100); entries under the
// noise floor are dropped.
func expandLink(from int64, link CollaborationLink, deskOf map[int64]Desk) []candidate {
	var out []candidate
	switch link.Target {
	case LinkTargetMember:
		if link.TargetID == from {
			return nil
		}
		if _, ok := deskOf[link.TargetID]; !ok {
			return nil
		}
		out = append(out, candidate{from: from, to: link.TargetID, pct: link.Percentage, affinity: link.Affinity})
	case LinkTargetTeam:
		for _, m := range link.Members {
			if m.MemberID == from {
				continue
			}
			if _, ok := deskOf[m.MemberID]; !ok {
				continue
			}
			eff := math.Round(link.Percentage * m.SharePercent / 100)
			if eff < flowNoiseFloor {
				continue
			}
			aff := link.Affinity
			if m.Affinity != nil {
				aff = *m.Affinity
			}
			out = append(out, candidate{from: from, to: m.MemberID, pct: eff, affinity: aff})
		}
	}
	return out
}

func strongestPercentage(c FlowConnection) float64 {
	var p float64
	if c.AToB != nil {
		p = c.AToB.Percentage
	}
	if c.BToA != nil && c.BToA.Percentage > p {
		p = c.BToA.Percentage
	}
	return p
}
