package proximity

// SimulateSwap recomputes the full pair graph as if the occupants of two
// desks had exchanged places, and reports the new global average against the
// supplied baseline. The input slices are never mutated; applying the swap
// for real is the store's job.
//
// The simulation is total: when either desk is missing, unassigned, or held
// by an unknown member, or both ids name the same desk, it returns the
// unchanged graph with a zero delta and NoOp set.
func SimulateSwap(deskA, deskB int64, desks []Desk, rooms []Room, profiles map[int64]PersonProfile, baseline float64) SwapResult {
	ia, ib := -1, -1
	for i, d := range desks {
		switch d.ID {
		case deskA:
			ia = i
		case deskB:
			ib = i
		}
	}

	if noop := deskA == deskB || ia < 0 || ib < 0 ||
		!occupantKnown(desks, ia, profiles) || !occupantKnown(desks, ib, profiles); noop {
		pairs := BuildPairs(desks, rooms, profiles)
		return SwapResult{Pairs: pairs, NewAverage: GlobalAverage(pairs), Delta: 0, NoOp: true}
	}

	swapped := make([]Desk, len(desks))
	copy(swapped, desks)
	swapped[ia].MemberID, swapped[ib].MemberID = desks[ib].MemberID, desks[ia].MemberID

	pairs := BuildPairs(swapped, rooms, profiles)
	avg := GlobalAverage(pairs)
	return SwapResult{
		Pairs:      pairs,
		NewAverage: avg,
		Delta:      avg - baseline,
	}
}

func occupantKnown(desks []Desk, i int, profiles map[int64]PersonProfile) bool {
	if desks[i].MemberID == nil {
		return false
	}
	_, ok := profiles[*desks[i].MemberID]
	return ok
}
