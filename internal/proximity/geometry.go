package proximity

import "math"

const (
	// DeskSize is the fixed visual footprint of a desk in floor-plan units.
	// A desk's center is its top-left corner plus half this in both axes.
	DeskSize = 32.0

	// AdjacencyThreshold is the hard center-to-center cutoff for scoring a
	// desk pair. The boundary is inclusive: exactly 200 units is adjacent.
	AdjacencyThreshold = 200.0
)

// Point is an absolute position in location-space.
type Point struct {
	X float64
	Y float64
}

// AbsolutePosition converts a desk's room-relative coordinates into the
// absolute top-left position on the location's floor plan.
func AbsolutePosition(d Desk, r Room) Point {
	return Point{X: r.X + d.X, Y: r.Y + d.Y}
}

// center returns the desk's center point in location-space.
func center(d Desk, r Room) Point {
	p := AbsolutePosition(d, r)
	return Point{X: p.X + DeskSize/2, Y: p.Y + DeskSize/2}
}

// Distance computes the Euclidean center-to-center distance between two
// desks, regardless of which rooms they are in.
func Distance(a Desk, roomA Room, b Desk, roomB Room) float64 {
	ca := center(a, roomA)
	cb := center(b, roomB)
	return math.Hypot(ca.X-cb.X, ca.Y-cb.Y)
}

// DeskDistance resolves both desks' rooms from the index and computes their
// distance. The second return value is false when either room is missing;
// such pairs are skipped by callers rather than treated as an error.
func DeskDistance(a, b Desk, rooms map[int64]Room) (float64, bool) {
	roomA, okA := rooms[a.RoomID]
	roomB, okB := rooms[b.RoomID]
	if !okA || !okB {
		return 0, false
	}
	return Distance(a, roomA, b, roomB), true
}

// IsAdjacent reports whether a pair at the given distance is eligible for
// scoring. Hard cutoff, not a decay: one unit past the threshold is never
// scored.
func IsAdjacent(distance float64) bool {
	return distance <= AdjacencyThreshold
}

// RoomIndex builds the id-keyed room lookup used by the pair builder and
// flow extractor.
func RoomIndex(rooms []Room) map[int64]Room {
	idx := make(map[int64]Room, len(rooms))
	for _, r := range rooms {
		idx[r.ID] = r
	}
	return idx
}
