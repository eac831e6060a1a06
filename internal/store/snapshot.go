package store

import (
	"spacesync-backend/internal/model"
	"spacesync-backend/internal/proximity"
)

// SnapshotRooms maps persisted rooms into the engine's room snapshots.
func SnapshotRooms(rooms []model.Room) []proximity.Room {
	out := make([]proximity.Room, len(rooms))
	for i, r := range rooms {
		out[i] = proximity.Room{
			ID:     r.ID,
			Name:   r.Name,
			X:      r.X,
			Y:      r.Y,
			Width:  r.Width,
			Height: r.Height,
		}
	}
	return out
}

// SnapshotDesks maps persisted desks into the engine's desk snapshots.
func SnapshotDesks(desks []model.Desk) []proximity.Desk {
	out := make([]proximity.Desk, len(desks))
	for i, d := range desks {
		out[i] = proximity.Desk{
			ID:       d.ID,
			RoomID:   d.RoomID,
			Label:    d.Label,
			X:        d.X,
			Y:        d.Y,
			MemberID: d.AssignedMemberID,
		}
	}
	return out
}

// AssignedMemberIDs collects the distinct member ids occupying the desks.
func AssignedMemberIDs(desks []model.Desk) []int64 {
	seen := make(map[int64]bool, len(desks))
	ids := make([]int64, 0, len(desks))
	for _, d := range desks {
		if d.AssignedMemberID == nil || seen[*d.AssignedMemberID] {
			continue
		}
		seen[*d.AssignedMemberID] = true
		ids = append(ids, *d.AssignedMemberID)
	}
	return ids
}
