package model

import "time"

// Desk represents a workstation within a room. X and Y are relative to the
// owning room's top-left corner.
type Desk struct {
	ID               int64   `gorm:"primaryKey" json:"id"`
	RoomID           int64   `gorm:"index;not null" json:"roomId"`
	Label            string  `gorm:"size:64" json:"label"`
	X                float64 `gorm:"not null" json:"x"`
	Y                float64 `gorm:"not null" json:"y"`
	AssignedMemberID *int64  `gorm:"index" json:"assignedMemberId,omitempty"`
	AssignedRoleID   *int64  `json:"assignedRoleId,omitempty"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`

	// Associations
	Room Room `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
