package model

import "time"

// Room type enumeration.
const (
	RoomTypeOffice  = "office"
	RoomTypeMeeting = "meeting"
	RoomTypeCommon  = "common"
	RoomTypeOther   = "other"
)

// Room represents a rectangular area within a location's floor plan.
// X and Y are the top-left corner in location-space.
type Room struct {
	ID         int64   `gorm:"primaryKey" json:"id"`
	LocationID int64   `gorm:"index;not null" json:"locationId"`
	Name       string  `gorm:"size:256;not null" json:"name"`
	X          float64 `gorm:"not null" json:"x"`
	Y          float64 `gorm:"not null" json:"y"`
	Width      float64 `gorm:"not null" json:"width"`
	Height     float64 `gorm:"not null" json:"height"`
	Type       string  `gorm:"size:32;not null;default:office" json:"type"`
	Color      string  `gorm:"size:32" json:"color,omitempty"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`

	// Associations
	Location Location `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Desks    []Desk   `gorm:"foreignKey:RoomID" json:"-"`
}
