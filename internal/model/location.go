package model

import "time"

// Location represents a physical site or floor owned by a tenant.
type Location struct {
	ID           int64  `gorm:"primaryKey" json:"id"`
	TenantID     int64  `gorm:"index;not null" json:"tenantId"`
	Name         string `gorm:"size:256;not null" json:"name"`
	Address      string `gorm:"size:512" json:"address,omitempty"`
	Building     string `gorm:"size:256" json:"building,omitempty"`
	FloorNumber  *int   `json:"floorNumber,omitempty"`
	CanvasWidth  float64 `gorm:"not null" json:"canvasWidth"`
	CanvasHeight float64 `gorm:"not null" json:"canvasHeight"`
	CreatedAt    time.Time `gorm:"not null" json:"-"`
	UpdatedAt    time.Time `gorm:"not null" json:"-"`

	// Associations
	Rooms []Room `gorm:"foreignKey:LocationID" json:"-"`
}
