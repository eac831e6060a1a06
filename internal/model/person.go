package model

import "time"

// Person represents a member of the tenant's workforce.
type Person struct {
	ID        int64      `gorm:"primaryKey"`
	TenantID  int64      `gorm:"index;not null"`
	FirstName string     `gorm:"size:128;not null"`
	LastName  string     `gorm:"size:128;not null"`
	JobTitle  string     `gorm:"size:256"`
	BirthDate *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PsychometricScore holds a person's six-dimension RIASEC intensity vector.
// Each dimension is a 0-100 intensity.
type PsychometricScore struct {
	PersonID      int64   `gorm:"primaryKey"`
	Realistic     float64 `gorm:"not null"`
	Investigative float64 `gorm:"not null"`
	Artistic      float64 `gorm:"not null"`
	Social        float64 `gorm:"not null"`
	Enterprising  float64 `gorm:"not null"`
	Conventional  float64 `gorm:"not null"`
	UpdatedAt     time.Time
}

// PersonTag kinds.
const (
	TagKindSoftSkill = "soft_skill"
	TagKindValue     = "value"
	TagKindRisk      = "risk"
)

// PersonTag is a single tag attached to a person: a soft skill, a primary
// value, or a risk factor, depending on Kind.
type PersonTag struct {
	ID       int64  `gorm:"autoIncrement;primaryKey"`
	PersonID int64  `gorm:"index;not null"`
	Kind     string `gorm:"size:32;not null"`
	Tag      string `gorm:"size:128;not null"`
}
