package model

// Collaboration link target types.
const (
	LinkTargetMember = "member"
	LinkTargetTeam   = "team"
)

// CollaborationLink is a declared working relationship from a person to
// another member or to a team. Percentage is "how much of my work involves
// this target" (0-100); Affinity is a personal rating 1-5.
type CollaborationLink struct {
	ID         int64   `gorm:"autoIncrement;primaryKey"`
	PersonID   int64   `gorm:"index;not null"`
	TargetType string  `gorm:"size:16;not null"`
	TargetID   int64   `gorm:"not null"`
	Percentage float64 `gorm:"not null"`
	Affinity   int     `gorm:"not null"`
}

// TeamMember is one entry of a team's member breakdown: the member's share
// of the team's work and an optional per-member affinity override.
type TeamMember struct {
	ID           int64   `gorm:"autoIncrement;primaryKey"`
	TeamID       int64   `gorm:"index;not null"`
	PersonID     int64   `gorm:"index;not null"`
	SharePercent float64 `gorm:"not null"`
	Affinity     *int
}
