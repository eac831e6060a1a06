// Package suggest talks to the external seating-advice service. The service
// is opaque: it receives a serialized snapshot of the current pair graph and
// returns ranked swap suggestions. Nothing here validates or re-scores the
// advice; that stays with the caller.
package suggest

import "context"

// SnapshotDesk is one desk as presented to the advice service.
type SnapshotDesk struct {
	DeskID     int64  `json:"deskId"`
	Label      string `json:"label"`
	RoomName   string `json:"roomName"`
	MemberID   *int64 `json:"memberId,omitempty"`
	MemberName string `json:"memberName,omitempty"`
}

// SnapshotPair is one scored pair with its breakdown.
type SnapshotPair struct {
	DeskA    int64              `json:"deskA"`
	DeskB    int64              `json:"deskB"`
	PersonA  string             `json:"personA"`
	PersonB  string             `json:"personB"`
	Distance float64            `json:"distance"`
	Overall  int                `json:"overall"`
	Level    string             `json:"level"`
	Factors  map[string]float64 `json:"factors"`
}

// Snapshot is the full payload handed to the advice service.
type Snapshot struct {
	LocationID    int64          `json:"locationId"`
	LocationName  string         `json:"locationName"`
	GlobalAverage float64        `json:"globalAverage"`
	Desks         []SnapshotDesk `json:"desks"`
	Pairs         []SnapshotPair `json:"pairs"`
}

// Suggestion is one ranked swap proposal from the service.
type Suggestion struct {
	PersonA             string  `json:"personA"`
	DeskA               int64   `json:"deskA"`
	PersonB             string  `json:"personB"`
	DeskB               int64   `json:"deskB"`
	Reason              string  `json:"reason"`
	ExpectedImprovement float64 `json:"expectedImprovement"`
}

// Advice is the service's full answer.
type Advice struct {
	Assessment  string       `json:"assessment"`
	Suggestions []Suggestion `json:"suggestions"`
}

// Suggester is the capability interface for the advice service, so handlers
// and tests never depend on a specific provider.
type Suggester interface {
	Suggest(ctx context.Context, snapshot Snapshot) (*Advice, error)
}
