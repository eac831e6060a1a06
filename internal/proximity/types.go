// Package proximity implements the desk-adjacency and collaboration
// compatibility scoring engine behind the SpaceSync planner. Everything in
// this package is a pure function over caller-supplied snapshots: no I/O, no
// shared state, deterministic output for identical input.
package proximity

import "time"

// Room is the snapshot of a room needed for geometry: its offset within the
// location's floor plan.
type Room struct {
	ID     int64
	Name   string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Desk is the snapshot of a desk: room-relative coordinates plus the
// occupant, if any.
type Desk struct {
	ID       int64
	RoomID   int64
	Label    string
	X        float64
	Y        float64
	MemberID *int64
}

// RIASEC is a six-dimension interest-profile vector, each dimension a 0-100
// intensity.
type RIASEC struct {
	Realistic     float64
	Investigative float64
	Artistic      float64
	Social        float64
	Enterprising  float64
	Conventional  float64
}

// Link target types mirror the store's collaboration-link records.
type LinkTarget string

const (
	LinkTargetMember LinkTarget = "member"
	LinkTargetTeam   LinkTarget = "team"
)

// TeamMemberShare is one entry of a team link's member breakdown.
type TeamMemberShare struct {
	MemberID     int64
	SharePercent float64
	Affinity     *int // overrides the link affinity when set
}

// CollaborationLink is a declared relationship to a member or a team.
// Percentage is how much of the declarer's work involves the target (0-100);
// Affinity is a 1-5 personal rating. Team links carry the member breakdown.
type CollaborationLink struct {
	Target     LinkTarget
	TargetID   int64
	Percentage float64
	Affinity   int
	Members    []TeamMemberShare
}

// PersonProfile is the closed value object the engine scores. It is
// assembled once at the store boundary; every field except MemberID and the
// name parts is optional and the scorer degrades gracefully when data is
// missing.
type PersonProfile struct {
	MemberID    int64
	FirstName   string
	LastName    string
	JobTitle    string
	RIASEC      *RIASEC
	SoftSkills  []string
	Values      []string
	RiskFactors []string
	BirthDate   *time.Time
	Links       []CollaborationLink
}

// DisplayName returns the profile's human-readable name.
func (p PersonProfile) DisplayName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// ScoredPair is one adjacent desk pair with its compatibility result.
type ScoredPair struct {
	DeskA    Desk
	DeskB    Desk
	PersonA  PersonProfile
	PersonB  PersonProfile
	Distance float64
	Result   Result
}

// DeskStats aggregates a desk's pair scores. Desks with no adjacent scored
// pair never appear in the stats map; absence and a zero score are distinct.
type DeskStats struct {
	AverageScore int
	PairCount    int
}

// SwapResult is the outcome of a hypothetical assignment exchange. NoOp is
// set when the swap could not be evaluated (unassigned desk, unknown member,
// same desk twice); callers should disable "apply" in that case.
type SwapResult struct {
	Pairs      []ScoredPair
	NewAverage float64
	Delta      float64
	NoOp       bool
}

// FlowDirection is one direction of a declared collaboration relationship.
type FlowDirection struct {
	Percentage float64
	Affinity   int
}

// FlowConnection merges the declared relationships between two members,
// keyed by the unordered member pair (MemberA < MemberB). Either direction
// may be absent; Bidirectional is set when both were declared. DistantAlert
// flags heavy collaborators seated beyond the adjacency threshold.
type FlowConnection struct {
	MemberA       int64
	MemberB       int64
	DeskA         int64
	DeskB         int64
	AToB          *FlowDirection
	BToA          *FlowDirection
	Bidirectional bool
	Distance      float64
	DistantAlert  bool
}
