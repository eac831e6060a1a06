package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"spacesync-backend/internal/model"
	"spacesync-backend/internal/proximity"
)

func newTestStore(t *testing.T) (Store, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.Location{},
		&model.Room{},
		&model.Desk{},
		&model.Person{},
		&model.PsychometricScore{},
		&model.PersonTag{},
		&model.CollaborationLink{},
		&model.TeamMember{},
	)
	require.NoError(t, err)

	return NewGormStore(db), db
}

func seedFloor(t *testing.T, db *gorm.DB) (model.Location, model.Room) {
	loc := model.Location{TenantID: 1, Name: "HQ 3rd floor", CanvasWidth: 1200, CanvasHeight: 800}
	require.NoError(t, db.Create(&loc).Error)
	room := model.Room{LocationID: loc.ID, Name: "Engineering", X: 40, Y: 40, Width: 600, Height: 400, Type: model.RoomTypeOffice}
	require.NoError(t, db.Create(&room).Error)
	return loc, room
}

func TestListProfiles_Assembly(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()

	alice := model.Person{TenantID: 1, FirstName: "Alice", LastName: "Ngo", JobTitle: "Designer"}
	bob := model.Person{TenantID: 1, FirstName: "Bob", LastName: "Marsh"}
	require.NoError(t, db.Create(&alice).Error)
	require.NoError(t, db.Create(&bob).Error)

	require.NoError(t, db.Create(&model.PsychometricScore{
		PersonID: alice.ID, Realistic: 10, Investigative: 20, Artistic: 80, Social: 60, Enterprising: 30, Conventional: 15,
	}).Error)

	require.NoError(t, db.Create(&model.PersonTag{PersonID: alice.ID, Kind: model.TagKindSoftSkill, Tag: "empathetic"}).Error)
	require.NoError(t, db.Create(&model.PersonTag{PersonID: alice.ID, Kind: model.TagKindValue, Tag: "quiet-environment"}).Error)
	require.NoError(t, db.Create(&model.PersonTag{PersonID: alice.ID, Kind: model.TagKindRisk, Tag: "noise-sensitive"}).Error)

	five := 5
	require.NoError(t, db.Create(&model.CollaborationLink{
		PersonID: alice.ID, TargetType: model.LinkTargetMember, TargetID: bob.ID, Percentage: 35, Affinity: 4,
	}).Error)
	require.NoError(t, db.Create(&model.CollaborationLink{
		PersonID: alice.ID, TargetType: model.LinkTargetTeam, TargetID: 900, Percentage: 40, Affinity: 3,
	}).Error)
	require.NoError(t, db.Create(&model.TeamMember{TeamID: 900, PersonID: bob.ID, SharePercent: 70, Affinity: &five}).Error)

	profiles, err := s.ListProfiles(ctx, []int64{alice.ID, bob.ID})
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	ap := profiles[alice.ID]
	assert.Equal(t, "Alice Ngo", ap.DisplayName())
	assert.Equal(t, "Designer", ap.JobTitle)
	require.NotNil(t, ap.RIASEC)
	assert.Equal(t, 80.0, ap.RIASEC.Artistic)
	assert.Equal(t, []string{"empathetic"}, ap.SoftSkills)
	assert.Equal(t, []string{"quiet-environment"}, ap.Values)
	assert.Equal(t, []string{"noise-sensitive"}, ap.RiskFactors)

	require.Len(t, ap.Links, 2)
	assert.Equal(t, proximity.LinkTargetMember, ap.Links[0].Target)
	assert.Equal(t, bob.ID, ap.Links[0].TargetID)
	assert.Equal(t, proximity.LinkTargetTeam, ap.Links[1].Target)
	require.Len(t, ap.Links[1].Members, 1)
	assert.Equal(t, bob.ID, ap.Links[1].Members[0].MemberID)
	assert.Equal(t, 70.0, ap.Links[1].Members[0].SharePercent)
	require.NotNil(t, ap.Links[1].Members[0].Affinity)
	assert.Equal(t, 5, *ap.Links[1].Members[0].Affinity)

	// Bob has no psychometric data: the profile still assembles.
	bp := profiles[bob.ID]
	assert.Nil(t, bp.RIASEC)
	assert.Empty(t, bp.Links)
}

func TestListProfiles_UnknownMembersOmitted(t *testing.T) {
	s, db := newTestStore(t)
	p := model.Person{TenantID: 1, FirstName: "Only", LastName: "One"}
	require.NoError(t, db.Create(&p).Error)

	profiles, err := s.ListProfiles(context.Background(), []int64{p.ID, 4242})
	require.NoError(t, err)
	assert.Len(t, profiles, 1)
	_, ok := profiles[4242]
	assert.False(t, ok)
}

func TestListProfiles_Empty(t *testing.T) {
	s, _ := newTestStore(t)
	profiles, err := s.ListProfiles(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestSwapAssignments(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()
	_, room := seedFloor(t, db)

	memberA, memberB := int64(10), int64(11)
	deskA := model.Desk{RoomID: room.ID, Label: "E-01", X: 0, Y: 0, AssignedMemberID: &memberA}
	deskB := model.Desk{RoomID: room.ID, Label: "E-02", X: 100, Y: 0, AssignedMemberID: &memberB}
	require.NoError(t, db.Create(&deskA).Error)
	require.NoError(t, db.Create(&deskB).Error)

	require.NoError(t, s.SwapAssignments(ctx, deskA.ID, deskB.ID))

	var a, b model.Desk
	require.NoError(t, db.First(&a, deskA.ID).Error)
	require.NoError(t, db.First(&b, deskB.ID).Error)
	assert.Equal(t, memberB, *a.AssignedMemberID)
	assert.Equal(t, memberA, *b.AssignedMemberID)
}

func TestSwapAssignments_UnknownDesk(t *testing.T) {
	s, db := newTestStore(t)
	_, room := seedFloor(t, db)

	desk := model.Desk{RoomID: room.ID, Label: "E-01"}
	require.NoError(t, db.Create(&desk).Error)

	err := s.SwapAssignments(context.Background(), desk.ID, 999)
	assert.Error(t, err)
}

func TestDeleteLocation_Cascades(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()
	loc, room := seedFloor(t, db)
	require.NoError(t, db.Create(&model.Desk{RoomID: room.ID, Label: "E-01"}).Error)

	require.NoError(t, s.DeleteLocation(ctx, loc.ID))

	var rooms, desks int64
	require.NoError(t, db.Model(&model.Room{}).Count(&rooms).Error)
	require.NoError(t, db.Model(&model.Desk{}).Count(&desks).Error)
	assert.Zero(t, rooms)
	assert.Zero(t, desks)
}

func TestListDesks_FiltersByLocation(t *testing.T) {
	s, db := newTestStore(t)
	ctx := context.Background()
	_, room := seedFloor(t, db)

	other := model.Location{TenantID: 1, Name: "Annex", CanvasWidth: 500, CanvasHeight: 500}
	require.NoError(t, db.Create(&other).Error)
	otherRoom := model.Room{LocationID: other.ID, Name: "Quiet room", Width: 100, Height: 100}
	require.NoError(t, db.Create(&otherRoom).Error)

	require.NoError(t, db.Create(&model.Desk{RoomID: room.ID, Label: "E-01"}).Error)
	require.NoError(t, db.Create(&model.Desk{RoomID: otherRoom.ID, Label: "A-01"}).Error)

	desks, err := s.ListDesks(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, desks, 1)
	assert.Equal(t, "A-01", desks[0].Label)
}
