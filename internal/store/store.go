package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"spacesync-backend/internal/model"
	"spacesync-backend/internal/proximity"
)

// Store defines the interface for all database operations the planner needs.
type Store interface {
	DB() *gorm.DB

	ListLocations(ctx context.Context) ([]model.Location, error)
	CreateLocation(ctx context.Context, loc *model.Location) error
	UpdateLocation(ctx context.Context, loc *model.Location) error
	DeleteLocation(ctx context.Context, id int64) error

	ListRooms(ctx context.Context, locationID int64) ([]model.Room, error)
	CreateRoom(ctx context.Context, room *model.Room) error
	UpdateRoom(ctx context.Context, room *model.Room) error
	DeleteRoom(ctx context.Context, id int64) (locationID int64, err error)

	ListDesks(ctx context.Context, locationID int64) ([]model.Desk, error)
	CreateDesk(ctx context.Context, desk *model.Desk) error
	UpdateDesk(ctx context.Context, desk *model.Desk) error
	DeleteDesk(ctx context.Context, id int64) (locationID int64, err error)

	// SwapAssignments exchanges the assignees of two desks transactionally.
	SwapAssignments(ctx context.Context, deskA, deskB int64) error

	// ListProfiles assembles the scoring engine's person value objects by
	// joining person, psychometric, tag, collaboration-link and team rows.
	ListProfiles(ctx context.Context, memberIDs []int64) (map[int64]proximity.PersonProfile, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

func (s *gormStore) ListLocations(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	if err := s.db.WithContext(ctx).Order("id").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

func (s *gormStore) CreateLocation(ctx context.Context, loc *model.Location) error {
	return s.db.WithContext(ctx).Create(loc).Error
}

func (s *gormStore) UpdateLocation(ctx context.Context, loc *model.Location) error {
	return s.db.WithContext(ctx).Save(loc).Error
}

// DeleteLocation removes a location with its rooms and desks in one
// transaction. The cascade is explicit so it holds on every driver.
func (s *gormStore) DeleteLocation(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var roomIDs []int64
		if err := tx.Model(&model.Room{}).Where("location_id = ?", id).Pluck("id", &roomIDs).Error; err != nil {
			return fmt.Errorf("failed to collect rooms for location %d: %w", id, err)
		}
		if len(roomIDs) > 0 {
			if err := tx.Where("room_id IN ?", roomIDs).Delete(&model.Desk{}).Error; err != nil {
				return fmt.Errorf("failed to delete desks for location %d: %w", id, err)
			}
			if err := tx.Delete(&model.Room{}, roomIDs).Error; err != nil {
				return fmt.Errorf("failed to delete rooms for location %d: %w", id, err)
			}
		}
		return tx.Delete(&model.Location{}, id).Error
	})
}

func (s *gormStore) ListRooms(ctx context.Context, locationID int64) ([]model.Room, error) {
	var rooms []model.Room
	if err := s.db.WithContext(ctx).Where("location_id = ?", locationID).Order("id").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *gormStore) CreateRoom(ctx context.Context, room *model.Room) error {
	return s.db.WithContext(ctx).Create(room).Error
}

func (s *gormStore) UpdateRoom(ctx context.Context, room *model.Room) error {
	return s.db.WithContext(ctx).Save(room).Error
}

// DeleteRoom removes a room with its desks and reports the owning location
// so callers can invalidate derived state.
func (s *gormStore) DeleteRoom(ctx context.Context, id int64) (int64, error) {
	var room model.Room
	if err := s.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return 0, err
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&model.Desk{}).Error; err != nil {
			return fmt.Errorf("failed to delete desks for room %d: %w", id, err)
		}
		return tx.Delete(&model.Room{}, id).Error
	})
	return room.LocationID, err
}

// ListDesks returns all desks on the given location's floor plan.
func (s *gormStore) ListDesks(ctx context.Context, locationID int64) ([]model.Desk, error) {
	var desks []model.Desk
	err := s.db.WithContext(ctx).
		Joins("JOIN rooms ON rooms.id = desks.room_id").
		Where("rooms.location_id = ?", locationID).
		Order("desks.id").
		Find(&desks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list desks: %w", err)
	}
	return desks, nil
}

func (s *gormStore) CreateDesk(ctx context.Context, desk *model.Desk) error {
	return s.db.WithContext(ctx).Create(desk).Error
}

func (s *gormStore) UpdateDesk(ctx context.Context, desk *model.Desk) error {
	return s.db.WithContext(ctx).Save(desk).Error
}

func (s *gormStore) DeleteDesk(ctx context.Context, id int64) (int64, error) {
	var desk model.Desk
	if err := s.db.WithContext(ctx).Preload("Room").First(&desk, id).Error; err != nil {
		return 0, err
	}
	if err := s.db.WithContext(ctx).Delete(&model.Desk{}, id).Error; err != nil {
		return 0, err
	}
	return desk.Room.LocationID, nil
}

// SwapAssignments exchanges the assigned members (and roles) of two desks.
// Both desks must exist; either may be unassigned, the exchange is still
// well defined.
func (s *gormStore) SwapAssignments(ctx context.Context, deskA, deskB int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a, b model.Desk
		if err := tx.First(&a, deskA).Error; err != nil {
			return fmt.Errorf("failed to load desk %d: %w", deskA, err)
		}
		if err := tx.First(&b, deskB).Error; err != nil {
			return fmt.Errorf("failed to load desk %d: %w", deskB, err)
		}

		a.AssignedMemberID, b.AssignedMemberID = b.AssignedMemberID, a.AssignedMemberID
		a.AssignedRoleID, b.AssignedRoleID = b.AssignedRoleID, a.AssignedRoleID

		if err := tx.Save(&a).Error; err != nil {
			return fmt.Errorf("failed to update desk %d: %w", a.ID, err)
		}
		if err := tx.Save(&b).Error; err != nil {
			return fmt.Errorf("failed to update desk %d: %w", b.ID, err)
		}
		return nil
	})
}
