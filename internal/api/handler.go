package api

import (
	"context"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/patrickmn/go-cache"

	"spacesync-backend/internal/model"
	"spacesync-backend/internal/mw"
	"spacesync-backend/internal/notification"
	"spacesync-backend/internal/proximity"
	"spacesync-backend/internal/store"
	"spacesync-backend/internal/suggest"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store      store.Store
	webpush    *webpush.Options
	suggester  suggest.Suggester
	pool       *notification.WorkerPool
	cacheStore *cache.Cache
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, webpushOptions *webpush.Options, suggester suggest.Suggester, pool *notification.WorkerPool, cacheStore *cache.Cache) *Handler {
	return &Handler{
		store:      s,
		webpush:    webpushOptions,
		suggester:  suggester,
		pool:       pool,
		cacheStore: cacheStore,
	}
}

// bust drops cached analysis responses after any floor-plan mutation.
func (h *Handler) bust() {
	if h.cacheStore != nil {
		mw.Bust(h.cacheStore)
	}
}

// notifyFloorChanged queues a push notification for the location's subscribers.
func (h *Handler) notifyFloorChanged(locationID int64) {
	if h.pool != nil {
		h.pool.Dispatch(locationID)
	}
}

// loadFloor assembles the consistent snapshot the engine operates on: the
// location's desks and rooms plus the profiles of everyone seated there.
func (h *Handler) loadFloor(ctx context.Context, locationID int64) ([]model.Desk, []model.Room, map[int64]proximity.PersonProfile, error) {
	desks, err := h.store.ListDesks(ctx, locationID)
	if err != nil {
		return nil, nil, nil, err
	}
	rooms, err := h.store.ListRooms(ctx, locationID)
	if err != nil {
		return nil, nil, nil, err
	}
	profiles, err := h.store.ListProfiles(ctx, store.AssignedMemberIDs(desks))
	if err != nil {
		return nil, nil, nil, err
	}
	return desks, rooms, profiles, nil
}
