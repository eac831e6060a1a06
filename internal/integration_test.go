package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"spacesync-backend/config"
	"spacesync-backend/internal/api"
	"spacesync-backend/internal/model"
	"spacesync-backend/internal/store"
	"spacesync-backend/internal/suggest"
)

// TestFloorPlanLifecycle drives the full HTTP stack against an in-memory
// database: seed a floor, read the scored pair graph, simulate a swap, apply
// it, and verify the persisted assignments moved.
func TestFloorPlanLifecycle(t *testing.T) {
	// --- Test Setup ---

	// 1. Setup an in-memory SQLite database for testing.
	testDB, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, _ := testDB.DB()
	defer sqlDB.Close()

	err = testDB.AutoMigrate(
		&model.Location{},
		&model.Room{},
		&model.Desk{},
		&model.Person{},
		&model.PsychometricScore{},
		&model.PersonTag{},
		&model.CollaborationLink{},
		&model.TeamMember{},
		&model.PushSubscription{},
	)
	require.NoError(t, err)

	// 2. A permissive configuration so rate limiting never interferes.
	cfg := &config.Config{}
	cfg.Server.RateLimitPerSec = 1000
	cfg.Server.RateLimitBurst = 1000
	cfg.Server.CacheTTLSeconds = 60

	appStore := store.NewGormStore(testDB)
	router := api.NewRouter(appStore, nil, suggest.StubSuggester{}, nil, cfg)

	// 3. Seed one floor: a single room with two neighbouring desks, both
	// assigned. Neither occupant has psychometric data or tags, so every
	// factor sits at its neutral value and the pair score is predictable.
	loc := model.Location{TenantID: 1, Name: "HQ 3rd floor", CanvasWidth: 1200, CanvasHeight: 800}
	require.NoError(t, testDB.Create(&loc).Error)
	room := model.Room{LocationID: loc.ID, Name: "Engineering", X: 40, Y: 40, Width: 600, Height: 400, Type: model.RoomTypeOffice}
	require.NoError(t, testDB.Create(&room).Error)

	alice := model.Person{TenantID: 1, FirstName: "Alice", LastName: "Ngo"}
	bob := model.Person{TenantID: 1, FirstName: "Bob", LastName: "Marsh"}
	require.NoError(t, testDB.Create(&alice).Error)
	require.NoError(t, testDB.Create(&bob).Error)

	deskA := model.Desk{RoomID: room.ID, Label: "E-01", X: 0, Y: 0, AssignedMemberID: &alice.ID}
	deskB := model.Desk{RoomID: room.ID, Label: "E-02", X: 100, Y: 0, AssignedMemberID: &bob.ID}
	require.NoError(t, testDB.Create(&deskA).Error)
	require.NoError(t, testDB.Create(&deskB).Error)

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req, err := http.NewRequest(method, path, &buf)
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("Locations list carries floor aggregates", func(t *testing.T) {
		w := do(http.MethodGet, "/api/locations", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var locations []struct {
			Name          string `json:"name"`
			RoomCount     int64  `json:"roomCount"`
			DeskCount     int64  `json:"deskCount"`
			AssignedDesks int64  `json:"assignedDesks"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &locations))
		require.Len(t, locations, 1)
		assert.Equal(t, "HQ 3rd floor", locations[0].Name)
		assert.Equal(t, int64(1), locations[0].RoomCount)
		assert.Equal(t, int64(2), locations[0].DeskCount)
		assert.Equal(t, int64(2), locations[0].AssignedDesks)
	})

	type pairPayload struct {
		DeskA    int64   `json:"deskA"`
		DeskB    int64   `json:"deskB"`
		PersonA  string  `json:"personA"`
		PersonB  string  `json:"personB"`
		Distance float64 `json:"distance"`
		Result   struct {
			Overall int    `json:"overall"`
			Level   string `json:"level"`
		} `json:"result"`
	}

	t.Run("Proximity analysis scores the neighbouring pair", func(t *testing.T) {
		w := do(http.MethodGet, fmt.Sprintf("/api/locations/%d/proximity", loc.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Pairs         []pairPayload `json:"pairs"`
			GlobalAverage float64       `json:"globalAverage"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Pairs, 1)

		pair := resp.Pairs[0]
		assert.Equal(t, "Alice Ngo", pair.PersonA)
		assert.Equal(t, "Bob Marsh", pair.PersonB)
		assert.Equal(t, 100.0, pair.Distance)
		// All factors neutral: 0.35*50 + 0.30*50 + 0.20*90 + 0.15*100 = 65.5
		assert.Equal(t, 66, pair.Result.Overall)
		assert.Equal(t, "good", pair.Result.Level)
		assert.Equal(t, 66.0, resp.GlobalAverage)
	})

	t.Run("Swap simulation leaves assignments untouched", func(t *testing.T) {
		w := do(http.MethodPost, fmt.Sprintf("/api/locations/%d/proximity/swap", loc.ID),
			payload("deskA", deskA.ID, "deskB", deskB.ID))
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			GlobalAverage float64 `json:"globalAverage"`
			Delta         float64 `json:"delta"`
			NoOp          bool    `json:"noop"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.NoOp)

		var a model.Desk
		require.NoError(t, testDB.First(&a, deskA.ID).Error)
		assert.Equal(t, alice.ID, *a.AssignedMemberID, "simulation must not persist anything")
	})

	t.Run("Swap apply persists the exchange", func(t *testing.T) {
		w := do(http.MethodPost, fmt.Sprintf("/api/locations/%d/proximity/swap/apply", loc.ID),
			payload("deskA", deskA.ID, "deskB", deskB.ID))
		require.Equal(t, http.StatusOK, w.Code)

		var a, b model.Desk
		require.NoError(t, testDB.First(&a, deskA.ID).Error)
		require.NoError(t, testDB.First(&b, deskB.ID).Error)
		assert.Equal(t, bob.ID, *a.AssignedMemberID)
		assert.Equal(t, alice.ID, *b.AssignedMemberID)
	})

	t.Run("Swap apply rejects an unassigned desk", func(t *testing.T) {
		empty := model.Desk{RoomID: room.ID, Label: "E-03", X: 200, Y: 0}
		require.NoError(t, testDB.Create(&empty).Error)

		w := do(http.MethodPost, fmt.Sprintf("/api/locations/%d/proximity/swap/apply", loc.ID),
			payload("deskA", deskA.ID, "deskB", empty.ID))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Suggestions relay answers through the stub", func(t *testing.T) {
		w := do(http.MethodPost, fmt.Sprintf("/api/locations/%d/suggestions", loc.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var advice suggest.Advice
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &advice))
		require.Len(t, advice.Suggestions, 1)
		assert.Equal(t, deskA.ID, advice.Suggestions[0].DeskA)
		assert.Equal(t, deskB.ID, advice.Suggestions[0].DeskB)
	})

	t.Run("Subscription round trip", func(t *testing.T) {
		w := do(http.MethodPut, "/api/subscriptions", payload(
			"endpoint", "https://push.example/abc",
			"p256dh", "key",
			"auth", "secret",
			"subscribed_locations", []int64{loc.ID},
		))
		require.Equal(t, http.StatusCreated, w.Code)

		w = do(http.MethodGet, "/api/subscriptions?endpoint=https://push.example/abc", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"subscribed_locations":[%d]}`, loc.ID), w.Body.String())

		w = do(http.MethodDelete, "/api/subscriptions", payload("endpoint", "https://push.example/abc"))
		require.Equal(t, http.StatusNoContent, w.Code)

		w = do(http.MethodGet, "/api/subscriptions?endpoint=https://push.example/abc", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("VAPID key unavailable without push config", func(t *testing.T) {
		w := do(http.MethodGet, "/api/vapid_public_key", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

// payload builds a small JSON object from alternating key/value arguments.
func payload(kv ...any) map[string]any {
	m := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i].(string)] = kv[i+1]
	}
	return m
}
