package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"spacesync-backend/internal/model"
	"spacesync-backend/internal/proximity"
	"spacesync-backend/internal/suggest"
)

// PostSuggestions handles the POST /api/locations/:location_id/suggestions
// request: it serializes the current pair graph and relays the advice
// service's ranked swaps. The advice is never validated here; the UI runs
// any accepted suggestion through the swap simulator before applying it.
func (h *Handler) PostSuggestions(c *gin.Context) {
	if h.suggester == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "suggestions are not configured"})
		return
	}

	locationID, err := strconv.ParseInt(c.Param("location_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID"})
		return
	}

	var location model.Location
	if err := h.store.DB().First(&location, locationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	desks, rooms, profiles, err := h.loadFloor(c.Request.Context(), locationID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load floor plan"})
		return
	}

	pd, pr := snapshotFloor(desks, rooms)
	pairs := proximity.BuildPairs(pd, pr, profiles)

	snapshot := buildSnapshot(location, desks, rooms, profiles, pairs)
	advice, err := h.suggester.Suggest(c.Request.Context(), snapshot)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, advice)
}

func buildSnapshot(location model.Location, desks []model.Desk, rooms []model.Room, profiles map[int64]proximity.PersonProfile, pairs []proximity.ScoredPair) suggest.Snapshot {
	roomNames := make(map[int64]string, len(rooms))
	for _, r := range rooms {
		roomNames[r.ID] = r.Name
	}

	snapshot := suggest.Snapshot{
		LocationID:    location.ID,
		LocationName:  location.Name,
		GlobalAverage: proximity.GlobalAverage(pairs),
		Desks:         make([]suggest.SnapshotDesk, 0, len(desks)),
		Pairs:         make([]suggest.SnapshotPair, 0, len(pairs)),
	}

	for _, d := range desks {
		sd := suggest.SnapshotDesk{
			DeskID:   d.ID,
			Label:    d.Label,
			RoomName: roomNames[d.RoomID],
			MemberID: d.AssignedMemberID,
		}
		if d.AssignedMemberID != nil {
			if p, ok := profiles[*d.AssignedMemberID]; ok {
				sd.MemberName = p.DisplayName()
			}
		}
		snapshot.Desks = append(snapshot.Desks, sd)
	}

	for _, p := range pairs {
		snapshot.Pairs = append(snapshot.Pairs, suggest.SnapshotPair{
			DeskA:    p.DeskA.ID,
			DeskB:    p.DeskB.ID,
			PersonA:  p.PersonA.DisplayName(),
			PersonB:  p.PersonB.DisplayName(),
			Distance: p.Distance,
			Overall:  p.Result.Overall,
			Level:    string(p.Result.Level),
			Factors: map[string]float64{
				"riasec":        p.Result.Breakdown.RIASEC,
				"communication": p.Result.Breakdown.Communication,
				"conflict":      p.Result.Breakdown.Conflict,
				"friction":      p.Result.Breakdown.Friction,
				"collabBonus":   p.Result.Breakdown.CollabBonus,
			},
		})
	}
	return snapshot
}
