package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"spacesync-backend/internal/proximity"
)

// PairResponse is one scored adjacent pair, flattened for the heatmap and
// report views.
type PairResponse struct {
	DeskA    int64            `json:"deskA"`
	DeskB    int64            `json:"deskB"`
	LabelA   string           `json:"labelA"`
	LabelB   string           `json:"labelB"`
	MemberA  int64            `json:"memberA"`
	MemberB  int64            `json:"memberB"`
	PersonA  string           `json:"personA"`
	PersonB  string           `json:"personB"`
	Distance float64          `json:"distance"`
	Result   proximity.Result `json:"result"`
}

// DeskScoreResponse is one desk's aggregate over its scored pairs.
type DeskScoreResponse struct {
	AverageScore int `json:"averageScore"`
	PairCount    int `json:"pairCount"`
}

// ProximityResponse is the full analysis payload for a location.
type ProximityResponse struct {
	Pairs         []PairResponse              `json:"pairs"`
	DeskScores    map[int64]DeskScoreResponse `json:"deskScores"`
	GlobalAverage float64                     `json:"globalAverage"`
}

func toPairResponses(pairs []proximity.ScoredPair) []PairResponse {
	out := make([]PairResponse, len(pairs))
	for i, p := range pairs {
		out[i] = PairResponse{
			DeskA:    p.DeskA.ID,
			DeskB:    p.DeskB.ID,
			LabelA:   p.DeskA.Label,
			LabelB:   p.DeskB.Label,
			MemberA:  p.PersonA.MemberID,
			MemberB:  p.PersonB.MemberID,
			PersonA:  p.PersonA.DisplayName(),
			PersonB:  p.PersonB.DisplayName(),
			Distance: p.Distance,
			Result:   p.Result,
		}
	}
	return out
}

func toDeskScores(stats map[int64]proximity.DeskStats) map[int64]DeskScoreResponse {
	out := make(map[int64]DeskScoreResponse, len(stats))
	for id, s := range stats {
		out[id] = DeskScoreResponse{AverageScore: s.AverageScore, PairCount: s.PairCount}
	}
	return out
}

// GetProximity handles the GET /api/locations/:location_id/proximity request.
func (h *Handler) GetProximity(c *gin.Context) {
	locationID, err := strconv.ParseInt(c.Param("location_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID"})
		return
	}

	desks, rooms, profiles, err := h.loadFloor(c.Request.Context(), locationID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load floor plan"})
		return
	}

	pd, pr := snapshotFloor(desks, rooms)
	pairs := proximity.BuildPairs(pd, pr, profiles)

	c.JSON(http.StatusOK, ProximityResponse{
		Pairs:         toPairResponses(pairs),
		DeskScores:    toDeskScores(proximity.DeskScores(pairs)),
		GlobalAverage: proximity.GlobalAverage(pairs),
	})
}

type swapRequest struct {
	DeskA int64 `json:"deskA" binding:"required"`
	DeskB int64 `json:"deskB" binding:"required"`
}

// SwapResponse is the what-if payload for a simulated exchange.
type SwapResponse struct {
	Pairs         []PairResponse `json:"pairs"`
	GlobalAverage float64        `json:"globalAverage"`
	Delta         float64        `json:"delta"`
	NoOp          bool           `json:"noop"`
}

func (h *Handler) simulate(c *gin.Context, locationID int64) (proximity.SwapResult, swapRequest, bool) {
	var req swapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return proximity.SwapResult{}, req, false
	}

	desks, rooms, profiles, err := h.loadFloor(c.Request.Context(), locationID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load floor plan"})
		return proximity.SwapResult{}, req, false
	}

	pd, pr := snapshotFloor(desks, rooms)
	baseline := proximity.GlobalAverage(proximity.BuildPairs(pd, pr, profiles))
	return proximity.SimulateSwap(req.DeskA, req.DeskB, pd, pr, profiles, baseline), req, true
}

// PostSwapSimulation handles the POST /api/locations/:location_id/proximity/swap
// request. Nothing is persisted; the response is the hypothetical state.
func (h *Handler) PostSwapSimulation(c *gin.Context) {
	locationID, err := strconv.ParseInt(c.Param("location_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID"})
		return
	}

	res, _, ok := h.simulate(c, locationID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, SwapResponse{
		Pairs:         toPairResponses(res.Pairs),
		GlobalAverage: res.NewAverage,
		Delta:         res.Delta,
		NoOp:          res.NoOp,
	})
}

// PostSwapApply handles the POST /api/locations/:location_id/proximity/swap/apply
// request: it re-runs the simulation and, when it is not a no-op, persists
// the exchange through the store.
func (h *Handler) PostSwapApply(c *gin.Context) {
	locationID, err := strconv.ParseInt(c.Param("location_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID"})
		return
	}

	res, req, ok := h.simulate(c, locationID)
	if !ok {
		return
	}
	if res.NoOp {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "swap cannot be applied: both desks must be assigned to known members"})
		return
	}

	if err := h.store.SwapAssignments(c.Request.Context(), req.DeskA, req.DeskB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.bust()
	h.notifyFloorChanged(locationID)
	c.JSON(http.StatusOK, SwapResponse{
		Pairs:         toPairResponses(res.Pairs),
		GlobalAverage: res.NewAverage,
		Delta:         res.Delta,
	})
}
