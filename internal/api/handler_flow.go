package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"spacesync-backend/internal/proximity"
)

// FlowDirectionResponse is one direction of a declared relationship.
type FlowDirectionResponse struct {
	Percentage float64 `json:"percentage"`
	Affinity   int     `json:"affinity"`
}

// FlowConnectionResponse is one merged collaboration connection between two
// seated members.
type FlowConnectionResponse struct {
	MemberA       int64                  `json:"memberA"`
	MemberB       int64                  `json:"memberB"`
	PersonA       string                 `json:"personA"`
	PersonB       string                 `json:"personB"`
	DeskA         int64                  `json:"deskA"`
	DeskB         int64                  `json:"deskB"`
	AToB          *FlowDirectionResponse `json:"aToB,omitempty"`
	BToA          *FlowDirectionResponse `json:"bToA,omitempty"`
	Bidirectional bool                   `json:"bidirectional"`
	Distance      float64                `json:"distance"`
	DistantAlert  bool                   `json:"distantAlert"`
}

// FlowResponse is the collaboration-flow overlay payload.
type FlowResponse struct {
	Connections []FlowConnectionResponse `json:"connections"`
	AlertCount  int                      `json:"alertCount"`
}

// GetFlow handles the GET /api/locations/:location_id/flow request.
func (h *Handler) GetFlow(c *gin.Context) {
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
	conns := proximity.BuildFlowConnections(pd, pr, profiles)

	resp := FlowResponse{Connections: make([]FlowConnectionResponse, 0, len(conns))}
	for _, conn := range conns {
		out := FlowConnectionResponse{
			MemberA:       conn.MemberA,
			MemberB:       conn.MemberB,
			PersonA:       profiles[conn.MemberA].DisplayName(),
			PersonB:       profiles[conn.MemberB].DisplayName(),
			DeskA:         conn.DeskA,
			DeskB:         conn.DeskB,
			Bidirectional: conn.Bidirectional,
			Distance:      conn.Distance,
			DistantAlert:  conn.DistantAlert,
		}
		if conn.AToB != nil {
			out.AToB = &FlowDirectionResponse{Percentage: conn.AToB.Percentage, Affinity: conn.AToB.Affinity}
		}
		if conn.BToA != nil {
			out.BToA = &FlowDirectionResponse{Percentage: conn.BToA.Percentage, Affinity: conn.BToA.Affinity}
		}
		if conn.DistantAlert {
			resp.AlertCount++
		}
		resp.Connections = append(resp.Connections, out)
	}

	c.JSON(http.StatusOK, resp)
}
