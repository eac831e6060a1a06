package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"spacesync-backend/internal/model"
	"spacesync-backend/internal/proximity"
	"spacesync-backend/internal/store"
)

// DeskResponse flattens a desk with its occupant's display fields.
type DeskResponse struct {
	model.Desk
	AssigneeName string `json:"assigneeName,omitempty"`
	JobTitle     string `json:"jobTitle,omitempty"`
}

// GetDesks handles the GET /api/locations/:location_id/desks request.
func (h *Handler) GetDesks(c *gin.Context) {
	locationID, err := strconv.ParseInt(c.Param("location_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID"})
		return
	}

	desks, err := h.store.ListDesks(c.Request.Context(), locationID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve desks"})
		return
	}

	profiles, err := h.store.ListProfiles(c.Request.Context(), store.AssignedMemberIDs(desks))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve assignee profiles"})
		return
	}

	responses := make([]DeskResponse, 0, len(desks))
	for _, d := range desks {
		resp := DeskResponse{Desk: d}
		if d.AssignedMemberID != nil {
			if p, ok := profiles[*d.AssignedMemberID]; ok {
				resp.AssigneeName = p.DisplayName()
				resp.JobTitle = p.JobTitle
			}
		}
		responses = append(responses, resp)
	}
	c.JSON(http.StatusOK, responses)
}

type deskRequest struct {
	RoomID           int64   `json:"roomId" binding:"required"`
	Label            string  `json:"label"`
	X                float64 `json:"x"`
	Y                float64 `json:"y"`
	AssignedMemberID *int64  `json:"assignedMemberId"`
	AssignedRoleID   *int64  `json:"assignedRoleId"`
}

// PostDesk handles the POST /api/locations/:location_id/desks request.
func (h *Handler) PostDesk(c *gin.Context) {
	locationID, err := strconv.ParseInt(c.Param("location_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID"})
		return
	}

	var req deskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The desk must land in a room of this location.
	var room model.Room
	if err := h.store.DB().First(&room, req.RoomID).Error; err != nil || room.LocationID != locationID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "room does not belong to this location"})
		return
	}

	desk := model.Desk{
		RoomID:           req.RoomID,
		Label:            req.Label,
		X:                req.X,
		Y:                req.Y,
		AssignedMemberID: req.AssignedMemberID,
		AssignedRoleID:   req.AssignedRoleID,
	}
	if err := h.store.CreateDesk(c.Request.Context(), &desk); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.bust()
	h.notifyFloorChanged(locationID)
	c.JSON(http.StatusCreated, desk)
}

// PutDesk handles the PUT /api/desks/:desk_id request.
func (h *Handler) PutDesk(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("desk_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid desk ID"})
		return
	}

	var desk model.Desk
	if err := h.store.DB().Preload("Room").First(&desk, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "desk not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	var req deskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	desk.RoomID = req.RoomID
	desk.Label = req.Label
	desk.X = req.X
	desk.Y = req.Y
	desk.AssignedMemberID = req.AssignedMemberID
	desk.AssignedRoleID = req.AssignedRoleID

	if err := h.store.UpdateDesk(c.Request.Context(), &desk); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.bust()
	h.notifyFloorChanged(desk.Room.LocationID)
	c.JSON(http.StatusOK, desk)
}

// DeleteDesk handles the DELETE /api/desks/:desk_id request.
func (h *Handler) DeleteDesk(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("desk_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid desk ID"})
		return
	}

	locationID, err := h.store.DeleteDesk(c.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "desk not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	h.bust()
	h.notifyFloorChanged(locationID)
	c.Status(http.StatusNoContent)
}

// snapshotFloor converts persisted desks/rooms into engine snapshots.
func snapshotFloor(desks []model.Desk, rooms []model.Room) ([]proximity.Desk, []proximity.Room) {
	return store.SnapshotDesks(desks), store.SnapshotRooms(rooms)
}
