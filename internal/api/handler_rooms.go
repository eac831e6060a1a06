package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"spacesync-backend/internal/model"
)

// GetRooms handles the GET /api/locations/:location_id/rooms request.
func (h *Handler) GetRooms(c *gin.Context) {
	locationID, err := strconv.ParseInt(c.Param("location_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID"})
		return
	}

	rooms, err := h.store.ListRooms(c.Request.Context(), locationID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rooms"})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

type roomRequest struct {
	Name   string  `json:"name" binding:"required"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width" binding:"required,gt=0"`
	Height float64 `json:"height" binding:"required,gt=0"`
	Type   string  `json:"type" binding:"omitempty,oneof=office meeting common other"`
	Color  string  `json:"color"`
}

// PostRoom handles the POST /api/locations/:location_id/rooms request.
func (h *Handler) PostRoom(c *gin.Context) {
	locationID, err := strconv.ParseInt(c.Param("location_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID"})
		return
	}

	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Type == "" {
		req.Type = model.RoomTypeOffice
	}

	room := model.Room{
		LocationID: locationID,
		Name:       req.Name,
		X:          req.X,
		Y:          req.Y,
		Width:      req.Width,
		Height:     req.Height,
		Type:       req.Type,
		Color:      req.Color,
	}
	if err := h.store.CreateRoom(c.Request.Context(), &room); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.bust()
	h.notifyFloorChanged(locationID)
	c.JSON(http.StatusCreated, room)
}

// PutRoom handles the PUT /api/rooms/:room_id request.
func (h *Handler) PutRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("room_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	var room model.Room
	if err := h.store.DB().First(&room, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	room.Name = req.Name
	room.X = req.X
	room.Y = req.Y
	room.Width = req.Width
	room.Height = req.Height
	if req.Type != "" {
		room.Type = req.Type
	}
	room.Color = req.Color

	if err := h.store.UpdateRoom(c.Request.Context(), &room); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.bust()
	h.notifyFloorChanged(room.LocationID)
	c.JSON(http.StatusOK, room)
}

// DeleteRoom handles the DELETE /api/rooms/:room_id request.
func (h *Handler) DeleteRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("room_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room ID"})
		return
	}

	locationID, err := h.store.DeleteRoom(c.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	h.bust()
	h.notifyFloorChanged(locationID)
	c.Status(http.StatusNoContent)
}
