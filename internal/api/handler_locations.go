package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"spacesync-backend/internal/model"
)

// LocationResponse represents the API response for a single location.
type LocationResponse struct {
	model.Location
	RoomCount     int64 `json:"roomCount"`
	DeskCount     int64 `json:"deskCount"`
	AssignedDesks int64 `json:"assignedDesks"`
}

// GetLocations handles the GET /api/locations request.
func (h *Handler) GetLocations(c *gin.Context) {
	locations, err := h.store.ListLocations(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve locations"})
		return
	}

	db := h.store.DB()

	type roomAgg struct {
		LocationID int64
		RoomCount  int64
	}
	var roomAggs []roomAgg
	if err := db.
		Model(&model.Room{}).
		Select("location_id as location_id, COUNT(*) as room_count").
		Group("location_id").
		Scan(&roomAggs).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate rooms"})
		return
	}

	type deskAgg struct {
		LocationID    int64
		DeskCount     int64
		AssignedDesks int64
	}
	var deskAggs []deskAgg
	if err := db.
		Model(&model.Desk{}).
		Select("rooms.location_id as location_id, COUNT(*) as desk_count, COUNT(desks.assigned_member_id) as assigned_desks").
		Joins("JOIN rooms ON rooms.id = desks.room_id").
		Group("rooms.location_id").
		Scan(&deskAggs).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate desks"})
		return
	}

	roomMap := make(map[int64]roomAgg, len(roomAggs))
	for _, a := range roomAggs {
		roomMap[a.LocationID] = a
	}
	deskMap := make(map[int64]deskAgg, len(deskAggs))
	for _, a := range deskAggs {
		deskMap[a.LocationID] = a
	}

	responses := make([]LocationResponse, 0, len(locations))
	for _, loc := range locations {
		responses = append(responses, LocationResponse{
			Location:      loc,
			RoomCount:     roomMap[loc.ID].RoomCount,
			DeskCount:     deskMap[loc.ID].DeskCount,
			AssignedDesks: deskMap[loc.ID].AssignedDesks,
		})
	}
	c.JSON(http.StatusOK, responses)
}

type locationRequest struct {
	Name         string  `json:"name" binding:"required"`
	Address      string  `json:"address"`
	Building     string  `json:"building"`
	FloorNumber  *int    `json:"floorNumber"`
	CanvasWidth  float64 `json:"canvasWidth" binding:"required,gt=0"`
	CanvasHeight float64 `json:"canvasHeight" binding:"required,gt=0"`
}

// PostLocation handles the POST /api/locations request.
func (h *Handler) PostLocation(c *gin.Context) {
	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loc := model.Location{
		TenantID:     1, // single-tenant deployment; auth layer owns this otherwise
		Name:         req.Name,
		Address:      req.Address,
		Building:     req.Building,
		FloorNumber:  req.FloorNumber,
		CanvasWidth:  req.CanvasWidth,
		CanvasHeight: req.CanvasHeight,
	}
	if err := h.store.CreateLocation(c.Request.Context(), &loc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.bust()
	c.JSON(http.StatusCreated, loc)
}

// PutLocation handles the PUT /api/locations/:location_id request.
func (h *Handler) PutLocation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("location_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID"})
		return
	}

	var loc model.Location
	if err := h.store.DB().First(&loc, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "location not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loc.Name = req.Name
	loc.Address = req.Address
	loc.Building = req.Building
	loc.FloorNumber = req.FloorNumber
	loc.CanvasWidth = req.CanvasWidth
	loc.CanvasHeight = req.CanvasHeight

	if err := h.store.UpdateLocation(c.Request.Context(), &loc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.bust()
	c.JSON(http.StatusOK, loc)
}

// DeleteLocation handles the DELETE /api/locations/:location_id request.
func (h *Handler) DeleteLocation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("location_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID"})
		return
	}

	if err := h.store.DeleteLocation(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.bust()
	c.Status(http.StatusNoContent)
}
