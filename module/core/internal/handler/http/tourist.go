package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Aravinth1228/safehaven/module/core/domain"
)

type trackingService interface {
	GetLatest(ctx context.Context, touristID string) (*domain.TouristLocation, error)
	GetHistory(ctx context.Context, query *domain.HistoryQuery) ([]domain.TouristLocation, error)
	ListTourists(ctx context.Context) ([]domain.Tourist, error)
}

type safetyService interface {
	GetStatus(ctx context.Context, touristID string) (domain.Status, error)
	SetStatus(ctx context.Context, touristID string, status domain.Status) error
}

type locationResponse struct {
	TouristID string  `json:"tourist_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp int64   `json:"timestamp"`
}

type statusRequest struct {
	Status domain.Status `json:"status"`
}

type TouristHandler struct {
	trackingSvc trackingService
	safetySvc   safetyService
}

func NewTouristHandler(trackingSvc trackingService, safetySvc safetyService) *TouristHandler {
	return &TouristHandler{trackingSvc: trackingSvc, safetySvc: safetySvc}
}

func (h *TouristHandler) Register(r *gin.RouterGroup) {
	r.GET("/tourists", h.ListTourists)
	r.GET("/tourists/:tourist_id/location", h.GetLatestLocation)
	r.GET("/tourists/:tourist_id/history", h.GetHistory)
	r.GET("/tourists/:tourist_id/status", h.GetStatus)
	r.PUT("/tourists/:tourist_id/status", h.SetStatus)
}

func (h *TouristHandler) ListTourists(c *gin.Context) {
	tourists, err := h.trackingSvc.ListTourists(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tourists"})
		return
	}

	c.JSON(http.StatusOK, tourists)
}

func (h *TouristHandler) GetLatestLocation(c *gin.Context) {
	touristID := c.Param("tourist_id")

	tl, err := h.trackingSvc.GetLatest(c.Request.Context(), touristID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "tourist not found"})
		return
	}

	c.JSON(http.StatusOK, toLocationResponse(tl))
}

func (h *TouristHandler) GetHistory(c *gin.Context) {
	touristID := c.Param("tourist_id")

	start, err := strconv.ParseInt(c.Query("start"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start parameter"})
		return
	}

	end, err := strconv.ParseInt(c.Query("end"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end parameter"})
		return
	}

	query := &domain.HistoryQuery{
		TouristID: touristID,
		Start:     time.Unix(start, 0),
		End:       time.Unix(end, 0),
	}

	locations, err := h.trackingSvc.GetHistory(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch history"})
		return
	}

	results := make([]locationResponse, len(locations))
	for i, tl := range locations {
		results[i] = toLocationResponse(&tl)
	}
	c.JSON(http.StatusOK, results)
}

func (h *TouristHandler) GetStatus(c *gin.Context) {
	touristID := c.Param("tourist_id")

	status, err := h.safetySvc.GetStatus(c.Request.Context(), touristID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch status"})
		return
	}

	c.JSON(http.StatusOK, domain.Tourist{TouristID: touristID, Status: status})
}

func (h *TouristHandler) SetStatus(c *gin.Context) {
	touristID := c.Param("tourist_id")

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.safetySvc.SetStatus(c.Request.Context(), touristID, req.Status); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
		return
	}

	c.JSON(http.StatusOK, domain.Tourist{TouristID: touristID, Status: req.Status})
}

func toLocationResponse(tl *domain.TouristLocation) locationResponse {
	return locationResponse{
		TouristID: tl.TouristID,
		Latitude:  tl.Location.Lat,
		Longitude: tl.Location.Lon,
		Timestamp: tl.Location.Timestamp.Unix(),
	}
}
