package http

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aravinth1228/safehaven/module/core/domain"
)

type zoneService interface {
	Create(ctx context.Context, z *domain.Zone) error
	Update(ctx context.Context, z *domain.Zone) error
	Deactivate(ctx context.Context, zoneID string) error
	ListAll(ctx context.Context) ([]domain.Zone, error)
}

type zoneRequest struct {
	Name         string          `json:"name"`
	Latitude     float64         `json:"latitude"`
	Longitude    float64         `json:"longitude"`
	RadiusMeters float64         `json:"radius_meters"`
	Severity     domain.Severity `json:"severity"`
	Active       *bool           `json:"active"`
}

type ZoneHandler struct {
	zoneSvc zoneService
}

func NewZoneHandler(zoneSvc zoneService) *ZoneHandler {
	return &ZoneHandler{zoneSvc: zoneSvc}
}

func (h *ZoneHandler) Register(r *gin.RouterGroup) {
	r.GET("/zones", h.ListZones)
	r.POST("/zones", h.CreateZone)
	r.PUT("/zones/:zone_id", h.UpdateZone)
	r.DELETE("/zones/:zone_id", h.DeactivateZone)
}

func (h *ZoneHandler) ListZones(c *gin.Context) {
	zones, err := h.zoneSvc.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch zones"})
		return
	}

	c.JSON(http.StatusOK, zones)
}

func (h *ZoneHandler) CreateZone(c *gin.Context) {
	var req zoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	z := domain.Zone{
		Name:         req.Name,
		Lat:          req.Latitude,
		Lon:          req.Longitude,
		RadiusMeters: req.RadiusMeters,
		Severity:     req.Severity,
	}

	if err := h.zoneSvc.Create(c.Request.Context(), &z); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create zone"})
		return
	}

	c.JSON(http.StatusCreated, z)
}

func (h *ZoneHandler) UpdateZone(c *gin.Context) {
	var req zoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	z := domain.Zone{
		ID:           c.Param("zone_id"),
		Name:         req.Name,
		Lat:          req.Latitude,
		Lon:          req.Longitude,
		RadiusMeters: req.RadiusMeters,
		Severity:     req.Severity,
		Active:       active,
	}

	if err := h.zoneSvc.Update(c.Request.Context(), &z); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			return
		}
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "zone not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update zone"})
		return
	}

	c.JSON(http.StatusOK, z)
}

func (h *ZoneHandler) DeactivateZone(c *gin.Context) {
	if err := h.zoneSvc.Deactivate(c.Request.Context(), c.Param("zone_id")); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "zone not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to deactivate zone"})
		return
	}

	c.Status(http.StatusNoContent)
}
