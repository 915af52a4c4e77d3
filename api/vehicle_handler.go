package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Brook07/RideShareX/vehicle"
)

type VehicleService interface {
	AddVehicle(ctx context.Context, v vehicle.Vehicle) (vehicle.Vehicle, error)
	VehiclesForOwner(ctx context.Context, ownerID string) ([]vehicle.Vehicle, error)
	Deactivate(ctx context.Context, id, ownerID string) error
}

type VehicleHandler struct {
	service VehicleService
}

func NewVehicleHandler(service VehicleService) *VehicleHandler {
	return &VehicleHandler{service: service}
}

func (h *VehicleHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Add)
	rg.GET("/user", h.ListForOwner)
	rg.PATCH("/:vehicleId/deactivate", h.Deactivate)
}

func (h *VehicleHandler) Add(c *gin.Context) {
	var v vehicle.Vehicle

	if err := c.BindJSON(&v); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	v.OwnerID = callerID(c)

	added, err := h.service.AddVehicle(c.Request.Context(), v)

	if err != nil {
		c.Error(err)
		if errors.Is(err, vehicle.ErrInvalidVehicle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add vehicle"})
		return
	}

	c.JSON(http.StatusCreated, added)
}

func (h *VehicleHandler) ListForOwner(c *gin.Context) {
	vehicles, err := h.service.VehiclesForOwner(c.Request.Context(), callerID(c))

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve vehicles"})
		return
	}

	c.IndentedJSON(http.StatusOK, vehicles)
}

func (h *VehicleHandler) Deactivate(c *gin.Context) {
	err := h.service.Deactivate(c.Request.Context(), c.Param("vehicleId"), callerID(c))

	if err != nil {
		c.Error(err)
		if errors.Is(err, vehicle.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vehicle not found"})
			return
		}
		if errors.Is(err, vehicle.ErrNotOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to deactivate this vehicle"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to deactivate vehicle"})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "vehicle deactivated"})
}
