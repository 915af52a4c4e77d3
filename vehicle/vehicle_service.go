package vehicle

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const (
	defaultCacheTTL      = 1 * time.Minute
	cacheCleanupInterval = 5 * time.Minute
)

type VehicleRepository interface {
	InsertVehicle(ctx context.Context, vehicle Vehicle) (Vehicle, error)
	GetVehicleByID(ctx context.Context, id string) (Vehicle, error)
	GetVehiclesForOwner(ctx context.Context, ownerID string) ([]Vehicle, error)
	SetVehicleStatus(ctx context.Context, id string, status Status) error
}

// Service fronts the catalog repository with a short-lived read cache: the
// booking engine looks the vehicle up on every reservation request.
type Service struct {
	repo  VehicleRepository
	cache *cache.Cache
}

func NewService(repo VehicleRepository) *Service {
	return &Service{
		repo:  repo,
		cache: cache.New(defaultCacheTTL, cacheCleanupInterval),
	}
}

func (s *Service) AddVehicle(ctx context.Context, vehicle Vehicle) (Vehicle, error) {
	if vehicle.OwnerID == "" {
		return Vehicle{}, fmt.Errorf("%w: vehicle owner is required", ErrInvalidVehicle)
	}

	vehicle.ID = uuid.NewString()
	vehicle.Status = StatusActive

	return s.repo.InsertVehicle(ctx, vehicle)
}

func (s *Service) FindVehicleByID(ctx context.Context, id string) (Vehicle, error) {
	if cached, found := s.cache.Get(id); found {
		return cached.(Vehicle), nil
	}

	vehicle, err := s.repo.GetVehicleByID(ctx, id)

	if err != nil {
		return Vehicle{}, err
	}

	s.cache.Set(id, vehicle, cache.DefaultExpiration)

	return vehicle, nil
}

func (s *Service) VehiclesForOwner(ctx context.Context, ownerID string) ([]Vehicle, error) {
	return s.repo.GetVehiclesForOwner(ctx, ownerID)
}

// Deactivate takes a vehicle off the marketplace. Existing bookings are left
// alone; only new reservation requests are denied.
func (s *Service) Deactivate(ctx context.Context, id, ownerID string) error {
	vehicle, err := s.repo.GetVehicleByID(ctx, id)

	if err != nil {
		return err
	}

	if vehicle.OwnerID != ownerID {
		return fmt.Errorf("%w: only the owner can deactivate a vehicle", ErrNotOwner)
	}

	if err := s.repo.SetVehicleStatus(ctx, id, StatusInactive); err != nil {
		return err
	}

	s.cache.Delete(id)

	return nil
}
