package domain

import (
	"errors"

	"gorm.io/gorm"

	"github.com/airhart/airport-api/internal/model"
	"github.com/airhart/airport-api/internal/repository"
	"github.com/airhart/airport-api/internal/service"
)

type RouteService interface {
	CreateRoute(sourceID, destinationID uint, distance int) (*model.Route, error)
	GetRouteByID(id uint) (*model.Route, error)
	GetRoutes(filter repository.RouteFilter) ([]model.Route, error)
}

type routeService struct {
	db          *gorm.DB
	repo        repository.RouteRepo
	airportRepo repository.AirportRepo
}

var _ RouteService = (*routeService)(nil)

func NewRouteService(db *gorm.DB, routeRepo repository.RouteRepo, airportRepo repository.AirportRepo) *routeService {
	return &routeService{
		db:          db,
		repo:        routeRepo,
		airportRepo: airportRepo,
	}
}

func (s *routeService) CreateRoute(sourceID, destinationID uint, distance int) (*model.Route, error) {
	if sourceID == destinationID {
		return nil, service.ErrSameAirport
	}
	if distance < 1 {
		return nil, service.ErrInvalidDistance
	}
	for _, id := range []uint{sourceID, destinationID} {
		if _, err := s.airportRepo.GetByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, service.ErrNotFound
			}
			return nil, err
		}
	}

	route := &model.Route{
		SourceID:      sourceID,
		DestinationID: destinationID,
		Distance:      distance,
	}
	if err := s.repo.Create(route); err != nil {
		return nil, err
	}
	return s.repo.GetByID(route.ID)
}

func (s *routeService) GetRouteByID(id uint) (*model.Route, error) {
	route, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return route, nil
}

func (s *routeService) GetRoutes(filter repository.RouteFilter) ([]model.Route, error) {
	return s.repo.List(filter)
}
