package domain

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/airhart/airport-api/internal/model"
	"github.com/airhart/airport-api/internal/repository"
	"github.com/airhart/airport-api/internal/service"
)

// FlightCache caches the unfiltered flight list view; availability
// inside it goes stale on any flight or order write, so writers must
// invalidate.
type FlightCache interface {
	GetFlights() ([]model.FlightSummary, error)
	SetFlights(flights []model.FlightSummary) error
	InvalidateFlights() error
}

type FlightInput struct {
	RouteID       uint
	AirplaneID    uint
	DepartureTime time.Time
	ArrivalTime   time.Time
	CrewIDs       []uint
}

type FlightService interface {
	CreateFlight(input FlightInput) (*model.Flight, error)
	GetFlightByID(id uint) (*model.Flight, error)
	GetFlightSummaries(filter repository.FlightFilter) ([]model.FlightSummary, error)
	UpdateFlight(id uint, input FlightInput) (*model.Flight, error)
	DeleteFlight(id uint) error
}

type flightService struct {
	db           *gorm.DB
	repo         repository.FlightRepo
	routeRepo    repository.RouteRepo
	airplaneRepo repository.AirplaneRepo
	crewRepo     repository.CrewRepo
	cache        FlightCache
	logger       *zap.Logger
}

var _ FlightService = (*flightService)(nil)

func NewFlightService(
	db *gorm.DB,
	flightRepo repository.FlightRepo,
	routeRepo repository.RouteRepo,
	airplaneRepo repository.AirplaneRepo,
	crewRepo repository.CrewRepo,
	cache FlightCache,
	logger *zap.Logger,
) *flightService {
	return &flightService{
		db:           db,
		repo:         flightRepo,
		routeRepo:    routeRepo,
		airplaneRepo: airplaneRepo,
		crewRepo:     crewRepo,
		cache:        cache,
		logger:       logger,
	}
}

func (s *flightService) CreateFlight(input FlightInput) (*model.Flight, error) {
	crews, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	flight := &model.Flight{
		RouteID:       input.RouteID,
		AirplaneID:    input.AirplaneID,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.ArrivalTime,
		Crews:         crews,
	}
	if err := s.repo.Create(flight); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return s.repo.GetByID(flight.ID)
}

func (s *flightService) GetFlightByID(id uint) (*model.Flight, error) {
	flight, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return flight, nil
}

func (s *flightService) GetFlightSummaries(filter repository.FlightFilter) ([]model.FlightSummary, error) {
	unfiltered := filter == (repository.FlightFilter{})
	if unfiltered && s.cache != nil {
		if cached, err := s.cache.GetFlights(); err == nil && cached != nil {
			return cached, nil
		}
	}

	summaries, err := s.repo.ListSummaries(filter)
	if err != nil {
		return nil, err
	}

	for _, summary := range summaries {
		// more tickets than seats means the seat guard was bypassed
		if summary.TicketsAvailable < 0 {
			s.logger.Error("flight oversold, data integrity fault",
				zap.Uint("flight_id", summary.ID),
				zap.Int("tickets_available", summary.TicketsAvailable),
			)
		}
	}

	if unfiltered && s.cache != nil {
		if err := s.cache.SetFlights(summaries); err != nil {
			s.logger.Warn("failed to cache flight list", zap.Error(err))
		}
	}
	return summaries, nil
}

func (s *flightService) UpdateFlight(id uint, input FlightInput) (*model.Flight, error) {
	crews, err := s.validateInput(input)
	if err != nil {
		return nil, err
	}

	flight, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}

	flight.RouteID = input.RouteID
	flight.AirplaneID = input.AirplaneID
	flight.DepartureTime = input.DepartureTime
	flight.ArrivalTime = input.ArrivalTime
	if err := s.repo.Update(flight, crews); err != nil {
		return nil, err
	}
	s.invalidateCache()
	return s.repo.GetByID(id)
}

func (s *flightService) DeleteFlight(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return err
	}
	s.invalidateCache()
	return nil
}

func (s *flightService) validateInput(input FlightInput) ([]model.Crew, error) {
	if !input.ArrivalTime.After(input.DepartureTime) {
		return nil, service.ErrInvalidTimeRange
	}
	if _, err := s.routeRepo.GetByID(input.RouteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	if _, err := s.airplaneRepo.GetByID(input.AirplaneID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}

	if len(input.CrewIDs) == 0 {
		return nil, nil
	}
	crews, err := s.crewRepo.GetByIDs(input.CrewIDs)
	if err != nil {
		return nil, err
	}
	if len(crews) != len(input.CrewIDs) {
		return nil, service.ErrNotFound
	}
	return crews, nil
}

func (s *flightService) invalidateCache() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(); err != nil {
		s.logger.Warn("failed to invalidate flight cache", zap.Error(err))
	}
}
