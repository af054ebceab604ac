package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"github.com/airhart/airport-api/internal/model"
	"github.com/airhart/airport-api/internal/repository"
	"github.com/airhart/airport-api/internal/service"
)

func TestGetFlightSummaries_CacheHit(t *testing.T) {
	flightRepo := &MockFlightRepo{}
	cache := &MockFlightCache{}
	svc := NewFlightService(nil, flightRepo, &MockRouteRepo{}, &MockAirplaneRepo{}, &MockCrewRepo{}, cache, zap.NewNop())

	cached := []model.FlightSummary{{ID: 1, TicketsAvailable: 60}}
	cache.On("GetFlights").Return(cached, nil)

	summaries, err := svc.GetFlightSummaries(repository.FlightFilter{})

	assert.NoError(t, err)
	assert.Equal(t, cached, summaries)
	flightRepo.AssertNotCalled(t, "ListSummaries")
}

func TestGetFlightSummaries_CacheMissPopulatesCache(t *testing.T) {
	flightRepo := &MockFlightRepo{}
	cache := &MockFlightCache{}
	svc := NewFlightService(nil, flightRepo, &MockRouteRepo{}, &MockAirplaneRepo{}, &MockCrewRepo{}, cache, zap.NewNop())

	fresh := []model.FlightSummary{{ID: 1, AirplaneCapacity: 60, TicketsAvailable: 59}}
	cache.On("GetFlights").Return(nil, nil)
	flightRepo.On("ListSummaries", repository.FlightFilter{}).Return(fresh, nil)
	cache.On("SetFlights", fresh).Return(nil)

	summaries, err := svc.GetFlightSummaries(repository.FlightFilter{})

	assert.NoError(t, err)
	assert.Equal(t, fresh, summaries)
	cache.AssertCalled(t, "SetFlights", fresh)
}

func TestGetFlightSummaries_FilteredBypassesCache(t *testing.T) {
	flightRepo := &MockFlightRepo{}
	cache := &MockFlightCache{}
	svc := NewFlightService(nil, flightRepo, &MockRouteRepo{}, &MockAirplaneRepo{}, &MockCrewRepo{}, cache, zap.NewNop())

	filter := repository.FlightFilter{AirplaneID: 2}
	fresh := []model.FlightSummary{{ID: 4, TicketsAvailable: 12}}
	flightRepo.On("ListSummaries", filter).Return(fresh, nil)

	summaries, err := svc.GetFlightSummaries(filter)

	assert.NoError(t, err)
	assert.Equal(t, fresh, summaries)
	cache.AssertNotCalled(t, "GetFlights")
	cache.AssertNotCalled(t, "SetFlights")
}

func TestGetFlightSummaries_OversoldFlightLogged(t *testing.T) {
	flightRepo := &MockFlightRepo{}
	cache := &MockFlightCache{}
	core, logs := observer.New(zap.ErrorLevel)
	svc := NewFlightService(nil, flightRepo, &MockRouteRepo{}, &MockAirplaneRepo{}, &MockCrewRepo{}, cache, zap.New(core))

	oversold := []model.FlightSummary{{ID: 9, AirplaneCapacity: 60, TicketsAvailable: -1}}
	cache.On("GetFlights").Return(nil, nil)
	flightRepo.On("ListSummaries", repository.FlightFilter{}).Return(oversold, nil)
	cache.On("SetFlights", oversold).Return(nil)

	summaries, err := svc.GetFlightSummaries(repository.FlightFilter{})

	assert.NoError(t, err)
	// reported as-is, never clamped
	assert.Equal(t, -1, summaries[0].TicketsAvailable)
	assert.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "oversold")
}

func TestCreateFlight_InvalidTimeRange(t *testing.T) {
	flightRepo := &MockFlightRepo{}
	svc := NewFlightService(nil, flightRepo, &MockRouteRepo{}, &MockAirplaneRepo{}, &MockCrewRepo{}, nil, zap.NewNop())

	departure := time.Date(2026, 7, 25, 10, 0, 0, 0, time.UTC)
	for _, arrival := range []time.Time{departure, departure.Add(-time.Hour)} {
		_, err := svc.CreateFlight(FlightInput{
			RouteID:       1,
			AirplaneID:    1,
			DepartureTime: departure,
			ArrivalTime:   arrival,
		})
		assert.ErrorIs(t, err, service.ErrInvalidTimeRange)
	}
	flightRepo.AssertNotCalled(t, "Create")
}

func TestCreateFlight_UnknownCrewRejected(t *testing.T) {
	flightRepo := &MockFlightRepo{}
	routeRepo := &MockRouteRepo{}
	airplaneRepo := &MockAirplaneRepo{}
	crewRepo := &MockCrewRepo{}
	svc := NewFlightService(nil, flightRepo, routeRepo, airplaneRepo, crewRepo, nil, zap.NewNop())

	routeRepo.On("GetByID", uint(1)).Return(&model.Route{ID: 1}, nil)
	airplaneRepo.On("GetByID", uint(1)).Return(&model.Airplane{ID: 1, Rows: 10, SeatsInRow: 6}, nil)
	crewRepo.On("GetByIDs", []uint{5, 6}).Return([]model.Crew{{ID: 5}}, nil)

	departure := time.Date(2026, 7, 25, 10, 0, 0, 0, time.UTC)
	_, err := svc.CreateFlight(FlightInput{
		RouteID:       1,
		AirplaneID:    1,
		DepartureTime: departure,
		ArrivalTime:   departure.Add(5 * time.Hour),
		CrewIDs:       []uint{5, 6},
	})

	assert.ErrorIs(t, err, service.ErrNotFound)
	flightRepo.AssertNotCalled(t, "Create")
}

func TestDeleteFlight_InvalidatesCache(t *testing.T) {
	flightRepo := &MockFlightRepo{}
	cache := &MockFlightCache{}
	svc := NewFlightService(nil, flightRepo, &MockRouteRepo{}, &MockAirplaneRepo{}, &MockCrewRepo{}, cache, zap.NewNop())

	flightRepo.On("Delete", uint(3)).Return(nil)
	cache.On("InvalidateFlights").Return(nil)

	err := svc.DeleteFlight(3)

	assert.NoError(t, err)
	cache.AssertCalled(t, "InvalidateFlights")
}

func TestGetFlightByID_NotFound(t *testing.T) {
	flightRepo := &MockFlightRepo{}
	svc := NewFlightService(nil, flightRepo, &MockRouteRepo{}, &MockAirplaneRepo{}, &MockCrewRepo{}, nil, zap.NewNop())

	flightRepo.On("GetByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)

	flight, err := svc.GetFlightByID(99)

	assert.Nil(t, flight)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestDeleteFlight_UnknownID(t *testing.T) {
	flightRepo := &MockFlightRepo{}
	cache := &MockFlightCache{}
	svc := NewFlightService(nil, flightRepo, &MockRouteRepo{}, &MockAirplaneRepo{}, &MockCrewRepo{}, cache, zap.NewNop())

	flightRepo.On("Delete", uint(99)).Return(gorm.ErrRecordNotFound)

	err := svc.DeleteFlight(99)

	assert.ErrorIs(t, err, service.ErrNotFound)
	cache.AssertNotCalled(t, "InvalidateFlights")
}

func TestDeleteFlight_ThenRetrieveNotFound(t *testing.T) {
	flightRepo := &MockFlightRepo{}
	cache := &MockFlightCache{}
	svc := NewFlightService(nil, flightRepo, &MockRouteRepo{}, &MockAirplaneRepo{}, &MockCrewRepo{}, cache, zap.NewNop())

	flightRepo.On("Delete", uint(3)).Return(nil)
	flightRepo.On("GetByID", uint(3)).Return(nil, gorm.ErrRecordNotFound)
	cache.On("InvalidateFlights").Return(nil)

	assert.NoError(t, svc.DeleteFlight(3))

	flight, err := svc.GetFlightByID(3)

	assert.Nil(t, flight)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
