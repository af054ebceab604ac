package domain

import (
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/airhart/airport-api/internal/model"
	"github.com/airhart/airport-api/internal/repository"
)

type MockAirportRepo struct {
	mock.Mock
}

func (m *MockAirportRepo) WithTx(tx *gorm.DB) repository.AirportRepo { return m }

func (m *MockAirportRepo) Create(airport *model.Airport) error {
	args := m.Called(airport)
	return args.Error(0)
}

func (m *MockAirportRepo) GetByID(id uint) (*model.Airport, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Airport), args.Error(1)
}

func (m *MockAirportRepo) ListAll() ([]model.Airport, error) {
	args := m.Called()
	return args.Get(0).([]model.Airport), args.Error(1)
}

type MockRouteRepo struct {
	mock.Mock
}

func (m *MockRouteRepo) WithTx(tx *gorm.DB) repository.RouteRepo { return m }

func (m *MockRouteRepo) Create(route *model.Route) error {
	args := m.Called(route)
	return args.Error(0)
}

func (m *MockRouteRepo) GetByID(id uint) (*model.Route, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Route), args.Error(1)
}

func (m *MockRouteRepo) List(filter repository.RouteFilter) ([]model.Route, error) {
	args := m.Called(filter)
	return args.Get(0).([]model.Route), args.Error(1)
}

type MockAirplaneRepo struct {
	mock.Mock
}

func (m *MockAirplaneRepo) WithTx(tx *gorm.DB) repository.AirplaneRepo { return m }

func (m *MockAirplaneRepo) Create(airplane *model.Airplane) error {
	args := m.Called(airplane)
	return args.Error(0)
}

func (m *MockAirplaneRepo) GetByID(id uint) (*model.Airplane, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Airplane), args.Error(1)
}

func (m *MockAirplaneRepo) ListAll() ([]model.Airplane, error) {
	args := m.Called()
	return args.Get(0).([]model.Airplane), args.Error(1)
}

type MockCrewRepo struct {
	mock.Mock
}

func (m *MockCrewRepo) WithTx(tx *gorm.DB) repository.CrewRepo { return m }

func (m *MockCrewRepo) Create(crew *model.Crew) error {
	args := m.Called(crew)
	return args.Error(0)
}

func (m *MockCrewRepo) GetByIDs(ids []uint) ([]model.Crew, error) {
	args := m.Called(ids)
	return args.Get(0).([]model.Crew), args.Error(1)
}

func (m *MockCrewRepo) ListAll() ([]model.Crew, error) {
	args := m.Called()
	return args.Get(0).([]model.Crew), args.Error(1)
}

type MockFlightRepo struct {
	mock.Mock
}

func (m *MockFlightRepo) WithTx(tx *gorm.DB) repository.FlightRepo { return m }

func (m *MockFlightRepo) Create(flight *model.Flight) error {
	args := m.Called(flight)
	return args.Error(0)
}

func (m *MockFlightRepo) GetByID(id uint) (*model.Flight, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Flight), args.Error(1)
}

func (m *MockFlightRepo) ListSummaries(filter repository.FlightFilter) ([]model.FlightSummary, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FlightSummary), args.Error(1)
}

func (m *MockFlightRepo) SummariesByIDs(ids []uint) ([]model.FlightSummary, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FlightSummary), args.Error(1)
}

func (m *MockFlightRepo) Update(flight *model.Flight, crews []model.Crew) error {
	args := m.Called(flight, crews)
	return args.Error(0)
}

func (m *MockFlightRepo) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) WithTx(tx *gorm.DB) repository.OrderRepo { return m }

func (m *MockOrderRepo) Create(order *model.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepo) SeatTaken(flightID uint, row, seat int) (bool, error) {
	args := m.Called(flightID, row, seat)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepo) ListByUser(userID uint, limit, offset int) ([]model.Order, error) {
	args := m.Called(userID, limit, offset)
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepo) CountByUser(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockFlightCache struct {
	mock.Mock
}

func (m *MockFlightCache) GetFlights() ([]model.FlightSummary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FlightSummary), args.Error(1)
}

func (m *MockFlightCache) SetFlights(flights []model.FlightSummary) error {
	args := m.Called(flights)
	return args.Error(0)
}

func (m *MockFlightCache) InvalidateFlights() error {
	args := m.Called()
	return args.Error(0)
}
