package domain

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/airhart/airport-api/internal/model"
	"github.com/airhart/airport-api/internal/repository"
	"github.com/airhart/airport-api/internal/service"
)

type AirportService interface {
	CreateAirport(airport *model.Airport) error
	GetAirportByID(id uint) (*model.Airport, error)
	GetAllAirports() ([]model.Airport, error)
}

type airportService struct {
	db   *gorm.DB
	repo repository.AirportRepo
}

var _ AirportService = (*airportService)(nil)

func NewAirportService(db *gorm.DB, airportRepo repository.AirportRepo) *airportService {
	return &airportService{
		db:   db,
		repo: airportRepo,
	}
}

func (s *airportService) CreateAirport(airport *model.Airport) error {
	if err := s.repo.Create(airport); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return service.ErrDuplicateName
		}
		return err
	}
	return nil
}

func (s *airportService) GetAirportByID(id uint) (*model.Airport, error) {
	airport, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return airport, nil
}

func (s *airportService) GetAllAirports() ([]model.Airport, error) {
	airports, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return airports, nil
}
