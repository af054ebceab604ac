package domain

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/airhart/airport-api/internal/model"
	"github.com/airhart/airport-api/internal/repository"
	"github.com/airhart/airport-api/internal/service"
)

type AirplaneService interface {
	CreateAirplaneType(airplaneType *model.AirplaneType) error
	GetAllAirplaneTypes() ([]model.AirplaneType, error)
	CreateAirplane(name string, rows, seatsInRow int, airplaneTypeID uint) (*model.Airplane, error)
	GetAirplaneByID(id uint) (*model.Airplane, error)
	GetAllAirplanes() ([]model.Airplane, error)
}

type airplaneService struct {
	db        *gorm.DB
	typeRepo  repository.AirplaneTypeRepo
	planeRepo repository.AirplaneRepo
}

var _ AirplaneService = (*airplaneService)(nil)

func NewAirplaneService(db *gorm.DB, typeRepo repository.AirplaneTypeRepo, planeRepo repository.AirplaneRepo) *airplaneService {
	return &airplaneService{
		db:        db,
		typeRepo:  typeRepo,
		planeRepo: planeRepo,
	}
}

func (s *airplaneService) CreateAirplaneType(airplaneType *model.AirplaneType) error {
	if err := s.typeRepo.Create(airplaneType); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return service.ErrDuplicateName
		}
		return err
	}
	return nil
}

func (s *airplaneService) GetAllAirplaneTypes() ([]model.AirplaneType, error) {
	return s.typeRepo.ListAll()
}

// CreateAirplane rejects non-positive geometry up front; capacity and
// seat bounds both derive from rows and seats_in_row, and an airplane
// with flights keeps its geometry for good.
func (s *airplaneService) CreateAirplane(name string, rows, seatsInRow int, airplaneTypeID uint) (*model.Airplane, error) {
	if rows < 1 || seatsInRow < 1 {
		return nil, service.ErrInvalidGeometry
	}
	if _, err := s.typeRepo.GetByID(airplaneTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}

	airplane := &model.Airplane{
		Name:           name,
		Rows:           rows,
		SeatsInRow:     seatsInRow,
		AirplaneTypeID: airplaneTypeID,
	}
	if err := s.planeRepo.Create(airplane); err != nil {
		return nil, err
	}
	return s.planeRepo.GetByID(airplane.ID)
}

func (s *airplaneService) GetAirplaneByID(id uint) (*model.Airplane, error) {
	airplane, err := s.planeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return airplane, nil
}

func (s *airplaneService) GetAllAirplanes() ([]model.Airplane, error) {
	return s.planeRepo.ListAll()
}
