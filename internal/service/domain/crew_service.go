package domain

import (
	"gorm.io/gorm"

	"github.com/airhart/airport-api/internal/model"
	"github.com/airhart/airport-api/internal/repository"
)

type CrewService interface {
	CreateCrew(crew *model.Crew) error
	GetAllCrews() ([]model.Crew, error)
}

type crewService struct {
	db   *gorm.DB
	repo repository.CrewRepo
}

var _ CrewService = (*crewService)(nil)

func NewCrewService(db *gorm.DB, crewRepo repository.CrewRepo) *crewService {
	return &crewService{
		db:   db,
		repo: crewRepo,
	}
}

func (s *crewService) CreateCrew(crew *model.Crew) error {
	if err := s.repo.Create(crew); err != nil {
		return err
	}
	return nil
}

func (s *crewService) GetAllCrews() ([]model.Crew, error) {
	return s.repo.ListAll()
}
