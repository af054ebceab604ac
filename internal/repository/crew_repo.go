package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/airhart/airport-api/internal/model"
)

type CrewRepo interface {
	WithTx(tx *gorm.DB) CrewRepo
	Create(crew *model.Crew) error
	GetByIDs(ids []uint) ([]model.Crew, error)
	ListAll() ([]model.Crew, error)
}

type crewRepoGorm struct {
	db *gorm.DB
}

var _ CrewRepo = (*crewRepoGorm)(nil)

func NewCrewRepoGorm(db *gorm.DB) *crewRepoGorm {
	return &crewRepoGorm{
		db: db,
	}
}

func (r *crewRepoGorm) WithTx(tx *gorm.DB) CrewRepo {
	return &crewRepoGorm{
		db: tx,
	}
}

func (r *crewRepoGorm) Create(crew *model.Crew) error {
	ctx := context.Background()
	if err := gorm.G[model.Crew](r.db).Create(ctx, crew); err != nil {
		return err
	}
	return nil
}

func (r *crewRepoGorm) GetByIDs(ids []uint) ([]model.Crew, error) {
	var crews []model.Crew
	if err := r.db.Where("id IN ?", ids).Find(&crews).Error; err != nil {
		return nil, err
	}
	return crews, nil
}

func (r *crewRepoGorm) ListAll() ([]model.Crew, error) {
	ctx := context.Background()
	crews, err := gorm.G[model.Crew](r.db).Find(ctx)
	if err != nil {
		return nil, err
	}
	return crews, nil
}
