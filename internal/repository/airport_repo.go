package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/airhart/airport-api/internal/model"
)

type AirportRepo interface {
	WithTx(tx *gorm.DB) AirportRepo
	Create(airport *model.Airport) error
	GetByID(id uint) (*model.Airport, error)
	ListAll() ([]model.Airport, error)
}

type airportRepoGorm struct {
	db *gorm.DB
}

var _ AirportRepo = (*airportRepoGorm)(nil)

func NewAirportRepoGorm(db *gorm.DB) *airportRepoGorm {
	return &airportRepoGorm{
		db: db,
	}
}

func (r *airportRepoGorm) WithTx(tx *gorm.DB) AirportRepo {
	return &airportRepoGorm{
		db: tx,
	}
}

func (r *airportRepoGorm) Create(airport *model.Airport) error {
	ctx := context.Background()
	if err := gorm.G[model.Airport](r.db).Create(ctx, airport); err != nil {
		return err
	}
	return nil
}

func (r *airportRepoGorm) GetByID(id uint) (*model.Airport, error) {
	ctx := context.Background()
	airport, err := gorm.G[model.Airport](r.db).Where(&model.Airport{ID: id}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &airport, nil
}

func (r *airportRepoGorm) ListAll() ([]model.Airport, error) {
	ctx := context.Background()
	airports, err := gorm.G[model.Airport](r.db).Find(ctx)
	if err != nil {
		return nil, err
	}
	return airports, nil
}
