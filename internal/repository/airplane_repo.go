package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/airhart/airport-api/internal/model"
)

type AirplaneTypeRepo interface {
	WithTx(tx *gorm.DB) AirplaneTypeRepo
	Create(airplaneType *model.AirplaneType) error
	GetByID(id uint) (*model.AirplaneType, error)
	ListAll() ([]model.AirplaneType, error)
}

type airplaneTypeRepoGorm struct {
	db *gorm.DB
}

var _ AirplaneTypeRepo = (*airplaneTypeRepoGorm)(nil)

func NewAirplaneTypeRepoGorm(db *gorm.DB) *airplaneTypeRepoGorm {
	return &airplaneTypeRepoGorm{
		db: db,
	}
}

func (r *airplaneTypeRepoGorm) WithTx(tx *gorm.DB) AirplaneTypeRepo {
	return &airplaneTypeRepoGorm{
		db: tx,
	}
}

func (r *airplaneTypeRepoGorm) Create(airplaneType *model.AirplaneType) error {
	ctx := context.Background()
	if err := gorm.G[model.AirplaneType](r.db).Create(ctx, airplaneType); err != nil {
		return err
	}
	return nil
}

func (r *airplaneTypeRepoGorm) GetByID(id uint) (*model.AirplaneType, error) {
	ctx := context.Background()
	airplaneType, err := gorm.G[model.AirplaneType](r.db).Where(&model.AirplaneType{ID: id}).First(ctx)
	if err != nil {
		return nil, err
	}
	return &airplaneType, nil
}

func (r *airplaneTypeRepoGorm) ListAll() ([]model.AirplaneType, error) {
	ctx := context.Background()
	airplaneTypes, err := gorm.G[model.AirplaneType](r.db).Find(ctx)
	if err != nil {
		return nil, err
	}
	return airplaneTypes, nil
}

type AirplaneRepo interface {
	WithTx(tx *gorm.DB) AirplaneRepo
	Create(airplane *model.Airplane) error
	GetByID(id uint) (*model.Airplane, error)
	ListAll() ([]model.Airplane, error)
}

type airplaneRepoGorm struct {
	db *gorm.DB
}

var _ AirplaneRepo = (*airplaneRepoGorm)(nil)

func NewAirplaneRepoGorm(db *gorm.DB) *airplaneRepoGorm {
	return &airplaneRepoGorm{
		db: db,
	}
}

func (r *airplaneRepoGorm) WithTx(tx *gorm.DB) AirplaneRepo {
	return &airplaneRepoGorm{
		db: tx,
	}
}

func (r *airplaneRepoGorm) Create(airplane *model.Airplane) error {
	ctx := context.Background()
	if err := gorm.G[model.Airplane](r.db).Create(ctx, airplane); err != nil {
		return err
	}
	return nil
}

func (r *airplaneRepoGorm) GetByID(id uint) (*model.Airplane, error) {
	var airplane model.Airplane
	if err := r.db.Preload("AirplaneType").First(&airplane, id).Error; err != nil {
		return nil, err
	}
	return &airplane, nil
}

func (r *airplaneRepoGorm) ListAll() ([]model.Airplane, error) {
	var airplanes []model.Airplane
	if err := r.db.Preload("AirplaneType").Find(&airplanes).Error; err != nil {
		return nil, err
	}
	return airplanes, nil
}
