package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/airhart/airport-api/internal/model"
)

type RouteFilter struct {
	SourceID      uint
	DestinationID uint
}

type RouteRepo interface {
	WithTx(tx *gorm.DB) RouteRepo
	Create(route *model.Route) error
	GetByID(id uint) (*model.Route, error)
	List(filter RouteFilter) ([]model.Route, error)
}

type routeRepoGorm struct {
	db *gorm.DB
}

var _ RouteRepo = (*routeRepoGorm)(nil)

func NewRouteRepoGorm(db *gorm.DB) *routeRepoGorm {
	return &routeRepoGorm{
		db: db,
	}
}

func (r *routeRepoGorm) WithTx(tx *gorm.DB) RouteRepo {
	return &routeRepoGorm{
		db: tx,
	}
}

func (r *routeRepoGorm) Create(route *model.Route) error {
	ctx := context.Background()
	if err := gorm.G[model.Route](r.db).Create(ctx, route); err != nil {
		return err
	}
	return nil
}

func (r *routeRepoGorm) GetByID(id uint) (*model.Route, error) {
	var route model.Route
	err := r.db.Preload("Source").Preload("Destination").First(&route, id).Error
	if err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *routeRepoGorm) List(filter RouteFilter) ([]model.Route, error) {
	query := r.db.Preload("Source").Preload("Destination")
	if filter.SourceID != 0 {
		query = query.Where("source_id = ?", filter.SourceID)
	}
	if filter.DestinationID != 0 {
		query = query.Where("destination_id = ?", filter.DestinationID)
	}

	var routes []model.Route
	if err := query.Order("id").Find(&routes).Error; err != nil {
		return nil, err
	}
	return routes, nil
}
