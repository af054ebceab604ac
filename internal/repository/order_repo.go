package repository

import (
	"gorm.io/gorm"

	"github.com/airhart/airport-api/internal/model"
)

type OrderRepo interface {
	WithTx(tx *gorm.DB) OrderRepo
	Create(order *model.Order) error
	SeatTaken(flightID uint, row, seat int) (bool, error)
	ListByUser(userID uint, limit, offset int) ([]model.Order, error)
	CountByUser(userID uint) (int64, error)
}

type orderRepoGorm struct {
	db *gorm.DB
}

var _ OrderRepo = (*orderRepoGorm)(nil)

func NewOrderRepoGorm(db *gorm.DB) *orderRepoGorm {
	return &orderRepoGorm{
		db: db,
	}
}

func (r *orderRepoGorm) WithTx(tx *gorm.DB) OrderRepo {
	return &orderRepoGorm{
		db: tx,
	}
}

// Create persists the order together with its tickets in one insert
// chain; inside a transaction either both survive or neither does.
func (r *orderRepoGorm) Create(order *model.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepoGorm) SeatTaken(flightID uint, row, seat int) (bool, error) {
	var count int64
	err := r.db.Model(&model.Ticket{}).
		Where(`flight_id = ? AND "row" = ? AND seat = ?`, flightID, row, seat).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *orderRepoGorm) ListByUser(userID uint, limit, offset int) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.
		Preload("Tickets", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"row", seat`)
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepoGorm) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Order{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
