package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/airhart/airport-api/internal/model"
)

// FlightFilter narrows flight listings. Date filters match the date
// portion of the timestamp; zero values mean "no filter".
type FlightFilter struct {
	DepartureDate time.Time
	ArrivalDate   time.Time
	AirplaneID    uint
}

type FlightRepo interface {
	WithTx(tx *gorm.DB) FlightRepo
	Create(flight *model.Flight) error
	GetByID(id uint) (*model.Flight, error)
	ListSummaries(filter FlightFilter) ([]model.FlightSummary, error)
	SummariesByIDs(ids []uint) ([]model.FlightSummary, error)
	Update(flight *model.Flight, crews []model.Crew) error
	Delete(id uint) error
}

type flightRepoGorm struct {
	db *gorm.DB
}

var _ FlightRepo = (*flightRepoGorm)(nil)

func NewFlightRepoGorm(db *gorm.DB) *flightRepoGorm {
	return &flightRepoGorm{
		db: db,
	}
}

func (r *flightRepoGorm) WithTx(tx *gorm.DB) FlightRepo {
	return &flightRepoGorm{
		db: tx,
	}
}

func (r *flightRepoGorm) Create(flight *model.Flight) error {
	return r.db.Create(flight).Error
}

func (r *flightRepoGorm) GetByID(id uint) (*model.Flight, error) {
	var flight model.Flight
	err := r.db.
		Preload("Route.Source").
		Preload("Route.Destination").
		Preload("Airplane.AirplaneType").
		Preload("Crews").
		Preload("Tickets", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"row", seat`)
		}).
		First(&flight, id).Error
	if err != nil {
		return nil, err
	}
	return &flight, nil
}

func (r *flightRepoGorm) summaryQuery() *gorm.DB {
	return r.db.Model(&model.Flight{}).
		Select(`flights.id,
			flights.departure_time,
			flights.arrival_time,
			src.name AS route_source,
			dst.name AS route_destination,
			airplanes.name AS airplane_name,
			airplanes."rows" * airplanes.seats_in_row AS airplane_capacity,
			airplanes."rows" * airplanes.seats_in_row
				- (SELECT count(*) FROM tickets WHERE tickets.flight_id = flights.id) AS tickets_available`).
		Joins("JOIN routes ON routes.id = flights.route_id").
		Joins("JOIN airports src ON src.id = routes.source_id").
		Joins("JOIN airports dst ON dst.id = routes.destination_id").
		Joins("JOIN airplanes ON airplanes.id = flights.airplane_id").
		Order("flights.departure_time DESC")
}

// ListSummaries computes tickets_available in the database so the value
// reflects committed tickets at query time.
func (r *flightRepoGorm) ListSummaries(filter FlightFilter) ([]model.FlightSummary, error) {
	query := r.summaryQuery()

	if !filter.DepartureDate.IsZero() {
		query = query.Where(
			"flights.departure_time >= ? AND flights.departure_time < ?",
			filter.DepartureDate, filter.DepartureDate.AddDate(0, 0, 1),
		)
	}
	if !filter.ArrivalDate.IsZero() {
		query = query.Where(
			"flights.arrival_time >= ? AND flights.arrival_time < ?",
			filter.ArrivalDate, filter.ArrivalDate.AddDate(0, 0, 1),
		)
	}
	if filter.AirplaneID != 0 {
		query = query.Where("flights.airplane_id = ?", filter.AirplaneID)
	}

	var summaries []model.FlightSummary
	if err := query.Scan(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *flightRepoGorm) SummariesByIDs(ids []uint) ([]model.FlightSummary, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var summaries []model.FlightSummary
	err := r.summaryQuery().Where("flights.id IN ?", ids).Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *flightRepoGorm) Update(flight *model.Flight, crews []model.Crew) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(flight).Updates(map[string]any{
			"route_id":       flight.RouteID,
			"airplane_id":    flight.AirplaneID,
			"departure_time": flight.DepartureTime,
			"arrival_time":   flight.ArrivalTime,
		}).Error; err != nil {
			return err
		}
		return tx.Model(flight).Association("Crews").Replace(crews)
	})
}

func (r *flightRepoGorm) Delete(id uint) error {
	result := r.db.Delete(&model.Flight{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
