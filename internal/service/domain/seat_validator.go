package domain

import (
	"github.com/airhart/airport-api/internal/model"
	"github.com/airhart/airport-api/internal/service"
)

// ValidateSeat checks a requested (row, seat) against the geometry of
// the airplane operating the flight. Pure; the seat-taken check needs
// storage and lives in the order service.
func ValidateSeat(flightID uint, row, seat int, airplane *model.Airplane) *service.SeatError {
	if row < 1 || row > airplane.Rows {
		return &service.SeatError{
			FlightID: flightID,
			Row:      row,
			Seat:     seat,
			Reason:   service.RowOutOfRange,
		}
	}
	if seat < 1 || seat > airplane.SeatsInRow {
		return &service.SeatError{
			FlightID: flightID,
			Row:      row,
			Seat:     seat,
			Reason:   service.SeatOutOfRange,
		}
	}
	return nil
}
