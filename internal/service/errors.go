package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("resource not found")
	ErrEmptyOrder       = errors.New("order must contain at least one ticket")
	ErrSameAirport      = errors.New("source and destination airports must be different")
	ErrInvalidTimeRange = errors.New("arrival time must be after departure time")
	ErrInvalidGeometry  = errors.New("rows and seats_in_row must be positive")
	ErrInvalidDistance  = errors.New("distance must be positive")
	ErrDuplicateName    = errors.New("name is already in use")
	ErrEmailTaken       = errors.New("email is already registered")
	ErrBadCredentials   = errors.New("invalid email or password")
)

type SeatErrorReason string

const (
	RowOutOfRange  SeatErrorReason = "row_out_of_range"
	SeatOutOfRange SeatErrorReason = "seat_out_of_range"
	SeatTaken      SeatErrorReason = "seat_taken"
)

// SeatError reports which requested seat failed validation and why, so
// the whole offending (flight, row, seat) triple reaches the caller.
type SeatError struct {
	FlightID uint
	Row      int
	Seat     int
	Reason   SeatErrorReason
}

func (e *SeatError) Error() string {
	switch e.Reason {
	case RowOutOfRange:
		return fmt.Sprintf("flight %d: row %d is out of range", e.FlightID, e.Row)
	case SeatOutOfRange:
		return fmt.Sprintf("flight %d: seat %d is out of range", e.FlightID, e.Seat)
	case SeatTaken:
		return fmt.Sprintf("flight %d: seat %d in row %d is already taken", e.FlightID, e.Seat, e.Row)
	}
	return fmt.Sprintf("flight %d: invalid seat (row %d, seat %d)", e.FlightID, e.Row, e.Seat)
}
