package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/airhart/airport-api/internal/model"
	"github.com/airhart/airport-api/internal/repository"
	"github.com/airhart/airport-api/internal/service"
)

const uniqueViolationCode = "23505"

type TicketRequest struct {
	FlightID uint
	Row      int
	Seat     int
}

// OrdersPage is one page of a user's orders plus the flight summaries
// their tickets point at, so the listing can nest flight details.
type OrdersPage struct {
	Orders  []model.Order
	Flights map[uint]model.FlightSummary
	Total   int64
}

type OrderService interface {
	CreateOrder(userID uint, tickets []TicketRequest) (*model.Order, error)
	GetOrdersPage(userID uint, limit, offset int) (*OrdersPage, error)
}

type orderService struct {
	db         *gorm.DB
	repo       repository.OrderRepo
	flightRepo repository.FlightRepo
	cache      FlightCache
	logger     *zap.Logger

	// swapped out in tests to run the body without a database
	runInTx func(fn func(tx *gorm.DB) error) error
}

var _ OrderService = (*orderService)(nil)

func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepo,
	flightRepo repository.FlightRepo,
	cache FlightCache,
	logger *zap.Logger,
) *orderService {
	return &orderService{
		db:         db,
		repo:       orderRepo,
		flightRepo: flightRepo,
		cache:      cache,
		logger:     logger,
		runInTx: func(fn func(tx *gorm.DB) error) error {
			return db.Transaction(fn)
		},
	}
}

type seatKey struct {
	flightID uint
	row      int
	seat     int
}

// CreateOrder persists one order and all its tickets atomically. Each
// requested seat is validated against the flight's airplane geometry,
// against tickets already sold, and against earlier tickets of the same
// batch; any failure rolls the whole order back. The unique index on
// (flight_id, row, seat) catches races the pre-check cannot see, and
// its violation is reported as the same seat-taken error.
func (s *orderService) CreateOrder(userID uint, tickets []TicketRequest) (*model.Order, error) {
	if len(tickets) == 0 {
		return nil, service.ErrEmptyOrder
	}

	order := &model.Order{
		Reference: uuid.NewString(),
		UserID:    userID,
	}

	err := s.runInTx(func(tx *gorm.DB) error {
		orderRepo := s.repo.WithTx(tx)
		flightRepo := s.flightRepo.WithTx(tx)

		flights := make(map[uint]*model.Flight)
		requested := make(map[seatKey]bool)
		for _, req := range tickets {
			flight, ok := flights[req.FlightID]
			if !ok {
				loaded, err := flightRepo.GetByID(req.FlightID)
				if err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return service.ErrNotFound
					}
					return err
				}
				flight = loaded
				flights[req.FlightID] = flight
			}

			if seatErr := ValidateSeat(req.FlightID, req.Row, req.Seat, &flight.Airplane); seatErr != nil {
				return seatErr
			}

			key := seatKey{flightID: req.FlightID, row: req.Row, seat: req.Seat}
			if requested[key] {
				return &service.SeatError{
					FlightID: req.FlightID,
					Row:      req.Row,
					Seat:     req.Seat,
					Reason:   service.SeatTaken,
				}
			}

			taken, err := orderRepo.SeatTaken(req.FlightID, req.Row, req.Seat)
			if err != nil {
				return err
			}
			if taken {
				return &service.SeatError{
					FlightID: req.FlightID,
					Row:      req.Row,
					Seat:     req.Seat,
					Reason:   service.SeatTaken,
				}
			}

			requested[key] = true
			order.Tickets = append(order.Tickets, model.Ticket{
				Row:      req.Row,
				Seat:     req.Seat,
				FlightID: req.FlightID,
			})
		}

		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, s.translateSeatConflict(err, tickets)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateFlights(); err != nil {
			s.logger.Warn("failed to invalidate flight cache", zap.Error(err))
		}
	}
	return order, nil
}

func (s *orderService) GetOrdersPage(userID uint, limit, offset int) (*OrdersPage, error) {
	orders, err := s.repo.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	var flightIDs []uint
	seen := make(map[uint]bool)
	for _, order := range orders {
		for _, ticket := range order.Tickets {
			if !seen[ticket.FlightID] {
				seen[ticket.FlightID] = true
				flightIDs = append(flightIDs, ticket.FlightID)
			}
		}
	}
	summaries, err := s.flightRepo.SummariesByIDs(flightIDs)
	if err != nil {
		return nil, err
	}
	flights := make(map[uint]model.FlightSummary, len(summaries))
	for _, summary := range summaries {
		flights[summary.ID] = summary
	}

	return &OrdersPage{
		Orders:  orders,
		Flights: flights,
		Total:   total,
	}, nil
}

// translateSeatConflict turns a unique-index violation from a lost race
// into the seat-taken error the in-transaction check would have raised.
// The aborted transaction cannot tell us which seat collided, so the
// batch is re-checked against committed state to name the loser.
func (s *orderService) translateSeatConflict(err error, tickets []TicketRequest) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode ||
		!strings.Contains(pgErr.ConstraintName, "idx_ticket_flight_seat") {
		return err
	}

	for _, req := range tickets {
		taken, checkErr := s.repo.SeatTaken(req.FlightID, req.Row, req.Seat)
		if checkErr == nil && taken {
			return &service.SeatError{
				FlightID: req.FlightID,
				Row:      req.Row,
				Seat:     req.Seat,
				Reason:   service.SeatTaken,
			}
		}
	}
	// the winner was deleted in the meantime; still a conflict
	first := tickets[0]
	return &service.SeatError{
		FlightID: first.FlightID,
		Row:      first.Row,
		Seat:     first.Seat,
		Reason:   service.SeatTaken,
	}
}
