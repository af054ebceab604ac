package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/airhart/airport-api/internal/service"
)

// respondError maps service errors onto status codes. Validation and
// conflict failures become 4xx with the offending detail; anything
// unexpected is a 500 and the detail stays in the log.
func respondError(ctx *gin.Context, logger *zap.Logger, err error) {
	var seatErr *service.SeatError
	if errors.As(err, &seatErr) {
		ctx.JSON(400, gin.H{
			"error":     "Seat validation failed",
			"detail":    seatErr.Error(),
			"flight_id": seatErr.FlightID,
			"row":       seatErr.Row,
			"seat":      seatErr.Seat,
			"reason":    seatErr.Reason,
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrEmptyOrder),
		errors.Is(err, service.ErrSameAirport),
		errors.Is(err, service.ErrInvalidTimeRange),
		errors.Is(err, service.ErrInvalidGeometry),
		errors.Is(err, service.ErrInvalidDistance),
		errors.Is(err, service.ErrDuplicateName),
		errors.Is(err, service.ErrEmailTaken):
		ctx.JSON(400, gin.H{
			"error":  "Validation failed",
			"detail": err.Error(),
		})
	case errors.Is(err, service.ErrBadCredentials):
		ctx.JSON(401, gin.H{
			"error": "Invalid email or password",
		})
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(404, gin.H{
			"error": "Resource not found",
		})
	default:
		logger.Error("request failed", zap.Error(err))
		ctx.JSON(500, gin.H{
			"error":   "Internal server error",
			"message": "Failed to process request, please try again later",
		})
	}
}
