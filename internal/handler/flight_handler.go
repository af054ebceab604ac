package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/airhart/airport-api/internal/app"
	"github.com/airhart/airport-api/internal/repository"
	"github.com/airhart/airport-api/internal/service/domain"
)

type FlightHandler struct {
	app *app.App
}

func NewFlightHandler(app *app.App) *FlightHandler {
	return &FlightHandler{
		app: app,
	}
}

func (h *FlightHandler) HandleCreate(ctx *gin.Context) {
	input, ok := h.bindFlightInput(ctx)
	if !ok {
		return
	}

	flight, err := h.app.FlightService.CreateFlight(input)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(201, NewFlightDetailView(flight))
}

func (h *FlightHandler) HandleList(ctx *gin.Context) {
	filter, ok := h.bindFlightFilter(ctx)
	if !ok {
		return
	}

	summaries, err := h.app.FlightService.GetFlightSummaries(filter)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(200, summaries)
}

func (h *FlightHandler) HandleRetrieve(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	flight, err := h.app.FlightService.GetFlightByID(id)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(200, NewFlightDetailView(flight))
}

func (h *FlightHandler) HandleUpdate(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}
	input, ok := h.bindFlightInput(ctx)
	if !ok {
		return
	}

	flight, err := h.app.FlightService.UpdateFlight(id, input)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(200, NewFlightDetailView(flight))
}

func (h *FlightHandler) HandleDelete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := h.app.FlightService.DeleteFlight(id); err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.Status(204)
}

func (h *FlightHandler) bindFlightInput(ctx *gin.Context) (domain.FlightInput, bool) {
	var req FlightRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return domain.FlightInput{}, false
	}
	return domain.FlightInput{
		RouteID:       req.RouteID,
		AirplaneID:    req.AirplaneID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		CrewIDs:       req.CrewIDs,
	}, true
}

func (h *FlightHandler) bindFlightFilter(ctx *gin.Context) (repository.FlightFilter, bool) {
	airplaneID, ok := queryID(ctx, "airplane")
	if !ok {
		return repository.FlightFilter{}, false
	}
	filter := repository.FlightFilter{
		AirplaneID: airplaneID,
	}
	for _, bind := range []struct {
		param string
		dest  *time.Time
	}{
		{"departure_time", &filter.DepartureDate},
		{"arrival_time", &filter.ArrivalDate},
	} {
		value := ctx.Query(bind.param)
		if value == "" {
			continue
		}
		date, err := time.Parse("2006-01-02", value)
		if err != nil {
			ctx.JSON(400, gin.H{
				"error":  "Invalid date filter",
				"detail": bind.param + " must be formatted as YYYY-MM-DD",
			})
			return repository.FlightFilter{}, false
		}
		*bind.dest = date
	}
	return filter, true
}

type FlightRequest struct {
	RouteID       uint      `json:"route" binding:"required"`
	AirplaneID    uint      `json:"airplane" binding:"required"`
	DepartureTime time.Time `json:"departure_time" binding:"required"`
	ArrivalTime   time.Time `json:"arrival_time" binding:"required"`
	CrewIDs       []uint    `json:"crews"`
}
