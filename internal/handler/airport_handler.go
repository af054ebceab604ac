package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/airhart/airport-api/internal/app"
	"github.com/airhart/airport-api/internal/model"
)

type AirportHandler struct {
	app *app.App
}

func NewAirportHandler(app *app.App) *AirportHandler {
	return &AirportHandler{
		app: app,
	}
}

func (h *AirportHandler) HandleCreate(ctx *gin.Context) {
	var req CreateAirportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	airport := &model.Airport{
		Name:           req.Name,
		ClosestBigCity: req.ClosestBigCity,
	}
	if err := h.app.AirportService.CreateAirport(airport); err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(201, NewAirportView(airport))
}

func (h *AirportHandler) HandleList(ctx *gin.Context) {
	airports, err := h.app.AirportService.GetAllAirports()
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	views := make([]AirportView, 0, len(airports))
	for i := range airports {
		views = append(views, NewAirportView(&airports[i]))
	}
	ctx.JSON(200, views)
}

type CreateAirportRequest struct {
	Name           string `json:"name" binding:"required"`
	ClosestBigCity string `json:"closest_big_city" binding:"required"`
}
