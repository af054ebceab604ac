package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/airhart/airport-api/internal/app"
	"github.com/airhart/airport-api/internal/model"
)

type AirplaneHandler struct {
	app *app.App
}

func NewAirplaneHandler(app *app.App) *AirplaneHandler {
	return &AirplaneHandler{
		app: app,
	}
}

func (h *AirplaneHandler) HandleCreateType(ctx *gin.Context) {
	var req CreateAirplaneTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	airplaneType := &model.AirplaneType{Name: req.Name}
	if err := h.app.AirplaneService.CreateAirplaneType(airplaneType); err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(201, AirplaneTypeView{ID: airplaneType.ID, Name: airplaneType.Name})
}

func (h *AirplaneHandler) HandleListTypes(ctx *gin.Context) {
	airplaneTypes, err := h.app.AirplaneService.GetAllAirplaneTypes()
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	views := make([]AirplaneTypeView, 0, len(airplaneTypes))
	for _, airplaneType := range airplaneTypes {
		views = append(views, AirplaneTypeView{ID: airplaneType.ID, Name: airplaneType.Name})
	}
	ctx.JSON(200, views)
}

func (h *AirplaneHandler) HandleCreate(ctx *gin.Context) {
	var req CreateAirplaneRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	airplane, err := h.app.AirplaneService.CreateAirplane(req.Name, req.Rows, req.SeatsInRow, req.AirplaneTypeID)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(201, NewAirplaneView(airplane))
}

func (h *AirplaneHandler) HandleList(ctx *gin.Context) {
	airplanes, err := h.app.AirplaneService.GetAllAirplanes()
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	views := make([]AirplaneView, 0, len(airplanes))
	for i := range airplanes {
		views = append(views, NewAirplaneView(&airplanes[i]))
	}
	ctx.JSON(200, views)
}

type CreateAirplaneTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateAirplaneRequest struct {
	Name           string `json:"name" binding:"required"`
	Rows           int    `json:"rows" binding:"required"`
	SeatsInRow     int    `json:"seats_in_row" binding:"required"`
	AirplaneTypeID uint   `json:"airplane_type" binding:"required"`
}
