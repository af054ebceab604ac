package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/airhart/airport-api/internal/app"
	"github.com/airhart/airport-api/internal/model"
)

type CrewHandler struct {
	app *app.App
}

func NewCrewHandler(app *app.App) *CrewHandler {
	return &CrewHandler{
		app: app,
	}
}

func (h *CrewHandler) HandleCreate(ctx *gin.Context) {
	var req CreateCrewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	crew := &model.Crew{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := h.app.CrewService.CreateCrew(crew); err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(201, NewCrewView(crew))
}

func (h *CrewHandler) HandleList(ctx *gin.Context) {
	crews, err := h.app.CrewService.GetAllCrews()
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	views := make([]CrewView, 0, len(crews))
	for i := range crews {
		views = append(views, NewCrewView(&crews[i]))
	}
	ctx.JSON(200, views)
}

type CreateCrewRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}
