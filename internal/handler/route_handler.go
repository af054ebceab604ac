package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/airhart/airport-api/internal/app"
	"github.com/airhart/airport-api/internal/repository"
)

type RouteHandler struct {
	app *app.App
}

func NewRouteHandler(app *app.App) *RouteHandler {
	return &RouteHandler{
		app: app,
	}
}

func (h *RouteHandler) HandleCreate(ctx *gin.Context) {
	var req CreateRouteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	route, err := h.app.RouteService.CreateRoute(req.SourceID, req.DestinationID, req.Distance)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(201, NewRouteDetailView(route))
}

func (h *RouteHandler) HandleList(ctx *gin.Context) {
	sourceID, ok := queryID(ctx, "source")
	if !ok {
		return
	}
	destinationID, ok := queryID(ctx, "destination")
	if !ok {
		return
	}
	filter := repository.RouteFilter{
		SourceID:      sourceID,
		DestinationID: destinationID,
	}

	routes, err := h.app.RouteService.GetRoutes(filter)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	views := make([]RouteListView, 0, len(routes))
	for i := range routes {
		views = append(views, NewRouteListView(&routes[i]))
	}
	ctx.JSON(200, views)
}

func (h *RouteHandler) HandleRetrieve(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	route, err := h.app.RouteService.GetRouteByID(id)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(200, NewRouteDetailView(route))
}

type CreateRouteRequest struct {
	SourceID      uint `json:"source" binding:"required"`
	DestinationID uint `json:"destination" binding:"required"`
	Distance      int  `json:"distance" binding:"required"`
}

// queryID parses an optional numeric query filter. An absent parameter
// means no filter; anything non-numeric is a 400.
func queryID(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid filter",
			"detail": name + " must be a numeric id",
		})
		return 0, false
	}
	return uint(value), true
}

func pathID(ctx *gin.Context) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(400, gin.H{
			"error": "Invalid id",
		})
		return 0, false
	}
	return uint(value), true
}
