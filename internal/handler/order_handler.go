package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/airhart/airport-api/internal/app"
	"github.com/airhart/airport-api/internal/service/domain"
	"github.com/airhart/airport-api/internal/util"
)

type OrderHandler struct {
	app *app.App
}

func NewOrderHandler(app *app.App) *OrderHandler {
	return &OrderHandler{
		app: app,
	}
}

func (h *OrderHandler) HandleCreate(ctx *gin.Context) {
	claims := CurrentClaims(ctx)
	if claims == nil {
		ctx.JSON(401, gin.H{
			"error": "Authentication required",
		})
		return
	}

	var req CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(400, gin.H{
			"error":  "Invalid request format",
			"detail": err.Error(),
		})
		return
	}

	tickets := make([]domain.TicketRequest, 0, len(req.Tickets))
	for _, ticket := range req.Tickets {
		tickets = append(tickets, domain.TicketRequest{
			FlightID: ticket.FlightID,
			Row:      ticket.Row,
			Seat:     ticket.Seat,
		})
	}

	order, err := h.app.OrderWorkflow.PlaceOrder(claims.UserID, tickets)
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(201, NewOrderView(order, nil))
}

func (h *OrderHandler) HandleList(ctx *gin.Context) {
	claims := CurrentClaims(ctx)
	if claims == nil {
		ctx.JSON(401, gin.H{
			"error": "Authentication required",
		})
		return
	}

	pagination := util.GetPagination(ctx)
	page, err := h.app.OrderService.GetOrdersPage(claims.UserID, pagination.Limit, pagination.Offset())
	if err != nil {
		respondError(ctx, h.app.Logger, err)
		return
	}

	ctx.JSON(200, NewOrdersPageView(page, pagination.Page, pagination.Limit))
}

type CreateOrderRequest struct {
	Tickets []OrderTicketRequest `json:"tickets"`
}

type OrderTicketRequest struct {
	FlightID uint `json:"flight" binding:"required"`
	Row      int  `json:"row" binding:"required"`
	Seat     int  `json:"seat" binding:"required"`
}
