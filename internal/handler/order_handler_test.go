package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/airhart/airport-api/internal/app"
	"github.com/airhart/airport-api/internal/auth"
	"github.com/airhart/airport-api/internal/model"
	"github.com/airhart/airport-api/internal/service"
	"github.com/airhart/airport-api/internal/service/domain"
	"github.com/airhart/airport-api/internal/service/workflow"
)

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(userID uint, tickets []domain.TicketRequest) (*model.Order, error) {
	args := m.Called(userID, tickets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) GetOrdersPage(userID uint, limit, offset int) (*domain.OrdersPage, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrdersPage), args.Error(1)
}

func newOrderTestApp(orderService domain.OrderService) (*app.App, *auth.TokenManager) {
	gin.SetMode(gin.TestMode)
	tokens := auth.NewTokenManager("secret")
	logger := zap.NewNop()
	return &app.App{
		Logger:        logger,
		Tokens:        tokens,
		OrderService:  orderService,
		OrderWorkflow: workflow.NewOrderWorkflow(orderService, nil, nil, logger),
	}, tokens
}

func authedRequest(t *testing.T, tokens *auth.TokenManager, method, path, body string) *http.Request {
	t.Helper()
	token, err := tokens.Generate(3, model.RoleUser)
	assert.NoError(t, err)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandleCreateOrder_Created(t *testing.T) {
	orderService := &MockOrderService{}
	testApp, tokens := newOrderTestApp(orderService)
	router := NewRouter(testApp)

	orderService.On("CreateOrder", uint(3), []domain.TicketRequest{
		{FlightID: 7, Row: 2, Seat: 5},
	}).Return(&model.Order{
		ID:        11,
		Reference: "ref-11",
		UserID:    3,
		CreatedAt: time.Now(),
		Tickets:   []model.Ticket{{ID: 21, Row: 2, Seat: 5, FlightID: 7}},
	}, nil)

	rec := httptest.NewRecorder()
	req := authedRequest(t, tokens, http.MethodPost, "/api/orders",
		`{"tickets": [{"flight": 7, "row": 2, "seat": 5}]}`)
	router.ServeHTTP(rec, req)

	assert.Equal(t, 201, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reference":"ref-11"`)
	orderService.AssertExpectations(t)
}

func TestHandleCreateOrder_EmptyOrderRejected(t *testing.T) {
	orderService := &MockOrderService{}
	testApp, tokens := newOrderTestApp(orderService)
	router := NewRouter(testApp)

	orderService.On("CreateOrder", uint(3), []domain.TicketRequest{}).
		Return(nil, service.ErrEmptyOrder)

	rec := httptest.NewRecorder()
	req := authedRequest(t, tokens, http.MethodPost, "/api/orders", `{"tickets": []}`)
	router.ServeHTTP(rec, req)

	assert.Equal(t, 400, rec.Code)
}

func TestHandleCreateOrder_SeatTaken(t *testing.T) {
	orderService := &MockOrderService{}
	testApp, tokens := newOrderTestApp(orderService)
	router := NewRouter(testApp)

	orderService.On("CreateOrder", uint(3), mock.Anything).Return(nil, &service.SeatError{
		FlightID: 7,
		Row:      2,
		Seat:     5,
		Reason:   service.SeatTaken,
	})

	rec := httptest.NewRecorder()
	req := authedRequest(t, tokens, http.MethodPost, "/api/orders",
		`{"tickets": [{"flight": 7, "row": 2, "seat": 5}]}`)
	router.ServeHTTP(rec, req)

	assert.Equal(t, 400, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reason":"seat_taken"`)
	assert.Contains(t, rec.Body.String(), `"flight_id":7`)
}

func TestHandleCreateOrder_RequiresAuth(t *testing.T) {
	orderService := &MockOrderService{}
	testApp, _ := newOrderTestApp(orderService)
	router := NewRouter(testApp)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders",
		strings.NewReader(`{"tickets": [{"flight": 7, "row": 2, "seat": 5}]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, 401, rec.Code)
	orderService.AssertNotCalled(t, "CreateOrder")
}

func TestHandleListOrders(t *testing.T) {
	orderService := &MockOrderService{}
	testApp, tokens := newOrderTestApp(orderService)
	router := NewRouter(testApp)

	orderService.On("GetOrdersPage", uint(3), 10, 0).Return(&domain.OrdersPage{
		Orders: []model.Order{
			{ID: 11, Reference: "ref-11", UserID: 3, Tickets: []model.Ticket{{Row: 2, Seat: 5, FlightID: 7}}},
		},
		Flights: map[uint]model.FlightSummary{
			7: {ID: 7, AirplaneName: "Dreamliner", AirplaneCapacity: 60, TicketsAvailable: 59},
		},
		Total: 1,
	}, nil)

	rec := httptest.NewRecorder()
	req := authedRequest(t, tokens, http.MethodGet, "/api/orders", "")
	router.ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":1`)
	assert.Contains(t, rec.Body.String(), `"Dreamliner"`)
	orderService.AssertExpectations(t)
}
