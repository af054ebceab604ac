package app

import (
	"github.com/airhart/airport-api/config"
	"github.com/airhart/airport-api/internal/auth"
	"github.com/airhart/airport-api/internal/cache"
	"github.com/airhart/airport-api/internal/mq"
	"github.com/airhart/airport-api/internal/repository"
	"github.com/airhart/airport-api/internal/service/domain"
	"github.com/airhart/airport-api/internal/service/workflow"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config

	DB     *gorm.DB
	Cache  *cache.RedisCache
	Logger *zap.Logger
	MQConn *amqp.Connection
	Tokens *auth.TokenManager

	UserRepo repository.UserRepo

	UserService     domain.UserService
	AirportService  domain.AirportService
	AirplaneService domain.AirplaneService
	CrewService     domain.CrewService
	RouteService    domain.RouteService
	FlightService   domain.FlightService
	OrderService    domain.OrderService

	OrderWorkflow *workflow.OrderWorkflow
}

func New(config *config.Config, db *gorm.DB, cache *cache.RedisCache, mqConn *amqp.Connection, logger *zap.Logger) *App {
	tokens := auth.NewTokenManager(config.JWTSecret)

	userRepo := repository.NewUserRepoGorm(db)
	airportRepo := repository.NewAirportRepoGorm(db)
	airplaneTypeRepo := repository.NewAirplaneTypeRepoGorm(db)
	airplaneRepo := repository.NewAirplaneRepoGorm(db)
	crewRepo := repository.NewCrewRepoGorm(db)
	routeRepo := repository.NewRouteRepoGorm(db)
	flightRepo := repository.NewFlightRepoGorm(db)
	orderRepo := repository.NewOrderRepoGorm(db)

	userService := domain.NewUserService(db, userRepo, tokens)
	airportService := domain.NewAirportService(db, airportRepo)
	airplaneService := domain.NewAirplaneService(db, airplaneTypeRepo, airplaneRepo)
	crewService := domain.NewCrewService(db, crewRepo)
	routeService := domain.NewRouteService(db, routeRepo, airportRepo)
	flightService := domain.NewFlightService(db, flightRepo, routeRepo, airplaneRepo, crewRepo, cache, logger)
	orderService := domain.NewOrderService(db, orderRepo, flightRepo, cache, logger)

	orderWorkflow := workflow.NewOrderWorkflow(orderService, userRepo, mqConn, logger)

	return &App{
		Config:          config,
		DB:              db,
		Cache:           cache,
		Logger:          logger,
		MQConn:          mqConn,
		Tokens:          tokens,
		UserRepo:        userRepo,
		UserService:     userService,
		AirportService:  airportService,
		AirplaneService: airplaneService,
		CrewService:     crewService,
		RouteService:    routeService,
		FlightService:   flightService,
		OrderService:    orderService,
		OrderWorkflow:   orderWorkflow,
	}
}

func (app *App) Init() error {
	if app.MQConn != nil {
		if err := mq.InitQueues(app.MQConn); err != nil {
			return err
		}
	}
	return nil
}

func (app *App) Close() error {
	sqlDB, err := app.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
