package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/airhart/airport-api/internal/app"
)

// NewRouter wires the resource endpoints. Catalog reads need a valid
// user, catalog writes need staff; orders belong to the caller.
func NewRouter(app *app.App) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(app.Logger))

	userHandler := NewUserHandler(app)
	airportHandler := NewAirportHandler(app)
	airplaneHandler := NewAirplaneHandler(app)
	crewHandler := NewCrewHandler(app)
	routeHandler := NewRouteHandler(app)
	flightHandler := NewFlightHandler(app)
	orderHandler := NewOrderHandler(app)

	api := router.Group("/api")

	api.POST("/users/register", userHandler.HandleRegister)
	api.POST("/users/login", userHandler.HandleLogin)

	authed := api.Group("", RequireAuth(app.Tokens))
	staff := authed.Group("", RequireStaff())

	authed.GET("/airports", airportHandler.HandleList)
	staff.POST("/airports", airportHandler.HandleCreate)

	authed.GET("/airplane_types", airplaneHandler.HandleListTypes)
	staff.POST("/airplane_types", airplaneHandler.HandleCreateType)

	authed.GET("/airplanes", airplaneHandler.HandleList)
	staff.POST("/airplanes", airplaneHandler.HandleCreate)

	authed.GET("/crews", crewHandler.HandleList)
	staff.POST("/crews", crewHandler.HandleCreate)

	authed.GET("/routes", routeHandler.HandleList)
	authed.GET("/routes/:id", routeHandler.HandleRetrieve)
	staff.POST("/routes", routeHandler.HandleCreate)

	authed.GET("/flights", flightHandler.HandleList)
	authed.GET("/flights/:id", flightHandler.HandleRetrieve)
	staff.POST("/flights", flightHandler.HandleCreate)
	staff.PUT("/flights/:id", flightHandler.HandleUpdate)
	staff.DELETE("/flights/:id", flightHandler.HandleDelete)

	authed.GET("/orders", orderHandler.HandleList)
	authed.POST("/orders", orderHandler.HandleCreate)

	return router
}
