package handler

import (
	"time"

	"github.com/airhart/airport-api/internal/model"
	"github.com/airhart/airport-api/internal/service/domain"
)

// Response views, one named shape per endpoint. List and detail views
// of the same entity differ on purpose: lists flatten related names,
// details embed the related objects.

type AirportView struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}

func NewAirportView(airport *model.Airport) AirportView {
	return AirportView{
		ID:             airport.ID,
		Name:           airport.Name,
		ClosestBigCity: airport.ClosestBigCity,
	}
}

type AirplaneTypeView struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AirplaneView struct {
	ID           uint             `json:"id"`
	Name         string           `json:"name"`
	Rows         int              `json:"rows"`
	SeatsInRow   int              `json:"seats_in_row"`
	AirplaneType AirplaneTypeView `json:"airplane_type"`
	Capacity     int              `json:"capacity"`
}

func NewAirplaneView(airplane *model.Airplane) AirplaneView {
	return AirplaneView{
		ID:         airplane.ID,
		Name:       airplane.Name,
		Rows:       airplane.Rows,
		SeatsInRow: airplane.SeatsInRow,
		AirplaneType: AirplaneTypeView{
			ID:   airplane.AirplaneType.ID,
			Name: airplane.AirplaneType.Name,
		},
		Capacity: airplane.Capacity(),
	}
}

type CrewView struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

func NewCrewView(crew *model.Crew) CrewView {
	return CrewView{
		ID:        crew.ID,
		FirstName: crew.FirstName,
		LastName:  crew.LastName,
		FullName:  crew.FullName(),
	}
}

type RouteListView struct {
	ID          uint   `json:"id"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Distance    int    `json:"distance"`
}

func NewRouteListView(route *model.Route) RouteListView {
	return RouteListView{
		ID:          route.ID,
		Source:      route.Source.Name,
		Destination: route.Destination.Name,
		Distance:    route.Distance,
	}
}

type RouteDetailView struct {
	ID          uint        `json:"id"`
	Source      AirportView `json:"source"`
	Destination AirportView `json:"destination"`
	Distance    int         `json:"distance"`
}

func NewRouteDetailView(route *model.Route) RouteDetailView {
	return RouteDetailView{
		ID:          route.ID,
		Source:      NewAirportView(&route.Source),
		Destination: NewAirportView(&route.Destination),
		Distance:    route.Distance,
	}
}

type SeatView struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type FlightDetailView struct {
	ID            uint          `json:"id"`
	Route         RouteListView `json:"route"`
	Airplane      AirplaneView  `json:"airplane"`
	DepartureTime time.Time     `json:"departure_time"`
	ArrivalTime   time.Time     `json:"arrival_time"`
	Crews         []CrewView    `json:"crews"`
	TakenPlaces   []SeatView    `json:"taken_places"`
}

func NewFlightDetailView(flight *model.Flight) FlightDetailView {
	crews := make([]CrewView, 0, len(flight.Crews))
	for i := range flight.Crews {
		crews = append(crews, NewCrewView(&flight.Crews[i]))
	}
	taken := make([]SeatView, 0, len(flight.Tickets))
	for _, ticket := range flight.Tickets {
		taken = append(taken, SeatView{Row: ticket.Row, Seat: ticket.Seat})
	}
	return FlightDetailView{
		ID:            flight.ID,
		Route:         NewRouteListView(&flight.Route),
		Airplane:      NewAirplaneView(&flight.Airplane),
		DepartureTime: flight.DepartureTime,
		ArrivalTime:   flight.ArrivalTime,
		Crews:         crews,
		TakenPlaces:   taken,
	}
}

type OrderTicketView struct {
	ID     uint                 `json:"id"`
	Row    int                  `json:"row"`
	Seat   int                  `json:"seat"`
	Flight *model.FlightSummary `json:"flight,omitempty"`
}

type OrderView struct {
	ID        uint              `json:"id"`
	Reference string            `json:"reference"`
	CreatedAt time.Time         `json:"created_at"`
	Tickets   []OrderTicketView `json:"tickets"`
}

func NewOrderView(order *model.Order, flights map[uint]model.FlightSummary) OrderView {
	tickets := make([]OrderTicketView, 0, len(order.Tickets))
	for _, ticket := range order.Tickets {
		view := OrderTicketView{
			ID:   ticket.ID,
			Row:  ticket.Row,
			Seat: ticket.Seat,
		}
		if summary, ok := flights[ticket.FlightID]; ok {
			view.Flight = &summary
		}
		tickets = append(tickets, view)
	}
	return OrderView{
		ID:        order.ID,
		Reference: order.Reference,
		CreatedAt: order.CreatedAt,
		Tickets:   tickets,
	}
}

type OrdersPageView struct {
	Count   int64       `json:"count"`
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
	Results []OrderView `json:"results"`
}

func NewOrdersPageView(page *domain.OrdersPage, pageNum, limit int) OrdersPageView {
	results := make([]OrderView, 0, len(page.Orders))
	for i := range page.Orders {
		results = append(results, NewOrderView(&page.Orders[i], page.Flights))
	}
	return OrdersPageView{
		Count:   page.Total,
		Page:    pageNum,
		Limit:   limit,
		Results: results,
	}
}
