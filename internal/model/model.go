package model

import (
	"time"
)

type User struct {
	ID             uint     `gorm:"primaryKey"`
	Email          string   `gorm:"size:255;not null;uniqueIndex"`
	HashedPassword string   `gorm:"not null"`
	Role           UserRole `gorm:"type:varchar(16);not null"`
}

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleStaff UserRole = "staff"
)

type Airport struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"size:255;not null;uniqueIndex"`
	ClosestBigCity string `gorm:"size:255;not null"`
}

type Route struct {
	ID            uint `gorm:"primaryKey"`
	SourceID      uint `gorm:"not null;index"`
	DestinationID uint `gorm:"not null;index"`
	Distance      int  `gorm:"not null"`

	Source      Airport `gorm:"foreignKey:SourceID;constraint:OnDelete:CASCADE"`
	Destination Airport `gorm:"foreignKey:DestinationID;constraint:OnDelete:CASCADE"`
}

type AirplaneType struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:255;not null;uniqueIndex"`
}

type Airplane struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"size:255;not null"`
	Rows           int    `gorm:"not null"`
	SeatsInRow     int    `gorm:"not null"`
	AirplaneTypeID uint   `gorm:"not null;index"`

	AirplaneType AirplaneType `gorm:"constraint:OnDelete:CASCADE"`
}

// Capacity is derived, never stored.
func (a *Airplane) Capacity() int {
	return a.Rows * a.SeatsInRow
}

type Crew struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"size:255;not null"`
	LastName  string `gorm:"size:255;not null"`
}

func (c *Crew) FullName() string {
	return c.FirstName + " " + c.LastName
}

type Flight struct {
	ID            uint      `gorm:"primaryKey"`
	RouteID       uint      `gorm:"not null;index"`
	AirplaneID    uint      `gorm:"not null;index"`
	DepartureTime time.Time `gorm:"not null;index"`
	ArrivalTime   time.Time `gorm:"not null;index"`

	Route    Route    `gorm:"constraint:OnDelete:CASCADE"`
	Airplane Airplane `gorm:"constraint:OnDelete:CASCADE"`
	Crews    []Crew   `gorm:"many2many:flight_crews"`
	Tickets  []Ticket `gorm:"constraint:OnDelete:CASCADE"`
}

type Order struct {
	ID        uint   `gorm:"primaryKey"`
	Reference string `gorm:"size:36;not null;uniqueIndex"`
	UserID    uint   `gorm:"not null;index"`
	CreatedAt time.Time

	User    User     `gorm:"constraint:OnDelete:CASCADE"`
	Tickets []Ticket `gorm:"constraint:OnDelete:CASCADE"`
}

// Ticket claims one physical seat of the airplane operating a flight.
// The composite unique index is the storage-level guard against two
// concurrent orders winning the same seat; the application-level check
// in the order service exists to give the friendly error first.
type Ticket struct {
	ID       uint `gorm:"primaryKey"`
	Row      int  `gorm:"not null;uniqueIndex:idx_ticket_flight_seat"`
	Seat     int  `gorm:"not null;uniqueIndex:idx_ticket_flight_seat"`
	FlightID uint `gorm:"not null;uniqueIndex:idx_ticket_flight_seat"`
	OrderID  uint `gorm:"not null;index"`
}

// FlightSummary is the flight list projection: joined names plus
// availability computed at query time (capacity minus sold tickets).
type FlightSummary struct {
	ID               uint      `json:"id"`
	DepartureTime    time.Time `json:"departure_time"`
	ArrivalTime      time.Time `json:"arrival_time"`
	RouteSource      string    `json:"route_source"`
	RouteDestination string    `json:"route_destination"`
	AirplaneName     string    `json:"airplane_name"`
	AirplaneCapacity int       `json:"airplane_capacity"`
	TicketsAvailable int       `json:"tickets_available"`
}
