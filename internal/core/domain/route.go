package domain

import "time"

// Stop is a named point along a route.
type Stop struct {
	Name string  `json:"name" bson:"name"`
	Lat  float64 `json:"lat" bson:"lat"`
	Lng  float64 `json:"lng" bson:"lng"`
}

// Route is a fixed itinerary buses are assigned to.
type Route struct {
	ID                   string    `json:"id" bson:"_id"`
	Code                 string    `json:"code" bson:"code"`
	Name                 string    `json:"name" bson:"name"`
	Origin               string    `json:"origin" bson:"origin"`
	Destination          string    `json:"destination" bson:"destination"`
	Stops                []Stop    `json:"stops" bson:"stops"`
	DistanceKm           float64   `json:"distanceKm" bson:"distance_km"`
	EstimatedDurationMin int       `json:"estimatedDurationMin" bson:"estimated_duration_min"`
	CreatedAt            time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt            time.Time `json:"updatedAt" bson:"updated_at"`
}

// Trip is a scheduled run of a bus on a route.
type Trip struct {
	ID            string    `json:"id" bson:"_id"`
	TripID        string    `json:"tripId" bson:"trip_id"`
	RouteID       string    `json:"routeId" bson:"route_id"`
	BusID         string    `json:"busId" bson:"bus_id"`
	DepartureTime time.Time `json:"departureTime" bson:"departure_time"`
	ArrivalTime   time.Time `json:"arrivalTime" bson:"arrival_time"`
	Date          string    `json:"date" bson:"date"` // YYYY-MM-DD
	CreatedAt     time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updated_at"`
}
