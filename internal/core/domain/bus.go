package domain

import (
	"fmt"
	"time"
)

// BusStatus is the operational state of a bus.
type BusStatus string

const (
	BusIdle        BusStatus = "idle"
	BusOnTrip      BusStatus = "on-trip"
	BusMaintenance BusStatus = "maintenance"
)

// Valid reports whether s is a known status.
func (s BusStatus) Valid() bool {
	switch s {
	case BusIdle, BusOnTrip, BusMaintenance:
		return true
	default:
		return false
	}
}

// ParseBusStatus converts raw input into a BusStatus.
func ParseBusStatus(s string) (BusStatus, error) {
	st := BusStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: unknown bus status %q", ErrValidation, s)
	}
	return st, nil
}

// Location is a single reported position.
type Location struct {
	Lat       float64   `json:"lat" bson:"lat"`
	Lng       float64   `json:"lng" bson:"lng"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// ValidateCoordinates checks lat/lng ranges.
func ValidateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: lat %v out of range [-90,90]", ErrInvalidLocation, lat)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("%w: lng %v out of range [-180,180]", ErrInvalidLocation, lng)
	}
	return nil
}

// Bus is a fleet vehicle. CurrentLocation stays nil until the first report.
type Bus struct {
	ID              string    `json:"id" bson:"_id"`
	BusID           string    `json:"busId" bson:"bus_id"`
	RegistrationNo  string    `json:"registrationNo" bson:"registration_no"`
	OperatorName    string    `json:"operatorName" bson:"operator_name"`
	Capacity        int       `json:"capacity" bson:"capacity"`
	RouteID         string    `json:"routeId" bson:"route_id"`
	Status          BusStatus `json:"status" bson:"status"`
	CurrentLocation *Location `json:"currentLocation" bson:"current_location,omitempty"`
	CreatedAt       time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updated_at"`
}

// LocationReport is an accepted position report kept for audit.
type LocationReport struct {
	BusID      string    `json:"busId" bson:"bus_id"`
	Lat        float64   `json:"lat" bson:"lat"`
	Lng        float64   `json:"lng" bson:"lng"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
	Source     string    `json:"source" bson:"source"`
	ReceivedAt time.Time `json:"receivedAt" bson:"received_at"`
}
