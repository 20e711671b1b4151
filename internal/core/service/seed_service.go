package service

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/transitline/fleet-tracking/internal/core/domain"
	"github.com/transitline/fleet-tracking/internal/core/ports"
)

//go:embed seed_data.json
var seedJSON []byte

type seedFile struct {
	Routes []struct {
		Code                 string        `json:"code"`
		Name                 string        `json:"name"`
		Origin               string        `json:"origin"`
		Destination          string        `json:"destination"`
		Stops                []domain.Stop `json:"stops"`
		DistanceKm           float64       `json:"distanceKm"`
		EstimatedDurationMin int           `json:"estimatedDurationMin"`
	} `json:"routes"`
	Buses []struct {
		BusID          string           `json:"busId"`
		RegistrationNo string           `json:"registrationNo"`
		OperatorName   string           `json:"operatorName"`
		Capacity       int              `json:"capacity"`
		RouteCode      string           `json:"routeCode"`
		Status         domain.BusStatus `json:"status"`
	} `json:"buses"`
	Trips []struct {
		TripID        string    `json:"tripId"`
		RouteCode     string    `json:"routeCode"`
		BusID         string    `json:"busId"`
		DepartureTime time.Time `json:"departureTime"`
		ArrivalTime   time.Time `json:"arrivalTime"`
		Date          string    `json:"date"`
	} `json:"trips"`
	Users []struct {
		Username string      `json:"username"`
		Password string      `json:"password"`
		Role     domain.Role `json:"role"`
	} `json:"users"`
}

// SeedService resets the store and loads the bundled sample fleet. It is only
// usable in the development environment.
type SeedService struct {
	repo    ports.SeedRepository
	enabled bool
	log     zerolog.Logger
}

var _ ports.SeedService = (*SeedService)(nil)

func NewSeedService(repo ports.SeedRepository, enabled bool, log zerolog.Logger) *SeedService {
	return &SeedService{repo: repo, enabled: enabled, log: log}
}

func (s *SeedService) Seed(ctx context.Context) error {
	if !s.enabled {
		return fmt.Errorf("%w: seeding only allowed in development", domain.ErrForbidden)
	}

	data, err := BuildSeedData(seedJSON)
	if err != nil {
		return err
	}
	if err := s.repo.Reset(ctx); err != nil {
		return fmt.Errorf("seed: reset: %w", err)
	}
	if err := s.repo.Load(ctx, data); err != nil {
		return fmt.Errorf("seed: load: %w", err)
	}

	s.log.Info().
		Int("routes", len(data.Routes)).
		Int("buses", len(data.Buses)).
		Int("trips", len(data.Trips)).
		Int("users", len(data.Users)).
		Msg("database seeded")
	return nil
}

// BuildSeedData resolves route codes and bus ids in raw into linked records.
func BuildSeedData(raw []byte) (ports.SeedData, error) {
	var f seedFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return ports.SeedData{}, fmt.Errorf("seed: decode: %w", err)
	}

	now := time.Now().UTC()
	var data ports.SeedData
	routeIDs := make(map[string]string, len(f.Routes))
	for _, r := range f.Routes {
		route := &domain.Route{
			ID:                   uuid.NewString(),
			Code:                 r.Code,
			Name:                 r.Name,
			Origin:               r.Origin,
			Destination:          r.Destination,
			Stops:                r.Stops,
			DistanceKm:           r.DistanceKm,
			EstimatedDurationMin: r.EstimatedDurationMin,
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		routeIDs[r.Code] = route.ID
		data.Routes = append(data.Routes, route)
	}

	busIDs := make(map[string]bool, len(f.Buses))
	for _, b := range f.Buses {
		routeID, ok := routeIDs[b.RouteCode]
		if !ok {
			return ports.SeedData{}, fmt.Errorf("seed: bus %s references unknown route %s", b.BusID, b.RouteCode)
		}
		busIDs[b.BusID] = true
		data.Buses = append(data.Buses, &domain.Bus{
			ID:             uuid.NewString(),
			BusID:          b.BusID,
			RegistrationNo: b.RegistrationNo,
			OperatorName:   b.OperatorName,
			Capacity:       b.Capacity,
			RouteID:        routeID,
			Status:         b.Status,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	for _, t := range f.Trips {
		routeID, ok := routeIDs[t.RouteCode]
		if !ok || !busIDs[t.BusID] {
			return ports.SeedData{}, fmt.Errorf("seed: trip %s has dangling references", t.TripID)
		}
		data.Trips = append(data.Trips, &domain.Trip{
			ID:            uuid.NewString(),
			TripID:        t.TripID,
			RouteID:       routeID,
			BusID:         t.BusID,
			DepartureTime: t.DepartureTime.UTC(),
			ArrivalTime:   t.ArrivalTime.UTC(),
			Date:          t.Date,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	for _, u := range f.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), PasswordCost)
		if err != nil {
			return ports.SeedData{}, fmt.Errorf("seed: hash password: %w", err)
		}
		data.Users = append(data.Users, &domain.User{
			ID:           uuid.NewString(),
			Username:     u.Username,
			PasswordHash: string(hash),
			Role:         u.Role,
			CreatedAt:    now,
		})
	}

	return data, nil
}
