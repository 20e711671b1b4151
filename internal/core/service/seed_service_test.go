package service

import (
	"context"
	"errors"
	"testing"

	"github.com/transitline/fleet-tracking/internal/core/domain"
	"github.com/transitline/fleet-tracking/internal/core/ports"
)

type stubSeedRepo struct {
	resets int
	loaded ports.SeedData
}

func (r *stubSeedRepo) Reset(_ context.Context) error {
	r.resets++
	return nil
}

func (r *stubSeedRepo) Load(_ context.Context, data ports.SeedData) error {
	r.loaded = data
	return nil
}

func TestSeedService_DisabledOutsideDevelopment(t *testing.T) {
	repo := &stubSeedRepo{}
	svc := NewSeedService(repo, false, discardLogger)

	if err := svc.Seed(context.Background()); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if repo.resets != 0 {
		t.Fatalf("store must not be reset")
	}
}

func TestSeedService_LoadsBundledFleet(t *testing.T) {
	repo := &stubSeedRepo{}
	svc := NewSeedService(repo, true, discardLogger)

	if err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	if repo.resets != 1 {
		t.Fatalf("expected one reset, got %d", repo.resets)
	}

	data := repo.loaded
	if len(data.Routes) == 0 || len(data.Buses) == 0 || len(data.Trips) == 0 || len(data.Users) == 0 {
		t.Fatalf("expected every collection populated: %+v", data)
	}

	routeIDs := make(map[string]bool)
	for _, r := range data.Routes {
		routeIDs[r.ID] = true
	}
	busIDs := make(map[string]bool)
	for _, b := range data.Buses {
		if !routeIDs[b.RouteID] {
			t.Fatalf("bus %s references unknown route %s", b.BusID, b.RouteID)
		}
		if !b.Status.Valid() {
			t.Fatalf("bus %s has invalid status %q", b.BusID, b.Status)
		}
		busIDs[b.BusID] = true
	}
	for _, tr := range data.Trips {
		if !routeIDs[tr.RouteID] || !busIDs[tr.BusID] {
			t.Fatalf("trip %s has dangling references", tr.TripID)
		}
	}
	for _, u := range data.Users {
		if !u.Role.Valid() || u.PasswordHash == "" {
			t.Fatalf("bad seeded user: %+v", u)
		}
	}
}

func TestBuildSeedData_UnknownRoute(t *testing.T) {
	raw := []byte(`{"routes":[],"buses":[{"busId":"B1","routeCode":"XX","status":"idle"}]}`)
	if _, err := BuildSeedData(raw); err == nil {
		t.Fatalf("expected error for dangling route code")
	}
}
