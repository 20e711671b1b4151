package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/transitline/fleet-tracking/internal/core/domain"
	"github.com/transitline/fleet-tracking/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// Credential store
// ---------------------------------------------------------------------------

type stubAuthRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User // by id
	seq   int
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubAuthRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *stubAuthRepo) insertLocked(user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	c := cloneUser(user)
	if c.ID == "" {
		c.ID = fmt.Sprintf("user-%d", r.seq)
	}
	r.users[c.ID] = c
	return cloneUser(c), nil
}

func (r *stubAuthRepo) CreateFirstAdmin(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.users) > 0 {
		return nil, domain.ErrBootstrapUsed
	}
	return r.insertLocked(user)
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insertLocked(user)
}

func (r *stubAuthRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubAuthRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

// ---------------------------------------------------------------------------
// Bus store
// ---------------------------------------------------------------------------

type stubBusRepo struct {
	mu      sync.Mutex
	buses   map[string]*domain.Bus // by bus id
	updates int
}

func newStubBusRepo(buses ...*domain.Bus) *stubBusRepo {
	r := &stubBusRepo{buses: make(map[string]*domain.Bus)}
	for _, b := range buses {
		r.buses[b.BusID] = cloneBus(b)
	}
	return r
}

func cloneBus(b *domain.Bus) *domain.Bus {
	c := *b
	if b.CurrentLocation != nil {
		loc := *b.CurrentLocation
		c.CurrentLocation = &loc
	}
	return &c
}

func (r *stubBusRepo) Create(_ context.Context, bus *domain.Bus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.buses[bus.BusID]; ok {
		return domain.ErrDuplicate
	}
	r.buses[bus.BusID] = cloneBus(bus)
	return nil
}

func (r *stubBusRepo) FindByBusID(_ context.Context, busID string) (*domain.Bus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.buses[busID]
	if !ok {
		return nil, domain.ErrBusNotFound
	}
	return cloneBus(b), nil
}

// List mirrors the predicates the Mongo repository builds.
func (r *stubBusRepo) List(_ context.Context, f ports.BusFilter) ([]*domain.Bus, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*domain.Bus
	for _, b := range r.buses {
		if f.RouteID != "" && b.RouteID != f.RouteID {
			continue
		}
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.OperatorName != "" && !strings.Contains(strings.ToLower(b.OperatorName), strings.ToLower(f.OperatorName)) {
			continue
		}
		if f.HasLocation != nil && (b.CurrentLocation != nil) != *f.HasLocation {
			continue
		}
		matched = append(matched, cloneBus(b))
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].BusID < matched[j].BusID })

	total := int64(len(matched))
	if f.Limit <= 0 {
		return matched, total, nil
	}
	skip := (f.Page - 1) * f.Limit
	if skip < 0 {
		skip = 0
	}
	if skip > len(matched) {
		return []*domain.Bus{}, total, nil
	}
	end := min(skip+f.Limit, len(matched))
	return matched[skip:end], total, nil
}

func (r *stubBusRepo) Update(_ context.Context, busID string, upd ports.BusUpdate) (*domain.Bus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.buses[busID]
	if !ok {
		return nil, domain.ErrBusNotFound
	}
	if upd.Status != nil {
		b.Status = *upd.Status
	}
	if upd.OperatorName != nil {
		b.OperatorName = *upd.OperatorName
	}
	if upd.RouteID != nil {
		b.RouteID = *upd.RouteID
	}
	if upd.Capacity != nil {
		b.Capacity = *upd.Capacity
	}
	if upd.RegistrationNo != nil {
		b.RegistrationNo = *upd.RegistrationNo
	}
	b.UpdatedAt = time.Now().UTC()
	return cloneBus(b), nil
}

func (r *stubBusRepo) writes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updates
}

func (r *stubBusRepo) UpdateLocation(_ context.Context, busID string, loc domain.Location) (*domain.Bus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.buses[busID]
	if !ok {
		return nil, domain.ErrBusNotFound
	}
	r.updates++
	b.CurrentLocation = &loc
	b.UpdatedAt = time.Now().UTC()
	return cloneBus(b), nil
}

func (r *stubBusRepo) Delete(_ context.Context, busID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.buses[busID]; !ok {
		return domain.ErrBusNotFound
	}
	delete(r.buses, busID)
	return nil
}

// ---------------------------------------------------------------------------
// Location history
// ---------------------------------------------------------------------------

type stubHistoryRepo struct {
	mu        sync.Mutex
	reports   []*domain.LocationReport
	insertErr error
}

func (r *stubHistoryRepo) Insert(_ context.Context, report *domain.LocationReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return r.insertErr
	}
	c := *report
	r.reports = append(r.reports, &c)
	return nil
}

func (r *stubHistoryRepo) ListByBus(_ context.Context, busID string, limit int) ([]*domain.LocationReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.LocationReport
	for i := len(r.reports) - 1; i >= 0 && len(out) < limit; i-- {
		if r.reports[i].BusID == busID {
			out = append(out, r.reports[i])
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Routes and trips
// ---------------------------------------------------------------------------

type stubRouteRepo struct {
	routes map[string]*domain.Route
}

func newStubRouteRepo(routes ...*domain.Route) *stubRouteRepo {
	r := &stubRouteRepo{routes: make(map[string]*domain.Route)}
	for _, rt := range routes {
		r.routes[rt.ID] = rt
	}
	return r
}

func (r *stubRouteRepo) Create(_ context.Context, rt *domain.Route) error {
	for _, existing := range r.routes {
		if existing.Code == rt.Code {
			return domain.ErrDuplicate
		}
	}
	c := *rt
	r.routes[rt.ID] = &c
	return nil
}

func (r *stubRouteRepo) FindByID(_ context.Context, id string) (*domain.Route, error) {
	rt, ok := r.routes[id]
	if !ok {
		return nil, domain.ErrRouteNotFound
	}
	c := *rt
	return &c, nil
}

func (r *stubRouteRepo) List(_ context.Context, _ ports.Page) ([]*domain.Route, int64, error) {
	out := make([]*domain.Route, 0, len(r.routes))
	for _, rt := range r.routes {
		out = append(out, rt)
	}
	return out, int64(len(out)), nil
}

func (r *stubRouteRepo) Replace(_ context.Context, rt *domain.Route) error {
	if _, ok := r.routes[rt.ID]; !ok {
		return domain.ErrRouteNotFound
	}
	r.routes[rt.ID] = rt
	return nil
}

func (r *stubRouteRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.routes[id]; !ok {
		return domain.ErrRouteNotFound
	}
	delete(r.routes, id)
	return nil
}

type stubTripRepo struct {
	trips map[string]*domain.Trip
}

func newStubTripRepo() *stubTripRepo {
	return &stubTripRepo{trips: make(map[string]*domain.Trip)}
}

func (r *stubTripRepo) Create(_ context.Context, t *domain.Trip) error {
	c := *t
	r.trips[t.ID] = &c
	return nil
}

func (r *stubTripRepo) FindByID(_ context.Context, id string) (*domain.Trip, error) {
	t, ok := r.trips[id]
	if !ok {
		return nil, domain.ErrTripNotFound
	}
	c := *t
	return &c, nil
}

func (r *stubTripRepo) List(_ context.Context, f ports.TripFilter) ([]*domain.Trip, int64, error) {
	var out []*domain.Trip
	for _, t := range r.trips {
		if f.RouteID != "" && t.RouteID != f.RouteID {
			continue
		}
		if f.BusID != "" && t.BusID != f.BusID {
			continue
		}
		if f.Date != "" && t.Date != f.Date {
			continue
		}
		out = append(out, t)
	}
	return out, int64(len(out)), nil
}

func (r *stubTripRepo) Replace(_ context.Context, t *domain.Trip) error {
	if _, ok := r.trips[t.ID]; !ok {
		return domain.ErrTripNotFound
	}
	r.trips[t.ID] = t
	return nil
}

func (r *stubTripRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.trips[id]; !ok {
		return domain.ErrTripNotFound
	}
	delete(r.trips, id)
	return nil
}

// ---------------------------------------------------------------------------
// Dedup
// ---------------------------------------------------------------------------

type stubDedup struct {
	mu       sync.Mutex
	seen     map[string]bool
	checkErr error
	released int
}

func newStubDedup() *stubDedup { return &stubDedup{seen: make(map[string]bool)} }

func dedupKey(busID string, ts time.Time) string {
	return busID + "|" + ts.UTC().Format(time.RFC3339Nano)
}

func (d *stubDedup) Claim(_ context.Context, busID string, ts time.Time) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.checkErr != nil {
		return false, d.checkErr
	}
	key := dedupKey(busID, ts)
	if d.seen[key] {
		return false, nil
	}
	d.seen[key] = true
	return true, nil
}

func (d *stubDedup) Release(_ context.Context, busID string, ts time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.seen, dedupKey(busID, ts))
	d.released++
	return nil
}

func (d *stubDedup) held(busID string, ts time.Time) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seen[dedupKey(busID, ts)]
}
