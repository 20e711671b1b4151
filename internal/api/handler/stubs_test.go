package handler

import (
	"context"
	"io"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	"github.com/transitline/fleet-tracking/internal/core/domain"
	"github.com/transitline/fleet-tracking/internal/core/ports"
)

// newTestContext builds an echo context with the production validator installed.
func newTestContext(method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// httpStatus extracts the status of an *echo.HTTPError, or 0.
func httpStatus(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return 0
}

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.PublicUser, error)
	loginFn    func(ctx context.Context, username, password string) (string, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.PublicUser, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, error) {
	return s.loginFn(ctx, username, password)
}

type stubTrackingService struct {
	reportFn  func(ctx context.Context, in ports.LocationReportInput) (*domain.Bus, error)
	getFn     func(ctx context.Context, busID string) (*ports.BusLocation, error)
	routeFn   func(ctx context.Context, q ports.RouteLocationsQuery) (*ports.RouteLocationsResult, error)
	historyFn func(ctx context.Context, busID string, limit int) ([]*domain.LocationReport, error)
}

func (s *stubTrackingService) ReportLocation(ctx context.Context, in ports.LocationReportInput) (*domain.Bus, error) {
	return s.reportFn(ctx, in)
}

func (s *stubTrackingService) GetBusLocation(ctx context.Context, busID string) (*ports.BusLocation, error) {
	return s.getFn(ctx, busID)
}

func (s *stubTrackingService) ListRouteLocations(ctx context.Context, q ports.RouteLocationsQuery) (*ports.RouteLocationsResult, error) {
	return s.routeFn(ctx, q)
}

func (s *stubTrackingService) History(ctx context.Context, busID string, limit int) ([]*domain.LocationReport, error) {
	return s.historyFn(ctx, busID, limit)
}

type stubBusService struct {
	lastFilter ports.BusFilter
	lastUpdate ports.BusUpdate
	buses      map[string]*domain.Bus
}

func newStubBusService(buses ...*domain.Bus) *stubBusService {
	s := &stubBusService{buses: make(map[string]*domain.Bus)}
	for _, b := range buses {
		s.buses[b.BusID] = b
	}
	return s
}

func (s *stubBusService) Create(_ context.Context, in ports.BusInput) (*domain.Bus, error) {
	if _, ok := s.buses[in.BusID]; ok {
		return nil, domain.ErrDuplicate
	}
	b := &domain.Bus{BusID: in.BusID, RouteID: in.RouteID, OperatorName: in.OperatorName, Status: in.Status}
	s.buses[in.BusID] = b
	return b, nil
}

func (s *stubBusService) Get(_ context.Context, busID string) (*domain.Bus, error) {
	b, ok := s.buses[busID]
	if !ok {
		return nil, domain.ErrBusNotFound
	}
	return b, nil
}

func (s *stubBusService) List(_ context.Context, f ports.BusFilter) (*ports.ListResult[*domain.Bus], error) {
	s.lastFilter = f
	items := make([]*domain.Bus, 0, len(s.buses))
	for _, b := range s.buses {
		items = append(items, b)
	}
	return &ports.ListResult[*domain.Bus]{Items: items, Total: int64(len(items)), Page: 1, Limit: 10, TotalPages: 1}, nil
}

func (s *stubBusService) Update(_ context.Context, busID string, upd ports.BusUpdate) (*domain.Bus, error) {
	s.lastUpdate = upd
	b, ok := s.buses[busID]
	if !ok {
		return nil, domain.ErrBusNotFound
	}
	if upd.Status != nil {
		b.Status = *upd.Status
	}
	return b, nil
}

func (s *stubBusService) Delete(_ context.Context, busID string) error {
	if _, ok := s.buses[busID]; !ok {
		return domain.ErrBusNotFound
	}
	delete(s.buses, busID)
	return nil
}

type stubDispatcher struct {
	got []ports.LocationReportInput
	err error
}

func (d *stubDispatcher) EnqueueBatch(_ context.Context, reports []ports.LocationReportInput) (int, error) {
	if d.err != nil {
		return 0, d.err
	}
	d.got = append(d.got, reports...)
	return len(reports), nil
}
