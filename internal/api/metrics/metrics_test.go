package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/transitline/fleet-tracking/internal/core/domain"
)

func TestLocationErrorReason(t *testing.T) {
	cases := map[error]string{
		fmt.Errorf("report: %w", domain.ErrBusNotFound): "bus_not_found",
		domain.ErrInvalidLocation:                       "invalid_location",
		errors.New("socket closed"):                     "update_failed",
	}
	for err, want := range cases {
		if got := LocationErrorReason(err); got != want {
			t.Fatalf("LocationErrorReason(%v) = %q, want %q", err, got, want)
		}
	}
}

func TestLocationReportsTotal(t *testing.T) {
	c := LocationReportsTotal.WithLabelValues("test")
	before := testutil.ToFloat64(c)
	c.Inc()
	if got := testutil.ToFloat64(c); got != before+1 {
		t.Fatalf("counter = %v, want %v", got, before+1)
	}
}
