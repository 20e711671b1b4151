package service

import "github.com/transitline/fleet-tracking/internal/core/domain"

// BootstrapDecision is the outcome of the registration gate.
type BootstrapDecision int

const (
	// BootstrapAllow lets the request create the first admin without a token.
	BootstrapAllow BootstrapDecision = iota
	// BootstrapRequireAdmin means the caller must present an admin bearer token.
	BootstrapRequireAdmin
	// BootstrapReject refuses the request outright.
	BootstrapReject
)

func (d BootstrapDecision) String() string {
	switch d {
	case BootstrapAllow:
		return "allow"
	case BootstrapRequireAdmin:
		return "require_admin"
	case BootstrapReject:
		return "reject"
	default:
		return "unknown"
	}
}

// DecideBootstrap applies the first-admin rule. An empty store only admits a
// self-registered admin; once any credential exists every registration needs
// an authenticated admin.
func DecideBootstrap(storeEmpty bool, requested domain.Role) BootstrapDecision {
	if !storeEmpty {
		return BootstrapRequireAdmin
	}
	if requested == domain.RoleAdmin {
		return BootstrapAllow
	}
	return BootstrapReject
}
