package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/transitline/fleet-tracking/internal/api/metrics"
	"github.com/transitline/fleet-tracking/internal/core/domain"
	"github.com/transitline/fleet-tracking/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
	Role     string `json:"role"     validate:"required,oneof=admin bus_operator commuter"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Register creates a new user account. The first admin may register without
// a token while no users exist; afterwards an admin bearer token is required.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  domain.PublicUser
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues(roleLabel(req.Role), "invalid").Inc()
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:   req.Username,
		Password:   req.Password,
		Role:       domain.Role(req.Role),
		AuthHeader: c.Request().Header.Get(echo.HeaderAuthorization),
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(roleLabel(req.Role), registrationResult(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(roleLabel(req.Role), "created").Inc()
	return c.JSON(http.StatusCreated, user)
}

// Login authenticates a user and returns a signed token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token})
}

func registrationResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrForbidden):
		return "rejected"
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrUserExists):
		return "invalid"
	default:
		return "error"
	}
}

// roleLabel keeps the metric label set bounded.
func roleLabel(role string) string {
	if domain.Role(role).Valid() {
		return role
	}
	return "unknown"
}
