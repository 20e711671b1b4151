package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/transitline/fleet-tracking/internal/core/domain"
	"github.com/transitline/fleet-tracking/internal/core/ports"
)

// PasswordCost is the fixed bcrypt work factor.
const PasswordCost = 10

// AuthService implements registration (with the first-admin bootstrap) and login.
type AuthService struct {
	repo   ports.AuthRepository
	tokens ports.TokenService
	authn  ports.Authenticator
	log    zerolog.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(repo ports.AuthRepository, tokens ports.TokenService, authn ports.Authenticator, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, authn: authn, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.PublicUser, error) {
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", domain.ErrValidation)
	}
	if !in.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, in.Role)
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("register: count users: %w", err)
	}

	switch DecideBootstrap(count == 0, in.Role) {
	case BootstrapReject:
		return nil, fmt.Errorf("%w: only admins can create users", domain.ErrForbidden)
	case BootstrapAllow:
		user, err := newUser(in)
		if err != nil {
			return nil, err
		}
		created, err := s.repo.CreateFirstAdmin(ctx, user)
		if err == nil {
			s.log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("bootstrap admin created")
			pub := created.Public()
			return &pub, nil
		}
		if !errors.Is(err, domain.ErrBootstrapUsed) {
			return nil, fmt.Errorf("register: %w", err)
		}
		// Another request won the bootstrap; this one now needs admin auth.
		s.log.Warn().Str("username", in.Username).Msg("bootstrap race lost, requiring admin token")
	}

	caller, err := s.authn.Authenticate(ctx, in.AuthHeader)
	if err != nil {
		return nil, err
	}
	if caller.Role != domain.RoleAdmin {
		return nil, fmt.Errorf("%w: admin access required", domain.ErrForbidden)
	}

	user, err := newUser(in)
	if err != nil {
		return nil, err
	}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", created.ID).
		Str("role", string(created.Role)).
		Str("created_by", caller.UserID).
		Msg("user registered")

	pub := created.Public()
	return &pub, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID, user.Role)
}

func newUser(in ports.RegisterInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), PasswordCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: password too long", domain.ErrValidation)
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &domain.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
