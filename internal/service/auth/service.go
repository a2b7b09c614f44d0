package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tableside/internal/domain"
	restaurantrepo "tableside/internal/repository/restaurant"
	sessionrepo "tableside/internal/repository/session"
)

var (
	// ErrInvalidCredentials is returned when the identifier/password pair
	// does not match a registered restaurant.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidSession indicates the session token could not be validated.
	ErrInvalidSession = errors.New("invalid session")
)

// Service handles restaurant owner registration, login and sessions.
type Service struct {
	repo        restaurantrepo.Repository
	sessions    *sessionManager
	sessionTTL  time.Duration
	accessIDMin int
	passwordMin int
}

// New creates a Service with the signup validation floors: access ids of
// 3+ characters, passwords of 6+.
func New(repo restaurantrepo.Repository, sessions sessionrepo.Repository, sessionTTL time.Duration) *Service {
	return &Service{
		repo:        repo,
		sessions:    newSessionManager(sessions),
		sessionTTL:  sessionTTL,
		accessIDMin: 3,
		passwordMin: 6,
	}
}

// RegisterInput captures fields expected by the register endpoint.
type RegisterInput struct {
	AccessID string `json:"accessId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// Register creates a new restaurant account. Duplicate access ids and
// emails are reported as distinct recoverable errors, matching what the
// signup form surfaces to the owner.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.Restaurant, error) {
	accessID := strings.TrimSpace(in.AccessID)
	if len(accessID) < s.accessIDMin {
		return nil, domain.Invalidf("access id must be at least %d characters", s.accessIDMin)
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalidf("name required")
	}
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.Invalidf("invalid email")
	}
	password := strings.TrimSpace(in.Password)
	if len(password) < s.passwordMin {
		return nil, domain.Invalidf("password must be at least %d characters", s.passwordMin)
	}

	if _, err := s.repo.GetByAccessID(ctx, accessID); err == nil {
		return nil, domain.Invalidf("access id already in use")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, domain.Invalidf("email already registered")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	rest, err := s.repo.Create(ctx, restaurantrepo.CreateInput{
		AccessID:     accessID,
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
	})
	if err != nil {
		// A racing signup can still trip the unique constraint.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.Invalidf("access id already in use")
		}
		return nil, err
	}
	return rest, nil
}

// Login validates credentials against the email or access id and returns
// the restaurant plus an issued session token.
func (s *Service) Login(ctx context.Context, identifier, password string) (*domain.Restaurant, string, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || strings.TrimSpace(password) == "" {
		return nil, "", ErrInvalidCredentials
	}

	rest, err := s.repo.GetByEmailOrAccessID(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rest.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(ctx, rest.ID, s.sessionTTL)
	if err != nil {
		return nil, "", err
	}
	return rest, token, nil
}

// Logout revokes the session token; revoking an unknown token is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Revoke(ctx, token); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

// LookupSession returns the restaurant bound to a valid session token.
func (s *Service) LookupSession(ctx context.Context, token string) (*domain.Restaurant, error) {
	meta, ok := s.sessions.Validate(ctx, token)
	if !ok {
		return nil, ErrInvalidSession
	}
	rest, err := s.repo.GetByID(ctx, meta.RestaurantID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}
	return rest, nil
}

// GetByAccessID is the public menu-page lookup.
func (s *Service) GetByAccessID(ctx context.Context, accessID string) (*domain.Restaurant, error) {
	return s.repo.GetByAccessID(ctx, accessID)
}

// SessionTTLSeconds exposes the cookie max age in seconds.
func (s *Service) SessionTTLSeconds() int {
	return int(s.sessionTTL.Seconds())
}
