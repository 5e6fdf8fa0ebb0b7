package service

import (
	"context"
	"fmt"
	"strings"

	"simusmart/internal/model"
	"simusmart/internal/repository"

	"github.com/rs/zerolog"
)

// sessionService implements SessionService.
type sessionService struct {
	sessionRepo repository.SessionRepository
	auth        Authenticator
	adminPrefix string
	logger      zerolog.Logger
}

// NewSessionService creates a new session service. Admin logins must use an
// email starting with adminPrefix.
func NewSessionService(
	sessionRepo repository.SessionRepository,
	auth Authenticator,
	adminPrefix string,
	logger zerolog.Logger,
) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		auth:        auth,
		adminPrefix: adminPrefix,
		logger:      logger.With().Str("service", "session").Logger(),
	}
}

func (s *sessionService) Snapshot(ctx context.Context) model.Session {
	return s.sessionRepo.Snapshot(ctx)
}

func (s *sessionService) Login(ctx context.Context, creds model.Credentials) (*model.User, error) {
	user, err := s.auth.Authenticate(ctx, creds)
	if err != nil {
		s.logger.Warn().Err(err).Msg("login failed")
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("authenticator returned no user")
	}

	s.sessionRepo.SetUser(ctx, user)

	s.logger.Info().Str("email", user.Email).Msg("user logged in")

	return user, nil
}

func (s *sessionService) Logout(ctx context.Context) {
	s.sessionRepo.SetUser(ctx, nil)
	s.logger.Info().Msg("user logged out")
}

// AdminLogin enables admin mode when the email starts with the literal admin
// prefix. The password is not checked.
func (s *sessionService) AdminLogin(ctx context.Context, creds model.Credentials) error {
	email := creds.Email
	if email == "" {
		return model.Invalidf("email is required")
	}
	if !strings.HasPrefix(email, s.adminPrefix) {
		s.logger.Warn().Str("email", email).Msg("admin login refused")
		return model.Invalidf("Invalid admin credentials. Please use an email starting with '%s'.", s.adminPrefix)
	}

	s.sessionRepo.SetAdmin(ctx, true)

	s.logger.Info().Str("email", email).Msg("admin logged in")

	return nil
}

func (s *sessionService) AdminLogout(ctx context.Context) {
	s.sessionRepo.SetAdmin(ctx, false)
	s.logger.Info().Msg("admin logged out")
}

func (s *sessionService) UpdateUser(ctx context.Context, patch model.UserPatch) (*model.User, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, model.Invalidf("name must not be empty")
	}
	if patch.Email != nil && strings.TrimSpace(*patch.Email) == "" {
		return nil, model.Invalidf("email must not be empty")
	}

	user, ok := s.sessionRepo.PatchUser(ctx, patch)
	if !ok {
		s.logger.Debug().Msg("profile update ignored, no user signed in")
		return nil, nil
	}
	return user, nil
}

// RecordPath remembers path unless it is an admin or login route.
func (s *sessionService) RecordPath(ctx context.Context, path string) bool {
	if !isShopperPath(path) {
		return false
	}
	s.sessionRepo.SetLastPath(ctx, path)
	return true
}

func isShopperPath(path string) bool {
	if path == "" || !strings.HasPrefix(path, "/") {
		return false
	}
	if strings.HasPrefix(path, "/admin") {
		return false
	}
	return path != "/login"
}
