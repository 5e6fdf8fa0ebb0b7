package repository

import (
	"context"
	"sync"

	"simusmart/internal/model"

	"github.com/rs/zerolog"
)

// DefaultLastPath is the shopper path before any navigation is recorded.
const DefaultLastPath = "/"

// sessionRepository implements SessionRepository for the single logical
// session of the process.
type sessionRepository struct {
	mu       sync.RWMutex
	user     *model.User
	isAdmin  bool
	lastPath string
	logger   zerolog.Logger
}

// NewSessionRepository creates an anonymous, non-admin session.
func NewSessionRepository(logger zerolog.Logger) SessionRepository {
	return &sessionRepository{
		lastPath: DefaultLastPath,
		logger:   logger.With().Str("repository", "session").Logger(),
	}
}

// Snapshot returns a copy of the session state.
func (r *sessionRepository) Snapshot(ctx context.Context) model.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := model.Session{
		IsAuthenticated: r.user != nil,
		IsAdmin:         r.isAdmin,
		LastUserPath:    r.lastPath,
	}
	if r.user != nil {
		u := *r.user
		s.User = &u
	}
	return s
}

// SetUser signs a user in, or out when u is nil.
func (r *sessionRepository) SetUser(ctx context.Context, u *model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u == nil {
		r.user = nil
		r.logger.Debug().Msg("user signed out")
		return
	}
	copied := *u
	r.user = &copied

	r.logger.Debug().Str("email", u.Email).Msg("user signed in")
}

// PatchUser merges patch into the current user.
func (r *sessionRepository) PatchUser(ctx context.Context, patch model.UserPatch) (*model.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.user == nil {
		return nil, false
	}

	if patch.Name != nil {
		r.user.Name = *patch.Name
	}
	if patch.Email != nil {
		r.user.Email = *patch.Email
	}

	u := *r.user
	return &u, true
}

// SetAdmin switches admin mode on or off.
func (r *sessionRepository) SetAdmin(ctx context.Context, on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.isAdmin = on

	r.logger.Debug().Bool("admin", on).Msg("admin mode changed")
}

// SetLastPath records the last visited shopper path.
func (r *sessionRepository) SetLastPath(ctx context.Context, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastPath = path
}
