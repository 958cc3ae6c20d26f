// Package service provides the activity directory service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/internal/domain/catalog"
	"github.com/mergington/activities/internal/domain/model"
	"github.com/mergington/activities/pkg/logger"
	"github.com/mergington/activities/pkg/metrics"
)

// ErrNotStarted is returned by operations invoked before Start.
var ErrNotStarted = errors.New("service not started")

// Service owns the activity store and applies roster operations to it.
type Service struct {
	mu sync.RWMutex

	store repository.Store

	// Configuration
	seed            model.Activities
	enforceCapacity bool

	started bool
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCatalog sets the activities the store is seeded with on Start.
func WithCatalog(acts model.Activities) Option {
	return func(s *Service) {
		if len(acts) > 0 {
			s.seed = acts
		}
	}
}

// WithCapacityEnforcement rejects signups to full activities.
func WithCapacityEnforcement(enabled bool) Option {
	return func(s *Service) {
		s.enforceCapacity = enabled
	}
}

// WithStore injects a ready store. Start then skips seeding.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// New constructs a Service seeded with the default catalog.
func New(opts ...Option) *Service {
	s := &Service{
		seed: catalog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start seeds the store. Calling Start twice is a no-op.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.store == nil {
		s.store = repository.NewMemoryStore(s.seed,
			repository.WithCapacityEnforcement(s.enforceCapacity),
		)
	}

	s.started = true
	s.logger.Info(ctx, "activity service started",
		logger.Int("activities", s.store.Count(ctx)),
		logger.Bool("enforceCapacity", s.enforceCapacity),
	)
	return nil
}

// Stop marks the service stopped. Roster state is kept in memory only and
// is not carried across restarts.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "activity service stopped")
}

func (s *Service) activeStore() (repository.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, ErrNotStarted
	}
	return s.store, nil
}

// ListActivities returns every activity keyed by name.
func (s *Service) ListActivities(ctx context.Context) (model.Activities, error) {
	store, err := s.activeStore()
	if err != nil {
		return nil, err
	}
	return store.List(ctx), nil
}

// GetActivity returns a single activity.
func (s *Service) GetActivity(ctx context.Context, name string) (model.Activity, error) {
	store, err := s.activeStore()
	if err != nil {
		return model.Activity{}, err
	}
	a, err := store.Get(ctx, name)
	if err != nil {
		return model.Activity{}, fmt.Errorf("get %q: %w", name, err)
	}
	return a, nil
}

// Signup adds email to the roster of name and returns a confirmation message.
func (s *Service) Signup(ctx context.Context, name, email string) (string, error) {
	store, err := s.activeStore()
	if err != nil {
		return "", err
	}
	a, err := store.Signup(ctx, name, email)
	if err != nil {
		metrics.RecordRejection("signup", reason(err))
		return "", fmt.Errorf("signup %q: %w", name, err)
	}

	metrics.RecordSignup(name)
	s.logger.Info(ctx, "participant signed up",
		logger.String("activity", name),
		logger.String("email", email),
		logger.Int("participants", len(a.Participants)),
	)
	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// Unregister removes email from the roster of name and returns a confirmation message.
func (s *Service) Unregister(ctx context.Context, name, email string) (string, error) {
	store, err := s.activeStore()
	if err != nil {
		return "", err
	}
	a, err := store.Unregister(ctx, name, email)
	if err != nil {
		metrics.RecordRejection("unregister", reason(err))
		return "", fmt.Errorf("unregister %q: %w", name, err)
	}

	metrics.RecordUnregistration(name)
	s.logger.Info(ctx, "participant unregistered",
		logger.String("activity", name),
		logger.String("email", email),
		logger.Int("participants", len(a.Participants)),
	)
	return fmt.Sprintf("Unregistered %s from %s", email, name), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":         s.started,
		"enforceCapacity": s.enforceCapacity,
	}
	if s.started {
		acts := s.store.List(context.Background())
		stats["activities"] = len(acts)
		stats["participants"] = acts.ParticipantCount()
	}
	return stats
}

// reason maps a store error onto a metrics label.
func reason(err error) string {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return "not_found"
	case errors.Is(err, repository.ErrAlreadySignedUp):
		return "already_signed_up"
	case errors.Is(err, repository.ErrNotSignedUp):
		return "not_signed_up"
	case errors.Is(err, repository.ErrActivityFull):
		return "full"
	default:
		return "other"
	}
}
