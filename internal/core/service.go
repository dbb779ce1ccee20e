package core

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/JonMunkholm/procurement/internal/logging"
	"github.com/JonMunkholm/procurement/internal/table"
)

// ErrViewNotFound is returned for an unregistered view key.
var ErrViewNotFound = errors.New("view not found")

// DefaultFetchTimeout bounds a single load when none is configured.
var DefaultFetchTimeout = 30 * time.Second

// maxRefetches bounds the server-side page loop in case the total keeps
// moving between fetches.
const maxRefetches = 3

// Options configures a Service. Zero values fall back to package defaults.
type Options struct {
	DefaultPageSize int
	PageSizes       []int

	SessionTTL  time.Duration
	MaxSessions int

	MaxConcurrentFetches int
	FetchWait            time.Duration
	FetchTimeout         time.Duration

	Catalog *Catalog
}

// Service is the entry point for all list view operations.
type Service struct {
	source   Source
	sessions *SessionStore
	limiter  *FetchLimiter
	catalog  *Catalog
	opts     Options
}

// SessionView is a session's identity plus its current table snapshot.
type SessionView struct {
	ID      string `json:"id"`
	ViewKey string `json:"viewKey"`
	Label   string `json:"label"`
	Scope   Scope  `json:"scope"`
	table.View
}

// NewService creates a service loading rows from source.
func NewService(source Source, opts Options) *Service {
	if len(opts.PageSizes) == 0 {
		opts.PageSizes = table.DefaultPageSizeOptions
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = DefaultFetchTimeout
	}

	return &Service{
		source:   source,
		sessions: NewSessionStore(opts.SessionTTL, opts.MaxSessions),
		limiter:  NewFetchLimiter(opts.MaxConcurrentFetches, opts.FetchWait),
		catalog:  opts.Catalog,
		opts:     opts,
	}
}

// ListViews returns info for all registered views with catalog overrides applied.
func (s *Service) ListViews() []ViewInfo {
	defs := All()
	infos := make([]ViewInfo, len(defs))
	for i, def := range defs {
		infos[i] = s.catalog.Apply(def).Info
	}
	return infos
}

// View returns a view definition with catalog overrides applied.
func (s *Service) View(key string) (ViewDefinition, error) {
	def, ok := Get(key)
	if !ok {
		return ViewDefinition{}, fmt.Errorf("%w: %s", ErrViewNotFound, key)
	}
	return s.catalog.Apply(def), nil
}

// Vessels lists ships available for the vessel scope filter.
func (s *Service) Vessels(ctx context.Context) ([]Vessel, error) {
	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	defer s.limiter.Release()

	ctx, cancel := context.WithTimeout(ctx, s.opts.FetchTimeout)
	defer cancel()
	return s.source.Vessels(ctx)
}

// CreateSession mounts a view for scope, loads its first rows and stores it.
func (s *Service) CreateSession(ctx context.Context, viewKey string, scope Scope) (SessionView, error) {
	def, err := s.View(viewKey)
	if err != nil {
		return SessionView{}, err
	}

	sess := s.sessions.newSession(def, scope)
	cfg := table.Config{
		SearchPlaceholder: def.Info.SearchPlaceholder,
		InitialPageSize:   def.Info.DefaultPageSize,
		PageSizeOptions:   s.opts.PageSizes,
		ServerSide:        def.Info.ServerSide,
	}
	if cfg.InitialPageSize <= 0 {
		cfg.InitialPageSize = s.opts.DefaultPageSize
	}
	if cfg.ServerSide {
		cfg.OnPageChange = sess.requestPage
		cfg.OnPageSizeChange = sess.requestPage
	}
	sess.table = table.New(def.Columns, cfg)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := s.load(ctx, sess); err != nil {
		return SessionView{}, err
	}
	if err := s.sessions.Add(sess); err != nil {
		return SessionView{}, err
	}

	logging.WithFields(ctx, "session_id", sess.ID, "view", viewKey).Info("session created",
		"rows", sess.table.TotalRecords(),
		"server_side", def.Info.ServerSide,
		"ip", GetIPAddressFromContext(ctx),
		"user_agent", GetUserAgentFromContext(ctx),
	)
	return s.snapshot(sess), nil
}

// Session returns the current snapshot of a session.
func (s *Service) Session(id string) (SessionView, error) {
	sess, err := s.sessions.Get(id)
	if err != nil {
		return SessionView{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.snapshot(sess), nil
}

// DeleteSession drops a session.
func (s *Service) DeleteSession(id string) error {
	if !s.sessions.Delete(id) {
		return ErrSessionNotFound
	}
	return nil
}

// SessionCount returns the number of live sessions.
func (s *Service) SessionCount() int {
	return s.sessions.Len()
}

// FetchStatus reports fetch limiter usage.
func (s *Service) FetchStatus() FetchLimiterStatus {
	return s.limiter.Status()
}

// WaitForFetches blocks until in-flight fetches finish or ctx ends.
func (s *Service) WaitForFetches(ctx context.Context) error {
	return s.limiter.WaitForDrain(ctx)
}

// snapshot builds the session view. Caller holds sess.mu.
func (s *Service) snapshot(sess *Session) SessionView {
	scope := sess.scope
	scope.ShipIDs = slices.Clone(scope.ShipIDs)
	return SessionView{
		ID:      sess.ID,
		ViewKey: sess.View.Info.Key,
		Label:   sess.View.Info.Label,
		Scope:   scope,
		View:    sess.table.View(),
	}
}
