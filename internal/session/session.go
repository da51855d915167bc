// Package session mounts and unmounts per-login dashboards. Gate serves a single
// local user (the terminal UI); Manager serves many HTTP clients keyed by token.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"docdash/internal/dashboard"
	"docdash/internal/metrics"
	"docdash/internal/repository/memory"
	"docdash/internal/seed"
	"docdash/internal/service"
)

var (
	ErrUnknownSession = errors.New("unknown or expired session")
	ErrLoggedOut      = errors.New("not logged in")
)

// MountFunc builds the dashboard of a new login.
type MountFunc func(ctx context.Context) (*dashboard.Dashboard, error)

// Mount returns a MountFunc that seeds a fresh in-memory store from source on every call.
func Mount(source seed.Source, log *zap.Logger) MountFunc {
	return func(ctx context.Context) (*dashboard.Dashboard, error) {
		store := service.NewDocumentStore(memory.NewDocumentMemory(), source, service.WithLogger(log))
		if err := store.Initialize(ctx); err != nil {
			return nil, fmt.Errorf("mount dashboard: %w", err)
		}
		return dashboard.New(store), nil
	}
}

// Gate is the login switch of a single user.
type Gate struct {
	mount MountFunc

	mu   sync.Mutex
	dash *dashboard.Dashboard
}

func NewGate(mount MountFunc) *Gate {
	return &Gate{mount: mount}
}

// Login mounts a freshly seeded dashboard. Logging in while logged in keeps the
// current dashboard.
func (g *Gate) Login(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.dash != nil {
		return nil
	}
	d, err := g.mount(ctx)
	if err != nil {
		return err
	}
	g.dash = d
	return nil
}

// Logout drops the dashboard and all its documents.
func (g *Gate) Logout() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.dash != nil {
		g.dash.Close()
	}
	g.dash = nil
}

func (g *Gate) Authenticated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.dash != nil
}

// Dashboard returns the mounted dashboard or ErrLoggedOut.
func (g *Gate) Dashboard() (*dashboard.Dashboard, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.dash == nil {
		return nil, ErrLoggedOut
	}
	return g.dash, nil
}

type entry struct {
	dash     *dashboard.Dashboard
	lastSeen time.Time
}

// Manager keeps one dashboard per token. Idle sessions expire lazily.
type Manager struct {
	mount MountFunc
	idle  time.Duration
	now   func() time.Time
	newID func() string
	log   *zap.Logger
	onEnd []func(token string)

	mu       sync.Mutex
	sessions map[string]*entry
}

type ManagerOption func(*Manager)

func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) { m.now = now }
}

func WithTokenGenerator(gen func() string) ManagerOption {
	return func(m *Manager) { m.newID = gen }
}

func WithLogger(log *zap.Logger) ManagerOption {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithEndHook registers fn to run after a session logs out or expires.
func WithEndHook(fn func(token string)) ManagerOption {
	return func(m *Manager) {
		if fn != nil {
			m.onEnd = append(m.onEnd, fn)
		}
	}
}

// NewManager creates a manager. An idle timeout of zero disables expiry.
func NewManager(mount MountFunc, idle time.Duration, opts ...ManagerOption) *Manager {
	m := &Manager{
		mount:    mount,
		idle:     idle,
		now:      time.Now,
		newID:    uuid.NewString,
		log:      zap.NewNop(),
		sessions: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Login mounts a new dashboard and returns its token.
func (m *Manager) Login(ctx context.Context) (string, *dashboard.Dashboard, error) {
	d, err := m.mount(ctx)
	if err != nil {
		return "", nil, err
	}
	token := m.newID()

	m.mu.Lock()
	expired := m.sweepLocked()
	m.sessions[token] = &entry{dash: d, lastSeen: m.now()}
	metrics.ActiveSessions.Set(float64(len(m.sessions)))
	m.mu.Unlock()

	m.ended(expired...)
	m.log.Info("session started", zap.String("session_id", token))
	return token, d, nil
}

// Get resolves token and refreshes its idle time.
func (m *Manager) Get(token string) (*dashboard.Dashboard, error) {
	m.mu.Lock()
	e, ok := m.sessions[token]
	if !ok {
		m.mu.Unlock()
		return nil, ErrUnknownSession
	}
	now := m.now()
	if m.expired(e, now) {
		delete(m.sessions, token)
		metrics.ActiveSessions.Set(float64(len(m.sessions)))
		m.mu.Unlock()
		m.log.Info("session expired", zap.String("session_id", token))
		m.ended(token)
		return nil, ErrUnknownSession
	}
	e.lastSeen = now
	m.mu.Unlock()
	return e.dash, nil
}

// Logout ends the session. It reports whether the token was live.
func (m *Manager) Logout(token string) bool {
	m.mu.Lock()
	e, ok := m.sessions[token]
	if ok {
		delete(m.sessions, token)
		metrics.ActiveSessions.Set(float64(len(m.sessions)))
	}
	m.mu.Unlock()

	if !ok {
		return false
	}
	e.dash.Close()
	m.log.Info("session ended", zap.String("session_id", token))
	m.ended(token)
	return true
}

// Len counts live sessions, dropping expired ones first.
func (m *Manager) Len() int {
	m.mu.Lock()
	expired := m.sweepLocked()
	n := len(m.sessions)
	m.mu.Unlock()

	m.ended(expired...)
	return n
}

func (m *Manager) expired(e *entry, now time.Time) bool {
	return m.idle > 0 && now.Sub(e.lastSeen) > m.idle
}

// caller holds mu
func (m *Manager) sweepLocked() []string {
	now := m.now()
	var expired []string
	for token, e := range m.sessions {
		if m.expired(e, now) {
			delete(m.sessions, token)
			expired = append(expired, token)
		}
	}
	metrics.ActiveSessions.Set(float64(len(m.sessions)))
	return expired
}

// ended runs the end hooks; mu must not be held.
func (m *Manager) ended(tokens ...string) {
	for _, tok := range tokens {
		for _, fn := range m.onEnd {
			fn(tok)
		}
	}
}
