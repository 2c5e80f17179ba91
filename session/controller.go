package session

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Controller is the single source of truth for the current session during the
// process lifetime, reconciled with the durable Store. Screens receive
// read-only views plus a logout callback; they never touch the store directly.
type Controller struct {
	store  Store
	logger zerolog.Logger

	lock      sync.RWMutex
	current   *Session
	observers []func(*Session)
}

// ControllerOption defines a function type to modify the Controller instance.
type ControllerOption func(*Controller)

// WithLogger sets the logger used for session transitions.
func WithLogger(logger zerolog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController initializes a new Controller with the required store.
func NewController(store Store, options ...ControllerOption) (*Controller, error) {
	if store == nil {
		return nil, errors.New("[NewController] store is required")
	}

	controller := &Controller{
		store:  store,
		logger: zerolog.Nop(),
	}

	for _, opt := range options {
		opt(controller)
	}

	return controller, nil
}

// Initialize hydrates the in-memory session from the store. Called once at
// startup, before any screen renders.
func (c *Controller) Initialize() error {
	loaded, err := c.store.Load()
	if err != nil {
		return errors.Wrap(err, "[Controller.Initialize] store.Load")
	}
	if loaded != nil && !loaded.Valid() {
		loaded = nil
	}

	c.lock.Lock()
	c.current = loaded
	c.lock.Unlock()

	return nil
}

// Login installs the session issued by a successful authentication call and
// persists it. Both halves are set in one step; observers never see a partial
// session.
func (c *Controller) Login(token string, profile *SellerProfile) error {
	if token == "" || profile == nil {
		return ErrIncompleteSession
	}

	newSession := &Session{Token: token, Profile: profile}

	c.lock.Lock()
	c.current = newSession
	if err := c.store.Save(newSession); err != nil {
		c.current = nil
		c.lock.Unlock()
		return errors.Wrap(err, "[Controller.Login] store.Save")
	}
	c.lock.Unlock()

	c.logger.Debug().Int64("sellerID", profile.ID).Msg("session established")
	c.notify()
	return nil
}

// Logout clears the in-memory session and the store. Logging out when already
// logged out is a no-op, not an error.
func (c *Controller) Logout() error {
	c.lock.Lock()
	if c.current == nil {
		c.lock.Unlock()
		return nil
	}
	c.current = nil
	err := c.store.Clear()
	c.lock.Unlock()

	if err != nil {
		return errors.Wrap(err, "[Controller.Logout] store.Clear")
	}

	c.logger.Debug().Msg("session cleared")
	c.notify()
	return nil
}

// LogoutIfCurrent logs out only if token is still the active session token.
// A slow request can come back 401 after a fresh login has replaced the
// session; tearing down only the session that issued the failing request
// keeps the newer one intact.
func (c *Controller) LogoutIfCurrent(token string) error {
	c.lock.RLock()
	stale := c.current == nil || c.current.Token != token
	c.lock.RUnlock()

	if stale {
		return nil
	}
	return c.Logout()
}

// Current returns a read-only copy of the active session, or nil when logged
// out.
func (c *Controller) Current() *Session {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if c.current == nil {
		return nil
	}
	copied := *c.current
	return &copied
}

// Token returns the active bearer token, or "" when logged out.
func (c *Controller) Token() string {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if c.current == nil {
		return ""
	}
	return c.current.Token
}

// Subscribe registers fn to be called synchronously after every login and
// logout transition.
func (c *Controller) Subscribe(fn func(*Session)) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.observers = append(c.observers, fn)
}

func (c *Controller) notify() {
	c.lock.RLock()
	observers := make([]func(*Session), len(c.observers))
	copy(observers, c.observers)
	c.lock.RUnlock()

	for _, fn := range observers {
		fn(c.Current())
	}
}
