package console

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/marketdesk/sellerctl/session"
)

// Route names one console view.
type Route string

const (
	RouteLogin      Route = "/login"
	RouteRegister   Route = "/register"
	RouteDashboard  Route = "/dashboard"
	RouteProducts   Route = "/products"
	RouteBrands     Route = "/brands"
	RouteOrders     Route = "/orders"
	RouteReturns    Route = "/returns"
	RouteComplaints Route = "/complaints"
	RouteProfile    Route = "/profile"
)

var protectedRoutes = map[Route]bool{
	RouteDashboard:  true,
	RouteProducts:   true,
	RouteBrands:     true,
	RouteOrders:     true,
	RouteReturns:    true,
	RouteComplaints: true,
	RouteProfile:    true,
}

// IsProtected reports whether route requires an authenticated session.
func IsProtected(route Route) bool {
	return protectedRoutes[route]
}

// State is the guard's view of the session.
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

// Screen renders one console view. The SessionContext is empty for public
// routes.
type Screen func(ctx context.Context, sc SessionContext) error

// ErrLoginRequired is returned when a protected route is opened without a
// session and no login screen is available to recover.
var ErrLoginRequired = errors.New("login required")

// Guard is the access-control checkpoint in front of every seller screen.
// Protected routes render only with a full session; otherwise the guard falls
// back to the login screen, remembering the requested route for a best-effort
// resume after a successful login.
//
// Visiting the login or register routes while already authenticated is
// deliberately allowed through: re-rendering the login screen with a live
// session is harmless, and blocking it bought the original console nothing.
type Guard struct {
	sessions    *session.Controller
	loginScreen Screen
	logger      zerolog.Logger

	lock      sync.Mutex
	active    Route
	requested Route
}

// GuardOption defines a function type to modify the Guard instance.
type GuardOption func(*Guard)

// WithGuardLogger sets the logger used for guard transitions.
func WithGuardLogger(logger zerolog.Logger) GuardOption {
	return func(g *Guard) {
		g.logger = logger
	}
}

// NewGuard initializes a Guard bound to the session controller. The guard
// subscribes to session transitions so that a forced logout lands it back on
// the login route.
func NewGuard(sessions *session.Controller, options ...GuardOption) (*Guard, error) {
	if sessions == nil {
		return nil, errors.New("[NewGuard] session controller is required")
	}

	guard := &Guard{
		sessions: sessions,
		logger:   zerolog.Nop(),
	}

	for _, opt := range options {
		opt(guard)
	}

	sessions.Subscribe(guard.onSessionChange)
	return guard, nil
}

// SetLoginScreen installs the screen the guard falls back to when a protected
// route is opened without a session.
func (g *Guard) SetLoginScreen(screen Screen) {
	g.loginScreen = screen
}

// CurrentState derives the guard state from session presence.
func (g *Guard) CurrentState() State {
	if g.sessions.Current().Valid() {
		return Authenticated
	}
	return Unauthenticated
}

// Run opens route with screen. For protected routes without a session the
// login screen renders first; if it leaves the controller authenticated, the
// originally requested screen runs immediately after (best-effort resume).
func (g *Guard) Run(ctx context.Context, route Route, screen Screen) error {
	if !IsProtected(route) {
		g.setActive(route)
		return screen(ctx, g.sessionContext())
	}

	if g.CurrentState() != Authenticated {
		g.remember(route)
		g.logger.Debug().Str("route", string(route)).Msg("unauthenticated, falling back to login")
		if g.loginScreen == nil {
			return ErrLoginRequired
		}
		g.setActive(RouteLogin)
		if err := g.loginScreen(ctx, SessionContext{}); err != nil {
			return err
		}
		if g.CurrentState() != Authenticated {
			return ErrLoginRequired
		}
	}

	g.setActive(route)
	return screen(ctx, g.sessionContext())
}

// ToLogin implements api.Navigator: a rejected token pushes the guard back to
// the login route. Safe to call any number of times; once on the login route
// further calls change nothing.
func (g *Guard) ToLogin(reason string) {
	g.lock.Lock()
	defer g.lock.Unlock()

	if g.active == RouteLogin {
		return
	}
	g.requested = g.active
	g.active = RouteLogin
	g.logger.Warn().Str("reason", reason).Msg("redirected to login")
}

// Active returns the route currently rendered.
func (g *Guard) Active() Route {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.active
}

// Requested returns the route remembered for post-login resume, if any.
func (g *Guard) Requested() Route {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.requested
}

func (g *Guard) sessionContext() SessionContext {
	current := g.sessions.Current()
	if !current.Valid() {
		return SessionContext{}
	}
	return SessionContext{
		Token:   current.Token,
		Profile: current.Profile,
		Logout:  g.sessions.Logout,
	}
}

func (g *Guard) setActive(route Route) {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.active = route
}

func (g *Guard) remember(route Route) {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.requested = route
}

func (g *Guard) onSessionChange(s *session.Session) {
	if s.Valid() {
		return
	}
	g.lock.Lock()
	defer g.lock.Unlock()
	g.active = RouteLogin
}
