package console_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marketdesk/sellerctl/api"
	"github.com/marketdesk/sellerctl/console"
	"github.com/marketdesk/sellerctl/session"
	fakesessionstore "github.com/marketdesk/sellerctl/session/repofakes"
)

type consoleFixture struct {
	sessions *session.Controller
	guard    *console.Guard
	screens  *console.Screens
	out      *bytes.Buffer
}

// setupConsoleFixture wires controller, guard, client and screens together
// the same way the CLI does, against an httptest backend.
func setupConsoleFixture(t *testing.T, handler http.Handler, input string) *consoleFixture {
	t.Helper()

	sessions, err := session.NewController(fakesessionstore.NewFakeSessionStore())
	require.NoError(t, err)
	require.NoError(t, sessions.Initialize())

	guard, err := console.NewGuard(sessions)
	require.NoError(t, err)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := api.NewClient(server.URL, sessions, api.WithNavigator(guard))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	screens, err := console.NewScreens(client, sessions,
		console.WithOutput(out),
		console.WithInput(strings.NewReader(input)),
		console.WithPasswordReader(func() (string, error) { return "x", nil }),
	)
	require.NoError(t, err)
	guard.SetLoginScreen(screens.Login)

	return &consoleFixture{
		sessions: sessions,
		guard:    guard,
		screens:  screens,
		out:      out,
	}
}

func loginHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/seller/login", r.URL.Path)
		_ = json.NewEncoder(w).Encode(api.LoginResponse{
			Token:  testToken,
			Seller: testProfile(),
		})
	})
}

func TestLoginScreenEstablishesSession(t *testing.T) {
	fixture := setupConsoleFixture(t, loginHandler(t), "a@b.com\n")

	err := fixture.screens.Login(context.Background(), console.SessionContext{})
	require.NoError(t, err)

	require.True(t, fixture.sessions.Current().Valid())
	require.Equal(t, testToken, fixture.sessions.Token())
	require.Contains(t, fixture.out.String(), "Welcome back, Acme.")
}

func TestLoginScreenShowsFormErrorOnRejection(t *testing.T) {
	fixture := setupConsoleFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid email or password"}`))
	}), "a@b.com\n")

	// Wrong credentials surface on the form; no error escalates and no
	// session appears.
	err := fixture.screens.Login(context.Background(), console.SessionContext{})
	require.NoError(t, err)

	require.Nil(t, fixture.sessions.Current())
	require.Contains(t, fixture.out.String(), "Invalid email or password")
}

func TestLoginScreenReportsConnectivityFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	sessions, err := session.NewController(fakesessionstore.NewFakeSessionStore())
	require.NoError(t, err)
	require.NoError(t, sessions.Initialize())

	client, err := api.NewClient(server.URL, sessions)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	screens, err := console.NewScreens(client, sessions,
		console.WithOutput(out),
		console.WithInput(strings.NewReader("a@b.com\n")),
		console.WithPasswordReader(func() (string, error) { return "x", nil }),
	)
	require.NoError(t, err)

	err = screens.Login(context.Background(), console.SessionContext{})
	require.Error(t, err)
	require.Contains(t, out.String(), "Could not reach the backend")
}

// The end-to-end shape: login succeeds, then a protected call comes back 401.
// The session must end up empty and the guard on the login route.
func TestExpiredTokenOnProtectedScreenForcesRelogin(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("/api/seller/login", loginHandler(t))
	mux.HandleFunc("/api/seller/ownprofile", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	fixture := setupConsoleFixture(t, mux, "a@b.com\n")

	require.NoError(t, fixture.screens.Login(context.Background(), console.SessionContext{}))
	require.True(t, fixture.sessions.Current().Valid())

	err := fixture.guard.Run(context.Background(), console.RouteProfile, fixture.screens.Profile)
	require.Error(t, err)

	require.Nil(t, fixture.sessions.Current())
	require.Equal(t, console.RouteLogin, fixture.guard.Active())
	require.Contains(t, fixture.out.String(), "session has expired")
}

func TestLogoutScreenIsIdempotent(t *testing.T) {
	fixture := setupConsoleFixture(t, loginHandler(t), "a@b.com\n")

	require.NoError(t, fixture.screens.Login(context.Background(), console.SessionContext{}))
	require.NoError(t, fixture.screens.Logout(context.Background()))
	require.NoError(t, fixture.screens.Logout(context.Background()))
	require.Nil(t, fixture.sessions.Current())
}
