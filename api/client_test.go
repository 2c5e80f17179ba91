package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marketdesk/sellerctl/api"
	"github.com/marketdesk/sellerctl/session"
	fakesessionstore "github.com/marketdesk/sellerctl/session/repofakes"
)

const (
	testToken    = "abc.def.ghi"
	testNewToken = "jkl.mno.pqr"
)

type fakeNavigator struct {
	lock    sync.Mutex
	calls   int
	reasons []string
}

func (n *fakeNavigator) ToLogin(reason string) {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.calls++
	n.reasons = append(n.reasons, reason)
}

func (n *fakeNavigator) callCount() int {
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.calls
}

type testFixture struct {
	sessions  *session.Controller
	navigator *fakeNavigator
	client    *api.Client
	server    *httptest.Server
}

func setupTestFixture(t *testing.T, handler http.Handler) *testFixture {
	t.Helper()

	sessions, err := session.NewController(fakesessionstore.NewFakeSessionStore())
	require.NoError(t, err)
	require.NoError(t, sessions.Initialize())

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	navigator := &fakeNavigator{}
	client, err := api.NewClient(server.URL, sessions, api.WithNavigator(navigator))
	require.NoError(t, err)

	return &testFixture{
		sessions:  sessions,
		navigator: navigator,
		client:    client,
		server:    server,
	}
}

func (f *testFixture) loginAs(t *testing.T, token string) {
	t.Helper()
	require.NoError(t, f.sessions.Login(token, &session.SellerProfile{ID: 7, Name: "Acme"}))
}

func TestNewClientRequiresDependencies(t *testing.T) {
	sessions, err := session.NewController(fakesessionstore.NewFakeSessionStore())
	require.NoError(t, err)

	_, err = api.NewClient("", sessions)
	require.Error(t, err)

	_, err = api.NewClient("http://localhost", nil)
	require.Error(t, err)
}

func TestRequestsCarryBearerTokenAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	fixture := setupTestFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		_ = json.NewEncoder(w).Encode(&session.SellerProfile{ID: 7})
	}))
	fixture.loginAs(t, testToken)

	_, err := fixture.client.OwnProfile(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer "+testToken, gotAuth)
	require.NotEmpty(t, gotRequestID)
}

func TestLoginSuccessReturnsTokenAndSeller(t *testing.T) {
	fixture := setupTestFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/seller/login", r.URL.Path)

		var creds api.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "a@b.com", creds.Email)

		_ = json.NewEncoder(w).Encode(api.LoginResponse{
			Token:  testToken,
			Seller: &session.SellerProfile{ID: 7, Name: "Acme"},
		})
	}))

	resp, err := fixture.client.Login(context.Background(), "a@b.com", "x")
	require.NoError(t, err)
	require.Equal(t, testToken, resp.Token)
	require.Equal(t, "Acme", resp.Seller.Name)

	// The client reports the result; installing the session is the caller's
	// decision.
	require.Nil(t, fixture.sessions.Current())
}

func TestLoginRejectionDoesNotForceLogout(t *testing.T) {
	fixture := setupTestFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	fixture.loginAs(t, testToken)

	_, err := fixture.client.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)

	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	require.True(t, reqErr.Unauthorized())
	require.Equal(t, "Invalid credentials", reqErr.Message)

	// No forced navigation, and the existing session is untouched.
	require.Zero(t, fixture.navigator.callCount())
	require.True(t, fixture.sessions.Current().Valid())
}

func TestProtectedUnauthorizedForcesLogoutAndRedirect(t *testing.T) {
	fixture := setupTestFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	fixture.loginAs(t, testToken)

	_, err := fixture.client.OwnProfile(context.Background())
	require.Error(t, err)

	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	require.True(t, reqErr.Unauthorized())

	require.Nil(t, fixture.sessions.Current())
	require.Equal(t, 1, fixture.navigator.callCount())
}

func TestConcurrentUnauthorizedCollapsesToOneLogout(t *testing.T) {
	fixture := setupTestFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	fixture.loginAs(t, testToken)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = fixture.client.OwnProfile(context.Background())
		}()
	}
	wg.Wait()

	require.Nil(t, fixture.sessions.Current())
	// Repeated triggers are harmless; the navigator owns idempotent routing.
	require.GreaterOrEqual(t, fixture.navigator.callCount(), 1)
}

func TestStaleUnauthorizedDoesNotDestroyNewerSession(t *testing.T) {
	var fixture *testFixture
	fixture = setupTestFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Simulate a fresh login completing while this request is in flight.
		_ = fixture.sessions.Logout()
		fixture.loginAs(t, testNewToken)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	fixture.loginAs(t, testToken)

	_, err := fixture.client.OwnProfile(context.Background())
	require.Error(t, err)

	// The 401 belonged to the old token; the new session survives.
	require.True(t, fixture.sessions.Current().Valid())
	require.Equal(t, testNewToken, fixture.sessions.Token())
}

func TestDomainFailureCarriesServerMessage(t *testing.T) {
	fixture := setupTestFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"SKU already exists"}`))
	}))
	fixture.loginAs(t, testToken)

	err := fixture.client.CreateProduct(context.Background(), api.Product{Name: "Widget"})
	require.Error(t, err)

	var reqErr *api.RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, http.StatusUnprocessableEntity, reqErr.Status)
	require.Equal(t, "SKU already exists", reqErr.Message)
	require.False(t, reqErr.Unauthorized())

	// Domain failures never touch the session.
	require.True(t, fixture.sessions.Current().Valid())
	require.Zero(t, fixture.navigator.callCount())
}

func TestConnectivityFailureIsNotUnauthorized(t *testing.T) {
	fixture := setupTestFixture(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	fixture.loginAs(t, testToken)
	fixture.server.Close()

	_, err := fixture.client.OwnProfile(context.Background())
	require.Error(t, err)

	var connErr *api.ConnectivityError
	require.ErrorAs(t, err, &connErr)

	require.True(t, fixture.sessions.Current().Valid())
	require.Zero(t, fixture.navigator.callCount())
}
