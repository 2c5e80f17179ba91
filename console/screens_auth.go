package console

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/marketdesk/sellerctl/api"
)

// Login renders the login form. A 401 from the login endpoint is a wrong
// credentials error and stays right here on the form; it never triggers the
// global forced-logout path.
func (s *Screens) Login(ctx context.Context, _ SessionContext) error {
	fmt.Fprintln(s.out, "== Seller Login ==")

	email, err := s.prompt("Email")
	if err != nil {
		return err
	}
	password, err := s.readPassword()
	if err != nil {
		return err
	}

	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		var reqErr *api.RequestError
		switch {
		case errors.As(err, &reqErr) && reqErr.Unauthorized():
			if reqErr.Message != "" {
				fmt.Fprintf(s.out, "Login failed: %s\n", reqErr.Message)
			} else {
				fmt.Fprintln(s.out, "Login failed: invalid email or password.")
			}
			return nil
		default:
			return s.presentError("log in", err)
		}
	}

	if err := s.sessions.Login(resp.Token, resp.Seller); err != nil {
		return errors.Wrap(err, "[Screens.Login] sessions.Login")
	}

	fmt.Fprintf(s.out, "Welcome back, %s.\n", resp.Seller.Name)
	return nil
}

// Register submits a new seller registration. Registration issues no token;
// the seller logs in afterwards.
func (s *Screens) Register(ctx context.Context, registration api.Registration) error {
	if err := s.client.Register(ctx, registration); err != nil {
		return s.presentError("register", err)
	}
	fmt.Fprintln(s.out, "Registration successful! Please login to continue.")
	return nil
}

// Logout ends the session. Logging out while already logged out is fine.
func (s *Screens) Logout(_ context.Context) error {
	if err := s.sessions.Logout(); err != nil {
		return errors.Wrap(err, "[Screens.Logout] sessions.Logout")
	}
	fmt.Fprintln(s.out, "Logged out.")
	return nil
}
