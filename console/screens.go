package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/marketdesk/sellerctl/api"
	"github.com/marketdesk/sellerctl/session"
	"github.com/marketdesk/sellerctl/token"
)

// Screens renders the console views. Every screen receives its SessionContext
// explicitly from the Guard; failures are always printed, never swallowed.
type Screens struct {
	client       *api.Client
	sessions     *session.Controller
	out          io.Writer
	in           *bufio.Reader
	readPassword func() (string, error)
}

// ScreensOption defines a function type to modify the Screens instance.
type ScreensOption func(*Screens)

// WithOutput redirects screen output (primarily for tests).
func WithOutput(out io.Writer) ScreensOption {
	return func(s *Screens) {
		s.out = out
	}
}

// WithInput redirects interactive input (primarily for tests).
func WithInput(in io.Reader) ScreensOption {
	return func(s *Screens) {
		s.in = bufio.NewReader(in)
	}
}

// WithPasswordReader overrides the no-echo password prompt (for tests).
func WithPasswordReader(fn func() (string, error)) ScreensOption {
	return func(s *Screens) {
		s.readPassword = fn
	}
}

// NewScreens initializes the screen set with its required dependencies.
func NewScreens(client *api.Client, sessions *session.Controller, options ...ScreensOption) (*Screens, error) {
	if client == nil {
		return nil, errors.New("[NewScreens] api client is required")
	}
	if sessions == nil {
		return nil, errors.New("[NewScreens] session controller is required")
	}

	screens := &Screens{
		client:   client,
		sessions: sessions,
		out:      os.Stdout,
		in:       bufio.NewReader(os.Stdin),
	}
	screens.readPassword = screens.readPasswordNoEcho

	for _, opt := range options {
		opt(screens)
	}

	return screens, nil
}

func (s *Screens) prompt(label string) (string, error) {
	fmt.Fprintf(s.out, "%s: ", label)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", errors.Wrap(err, "[Screens.prompt] read input")
	}
	return strings.TrimSpace(line), nil
}

func (s *Screens) readPasswordNoEcho() (string, error) {
	fmt.Fprint(s.out, "Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(s.out)
	if err != nil {
		return "", errors.Wrap(err, "[Screens.readPasswordNoEcho] term.ReadPassword")
	}
	return string(raw), nil
}

// sellerID recovers the seller id for query scoping, preferring the profile
// and falling back to the best-effort token decode. A decode failure is a
// local data-loading error for the calling screen, never a logout.
func (s *Screens) sellerID(sc SessionContext) (string, error) {
	if sc.Profile != nil && sc.Profile.ID != 0 {
		return fmt.Sprintf("%d", sc.Profile.ID), nil
	}
	id, err := token.SellerID(sc.Token)
	if err != nil {
		return "", errors.Wrap(err, "[Screens.sellerID] could not determine seller id")
	}
	return id, nil
}

// presentError writes a specific, visible message for a failed call. The
// forced-logout path for an expired session has already run by the time the
// error reaches a screen, so a 401 here only needs a short note.
func (s *Screens) presentError(action string, err error) error {
	var reqErr *api.RequestError
	var connErr *api.ConnectivityError
	switch {
	case errors.As(err, &connErr):
		fmt.Fprintf(s.out, "Could not reach the backend while trying to %s. Check your connection and try again.\n", action)
	case errors.As(err, &reqErr) && reqErr.Unauthorized():
		fmt.Fprintf(s.out, "Your session has expired. Please log in again.\n")
	case errors.As(err, &reqErr) && reqErr.Message != "":
		fmt.Fprintf(s.out, "Failed to %s: %s\n", action, reqErr.Message)
	default:
		fmt.Fprintf(s.out, "Failed to %s: %v\n", action, err)
	}
	return errors.Wrapf(err, "failed to %s", action)
}
