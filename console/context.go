package console

import "github.com/marketdesk/sellerctl/session"

// SessionContext is the read-only view of the active session handed
// explicitly to every protected screen, plus the logout callback. Screens get
// everything they need from it; they never reach into the session controller
// or the store themselves.
type SessionContext struct {
	Token   string
	Profile *session.SellerProfile
	Logout  func() error
}

// Authenticated reports whether the context carries a full session.
func (sc SessionContext) Authenticated() bool {
	return sc.Token != "" && sc.Profile != nil
}
