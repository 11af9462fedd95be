// Package session supplies the current viewer's identity and the bearer
// token attached to every outbound request. Token issuance and refresh
// live elsewhere; components here only read.
package session

// Provider exposes the authenticated session to the core. Components
// take a Provider by injection rather than reaching into a global.
type Provider interface {
	// ViewerID returns the authenticated user's id, or "" when logged out.
	ViewerID() string

	// Token returns the authorization token for outbound requests.
	Token() string
}

// Static is a fixed session, typically built from configuration.
type Static struct {
	UserID    string
	AuthToken string
}

func (s Static) ViewerID() string { return s.UserID }

func (s Static) Token() string { return s.AuthToken }
