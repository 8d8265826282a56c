package domain

// SessionCookieName is the transport cookie carrying the session token.
const SessionCookieName = "session_token"

// AuthContext is the per-request identity derived from a verified
// session token. It lives only for the duration of the request.
type AuthContext struct {
	UserID int64
	Email  string
}
