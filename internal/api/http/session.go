package http

import (
	"net/http"
	"strings"
)

// Session is the identity the external auth layer established for a request:
// a github bearer credential plus the verified login it belongs to.
type Session struct {
	Token string
	Login string
}

// Sessions resolves the request's session, if any.
type Sessions interface {
	Session(r *http.Request) (Session, bool)
}

// HeaderSessions reads the session from headers set by the identity proxy in
// front of this service: the bearer credential from Authorization and the
// verified github login from X-Github-Login.
type HeaderSessions struct{}

// Session implements Sessions.
func (HeaderSessions) Session(r *http.Request) (Session, bool) {
	const prefix = "Bearer "

	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, prefix) {
		return Session{}, false
	}

	token := strings.TrimSpace(auth[len(prefix):])
	login := r.Header.Get("X-Github-Login")
	if token == "" || login == "" {
		return Session{}, false
	}

	return Session{Token: token, Login: login}, true
}
