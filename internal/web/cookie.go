package web

import (
	"errors"
	"net/http"

	"github.com/vbonduro/menuscan/internal/session"
)

const sessionCookie = "menuscan_session"

// sessionID returns the visitor's session id, starting a new session and
// setting the cookie when the request carries none or an expired one.
func (s *Server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		if _, err := s.service.View(r.Context(), c.Value); err == nil {
			return c.Value
		} else if !errors.Is(err, session.ErrNotFound) {
			s.logger.Error("session lookup failed", "error", err)
		}
	}

	id := s.service.Start(r.Context())
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
