package web

import (
	"context"
	"net/http"

	"github.com/knightsbridge/faqsite/internal/session"
)

// CookieName is the cookie carrying the visitor's session id.
const CookieName = "faqsite_session"

type sessionKey struct{}

// withSession attaches the visitor's session to the request context,
// starting a new one when the cookie is missing or expired.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sess *session.Session
		if c, err := r.Cookie(CookieName); err == nil {
			sess, _ = s.sessions.Get(c.Value)
		}
		if sess == nil {
			sess = s.sessions.Create()
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				Secure:   s.cfg.SecureCookies,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionFrom(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionKey{}).(*session.Session)
	return sess
}
