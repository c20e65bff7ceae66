package middleware

import (
	"context"
	"net/http"

	"ibdesk/internal/session"
)

type ctxKey string

const sessionKey ctxKey = "session"

// WithSession разбирает session cookie и кладёт сессию в контекст.
// Анонимный или невалидный запрос проходит дальше без сессии —
// решение о редиректе принимает RequireSession.
func WithSession(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if s, err := session.FromRequest(r, secret); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), sessionKey, s))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetSessionFromContext достаёт сессию оператора из контекста запроса.
func GetSessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*session.Session)
	return s, ok
}

// RequireSession редиректит анонимные запросы на страницу логина.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetSessionFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
