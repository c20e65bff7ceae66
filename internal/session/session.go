// Package session — явная cookie-сессия дашборда: подписанный JWT с
// email оператора плюс одноразовый welcome-флаг. Доступ только через
// типизированные аксессоры, без чтения "сырых" cookie по месту.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	cookieName  = "ibdesk_session"
	welcomeName = "ibdesk_welcome"

	// TokenTTL ограничивает срок жизни сессии.
	TokenTTL = 24 * time.Hour
)

// Session — данные вошедшего оператора.
type Session struct {
	Email string
}

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

var errNoSession = errors.New("no session")

// Set подписывает сессию и ставит cookie.
func Set(w http.ResponseWriter, email, secret string, secure bool) error {
	c := claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(TokenTTL / time.Second),
	})
	return nil
}

// Clear снимает сессию и welcome-флаг.
func Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: cookieName, Value: "", Path: "/", MaxAge: -1})
	http.SetCookie(w, &http.Cookie{Name: welcomeName, Value: "", Path: "/", MaxAge: -1})
}

// FromRequest разбирает и проверяет session cookie.
func FromRequest(r *http.Request, secret string) (*Session, error) {
	ck, err := r.Cookie(cookieName)
	if err != nil || ck.Value == "" {
		return nil, errNoSession
	}
	var c claims
	token, err := jwt.ParseWithClaims(ck.Value, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid || c.Email == "" {
		return nil, errNoSession
	}
	return &Session{Email: c.Email}, nil
}

// SetWelcome ставит одноразовый флаг "показать приветствие".
func SetWelcome(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     welcomeName,
		Value:    "1",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// TakeWelcome читает welcome-флаг и тут же гасит его — ровно один показ.
func TakeWelcome(w http.ResponseWriter, r *http.Request) bool {
	ck, err := r.Cookie(welcomeName)
	if err != nil || ck.Value == "" {
		return false
	}
	http.SetCookie(w, &http.Cookie{Name: welcomeName, Value: "", Path: "/", MaxAge: -1})
	return true
}
