package handlers

import (
	"errors"
	"net/http"

	"ibdesk/internal/middleware"
	"ibdesk/internal/service"
	"ibdesk/internal/session"
)

type loginView struct {
	Error string
	Email string
}

// LoginPage отдаёт форму входа; уже вошедших уводит на дашборд.
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	h.render(w, loginTmpl, loginView{})
}

// Login проверяет учётные данные по справочнику операторов и ставит
// подписанную session cookie плюс одноразовый welcome-флаг.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	if email == "" || password == "" {
		h.render(w, loginTmpl, loginView{Error: "Fill all the fields", Email: email})
		return
	}

	u, err := h.users.Authenticate(r.Context(), email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.render(w, loginTmpl, loginView{Error: "Invalid Credentials", Email: email})
			return
		}
		h.logger.Errorw("authenticate failed", "error", err)
		h.render(w, loginTmpl, loginView{Error: "Login is temporarily unavailable", Email: email})
		return
	}

	if err := session.Set(w, u.Email, h.config.AuthSecret, h.config.EnableHTTPS); err != nil {
		h.logger.Errorw("session set failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	session.SetWelcome(w)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout снимает сессию.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	session.Clear(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
