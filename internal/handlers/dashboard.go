package handlers

import (
	"net/http"

	"ibdesk/internal/middleware"
	"ibdesk/internal/model"
	"ibdesk/internal/session"
)

type dashboardView struct {
	Email   string
	Welcome bool // одноразовый welcome-тост
	Recent  []model.AuditEntry
}

// Dashboard — стартовая страница защищённой зоны.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	s, _ := middleware.GetSessionFromContext(r.Context())

	view := dashboardView{
		Email:   s.Email,
		Welcome: session.TakeWelcome(w, r),
	}

	recent, err := h.audit.Recent(r.Context(), 10)
	if err != nil {
		h.logger.Warnw("recent activity fetch failed", "error", err)
	} else {
		view.Recent = recent
	}

	h.render(w, dashboardTmpl, view)
}
