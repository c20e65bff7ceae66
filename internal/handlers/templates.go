package handlers

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	"ibdesk/internal/backoffice"
	"ibdesk/internal/mutate"
	"ibdesk/internal/search"
)

//go:embed templates/*.html
var templatesFS embed.FS

var (
	loginTmpl     = template.Must(template.ParseFS(templatesFS, "templates/login.html"))
	dashboardTmpl = template.Must(template.ParseFS(templatesFS, "templates/dashboard.html"))
	customersTmpl = template.Must(template.ParseFS(templatesFS, "templates/customers.html"))
	ibMasterTmpl  = template.Must(template.ParseFS(templatesFS, "templates/ibmaster.html"))
	depositsTmpl  = template.Must(template.ParseFS(templatesFS, "templates/deposits.html"))
)

func (h *Handler) render(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		h.logger.Errorw("template render failed", "template", tmpl.Name(), "error", err)
	}
}

// flash — сообщение страницы. NotFound отображается как пустой результат
// с пояснением, а не как ошибка.
type flash struct {
	Message  string
	NotFound bool
}

// classifyErr сводит таксономию ошибок (ValidationError / NotFound /
// AppError / TransportError) к пользовательскому сообщению. Список при
// любой из них уже пуст — частично обновлённых таблиц не бывает.
func classifyErr(err error, notFoundMsg string) flash {
	if err == nil {
		return flash{}
	}
	var ve *search.ValidationError
	var fe *mutate.FieldError
	var ae *backoffice.AppError
	var te *backoffice.TransportError
	switch {
	case errors.Is(err, backoffice.ErrNotFound):
		return flash{Message: notFoundMsg, NotFound: true}
	case errors.Is(err, search.ErrNoCriteria):
		return flash{Message: "Please enter search criteria"}
	case errors.As(err, &ve):
		return flash{Message: "Please fill in: " + ve.Error()}
	case errors.As(err, &fe):
		return flash{Message: fe.Error()}
	case errors.As(err, &ae):
		return flash{Message: ae.Message}
	case errors.As(err, &te):
		return flash{Message: "Service unavailable, please try again"}
	default:
		return flash{Message: "Request failed, please try again"}
	}
}
