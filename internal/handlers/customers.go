package handlers

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	"ibdesk/internal/middleware"
	"ibdesk/internal/model"
	"ibdesk/internal/mutate"
	"ibdesk/internal/search"
	"ibdesk/internal/table"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type customersView struct {
	Email string
	Flash flash

	FilterClientID string
	FilterIBID     string

	Rows []model.Customer
	Pager

	Edit *model.Customer // префилл формы редактирования
}

func (h *Handler) customerFilters(q url.Values) search.Filters {
	return search.Filters{
		search.FieldClientID: q.Get("clientId"),
		search.FieldIBID:     q.Get("ibId"),
	}
}

// CustomersPage: фильтр → резолвер → выборка → нормализация → таблица.
func (h *Handler) CustomersPage(w http.ResponseWriter, r *http.Request) {
	s, _ := middleware.GetSessionFromContext(r.Context())
	q := r.URL.Query()
	filters := h.customerFilters(q)

	tbl := table.New[model.Customer](h.config.PageSize)
	token := tbl.Begin()
	recs, err := h.bo.FindCustomers(r.Context(), filters)
	fl := classifyErr(err, "No customer records found")
	tbl.Complete(token, recs)
	applyPage(tbl, atoiOr(q.Get("page"), 0))

	if msg := q.Get("err"); msg != "" && fl.Message == "" {
		fl.Message = msg
	}

	view := customersView{
		Email:          s.Email,
		Flash:          fl,
		FilterClientID: q.Get("clientId"),
		FilterIBID:     q.Get("ibId"),
		Rows:           tbl.Visible(),
		Pager: newPager(tbl, "/customers", url.Values{
			"clientId": {q.Get("clientId")},
			"ibId":     {q.Get("ibId")},
		}),
	}

	// префилл формы редактирования полной записью, как в исходном UI
	if editID := q.Get("edit"); editID != "" {
		if full, err := h.bo.CustomerByClientID(r.Context(), editID); err == nil && len(full) > 0 {
			view.Edit = &full[0]
		}
	}

	h.render(w, customersTmpl, view)
}

func validateCustomerForm(form url.Values, creating bool) error {
	values := map[string]string{
		"Customer Name": form.Get("customerName"),
		"Email":         form.Get("email"),
		"IB ID":         form.Get("ibId"),
		"Client ID":     form.Get("clientId"),
	}
	required := []string{"Customer Name", "Email", "IB ID"}
	if creating {
		required = append(required, "Client ID")
	}
	if err := mutate.RequireFields(values, required...); err != nil {
		return err
	}
	if !emailRe.MatchString(form.Get("email")) {
		return &mutate.FieldError{Field: "A valid Email"}
	}
	return nil
}

// CustomerSave — создание/редактирование клиента.
func (h *Handler) CustomerSave(w http.ResponseWriter, r *http.Request) {
	s, _ := middleware.GetSessionFromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	form := r.PostForm

	id, _ := strconv.ParseInt(form.Get("id"), 10, 64)
	creating := id == 0

	var cust model.Customer
	action := "update"
	if creating {
		action = "create"
	}

	err := h.coord.Submit(r.Context(),
		func() error {
			if err := validateCustomerForm(form, creating); err != nil {
				return err
			}
			clientID, err := strconv.ParseInt(form.Get("clientId"), 10, 64)
			if err != nil {
				return &mutate.FieldError{Field: "A numeric Client ID"}
			}
			ibID, err := strconv.ParseInt(form.Get("ibId"), 10, 64)
			if err != nil {
				return &mutate.FieldError{Field: "A numeric IB ID"}
			}
			cust = model.Customer{
				Id:         id,
				ClientId:   clientID,
				ClientName: form.Get("customerName"),
				Email:      form.Get("email"),
				IbId:       ibID,
			}
			return nil
		},
		func(ctx context.Context) error { return h.bo.SaveCustomer(ctx, cust) },
		func(ctx context.Context) error {
			h.audit.Record(ctx, s.Email, action, "customer", cust.ClientId)
			return nil
		},
	)
	if err != nil {
		fl := classifyErr(err, "Customer not found")
		http.Redirect(w, r, "/customers?err="+url.QueryEscape(fl.Message), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/customers", http.StatusSeeOther)
}

// CustomerDelete удаляет клиента и оптимистично убирает строку из
// текущей выборки по бизнес-ключу, не дожидаясь повторной выборки.
func (h *Handler) CustomerDelete(w http.ResponseWriter, r *http.Request) {
	s, _ := middleware.GetSessionFromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	clientID, err := strconv.ParseInt(r.PostFormValue("clientId"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/customers?err="+url.QueryEscape("A numeric Client ID is required"), http.StatusSeeOther)
		return
	}

	// текущие фильтры страницы приходят скрытыми полями формы
	filters := search.Filters{
		search.FieldClientID: r.PostForm.Get("filterClientId"),
		search.FieldIBID:     r.PostForm.Get("filterIbId"),
	}
	tbl := table.New[model.Customer](h.config.PageSize)
	token := tbl.Begin()
	recs, fetchErr := h.bo.FindCustomers(r.Context(), filters)
	fl := classifyErr(fetchErr, "No customer records found")
	tbl.Complete(token, recs)

	if err := mutate.Delete(r.Context(), tbl,
		func(ctx context.Context) error { return h.bo.DeleteCustomer(ctx, clientID) },
		func(c model.Customer) bool { return c.ClientId == clientID },
	); err != nil {
		fl = classifyErr(err, "Customer not found")
	} else {
		h.audit.Record(r.Context(), s.Email, "delete", "customer", clientID)
	}

	view := customersView{
		Email:          s.Email,
		Flash:          fl,
		FilterClientID: r.PostForm.Get("filterClientId"),
		FilterIBID:     r.PostForm.Get("filterIbId"),
		Rows:           tbl.Visible(),
		Pager: newPager(tbl, "/customers", url.Values{
			"clientId": {r.PostForm.Get("filterClientId")},
			"ibId":     {r.PostForm.Get("filterIbId")},
		}),
	}
	h.render(w, customersTmpl, view)
}
