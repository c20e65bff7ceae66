package handlers

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"ibdesk/internal/middleware"
	"ibdesk/internal/model"
	"ibdesk/internal/mutate"
	"ibdesk/internal/search"
	"ibdesk/internal/table"
)

type depositsView struct {
	Email string
	Flash flash

	FilterDepositID  string
	FilterCustomerID string
	FilterFromDate   string
	FilterToDate     string
	Searched         bool

	Rows []model.Deposit
	Pager
	ExportURL string

	Edit *model.Deposit

	// справочники для формы
	PaymentMethods []model.PaymentMethod
	CurrencyTypes  []model.CurrencyType
}

func depositFilters(q url.Values) search.Filters {
	return search.Filters{
		search.FieldDepositID:  q.Get("depositId"),
		search.FieldCustomerID: q.Get("customerId"),
		search.FieldFromDate:   q.Get("fromDate"),
		search.FieldToDate:     q.Get("toDate"),
	}
}

func depositFilterValues(q url.Values) url.Values {
	return url.Values{
		"depositId":  {q.Get("depositId")},
		"customerId": {q.Get("customerId")},
		"fromDate":   {q.Get("fromDate")},
		"toDate":     {q.Get("toDate")},
		"search":     {q.Get("search")},
	}
}

// DepositsPage — отчёт по депозитам. Без критериев выборка не
// выполняется: страница открывается пустой до первого поиска.
func (h *Handler) DepositsPage(w http.ResponseWriter, r *http.Request) {
	s, _ := middleware.GetSessionFromContext(r.Context())
	q := r.URL.Query()

	tbl := table.New[model.Deposit](h.config.PageSize)
	var fl flash
	searched := q.Get("search") == "1"
	if searched {
		token := tbl.Begin()
		recs, err := h.bo.FindDeposits(r.Context(), depositFilters(q))
		fl = classifyErr(err, "No deposits found")
		tbl.Complete(token, recs)
		applyPage(tbl, atoiOr(q.Get("page"), 0))
	}

	if msg := q.Get("err"); msg != "" && fl.Message == "" {
		fl.Message = msg
	}

	view := depositsView{
		Email:            s.Email,
		Flash:            fl,
		FilterDepositID:  q.Get("depositId"),
		FilterCustomerID: q.Get("customerId"),
		FilterFromDate:   q.Get("fromDate"),
		FilterToDate:     q.Get("toDate"),
		Searched:         searched,
		Rows:             tbl.Visible(),
		Pager:            newPager(tbl, "/deposit-reports", depositFilterValues(q)),
		ExportURL:        pageURL("/deposit-reports/export", depositFilterValues(q), 0),
	}

	if editID := q.Get("edit"); editID != "" {
		if full, err := h.bo.DepositByID(r.Context(), editID); err == nil && len(full) > 0 {
			view.Edit = &full[0]
		}
	}

	// справочники формы; их недоступность не валит страницу
	if pms, err := h.bo.PaymentMethods(r.Context()); err == nil {
		view.PaymentMethods = pms
	} else {
		h.logger.Warnw("payment methods fetch failed", "error", err)
	}
	if cts, err := h.bo.CurrencyTypes(r.Context()); err == nil {
		view.CurrencyTypes = cts
	} else {
		h.logger.Warnw("currency types fetch failed", "error", err)
	}

	h.render(w, depositsTmpl, view)
}

// DepositSave — создание/редактирование депозита.
func (h *Handler) DepositSave(w http.ResponseWriter, r *http.Request) {
	s, _ := middleware.GetSessionFromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	form := r.PostForm

	id, _ := strconv.ParseInt(form.Get("id"), 10, 64)

	var dep model.Deposit
	action := "update"
	if id == 0 {
		action = "create"
	}

	err := h.coord.Submit(r.Context(),
		func() error {
			values := map[string]string{
				"Customer ID":  form.Get("clientId"),
				"IB ID":        form.Get("ibId"),
				"Payment Type": form.Get("paymentTypeId"),
				"Currency":     form.Get("currencyTypeId"),
				"Amount":       form.Get("amount"),
				"Date":         form.Get("date"),
			}
			if err := mutate.RequireFields(values,
				"Customer ID", "IB ID", "Payment Type", "Currency", "Amount", "Date"); err != nil {
				return err
			}
			amount, err := strconv.ParseFloat(form.Get("amount"), 64)
			if err != nil || amount <= 0 {
				return &mutate.FieldError{Field: "A positive Amount"}
			}
			clientID, err := strconv.ParseInt(form.Get("clientId"), 10, 64)
			if err != nil {
				return &mutate.FieldError{Field: "A numeric Customer ID"}
			}
			ibID, err := strconv.ParseInt(form.Get("ibId"), 10, 64)
			if err != nil {
				return &mutate.FieldError{Field: "A numeric IB ID"}
			}
			paymentTypeID, err := strconv.ParseInt(form.Get("paymentTypeId"), 10, 64)
			if err != nil {
				return &mutate.FieldError{Field: "Payment Type"}
			}
			currencyTypeID, err := strconv.ParseInt(form.Get("currencyTypeId"), 10, 64)
			if err != nil {
				return &mutate.FieldError{Field: "Currency"}
			}
			date := form.Get("date")
			var narration *string
			if v := form.Get("narration"); v != "" {
				narration = &v
			}
			dep = model.Deposit{
				Id:             id,
				ClientId:       clientID,
				IbId:           ibID,
				PaymentTypeId:  paymentTypeID,
				CurrencyTypeId: currencyTypeID,
				Amount:         amount,
				Date:           &date,
				Narration:      narration,
			}
			return nil
		},
		func(ctx context.Context) error { return h.bo.SaveDeposit(ctx, dep) },
		func(ctx context.Context) error {
			h.audit.Record(ctx, s.Email, action, "deposit", dep.Id)
			return nil
		},
	)
	if err != nil {
		fl := classifyErr(err, "Deposit not found")
		http.Redirect(w, r, "/deposit-reports?err="+url.QueryEscape(fl.Message), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/deposit-reports", http.StatusSeeOther)
}

// DepositsExportCSV выгружает текущую выборку отчёта.
// PDF-рендеринг остался за внешним инструментом; выгрузка — CSV.
func (h *Handler) DepositsExportCSV(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	recs, err := h.bo.FindDeposits(r.Context(), depositFilters(q))
	if err != nil {
		fl := classifyErr(err, "No deposits found")
		http.Redirect(w, r, "/deposit-reports?err="+url.QueryEscape(fl.Message), http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="deposit-report-%s.csv"`, time.Now().Format("2006-01-02")))

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Deposit ID", "Date", "Customer ID", "Payment Method", "Currency", "Amount", "IB Name"})
	for _, d := range recs {
		_ = cw.Write([]string{
			strconv.FormatInt(d.Id, 10),
			strOr(d.Date, ""),
			strconv.FormatInt(d.ClientId, 10),
			strOr(d.PaymentMethod, "N/A"),
			strOr(d.CurrencyType, "N/A"),
			strconv.FormatFloat(d.Amount, 'f', 2, 64),
			strOr(d.IbName, "N/A"),
		})
	}
	cw.Flush()
}

func strOr(p *string, def string) string {
	if p == nil || *p == "" {
		return def
	}
	return *p
}
