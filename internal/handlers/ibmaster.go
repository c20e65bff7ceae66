package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"ibdesk/internal/middleware"
	"ibdesk/internal/model"
	"ibdesk/internal/mutate"
	"ibdesk/internal/search"
	"ibdesk/internal/table"
)

type ibMasterView struct {
	Email string
	Flash flash

	FilterIBID string

	Rows []model.IBMaster
	Pager

	Edit *model.IBMaster
}

// IBMasterPage — список вводящих брокеров с поиском по IbId.
func (h *Handler) IBMasterPage(w http.ResponseWriter, r *http.Request) {
	s, _ := middleware.GetSessionFromContext(r.Context())
	q := r.URL.Query()
	filters := search.Filters{search.FieldIBID: q.Get("ibId")}

	tbl := table.New[model.IBMaster](h.config.PageSize)
	token := tbl.Begin()
	recs, err := h.bo.FindIBMasters(r.Context(), filters)
	fl := classifyErr(err, "No IB records found")
	tbl.Complete(token, recs)
	applyPage(tbl, atoiOr(q.Get("page"), 0))

	if msg := q.Get("err"); msg != "" && fl.Message == "" {
		fl.Message = msg
	}

	view := ibMasterView{
		Email:      s.Email,
		Flash:      fl,
		FilterIBID: q.Get("ibId"),
		Rows:       tbl.Visible(),
		Pager:      newPager(tbl, "/ib-master", url.Values{"ibId": {q.Get("ibId")}}),
	}

	if editID := q.Get("edit"); editID != "" {
		if full, err := h.bo.IBMasterByIBID(r.Context(), editID); err == nil && len(full) > 0 {
			view.Edit = &full[0]
		}
	}

	h.render(w, ibMasterTmpl, view)
}

// IBMasterSave — создание/редактирование IB.
func (h *Handler) IBMasterSave(w http.ResponseWriter, r *http.Request) {
	s, _ := middleware.GetSessionFromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	form := r.PostForm

	id, _ := strconv.ParseInt(form.Get("id"), 10, 64)
	creating := id == 0

	var ib model.IBMaster
	action := "update"
	if creating {
		action = "create"
	}

	err := h.coord.Submit(r.Context(),
		func() error {
			values := map[string]string{
				"IB Name": form.Get("ibName"),
				"IB ID":   form.Get("ibId"),
			}
			required := []string{"IB Name"}
			if creating {
				required = append(required, "IB ID")
			}
			if err := mutate.RequireFields(values, required...); err != nil {
				return err
			}
			ibID, err := strconv.ParseInt(form.Get("ibId"), 10, 64)
			if err != nil {
				return &mutate.FieldError{Field: "A numeric IB ID"}
			}
			ib = model.IBMaster{Id: id, IbId: ibID, IbName: form.Get("ibName")}
			if v := form.Get("username"); v != "" {
				ib.Username = &v
			}
			if v := form.Get("password"); v != "" {
				ib.Password = &v
			}
			return nil
		},
		func(ctx context.Context) error { return h.bo.SaveIBMaster(ctx, ib) },
		func(ctx context.Context) error {
			h.audit.Record(ctx, s.Email, action, "ib", ib.IbId)
			return nil
		},
	)
	if err != nil {
		fl := classifyErr(err, "IB not found")
		http.Redirect(w, r, "/ib-master?err="+url.QueryEscape(fl.Message), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/ib-master", http.StatusSeeOther)
}

// IBMasterDelete — оптимистичное удаление IB из текущей выборки.
func (h *Handler) IBMasterDelete(w http.ResponseWriter, r *http.Request) {
	s, _ := middleware.GetSessionFromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	ibID, err := strconv.ParseInt(r.PostFormValue("ibId"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/ib-master?err="+url.QueryEscape("A numeric IB ID is required"), http.StatusSeeOther)
		return
	}

	filters := search.Filters{search.FieldIBID: r.PostForm.Get("filterIbId")}
	tbl := table.New[model.IBMaster](h.config.PageSize)
	token := tbl.Begin()
	recs, fetchErr := h.bo.FindIBMasters(r.Context(), filters)
	fl := classifyErr(fetchErr, "No IB records found")
	tbl.Complete(token, recs)

	if err := mutate.Delete(r.Context(), tbl,
		func(ctx context.Context) error { return h.bo.DeleteIBMaster(ctx, ibID) },
		func(ib model.IBMaster) bool { return ib.IbId == ibID },
	); err != nil {
		fl = classifyErr(err, "IB not found")
	} else {
		h.audit.Record(r.Context(), s.Email, "delete", "ib", ibID)
	}

	view := ibMasterView{
		Email:      s.Email,
		Flash:      fl,
		FilterIBID: r.PostForm.Get("filterIbId"),
		Rows:       tbl.Visible(),
		Pager:      newPager(tbl, "/ib-master", url.Values{"ibId": {r.PostForm.Get("filterIbId")}}),
	}
	h.render(w, ibMasterTmpl, view)
}
