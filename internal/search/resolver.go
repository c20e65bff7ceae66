// Package search selects which single lookup to run for a set of optional
// filter fields. The remote API does not support compound filtering, so
// exactly one mode wins, by fixed descending priority: an exact-ID lookup
// is more informative than a range.
package search

import (
	"errors"
	"strings"
)

// Filters — значения полей фильтра; пустая строка означает "не задано".
type Filters map[string]string

// Mode — именованный режим поиска. Режим срабатывает, когда заполнено
// хотя бы одно из его полей; тогда обязательны все. Режим без полей —
// безусловный fallback ("показать всё").
type Mode struct {
	Name   string
	Fields []string
}

// ValidationError names the filter fields a triggered mode is missing.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing " + strings.Join(e.Missing, ", ")
}

// ErrNoCriteria — ни один режим не сработал и fallback-режима нет.
// Это локальная ошибка валидации, сетевой вызов не выполняется.
var ErrNoCriteria = errors.New("no search criteria")

// Resolve выбирает ровно один режим из списка, в порядке приоритета.
// Частично заполненный режим — ошибка с именами недостающих полей,
// а не тихий провал к следующему режиму.
func Resolve(f Filters, modes []Mode) (Mode, error) {
	for _, m := range modes {
		if len(m.Fields) == 0 {
			return m, nil
		}
		triggered := false
		var missing []string
		for _, field := range m.Fields {
			if strings.TrimSpace(f[field]) != "" {
				triggered = true
			} else {
				missing = append(missing, field)
			}
		}
		if !triggered {
			continue
		}
		if len(missing) > 0 {
			return Mode{}, &ValidationError{Missing: missing}
		}
		return m, nil
	}
	return Mode{}, ErrNoCriteria
}

// Имена полей фильтров, общие для веб-страниц и CLI.
const (
	FieldClientID   = "clientId"
	FieldIBID       = "ibId"
	FieldDepositID  = "depositId"
	FieldCustomerID = "customerId"
	FieldFromDate   = "fromDate"
	FieldToDate     = "toDate"
)

// Режимы страниц. Порядок в срезе и есть приоритет.
var (
	// Customers: точный ClientId, затем выборка по IB, иначе весь список.
	CustomerModes = []Mode{
		{Name: "by-client-id", Fields: []string{FieldClientID}},
		{Name: "by-ib-id", Fields: []string{FieldIBID}},
		{Name: "all"},
	}

	// IB master: точный IbId, иначе весь список.
	IBModes = []Mode{
		{Name: "by-ib-id", Fields: []string{FieldIBID}},
		{Name: "all"},
	}

	// Deposits: depositId > customerId > диапазон дат. Fallback-режима
	// нет: без критериев выборка не выполняется.
	DepositModes = []Mode{
		{Name: "by-deposit-id", Fields: []string{FieldDepositID}},
		{Name: "by-customer-id", Fields: []string{FieldCustomerID}},
		{Name: "by-date-range", Fields: []string{FieldFromDate, FieldToDate}},
	}
)
