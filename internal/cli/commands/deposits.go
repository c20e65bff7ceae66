package commands

import (
	"context"
	"fmt"

	"ibdesk/internal/config"
	"ibdesk/internal/search"
)

type depositsCmd struct{}

func (depositsCmd) Name() string { return "deposits" }
func (depositsCmd) Description() string {
	return "Отчёт по депозитам: по depositId, customerId или диапазону дат"
}
func (depositsCmd) Usage() string {
	return "deposits [depositId=N | customerId=N | fromDate=YYYY-MM-DD toDate=YYYY-MM-DD]"
}

func (depositsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	filters, err := parseFilters(args,
		search.FieldDepositID, search.FieldCustomerID, search.FieldFromDate, search.FieldToDate)
	if err != nil {
		return err
	}
	bo := newClient(cfg)
	list, err := bo.FindDeposits(ctx, filters)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	for _, d := range list {
		date, method, currency := "-", "-", "-"
		if d.Date != nil {
			date = *d.Date
		}
		if d.PaymentMethod != nil {
			method = *d.PaymentMethod
		}
		if d.CurrencyType != nil {
			currency = *d.CurrencyType
		}
		fmt.Fprintf(Out, "- id=%d  date=%s  clientId=%d  method=%s  currency=%s  amount=%.2f\n",
			d.Id, date, d.ClientId, method, currency, d.Amount)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(depositsCmd{}) }
