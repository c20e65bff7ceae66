package commands

import (
	"context"
	"fmt"

	"ibdesk/internal/config"
	"ibdesk/internal/search"
)

type customersCmd struct{}

func (customersCmd) Name() string { return "customers" }
func (customersCmd) Description() string {
	return "Показать клиентов (все, либо по clientId или ibId)"
}
func (customersCmd) Usage() string { return "customers [clientId=N] [ibId=N]" }

func (customersCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	filters, err := parseFilters(args, search.FieldClientID, search.FieldIBID)
	if err != nil {
		return err
	}
	bo := newClient(cfg)
	list, err := bo.FindCustomers(ctx, filters)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	for _, c := range list {
		fmt.Fprintf(Out, "- clientId=%d  name=%s  email=%s  ibId=%d  ib=%s\n",
			c.ClientId, c.ClientName, c.Email, c.IbId, c.IbName)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(customersCmd{}) }
