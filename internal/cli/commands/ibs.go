package commands

import (
	"context"
	"fmt"

	"ibdesk/internal/config"
	"ibdesk/internal/search"
)

type ibsCmd struct{}

func (ibsCmd) Name() string { return "ibs" }
func (ibsCmd) Description() string {
	return "Показать вводящих брокеров (все, либо по ibId)"
}
func (ibsCmd) Usage() string { return "ibs [ibId=N]" }

func (ibsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	filters, err := parseFilters(args, search.FieldIBID)
	if err != nil {
		return err
	}
	bo := newClient(cfg)
	list, err := bo.FindIBMasters(ctx, filters)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	for _, ib := range list {
		user := "-"
		if ib.Username != nil && *ib.Username != "" {
			user = *ib.Username
		}
		fmt.Fprintf(Out, "- ibId=%d  name=%s  username=%s\n", ib.IbId, ib.IbName, user)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(ibsCmd{}) }
