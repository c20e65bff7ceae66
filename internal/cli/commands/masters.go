package commands

import (
	"context"
	"fmt"

	"ibdesk/internal/config"
)

type mastersCmd struct{}

func (mastersCmd) Name() string { return "masters" }
func (mastersCmd) Description() string {
	return "Показать справочники способов оплаты и валют"
}
func (mastersCmd) Usage() string { return "masters" }

func (mastersCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	bo := newClient(cfg)

	pms, err := bo.PaymentMethods(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Payment methods:")
	for _, p := range pms {
		fmt.Fprintf(Out, "  %d  %s\n", p.Id, p.PaymentMethod)
	}

	cts, err := bo.CurrencyTypes(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(Out, "Currency types:")
	for _, c := range cts {
		fmt.Fprintf(Out, "  %d  %s\n", c.Id, c.CurrencyType)
	}
	return nil
}

func init() { RegisterCmd(mastersCmd{}) }
