package commands

import (
	"context"
	"fmt"
	"strconv"

	"ibdesk/internal/config"
)

type customerDelCmd struct{}

func (customerDelCmd) Name() string { return "customer-del" }
func (customerDelCmd) Description() string {
	return "Удалить клиента по бизнес-ключу clientId"
}
func (customerDelCmd) Usage() string { return "customer-del <clientId>" }

func (customerDelCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	clientID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	bo := newClient(cfg)
	if err := bo.DeleteCustomer(ctx, clientID); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted: clientId=%d\n", clientID)
	return nil
}

func init() { RegisterCmd(customerDelCmd{}) }
