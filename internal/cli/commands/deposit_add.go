package commands

import (
	"context"
	"fmt"
	"strconv"

	"ibdesk/internal/config"
	"ibdesk/internal/model"
)

type depositAddCmd struct{}

func (depositAddCmd) Name() string { return "deposit-add" }
func (depositAddCmd) Description() string {
	return "Добавить депозит (дата в формате YYYY-MM-DD)"
}
func (depositAddCmd) Usage() string {
	return "deposit-add <customerId> <ibId> <paymentTypeId> <currencyTypeId> <amount> <date> [narration]"
}

func (depositAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 6 || len(args) > 7 {
		return ErrUsage
	}
	clientID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return ErrUsage
	}
	ibID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return ErrUsage
	}
	paymentTypeID, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return ErrUsage
	}
	currencyTypeID, err := strconv.ParseInt(args[3], 10, 64)
	if err != nil {
		return ErrUsage
	}
	amount, err := strconv.ParseFloat(args[4], 64)
	if err != nil || amount <= 0 {
		return ErrUsage
	}
	date := args[5]
	var narration *string
	if len(args) == 7 {
		narration = &args[6]
	}

	bo := newClient(cfg)
	dep := model.Deposit{
		ClientId:       clientID,
		IbId:           ibID,
		PaymentTypeId:  paymentTypeID,
		CurrencyTypeId: currencyTypeID,
		Amount:         amount,
		Date:           &date,
		Narration:      narration,
	}
	if err := bo.SaveDeposit(ctx, dep); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  clientId: %d\n", clientID)
	fmt.Fprintf(Out, "  amount:   %.2f\n", amount)
	fmt.Fprintf(Out, "  date:     %s\n", date)
	return nil
}

func init() { RegisterCmd(depositAddCmd{}) }
