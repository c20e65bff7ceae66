package backoffice

import (
	"context"
	"fmt"
	"time"

	"ibdesk/internal/model"
	"ibdesk/internal/search"
)

// Find-обёртки: резолвер выбирает режим, клиент выполняет единственный
// соответствующий вызов. Общий путь для веб-страниц и CLI.

// FindCustomers resolves customer filters into one lookup.
func (c *Client) FindCustomers(ctx context.Context, f search.Filters) ([]model.Customer, error) {
	mode, err := search.Resolve(f, search.CustomerModes)
	if err != nil {
		return []model.Customer{}, err
	}
	switch mode.Name {
	case "by-client-id":
		return c.CustomerByClientID(ctx, f[search.FieldClientID])
	case "by-ib-id":
		return c.CustomersByIBID(ctx, f[search.FieldIBID])
	default:
		return c.Customers(ctx)
	}
}

// FindIBMasters resolves IB filters into one lookup.
func (c *Client) FindIBMasters(ctx context.Context, f search.Filters) ([]model.IBMaster, error) {
	mode, err := search.Resolve(f, search.IBModes)
	if err != nil {
		return []model.IBMaster{}, err
	}
	switch mode.Name {
	case "by-ib-id":
		return c.IBMasterByIBID(ctx, f[search.FieldIBID])
	default:
		return c.IBMasters(ctx)
	}
}

// formDateLayout — формат значений date-инпутов и CLI-флагов дат.
const formDateLayout = "2006-01-02"

// FindDeposits resolves deposit filters into one lookup. Date bounds are
// accepted as YYYY-MM-DD and reformatted to the API's MM/DD/YYYY.
func (c *Client) FindDeposits(ctx context.Context, f search.Filters) ([]model.Deposit, error) {
	mode, err := search.Resolve(f, search.DepositModes)
	if err != nil {
		return []model.Deposit{}, err
	}
	switch mode.Name {
	case "by-deposit-id":
		return c.DepositByID(ctx, f[search.FieldDepositID])
	case "by-customer-id":
		return c.DepositsByCustomerID(ctx, f[search.FieldCustomerID])
	default:
		from, err := time.Parse(formDateLayout, f[search.FieldFromDate])
		if err != nil {
			return []model.Deposit{}, fmt.Errorf("invalid fromDate: %w", err)
		}
		to, err := time.Parse(formDateLayout, f[search.FieldToDate])
		if err != nil {
			return []model.Deposit{}, fmt.Errorf("invalid toDate: %w", err)
		}
		return c.DepositsByDateRange(ctx, from, to)
	}
}
