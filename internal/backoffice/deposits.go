package backoffice

import (
	"context"
	"net/url"
	"time"

	"ibdesk/internal/model"
)

// reportDateLayout — формат дат, который требует эндпоинт отчёта.
const reportDateLayout = "01/02/2006" // MM/DD/YYYY

// DepositsByDateRange возвращает депозиты за период [from, to].
func (c *Client) DepositsByDateRange(ctx context.Context, from, to time.Time) ([]model.Deposit, error) {
	q := url.Values{
		"fromDate": {from.Format(reportDateLayout)},
		"toDate":   {to.Format(reportDateLayout)},
	}
	return Normalize[model.Deposit](c.getJSON(ctx, "deposit/getDepositTransactionReport", q))
}

// DepositsByCustomerID возвращает депозиты клиента.
func (c *Client) DepositsByCustomerID(ctx context.Context, customerID string) ([]model.Deposit, error) {
	q := url.Values{"customerId": {customerID}}
	return Normalize[model.Deposit](c.getJSON(ctx, "deposit/getDepositByCustomerId", q))
}

// DepositByID ищет одну транзакцию по её Id.
func (c *Client) DepositByID(ctx context.Context, depositID string) ([]model.Deposit, error) {
	q := url.Values{"depositId": {depositID}}
	return Normalize[model.Deposit](c.getJSON(ctx, "deposit/getDepositByDepositId", q))
}

type depositPayload struct {
	Id             int64   `json:"Id,omitempty"`
	ClientId       int64   `json:"ClientId"`
	IbId           int64   `json:"IbId"`
	PaymentTypeId  int64   `json:"PaymentTypeId"`
	CurrencyTypeId int64   `json:"CurrencyTypeId"`
	Amount         float64 `json:"Amount"`
	Date           *string `json:"Date"`
	Narration      *string `json:"Narration"`
}

// SaveDeposit создаёт или обновляет депозит.
func (c *Client) SaveDeposit(ctx context.Context, d model.Deposit) error {
	p := depositPayload{
		Id:             d.Id,
		ClientId:       d.ClientId,
		IbId:           d.IbId,
		PaymentTypeId:  d.PaymentTypeId,
		CurrencyTypeId: d.CurrencyTypeId,
		Amount:         d.Amount,
		Date:           d.Date,
		Narration:      d.Narration,
	}
	return c.postJSON(ctx, "deposit/createOrUpdateDeposit", p).Err()
}
