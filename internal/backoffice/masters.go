package backoffice

import (
	"context"

	"ibdesk/internal/model"
)

// PaymentMethods возвращает справочник способов оплаты.
func (c *Client) PaymentMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	return Normalize[model.PaymentMethod](c.getJSON(ctx, "master/getPaymentMethod", nil))
}

// CurrencyTypes возвращает справочник валют.
func (c *Client) CurrencyTypes(ctx context.Context) ([]model.CurrencyType, error) {
	return Normalize[model.CurrencyType](c.getJSON(ctx, "master/getCurrencyType", nil))
}
