package backoffice

import (
	"context"
	"net/url"
	"strconv"

	"ibdesk/internal/model"
)

// Customers возвращает полный список клиентов.
func (c *Client) Customers(ctx context.Context) ([]model.Customer, error) {
	return Normalize[model.Customer](c.getJSON(ctx, "auth/getCustomer", nil))
}

// CustomerByClientID ищет клиента по бизнес-ключу ClientId.
// Эндпоинт отвечает одиночным объектом; нормализатор сводит его к списку.
func (c *Client) CustomerByClientID(ctx context.Context, clientID string) ([]model.Customer, error) {
	q := url.Values{"customerId": {clientID}}
	return Normalize[model.Customer](c.getJSON(ctx, "auth/getCustomerByCustomerId", q))
}

// CustomersByIBID возвращает клиентов, привязанных к IB.
func (c *Client) CustomersByIBID(ctx context.Context, ibID string) ([]model.Customer, error) {
	q := url.Values{"ibId": {ibID}}
	return Normalize[model.Customer](c.getJSON(ctx, "auth/getCustomerByIBId", q))
}

// customerPayload — тело createOrUpdateClient. Id включается только при
// редактировании: его отсутствие означает создание.
type customerPayload struct {
	Id           int64  `json:"Id,omitempty"`
	ClientId     int64  `json:"ClientId"`
	CustomerName string `json:"CustomerName"`
	Email        string `json:"Email"`
	IbId         int64  `json:"IbId"`
}

// SaveCustomer создаёт или обновляет клиента (upsert на стороне API).
func (c *Client) SaveCustomer(ctx context.Context, cust model.Customer) error {
	p := customerPayload{
		Id:           cust.Id,
		ClientId:     cust.ClientId,
		CustomerName: cust.ClientName,
		Email:        cust.Email,
		IbId:         cust.IbId,
	}
	return c.postJSON(ctx, "auth/createOrUpdateClient", p).Err()
}

// DeleteCustomer удаляет клиента по бизнес-ключу.
// Повторное удаление отсутствующего ключа вернёт ErrNotFound/AppError —
// это штатный исход, не сбой.
func (c *Client) DeleteCustomer(ctx context.Context, clientID int64) error {
	return c.del(ctx, "auth/deleteCustomer/"+strconv.FormatInt(clientID, 10)).Err()
}
