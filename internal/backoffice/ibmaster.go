package backoffice

import (
	"context"
	"net/url"
	"strconv"

	"ibdesk/internal/model"
)

// IBMasters возвращает полный список вводящих брокеров.
func (c *Client) IBMasters(ctx context.Context) ([]model.IBMaster, error) {
	return Normalize[model.IBMaster](c.getJSON(ctx, "master/getIbMaster", nil))
}

// IBMasterByIBID ищет IB по бизнес-ключу. Эндпоинт отвечает то массивом,
// то одиночным объектом — оба случая закрывает нормализатор.
func (c *Client) IBMasterByIBID(ctx context.Context, ibID string) ([]model.IBMaster, error) {
	q := url.Values{"id": {ibID}}
	return Normalize[model.IBMaster](c.getJSON(ctx, "master/getIbMasterByIbId", q))
}

type ibPayload struct {
	Id       int64   `json:"Id,omitempty"`
	IbId     int64   `json:"IbId"`
	IbName   string  `json:"IbName"`
	Username *string `json:"Username"`
	Password *string `json:"Password"`
}

// SaveIBMaster создаёт или обновляет запись IB.
func (c *Client) SaveIBMaster(ctx context.Context, ib model.IBMaster) error {
	p := ibPayload{
		Id:       ib.Id,
		IbId:     ib.IbId,
		IbName:   ib.IbName,
		Username: ib.Username,
		Password: ib.Password,
	}
	return c.postJSON(ctx, "master/createOrUpdateIbMaster", p).Err()
}

// DeleteIBMaster удаляет IB по бизнес-ключу.
func (c *Client) DeleteIBMaster(ctx context.Context, ibID int64) error {
	return c.del(ctx, "master/deleteIbMaster/"+strconv.FormatInt(ibID, 10)).Err()
}
