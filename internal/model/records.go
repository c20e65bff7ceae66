package model

// Записи удалённого back-office API. Имена полей в JSON — PascalCase,
// как их отдаёт сервер. Id назначается сервером; бизнес-ключ записи —
// отдельное поле (ClientId, IbId, либо собственный Id депозита).

// Customer — клиент брокера, привязанный к вводящему брокеру (IB).
type Customer struct {
	Id         int64  `json:"Id"`
	ClientId   int64  `json:"ClientId"`
	ClientName string `json:"ClientName"`
	Email      string `json:"Email"`
	IbId       int64  `json:"IbId"`
	IbClientId int64  `json:"IbClientId"`
	IbName     string `json:"IbName"`
}

// Key возвращает бизнес-ключ клиента.
func (c Customer) Key() int64 { return c.ClientId }

// IBMaster — запись вводящего брокера.
type IBMaster struct {
	Id       int64   `json:"Id"`
	IbId     int64   `json:"IbId"`
	IbName   string  `json:"IbName"`
	Username *string `json:"Username"`
	Password *string `json:"Password"`
}

// Key возвращает бизнес-ключ IB.
func (m IBMaster) Key() int64 { return m.IbId }

// Deposit — депозитная транзакция клиента.
type Deposit struct {
	Id             int64   `json:"Id"`
	ClientId       int64   `json:"ClientId"`
	IbId           int64   `json:"IbId"`
	IbName         *string `json:"IbName"`
	PaymentTypeId  int64   `json:"PaymentTypeId"`
	CurrencyTypeId int64   `json:"CurrencyTypeId"`
	PaymentMethod  *string `json:"PaymentMethod"`
	CurrencyType   *string `json:"CurrencyType"`
	Amount         float64 `json:"Amount"`
	Narration      *string `json:"Narration"`
	Date           *string `json:"Date"`
}

// Key: у депозита бизнес-ключом служит его собственный Id.
func (d Deposit) Key() int64 { return d.Id }

// PaymentMethod — справочник способов оплаты для выпадающих списков.
type PaymentMethod struct {
	Id            int64  `json:"Id"`
	PaymentMethod string `json:"PaymentMethod"`
}

func (p PaymentMethod) Key() int64 { return p.Id }

// CurrencyType — справочник валют.
type CurrencyType struct {
	Id           int64  `json:"Id"`
	CurrencyType string `json:"CurrencyType"`
}

func (c CurrencyType) Key() int64 { return c.Id }
