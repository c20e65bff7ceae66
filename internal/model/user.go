package model

import "time"

// User — запись локального справочника операторов дашборда.
// Пароль хранится только в виде bcrypt-хеша.
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"uniqueIndex;not null"`
	Name         string `gorm:"not null"`
	PasswordHash string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// AuditEntry — строка журнала действий оператора (создание/изменение/
// удаление записей через дашборд или CLI).
type AuditEntry struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Operator  string `gorm:"not null;index"` // email оператора
	Action    string `gorm:"not null"`       // create | update | delete
	Entity    string `gorm:"not null"`       // customer | ib | deposit
	EntityKey int64  `gorm:"not null"`       // бизнес-ключ записи

	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}
