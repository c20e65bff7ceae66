package repo

import (
	"fmt"

	gormpostgres "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"ibdesk/internal/model"
)

// InitDB открывает локальную базу дашборда. Если задан postgres DSN —
// подключаемся к нему; иначе файл SQLite (драйвер modernc, без cgo).
func InitDB(dsn, sqlitePath string) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch {
	case dsn != "":
		dial = gormpostgres.Open(dsn)
	case sqlitePath != "":
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: sqlitePath}
	default:
		return nil, fmt.Errorf("no database configured")
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.AuditEntry{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}
