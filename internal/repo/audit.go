package repo

import (
	"context"

	"gorm.io/gorm"

	"ibdesk/internal/model"
)

// AuditRepository хранит журнал действий операторов.
type AuditRepository interface {
	// Append добавляет строку журнала.
	Append(ctx context.Context, entry *model.AuditEntry) error

	// Recent возвращает последние n строк, новые первыми.
	Recent(ctx context.Context, n int) ([]model.AuditEntry, error)
}

type auditRepo struct {
	db *gorm.DB
}

// NewAuditRepository создаёт gorm-реализацию журнала.
func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepo{db: db}
}

func (r *auditRepo) Append(ctx context.Context, entry *model.AuditEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditRepo) Recent(ctx context.Context, n int) ([]model.AuditEntry, error) {
	if n <= 0 {
		n = 20
	}
	var entries []model.AuditEntry
	err := r.db.WithContext(ctx).Order("created_at desc, id desc").Limit(n).Find(&entries).Error
	return entries, err
}
