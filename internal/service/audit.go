package service

import (
	"context"

	"go.uber.org/zap"

	"ibdesk/internal/model"
	"ibdesk/internal/repo"
)

// AuditService пишет журнал действий операторов. Ошибка записи журнала
// не должна ронять саму операцию — логируем и продолжаем.
type AuditService struct {
	repo repo.AuditRepository
	log  *zap.SugaredLogger
}

func NewAuditService(r repo.AuditRepository, logger *zap.SugaredLogger) *AuditService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &AuditService{repo: r, log: logger}
}

// Record фиксирует действие оператора над записью.
func (s *AuditService) Record(ctx context.Context, operator, action, entity string, key int64) {
	err := s.repo.Append(ctx, &model.AuditEntry{
		Operator:  operator,
		Action:    action,
		Entity:    entity,
		EntityKey: key,
	})
	if err != nil {
		s.log.Warnw("audit append failed", "action", action, "entity", entity, "error", err)
	}
}

// Recent возвращает последние записи журнала для дашборда.
func (s *AuditService) Recent(ctx context.Context, n int) ([]model.AuditEntry, error) {
	return s.repo.Recent(ctx, n)
}
