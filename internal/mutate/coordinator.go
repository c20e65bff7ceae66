// Package mutate sequences create/update/delete calls with the list
// refresh, so the displayed list always reflects the outcome of the last
// successful mutation.
package mutate

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"ibdesk/internal/table"
)

// FieldError — локальная ошибка валидации формы. Ни одного сетевого
// вызова при ней не происходит.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string { return e.Field + " is required" }

// RequireFields returns a FieldError naming the first missing field.
// Field names are human-readable labels ("Customer Name"), не ключи формы.
func RequireFields(values map[string]string, fields ...string) error {
	for _, f := range fields {
		if strings.TrimSpace(values[f]) == "" {
			return &FieldError{Field: f}
		}
	}
	return nil
}

// Coordinator выполняет mutation по машине состояний
// Idle → Validating → Submitting → Settling → Idle. Повторов нет: любой
// сбой терминален до следующего submit пользователем.
type Coordinator struct {
	settle time.Duration
	log    *zap.SugaredLogger
}

// New создаёт координатор. settle — пауза между успешным вызовом и
// refresh: мост через eventual-consistency лаг удалённого стора.
func New(settle time.Duration, logger *zap.SugaredLogger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Coordinator{settle: settle, log: logger}
}

// Submit runs one create/update operation:
//
//	validate — локально, до любого запроса; ошибка коротко замыкает;
//	call     — сетевой вызов; ошибка возвращается как есть, refresh не
//	           выполняется;
//	refresh  — после успешного call и паузы settle.
func (c *Coordinator) Submit(ctx context.Context, validate func() error, call, refresh func(context.Context) error) error {
	if validate != nil {
		if err := validate(); err != nil {
			return err
		}
	}

	if err := call(ctx); err != nil {
		return err
	}

	if c.settle > 0 {
		select {
		case <-time.After(c.settle):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if refresh != nil {
		if err := refresh(ctx); err != nil {
			// mutation прошла; неудачный refresh не отменяет её
			c.log.Warnw("post-mutation refresh failed", "error", err)
			return err
		}
	}
	return nil
}

// Delete calls the delete endpoint and, on success, optimistically drops
// the matching record from the table by business key — без ожидания
// refresh. On failure the list is left untouched.
func Delete[T any](ctx context.Context, tbl *table.Table[T], call func(context.Context) error, match func(T) bool) error {
	if err := call(ctx); err != nil {
		return err
	}
	tbl.RemoveWhere(match)
	return nil
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var fe *FieldError
	return errors.As(err, &fe)
}
