package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"ibdesk/internal/model"
)

func TestAuditRepository_AppendAndRecent(t *testing.T) {
	db := newTestDB(t)
	r := NewAuditRepository(db)
	ctx := context.Background()

	entries := []model.AuditEntry{
		{Operator: "ops@example.com", Action: "create", Entity: "customer", EntityKey: 101},
		{Operator: "ops@example.com", Action: "update", Entity: "customer", EntityKey: 101},
		{Operator: "ops@example.com", Action: "delete", Entity: "ib", EntityKey: 7},
	}
	for i := range entries {
		assert.NoError(t, r.Append(ctx, &entries[i]))
	}

	got, err := r.Recent(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	// новые первыми
	assert.Equal(t, "delete", got[0].Action)
	assert.Equal(t, int64(7), got[0].EntityKey)
}
