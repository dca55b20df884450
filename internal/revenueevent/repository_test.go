package revenueevent

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&RevenueEvent{}))
	return NewRepository(db)
}

func event(leaseID, funderID, month string) *RevenueEvent {
	d, _ := time.Parse("2006-01", month)
	return &RevenueEvent{
		LeaseID:   leaseID,
		FunderID:  funderID,
		Amount:    decimal.RequireFromString("250.00"),
		EventDate: d,
		Month:     month,
	}
}

func TestListByLeaseOrdersByDate(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.CreateInBatch([]*RevenueEvent{
		event("lease-1", "fun-a", "2025-03"),
		event("lease-1", "fun-a", "2025-01"),
		event("lease-2", "fun-a", "2025-02"),
	}))

	rows, err := repo.ListByLease("lease-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-01", rows[0].Month)
	assert.Equal(t, "2025-03", rows[1].Month)
}

func TestDeleteByLease(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.CreateInBatch([]*RevenueEvent{
		event("lease-1", "fun-a", "2025-01"),
		event("lease-1", "fun-b", "2025-01"),
		event("lease-2", "fun-a", "2025-01"),
	}))

	require.NoError(t, repo.DeleteByLease("lease-1"))

	all, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "lease-2", all[0].LeaseID)
}

func TestCreateInBatchEmpty(t *testing.T) {
	repo := newTestRepo(t)
	assert.NoError(t, repo.CreateInBatch(nil))
}
