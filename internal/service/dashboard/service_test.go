package dashboard

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffly/ems-backend-go/internal/domain/employee"
	"github.com/staffly/ems-backend-go/internal/pkg/database"
	"github.com/staffly/ems-backend-go/internal/repository/sqlite"
	"github.com/staffly/ems-backend-go/internal/service/workforce"
)

func newTestRepo(t *testing.T) employee.Repository {
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "ems.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlite.NewEmployeeRepository(sqlite.NewSnapshotStore(db))
}

func TestDashboardService_SeededData(t *testing.T) {
	ctx := context.Background()
	workforceSvc := workforce.NewWorkforceService(newTestRepo(t))
	require.NoError(t, workforceSvc.Init(ctx))

	svc := NewDashboardService(workforceSvc)
	resp, err := svc.GetDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.TotalEmployees)
	assert.Equal(t, int64(3), resp.ActiveEmployees)
	assert.Equal(t, int64(5), resp.Departments)
	// (95000 + 70000 + 55000) / 3, rounded.
	assert.Equal(t, int64(73333), resp.AverageSalary)

	assert.Equal(t, int64(1), resp.Levels.Junior)
	assert.Equal(t, int64(1), resp.Levels.Mid)
	assert.Equal(t, int64(1), resp.Levels.Senior)
	assert.Equal(t, int64(0), resp.Levels.Lead)

	require.Len(t, resp.Distribution, 5)
	counts := make(map[string]int64, len(resp.Distribution))
	for _, item := range resp.Distribution {
		counts[item.Name] = item.Count
	}
	assert.Equal(t, int64(2), counts["Engineering"])
	assert.Equal(t, int64(1), counts["Marketing"])
	assert.Equal(t, int64(0), counts["Sales"])
	assert.Equal(t, int64(0), counts["HR"])
	assert.Equal(t, int64(0), counts["Finance"])
}

func TestDashboardService_EmptyCollection(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	// A pre-existing empty snapshot suppresses seeding; averages stay 0
	// rather than dividing by zero.
	require.NoError(t, repo.Save(ctx, []employee.Employee{}))

	workforceSvc := workforce.NewWorkforceService(repo)
	require.NoError(t, workforceSvc.Init(ctx))

	svc := NewDashboardService(workforceSvc)
	resp, err := svc.GetDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(0), resp.TotalEmployees)
	assert.Equal(t, int64(0), resp.ActiveEmployees)
	assert.Equal(t, int64(0), resp.AverageSalary)
	assert.Equal(t, int64(5), resp.Departments)

	require.Len(t, resp.Distribution, 5)
	for _, item := range resp.Distribution {
		assert.Equal(t, int64(0), item.Count)
	}
}

func TestDashboardService_StoreNotReady(t *testing.T) {
	workforceSvc := workforce.NewWorkforceService(newTestRepo(t))

	svc := NewDashboardService(workforceSvc)
	_, err := svc.GetDashboard(context.Background())
	assert.ErrorIs(t, err, employee.ErrStoreNotReady)
}
