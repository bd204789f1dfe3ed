package services

import (
	"context"
	"testing"

	"aistore/internal/repositories"
	"aistore/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStats(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	countRow := func(n int64) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"count"}).AddRow(n)
	}
	sumRow := func(v float64) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"coalesce"}).AddRow(v)
	}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).WillReturnRows(countRow(12))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders"`).WillReturnRows(countRow(40))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "profiles"`).WillReturnRows(countRow(25))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "categories"`).WillReturnRows(countRow(4))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(total_amount\), 0\) FROM "orders"`).WillReturnRows(sumRow(1999.50))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(total_amount\), 0\) FROM "orders"`).WillReturnRows(sumRow(250.00))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders"`).WillReturnRows(countRow(3))

	svc := NewDashboardService(repositories.NewDashboardRepository(db))

	stats, err := svc.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalProducts)
	assert.Equal(t, int64(40), stats.TotalOrders)
	assert.Equal(t, int64(25), stats.TotalUsers)
	assert.Equal(t, int64(4), stats.TotalCategories)
	assert.Equal(t, 1999.50, stats.TotalRevenue)
	assert.Equal(t, 250.00, stats.MonthlyRevenue)
	assert.Equal(t, int64(3), stats.PendingOrders)
	assert.NoError(t, mock.ExpectationsWereMet())
}
