package services

import (
	"context"
	"testing"

	"aistore/internal/models/db_models"
	"aistore/internal/repositories"
	"aistore/pkg/utils"
	"aistore/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCartService(db *gorm.DB) CartServiceInterface {
	return NewCartService(
		repositories.NewCartRepository(db),
		repositories.NewProductRepository(db),
	)
}

func expectActiveProduct(mock sqlmock.Sqlmock, productID uuid.UUID, price float64) {
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "is_active"}).
			AddRow(productID, "Tool A", price, true))
}

func TestAddItem_InvalidSubscriptionType(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	svc := newCartService(db)

	_, err := svc.AddItem(context.Background(), uuid.New(), uuid.New(), "weekly")

	assert.ErrorIs(t, err, utils.ErrInvalidSubscriptionType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddItem_Unauthenticated(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	svc := newCartService(db)

	_, err := svc.AddItem(context.Background(), uuid.Nil, uuid.New(), db_models.SubTypeMonthly)

	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddItem_NewRowInsertsQuantityOne(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := uuid.New()
	productID := uuid.New()

	expectActiveProduct(mock, productID, 20)

	// No existing (user, product, tier) row.
	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE \(?user_id = `).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "cart_items"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Mutation ends with a full refetch.
	itemID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE user_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity", "subscription_type"}).
			AddRow(itemID, userID, productID, 1, "monthly"))
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"\."id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "is_active"}).
			AddRow(productID, "Tool A", 20.0, true))

	svc := newCartService(db)

	cart, err := svc.AddItem(context.Background(), userID, productID, db_models.SubTypeMonthly)

	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 20.0, cart.Total)
	assert.Equal(t, 1, cart.ItemCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddItem_ExistingRowIncrementsQuantity(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := uuid.New()
	productID := uuid.New()
	itemID := uuid.New()

	expectActiveProduct(mock, productID, 20)

	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE \(?user_id = `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity", "subscription_type"}).
			AddRow(itemID, userID, productID, 2, "monthly"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "cart_items" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE user_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity", "subscription_type"}).
			AddRow(itemID, userID, productID, 3, "monthly"))
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"\."id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "is_active"}).
			AddRow(productID, "Tool A", 20.0, true))

	svc := newCartService(db)

	cart, err := svc.AddItem(context.Background(), userID, productID, db_models.SubTypeMonthly)

	require.NoError(t, err)
	assert.Equal(t, 3, cart.ItemCount)
	assert.Equal(t, 60.0, cart.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddItem_InactiveProductRejected(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	productID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "is_active"}).
			AddRow(productID, "Retired Tool", 20.0, false))

	svc := newCartService(db)

	_, err := svc.AddItem(context.Background(), uuid.New(), productID, db_models.SubTypeMonthly)

	assert.ErrorIs(t, err, utils.ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateQuantity_ZeroBehavesAsRemove(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := uuid.New()
	itemID := uuid.New()

	// Soft delete shows up as an UPDATE on deleted_at.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "cart_items" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE user_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity", "subscription_type"}))

	svc := newCartService(db)

	cart, err := svc.UpdateQuantity(context.Background(), userID, itemID, 0)

	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateQuantity_MissingItem(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE \(?id =`).
		WillReturnError(gorm.ErrRecordNotFound)

	svc := newCartService(db)

	_, err := svc.UpdateQuantity(context.Background(), uuid.New(), uuid.New(), 5)

	assert.ErrorIs(t, err, utils.ErrCartItemNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearCart(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "cart_items" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	svc := newCartService(db)

	err := svc.ClearCart(context.Background(), uuid.New())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
