package services

import (
	"context"
	"errors"
	"testing"
	"time"

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

func newCheckoutService(db *gorm.DB) CheckoutServiceInterface {
	return NewCheckoutService(
		repositories.NewCartRepository(db),
		repositories.NewOrderRepository(db),
		repositories.NewSubscriptionRepository(db),
		repositories.NewCheckoutAttemptRepository(db),
	)
}

func TestCheckout_Unauthenticated_NoWrites(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	svc := newCheckoutService(db)

	_, err := svc.Checkout(context.Background(), uuid.Nil, "", "")

	assert.ErrorIs(t, err, utils.ErrUnauthenticated)
	// No expectations were registered, so any query or write fails here.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckout_EmptyCart_NoWrites(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE user_id`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity", "subscription_type"}))

	svc := newCheckoutService(db)

	_, err := svc.Checkout(context.Background(), userID, "", "")

	assert.ErrorIs(t, err, utils.ErrEmptyCart)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// expectCartFetch registers the cart select plus its product preload for
// a single monthly item of the given product price and quantity 1.
func expectCartFetch(mock sqlmock.Sqlmock, userID, itemID, productID uuid.UUID, price float64) {
	mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE user_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "quantity", "subscription_type"}).
			AddRow(itemID, userID, productID, 1, "monthly"))
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"\."id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "is_active"}).
			AddRow(productID, "Tool A", price, true))
}

func expectExecInTx(mock sqlmock.Sqlmock, pattern string) {
	mock.ExpectBegin()
	mock.ExpectExec(pattern).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
}

// The checkout_attempts insert runs as a query: metadata has a column
// default, so gorm appends RETURNING "metadata" and goes through
// QueryContext instead of ExecContext.
func expectAttemptInsertInTx(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "checkout_attempts"`).
		WillReturnRows(sqlmock.NewRows([]string{"metadata"}).AddRow([]byte(`{}`)))
	mock.ExpectCommit()
}

func TestCheckout_Success_FullWriteSequence(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := uuid.New()
	itemID := uuid.New()
	productID := uuid.New()

	expectCartFetch(mock, userID, itemID, productID, 20)

	mock.ExpectQuery(`SELECT \* FROM "checkout_attempts"`).
		WillReturnError(gorm.ErrRecordNotFound)

	expectAttemptInsertInTx(mock)
	expectExecInTx(mock, `INSERT INTO "orders"`)
	expectExecInTx(mock, `INSERT INTO "order_items"`)
	expectExecInTx(mock, `INSERT INTO "subscriptions"`)
	expectExecInTx(mock, `UPDATE "orders" SET`)
	// Cart rows are soft-deleted, so the clear is an UPDATE.
	expectExecInTx(mock, `UPDATE "cart_items" SET`)
	expectExecInTx(mock, `UPDATE "checkout_attempts" SET`)

	svc := newCheckoutService(db)

	resp, err := svc.Checkout(context.Background(), userID, "key-1", "card")

	require.NoError(t, err)
	assert.Equal(t, 20.0, resp.TotalAmount)
	assert.Equal(t, 1, resp.ItemCount)
	assert.Equal(t, "key-1", resp.IdempotencyKey)
	assert.False(t, resp.AlreadyCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckout_SubscriptionInsertFails_OrderStaysPending(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := uuid.New()
	itemID := uuid.New()
	productID := uuid.New()

	expectCartFetch(mock, userID, itemID, productID, 20)

	mock.ExpectQuery(`SELECT \* FROM "checkout_attempts"`).
		WillReturnError(gorm.ErrRecordNotFound)

	expectAttemptInsertInTx(mock)
	expectExecInTx(mock, `INSERT INTO "orders"`)
	expectExecInTx(mock, `INSERT INTO "order_items"`)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "subscriptions"`).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	// The attempt records the failed step. No order finalize and no cart
	// clear run after the failure: unmatched expectations would fail the
	// assertion below.
	expectExecInTx(mock, `UPDATE "checkout_attempts" SET`)

	svc := newCheckoutService(db)

	_, err := svc.Checkout(context.Background(), userID, "key-2", "")

	assert.ErrorIs(t, err, utils.ErrCheckoutFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckout_OrderInsertFails_NothingElseRuns(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := uuid.New()
	itemID := uuid.New()
	productID := uuid.New()

	expectCartFetch(mock, userID, itemID, productID, 20)

	mock.ExpectQuery(`SELECT \* FROM "checkout_attempts"`).
		WillReturnError(gorm.ErrRecordNotFound)

	expectAttemptInsertInTx(mock)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "orders"`).
		WillReturnError(errors.New("insert rejected"))
	mock.ExpectRollback()

	expectExecInTx(mock, `UPDATE "checkout_attempts" SET`)

	svc := newCheckoutService(db)

	_, err := svc.Checkout(context.Background(), userID, "key-3", "")

	assert.ErrorIs(t, err, utils.ErrCheckoutFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckout_CompletedKeyReplay_NoNewWrites(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := uuid.New()
	itemID := uuid.New()
	productID := uuid.New()
	orderID := uuid.New()

	expectCartFetch(mock, userID, itemID, productID, 20)

	mock.ExpectQuery(`SELECT \* FROM "checkout_attempts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "idempotency_key", "order_id", "status", "item_count", "total_amount"}).
			AddRow(uuid.New(), userID, "key-4", orderID, "completed", 1, 20.0))

	svc := newCheckoutService(db)

	resp, err := svc.Checkout(context.Background(), userID, "key-4", "")

	require.NoError(t, err)
	assert.True(t, resp.AlreadyCompleted)
	assert.Equal(t, orderID, resp.OrderID)
	assert.Equal(t, 20.0, resp.TotalAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckout_ProcessingKeyIsRejected(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := uuid.New()
	itemID := uuid.New()
	productID := uuid.New()

	expectCartFetch(mock, userID, itemID, productID, 20)

	mock.ExpectQuery(`SELECT \* FROM "checkout_attempts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "idempotency_key", "status", "item_count", "total_amount"}).
			AddRow(uuid.New(), userID, "key-5", "processing", 1, 20.0))

	svc := newCheckoutService(db)

	_, err := svc.Checkout(context.Background(), userID, "key-5", "")

	assert.ErrorIs(t, err, utils.ErrCheckoutInProgress)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildSubscription_ExpiryWindows(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.New()
	now := time.Now()

	monthly := buildSubscription(userID, orderID, db_models.CartItem{
		ProductID:        uuid.New(),
		SubscriptionType: db_models.SubTypeMonthly,
	}, now)
	require.NotNil(t, monthly.ExpiresAt)
	assert.Equal(t, now.Add(30*24*time.Hour).Unix(), *monthly.ExpiresAt)
	assert.True(t, monthly.AutoRenew)
	assert.Equal(t, db_models.SubStatusActive, monthly.Status)

	yearly := buildSubscription(userID, orderID, db_models.CartItem{
		ProductID:        uuid.New(),
		SubscriptionType: db_models.SubTypeYearly,
	}, now)
	require.NotNil(t, yearly.ExpiresAt)
	assert.Equal(t, now.Add(365*24*time.Hour).Unix(), *yearly.ExpiresAt)
	assert.True(t, yearly.AutoRenew)

	lifetime := buildSubscription(userID, orderID, db_models.CartItem{
		ProductID:        uuid.New(),
		SubscriptionType: db_models.SubTypeLifetime,
	}, now)
	assert.Nil(t, lifetime.ExpiresAt)
	assert.False(t, lifetime.AutoRenew)

	assert.Equal(t, now.Unix(), monthly.StartsAt)
	assert.Equal(t, orderID, monthly.OrderID)
	assert.Equal(t, userID, monthly.UserID)
}
