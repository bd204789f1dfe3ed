package services

import (
	"context"
	"testing"

	"aistore/internal/models/request_models"
	"aistore/internal/repositories"
	"aistore/pkg/utils"
	"aistore/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAccountService(db *gorm.DB) AccountServiceInterface {
	return NewAccountService(repositories.NewAccountRepository(db))
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE email =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow(uuid.New(), "taken@example.com"))

	svc := newAccountService(db)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Email:    "taken@example.com",
		Password: "password123",
		FullName: "Test User",
	})

	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccount_Success(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE email =`).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "profiles"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	svc := newAccountService(db)

	err := svc.CreateAccount(context.Background(), request_models.SignUpRequest{
		Email:    "new@example.com",
		Password: "password123",
		FullName: "New User",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_WrongPassword(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE email =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "role"}).
			AddRow(uuid.New(), "user@example.com", hash, "user"))

	svc := newAccountService(db)

	_, err = svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_Success(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE email =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "role"}).
			AddRow(uuid.New(), "user@example.com", hash, "user"))

	svc := newAccountService(db)

	resp, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "user@example.com",
		Password: "correct-password",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "user@example.com", resp.Profile.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}
