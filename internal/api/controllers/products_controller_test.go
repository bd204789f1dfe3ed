package controllers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"aistore/internal/repositories"
	"aistore/internal/services"
	"aistore/pkg/utils"
	"aistore/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func newProductsRouter(db *gorm.DB) *testProductsEnv {
	catalogService := services.NewCatalogService(
		repositories.NewProductRepository(db),
		repositories.NewCategoryRepository(db),
	)
	controller := NewProductsController(catalogService)

	r := testutils.SetupTestRouter()
	r.GET("/products", controller.ListProducts)
	r.GET("/products/:id", controller.GetProduct)

	return &testProductsEnv{router: r}
}

type testProductsEnv struct {
	router http.Handler
}

func TestListProducts_Success(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE is_active =`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "is_active"}).
			AddRow(uuid.New(), "Code Assistant", 29.99, true).
			AddRow(uuid.New(), "Image Generator", 49.99, true))

	env := newProductsRouter(db)

	req, _ := http.NewRequest(http.MethodGet, "/products", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var body utils.APIResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)

	products, ok := body.Data.([]interface{})
	assert.True(t, ok)
	assert.Len(t, products, 2)
}

func TestListProducts_InvalidCategoryID(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	env := newProductsRouter(db)

	req, _ := http.NewRequest(http.MethodGet, "/products?category=not-a-uuid", nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProduct_NotFound(t *testing.T) {
	db, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id =`).
		WillReturnError(gorm.ErrRecordNotFound)

	env := newProductsRouter(db)

	req, _ := http.NewRequest(http.MethodGet, "/products/"+uuid.New().String(), nil)
	resp := httptest.NewRecorder()
	env.router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
