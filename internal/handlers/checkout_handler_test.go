package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gabrielbarbershop/booking-api/internal/infra/payments"
)

type stubGateway struct {
	checkout *payments.Checkout
	err      error
}

func (g stubGateway) CreateCheckout(
	_ context.Context,
	_ string,
	_ []payments.CheckoutItem,
) (*payments.Checkout, error) {
	return g.checkout, g.err
}

func checkoutRouter(t *testing.T, gateway CheckoutGateway) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	h := NewCheckoutHandler(gdb, gateway, zap.NewNop())
	r := gin.New()
	r.POST("/produtos/checkout", h.Checkout)
	return r, mock
}

func postCheckout(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/produtos/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func productRows(stock int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "price", "stock"}).
		AddRow(1, "Pomada", 30.0, stock)
}

func TestCheckout_OK(t *testing.T) {
	r, mock := checkoutRouter(t, stubGateway{
		checkout: &payments.Checkout{PreferenceID: "pref-1", InitPoint: "https://mp.example/pref-1"},
	})

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "products" .* FOR UPDATE`).WillReturnRows(productRows(5))
	mock.ExpectExec(`UPDATE "products"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := postCheckout(r, `{"items":[{"product_id":1,"quantity":2}]}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "pref-1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckout_InsufficientStock(t *testing.T) {
	r, mock := checkoutRouter(t, stubGateway{})

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "products" .* FOR UPDATE`).WillReturnRows(productRows(1))
	mock.ExpectRollback()

	w := postCheckout(r, `{"items":[{"product_id":1,"quantity":2}]}`)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient_stock")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckout_GatewayFailureRestocks(t *testing.T) {
	r, mock := checkoutRouter(t, stubGateway{err: errors.New("gateway down")})

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "products" .* FOR UPDATE`).WillReturnRows(productRows(5))
	mock.ExpectExec(`UPDATE "products"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// The reserved units go back before the error is reported.
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "products" SET "stock"=stock \+ `).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := postCheckout(r, `{"items":[{"product_id":1,"quantity":2}]}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "checkout_failed")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckout_NoGatewayConfigured(t *testing.T) {
	r, _ := checkoutRouter(t, nil)

	w := postCheckout(r, `{"items":[{"product_id":1,"quantity":1}]}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "payments_unavailable")
}
