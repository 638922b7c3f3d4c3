package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gabrielbarbershop/booking-api/internal/httperr"
	"github.com/gabrielbarbershop/booking-api/internal/infra/payments"
	"github.com/gabrielbarbershop/booking-api/internal/models"
)

// CheckoutGateway opens a payment preference for a cart.
type CheckoutGateway interface {
	CreateCheckout(
		ctx context.Context,
		externalReference string,
		items []payments.CheckoutItem,
	) (*payments.Checkout, error)
}

type CheckoutHandler struct {
	db      *gorm.DB
	gateway CheckoutGateway
	log     *zap.Logger
}

func NewCheckoutHandler(db *gorm.DB, gateway CheckoutGateway, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{db: db, gateway: gateway, log: log}
}

type CheckoutItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type CheckoutRequest struct {
	Items []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
}

type reservedItem struct {
	productID uint
	quantity  int
}

// Checkout reserves stock and opens a Mercado Pago preference for the
// cart. Stock rows are locked so two carts cannot drain the same units;
// if the gateway call fails the reservation is rolled back.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	if h.gateway == nil {
		httperr.Internal(c, "payments_unavailable", "Pagamentos não configurados.")
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ctx := c.Request.Context()
	var items []payments.CheckoutItem
	var reserved []reservedItem

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, it := range req.Items {
			var product models.Product
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, it.ProductID).Error; err != nil {

				if errors.Is(err, gorm.ErrRecordNotFound) {
					return httperr.ErrNotFound("product_not_found")
				}
				return err
			}

			if product.Stock < it.Quantity {
				return httperr.ErrConflict("insufficient_stock")
			}

			product.Stock -= it.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			reserved = append(reserved, reservedItem{
				productID: product.ID,
				quantity:  it.Quantity,
			})
			items = append(items, payments.CheckoutItem{
				ID:        uuid.NewString(),
				Title:     product.Name,
				Quantity:  it.Quantity,
				UnitPrice: product.Price,
			})
		}
		return nil
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	checkout, err := h.gateway.CreateCheckout(ctx, uuid.NewString(), items)
	if err != nil {
		h.restock(c, reserved)
		httperr.Internal(c, "checkout_failed", "Erro ao iniciar pagamento.")
		return
	}

	c.JSON(http.StatusCreated, checkout)
}

// restock returns reserved units after a failed gateway call.
func (h *CheckoutHandler) restock(c *gin.Context, reserved []reservedItem) {
	err := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		for _, it := range reserved {
			if err := tx.Model(&models.Product{}).
				Where("id = ?", it.productID).
				UpdateColumn("stock", gorm.Expr("stock + ?", it.quantity)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		h.log.Error("restock after failed checkout", zap.Error(err))
	}
}
