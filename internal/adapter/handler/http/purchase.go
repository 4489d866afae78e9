package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/studycrate/studycrate/internal/core/port"
)

type PurchaseHandler struct {
	Handler
	service port.Service
}

func NewPurchaseHandler(service port.Service, logger *zap.Logger) (*PurchaseHandler, error) {
	return &PurchaseHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type orderResp struct {
	ID        uint64          `json:"id"`
	PackageID uint64          `json:"package_id"`
	Title     string          `json:"title,omitempty"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

func (ph *PurchaseHandler) PurchasePackage(ctx *gin.Context) {
	id, err := packageID(ctx)
	if err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	order, err := ph.service.PurchasePackage(ctx, getAuthPayload(ctx).UserID, id)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, orderResp{
		ID:        order.ID,
		PackageID: order.PackageID,
		Title:     order.Package.Title,
		Price:     order.Package.Price,
		CreatedAt: order.CreatedAt,
	}, http.StatusCreated)
}

func (ph *PurchaseHandler) ListOrders(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	list, err := ph.service.GetOrdersByUser(ctx, userID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	result := make([]orderResp, 0, len(list))
	for _, o := range list {
		r := orderResp{
			ID:        o.ID,
			PackageID: o.PackageID,
			CreatedAt: o.CreatedAt,
		}
		if o.Package != nil {
			r.Title = o.Package.Title
			r.Price = o.Package.Price
		}
		result = append(result, r)
	}

	ph.handleSuccess(ctx, result)
}
