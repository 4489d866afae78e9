package http

import (
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/studycrate/studycrate/internal/core/port"
)

type BalanceHandler struct {
	Handler
	service port.Service
}

func NewBalanceHandler(service port.Service, logger *zap.Logger) (*BalanceHandler, error) {
	return &BalanceHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type balanceResponse struct {
	Current decimal.Decimal `json:"current"`
}

func (bh *BalanceHandler) UserBalance(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	balance, err := bh.service.GetUserBalance(ctx, userID)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	bh.handleSuccess(ctx, balanceResponse{Current: balance})
}

type depositRequest struct {
	Sum float64 `json:"sum"`
}

func (bh *BalanceHandler) Deposit(ctx *gin.Context) {
	req := depositRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		bh.handleValidationError(ctx, err)
		return
	}

	amount, err := decimal.NewFromFloat64(req.Sum)
	if err != nil {
		bh.handleValidationError(ctx, err)
		return
	}

	userID := getAuthPayload(ctx).UserID

	balance, err := bh.service.Deposit(ctx, userID, amount)
	if err != nil {
		bh.handleError(ctx, err)
		return
	}

	bh.handleSuccess(ctx, balanceResponse{Current: balance})
}
