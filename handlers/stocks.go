package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"stocks-ledger/database"
	"stocks-ledger/models"
)

// StockInput only checks that each key is present.
type StockInput struct {
	StockName *string          `json:"stockName" binding:"required"`
	Status    *string          `json:"status" binding:"required"`
	Returns   *decimal.Decimal `json:"returns" binding:"required"`
	Balance   *decimal.Decimal `json:"balance" binding:"required"`
}

func (h *Handler) AddStock(c *gin.Context) {
	var input StockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.fail(c, "add stock", bindError(err))
		return
	}

	trade := models.Trade{
		StockName: *input.StockName,
		Status:    *input.Status,
		Returns:   decimal.NewNullDecimal(*input.Returns),
		Balance:   decimal.NewNullDecimal(*input.Balance),
	}
	if err := h.Store.CreateTrade(c.Request.Context(), &trade); err != nil {
		h.fail(c, "add stock", err)
		return
	}

	h.Logger.Info("stock added", zap.String("stock_name", trade.StockName), zap.Int64("sno", trade.Sno))
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%s added in the list", trade.StockName),
		"sno":     trade.Sno,
	})
}

func (h *Handler) ListStocks(c *gin.Context) {
	trades, err := h.Store.ListTrades(c.Request.Context())
	if err != nil {
		h.fail(c, "list stocks", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": trades})
}

// GetStockReport answers {"message": null} for an unknown sno.
func (h *Handler) GetStockReport(c *gin.Context) {
	sno, err := snoParam(c)
	if err != nil {
		h.fail(c, "stock report", err)
		return
	}

	trade, err := h.Store.GetTrade(c.Request.Context(), sno)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(h.failureStatus(http.StatusNotFound), gin.H{"message": nil})
		return
	}
	if err != nil {
		h.fail(c, "stock report", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": trade})
}

func (h *Handler) SearchStock(c *gin.Context) {
	name := c.Param("stock_name")

	trade, err := h.Store.FindTradeByName(c.Request.Context(), name)
	if errors.Is(err, database.ErrNotFound) {
		h.notFound(c, fmt.Sprintf("%s not found", name))
		return
	}
	if err != nil {
		h.fail(c, "search stock", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": trade})
}

func (h *Handler) ListTransactions(c *gin.Context) {
	txs, err := h.Store.ListTransactions(c.Request.Context())
	if err != nil {
		h.fail(c, "list transactions", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": txs})
}

func (h *Handler) UpdateStock(c *gin.Context) {
	sno, err := snoParam(c)
	if err != nil {
		h.fail(c, "update stock", err)
		return
	}

	var input UpdateStockInput
	if err := c.ShouldBindBodyWith(&input, binding.JSON); err != nil {
		h.fail(c, "update stock", bindError(err))
		return
	}
	details := map[string]any{}
	_ = c.ShouldBindBodyWith(&details, binding.JSON)

	ctx := c.Request.Context()
	if _, err := h.Store.GetTrade(ctx, sno); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			h.notFound(c, "stock not found")
			return
		}
		h.fail(c, "update stock", err)
		return
	}

	fields := input.presentFields()
	if len(fields) == 0 {
		c.JSON(h.failureStatus(http.StatusBadRequest), gin.H{"message": "no fields to update", "Details": details})
		return
	}

	chosen, ignored := fields[0], columns(fields[1:])
	if len(ignored) > 0 {
		h.Logger.Warn("update applies only the first present field",
			zap.Int64("sno", sno),
			zap.String("updated", chosen.Column),
			zap.Strings("ignored", ignored),
		)
	}

	if err := h.Store.UpdateTradeField(ctx, sno, chosen.Column, chosen.Value); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			h.notFound(c, "stock not found")
			return
		}
		h.fail(c, "update stock", err)
		return
	}

	h.Logger.Info("stock updated", zap.Int64("sno", sno), zap.String("column", chosen.Column))
	c.JSON(http.StatusOK, gin.H{
		"message": "stocks details updated",
		"Details": details,
		"updated": chosen.Column,
		"ignored": ignored,
	})
}

func (h *Handler) DeleteStock(c *gin.Context) {
	sno, err := snoParam(c)
	if err != nil {
		h.fail(c, "delete stock", err)
		return
	}

	if err := h.Store.DeleteTrade(c.Request.Context(), sno); err != nil {
		h.fail(c, "delete stock", err)
		return
	}

	h.Logger.Info("stock deleted", zap.Int64("sno", sno))
	c.JSON(http.StatusOK, gin.H{"message": "Deleted Successfully", "sno": sno})
}
