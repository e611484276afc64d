package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"stocks-ledger/database"
	"stocks-ledger/models"
)

type WatchlistInput struct {
	StockName *string          `json:"stockName" binding:"required"`
	About     *string          `json:"about" binding:"required"`
	Price     *decimal.Decimal `json:"price" binding:"required"`
}

func (h *Handler) AddWatchlistEntry(c *gin.Context) {
	var input WatchlistInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.fail(c, "add watchlist entry", bindError(err))
		return
	}

	entry := models.WatchlistEntry{
		StockName: *input.StockName,
		About:     *input.About,
		Price:     decimal.NewNullDecimal(*input.Price),
	}
	if err := h.Store.CreateWatchlistEntry(c.Request.Context(), &entry); err != nil {
		h.fail(c, "add watchlist entry", err)
		return
	}

	h.Logger.Info("watchlist entry added", zap.String("stock_name", entry.StockName), zap.Int64("id", entry.ID))
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%s added to the watchlist", entry.StockName),
		"id":      entry.ID,
	})
}

func (h *Handler) ListWatchlist(c *gin.Context) {
	entries, err := h.Store.ListWatchlist(c.Request.Context())
	if err != nil {
		h.fail(c, "list watchlist", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": entries})
}

func (h *Handler) SearchWatchlist(c *gin.Context) {
	name := c.Param("stock_name")

	entry, err := h.Store.FindWatchlistEntry(c.Request.Context(), name)
	if errors.Is(err, database.ErrNotFound) {
		h.notFound(c, fmt.Sprintf("%s not found", name))
		return
	}
	if err != nil {
		h.fail(c, "search watchlist", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": entry})
}
