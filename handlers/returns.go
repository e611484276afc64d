package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"stocks-ledger/database"
)

type returnsInput struct {
	Returns *decimal.Decimal `json:"returns"`
}

func (h *Handler) GetReturns(c *gin.Context) {
	name := c.Param("stock_name")

	view, err := h.Store.Balance(c.Request.Context(), name)
	if errors.Is(err, database.ErrNotFound) {
		h.notFound(c, fmt.Sprintf("%s not found", name))
		return
	}
	if err != nil {
		h.fail(c, "get returns", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": view})
}

// PutReturns adds the supplied returns to the balance of a buying row. A
// selling row is accepted as is, whatever the payload.
func (h *Handler) PutReturns(c *gin.Context) {
	name := c.Param("stock_name")

	var input returnsInput
	var bodyErr error
	if c.Request.ContentLength != 0 {
		bodyErr = c.ShouldBindJSON(&input)
	}

	view, err := h.Store.AddReturns(c.Request.Context(), name, input.Returns)
	switch {
	case errors.Is(err, database.ErrNotFound):
		h.notFound(c, fmt.Sprintf("%s not found", name))
		return
	case errors.Is(err, database.ErrMissingReturns):
		if bodyErr != nil {
			err = bindError(bodyErr)
		} else {
			err = badRequest(err)
		}
		h.fail(c, "put returns", err)
		return
	case err != nil:
		h.fail(c, "put returns", err)
		return
	}

	h.Logger.Info("returns applied",
		zap.String("stock_name", name),
		zap.String("status", view.Status),
		zap.String("balance", view.Balance.Decimal.String()),
	)
	c.JSON(http.StatusOK, gin.H{"message": view})
}
