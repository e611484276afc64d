package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"stocks-ledger/database"
	"stocks-ledger/middleware"
	"stocks-ledger/models"
)

type TradeStore interface {
	CreateTrade(ctx context.Context, trade *models.Trade) error
	ListTrades(ctx context.Context) ([]models.Trade, error)
	GetTrade(ctx context.Context, sno int64) (*models.Trade, error)
	FindTradeByName(ctx context.Context, name string) (*models.Trade, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	UpdateTradeField(ctx context.Context, sno int64, column string, value any) error
	DeleteTrade(ctx context.Context, sno int64) error
	Balance(ctx context.Context, name string) (*models.BalanceView, error)
	AddReturns(ctx context.Context, name string, delta *decimal.Decimal) (*models.BalanceView, error)
}

type WatchlistStore interface {
	CreateWatchlistEntry(ctx context.Context, entry *models.WatchlistEntry) error
	ListWatchlist(ctx context.Context) ([]models.WatchlistEntry, error)
	FindWatchlistEntry(ctx context.Context, name string) (*models.WatchlistEntry, error)
}

type Store interface {
	TradeStore
	WatchlistStore
}

type Handler struct {
	Store  Store
	Logger *zap.Logger
	// StrictStatusCodes maps handled failures to 4xx/5xx instead of 200.
	StrictStatusCodes bool
}

func NewHandler(store Store, log *zap.Logger, strict bool) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{Store: store, Logger: log, StrictStatusCodes: strict}
}

func (h *Handler) Register(r gin.IRouter) {
	r.POST("/stocks", h.AddStock)
	r.GET("/", h.ListStocks)
	r.GET("/report/:sno", h.GetStockReport)
	r.GET("/stocks/search/:stock_name", h.SearchStock)
	r.GET("/search/:stock_name", h.SearchStock)
	r.GET("/transactions", h.ListTransactions)
	r.PUT("/stocks/:sno", h.UpdateStock)
	r.GET("/returns/:stock_name", h.GetReturns)
	r.PUT("/returns/:stock_name", h.PutReturns)
	r.DELETE("/delete/:sno", h.DeleteStock)

	r.POST("/watchlist", h.AddWatchlistEntry)
	r.GET("/watchlist", h.ListWatchlist)
	r.GET("/watchlist/search/:stock_name", h.SearchWatchlist)
}

// errBadRequest marks failures caused by the request rather than the database.
type errBadRequest struct{ error }

func badRequest(err error) error { return errBadRequest{err} }

func (e errBadRequest) Unwrap() error { return e.error }

// fail is the route-boundary error path: log, then answer with the error text
// under "message".
func (h *Handler) fail(c *gin.Context, op string, err error) {
	status := http.StatusInternalServerError
	var bad errBadRequest
	switch {
	case errors.As(err, &bad):
		status = http.StatusBadRequest
	case errors.Is(err, database.ErrNotFound):
		status = http.StatusNotFound
	}

	log := h.Logger.With(
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("op", op),
		zap.Error(err),
	)
	if status == http.StatusInternalServerError {
		log.Error("request failed")
	} else {
		log.Warn("request rejected")
	}

	_ = c.Error(err)
	c.JSON(h.failureStatus(status), gin.H{"message": err.Error()})
}

// notFound answers for a lookup that matched nothing. It is not an error.
func (h *Handler) notFound(c *gin.Context, message string) {
	c.JSON(h.failureStatus(http.StatusNotFound), gin.H{"message": message})
}

func (h *Handler) failureStatus(status int) int {
	if h.StrictStatusCodes {
		return status
	}
	return http.StatusOK
}
