package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stocks-ledger/models"
)

// Store issues the statements behind each route. Every method runs on a
// connection borrowed from the pool for the lifetime of ctx.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Columns of the stocks table that PUT /stocks/{sno} may overwrite.
var updatableColumns = map[string]struct{}{
	"stock_name": {},
	"status":     {},
	"returns":    {},
	"balance":    {},
}

func (s *Store) CreateTrade(ctx context.Context, trade *models.Trade) error {
	if err := s.db.WithContext(ctx).Create(trade).Error; err != nil {
		return fmt.Errorf("create trade: %w", err)
	}
	return nil
}

func (s *Store) ListTrades(ctx context.Context) ([]models.Trade, error) {
	trades := []models.Trade{}
	if err := s.db.WithContext(ctx).Order("sno").Find(&trades).Error; err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}
	return trades, nil
}

func (s *Store) GetTrade(ctx context.Context, sno int64) (*models.Trade, error) {
	var trade models.Trade
	err := s.db.WithContext(ctx).Where("sno = ?", sno).Take(&trade).Error
	if err != nil {
		return nil, notFound("get trade", err)
	}
	return &trade, nil
}

// FindTradeByName returns the lowest-numbered trade row with that name.
func (s *Store) FindTradeByName(ctx context.Context, name string) (*models.Trade, error) {
	var trade models.Trade
	err := s.db.WithContext(ctx).Where("stock_name = ?", name).Order("sno").Take(&trade).Error
	if err != nil {
		return nil, notFound("find trade", err)
	}
	return &trade, nil
}

func (s *Store) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	txs := []models.Transaction{}
	err := s.db.WithContext(ctx).
		Model(&models.Trade{}).
		Select("returns", "balance").
		Order("sno").
		Scan(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

// UpdateTradeField overwrites a single column of one trade row.
func (s *Store) UpdateTradeField(ctx context.Context, sno int64, column string, value any) error {
	if _, ok := updatableColumns[column]; !ok {
		return fmt.Errorf("update trade: %w: %q", ErrUnknownColumn, column)
	}
	res := s.db.WithContext(ctx).
		Model(&models.Trade{}).
		Where("sno = ?", sno).
		Update(column, value)
	if res.Error != nil {
		return fmt.Errorf("update trade: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update trade: %w", ErrNotFound)
	}
	return nil
}

func (s *Store) DeleteTrade(ctx context.Context, sno int64) error {
	if err := s.db.WithContext(ctx).Where("sno = ?", sno).Delete(&models.Trade{}).Error; err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}
	return nil
}

// Balance reports status and balance of the first trade row with that name.
func (s *Store) Balance(ctx context.Context, name string) (*models.BalanceView, error) {
	view, err := selectBalance(s.db.WithContext(ctx), name, false)
	if err != nil {
		return nil, err
	}
	return view, nil
}

// AddReturns adds delta to the balance of the first trade row with that name
// when its status is buying. Rows in any other status are left untouched and
// delta is not consulted. The read and the write share one transaction.
func (s *Store) AddReturns(ctx context.Context, name string, delta *decimal.Decimal) (*models.BalanceView, error) {
	var view *models.BalanceView
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		view, err = selectBalance(tx, name, true)
		if err != nil {
			return err
		}
		if view.Status != models.StatusBuying {
			return nil
		}
		if delta == nil {
			return ErrMissingReturns
		}

		updated := decimal.NewNullDecimal(view.Balance.Decimal.Add(*delta))
		err = tx.Model(&models.Trade{}).
			Where("sno = ?", view.Sno).
			Update("balance", updated).Error
		if err != nil {
			return fmt.Errorf("update balance: %w", err)
		}
		view.Balance = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func selectBalance(db *gorm.DB, name string, lock bool) (*models.BalanceView, error) {
	q := db.Model(&models.Trade{}).
		Select("sno", "stock_name", "status", "balance").
		Where("stock_name = ?", name).
		Order("sno").
		Limit(1)
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var views []models.BalanceView
	if err := q.Scan(&views).Error; err != nil {
		return nil, fmt.Errorf("select balance: %w", err)
	}
	if len(views) == 0 {
		return nil, fmt.Errorf("select balance: %w", ErrNotFound)
	}
	return &views[0], nil
}

func notFound(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
