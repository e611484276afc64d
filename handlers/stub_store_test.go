package handlers

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"stocks-ledger/database"
	"stocks-ledger/models"
)

// stubStore is an in-memory Store that mirrors database.Store semantics.
type stubStore struct {
	mu        sync.Mutex
	trades    map[int64]models.Trade
	watchlist map[int64]models.WatchlistEntry
	nextSno   int64
	nextID    int64
	// err, when set, is returned by every method.
	err error
}

func newStubStore() *stubStore {
	return &stubStore{
		trades:    map[int64]models.Trade{},
		watchlist: map[int64]models.WatchlistEntry{},
	}
}

func (s *stubStore) sortedTrades() []models.Trade {
	out := make([]models.Trade, 0, len(s.trades))
	for _, t := range s.trades {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Sno < out[j].Sno })
	return out
}

func (s *stubStore) CreateTrade(ctx context.Context, trade *models.Trade) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.nextSno++
	trade.Sno = s.nextSno
	s.trades[trade.Sno] = *trade
	return nil
}

func (s *stubStore) ListTrades(ctx context.Context) ([]models.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.sortedTrades(), nil
}

func (s *stubStore) GetTrade(ctx context.Context, sno int64) (*models.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	t, ok := s.trades[sno]
	if !ok {
		return nil, fmt.Errorf("get trade: %w", database.ErrNotFound)
	}
	return &t, nil
}

func (s *stubStore) FindTradeByName(ctx context.Context, name string) (*models.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for _, t := range s.sortedTrades() {
		if t.StockName == name {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("find trade: %w", database.ErrNotFound)
}

func (s *stubStore) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := []models.Transaction{}
	for _, t := range s.sortedTrades() {
		out = append(out, models.Transaction{Returns: t.Returns, Balance: t.Balance})
	}
	return out, nil
}

func (s *stubStore) UpdateTradeField(ctx context.Context, sno int64, column string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	t, ok := s.trades[sno]
	if !ok {
		return fmt.Errorf("update trade: %w", database.ErrNotFound)
	}
	switch column {
	case "stock_name":
		t.StockName = value.(string)
	case "status":
		t.Status = value.(string)
	case "returns":
		t.Returns = decimal.NewNullDecimal(value.(decimal.Decimal))
	case "balance":
		t.Balance = decimal.NewNullDecimal(value.(decimal.Decimal))
	default:
		return fmt.Errorf("update trade: %w: %q", database.ErrUnknownColumn, column)
	}
	s.trades[sno] = t
	return nil
}

func (s *stubStore) DeleteTrade(ctx context.Context, sno int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	delete(s.trades, sno)
	return nil
}

func (s *stubStore) firstByName(name string) (models.Trade, bool) {
	for _, t := range s.sortedTrades() {
		if t.StockName == name {
			return t, true
		}
	}
	return models.Trade{}, false
}

func (s *stubStore) Balance(ctx context.Context, name string) (*models.BalanceView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	t, ok := s.firstByName(name)
	if !ok {
		return nil, fmt.Errorf("select balance: %w", database.ErrNotFound)
	}
	return &models.BalanceView{Sno: t.Sno, StockName: t.StockName, Status: t.Status, Balance: t.Balance}, nil
}

func (s *stubStore) AddReturns(ctx context.Context, name string, delta *decimal.Decimal) (*models.BalanceView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	t, ok := s.firstByName(name)
	if !ok {
		return nil, fmt.Errorf("select balance: %w", database.ErrNotFound)
	}
	if t.Status == models.StatusBuying {
		if delta == nil {
			return nil, database.ErrMissingReturns
		}
		t.Balance = decimal.NewNullDecimal(t.Balance.Decimal.Add(*delta))
		s.trades[t.Sno] = t
	}
	return &models.BalanceView{Sno: t.Sno, StockName: t.StockName, Status: t.Status, Balance: t.Balance}, nil
}

func (s *stubStore) CreateWatchlistEntry(ctx context.Context, entry *models.WatchlistEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.nextID++
	entry.ID = s.nextID
	s.watchlist[entry.ID] = *entry
	return nil
}

func (s *stubStore) ListWatchlist(ctx context.Context) ([]models.WatchlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	out := []models.WatchlistEntry{}
	for id := int64(1); id <= s.nextID; id++ {
		if e, ok := s.watchlist[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *stubStore) FindWatchlistEntry(ctx context.Context, name string) (*models.WatchlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	for id := int64(1); id <= s.nextID; id++ {
		if e, ok := s.watchlist[id]; ok && e.StockName == name {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("find watchlist entry: %w", database.ErrNotFound)
}

var errDBDown = errors.New("connection refused")
