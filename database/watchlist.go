package database

import (
	"context"
	"fmt"

	"stocks-ledger/models"
)

func (s *Store) CreateWatchlistEntry(ctx context.Context, entry *models.WatchlistEntry) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("create watchlist entry: %w", err)
	}
	return nil
}

func (s *Store) ListWatchlist(ctx context.Context) ([]models.WatchlistEntry, error) {
	entries := []models.WatchlistEntry{}
	if err := s.db.WithContext(ctx).Order("id").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}
	return entries, nil
}

func (s *Store) FindWatchlistEntry(ctx context.Context, name string) (*models.WatchlistEntry, error) {
	var entry models.WatchlistEntry
	err := s.db.WithContext(ctx).Where("stock_name = ?", name).Order("id").Take(&entry).Error
	if err != nil {
		return nil, notFound("find watchlist entry", err)
	}
	return &entry, nil
}
