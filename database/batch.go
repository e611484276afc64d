package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stocks-ledger/models"
)

// CreateTradesInBatches inserts trades batchSize rows at a time inside a
// single transaction. Any failed chunk rolls back all of them.
func (s *Store) CreateTradesInBatches(ctx context.Context, trades []models.Trade, batchSize int) error {
	if batchSize <= 0 {
		return ErrInvalidBatch
	}
	if len(trades) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		total := len(trades)
		for i := 0; i < total; i += batchSize {
			end := i + batchSize
			if end > total {
				end = total
			}

			chunk := trades[i:end]
			if err := tx.Create(&chunk).Error; err != nil {
				return fmt.Errorf("batch insert failed at row %d: %w", i, err)
			}
		}
		return nil
	})
}
