package cmd

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"stocks-ledger/database"
	"stocks-ledger/models"
)

//go:embed testdata/sample_trades.json
var sampleTrades []byte

var (
	seedFile      string
	seedBatchSize int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Bulk-load trade rows",
	Long: `Inserts trade rows from a JSON array in batches inside one transaction.
Without --file the built-in sample rows are loaded.

Examples:
  stocks-ledger seed
  stocks-ledger seed --file trades.json --batch-size 500`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "JSON array of trades (default: built-in sample rows)")
	seedCmd.Flags().IntVar(&seedBatchSize, "batch-size", 100, "rows per insert statement")
}

func runSeed(cmd *cobra.Command, args []string) error {
	trades, err := loadTrades(seedFile)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Postgres, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
	}

	store := database.NewStore(db.Gorm)
	if err := store.CreateTradesInBatches(cmd.Context(), trades, seedBatchSize); err != nil {
		return fmt.Errorf("seed trades: %w", err)
	}

	log.Info("trades seeded", zap.Int("rows", len(trades)), zap.Int("batch_size", seedBatchSize))
	return nil
}

// loadTrades decodes path, or the embedded sample rows when path is empty.
// Any sno in the input is dropped so the sequence assigns it.
func loadTrades(path string) ([]models.Trade, error) {
	raw := sampleTrades
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	}

	var trades []models.Trade
	if err := json.Unmarshal(raw, &trades); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}
	for i := range trades {
		trades[i].Sno = 0
		if trades[i].StockName == "" {
			return nil, fmt.Errorf("decode seed file: row %d: stock_name is required", i)
		}
	}
	return trades, nil
}
