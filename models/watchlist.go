package models

import (
	"github.com/shopspring/decimal"
)

// WatchlistEntry is a stock of interest. It is unrelated to trade rows.
type WatchlistEntry struct {
	ID        int64               `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StockName string              `gorm:"column:stock_name;type:varchar(200);not null" json:"stock_name"`
	About     string              `gorm:"column:about;type:text" json:"about"`
	Price     decimal.NullDecimal `gorm:"column:price;type:numeric" json:"price"`
}

func (WatchlistEntry) TableName() string {
	return "watchlist"
}
