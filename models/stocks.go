package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Money values go over the wire as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

const (
	StatusBuying  = "buying"
	StatusSelling = "selling"
)

// Trade is one row of the stocks table: a buy or sell entry with the returns
// delta supplied by the caller and the resulting balance.
type Trade struct {
	Sno        int64               `gorm:"column:sno;primaryKey;autoIncrement" json:"sno"`
	StockName  string              `gorm:"column:stock_name;type:varchar(200);not null" json:"stock_name"`
	Status     string              `gorm:"column:status;type:varchar(200)" json:"status"`
	Returns    decimal.NullDecimal `gorm:"column:returns;type:numeric" json:"returns"`
	Balance    decimal.NullDecimal `gorm:"column:balance;type:numeric" json:"balance"`
	Calculated *bool               `gorm:"column:calculated" json:"calculated"`
}

func (Trade) TableName() string {
	return "stocks"
}

// Transaction is the (returns, balance) projection served by /transactions.
type Transaction struct {
	Returns decimal.NullDecimal `gorm:"column:returns" json:"returns"`
	Balance decimal.NullDecimal `gorm:"column:balance" json:"balance"`
}

// BalanceView is what the returns endpoint reports for a stock.
type BalanceView struct {
	Sno       int64               `gorm:"column:sno" json:"-"`
	StockName string              `gorm:"column:stock_name" json:"stock_name"`
	Status    string              `gorm:"column:status" json:"status"`
	Balance   decimal.NullDecimal `gorm:"column:balance" json:"balance"`
}
