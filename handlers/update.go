package handlers

import (
	"github.com/shopspring/decimal"
)

// UpdateStockInput carries the optional fields of PUT /stocks/{sno}.
type UpdateStockInput struct {
	StockName *string          `json:"stock_name"`
	Status    *string          `json:"status"`
	Returns   *decimal.Decimal `json:"returns"`
	Balance   *decimal.Decimal `json:"balance"`
}

type fieldUpdate struct {
	Column string
	Value  any
}

// presentFields lists supplied fields in priority order: stock_name, status,
// returns, balance. Empty strings and zero amounts count as absent. Only the
// first entry is ever written.
func (in UpdateStockInput) presentFields() []fieldUpdate {
	var fields []fieldUpdate
	if in.StockName != nil && *in.StockName != "" {
		fields = append(fields, fieldUpdate{Column: "stock_name", Value: *in.StockName})
	}
	if in.Status != nil && *in.Status != "" {
		fields = append(fields, fieldUpdate{Column: "status", Value: *in.Status})
	}
	if in.Returns != nil && !in.Returns.IsZero() {
		fields = append(fields, fieldUpdate{Column: "returns", Value: *in.Returns})
	}
	if in.Balance != nil && !in.Balance.IsZero() {
		fields = append(fields, fieldUpdate{Column: "balance", Value: *in.Balance})
	}
	return fields
}

func columns(fields []fieldUpdate) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Column)
	}
	return out
}
