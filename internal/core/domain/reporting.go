package domain

import "github.com/shopspring/decimal"

// PeriodSummary aggregates closing records over an inclusive date range for
// the printable reports view.
type PeriodSummary struct {
	From string `json:"from"`
	To   string `json:"to"`

	RecordCount int `json:"recordCount"`
	RideCount   int `json:"rideCount"`

	Sales          DailySales      `json:"sales"`
	TotalSales     decimal.Decimal `json:"totalSales"`
	TotalPayments  decimal.Decimal `json:"totalPayments"`
	TotalDebts     decimal.Decimal `json:"totalDebts"`
	TotalPending   decimal.Decimal `json:"totalPending"`
	TotalRiderCost decimal.Decimal `json:"totalRiderCost"`
}
