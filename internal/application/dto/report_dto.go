package dto

import "github.com/shopspring/decimal"

// TopProductEntry one row of the best-sellers ranking.
type TopProductEntry struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// ReportSummaryResponse the admin sales report.
type ReportSummaryResponse struct {
	TotalOrders     int               `json:"total_orders"`
	PendingOrders   int               `json:"pending_orders"`
	DeliveredOrders int               `json:"delivered_orders"`
	Revenue         decimal.Decimal   `json:"revenue"`
	TopProducts     []TopProductEntry `json:"top_products"`
}
