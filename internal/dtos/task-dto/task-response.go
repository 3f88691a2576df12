package task_dto

// TaskStatistics aggregates the currently visible tasks: record count and
// the summed sell+buy estimated sales.
type TaskStatistics struct {
	Count      int   `json:"count"`
	TotalSales int64 `json:"total_sales"`
}

// MonthStatistics is keyed by the settlement month label (YYYY.MM).
type MonthStatistics struct {
	Count        int   `json:"count"`
	MonthlySales int64 `json:"monthly_sales"`
}

// HandlerStatistics is keyed by handler name.
type HandlerStatistics struct {
	Count      int   `json:"count"`
	TotalSales int64 `json:"total_sales"`
}
