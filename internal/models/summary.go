package models

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type MonthlyOrders struct {
	Month  string `json:"month"`
	Orders int    `json:"orders"`
}

type PaidOrder struct {
	ID            int64         `json:"id"`
	TotalAmount   float64       `json:"totalAmount"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	CreatedAt     string        `json:"createdAt"`
}

// Summary aggregates the dashboard overview figures.
type Summary struct {
	TotalUsers     int              `json:"totalUsers"`
	TotalProducts  int              `json:"totalProducts"`
	TotalOrders    int              `json:"totalOrders"`
	TotalRevenue   float64          `json:"totalRevenue"`
	MonthlyRevenue []MonthlyRevenue `json:"monthlyRevenue"`
	MonthlyOrders  []MonthlyOrders  `json:"monthlyOrders"`
	Orders         []PaidOrder      `json:"orders"`
}
