package api

import (
	"context"

	"adminconsole/internal/backend"
	"adminconsole/internal/models"
)

type SummaryDTO struct {
	TotalUsers     int     `json:"totalUsers"`
	TotalProducts  int     `json:"totalProducts"`
	TotalOrders    int     `json:"totalOrders"`
	TotalRevenue   float64 `json:"totalRevenue"`
	MonthlyRevenue []struct {
		Month   string  `json:"month"`
		Revenue float64 `json:"revenue"`
	} `json:"monthlyRevenue"`
	MonthlyOrders []struct {
		Month  string `json:"month"`
		Orders int    `json:"orders"`
	} `json:"monthlyOrders"`
	Orders []struct {
		ID            int64     `json:"id"`
		TotalAmount   float64   `json:"totalAmount"`
		PaymentStatus string    `json:"paymentStatus"`
		CreatedAt     timestamp `json:"createdAt"`
	} `json:"orders"`
}

func ToSummary(dto SummaryDTO) models.Summary {
	s := models.Summary{
		TotalUsers:     dto.TotalUsers,
		TotalProducts:  dto.TotalProducts,
		TotalOrders:    dto.TotalOrders,
		TotalRevenue:   dto.TotalRevenue,
		MonthlyRevenue: make([]models.MonthlyRevenue, 0, len(dto.MonthlyRevenue)),
		MonthlyOrders:  make([]models.MonthlyOrders, 0, len(dto.MonthlyOrders)),
		Orders:         make([]models.PaidOrder, 0, len(dto.Orders)),
	}
	for _, m := range dto.MonthlyRevenue {
		s.MonthlyRevenue = append(s.MonthlyRevenue, models.MonthlyRevenue{Month: m.Month, Revenue: m.Revenue})
	}
	for _, m := range dto.MonthlyOrders {
		s.MonthlyOrders = append(s.MonthlyOrders, models.MonthlyOrders{Month: m.Month, Orders: m.Orders})
	}
	for _, o := range dto.Orders {
		s.Orders = append(s.Orders, models.PaidOrder{
			ID:            o.ID,
			TotalAmount:   o.TotalAmount,
			PaymentStatus: models.PaymentStatus(o.PaymentStatus),
			CreatedAt:     string(o.CreatedAt),
		})
	}
	return s
}

type Dashboard struct {
	resource
}

func (d *Dashboard) GetSummary(ctx context.Context, token string) (models.Summary, error) {
	res, err := d.client.Do(ctx, backend.Request{Path: d.path("/dashboard/summary"), Token: token})
	if err != nil {
		return models.Summary{}, err
	}

	var dto SummaryDTO
	if err := res.Decode(&dto); err != nil {
		return models.Summary{}, err
	}
	return ToSummary(dto), nil
}
