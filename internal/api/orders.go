package api

import (
	"context"
	"net/http"

	"adminconsole/internal/backend"
	"adminconsole/internal/models"
)

type OrderLineDTO struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type OrderDTO struct {
	ID            int64          `json:"id"`
	UserID        int64          `json:"userId"`
	CustomerName  string         `json:"customerName"`
	Status        string         `json:"status"`
	PaymentStatus string         `json:"paymentStatus"`
	TotalAmount   float64        `json:"totalAmount"`
	CreatedAt     timestamp      `json:"createdAt"`
	Details       []OrderLineDTO `json:"details"`
}

type UpdateOrderStatusDTO struct {
	OrderID       int64  `json:"orderId"`
	OrderStatus   string `json:"orderStatus"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
}

func ToOrder(dto OrderDTO) models.Order {
	order := models.Order{
		ID:            dto.ID,
		UserID:        dto.UserID,
		CustomerName:  dto.CustomerName,
		Status:        models.OrderStatus(dto.Status),
		PaymentStatus: models.PaymentStatus(dto.PaymentStatus),
		TotalAmount:   dto.TotalAmount,
		CreatedAt:     string(dto.CreatedAt),
	}
	for _, line := range dto.Details {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: line.ProductID,
			Name:      line.ProductName,
			Quantity:  line.Quantity,
			UnitPrice: line.Price,
		})
	}
	return order
}

type Orders struct {
	resource
}

func (o *Orders) List(ctx context.Context, token string) ([]models.Order, error) {
	res, err := o.client.Do(ctx, backend.Request{Path: o.path("/orders"), Token: token})
	if err != nil {
		return nil, err
	}
	if res.Empty() {
		return []models.Order{}, nil
	}

	var dtos []OrderDTO
	if err := res.Decode(&dtos); err != nil {
		return nil, err
	}
	orders := make([]models.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, ToOrder(dto))
	}
	return orders, nil
}

func (o *Orders) GetByID(ctx context.Context, token string, id int64) (models.Order, error) {
	res, err := o.client.Do(ctx, backend.Request{Path: o.path("/orders/%d", id), Token: token})
	if err != nil {
		return models.Order{}, err
	}

	var dto OrderDTO
	if err := res.Decode(&dto); err != nil {
		return models.Order{}, err
	}
	return ToOrder(dto), nil
}

// AdminUpdateStatus changes the order and, when given, the payment status.
func (o *Orders) AdminUpdateStatus(ctx context.Context, token string, id int64, status models.OrderStatus, payment models.PaymentStatus) error {
	_, err := o.client.Do(ctx, backend.Request{
		Method: http.MethodPut,
		Path:   o.path("/orders/admin/update-status"),
		Body: UpdateOrderStatusDTO{
			OrderID:       id,
			OrderStatus:   string(status),
			PaymentStatus: string(payment),
		},
		Token: token,
	})
	return err
}
