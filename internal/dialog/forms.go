package dialog

import (
	"strings"

	"adminconsole/internal/api"
	"adminconsole/internal/models"
)

type UserForm struct {
	FullName    string            `json:"fullName" form:"fullName" binding:"required"`
	Email       string            `json:"email" form:"email" binding:"required"`
	Password    string            `json:"password,omitempty" form:"password"`
	PhoneNumber string            `json:"phoneNumber" form:"phoneNumber"`
	Role        models.UserRole   `json:"role" form:"role"`
	Status      models.UserStatus `json:"status" form:"status"`
}

// NewUserForm fills the form from u, or with creation defaults when u is nil.
func NewUserForm(u *models.User) UserForm {
	if u == nil {
		return UserForm{Role: models.UserRoleUser, Status: models.UserStatusActive}
	}
	form := UserForm{
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
		Status:   u.Status,
	}
	if u.PhoneNumber != nil {
		form.PhoneNumber = *u.PhoneNumber
	}
	return form
}

func (f UserForm) Input() api.UserInput {
	in := api.UserInput{
		FullName: f.FullName,
		Email:    f.Email,
		Password: f.Password,
		Role:     f.Role,
		Status:   f.Status,
	}
	if phone := strings.TrimSpace(f.PhoneNumber); phone != "" {
		in.PhoneNumber = &phone
	}
	return in
}

type ProductForm struct {
	Name     string               `json:"name" form:"name" binding:"required"`
	Category string               `json:"category" form:"category"`
	Price    float64              `json:"price" form:"price"`
	Stock    int                  `json:"stock" form:"stock"`
	Status   models.ProductStatus `json:"status" form:"status"`
	ImageURL string               `json:"imageUrl" form:"imageUrl"`
}

func NewProductForm(p *models.Product) ProductForm {
	if p == nil {
		return ProductForm{Status: models.ProductStatusActive}
	}
	status := p.Status
	if status == "" {
		status = models.ProductStatusActive
	}
	return ProductForm{
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Stock:    p.Stock,
		Status:   status,
		ImageURL: p.ImageURL,
	}
}

func (f ProductForm) Product() models.Product {
	return models.Product{
		Name:     f.Name,
		Category: f.Category,
		Price:    f.Price,
		Stock:    f.Stock,
		Status:   f.Status,
		ImageURL: f.ImageURL,
	}
}

type OrderStatusForm struct {
	OrderStatus   models.OrderStatus   `json:"orderStatus" form:"orderStatus" binding:"required"`
	PaymentStatus models.PaymentStatus `json:"paymentStatus" form:"paymentStatus"`
}

func NewOrderStatusForm(o models.Order) OrderStatusForm {
	return OrderStatusForm{OrderStatus: o.Status, PaymentStatus: o.PaymentStatus}
}
