package api

import (
	"context"
	"net/http"
	"strings"

	"adminconsole/internal/backend"
	"adminconsole/internal/models"
)

// ProductDTO is the backend's product record.
type ProductDTO struct {
	ProductID   int64     `json:"productId"`
	ProductName string    `json:"productName"`
	Tags        *string   `json:"tags"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	IsActive    bool      `json:"isActive"`
	ImageURL    *string   `json:"imageUrl"`
	CreatedAt   timestamp `json:"createdAt"`
}

type CreateProductDTO struct {
	ProductName string  `json:"productName"`
	Tags        string  `json:"tags"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	IsActive    bool    `json:"isActive"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// UpdateProductDTO differs from the create shape: the name travels as "name".
type UpdateProductDTO struct {
	Name     string  `json:"name"`
	Tags     string  `json:"tags"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	IsActive bool    `json:"isActive"`
	ImageURL string  `json:"imageUrl,omitempty"`
}

func ToProduct(dto ProductDTO) models.Product {
	p := models.Product{
		ID:        dto.ProductID,
		Name:      dto.ProductName,
		Price:     dto.Price,
		Stock:     dto.Stock,
		Status:    models.ProductStatusInactive,
		CreatedAt: string(dto.CreatedAt),
	}
	if dto.Tags != nil {
		p.Category = *dto.Tags
	}
	if dto.IsActive {
		p.Status = models.ProductStatusActive
	}
	if dto.ImageURL != nil {
		p.ImageURL = *dto.ImageURL
	}
	return p
}

func ToCreateProductDTO(p models.Product) CreateProductDTO {
	return CreateProductDTO{
		ProductName: strings.TrimSpace(p.Name),
		Tags:        strings.TrimSpace(p.Category),
		Price:       p.Price,
		Stock:       p.Stock,
		IsActive:    p.Status == models.ProductStatusActive,
		ImageURL:    strings.TrimSpace(p.ImageURL),
	}
}

func ToUpdateProductDTO(p models.Product) UpdateProductDTO {
	return UpdateProductDTO{
		Name:     strings.TrimSpace(p.Name),
		Tags:     strings.TrimSpace(p.Category),
		Price:    p.Price,
		Stock:    p.Stock,
		IsActive: p.Status == models.ProductStatusActive,
		ImageURL: strings.TrimSpace(p.ImageURL),
	}
}

type Products struct {
	resource
}

func (p *Products) List(ctx context.Context, token string) ([]models.Product, error) {
	res, err := p.client.Do(ctx, backend.Request{Path: p.path("/products"), Token: token})
	if err != nil {
		return nil, err
	}
	if res.Empty() {
		return []models.Product{}, nil
	}

	var dtos []ProductDTO
	if err := res.Decode(&dtos); err != nil {
		return nil, err
	}
	products := make([]models.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, ToProduct(dto))
	}
	return products, nil
}

func (p *Products) Create(ctx context.Context, token string, product models.Product) (models.Product, error) {
	res, err := p.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   p.path("/products"),
		Body:   ToCreateProductDTO(product),
		Token:  token,
	})
	if err != nil {
		return models.Product{}, err
	}

	var dto ProductDTO
	if err := res.Decode(&dto); err != nil {
		return models.Product{}, err
	}
	return ToProduct(dto), nil
}

// Update returns nil when the backend answers without a body.
func (p *Products) Update(ctx context.Context, token string, id int64, product models.Product) (*models.Product, error) {
	res, err := p.client.Do(ctx, backend.Request{
		Method: http.MethodPut,
		Path:   p.path("/products/%d", id),
		Body:   ToUpdateProductDTO(product),
		Token:  token,
	})
	if err != nil {
		return nil, err
	}
	if res.Empty() || !res.IsJSON() {
		return nil, nil
	}

	var dto ProductDTO
	if err := res.Decode(&dto); err != nil {
		return nil, err
	}
	updated := ToProduct(dto)
	return &updated, nil
}

func (p *Products) Remove(ctx context.Context, token string, id int64) error {
	_, err := p.client.Do(ctx, backend.Request{
		Method: http.MethodDelete,
		Path:   p.path("/products/%d", id),
		Token:  token,
	})
	return err
}
