package domain

import (
	"context"
	"errors"

	"github.com/Joelnoble-001/alx-backend-graphql-crm/pkg/db/pagination"
)

type CreateProductRequest struct {
	Name  string
	Price float64
	// Stock defaults to zero when absent.
	Stock *int
}

type ListProductsRequest struct {
	PageToken string
	PageSize  int32
	Name      string
	PriceMin  *float64
	PriceMax  *float64
	StockMin  *int
	StockMax  *int
}

type ListProductsFilter struct {
	Name     string
	PriceMin *float64
	PriceMax *float64
	StockMin *int
	StockMax *int
}

type ListProductsResponse struct {
	pagination.PageInfo
	Products []Product `json:"products"`
}

type GetProductRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateProductRequest) (Product, error)
	List(context.Context, ListProductsRequest) (ListProductsResponse, error)
	GetByID(context.Context, GetProductRequest) (Product, error)
}

var (
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidPrice = errors.New("invalid_price")
	ErrInvalidStock = errors.New("invalid_stock")
	ErrInvalidID    = errors.New("invalid_id")
	ErrNotFound     = errors.New("not_found")
)
