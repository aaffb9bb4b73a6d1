package domain

import (
	"context"
	"errors"
	"time"

	"github.com/Joelnoble-001/alx-backend-graphql-crm/pkg/db/pagination"
)

type CreateOrderRequest struct {
	CustomerID string
	ProductIDs []string
	// OrderDate defaults to the current time when absent.
	OrderDate *time.Time
}

type ListOrdersRequest struct {
	PageToken     string
	PageSize      int32
	CustomerID    string
	OrderDateFrom *time.Time
	OrderDateTo   *time.Time
	TotalMin      *float64
	TotalMax      *float64
}

type ListOrdersFilter struct {
	CustomerID    string
	OrderDateFrom *time.Time
	OrderDateTo   *time.Time
	TotalMin      *float64
	TotalMax      *float64
}

type ListOrdersResponse struct {
	pagination.PageInfo
	Orders []Order `json:"orders"`
}

type GetOrderRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateOrderRequest) (Order, error)
	List(context.Context, ListOrdersRequest) (ListOrdersResponse, error)
	GetByID(context.Context, GetOrderRequest) (Order, error)
}

var (
	ErrInvalidID        = errors.New("invalid_id")
	ErrCustomerNotFound = errors.New("customer_not_found")
	ErrEmptySelection   = errors.New("empty_product_selection")
	ErrNoProducts       = errors.New("no_valid_products")
	ErrNotFound         = errors.New("not_found")
)
