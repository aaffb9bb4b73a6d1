package domain

import (
	"context"
	"errors"
	"time"

	"github.com/Joelnoble-001/alx-backend-graphql-crm/pkg/db/pagination"
)

// CustomerInput is one record of a single or bulk create request.
type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

type CreateCustomerRequest struct {
	Name  string
	Email string
	Phone string
}

type BulkCreateCustomersRequest struct {
	Inputs []CustomerInput
}

// BulkCreateCustomersResponse reports the created subset and one error
// message per failed record, both in input order.
type BulkCreateCustomersResponse struct {
	Customers []Customer `json:"customers"`
	Errors    []string   `json:"errors"`
}

type ListCustomersRequest struct {
	PageToken   string
	PageSize    int32
	Name        string
	Email       string
	Phone       string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

type ListCustomersFilter struct {
	Name        string
	Email       string
	Phone       string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

type ListCustomersResponse struct {
	pagination.PageInfo
	Customers []Customer `json:"customers"`
}

type GetCustomerRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateCustomerRequest) (Customer, error)
	BulkCreate(context.Context, BulkCreateCustomersRequest) (BulkCreateCustomersResponse, error)
	List(context.Context, ListCustomersRequest) (ListCustomersResponse, error)
	GetByID(context.Context, GetCustomerRequest) (Customer, error)
}

var (
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidEmail   = errors.New("invalid_email")
	ErrInvalidPhone   = errors.New("invalid_phone")
	ErrDuplicateEmail = errors.New("duplicate_email")
	ErrInvalidID      = errors.New("invalid_id")
	ErrNotFound       = errors.New("not_found")
)
