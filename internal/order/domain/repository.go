package domain

import (
	"context"

	"github.com/Joelnoble-001/alx-backend-graphql-crm/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	// Insert writes the order row and its product association rows.
	// Callers wrap it in a transaction so the total and the association
	// set are never observable apart.
	Insert(ctx context.Context, db *gorm.DB, order *Order) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Order, error)
	List(ctx context.Context, db *gorm.DB, filter ListOrdersFilter, page pagination.Pagination) ([]*Order, error)
}
