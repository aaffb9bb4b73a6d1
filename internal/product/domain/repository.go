package domain

import (
	"context"

	"github.com/Joelnoble-001/alx-backend-graphql-crm/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, product *Product) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Product, error)
	FindByIDs(ctx context.Context, db *gorm.DB, ids []snowflake.ID) ([]Product, error)
	List(ctx context.Context, db *gorm.DB, filter ListProductsFilter, page pagination.Pagination) ([]*Product, error)
}
