package domain

import (
	"context"

	"github.com/Joelnoble-001/alx-backend-graphql-crm/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, customer *Customer) error
	ExistsByEmail(ctx context.Context, db *gorm.DB, email string) (bool, error)
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Customer, error)
	List(ctx context.Context, db *gorm.DB, filter ListCustomersFilter, page pagination.Pagination) ([]*Customer, error)
}
