package repository

import (
	"context"

	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/product/domain"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/pkg/db/option"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO products (id, name, price, stock, metadata, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		product.ID,
		product.Name,
		product.Price,
		product.Stock,
		product.Metadata,
		product.CreatedAt,
		product.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Product, error) {
	var product domain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, price, stock, metadata, created_at, updated_at
		 FROM products WHERE id = ?`,
		id,
	).Scan(&product).Error
	if err != nil {
		return nil, err
	}
	if product.ID == 0 {
		return nil, nil
	}
	return &product, nil
}

// FindByIDs resolves the subset of ids that exist; unmatched ids are
// simply absent from the result.
func (r *repo) FindByIDs(ctx context.Context, db *gorm.DB, ids []snowflake.ID) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []domain.Product
	err := db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id IN ?", ids).
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListProductsFilter, page pagination.Pagination) ([]*domain.Product, error) {
	var products []*domain.Product
	stmt := db.WithContext(ctx).
		Model(&domain.Product{})
	if filter.Name != "" {
		stmt = stmt.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.PriceMin != nil {
		stmt = stmt.Where("price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		stmt = stmt.Where("price <= ?", *filter.PriceMax)
	}
	if filter.StockMin != nil {
		stmt = stmt.Where("stock >= ?", *filter.StockMin)
	}
	if filter.StockMax != nil {
		stmt = stmt.Where("stock <= ?", *filter.StockMax)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
