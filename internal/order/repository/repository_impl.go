package repository

import (
	"context"

	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/order/domain"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/pkg/db/option"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, order *domain.Order) error {
	err := db.WithContext(ctx).Exec(
		`INSERT INTO orders (id, customer_id, order_date, total_amount, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		order.ID,
		order.CustomerID,
		order.OrderDate,
		order.TotalAmount,
		order.CreatedAt,
		order.UpdatedAt,
	).Error
	if err != nil {
		return err
	}

	for _, product := range order.Products {
		err := db.WithContext(ctx).Exec(
			`INSERT INTO order_products (order_id, product_id) VALUES (?, ?)`,
			order.ID,
			product.ID,
		).Error
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Order, error) {
	var order domain.Order
	err := db.WithContext(ctx).
		Preload("Products").
		Where("id = ?", id).
		Limit(1).
		Find(&order).Error
	if err != nil {
		return nil, err
	}
	if order.ID == 0 {
		return nil, nil
	}
	return &order, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListOrdersFilter, page pagination.Pagination) ([]*domain.Order, error) {
	var orders []*domain.Order
	stmt := db.WithContext(ctx).
		Model(&domain.Order{}).
		Preload("Products")
	if filter.CustomerID != "" {
		stmt = stmt.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.OrderDateFrom != nil {
		stmt = stmt.Where("order_date >= ?", *filter.OrderDateFrom)
	}
	if filter.OrderDateTo != nil {
		stmt = stmt.Where("order_date <= ?", *filter.OrderDateTo)
	}
	if filter.TotalMin != nil {
		stmt = stmt.Where("total_amount >= ?", *filter.TotalMin)
	}
	if filter.TotalMax != nil {
		stmt = stmt.Where("total_amount <= ?", *filter.TotalMax)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
