package seed

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	customerdomain "github.com/Joelnoble-001/alx-backend-graphql-crm/internal/customer/domain"
	productdomain "github.com/Joelnoble-001/alx-backend-graphql-crm/internal/product/domain"
)

type demoCustomer struct {
	Name  string
	Email string
	Phone string
}

type demoProduct struct {
	Name  string
	Price float64
	Stock int
}

var demoCustomers = []demoCustomer{
	{Name: "Alice", Email: "alice@example.com", Phone: "+1234567890"},
	{Name: "Bob", Email: "bob@example.com", Phone: "123-456-7890"},
}

var demoProducts = []demoProduct{
	{Name: "Laptop", Price: 999.99, Stock: 10},
	{Name: "Phone", Price: 499.99, Stock: 20},
}

// EnsureDemoData seeds a small demo dataset for local development. Safe
// to call on every startup.
func EnsureDemoData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range demoCustomers {
			if err := ensureCustomerTx(ctx, tx, node, c); err != nil {
				return err
			}
		}
		for _, p := range demoProducts {
			if err := ensureProductTx(ctx, tx, node, p); err != nil {
				return err
			}
		}
		return nil
	})
}

func ensureCustomerTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node, c demoCustomer) error {
	var existing customerdomain.Customer
	err := tx.WithContext(ctx).Where("email = ?", strings.ToLower(c.Email)).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	now := time.Now().UTC()
	phone := c.Phone
	customer := customerdomain.Customer{
		ID:        node.Generate(),
		Name:      c.Name,
		Email:     strings.ToLower(c.Email),
		Phone:     &phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return tx.WithContext(ctx).Create(&customer).Error
}

func ensureProductTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node, p demoProduct) error {
	var existing productdomain.Product
	err := tx.WithContext(ctx).Where("name = ?", p.Name).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	now := time.Now().UTC()
	product := productdomain.Product{
		ID:        node.Generate(),
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return tx.WithContext(ctx).Create(&product).Error
}
