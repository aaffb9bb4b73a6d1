package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/clock"
	customerdomain "github.com/Joelnoble-001/alx-backend-graphql-crm/internal/customer/domain"
	customerrepo "github.com/Joelnoble-001/alx-backend-graphql-crm/internal/customer/repository"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/order/domain"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/order/repository"
	productdomain "github.com/Joelnoble-001/alx-backend-graphql-crm/internal/product/domain"
	productrepo "github.com/Joelnoble-001/alx-backend-graphql-crm/internal/product/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	db.Exec(`CREATE TABLE IF NOT EXISTS customers (
		id BIGINT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		metadata TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`)
	db.Exec(`CREATE TABLE IF NOT EXISTS products (
		id BIGINT PRIMARY KEY,
		name TEXT NOT NULL,
		price REAL NOT NULL,
		stock INTEGER NOT NULL DEFAULT 0,
		metadata TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`)
	db.Exec(`CREATE TABLE IF NOT EXISTS orders (
		id BIGINT PRIMARY KEY,
		customer_id BIGINT NOT NULL,
		order_date TIMESTAMP NOT NULL,
		total_amount REAL NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`)
	db.Exec(`CREATE TABLE IF NOT EXISTS order_products (
		order_id BIGINT NOT NULL,
		product_id BIGINT NOT NULL,
		PRIMARY KEY (order_id, product_id)
	)`)

	return db
}

type testEnv struct {
	db    *gorm.DB
	node  *snowflake.Node
	clock *clock.FakeClock
	svc   domain.Service
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupTestDB(t)
	node, err := snowflake.NewNode(3)
	if err != nil {
		t.Fatalf("new node: %v", err)
	}
	fake := clock.NewFakeClock(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))
	svc := New(Params{
		DB:        db,
		Log:       zaptest.NewLogger(t),
		GenID:     node,
		Clock:     fake,
		Repo:      repository.Provide(),
		Customers: customerrepo.Provide(),
		Products:  productrepo.Provide(),
	})
	return &testEnv{db: db, node: node, clock: fake, svc: svc}
}

func (e *testEnv) seedCustomer(t *testing.T, name, email string) customerdomain.Customer {
	t.Helper()
	now := time.Now().UTC()
	customer := customerdomain.Customer{
		ID:        e.node.Generate(),
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := e.db.Exec(
		`INSERT INTO customers (id, name, email, phone, metadata, created_at, updated_at)
		 VALUES (?, ?, ?, NULL, '{}', ?, ?)`,
		customer.ID, customer.Name, customer.Email, customer.CreatedAt, customer.UpdatedAt,
	).Error
	if err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return customer
}

func (e *testEnv) seedProduct(t *testing.T, name string, price float64, stock int) productdomain.Product {
	t.Helper()
	now := time.Now().UTC()
	product := productdomain.Product{
		ID:        e.node.Generate(),
		Name:      name,
		Price:     price,
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := e.db.Exec(
		`INSERT INTO products (id, name, price, stock, metadata, created_at, updated_at)
		 VALUES (?, ?, ?, ?, '{}', ?, ?)`,
		product.ID, product.Name, product.Price, product.Stock, product.CreatedAt, product.UpdatedAt,
	).Error
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)

	customer := env.seedCustomer(t, "Alice", "alice@example.com")
	laptop := env.seedProduct(t, "Laptop", 100, 10)
	phone := env.seedProduct(t, "Phone", 250, 20)

	t.Run("total is the sum of product prices", func(t *testing.T) {
		order, err := env.svc.Create(ctx, domain.CreateOrderRequest{
			CustomerID: customer.ID.String(),
			ProductIDs: []string{laptop.ID.String(), phone.ID.String()},
		})
		assert.NoError(t, err)
		assert.Equal(t, customer.ID, order.CustomerID)
		assert.Equal(t, 350.0, order.TotalAmount)
		assert.Len(t, order.Products, 2)
		assert.Equal(t, env.clock.Now(), order.OrderDate)

		fetched, err := env.svc.GetByID(ctx, domain.GetOrderRequest{ID: order.ID.String()})
		assert.NoError(t, err)
		assert.Equal(t, 350.0, fetched.TotalAmount)
		assert.Len(t, fetched.Products, 2)
	})

	t.Run("explicit order date wins over the clock", func(t *testing.T) {
		when := time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC)
		order, err := env.svc.Create(ctx, domain.CreateOrderRequest{
			CustomerID: customer.ID.String(),
			ProductIDs: []string{laptop.ID.String()},
			OrderDate:  &when,
		})
		assert.NoError(t, err)
		assert.Equal(t, when, order.OrderDate)
	})

	t.Run("unmatched product ids are dropped", func(t *testing.T) {
		order, err := env.svc.Create(ctx, domain.CreateOrderRequest{
			CustomerID: customer.ID.String(),
			ProductIDs: []string{laptop.ID.String(), "999999999", "garbage"},
		})
		assert.NoError(t, err)
		assert.Len(t, order.Products, 1)
		assert.Equal(t, 100.0, order.TotalAmount)
	})

	t.Run("all unmatched ids fail", func(t *testing.T) {
		_, err := env.svc.Create(ctx, domain.CreateOrderRequest{
			CustomerID: customer.ID.String(),
			ProductIDs: []string{"999999999"},
		})
		assert.ErrorIs(t, err, domain.ErrNoProducts)
	})

	t.Run("empty selection is rejected up front", func(t *testing.T) {
		_, err := env.svc.Create(ctx, domain.CreateOrderRequest{
			CustomerID: customer.ID.String(),
			ProductIDs: nil,
		})
		assert.ErrorIs(t, err, domain.ErrEmptySelection)
	})

	t.Run("empty selection wins over unknown customer", func(t *testing.T) {
		_, err := env.svc.Create(ctx, domain.CreateOrderRequest{
			CustomerID: "123456789",
			ProductIDs: nil,
		})
		assert.ErrorIs(t, err, domain.ErrEmptySelection)
	})

	t.Run("unknown customer persists nothing", func(t *testing.T) {
		var before int64
		env.db.Model(&domain.Order{}).Count(&before)

		_, err := env.svc.Create(ctx, domain.CreateOrderRequest{
			CustomerID: "123456789",
			ProductIDs: []string{laptop.ID.String()},
		})
		assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

		var after int64
		env.db.Model(&domain.Order{}).Count(&after)
		assert.Equal(t, before, after)
	})

	t.Run("malformed customer id", func(t *testing.T) {
		_, err := env.svc.Create(ctx, domain.CreateOrderRequest{
			CustomerID: "not-a-number",
			ProductIDs: []string{laptop.ID.String()},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	})
}

func TestListOrders(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)

	alice := env.seedCustomer(t, "Alice", "alice@example.com")
	bob := env.seedCustomer(t, "Bob", "bob@example.com")
	laptop := env.seedProduct(t, "Laptop", 999.99, 10)
	phone := env.seedProduct(t, "Phone", 499.99, 20)

	_, err := env.svc.Create(ctx, domain.CreateOrderRequest{
		CustomerID: alice.ID.String(),
		ProductIDs: []string{laptop.ID.String()},
	})
	assert.NoError(t, err)
	_, err = env.svc.Create(ctx, domain.CreateOrderRequest{
		CustomerID: bob.ID.String(),
		ProductIDs: []string{laptop.ID.String(), phone.ID.String()},
	})
	assert.NoError(t, err)

	t.Run("filter by customer", func(t *testing.T) {
		resp, err := env.svc.List(ctx, domain.ListOrdersRequest{CustomerID: alice.ID.String()})
		assert.NoError(t, err)
		if assert.Len(t, resp.Orders, 1) {
			assert.Equal(t, alice.ID, resp.Orders[0].CustomerID)
		}
	})

	t.Run("filter by total range", func(t *testing.T) {
		min := 1000.0
		resp, err := env.svc.List(ctx, domain.ListOrdersRequest{TotalMin: &min})
		assert.NoError(t, err)
		if assert.Len(t, resp.Orders, 1) {
			assert.Equal(t, bob.ID, resp.Orders[0].CustomerID)
			assert.Len(t, resp.Orders[0].Products, 2)
		}
	})

	t.Run("malformed customer filter", func(t *testing.T) {
		_, err := env.svc.List(ctx, domain.ListOrdersRequest{CustomerID: "garbage"})
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	})
}

func TestGetOrderByID(t *testing.T) {
	ctx := context.Background()
	env := setupTestEnv(t)

	t.Run("invalid id", func(t *testing.T) {
		_, err := env.svc.GetByID(ctx, domain.GetOrderRequest{ID: "xyz"})
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := env.svc.GetByID(ctx, domain.GetOrderRequest{ID: "123456789"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
