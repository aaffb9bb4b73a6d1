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

	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/customer/domain"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/customer/repository"
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
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS ux_customers_email ON customers (email)`)

	return db
}

func newTestService(t *testing.T, db *gorm.DB) domain.Service {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("new node: %v", err)
	}
	return New(Params{
		DB:    db,
		Log:   zaptest.NewLogger(t),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func TestCreateCustomer(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newTestService(t, db)

	t.Run("round trip", func(t *testing.T) {
		created, err := svc.Create(ctx, domain.CreateCustomerRequest{
			Name:  "Alice",
			Email: "alice@example.com",
			Phone: "+1234567890",
		})
		assert.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Alice", created.Name)
		if assert.NotNil(t, created.Phone) {
			assert.Equal(t, "+1234567890", *created.Phone)
		}

		fetched, err := svc.GetByID(ctx, domain.GetCustomerRequest{ID: created.ID.String()})
		assert.NoError(t, err)
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, "alice@example.com", fetched.Email)
	})

	t.Run("phone is optional", func(t *testing.T) {
		created, err := svc.Create(ctx, domain.CreateCustomerRequest{
			Name:  "Carol",
			Email: "carol@example.com",
		})
		assert.NoError(t, err)
		assert.Nil(t, created.Phone)
	})

	t.Run("duplicate email inserts nothing", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.CreateCustomerRequest{
			Name:  "Alice Again",
			Email: "alice@example.com",
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

		var count int64
		db.Model(&domain.Customer{}).Where("email = ?", "alice@example.com").Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.CreateCustomerRequest{
			Name:  "   ",
			Email: "dave@example.com",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidName)
	})

	t.Run("malformed email", func(t *testing.T) {
		_, err := svc.Create(ctx, domain.CreateCustomerRequest{
			Name:  "Dave",
			Email: "not-an-email",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	})
}

func TestCreateCustomerPhoneFormats(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newTestService(t, db)

	cases := []struct {
		phone string
		valid bool
	}{
		{"+1234567890", true},
		{"123-456-7890", true},
		{"1234567890", true},
		{"123", false},
		{"phone", false},
		{"+abc1234567", false},
	}

	for i, tc := range cases {
		t.Run(tc.phone, func(t *testing.T) {
			_, err := svc.Create(ctx, domain.CreateCustomerRequest{
				Name:  "Phone Case",
				Email: fmt.Sprintf("phone%d@example.com", i),
				Phone: tc.phone,
			})
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidPhone)
			}
		})
	}
}

func TestBulkCreateCustomers(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newTestService(t, db)

	_, err := svc.Create(ctx, domain.CreateCustomerRequest{
		Name:  "Existing",
		Email: "existing@example.com",
	})
	assert.NoError(t, err)

	t.Run("partial success keeps valid records", func(t *testing.T) {
		resp, err := svc.BulkCreate(ctx, domain.BulkCreateCustomersRequest{
			Inputs: []domain.CustomerInput{
				{Name: "One", Email: "one@example.com"},
				{Name: "Dup", Email: "existing@example.com"},
				{Name: "Two", Email: "two@example.com", Phone: "123-456-7890"},
			},
		})
		assert.NoError(t, err)
		assert.Len(t, resp.Customers, 2)
		assert.Equal(t, "one@example.com", resp.Customers[0].Email)
		assert.Equal(t, "two@example.com", resp.Customers[1].Email)
		if assert.Len(t, resp.Errors, 1) {
			assert.Equal(t, "Email existing@example.com already exists", resp.Errors[0])
		}

		var count int64
		db.Model(&domain.Customer{}).Count(&count)
		assert.Equal(t, int64(3), count)
	})

	t.Run("in-batch duplicates are rejected", func(t *testing.T) {
		resp, err := svc.BulkCreate(ctx, domain.BulkCreateCustomersRequest{
			Inputs: []domain.CustomerInput{
				{Name: "First", Email: "batch@example.com"},
				{Name: "Second", Email: "batch@example.com"},
			},
		})
		assert.NoError(t, err)
		assert.Len(t, resp.Customers, 1)
		if assert.Len(t, resp.Errors, 1) {
			assert.Equal(t, "Email batch@example.com already exists", resp.Errors[0])
		}
	})

	t.Run("invalid phone reported per record", func(t *testing.T) {
		resp, err := svc.BulkCreate(ctx, domain.BulkCreateCustomersRequest{
			Inputs: []domain.CustomerInput{
				{Name: "Bad Phone", Email: "badphone@example.com", Phone: "123"},
			},
		})
		assert.NoError(t, err)
		assert.Empty(t, resp.Customers)
		if assert.Len(t, resp.Errors, 1) {
			assert.Equal(t, "Invalid phone: 123", resp.Errors[0])
		}
	})

	t.Run("repeated failing batch stays idempotent", func(t *testing.T) {
		req := domain.BulkCreateCustomersRequest{
			Inputs: []domain.CustomerInput{
				{Name: "Dup", Email: "existing@example.com"},
			},
		}
		for i := 0; i < 2; i++ {
			resp, err := svc.BulkCreate(ctx, req)
			assert.NoError(t, err)
			assert.Empty(t, resp.Customers)
			assert.Len(t, resp.Errors, 1)
		}

		var count int64
		db.Model(&domain.Customer{}).Where("email = ?", "existing@example.com").Count(&count)
		assert.Equal(t, int64(1), count)
	})
}

func TestListCustomers(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newTestService(t, db)

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, domain.CreateCustomerRequest{
			Name:  fmt.Sprintf("Customer %d", i),
			Email: fmt.Sprintf("list%d@example.com", i),
		})
		assert.NoError(t, err)
	}

	t.Run("filter by email", func(t *testing.T) {
		resp, err := svc.List(ctx, domain.ListCustomersRequest{Email: "list2@example.com"})
		assert.NoError(t, err)
		if assert.Len(t, resp.Customers, 1) {
			assert.Equal(t, "Customer 2", resp.Customers[0].Name)
		}
		assert.False(t, resp.HasMore)
	})

	t.Run("filter by name substring", func(t *testing.T) {
		resp, err := svc.List(ctx, domain.ListCustomersRequest{Name: "Customer"})
		assert.NoError(t, err)
		assert.Len(t, resp.Customers, 5)
	})

	t.Run("page size caps results", func(t *testing.T) {
		// Distinct second-granularity timestamps keep the cursor ordering
		// unambiguous.
		base := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
		var all []domain.Customer
		db.Order("id asc").Find(&all)
		for i, c := range all {
			db.Exec(`UPDATE customers SET created_at = ? WHERE id = ?`, base.Add(time.Duration(i)*time.Second), c.ID)
		}

		resp, err := svc.List(ctx, domain.ListCustomersRequest{PageSize: 2})
		assert.NoError(t, err)
		assert.Len(t, resp.Customers, 2)
		assert.True(t, resp.HasMore)
		assert.NotEmpty(t, resp.NextPageToken)

		next, err := svc.List(ctx, domain.ListCustomersRequest{PageSize: 2, PageToken: resp.NextPageToken})
		assert.NoError(t, err)
		assert.Len(t, next.Customers, 2)
		for _, c := range next.Customers {
			assert.NotEqual(t, resp.Customers[0].ID, c.ID)
			assert.NotEqual(t, resp.Customers[1].ID, c.ID)
		}
	})
}

func TestGetCustomerByID(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newTestService(t, db)

	t.Run("invalid id", func(t *testing.T) {
		_, err := svc.GetByID(ctx, domain.GetCustomerRequest{ID: "not-a-number"})
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetByID(ctx, domain.GetCustomerRequest{ID: "123456789"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
