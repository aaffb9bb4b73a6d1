package domain

import (
	"time"

	productdomain "github.com/Joelnoble-001/alx-backend-graphql-crm/internal/product/domain"
	"github.com/bwmarrin/snowflake"
)

type Order struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	CustomerID snowflake.ID `gorm:"not null;index" json:"customer_id"`
	// The product set is fixed at creation time.
	Products    []productdomain.Product `gorm:"many2many:order_products" json:"products"`
	OrderDate   time.Time               `gorm:"not null" json:"order_date"`
	TotalAmount float64                 `gorm:"not null;default:0" json:"total_amount"`
	CreatedAt   time.Time               `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time               `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Order) TableName() string { return "orders" }
