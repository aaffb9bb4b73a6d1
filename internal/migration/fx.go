package migration

import (
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/config"
	customerdomain "github.com/Joelnoble-001/alx-backend-graphql-crm/internal/customer/domain"
	orderdomain "github.com/Joelnoble-001/alx-backend-graphql-crm/internal/order/domain"
	productdomain "github.com/Joelnoble-001/alx-backend-graphql-crm/internal/product/domain"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/seed"
)

func runMigrations(conn *gorm.DB, cfg config.Config, log *zap.Logger) error {
	switch strings.ToLower(strings.TrimSpace(cfg.DBType)) {
	case "postgres", "postgresql":
		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		if err := RunMigrations(sqlDB); err != nil {
			return err
		}
	default:
		// sqlite is used for local development and tests; AutoMigrate keeps
		// its schema in step without a second migration track.
		if err := conn.AutoMigrate(
			&customerdomain.Customer{},
			&productdomain.Product{},
			&orderdomain.Order{},
		); err != nil {
			return err
		}
	}

	log.Info("database schema is up to date", zap.String("driver", cfg.DBType))

	if cfg.SeedDemoData {
		if err := seed.EnsureDemoData(conn); err != nil {
			return err
		}
		log.Info("demo data seeded")
	}

	return nil
}

var Module = fx.Module("migration",
	fx.Invoke(runMigrations),
)
