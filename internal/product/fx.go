package product

import (
	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/product/repository"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/product/service"
	"go.uber.org/fx"
)

var Module = fx.Module("product.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
