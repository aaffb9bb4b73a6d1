package customer

import (
	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/customer/repository"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
