package order

import (
	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/order/repository"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/order/service"
	"go.uber.org/fx"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
