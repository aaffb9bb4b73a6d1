package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/clock"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/config"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/migration"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/observability"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/server"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/pkg/db"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
