package server

import (
	"context"
	"net/http"
	"time"

	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/config"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/customer"
	customerdomain "github.com/Joelnoble-001/alx-backend-graphql-crm/internal/customer/domain"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/observability"
	obslogger "github.com/Joelnoble-001/alx-backend-graphql-crm/internal/observability/logger"
	obsmetrics "github.com/Joelnoble-001/alx-backend-graphql-crm/internal/observability/metrics"
	obstracing "github.com/Joelnoble-001/alx-backend-graphql-crm/internal/observability/tracing"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/order"
	orderdomain "github.com/Joelnoble-001/alx-backend-graphql-crm/internal/order/domain"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/product"
	productdomain "github.com/Joelnoble-001/alx-backend-graphql-crm/internal/product/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	customer.Module,
	product.Module,
	order.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(registerRoutes),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(obslogger.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(httpMetrics.Handler()))

	return r
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	db          *gorm.DB
	genID       *snowflake.Node
	customerSvc customerdomain.Service
	productSvc  productdomain.Service
	orderSvc    orderdomain.Service
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	Cfg         config.Config
	DB          *gorm.DB
	GenID       *snowflake.Node
	CustomerSvc customerdomain.Service
	ProductSvc  productdomain.Service
	OrderSvc    orderdomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:      p.Gin,
		cfg:         p.Cfg,
		db:          p.DB,
		genID:       p.GenID,
		customerSvc: p.CustomerSvc,
		productSvc:  p.ProductSvc,
		orderSvc:    p.OrderSvc,
	}
}

func (s *Server) RegisterAPIRoutes() {
	api := s.engine.Group("/api")

	api.POST("/customers", s.CreateCustomer)
	api.POST("/customers/bulk", s.BulkCreateCustomers)
	api.GET("/customers", s.ListCustomers)
	api.GET("/customers/:id", s.GetCustomerByID)

	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.ListProducts)
	api.GET("/products/:id", s.GetProductByID)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrderByID)
}

func registerRoutes(s *Server) {
	s.RegisterAPIRoutes()
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
