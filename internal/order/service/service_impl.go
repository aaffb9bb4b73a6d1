package service

import (
	"context"
	"strings"
	"time"

	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/clock"
	customerdomain "github.com/Joelnoble-001/alx-backend-graphql-crm/internal/customer/domain"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/order/domain"
	productdomain "github.com/Joelnoble-001/alx-backend-graphql-crm/internal/product/domain"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Clock     clock.Clock
	Repo      domain.Repository
	Customers customerdomain.Repository
	Products  productdomain.Repository
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	genID     *snowflake.Node
	clock     clock.Clock
	repo      domain.Repository
	customers customerdomain.Repository
	products  productdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("order.service"),
		genID:     p.GenID,
		clock:     p.Clock,
		repo:      p.Repo,
		customers: p.Customers,
		products:  p.Products,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	customerID, err := snowflake.ParseString(strings.TrimSpace(req.CustomerID))
	if err != nil || customerID == 0 {
		return domain.Order{}, domain.ErrInvalidID
	}

	// Checked before touching the store at all.
	if len(req.ProductIDs) == 0 {
		return domain.Order{}, domain.ErrEmptySelection
	}

	customer, err := s.customers.FindByID(ctx, s.db, customerID)
	if err != nil {
		return domain.Order{}, err
	}
	if customer == nil {
		return domain.Order{}, domain.ErrCustomerNotFound
	}

	// Ids that parse but match nothing are dropped silently, same as
	// ids that never parse.
	productIDs := make([]snowflake.ID, 0, len(req.ProductIDs))
	for _, raw := range req.ProductIDs {
		id, err := snowflake.ParseString(strings.TrimSpace(raw))
		if err != nil || id == 0 {
			continue
		}
		productIDs = append(productIDs, id)
	}

	products, err := s.products.FindByIDs(ctx, s.db, productIDs)
	if err != nil {
		return domain.Order{}, err
	}
	if len(products) == 0 {
		return domain.Order{}, domain.ErrNoProducts
	}

	orderDate := s.clock.Now().UTC()
	if req.OrderDate != nil {
		orderDate = req.OrderDate.UTC()
	}

	var total float64
	for _, product := range products {
		total += product.Price
	}

	now := s.clock.Now().UTC()
	order := domain.Order{
		ID:          s.genID.Generate(),
		CustomerID:  customerID,
		Products:    products,
		OrderDate:   orderDate,
		TotalAmount: total,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// One transaction for the order row and its association rows: the
	// persisted total always reflects the final associated set.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Insert(ctx, tx, &order)
	})
	if err != nil {
		return domain.Order{}, err
	}

	s.log.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.String("customer_id", order.CustomerID.String()),
		zap.Int("products", len(order.Products)),
		zap.Float64("total_amount", order.TotalAmount),
	)
	return order, nil
}

func (s *Service) List(ctx context.Context, req domain.ListOrdersRequest) (domain.ListOrdersResponse, error) {
	filter := domain.ListOrdersFilter{
		OrderDateFrom: req.OrderDateFrom,
		OrderDateTo:   req.OrderDateTo,
		TotalMin:      req.TotalMin,
		TotalMax:      req.TotalMax,
	}

	if raw := strings.TrimSpace(req.CustomerID); raw != "" {
		id, err := snowflake.ParseString(raw)
		if err != nil || id == 0 {
			return domain.ListOrdersResponse{}, domain.ErrInvalidID
		}
		filter.CustomerID = id.String()
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, s.db, filter, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListOrdersResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(order *domain.Order) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        order.ID.String(),
			CreatedAt: order.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	orders := make([]domain.Order, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		orders = append(orders, *item)
	}

	resp := domain.ListOrdersResponse{Orders: orders}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}

	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetOrderRequest) (domain.Order, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil || id == 0 {
		return domain.Order{}, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Order{}, err
	}
	if item == nil {
		return domain.Order{}, domain.ErrNotFound
	}

	return *item, nil
}
