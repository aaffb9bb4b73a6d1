package service

import (
	"context"
	"strings"
	"time"

	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/product/domain"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("product.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateProductRequest) (domain.Product, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Product{}, domain.ErrInvalidName
	}

	if req.Price <= 0 {
		return domain.Product{}, domain.ErrInvalidPrice
	}

	stock := 0
	if req.Stock != nil {
		stock = *req.Stock
	}
	if stock < 0 {
		return domain.Product{}, domain.ErrInvalidStock
	}

	now := time.Now().UTC()
	product := domain.Product{
		ID:        s.genID.Generate(),
		Name:      name,
		Price:     req.Price,
		Stock:     stock,
		Metadata:  datatypes.JSONMap{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, &product); err != nil {
		return domain.Product{}, err
	}

	s.log.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.Float64("price", product.Price),
		zap.Int("stock", product.Stock),
	)
	return product, nil
}

func (s *Service) List(ctx context.Context, req domain.ListProductsRequest) (domain.ListProductsResponse, error) {
	filter := domain.ListProductsFilter{
		Name:     strings.TrimSpace(req.Name),
		PriceMin: req.PriceMin,
		PriceMax: req.PriceMax,
		StockMin: req.StockMin,
		StockMax: req.StockMax,
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
		return domain.ListProductsResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(product *domain.Product) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        product.ID.String(),
			CreatedAt: product.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	products := make([]domain.Product, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		products = append(products, *item)
	}

	resp := domain.ListProductsResponse{Products: products}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}

	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetProductRequest) (domain.Product, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil || id == 0 {
		return domain.Product{}, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Product{}, err
	}
	if item == nil {
		return domain.Product{}, domain.ErrNotFound
	}

	return *item, nil
}
