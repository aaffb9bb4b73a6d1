package server

import (
	"net/http"
	"strings"

	productdomain "github.com/Joelnoble-001/alx-backend-graphql-crm/internal/product/domain"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

type createProductRequest struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
	Stock *int     `json:"stock"`
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if req.Price == nil {
		AbortWithError(c, newValidationError("price", "required", "price is required"))
		return
	}

	resp, err := s.productSvc.Create(c.Request.Context(), productdomain.CreateProductRequest{
		Name:  strings.TrimSpace(req.Name),
		Price: *req.Price,
		Stock: req.Stock,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListProducts(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Name     string `form:"name"`
		PriceMin string `form:"price_min"`
		PriceMax string `form:"price_max"`
		StockMin string `form:"stock_min"`
		StockMax string `form:"stock_max"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	priceMin, err := parseOptionalFloat(query.PriceMin)
	if err != nil {
		AbortWithError(c, newValidationError("price_min", "invalid_price_min", "invalid price_min"))
		return
	}
	priceMax, err := parseOptionalFloat(query.PriceMax)
	if err != nil {
		AbortWithError(c, newValidationError("price_max", "invalid_price_max", "invalid price_max"))
		return
	}
	stockMin, err := parseOptionalInt(query.StockMin)
	if err != nil {
		AbortWithError(c, newValidationError("stock_min", "invalid_stock_min", "invalid stock_min"))
		return
	}
	stockMax, err := parseOptionalInt(query.StockMax)
	if err != nil {
		AbortWithError(c, newValidationError("stock_max", "invalid_stock_max", "invalid stock_max"))
		return
	}

	resp, err := s.productSvc.List(c.Request.Context(), productdomain.ListProductsRequest{
		PageToken: query.PageToken,
		PageSize:  int32(query.PageSize),
		Name:      strings.TrimSpace(query.Name),
		PriceMin:  priceMin,
		PriceMax:  priceMax,
		StockMin:  stockMin,
		StockMax:  stockMax,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetProductByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.productSvc.GetByID(c.Request.Context(), productdomain.GetProductRequest{
		ID: id,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isProductValidationError(err error) bool {
	switch err {
	case productdomain.ErrInvalidName,
		productdomain.ErrInvalidPrice,
		productdomain.ErrInvalidStock,
		productdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
