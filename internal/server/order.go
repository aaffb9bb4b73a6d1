package server

import (
	"net/http"
	"strings"

	orderdomain "github.com/Joelnoble-001/alx-backend-graphql-crm/internal/order/domain"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

type createOrderRequest struct {
	CustomerID string   `json:"customer_id"`
	ProductIDs []string `json:"product_ids"`
	OrderDate  string   `json:"order_date"`
}

func (s *Server) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	orderDate, err := parseOptionalTime(req.OrderDate, false)
	if err != nil {
		AbortWithError(c, newValidationError("order_date", "invalid_order_date", "invalid order_date"))
		return
	}

	resp, err := s.orderSvc.Create(c.Request.Context(), orderdomain.CreateOrderRequest{
		CustomerID: strings.TrimSpace(req.CustomerID),
		ProductIDs: req.ProductIDs,
		OrderDate:  orderDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListOrders(c *gin.Context) {
	var query struct {
		pagination.Pagination
		CustomerID    string `form:"customer_id"`
		OrderDateFrom string `form:"order_date_from"`
		OrderDateTo   string `form:"order_date_to"`
		TotalMin      string `form:"total_min"`
		TotalMax      string `form:"total_max"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	orderDateFrom, err := parseOptionalTime(query.OrderDateFrom, false)
	if err != nil {
		AbortWithError(c, newValidationError("order_date_from", "invalid_order_date_from", "invalid order_date_from"))
		return
	}
	orderDateTo, err := parseOptionalTime(query.OrderDateTo, true)
	if err != nil {
		AbortWithError(c, newValidationError("order_date_to", "invalid_order_date_to", "invalid order_date_to"))
		return
	}
	totalMin, err := parseOptionalFloat(query.TotalMin)
	if err != nil {
		AbortWithError(c, newValidationError("total_min", "invalid_total_min", "invalid total_min"))
		return
	}
	totalMax, err := parseOptionalFloat(query.TotalMax)
	if err != nil {
		AbortWithError(c, newValidationError("total_max", "invalid_total_max", "invalid total_max"))
		return
	}

	resp, err := s.orderSvc.List(c.Request.Context(), orderdomain.ListOrdersRequest{
		PageToken:     query.PageToken,
		PageSize:      int32(query.PageSize),
		CustomerID:    strings.TrimSpace(query.CustomerID),
		OrderDateFrom: orderDateFrom,
		OrderDateTo:   orderDateTo,
		TotalMin:      totalMin,
		TotalMax:      totalMax,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetOrderByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.orderSvc.GetByID(c.Request.Context(), orderdomain.GetOrderRequest{
		ID: id,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isOrderValidationError(err error) bool {
	switch err {
	case orderdomain.ErrInvalidID,
		orderdomain.ErrEmptySelection:
		return true
	default:
		return false
	}
}
