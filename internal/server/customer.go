package server

import (
	"net/http"
	"strings"

	customerdomain "github.com/Joelnoble-001/alx-backend-graphql-crm/internal/customer/domain"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/pkg/db/pagination"
	"github.com/gin-gonic/gin"
)

type customerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type bulkCreateCustomersRequest struct {
	Input []customerInput `json:"input"`
}

func (s *Server) CreateCustomer(c *gin.Context) {
	var req customerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.customerSvc.Create(c.Request.Context(), customerdomain.CreateCustomerRequest{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		Phone: strings.TrimSpace(req.Phone),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":    resp,
		"message": "Customer created successfully",
	})
}

func (s *Server) BulkCreateCustomers(c *gin.Context) {
	var req bulkCreateCustomersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if len(req.Input) == 0 {
		AbortWithError(c, newValidationError("input", "required", "input is required"))
		return
	}

	inputs := make([]customerdomain.CustomerInput, 0, len(req.Input))
	for _, record := range req.Input {
		inputs = append(inputs, customerdomain.CustomerInput{
			Name:  strings.TrimSpace(record.Name),
			Email: strings.TrimSpace(record.Email),
			Phone: strings.TrimSpace(record.Phone),
		})
	}

	resp, err := s.customerSvc.BulkCreate(c.Request.Context(), customerdomain.BulkCreateCustomersRequest{
		Inputs: inputs,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListCustomers(c *gin.Context) {
	var query struct {
		pagination.Pagination
		Name        string `form:"name"`
		Email       string `form:"email"`
		Phone       string `form:"phone"`
		CreatedFrom string `form:"created_from"`
		CreatedTo   string `form:"created_to"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	createdFrom, err := parseOptionalTime(query.CreatedFrom, false)
	if err != nil {
		AbortWithError(c, newValidationError("created_from", "invalid_created_from", "invalid created_from"))
		return
	}

	createdTo, err := parseOptionalTime(query.CreatedTo, true)
	if err != nil {
		AbortWithError(c, newValidationError("created_to", "invalid_created_to", "invalid created_to"))
		return
	}

	resp, err := s.customerSvc.List(c.Request.Context(), customerdomain.ListCustomersRequest{
		PageToken:   query.PageToken,
		PageSize:    int32(query.PageSize),
		Name:        strings.TrimSpace(query.Name),
		Email:       strings.TrimSpace(query.Email),
		Phone:       strings.TrimSpace(query.Phone),
		CreatedFrom: createdFrom,
		CreatedTo:   createdTo,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetCustomerByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.customerSvc.GetByID(c.Request.Context(), customerdomain.GetCustomerRequest{
		ID: id,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isCustomerValidationError(err error) bool {
	switch err {
	case customerdomain.ErrInvalidName,
		customerdomain.ErrInvalidEmail,
		customerdomain.ErrInvalidPhone,
		customerdomain.ErrInvalidID:
		return true
	default:
		return false
	}
}
