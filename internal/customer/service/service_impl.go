package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Joelnoble-001/alx-backend-graphql-crm/internal/customer/domain"
	pkgdb "github.com/Joelnoble-001/alx-backend-graphql-crm/pkg/db"
	"github.com/Joelnoble-001/alx-backend-graphql-crm/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Optional leading +, one digit, then at least seven digits or hyphens.
var phonePattern = regexp.MustCompile(`^\+?\d[\d-]{7,}$`)

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
		log:   p.Log.Named("customer.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCustomerRequest) (domain.Customer, error) {
	customer, err := s.createOne(ctx, s.db, domain.CustomerInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return domain.Customer{}, err
	}

	s.log.Info("customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("email", customer.Email),
	)
	return customer, nil
}

// BulkCreate processes records in input order inside one transaction.
// Per-record failures are collected rather than aborting the batch, so
// the transaction commits the records that passed; it still guards
// against a crash mid-batch, and later duplicate checks see earlier
// in-batch inserts through the transaction.
func (s *Service) BulkCreate(ctx context.Context, req domain.BulkCreateCustomersRequest) (domain.BulkCreateCustomersResponse, error) {
	created := make([]domain.Customer, 0, len(req.Inputs))
	errorMessages := make([]string, 0)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, input := range req.Inputs {
			customer, err := s.createOne(ctx, tx, input)
			if err != nil {
				errorMessages = append(errorMessages, bulkErrorMessage(input, err))
				continue
			}
			created = append(created, customer)
		}
		return nil
	})
	if err != nil {
		return domain.BulkCreateCustomersResponse{}, err
	}

	s.log.Info("bulk customer create finished",
		zap.Int("requested", len(req.Inputs)),
		zap.Int("created", len(created)),
		zap.Int("failed", len(errorMessages)),
	)

	return domain.BulkCreateCustomersResponse{
		Customers: created,
		Errors:    errorMessages,
	}, nil
}

func (s *Service) List(ctx context.Context, req domain.ListCustomersRequest) (domain.ListCustomersResponse, error) {
	filter := domain.ListCustomersFilter{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		CreatedFrom: req.CreatedFrom,
		CreatedTo:   req.CreatedTo,
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
		return domain.ListCustomersResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(customer *domain.Customer) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        customer.ID.String(),
			CreatedAt: customer.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	customers := make([]domain.Customer, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		customers = append(customers, *item)
	}

	resp := domain.ListCustomersResponse{Customers: customers}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}

	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetCustomerRequest) (domain.Customer, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Customer{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Customer{}, err
	}
	if item == nil {
		return domain.Customer{}, domain.ErrNotFound
	}

	return *item, nil
}

// createOne validates and inserts a single customer through the given
// handle, which is either the root connection or a batch transaction.
// The duplicate check runs before the phone check.
func (s *Service) createOne(ctx context.Context, db *gorm.DB, input domain.CustomerInput) (domain.Customer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.Customer{}, domain.ErrInvalidName
	}

	email := strings.TrimSpace(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return domain.Customer{}, domain.ErrInvalidEmail
	}

	exists, err := s.repo.ExistsByEmail(ctx, db, email)
	if err != nil {
		return domain.Customer{}, err
	}
	if exists {
		return domain.Customer{}, domain.ErrDuplicateEmail
	}

	var phone *string
	if trimmed := strings.TrimSpace(input.Phone); trimmed != "" {
		if !phonePattern.MatchString(trimmed) {
			return domain.Customer{}, domain.ErrInvalidPhone
		}
		phone = &trimmed
	}

	now := time.Now().UTC()
	customer := domain.Customer{
		ID:        s.genID.Generate(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Metadata:  datatypes.JSONMap{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, db, &customer); err != nil {
		// The unique index backs the application-level check against
		// concurrent creates with the same email.
		if pkgdb.IsDuplicateKeyErr(err) {
			return domain.Customer{}, domain.ErrDuplicateEmail
		}
		return domain.Customer{}, err
	}

	return customer, nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func bulkErrorMessage(input domain.CustomerInput, err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		return fmt.Sprintf("Email %s already exists", strings.TrimSpace(input.Email))
	case errors.Is(err, domain.ErrInvalidPhone):
		return fmt.Sprintf("Invalid phone: %s", strings.TrimSpace(input.Phone))
	case errors.Is(err, domain.ErrInvalidName):
		return fmt.Sprintf("Name is required for %s", strings.TrimSpace(input.Email))
	case errors.Is(err, domain.ErrInvalidEmail):
		return fmt.Sprintf("Invalid email: %s", strings.TrimSpace(input.Email))
	default:
		return err.Error()
	}
}
