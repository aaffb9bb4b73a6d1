package option

import (
	"strconv"
	"time"

	"github.com/Joelnoble-001/alx-backend-graphql-crm/pkg/db/pagination"
	"gorm.io/gorm"
)

// Option mutates a gorm statement before execution.
type Option interface {
	Apply(stmt *gorm.DB) *gorm.DB
}

type paginationOption struct {
	page pagination.Pagination
}

// ApplyPagination applies the cursor token and fetches one row past the
// page size so callers can detect whether more rows exist.
func ApplyPagination(page pagination.Pagination) Option {
	return paginationOption{page: page}
}

func (o paginationOption) Apply(stmt *gorm.DB) *gorm.DB {
	limit := o.page.PageSize
	if limit <= 0 {
		limit = 10
	}

	if o.page.PageToken != "" {
		cursor, err := pagination.DecodeCursor(o.page.PageToken)
		if err == nil && cursor != nil && cursor.ID != "" {
			// The id column is a bigint; bind the cursor id as int64 so
			// the postgres driver does not have to coerce a string.
			id, idErr := strconv.ParseInt(cursor.ID, 10, 64)
			ts, tsErr := time.Parse(time.RFC3339, cursor.CreatedAt)
			if idErr == nil && tsErr == nil {
				stmt = stmt.Where("(created_at < ?) OR (created_at = ? AND id < ?)", ts, ts, id)
			}
		}
	}

	return stmt.Limit(limit + 1)
}
