package queries

import (
	"errors"
	"fmt"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/pkg/errs"
	"mes/internal/pkg/guard"
)

const (
	// MaxPageSize bounds a single active orders page.
	MaxPageSize = 500

	defaultPageSize = 50
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves a page of orders still moving through the
// shop: everything except completed and cancelled ones. This is a plain
// read model for dashboards; it does not load aggregates.
type GetActiveOrdersQuery struct { //nolint:recvcheck //using for validation
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a paged active orders query. Pages are
// 1-based; a pageSize of 0 falls back to the default of 50.
func NewGetActiveOrdersQuery(page, pageSize int) (GetActiveOrdersQuery, error) {
	query := GetActiveOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setPage(page),
		query.setPageSize(pageSize),
	); err != nil {
		return GetActiveOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveOrdersQueryIsNotConstructed if validation fails.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q GetActiveOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q GetActiveOrdersQuery) PageSize() int {
	return q.pageSize
}

// Offset returns the row offset of the requested page.
func (q GetActiveOrdersQuery) Offset() int {
	return (q.page - 1) * q.pageSize
}

func (q *GetActiveOrdersQuery) setPage(page int) error {
	if page < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"page is invalid",
			fmt.Errorf("%d is not greater than 0", page),
		)
	}

	q.page = page
	return nil
}

func (q *GetActiveOrdersQuery) setPageSize(pageSize int) error {
	if pageSize == 0 {
		q.pageSize = defaultPageSize
		return nil
	}
	if pageSize < 0 || pageSize > MaxPageSize {
		return errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, MaxPageSize)
	}

	q.pageSize = pageSize
	return nil
}

// GetActiveOrdersQueryResponse represents one active order row.
type GetActiveOrdersQueryResponse struct {
	ID       kernel.UUID
	Status   string
	Priority int
	Quantity float64
	Unit     string
}
