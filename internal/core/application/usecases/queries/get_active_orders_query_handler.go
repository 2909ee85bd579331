package queries

import (
	"context"

	"mes/internal/core/domain/model/kernel"
	"mes/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler lists non-terminal orders straight from the
// database. Soft-deleted rows are excluded explicitly because the raw query
// bypasses the GORM model hooks.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order pages.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one page of active orders, highest
// priority first with id breaking ties for stable paging.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			priority,
			quantity,
			unit
		FROM orders
		WHERE status NOT IN (?, ?)
		  AND deleted_at IS NULL
		ORDER BY priority DESC, id
		LIMIT ? OFFSET ?
	`, order.Completed, order.Cancelled, query.PageSize(), query.Offset()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var status int
		var resp GetActiveOrdersQueryResponse

		if err = rows.Scan(&id, &status, &resp.Priority, &resp.Quantity, &resp.Unit); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status).String()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
