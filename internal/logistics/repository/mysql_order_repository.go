package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/cargoconnect/api/internal/authz"
	"github.com/cargoconnect/api/internal/database"
	apperrors "github.com/cargoconnect/api/internal/errors"
	logisticsDomain "github.com/cargoconnect/api/internal/logistics/domain"
)

// MySQLOrderRepository implements order persistence for MySQL databases.
type MySQLOrderRepository struct {
	db *sql.DB
}

// List retrieves non-deleted orders, narrowed to one client's orders when
// the ownership filter carries a client ID. Orders without a client never
// match a filtered query.
func (m *MySQLOrderRepository) List(ctx context.Context, filter *authz.OwnershipFilter) ([]*logisticsDomain.Order, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + orderColumns + ` FROM orders WHERE deleted_at IS NULL`
	var args []any
	if filter != nil && filter.ClientID != nil {
		query += ` AND client_id = ?`
		args = append(args, *filter.ClientID)
	}
	query += ` ORDER BY id`

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list orders")
	}
	defer rows.Close()

	var orders []*logisticsDomain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate orders")
	}

	return orders, nil
}

// ListDeleted retrieves all soft-deleted orders.
func (m *MySQLOrderRepository) ListDeleted(ctx context.Context) ([]*logisticsDomain.Order, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + orderColumns + ` FROM orders WHERE deleted_at IS NOT NULL ORDER BY id`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list deleted orders")
	}
	defer rows.Close()

	var orders []*logisticsDomain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate deleted orders")
	}

	return orders, nil
}

// Get retrieves a non-deleted order by ID.
func (m *MySQLOrderRepository) Get(ctx context.Context, id int64) (*logisticsDomain.Order, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ? AND deleted_at IS NULL`

	return scanOrder(querier.QueryRowContext(ctx, query, id))
}

// Create inserts a new order and fills in the generated ID.
func (m *MySQLOrderRepository) Create(ctx context.Context, order *logisticsDomain.Order) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO orders (transportation_id, client_id, order_date, status, price, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		order.TransportationID,
		order.ClientID,
		order.Date,
		order.Status,
		order.Price,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create order")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get order ID")
	}
	order.ID = id

	return nil
}

// Update modifies a non-deleted order.
func (m *MySQLOrderRepository) Update(ctx context.Context, order *logisticsDomain.Order) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE orders
			  SET transportation_id = ?, client_id = ?, order_date = ?, status = ?, price = ?, updated_at = ?
			  WHERE id = ? AND deleted_at IS NULL`

	result, err := querier.ExecContext(
		ctx,
		query,
		order.TransportationID,
		order.ClientID,
		order.Date,
		order.Status,
		order.Price,
		time.Now().UTC(),
		order.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update order")
	}

	return requireRowAffected(result, logisticsDomain.ErrOrderNotFound)
}

// SoftDelete flags an order as deleted.
func (m *MySQLOrderRepository) SoftDelete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE orders SET deleted_at = ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL`

	now := time.Now().UTC()
	result, err := querier.ExecContext(ctx, query, now, now, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete order")
	}

	return requireRowAffected(result, logisticsDomain.ErrOrderNotFound)
}

// Restore clears the deletion flag of a soft-deleted order.
func (m *MySQLOrderRepository) Restore(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE orders SET deleted_at = NULL, updated_at = ? WHERE id = ? AND deleted_at IS NOT NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to restore order")
	}

	return requireRowAffected(result, logisticsDomain.ErrOrderNotFound)
}

// AttachCargo links a cargo to an order. Attaching an already linked cargo
// returns ErrLinkExists.
func (m *MySQLOrderRepository) AttachCargo(ctx context.Context, orderID, cargoID int64) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT IGNORE INTO cargo_orders (cargo_id, order_id) VALUES (?, ?)`

	result, err := querier.ExecContext(ctx, query, cargoID, orderID)
	if err != nil {
		return apperrors.Wrap(err, "failed to attach cargo to order")
	}

	return requireRowAffected(result, logisticsDomain.ErrLinkExists)
}

// DetachCargo removes the link between a cargo and an order.
func (m *MySQLOrderRepository) DetachCargo(ctx context.Context, orderID, cargoID int64) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM cargo_orders WHERE cargo_id = ? AND order_id = ?`

	result, err := querier.ExecContext(ctx, query, cargoID, orderID)
	if err != nil {
		return apperrors.Wrap(err, "failed to detach cargo from order")
	}

	return requireRowAffected(result, logisticsDomain.ErrLinkNotFound)
}

// NewMySQLOrderRepository creates a new MySQL order repository instance.
func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}
