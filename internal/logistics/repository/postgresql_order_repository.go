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

const orderColumns = `id, transportation_id, client_id, order_date, status, price, created_at, updated_at, deleted_at`

func scanOrder(scanner interface{ Scan(...any) error }) (*logisticsDomain.Order, error) {
	var order logisticsDomain.Order
	err := scanner.Scan(
		&order.ID,
		&order.TransportationID,
		&order.ClientID,
		&order.Date,
		&order.Status,
		&order.Price,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.DeletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, logisticsDomain.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "failed to scan order")
	}
	order.IsDeleted = order.DeletedAt != nil
	return &order, nil
}

// PostgreSQLOrderRepository implements order persistence for PostgreSQL databases.
type PostgreSQLOrderRepository struct {
	db *sql.DB
}

// List retrieves non-deleted orders, narrowed to one client's orders when
// the ownership filter carries a client ID. Orders without a client never
// match a filtered query.
func (p *PostgreSQLOrderRepository) List(ctx context.Context, filter *authz.OwnershipFilter) ([]*logisticsDomain.Order, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + orderColumns + ` FROM orders WHERE deleted_at IS NULL`
	var args []any
	if filter != nil && filter.ClientID != nil {
		query += ` AND client_id = $1`
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
func (p *PostgreSQLOrderRepository) ListDeleted(ctx context.Context) ([]*logisticsDomain.Order, error) {
	querier := database.GetTx(ctx, p.db)

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
func (p *PostgreSQLOrderRepository) Get(ctx context.Context, id int64) (*logisticsDomain.Order, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 AND deleted_at IS NULL`

	return scanOrder(querier.QueryRowContext(ctx, query, id))
}

// Create inserts a new order and fills in the generated ID.
func (p *PostgreSQLOrderRepository) Create(ctx context.Context, order *logisticsDomain.Order) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO orders (transportation_id, client_id, order_date, status, price, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		order.TransportationID,
		order.ClientID,
		order.Date,
		order.Status,
		order.Price,
		order.CreatedAt,
		order.UpdatedAt,
	).Scan(&order.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create order")
	}

	return nil
}

// Update modifies a non-deleted order.
func (p *PostgreSQLOrderRepository) Update(ctx context.Context, order *logisticsDomain.Order) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE orders
			  SET transportation_id = $1, client_id = $2, order_date = $3, status = $4, price = $5, updated_at = $6
			  WHERE id = $7 AND deleted_at IS NULL`

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
func (p *PostgreSQLOrderRepository) SoftDelete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE orders SET deleted_at = $1, updated_at = $1 WHERE id = $2 AND deleted_at IS NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete order")
	}

	return requireRowAffected(result, logisticsDomain.ErrOrderNotFound)
}

// Restore clears the deletion flag of a soft-deleted order.
func (p *PostgreSQLOrderRepository) Restore(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE orders SET deleted_at = NULL, updated_at = $1 WHERE id = $2 AND deleted_at IS NOT NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to restore order")
	}

	return requireRowAffected(result, logisticsDomain.ErrOrderNotFound)
}

// AttachCargo links a cargo to an order. Attaching an already linked cargo
// returns ErrLinkExists.
func (p *PostgreSQLOrderRepository) AttachCargo(ctx context.Context, orderID, cargoID int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO cargo_orders (cargo_id, order_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`

	result, err := querier.ExecContext(ctx, query, cargoID, orderID)
	if err != nil {
		return apperrors.Wrap(err, "failed to attach cargo to order")
	}

	return requireRowAffected(result, logisticsDomain.ErrLinkExists)
}

// DetachCargo removes the link between a cargo and an order.
func (p *PostgreSQLOrderRepository) DetachCargo(ctx context.Context, orderID, cargoID int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM cargo_orders WHERE cargo_id = $1 AND order_id = $2`

	result, err := querier.ExecContext(ctx, query, cargoID, orderID)
	if err != nil {
		return apperrors.Wrap(err, "failed to detach cargo from order")
	}

	return requireRowAffected(result, logisticsDomain.ErrLinkNotFound)
}

// NewPostgreSQLOrderRepository creates a new PostgreSQL order repository instance.
func NewPostgreSQLOrderRepository(db *sql.DB) *PostgreSQLOrderRepository {
	return &PostgreSQLOrderRepository{db: db}
}
