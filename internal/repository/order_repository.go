package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// OrderRepository encapsulates the order ledger. CreateBatch is the one
// multi-statement operation and runs inside a single transaction: either
// every order in the slice is persisted or none are.
type OrderRepository interface {
	CreateBatch(ctx context.Context, orders []*domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	Delete(ctx context.Context, id int64) error
	ListJoined(ctx context.Context, status *domain.OrderStatus) ([]domain.OrderSummary, error)
	ListByUser(ctx context.Context, userID string) ([]domain.OrderSummary, error)
	Stats(ctx context.Context) (domain.OrderStats, error)
	Revenue(ctx context.Context) (decimal.Decimal, error)
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository instantiates repository.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) CreateBatch(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const query = `
        INSERT INTO orders (user_id, product_id, quantity, delivery_date, status)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`
	for _, order := range orders {
		if err := tx.QueryRow(ctx, query,
			order.UserID,
			order.ProductID,
			order.Quantity,
			order.DeliveryDate,
			order.Status,
		).Scan(&order.ID, &order.CreatedAt); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const query = `
        SELECT id, user_id, product_id, quantity, delivery_date, status, created_at
        FROM orders WHERE id=$1`

	var order domain.Order
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.ProductID,
		&order.Quantity,
		&order.DeliveryDate,
		&order.Status,
		&order.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	const query = `UPDATE orders SET status=$1 WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM orders WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const summaryQuery = `
        SELECT o.id, u.name, p.name, p.price, o.quantity, o.delivery_date, o.status
        FROM orders o
        JOIN users u ON o.user_id = u.id
        JOIN products p ON o.product_id = p.id`

func (r *orderRepository) ListJoined(ctx context.Context, status *domain.OrderStatus) ([]domain.OrderSummary, error) {
	query := summaryQuery + ` ORDER BY o.id`
	args := []any{}
	if status != nil {
		query = summaryQuery + ` WHERE o.status=$1 ORDER BY o.id`
		args = append(args, *status)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows)
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]domain.OrderSummary, error) {
	query := summaryQuery + ` WHERE o.user_id=$1 ORDER BY o.id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSummaries(rows)
}

func (r *orderRepository) Stats(ctx context.Context) (domain.OrderStats, error) {
	const query = `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status = 'pending'),
               COUNT(*) FILTER (WHERE status = 'delivered')
        FROM orders`

	var stats domain.OrderStats
	if err := r.pool.QueryRow(ctx, query).Scan(
		&stats.Total,
		&stats.Pending,
		&stats.Delivered,
	); err != nil {
		return domain.OrderStats{}, err
	}
	return stats, nil
}

func (r *orderRepository) Revenue(ctx context.Context) (decimal.Decimal, error) {
	// COALESCE keeps the no-sales case a defined zero rather than NULL.
	const query = `
        SELECT COALESCE(SUM(o.quantity * p.price), 0)
        FROM orders o
        JOIN products p ON o.product_id = p.id
        WHERE o.status = 'delivered'`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

func scanSummaries(rows pgx.Rows) ([]domain.OrderSummary, error) {
	var result []domain.OrderSummary
	for rows.Next() {
		var summary domain.OrderSummary
		if err := rows.Scan(
			&summary.ID,
			&summary.CustomerName,
			&summary.ProductName,
			&summary.UnitPrice,
			&summary.Quantity,
			&summary.DeliveryDate,
			&summary.Status,
		); err != nil {
			return nil, err
		}
		result = append(result, summary)
	}
	return result, rows.Err()
}
