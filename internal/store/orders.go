// Package store implements the planner's read contracts against Postgres.
// Every query is read-only; the planning core never writes.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ovenworks/bakeplan/internal/planner"
)

// productionStatuses are the order states that count toward production.
var productionStatuses = []string{string(planner.StatusConfirmed), string(planner.StatusLocked)}

// Orders reads order demand from Postgres.
type Orders struct {
	pool *pgxpool.Pool
}

func NewOrders(pool *pgxpool.Pool) *Orders {
	return &Orders{pool: pool}
}

// ListLines returns order lines of confirmed/locked orders due on the date.
func (s *Orders) ListLines(ctx context.Context, siteID string, deliveryDate time.Time) ([]planner.OrderLine, error) {
	rows, err := s.pool.Query(ctx, `
SELECT ol.product_id, COALESCE(ol.quantity, 0)
FROM order_lines ol
JOIN orders o ON o.id = ol.order_id
WHERE o.site_id = $1
  AND o.delivery_date = $2
  AND o.status = ANY($3)
`, siteID, deliveryDate, productionStatuses)
	if err != nil {
		return nil, fmt.Errorf("query order lines: %w", err)
	}
	defer rows.Close()

	var out []planner.OrderLine
	for rows.Next() {
		var line planner.OrderLine
		if err := rows.Scan(&line.ProductID, &line.Quantity); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		out = append(out, line)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

// CountOrders returns how many confirmed/locked orders are due on the date.
func (s *Orders) CountOrders(ctx context.Context, siteID string, deliveryDate time.Time) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx, `
SELECT COUNT(*)
FROM orders
WHERE site_id = $1
  AND delivery_date = $2
  AND status = ANY($3)
`, siteID, deliveryDate, productionStatuses).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return count, nil
}
