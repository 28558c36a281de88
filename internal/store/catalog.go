package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ovenworks/bakeplan/internal/planner"
)

// Catalog reads site, dough, style and product data from Postgres.
type Catalog struct {
	pool *pgxpool.Pool
}

func NewCatalog(pool *pgxpool.Pool) *Catalog {
	return &Catalog{pool: pool}
}

func (s *Catalog) SiteExists(ctx context.Context, siteID string) (bool, error) {
	var exists bool
	if err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sites WHERE id = $1)`, siteID).Scan(&exists); err != nil {
		return false, fmt.Errorf("query site: %w", err)
	}
	return exists, nil
}

// ListBaseDoughs returns the site's active doughs with lamination styles
// nested. Styles are fetched in one query and grouped in memory.
func (s *Catalog) ListBaseDoughs(ctx context.Context, siteID string) ([]planner.BaseDough, error) {
	rows, err := s.pool.Query(ctx, `
SELECT id, COALESCE(name, ''), recipe_id, COALESCE(mix_lead_days, 0), batch_size_kg, units_per_batch
FROM base_doughs
WHERE site_id = $1 AND active
ORDER BY name
`, siteID)
	if err != nil {
		return nil, fmt.Errorf("query base doughs: %w", err)
	}
	defer rows.Close()

	var doughs []planner.BaseDough
	byID := map[string]int{}
	for rows.Next() {
		var d planner.BaseDough
		if err := rows.Scan(&d.ID, &d.Name, &d.RecipeID, &d.MixLeadDays, &d.BatchSizeKg, &d.UnitsPerBatch); err != nil {
			return nil, fmt.Errorf("scan base dough: %w", err)
		}
		byID[d.ID] = len(doughs)
		doughs = append(doughs, d)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}

	styleRows, err := s.pool.Query(ctx, `
SELECT s.id, s.base_dough_id, COALESCE(s.name, ''), s.recipe_id,
       COALESCE(s.products_per_sheet, 0), s.dough_per_sheet_g, s.laminate_lead_days
FROM lamination_styles s
JOIN base_doughs d ON d.id = s.base_dough_id
WHERE d.site_id = $1 AND d.active
ORDER BY s.name
`, siteID)
	if err != nil {
		return nil, fmt.Errorf("query lamination styles: %w", err)
	}
	defer styleRows.Close()

	for styleRows.Next() {
		var st planner.LaminationStyle
		if err := styleRows.Scan(&st.ID, &st.BaseDoughID, &st.Name, &st.RecipeID,
			&st.ProductsPerSheet, &st.DoughPerSheetG, &st.LaminateLeadDays); err != nil {
			return nil, fmt.Errorf("scan lamination style: %w", err)
		}
		if i, ok := byID[st.BaseDoughID]; ok {
			doughs[i].Styles = append(doughs[i].Styles, st)
		}
	}
	if styleRows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", styleRows.Err())
	}
	return doughs, nil
}

func (s *Catalog) ListProducts(ctx context.Context, siteID string) ([]planner.Product, error) {
	rows, err := s.pool.Query(ctx, `
SELECT id, COALESCE(name, ''), base_dough_id, lamination_style_id
FROM products
WHERE site_id = $1
ORDER BY name
`, siteID)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var out []planner.Product
	for rows.Next() {
		var p planner.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.BaseDoughID, &p.LaminationStyleID); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}
