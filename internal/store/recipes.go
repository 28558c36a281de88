package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ovenworks/bakeplan/internal/planner"
)

// Recipes reads recipe yields and ingredient lists from Postgres.
type Recipes struct {
	pool *pgxpool.Pool
}

func NewRecipes(pool *pgxpool.Pool) *Recipes {
	return &Recipes{pool: pool}
}

// GetRecipe returns (nil, nil) when the recipe id does not exist; dangling
// recipe references in the catalog are data gaps, not failures.
func (s *Recipes) GetRecipe(ctx context.Context, recipeID string) (*planner.Recipe, error) {
	var r planner.Recipe
	err := s.pool.QueryRow(ctx, `
SELECT id, COALESCE(name, ''), COALESCE(yield_quantity, 0), COALESCE(yield_unit, '')
FROM recipes
WHERE id = $1
`, recipeID).Scan(&r.ID, &r.Name, &r.YieldQuantity, &r.YieldUnit)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query recipe: %w", err)
	}
	return &r, nil
}

func (s *Recipes) ListIngredients(ctx context.Context, recipeID string) ([]planner.RecipeIngredient, error) {
	rows, err := s.pool.Query(ctx, `
SELECT COALESCE(name, ''), COALESCE(quantity, 0), COALESCE(unit, '')
FROM recipe_ingredients
WHERE recipe_id = $1
ORDER BY name
`, recipeID)
	if err != nil {
		return nil, fmt.Errorf("query recipe ingredients: %w", err)
	}
	defer rows.Close()

	var out []planner.RecipeIngredient
	for rows.Next() {
		var ing planner.RecipeIngredient
		if err := rows.Scan(&ing.Name, &ing.Quantity, &ing.Unit); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		out = append(out, ing)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}
