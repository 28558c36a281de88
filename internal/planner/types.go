package planner

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a customer order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusLocked     OrderStatus = "locked"
	StatusDispatched OrderStatus = "dispatched"
	StatusCancelled  OrderStatus = "cancelled"
)

// OrderLine is one ordered product quantity on a confirmed or locked order.
type OrderLine struct {
	ProductID string
	Quantity  int
}

// Product links a sellable item to its single production path: either a
// base dough (mixed and shaped directly) or a lamination style (sheeted).
// A product with neither set has no path and is skipped by planning.
type Product struct {
	ID                string
	Name              string
	BaseDoughID       *string
	LaminationStyleID *string
}

// BaseDough is a mixable dough. Styles are the lamination treatments that
// consume it by the sheet.
type BaseDough struct {
	ID            string
	Name          string
	RecipeID      *string
	MixLeadDays   int
	BatchSizeKg   decimal.NullDecimal
	UnitsPerBatch *int
	Styles        []LaminationStyle
}

// LaminationStyle is a sheeting treatment applied to its base dough.
type LaminationStyle struct {
	ID               string
	BaseDoughID      string
	Name             string
	RecipeID         *string
	ProductsPerSheet int
	DoughPerSheetG   decimal.NullDecimal
	LaminateLeadDays *int
}

// Recipe declares what one mix yields.
type Recipe struct {
	ID            string
	Name          string
	YieldQuantity decimal.Decimal
	YieldUnit     string
}

// RecipeIngredient is one line of a recipe at base (unscaled) quantity.
type RecipeIngredient struct {
	Name     string
	Quantity decimal.Decimal
	Unit     string
}

// OrderStore reads order demand for a site and delivery date. Only
// confirmed and locked orders count.
type OrderStore interface {
	// ListLines returns the order lines of confirmed/locked orders due on
	// deliveryDate at the site.
	ListLines(ctx context.Context, siteID string, deliveryDate time.Time) ([]OrderLine, error)
	// CountOrders returns how many confirmed/locked orders are due.
	CountOrders(ctx context.Context, siteID string, deliveryDate time.Time) (int, error)
}

// CatalogStore reads the production catalog for a site.
type CatalogStore interface {
	SiteExists(ctx context.Context, siteID string) (bool, error)
	// ListBaseDoughs returns active doughs with their lamination styles nested.
	ListBaseDoughs(ctx context.Context, siteID string) ([]BaseDough, error)
	ListProducts(ctx context.Context, siteID string) ([]Product, error)
}

// RecipeStore reads recipe yields and ingredient lists.
type RecipeStore interface {
	// GetRecipe returns (nil, nil) when the recipe does not exist; a missing
	// recipe is a data gap, not a failure.
	GetRecipe(ctx context.Context, recipeID string) (*Recipe, error)
	ListIngredients(ctx context.Context, recipeID string) ([]RecipeIngredient, error)
}
