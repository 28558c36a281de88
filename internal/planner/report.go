package planner

// ProductionPlan is the computed plan for one site and delivery date. It is
// built fresh per request and never persisted.
type ProductionPlan struct {
	DeliveryDate string           `json:"delivery_date"`
	MixDay       string           `json:"mix_day"`
	OrderSummary OrderSummary     `json:"order_summary"`
	DoughMixes   []DoughMixResult `json:"dough_mixes"`
	SheetSummary *SheetSummary    `json:"sheet_summary"`
}

// OrderSummary counts the orders behind the plan. PendingOrders is a
// literal 0: pending orders are not production-relevant and the count has
// never been surfaced here.
type OrderSummary struct {
	ConfirmedOrders int `json:"confirmed_orders"`
	PendingOrders   int `json:"pending_orders"`
}

// ProductQuantity pairs a product display name with its ordered units.
type ProductQuantity struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DoughMixResult is the requirement for one base dough with demand.
type DoughMixResult struct {
	DoughID          string             `json:"dough_id"`
	DoughName        string             `json:"dough_name"`
	MixLeadDays      int                `json:"mix_lead_days"`
	RecipeID         *string            `json:"recipe_id"`
	RecipeName       *string            `json:"recipe_name"`
	TotalKg          float64            `json:"total_kg"`
	TotalBatches     *int               `json:"total_batches"`
	BatchSizeKg      *float64           `json:"batch_size_kg"`
	UnitsPerBatch    *int               `json:"units_per_batch"`
	Ingredients      []ScaledIngredient `json:"ingredients"`
	LaminationStyles []StyleMixResult   `json:"lamination_styles"`
	DirectProducts   []ProductQuantity  `json:"direct_products"`
}

// StyleMixResult is the sheet requirement for one lamination style.
type StyleMixResult struct {
	StyleID          string             `json:"style_id"`
	StyleName        string             `json:"style_name"`
	BaseDoughID      string             `json:"base_dough_id"`
	BaseDoughName    string             `json:"base_dough_name"`
	ProductsPerSheet int                `json:"products_per_sheet"`
	LaminateLeadDays *int               `json:"laminate_lead_days"`
	RecipeID         *string            `json:"recipe_id"`
	RecipeName       *string            `json:"recipe_name"`
	TotalProducts    int                `json:"total_products"`
	SheetsNeeded     int                `json:"sheets_needed"`
	Ingredients      []ScaledIngredient `json:"ingredients"`
	Products         []ProductQuantity  `json:"products"`
}

// SheetSummary aggregates laminated sheets across the whole plan. Omitted
// (null) when no sheets are needed anywhere.
type SheetSummary struct {
	TotalSheets int              `json:"total_sheets"`
	ByStyle     []StyleSheetLine `json:"by_style"`
}

// StyleSheetLine is one row of the sheet summary.
type StyleSheetLine struct {
	StyleName        string `json:"style_name"`
	DoughName        string `json:"dough_name"`
	Sheets           int    `json:"sheets"`
	Products         int    `json:"products"`
	ProductsPerSheet int    `json:"products_per_sheet"`
	LaminateLeadDays *int   `json:"laminate_lead_days"`
}
