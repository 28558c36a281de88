// Package planner computes production requirements for a bakery site and
// delivery date: how much of each base dough to mix, how many lamination
// sheets to pull, the scaled ingredient lists, and the day mixing must
// start. It only ever reads from its stores; the plan is a pure function of
// store state and the request.
package planner

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrSiteNotFound is returned when the site id does not resolve in the
// catalog.
var ErrSiteNotFound = errors.New("site not found")

const dateLayout = "2006-01-02"

// Planner wires the three read stores into the planning pipeline.
type Planner struct {
	orders  OrderStore
	catalog CatalogStore
	recipes RecipeStore
}

func New(orders OrderStore, catalog CatalogStore, recipes RecipeStore) *Planner {
	return &Planner{orders: orders, catalog: catalog, recipes: recipes}
}

// recipeData is a recipe with its ingredient list, cached per request so a
// recipe shared between a dough and its styles is fetched once.
type recipeData struct {
	recipe      *Recipe
	ingredients []RecipeIngredient
}

// BuildPlan computes the production plan for a site and delivery date.
// Any store read error aborts the whole computation: a partial plan would
// understate production needs.
func (p *Planner) BuildPlan(ctx context.Context, siteID string, deliveryDate time.Time) (*ProductionPlan, error) {
	ok, err := p.catalog.SiteExists(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("check site: %w", err)
	}
	if !ok {
		return nil, ErrSiteNotFound
	}

	// The remaining reads are independent until classification joins them.
	var (
		lines      []OrderLine
		orderCount int
		doughs     []BaseDough
		products   []Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if lines, err = p.orders.ListLines(gctx, siteID, deliveryDate); err != nil {
			return fmt.Errorf("list order lines: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if orderCount, err = p.orders.CountOrders(gctx, siteID, deliveryDate); err != nil {
			return fmt.Errorf("count orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if doughs, err = p.catalog.ListBaseDoughs(gctx, siteID); err != nil {
			return fmt.Errorf("list base doughs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if products, err = p.catalog.ListProducts(gctx, siteID); err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	demand := AggregateDemand(lines)
	idx := indexCatalog(doughs)
	buckets := buildDoughDemand(demand, products, idx)

	recipeCache := make(map[string]recipeData)
	mixes := make([]DoughMixResult, 0, len(buckets))
	maxLeadDays := 0

	for _, b := range buckets {
		calc := calcDough(b)
		if !calc.hasDemand(b) {
			continue
		}

		mix, err := p.buildDoughMix(ctx, b, calc, recipeCache)
		if err != nil {
			return nil, err
		}
		mixes = append(mixes, mix)
		if b.dough.MixLeadDays > maxLeadDays {
			maxLeadDays = b.dough.MixLeadDays
		}
	}

	// Name order keeps output stable across runs regardless of fetch order.
	sort.Slice(mixes, func(i, j int) bool { return mixes[i].DoughName < mixes[j].DoughName })

	plan := &ProductionPlan{
		DeliveryDate: deliveryDate.Format(dateLayout),
		MixDay:       deliveryDate.AddDate(0, 0, -maxLeadDays).Format(dateLayout),
		OrderSummary: OrderSummary{ConfirmedOrders: orderCount, PendingOrders: 0},
		DoughMixes:   mixes,
		SheetSummary: buildSheetSummary(mixes),
	}
	return plan, nil
}

// buildDoughMix runs the scaling ladder for one dough bucket and assembles
// its report entry.
func (p *Planner) buildDoughMix(ctx context.Context, b *doughDemand, calc doughCalc, cache map[string]recipeData) (DoughMixResult, error) {
	rd, err := p.loadRecipe(ctx, b.dough.RecipeID, cache)
	if err != nil {
		return DoughMixResult{}, err
	}

	in := scaleInput{
		totalDoughKg: calc.totalDoughKg(),
		sheetsNeeded: calc.totalSheets,
		recipe:       rd.recipe,
		ingredients:  rd.ingredients,
	}
	if calc.batchesNeeded != nil {
		in.batchesNeeded = *calc.batchesNeeded
	}
	if rd.recipe != nil {
		if yieldKg, err := NormalizeYieldToKg(rd.recipe.YieldQuantity, rd.recipe.YieldUnit); err == nil {
			in.yieldKg = yieldKg
			in.yieldKnown = true
		}
	}
	scaled := ScaleDough(in)

	mix := DoughMixResult{
		DoughID:          b.dough.ID,
		DoughName:        b.dough.Name,
		MixLeadDays:      b.dough.MixLeadDays,
		RecipeID:         b.dough.RecipeID,
		TotalKg:          scaled.totalKg.InexactFloat64(),
		TotalBatches:     calc.batchesNeeded,
		UnitsPerBatch:    b.dough.UnitsPerBatch,
		Ingredients:      scaled.ingredients,
		LaminationStyles: make([]StyleMixResult, 0, len(b.styles)),
		DirectProducts:   append([]ProductQuantity{}, b.direct...),
	}
	if rd.recipe != nil {
		mix.RecipeName = &rd.recipe.Name
	}
	if b.dough.BatchSizeKg.Valid {
		kg := b.dough.BatchSizeKg.Decimal.InexactFloat64()
		mix.BatchSizeKg = &kg
	}

	for _, sb := range b.styles {
		styleMix, err := p.buildStyleMix(ctx, b.dough, sb, cache)
		if err != nil {
			return DoughMixResult{}, err
		}
		mix.LaminationStyles = append(mix.LaminationStyles, styleMix)
	}
	return mix, nil
}

// buildStyleMix assembles one style entry. A style recipe, when linked and
// present, is scaled by the sheet count.
func (p *Planner) buildStyleMix(ctx context.Context, dough *BaseDough, sb *styleDemand, cache map[string]recipeData) (StyleMixResult, error) {
	rd, err := p.loadRecipe(ctx, sb.style.RecipeID, cache)
	if err != nil {
		return StyleMixResult{}, err
	}

	mix := StyleMixResult{
		StyleID:          sb.style.ID,
		StyleName:        sb.style.Name,
		BaseDoughID:      dough.ID,
		BaseDoughName:    dough.Name,
		ProductsPerSheet: sb.style.ProductsPerSheet,
		LaminateLeadDays: sb.style.LaminateLeadDays,
		RecipeID:         sb.style.RecipeID,
		TotalProducts:    sb.totalProducts,
		SheetsNeeded:     sb.sheetsNeeded,
		Ingredients:      []ScaledIngredient{},
		Products:         append([]ProductQuantity{}, sb.products...),
	}
	if rd.recipe != nil {
		mix.RecipeName = &rd.recipe.Name
		if sb.sheetsNeeded > 0 {
			mix.Ingredients = scaleIngredients(rd.ingredients, intDecimal(sb.sheetsNeeded))
		}
	}
	return mix, nil
}

// loadRecipe fetches a recipe and its ingredients through the per-request
// cache. A nil id or a recipe missing from the store yields empty data.
func (p *Planner) loadRecipe(ctx context.Context, recipeID *string, cache map[string]recipeData) (recipeData, error) {
	if recipeID == nil {
		return recipeData{}, nil
	}
	if rd, ok := cache[*recipeID]; ok {
		return rd, nil
	}
	recipe, err := p.recipes.GetRecipe(ctx, *recipeID)
	if err != nil {
		return recipeData{}, fmt.Errorf("get recipe %s: %w", *recipeID, err)
	}
	rd := recipeData{recipe: recipe}
	if recipe != nil {
		if rd.ingredients, err = p.recipes.ListIngredients(ctx, *recipeID); err != nil {
			return recipeData{}, fmt.Errorf("list ingredients %s: %w", *recipeID, err)
		}
	}
	cache[*recipeID] = rd
	return rd, nil
}

// buildSheetSummary totals sheets across all dough mixes; nil when the plan
// needs no laminated sheets at all.
func buildSheetSummary(mixes []DoughMixResult) *SheetSummary {
	summary := &SheetSummary{ByStyle: []StyleSheetLine{}}
	for _, mix := range mixes {
		for _, style := range mix.LaminationStyles {
			if style.SheetsNeeded == 0 {
				continue
			}
			summary.TotalSheets += style.SheetsNeeded
			summary.ByStyle = append(summary.ByStyle, StyleSheetLine{
				StyleName:        style.StyleName,
				DoughName:        mix.DoughName,
				Sheets:           style.SheetsNeeded,
				Products:         style.TotalProducts,
				ProductsPerSheet: style.ProductsPerSheet,
				LaminateLeadDays: style.LaminateLeadDays,
			})
		}
	}
	if summary.TotalSheets == 0 {
		return nil
	}
	return summary
}
