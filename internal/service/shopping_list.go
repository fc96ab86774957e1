package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/recipe-service/internal/domain/model"
	"github.com/guttosm/recipe-service/internal/metrics"
	"github.com/guttosm/recipe-service/internal/service/cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const defaultLookupConcurrency = 4

var (
	// ErrEmptyInput is returned when no meal selections are given.
	ErrEmptyInput = errors.New("no recipes provided")
	// ErrLookupFailure matches every *LookupFailure via errors.Is.
	ErrLookupFailure = errors.New("recipe lookup failed")
)

// LookupFailure reports that the recipe store failed, as opposed to a recipe
// simply not existing.
type LookupFailure struct {
	RecipeID int64
	Err      error
}

func (e *LookupFailure) Error() string {
	return fmt.Sprintf("recipe lookup failed for id %d: %v", e.RecipeID, e.Err)
}

// Unwrap exposes both ErrLookupFailure and the store error.
func (e *LookupFailure) Unwrap() []error {
	return []error{ErrLookupFailure, e.Err}
}

// RecipeLookup resolves a recipe by id. A missing recipe is (nil, nil); an
// error means the store itself failed.
type RecipeLookup interface {
	GetByID(ctx context.Context, id int64) (*model.Recipe, error)
}

// RecipeLookupFunc adapts a function to RecipeLookup.
type RecipeLookupFunc func(ctx context.Context, id int64) (*model.Recipe, error)

// GetByID calls f(ctx, id).
func (f RecipeLookupFunc) GetByID(ctx context.Context, id int64) (*model.Recipe, error) {
	return f(ctx, id)
}

// ShoppingListBuilder builds consolidated shopping lists from meal selections.
type ShoppingListBuilder interface {
	Build(ctx context.Context, selections []model.MealSelection) (model.ShoppingList, error)
	// InvalidateCache drops cached lists; call it whenever a recipe changes.
	InvalidateCache()
}

// ShoppingListOption configures a ShoppingListService.
type ShoppingListOption func(*ShoppingListService)

// ShoppingListService scales, filters and merges recipe ingredients into a
// shopping list. It keeps no per-call state and is safe for concurrent use.
type ShoppingListService struct {
	lookup      RecipeLookup
	basics      *BasicIngredients
	concurrency int
	cache       cache.Cache

	// generation is bumped on every invalidation; a list computed under an
	// older generation is never stored.
	generation atomic.Uint64
	cacheMu    sync.Mutex
}

// NewShoppingListService creates a service that resolves recipes through lookup.
func NewShoppingListService(lookup RecipeLookup, opts ...ShoppingListOption) *ShoppingListService {
	s := &ShoppingListService{
		lookup:      lookup,
		basics:      DefaultBasicIngredients(),
		concurrency: defaultLookupConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithBasicIngredients replaces the pantry staples that are filtered out.
func WithBasicIngredients(b *BasicIngredients) ShoppingListOption {
	return func(s *ShoppingListService) {
		if b != nil {
			s.basics = b
		}
	}
}

// WithLookupConcurrency limits how many recipe lookups run at once.
func WithLookupConcurrency(n int) ShoppingListOption {
	return func(s *ShoppingListService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithCache enables result caching with the given capacity and TTL.
func WithCache(capacity int, ttl time.Duration) ShoppingListOption {
	return func(s *ShoppingListService) {
		if capacity > 0 {
			s.cache = NewShardedCache(capacity, ttl, 16)
		}
	}
}

// WithCacheInterface injects a custom cache implementation.
func WithCacheInterface(c cache.Cache) ShoppingListOption {
	return func(s *ShoppingListService) {
		s.cache = c
	}
}

// Build resolves every selection and returns the consolidated list. Selections
// whose recipe does not exist are skipped and reported in SkippedRecipeIDs.
func (s *ShoppingListService) Build(ctx context.Context, selections []model.MealSelection) (model.ShoppingList, error) {
	if len(selections) == 0 {
		metrics.RecordShoppingList(0, "empty_input")
		return model.ShoppingList{}, ErrEmptyInput
	}

	start := time.Now()
	key := selectionKey(selections)
	if s.cache != nil {
		if list, ok := s.cache.Get(key); ok {
			metrics.RecordShoppingList(time.Since(start), "cached")
			return list, nil
		}
	}

	gen := s.generation.Load()
	recipes, err := s.fetchRecipes(ctx, selections)
	if err != nil {
		metrics.RecordShoppingList(time.Since(start), "lookup_failure")
		return model.ShoppingList{}, err
	}

	list := s.aggregate(selections, recipes)

	if s.cache != nil {
		s.store(key, list, gen)
	}

	log.Info().
		Int("selections", len(selections)).
		Int("items", len(list.Items)).
		Int("skipped", len(list.SkippedRecipeIDs)).
		Msg("Generated shopping list")
	metrics.RecordShoppingList(time.Since(start), "success")
	metrics.ShoppingListItems.Observe(float64(len(list.Items)))

	return list, nil
}

// InvalidateCache clears the result cache. Builds already in flight will not
// store their results.
func (s *ShoppingListService) InvalidateCache() {
	if s.cache == nil {
		return
	}
	s.cacheMu.Lock()
	s.generation.Add(1)
	s.cache.Clear()
	s.cacheMu.Unlock()
	s.reportCacheSize()
}

func (s *ShoppingListService) store(key string, list model.ShoppingList, gen uint64) {
	s.cacheMu.Lock()
	if s.generation.Load() != gen {
		s.cacheMu.Unlock()
		log.Debug().Str("key", key).Msg("Recipes changed during build, not caching shopping list")
		return
	}
	s.cache.Set(key, list)
	s.cacheMu.Unlock()
	s.reportCacheSize()
}

func (s *ShoppingListService) reportCacheSize() {
	if c, ok := s.cache.(cache.CacheWithMetrics); ok {
		m := c.Metrics()
		metrics.UpdateCacheMetrics(m.Size, m.Capacity)
	}
}

// fetchRecipes looks up all selections concurrently. The result is indexed by
// selection position so aggregation order never depends on lookup timing.
func (s *ShoppingListService) fetchRecipes(ctx context.Context, selections []model.MealSelection) ([]*model.Recipe, error) {
	recipes := make([]*model.Recipe, len(selections))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, sel := range selections {
		if sel.RecipeID <= 0 {
			continue
		}
		i, sel := i, sel
		g.Go(func() error {
			recipe, err := s.lookup.GetByID(gctx, sel.RecipeID)
			if err != nil {
				return &LookupFailure{RecipeID: sel.RecipeID, Err: err}
			}
			recipes[i] = recipe
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return recipes, nil
}

type groupKey struct {
	name string
	unit string
}

type ingredientGroup struct {
	name   string
	unit   string
	amount float64
}

func (s *ShoppingListService) aggregate(selections []model.MealSelection, recipes []*model.Recipe) model.ShoppingList {
	groups := make(map[groupKey]*ingredientGroup)
	var order []*ingredientGroup
	var skipped []int64

	for i, sel := range selections {
		if sel.RecipeID <= 0 {
			log.Debug().Int("selection", i).Msg("Selection without recipe id, skipping")
			continue
		}
		recipe := recipes[i]
		if recipe == nil {
			log.Warn().Int64("recipe_id", sel.RecipeID).Msg("Recipe not found, skipping")
			skipped = append(skipped, sel.RecipeID)
			continue
		}

		multiplier := recipe.Multiplier(sel.Persons())
		for _, ing := range recipe.Ingredients {
			if s.basics.Contains(ing.Name) {
				continue
			}

			scaled := ing.Amount * multiplier
			key := groupKey{name: strings.ToLower(ing.Name), unit: ing.Unit}
			if g, ok := groups[key]; ok {
				g.amount += scaled
				continue
			}

			g := &ingredientGroup{name: strings.TrimSpace(ing.Name), unit: ing.Unit, amount: scaled}
			groups[key] = g
			order = append(order, g)
		}
	}

	items := make([]model.ShoppingListItem, 0, len(order))
	for _, g := range order {
		items = append(items, model.ShoppingListItem{
			Name:   g.name,
			Amount: RoundAmount(g.amount),
			Unit:   g.unit,
		})
	}

	return model.ShoppingList{Items: items, SkippedRecipeIDs: skipped}
}

// RoundAmount formats a summed amount for display: totals of at least one are
// rounded to a whole number, smaller totals to one decimal. Halves round to even.
func RoundAmount(total float64) float64 {
	if total >= 1 {
		return math.RoundToEven(total)
	}
	return math.RoundToEven(total*10) / 10
}

// selectionKey encodes selections in order; persons are resolved so an omitted
// count and an explicit default share an entry.
func selectionKey(selections []model.MealSelection) string {
	var b strings.Builder
	for i, sel := range selections {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(strconv.FormatInt(sel.RecipeID, 10))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(sel.Persons()))
	}
	return b.String()
}
