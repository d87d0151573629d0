package recipes

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adergachev/recipevault/internal/common"
	"github.com/adergachev/recipevault/internal/server/models"
)

// MemoryRepository is a thread-safe in-memory recipe store. The rating map
// is the source of truth for the aggregate fields: RatingCount and
// RatingAvg are recomputed under the same lock as every rating mutation, so
// no reader can observe a pair that does not correspond to one snapshot of
// the map.
type MemoryRepository struct {
	mu      sync.RWMutex
	byID    map[string]*models.Recipe
	ratings map[string]map[string]int // recipe id -> user id -> rating
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]*models.Recipe),
		ratings: make(map[string]map[string]int),
	}
}

func copyRecipe(r *models.Recipe) *models.Recipe {
	c := *r
	c.Ingredients = append([]string(nil), r.Ingredients...)
	c.Steps = append([]string(nil), r.Steps...)
	c.Tags = append([]string(nil), r.Tags...)
	return &c
}

func (r *MemoryRepository) Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyRecipe(recipe)
	stored.ID = uuid.NewString()
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	stored.RatingAvg = 0
	stored.RatingCount = 0

	r.byID[stored.ID] = stored

	return copyRecipe(stored), nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recipe, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return copyRecipe(recipe), nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, upd *models.RecipeUpdate) (*models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipe, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if upd.Title != nil {
		recipe.Title = *upd.Title
	}
	if upd.Description != nil {
		recipe.Description = *upd.Description
	}
	if upd.Ingredients != nil {
		recipe.Ingredients = append([]string(nil), *upd.Ingredients...)
	}
	if upd.Steps != nil {
		recipe.Steps = append([]string(nil), *upd.Steps...)
	}
	if upd.Tags != nil {
		recipe.Tags = append([]string(nil), *upd.Tags...)
	}
	if upd.Cuisine != nil {
		recipe.Cuisine = *upd.Cuisine
	}
	if upd.TimeMinutes != nil {
		recipe.TimeMinutes = *upd.TimeMinutes
	}
	recipe.UpdatedAt = time.Now().UTC()

	return copyRecipe(recipe), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, existed := r.byID[id]
	if existed {
		delete(r.byID, id)
		delete(r.ratings, id)
	}
	return existed, nil
}

func (r *MemoryRepository) ListAll(ctx context.Context) ([]*models.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*models.Recipe, 0, len(r.byID))
	for _, recipe := range r.byID {
		list = append(list, copyRecipe(recipe))
	}
	// Map iteration order is randomized; callers paginate over this
	// snapshot, so it has to be stable across calls.
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (r *MemoryRepository) UpsertRating(ctx context.Context, recipeID, userID string, rating int) (*models.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipe, ok := r.byID[recipeID]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if r.ratings[recipeID] == nil {
		r.ratings[recipeID] = make(map[string]int)
	}
	r.ratings[recipeID][userID] = rating

	ratings := r.ratings[recipeID]
	sum := 0
	for _, v := range ratings {
		sum += v
	}
	recipe.RatingCount = len(ratings)
	recipe.RatingAvg = round2(float64(sum) / float64(len(ratings)))
	recipe.UpdatedAt = time.Now().UTC()

	return copyRecipe(recipe), nil
}

// round2 rounds to 2 decimal places, halves away from zero.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
