package services

import (
	"context"
	"strings"

	"github.com/adergachev/recipevault/internal/common"
	"github.com/adergachev/recipevault/internal/pagex"
	"github.com/adergachev/recipevault/internal/server/models"
	"github.com/adergachev/recipevault/internal/server/repositories/recipes"
)

type RecipeService struct {
	repo recipes.Repository
}

func NewRecipeService(repo recipes.Repository) *RecipeService {
	return &RecipeService{repo: repo}
}

// RecipeFilter narrows list and search results. Zero values mean "no
// constraint".
type RecipeFilter struct {
	Tags    []string
	Cuisine string
	TimeMax int
}

// List returns a page of recipes matching the filter, taken from one
// snapshot of the store.
func (s *RecipeService) List(ctx context.Context, page, pageSize int, filter RecipeFilter) (*pagex.Page[*models.Recipe], error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}

	items = applyFilter(items, filter)
	return pagex.New(pagex.Slice(items, page, pageSize), len(items), page, pageSize), nil
}

func (s *RecipeService) Create(ctx context.Context, ownerID string, recipe *models.Recipe) (*models.Recipe, error) {
	recipe.OwnerID = ownerID
	return s.repo.Create(ctx, recipe)
}

func (s *RecipeService) Get(ctx context.Context, id string) (*models.Recipe, error) {
	return s.repo.Get(ctx, id)
}

// Update applies a partial update. Only the owner may update.
func (s *RecipeService) Update(ctx context.Context, id, userID string, upd *models.RecipeUpdate) (*models.Recipe, error) {
	recipe, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.OwnerID != userID {
		return nil, common.ErrorForbidden
	}
	return s.repo.Update(ctx, id, upd)
}

// Delete removes a recipe and its ratings. Only the owner may delete.
func (s *RecipeService) Delete(ctx context.Context, id, userID string) error {
	recipe, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if recipe.OwnerID != userID {
		return common.ErrorForbidden
	}
	_, err = s.repo.Delete(ctx, id)
	return err
}

// Rate upserts the user's rating (1..5) and returns the recipe with its
// refreshed aggregates.
func (s *RecipeService) Rate(ctx context.Context, id, userID string, rating int) (*models.Recipe, error) {
	if rating < 1 || rating > 5 {
		return nil, common.ErrorValidation
	}
	return s.repo.UpsertRating(ctx, id, userID, rating)
}

// applyFilter is shared by list and search. Tags must all be present
// (case-insensitive); cuisine matches case-insensitively; recipes without a
// time estimate never match a time_max constraint.
func applyFilter(items []*models.Recipe, filter RecipeFilter) []*models.Recipe {
	filtered := items

	if len(filter.Tags) > 0 {
		want := make(map[string]struct{}, len(filter.Tags))
		for _, tag := range filter.Tags {
			want[strings.ToLower(tag)] = struct{}{}
		}
		filtered = keep(filtered, func(r *models.Recipe) bool {
			have := make(map[string]struct{}, len(r.Tags))
			for _, tag := range r.Tags {
				have[strings.ToLower(tag)] = struct{}{}
			}
			for tag := range want {
				if _, ok := have[tag]; !ok {
					return false
				}
			}
			return true
		})
	}

	if filter.Cuisine != "" {
		filtered = keep(filtered, func(r *models.Recipe) bool {
			return strings.EqualFold(r.Cuisine, filter.Cuisine)
		})
	}

	if filter.TimeMax > 0 {
		filtered = keep(filtered, func(r *models.Recipe) bool {
			return r.TimeMinutes > 0 && r.TimeMinutes <= filter.TimeMax
		})
	}

	return filtered
}

func keep(items []*models.Recipe, pred func(*models.Recipe) bool) []*models.Recipe {
	out := make([]*models.Recipe, 0, len(items))
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}
