package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adergachev/recipevault/internal/common"
	"github.com/adergachev/recipevault/internal/server/models"
	"github.com/adergachev/recipevault/internal/server/repositories/recipes"
)

func seedRecipe(t *testing.T, svc *RecipeService, owner, title, cuisine string, minutes int, tags ...string) *models.Recipe {
	t.Helper()
	created, err := svc.Create(context.Background(), owner, &models.Recipe{
		Title:       title,
		Cuisine:     cuisine,
		TimeMinutes: minutes,
		Tags:        tags,
	})
	require.NoError(t, err)
	return created
}

func TestRecipeService_OwnershipChecks(t *testing.T) {
	t.Parallel()

	svc := NewRecipeService(recipes.NewMemoryRepository())
	ctx := context.Background()

	created := seedRecipe(t, svc, "alice", "Soup", "french", 30)

	title := "Stolen Soup"
	_, err := svc.Update(ctx, created.ID, "mallory", &models.RecipeUpdate{Title: &title})
	assert.ErrorIs(t, err, common.ErrorForbidden)

	err = svc.Delete(ctx, created.ID, "mallory")
	assert.ErrorIs(t, err, common.ErrorForbidden)

	// Owner succeeds.
	_, err = svc.Update(ctx, created.ID, "alice", &models.RecipeUpdate{Title: &title})
	assert.NoError(t, err)
	assert.NoError(t, svc.Delete(ctx, created.ID, "alice"))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRecipeService_RateValidation(t *testing.T) {
	t.Parallel()

	svc := NewRecipeService(recipes.NewMemoryRepository())
	ctx := context.Background()

	created := seedRecipe(t, svc, "alice", "Soup", "french", 30)

	for _, bad := range []int{0, -1, 6} {
		_, err := svc.Rate(ctx, created.ID, "bob", bad)
		assert.ErrorIs(t, err, common.ErrorValidation, "rating %d", bad)
	}

	rec, err := svc.Rate(ctx, created.ID, "bob", 5)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.RatingCount)
	assert.Equal(t, 5.0, rec.RatingAvg)

	_, err = svc.Rate(ctx, "missing", "bob", 5)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRecipeService_ListFiltersAndPaginates(t *testing.T) {
	t.Parallel()

	svc := NewRecipeService(recipes.NewMemoryRepository())
	ctx := context.Background()

	seedRecipe(t, svc, "u1", "Soup", "french", 30, "winter", "easy")
	seedRecipe(t, svc, "u1", "Stew", "french", 120, "winter")
	seedRecipe(t, svc, "u1", "Tacos", "mexican", 25, "easy")
	seedRecipe(t, svc, "u1", "Untimed", "french", 0)

	page, err := svc.List(ctx, 1, 20, RecipeFilter{Cuisine: "FRENCH"})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)

	page, err = svc.List(ctx, 1, 20, RecipeFilter{Tags: []string{"winter", "easy"}})
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	assert.Equal(t, "Soup", page.Items[0].Title)

	// Recipes without a time estimate never match a time cap.
	page, err = svc.List(ctx, 1, 20, RecipeFilter{TimeMax: 60})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)

	page, err = svc.List(ctx, 2, 3, RecipeFilter{})
	require.NoError(t, err)
	assert.Equal(t, 4, page.Total)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 2, page.Page)
}
