package recipes

import (
	"context"

	"github.com/adergachev/recipevault/internal/server/models"
)

// Repository stores recipe records and their per-user rating maps.
//
// UpsertRating sets or overwrites one user's rating (1..5) and recomputes
// the aggregate count and mean as a single atomic step. Get/Update/Delete/
// UpsertRating return common.ErrorNotFound for unknown ids; ListAll returns
// a point-in-time snapshot.
type Repository interface {
	Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	Get(ctx context.Context, id string) (*models.Recipe, error)
	Update(ctx context.Context, id string, upd *models.RecipeUpdate) (*models.Recipe, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListAll(ctx context.Context) ([]*models.Recipe, error)
	UpsertRating(ctx context.Context, recipeID, userID string, rating int) (*models.Recipe, error)
}
