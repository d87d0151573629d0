package users

import (
	"context"

	"github.com/adergachev/recipevault/internal/server/models"
)

// Repository stores user records with unique email and username. Lookups
// return common.ErrorNotFound when absent; absence is a normal outcome.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUserName(ctx context.Context, userName string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
