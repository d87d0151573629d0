package repomanager

import (
	"github.com/adergachev/recipevault/internal/server/repositories/recipes"
	"github.com/adergachev/recipevault/internal/server/repositories/users"
)

type MemoryRepositoryManager struct {
	users   users.Repository
	recipes recipes.Repository
}

func (m *MemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) Recipes() recipes.Repository {
	return m.recipes
}

func NewMemoryRepositoryManager() RepositoryManager {
	return &MemoryRepositoryManager{
		users:   users.NewMemoryRepository(),
		recipes: recipes.NewMemoryRepository(),
	}
}
