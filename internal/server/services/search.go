package services

import (
	"context"
	"strings"

	"github.com/adergachev/recipevault/internal/common"
	"github.com/adergachev/recipevault/internal/pagex"
	"github.com/adergachev/recipevault/internal/server/models"
	"github.com/adergachev/recipevault/internal/server/repositories/recipes"
)

type SearchService struct {
	repo recipes.Repository
}

func NewSearchService(repo recipes.Repository) *SearchService {
	return &SearchService{repo: repo}
}

// Search matches q case-insensitively against title, description and
// ingredients, then applies the shared filters and paginates.
func (s *SearchService) Search(ctx context.Context, q string, page, pageSize int, filter RecipeFilter) (*pagex.Page[*models.Recipe], error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}

	if q != "" {
		needle := strings.ToLower(q)
		items = keep(items, func(r *models.Recipe) bool {
			if strings.Contains(strings.ToLower(r.Title), needle) {
				return true
			}
			if strings.Contains(strings.ToLower(r.Description), needle) {
				return true
			}
			for _, ing := range r.Ingredients {
				if strings.Contains(strings.ToLower(ing), needle) {
					return true
				}
			}
			return false
		})
	}

	items = applyFilter(items, filter)
	return pagex.New(pagex.Slice(items, page, pageSize), len(items), page, pageSize), nil
}
