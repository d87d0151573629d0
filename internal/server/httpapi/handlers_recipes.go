package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adergachev/recipevault/internal/pagex"
	"github.com/adergachev/recipevault/internal/server/services"
)

func (q *listQuery) filter() services.RecipeFilter {
	return services.RecipeFilter{Tags: q.Tags, Cuisine: q.Cuisine, TimeMax: q.TimeMax}
}

func (h *Handler) ListRecipes(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	page, err := h.recipes.List(c.Request.Context(), q.page(), q.pageSize(), q.filter())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, pagex.New(toRecipeResponses(page.Items), page.Total, page.Page, page.PageSize))
}

func (h *Handler) CreateRecipe(c *gin.Context) {
	var req createRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	created, err := h.recipes.Create(c.Request.Context(), c.GetString(ctxUserIDKey), req.toModel())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toRecipeResponse(created))
}

func (h *Handler) GetRecipe(c *gin.Context) {
	recipe, err := h.recipes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

func (h *Handler) UpdateRecipe(c *gin.Context) {
	var req updateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	updated, err := h.recipes.Update(c.Request.Context(), c.Param("id"), c.GetString(ctxUserIDKey), req.toModel())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRecipeResponse(updated))
}

func (h *Handler) DeleteRecipe(c *gin.Context) {
	if err := h.recipes.Delete(c.Request.Context(), c.Param("id"), c.GetString(ctxUserIDKey)); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) RateRecipe(c *gin.Context) {
	var req ratingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	rated, err := h.recipes.Rate(c.Request.Context(), c.Param("id"), c.GetString(ctxUserIDKey), req.Rating)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRecipeResponse(rated))
}

func (h *Handler) SearchRecipes(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeBindError(c, err)
		return
	}

	page, err := h.search.Search(c.Request.Context(), q.Q, q.page(), q.pageSize(), q.filter())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, pagex.New(toRecipeResponses(page.Items), page.Total, page.Page, page.PageSize))
}
