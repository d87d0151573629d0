// Package httpapi exposes the recipe and account services over HTTP using
// gin. It owns request validation, the error envelope, and the bearer-token
// middleware; all business rules live in the services package.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adergachev/recipevault/internal/logging"
	"github.com/adergachev/recipevault/internal/server/auth"
	"github.com/adergachev/recipevault/internal/server/services"
)

type Handler struct {
	users   *services.UserService
	recipes *services.RecipeService
	search  *services.SearchService
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Healthy"})
}

// NewRouter assembles the gin engine with middleware and all routes.
func NewRouter(
	log logging.Logger,
	authority *auth.Authority,
	users *services.UserService,
	recipes *services.RecipeService,
	search *services.SearchService,
	corsAllowOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), CORS(corsAllowOrigins), RequestLogger(log))

	h := &Handler{users: users, recipes: recipes, search: search}
	authRequired := AuthRequired(authority, log)

	r.GET("/", h.Health)

	u := r.Group("/users")
	u.POST("/register", h.Register)
	u.POST("/login", h.Login)
	u.GET("/me", authRequired, h.Me)
	u.POST("/logout", authRequired, h.Logout)

	rec := r.Group("/recipes")
	rec.GET("", h.ListRecipes)
	rec.POST("", authRequired, h.CreateRecipe)
	rec.GET("/:id", h.GetRecipe)
	rec.PUT("/:id", authRequired, h.UpdateRecipe)
	rec.DELETE("/:id", authRequired, h.DeleteRecipe)
	rec.POST("/:id/rate", authRequired, h.RateRecipe)

	r.GET("/search", h.SearchRecipes)

	return r
}
