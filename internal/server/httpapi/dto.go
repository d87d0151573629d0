package httpapi

import (
	"time"

	"github.com/adergachev/recipevault/internal/server/models"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=32"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// loginRequest is bound from an OAuth2-style password form.
type loginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.UserName,
		CreatedAt: u.CreatedAt,
	}
}

type createRecipeRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=200"`
	Description string   `json:"description" binding:"max=2000"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Tags        []string `json:"tags"`
	Cuisine     string   `json:"cuisine"`
	TimeMinutes *int     `json:"time_minutes" binding:"omitempty,min=1"`
}

func (r *createRecipeRequest) toModel() *models.Recipe {
	recipe := &models.Recipe{
		Title:       r.Title,
		Description: r.Description,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		Tags:        r.Tags,
		Cuisine:     r.Cuisine,
	}
	if r.TimeMinutes != nil {
		recipe.TimeMinutes = *r.TimeMinutes
	}
	return recipe
}

// updateRecipeRequest mirrors models.RecipeUpdate: absent fields stay nil
// and leave the stored values untouched.
type updateRecipeRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string   `json:"description" binding:"omitempty,max=2000"`
	Ingredients *[]string `json:"ingredients"`
	Steps       *[]string `json:"steps"`
	Tags        *[]string `json:"tags"`
	Cuisine     *string   `json:"cuisine"`
	TimeMinutes *int      `json:"time_minutes" binding:"omitempty,min=1"`
}

func (r *updateRecipeRequest) toModel() *models.RecipeUpdate {
	return &models.RecipeUpdate{
		Title:       r.Title,
		Description: r.Description,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		Tags:        r.Tags,
		Cuisine:     r.Cuisine,
		TimeMinutes: r.TimeMinutes,
	}
}

type ratingRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}

type recipeResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Ingredients []string  `json:"ingredients"`
	Steps       []string  `json:"steps"`
	Tags        []string  `json:"tags"`
	Cuisine     *string   `json:"cuisine"`
	TimeMinutes *int      `json:"time_minutes"`
	RatingAvg   float64   `json:"rating_avg"`
	RatingCount int       `json:"rating_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toRecipeResponse(r *models.Recipe) recipeResponse {
	resp := recipeResponse{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Title:       r.Title,
		Description: r.Description,
		Ingredients: emptyIfNil(r.Ingredients),
		Steps:       emptyIfNil(r.Steps),
		Tags:        emptyIfNil(r.Tags),
		RatingAvg:   r.RatingAvg,
		RatingCount: r.RatingCount,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.Cuisine != "" {
		resp.Cuisine = &r.Cuisine
	}
	if r.TimeMinutes > 0 {
		resp.TimeMinutes = &r.TimeMinutes
	}
	return resp
}

func toRecipeResponses(items []*models.Recipe) []recipeResponse {
	out := make([]recipeResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toRecipeResponse(it))
	}
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// listQuery binds pagination and filter parameters. Page and PageSize are
// pointers so that an explicit zero fails min=1 instead of being mistaken
// for an absent parameter.
type listQuery struct {
	Page     *int     `form:"page" binding:"omitempty,min=1"`
	PageSize *int     `form:"page_size" binding:"omitempty,min=1,max=100"`
	Tags     []string `form:"tags"`
	Cuisine  string   `form:"cuisine"`
	TimeMax  int      `form:"time_max" binding:"omitempty,min=1"`
}

func (q *listQuery) page() int {
	if q.Page == nil {
		return defaultPage
	}
	return *q.Page
}

func (q *listQuery) pageSize() int {
	if q.PageSize == nil {
		return defaultPageSize
	}
	return *q.PageSize
}

type searchQuery struct {
	listQuery
	Q string `form:"q"`
}
