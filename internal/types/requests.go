package types

import "github.com/shopspring/decimal"

// RegisterRequest is the body for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	Token string `json:"token"`
}

// UpdateUserRequest is the body for PUT /users/me. Nil fields are untouched.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

// NamedRef references a tag or ingredient by name inside a recipe payload.
// Rows are created on demand, scoped to the recipe owner.
type NamedRef struct {
	Name string `json:"name" binding:"required"`
}

// CreateRecipeRequest is the body for POST /recipes.
type CreateRecipeRequest struct {
	Title       string          `json:"title" binding:"required"`
	TimeMinutes int             `json:"time_minutes"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Link        string          `json:"link"`
	Tags        []NamedRef      `json:"tags"`
	Ingredients []NamedRef      `json:"ingredients"`
}

// UpdateRecipeRequest is the body for PUT and PATCH /recipes/:id. Nil fields
// keep their stored value; a present tags/ingredients list replaces the full
// association set, an empty list clears it.
type UpdateRecipeRequest struct {
	Title       *string          `json:"title"`
	TimeMinutes *int             `json:"time_minutes"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	Link        *string          `json:"link"`
	Tags        *[]NamedRef      `json:"tags"`
	Ingredients *[]NamedRef      `json:"ingredients"`
}

// RenameRequest is the body for PATCH /tags/:id and PATCH /ingredients/:id.
type RenameRequest struct {
	Name string `json:"name" binding:"required"`
}
