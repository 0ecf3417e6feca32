package testhelpers

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/recipebox/backend/internal/models"
	"github.com/recipebox/backend/internal/service"
)

// CreateUser registers a user with a default password and returns it.
func CreateUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user, _ := CreateUserAndToken(t, db, email)
	return user
}

// CreateUserAndToken registers a user and returns it with a signed token.
func CreateUserAndToken(t *testing.T, db *gorm.DB, email string) (*models.User, string) {
	t.Helper()
	authService := service.NewAuthService(db, TestJWTSecret)
	user, token, err := authService.Register(context.Background(), "Test User", email, "testpass123")
	require.NoError(t, err)
	return user, token
}

// CreateRecipe inserts a recipe with sensible defaults, applying any
// overrides before saving.
func CreateRecipe(t *testing.T, db *gorm.DB, userID uuid.UUID, overrides ...func(*models.Recipe)) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		Title:       "Sample recipe title",
		TimeMinutes: 20,
		Price:       decimal.RequireFromString("5.50"),
		Description: "Sample recipe description.",
		Link:        "https://example.com/recipe.pdf",
		UserID:      userID,
	}
	for _, override := range overrides {
		override(recipe)
	}
	require.NoError(t, db.Create(recipe).Error)
	return recipe
}

// CreateTag inserts a tag owned by the given user.
func CreateTag(t *testing.T, db *gorm.DB, userID uuid.UUID, name string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name, UserID: userID}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

// CreateIngredient inserts an ingredient owned by the given user.
func CreateIngredient(t *testing.T, db *gorm.DB, userID uuid.UUID, name string) *models.Ingredient {
	t.Helper()
	ingredient := &models.Ingredient{Name: name, UserID: userID}
	require.NoError(t, db.Create(ingredient).Error)
	return ingredient
}
