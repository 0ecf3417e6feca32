package service_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/recipebox/backend/internal/models"
	"github.com/recipebox/backend/internal/service"
	"github.com/recipebox/backend/internal/testhelpers"
	"github.com/recipebox/backend/internal/types"
)

func TestCreateRecipeReconcilesTagsPerUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	recipeService := service.NewRecipeService(db)
	user := testhelpers.CreateUser(t, db, "cook@example.com")
	other := testhelpers.CreateUser(t, db, "cook2@example.com")

	// The other user already owns a tag with the same name. It must not be
	// shared across users.
	testhelpers.CreateTag(t, db, other.ID, "Dinner")

	recipe, err := recipeService.CreateRecipe(context.Background(), user.ID, types.CreateRecipeRequest{
		Title:       "Roast chicken",
		TimeMinutes: 90,
		Price:       decimal.RequireFromString("11.00"),
		Tags:        []types.NamedRef{{Name: "Dinner"}},
	})
	require.NoError(t, err)
	require.Len(t, recipe.Tags, 1)
	assert.Equal(t, user.ID, recipe.Tags[0].UserID)

	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Where("name = ?", "Dinner").Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestUpdateRecipeReplacesIngredientSet(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	recipeService := service.NewRecipeService(db)
	user := testhelpers.CreateUser(t, db, "cook3@example.com")

	recipe, err := recipeService.CreateRecipe(context.Background(), user.ID, types.CreateRecipeRequest{
		Title:       "Lentil soup",
		Ingredients: []types.NamedRef{{Name: "Lentils"}, {Name: "Carrot"}},
	})
	require.NoError(t, err)

	updated, err := recipeService.UpdateRecipe(context.Background(), user.ID, recipe.ID, types.UpdateRecipeRequest{
		Ingredients: &[]types.NamedRef{{Name: "Lentils"}, {Name: "Cumin"}},
	})
	require.NoError(t, err)

	require.Len(t, updated.Ingredients, 2)
	names := []string{updated.Ingredients[0].Name, updated.Ingredients[1].Name}
	assert.ElementsMatch(t, []string{"Lentils", "Cumin"}, names)

	// Replaced rows stay around for reuse, only the association changes.
	var count int64
	require.NoError(t, db.Model(&models.Ingredient{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestDeleteRecipeKeepsFavoriteRowsOut(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	recipeService := service.NewRecipeService(db)
	user := testhelpers.CreateUser(t, db, "cook4@example.com")
	recipe := testhelpers.CreateRecipe(t, db, user.ID)

	_, err := recipeService.FavoriteRecipe(context.Background(), user.ID, recipe.ID)
	require.NoError(t, err)

	require.NoError(t, recipeService.DeleteRecipe(context.Background(), user.ID, recipe.ID))

	// The soft-deleted recipe no longer resolves, so favoriting it again fails.
	_, err = recipeService.FavoriteRecipe(context.Background(), user.ID, recipe.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSetRecipeImageScopedToOwner(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	recipeService := service.NewRecipeService(db)
	user := testhelpers.CreateUser(t, db, "cook5@example.com")
	other := testhelpers.CreateUser(t, db, "cook6@example.com")
	recipe := testhelpers.CreateRecipe(t, db, user.ID)

	_, err := recipeService.SetRecipeImage(context.Background(), other.ID, recipe.ID, "https://cdn.test/x.png")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	updated, err := recipeService.SetRecipeImage(context.Background(), user.ID, recipe.ID, "https://cdn.test/x.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/x.png", updated.ImageURL)
}
