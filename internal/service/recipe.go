package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipebox/backend/internal/models"
	"github.com/recipebox/backend/internal/types"
)

// RecipeListFilter narrows a recipe listing to recipes carrying any of the
// given tag or ingredient ids.
type RecipeListFilter struct {
	TagIDs        []uuid.UUID
	IngredientIDs []uuid.UUID
}

// RecipeService handles recipe operations. Every read and write except
// favoriting is scoped to the owning user, so foreign recipes surface as
// record-not-found.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// ListRecipes lists the user's recipes, newest first.
func (s *RecipeService) ListRecipes(ctx context.Context, userID uuid.UUID, filter RecipeListFilter) ([]models.Recipe, error) {
	query := s.db.WithContext(ctx).Model(&models.Recipe{}).
		Where("recipes.user_id = ?", userID)

	if len(filter.TagIDs) > 0 {
		query = query.
			Joins("JOIN recipe_tags ON recipe_tags.recipe_id = recipes.id").
			Where("recipe_tags.tag_id IN ?", filter.TagIDs)
	}
	if len(filter.IngredientIDs) > 0 {
		query = query.
			Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
			Where("recipe_ingredients.ingredient_id IN ?", filter.IngredientIDs)
	}

	var recipes []models.Recipe
	err := query.Distinct("recipes.*").
		Order("recipes.created_at DESC").
		Preload("Tags").
		Preload("Ingredients").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe retrieves one of the user's recipes by id.
func (s *RecipeService) GetRecipe(ctx context.Context, userID, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Tags").
		Preload("Ingredients").
		Where("user_id = ?", userID).
		First(&recipe, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe creates a recipe for the user, reconciling inline tag and
// ingredient names via get-or-create on (user, name).
func (s *RecipeService) CreateRecipe(ctx context.Context, userID uuid.UUID, req types.CreateRecipeRequest) (*models.Recipe, error) {
	recipe := models.Recipe{
		Title:       req.Title,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Description: req.Description,
		Link:        req.Link,
		UserID:      userID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags, err := reconcileTags(tx, userID, req.Tags)
		if err != nil {
			return err
		}
		ingredients, err := reconcileIngredients(tx, userID, req.Ingredients)
		if err != nil {
			return err
		}
		recipe.Tags = tags
		recipe.Ingredients = ingredients
		return tx.Create(&recipe).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetRecipe(ctx, userID, recipe.ID)
}

// UpdateRecipe applies a partial update to one of the user's recipes. The
// owner never changes. A present tags/ingredients list replaces the full
// association set.
func (s *RecipeService) UpdateRecipe(ctx context.Context, userID, id uuid.UUID, req types.UpdateRecipeRequest) (*models.Recipe, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.Where("user_id = ?", userID).First(&recipe, "id = ?", id).Error; err != nil {
			return err
		}

		if req.Title != nil {
			recipe.Title = *req.Title
		}
		if req.TimeMinutes != nil {
			recipe.TimeMinutes = *req.TimeMinutes
		}
		if req.Price != nil {
			recipe.Price = *req.Price
		}
		if req.Description != nil {
			recipe.Description = *req.Description
		}
		if req.Link != nil {
			recipe.Link = *req.Link
		}

		if err := tx.Save(&recipe).Error; err != nil {
			return err
		}

		if req.Tags != nil {
			tags, err := reconcileTags(tx, userID, *req.Tags)
			if err != nil {
				return err
			}
			if err := tx.Model(&recipe).Association("Tags").Replace(&tags); err != nil {
				return err
			}
		}
		if req.Ingredients != nil {
			ingredients, err := reconcileIngredients(tx, userID, *req.Ingredients)
			if err != nil {
				return err
			}
			if err := tx.Model(&recipe).Association("Ingredients").Replace(&ingredients); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetRecipe(ctx, userID, id)
}

// DeleteRecipe deletes one of the user's recipes.
func (s *RecipeService) DeleteRecipe(ctx context.Context, userID, id uuid.UUID) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&recipe, "id = ?", id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&recipe).Error
}

// FavoriteRecipe marks a recipe as a favorite of the user. Favoriting is not
// ownership-scoped: any existing recipe can be favorited. Returns true when
// a new favorite row was created, false when it already existed.
func (s *RecipeService) FavoriteRecipe(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		return false, err
	}

	var fav models.RecipeFavorite
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&fav).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	fav = models.RecipeFavorite{UserID: userID, RecipeID: recipeID}
	if err := s.db.WithContext(ctx).Create(&fav).Error; err != nil {
		return false, err
	}
	return true, nil
}

// UnfavoriteRecipe removes a favorite. Removing a non-favorite is a no-op.
func (s *RecipeService) UnfavoriteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.RecipeFavorite{}).Error
}

// ListFavorites lists the recipes the user has favorited, most recently
// favorited first.
func (s *RecipeService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).Model(&models.Recipe{}).
		Joins("JOIN recipe_favorites ON recipe_favorites.recipe_id = recipes.id").
		Where("recipe_favorites.user_id = ?", userID).
		Order("recipe_favorites.created_at DESC").
		Preload("Tags").
		Preload("Ingredients").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// SetRecipeImage stores the uploaded image URL on one of the user's recipes.
func (s *RecipeService) SetRecipeImage(ctx context.Context, userID, id uuid.UUID, imageURL string) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	recipe.ImageURL = imageURL
	if err := s.db.WithContext(ctx).Save(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func reconcileTags(tx *gorm.DB, userID uuid.UUID, refs []types.NamedRef) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(refs))
	for _, ref := range refs {
		var tag models.Tag
		if err := tx.FirstOrCreate(&tag, models.Tag{UserID: userID, Name: ref.Name}).Error; err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func reconcileIngredients(tx *gorm.DB, userID uuid.UUID, refs []types.NamedRef) ([]models.Ingredient, error) {
	ingredients := make([]models.Ingredient, 0, len(refs))
	for _, ref := range refs {
		var ingredient models.Ingredient
		if err := tx.FirstOrCreate(&ingredient, models.Ingredient{UserID: userID, Name: ref.Name}).Error; err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ingredient)
	}
	return ingredients, nil
}
