package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/recipebox/backend/internal/models"
)

// IngredientService mirrors TagService for the ingredient resource.
type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// ListIngredients lists the user's ingredients ordered by name descending,
// optionally restricted to those assigned to a recipe.
func (s *IngredientService) ListIngredients(ctx context.Context, userID uuid.UUID, assignedOnly bool) ([]models.Ingredient, error) {
	query := s.db.WithContext(ctx).Model(&models.Ingredient{}).
		Where("ingredients.user_id = ?", userID)

	if assignedOnly {
		query = query.
			Joins("JOIN recipe_ingredients ON recipe_ingredients.ingredient_id = ingredients.id").
			Joins("JOIN recipes ON recipes.id = recipe_ingredients.recipe_id AND recipes.deleted_at IS NULL").
			Distinct("ingredients.*")
	}

	var ingredients []models.Ingredient
	if err := query.Order("ingredients.name DESC").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// UpdateIngredient renames one of the user's ingredients.
func (s *IngredientService) UpdateIngredient(ctx context.Context, userID, id uuid.UUID, name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&ingredient, "id = ?", id).Error; err != nil {
		return nil, err
	}
	ingredient.Name = name
	if err := s.db.WithContext(ctx).Save(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// DeleteIngredient removes one of the user's ingredients and its recipe links.
func (s *IngredientService) DeleteIngredient(ctx context.Context, userID, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ingredient models.Ingredient
		if err := tx.Where("user_id = ?", userID).First(&ingredient, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM recipe_ingredients WHERE ingredient_id = ?", ingredient.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&ingredient).Error
	})
}
