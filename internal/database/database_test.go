package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipebox/backend/internal/database"
	"github.com/recipebox/backend/internal/models"
	"github.com/recipebox/backend/internal/testhelpers"
)

// Exercises the real connection path against a disposable postgres container.
func TestPostgresSchemaRoundtrip(t *testing.T) {
	db := testhelpers.SetupPostgresDB(t)

	require.NoError(t, database.HealthCheck(context.Background(), db))

	user := testhelpers.CreateUser(t, db, "pg@example.com")
	recipe := testhelpers.CreateRecipe(t, db, user.ID)
	tag := testhelpers.CreateTag(t, db, user.ID, "Dinner")
	require.NoError(t, db.Model(recipe).Association("Tags").Append(tag))

	var loaded models.Recipe
	require.NoError(t, db.Preload("Tags").First(&loaded, "id = ?", recipe.ID).Error)
	assert.Len(t, loaded.Tags, 1)

	// The composite unique index holds on postgres too.
	err := db.Create(&models.Tag{Name: "Dinner", UserID: user.ID}).Error
	assert.Error(t, err)
}

func TestPostgresMigrationsAreIdempotent(t *testing.T) {
	db := testhelpers.SetupPostgresDB(t)

	// Re-running auto-migration against an existing schema is a no-op.
	require.NoError(t, database.AutoMigrate(db))
}
