package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-share/backend/internal/model"
	"github.com/pageza/recipe-share/backend/internal/service"
	"github.com/pageza/recipe-share/backend/internal/testutil"
)

func TestRunIsRepeatable(t *testing.T) {
	db := testutil.NewDB(t)
	auth := service.NewAuthService(db, "seed-test-secret-value", time.Hour)
	store := service.NewRecipeService(db)
	ctx := context.Background()

	stats, err := Run(ctx, db, auth, store)
	require.NoError(t, err)
	assert.Equal(t, Stats{Users: 3, Recipes: 5, Favorites: 3}, stats)

	stats, err = Run(ctx, db, auth, store)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)

	var count int64
	require.NoError(t, db.Model(&model.Recipe{}).Count(&count).Error)
	assert.Equal(t, int64(5), count)

	ids, err := store.SearchRecipeIDs(ctx, "beef")
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	_, err = auth.Login(ctx, "jane.smith@example.com", Password)
	assert.NoError(t, err)
}
