package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-share/backend/internal/model"
	"github.com/pageza/recipe-share/backend/internal/testutil"
)

func TestRecipeOwnershipScenario(t *testing.T) {
	env := setupTestEnv(t)
	user10 := env.userWithID(t, 10, "ten")
	user20 := env.userWithID(t, 20, "twenty")
	stew := testutil.CreateRecipe(t, env.db, 10, "Beef Stew")
	soup := testutil.CreateRecipe(t, env.db, 20, "Veg Soup")
	require.Equal(t, uint(1), stew.ID)
	require.Equal(t, uint(2), soup.ID)
	token10, token20 := env.tokenFor(t, user10), env.tokenFor(t, user20)

	w := env.do(t, http.MethodPost, "/api/recipes/search", map[string]string{"searchInput": "stew"}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"recipeIds":[1]}`, w.Body.String())

	w = env.do(t, http.MethodPut, "/api/recipes/1", map[string]string{"instructions": "simmer for 3 hours"}, token10)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updated":1}`, w.Body.String())

	w = env.do(t, http.MethodPut, "/api/recipes/1", map[string]string{"instructions": "burn it"}, token20)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"updated":0}`, w.Body.String())

	var reloaded model.Recipe
	require.NoError(t, env.db.First(&reloaded, 1).Error)
	assert.Equal(t, "simmer for 3 hours", reloaded.Instructions)
	assert.Equal(t, "Beef Stew", reloaded.RecipeName)

	w = env.do(t, http.MethodDelete, "/api/recipes/2", nil, token10)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"No recipe found with this id!"}`, w.Body.String())

	w = env.do(t, http.MethodDelete, "/api/recipes/2", nil, token20)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["deleted"])

	var count int64
	require.NoError(t, env.db.Model(&model.Recipe{}).Where("id = ?", 2).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateRecipeUsesSessionUser(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.userWithID(t, 10, "owner")
	env.userWithID(t, 99, "other")

	w := env.do(t, http.MethodPost, "/api/recipes", map[string]interface{}{
		"recipe_name":  "Toast",
		"recipe_image": "https://example.com/toast.jpg",
		"ingredients":  "bread",
		"instructions": "toast it",
		"user_id":      99,
	}, env.tokenFor(t, owner))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.Equal(t, float64(10), body["user_id"])
	assert.Equal(t, "Toast", body["recipe_name"])
	assert.NotZero(t, body["id"])
	assert.NotContains(t, body, "user")

	var stored model.Recipe
	require.NoError(t, env.db.First(&stored, uint(body["id"].(float64))).Error)
	assert.Equal(t, uint(10), stored.UserID)
}

func TestCreateRecipeValidation(t *testing.T) {
	env := setupTestEnv(t)
	token := env.tokenFor(t, env.userWithID(t, 1, "cook"))

	w := env.do(t, http.MethodPost, "/api/recipes", map[string]string{"recipe_name": "No ingredients"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "Ingredients")
}

func TestRecipeRoutesRequireLogin(t *testing.T) {
	env := setupTestEnv(t)
	testutil.CreateRecipe(t, env.db, 1, "Soup")

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/recipes"},
		{http.MethodGet, "/api/recipes/modify/1"},
		{http.MethodPut, "/api/recipes/1"},
		{http.MethodDelete, "/api/recipes/1"},
	} {
		w := env.do(t, tc.method, tc.path, map[string]string{}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}

	// a forged token is treated as no session
	w := env.do(t, http.MethodDelete, "/api/recipes/1", nil, "forged")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetRecipePage(t *testing.T) {
	env := setupTestEnv(t)
	author := env.userWithID(t, 10, "author")
	fan := env.userWithID(t, 20, "fan")
	stranger := env.userWithID(t, 30, "stranger")
	recipe := testutil.CreateRecipe(t, env.db, author.ID, "Beef Stew")
	testutil.CreateFavorite(t, env.db, fan.ID, recipe.ID)
	testutil.CreateFavorite(t, env.db, fan.ID, recipe.ID)

	tests := []struct {
		name      string
		token     string
		loggedIn  string
		favorited string
		isAuthor  string
	}{
		{"anonymous", "", "false", "false", "false"},
		{"author", env.tokenFor(t, author), "true", "false", "true"},
		{"fan with duplicate favorites", env.tokenFor(t, fan), "true", "true", "false"},
		{"stranger", env.tokenFor(t, stranger), "true", "false", "false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodGet, "/api/recipes/1", nil, tt.token)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

			page := w.Body.String()
			assert.Contains(t, page, "<h1>Beef Stew</h1>")
			assert.Contains(t, page, "by author")
			assert.Contains(t, page, "2 favorites")
			assert.Contains(t, page, `data-logged-in="`+tt.loggedIn+`"`)
			assert.Contains(t, page, `data-favorited="`+tt.favorited+`"`)
			assert.Contains(t, page, `data-is-author="`+tt.isAuthor+`"`)
		})
	}
}

func TestGetRecipeNotFound(t *testing.T) {
	env := setupTestEnv(t)

	for _, path := range []string{"/api/recipes/42", "/api/recipes/abc"} {
		w := env.do(t, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.JSONEq(t, `{"error":"Recipe not found"}`, w.Body.String())
	}
}

func TestGetRecipeForModify(t *testing.T) {
	env := setupTestEnv(t)
	author := env.userWithID(t, 10, "author")
	other := env.userWithID(t, 20, "other")
	testutil.CreateRecipe(t, env.db, author.ID, "Stew")

	w := env.do(t, http.MethodGet, "/api/recipes/modify/1", nil, env.tokenFor(t, author))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `class="modify-recipe"`)

	w = env.do(t, http.MethodGet, "/api/recipes/modify/1", nil, env.tokenFor(t, other))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `class="modify-recipe"`)
	assert.Contains(t, w.Body.String(), `data-favorited="false"`)
	assert.Contains(t, w.Body.String(), `data-is-author="false"`)
	assert.Contains(t, w.Body.String(), `data-logged-in="true"`)

	w = env.do(t, http.MethodGet, "/api/recipes/modify/7", nil, env.tokenFor(t, author))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateRecipe(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.userWithID(t, 10, "owner")
	testutil.CreateRecipe(t, env.db, owner.ID, "Stew")
	token := env.tokenFor(t, owner)

	t.Run("user_id in body is ignored", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/recipes/1", map[string]interface{}{"recipe_name": "Better Stew", "user_id": 20}, token)
		assert.JSONEq(t, `{"updated":1}`, w.Body.String())

		var r model.Recipe
		require.NoError(t, env.db.First(&r, 1).Error)
		assert.Equal(t, "Better Stew", r.RecipeName)
		assert.Equal(t, "cook it", r.Instructions)
		assert.Equal(t, uint(10), r.UserID)
	})

	t.Run("missing recipe", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/recipes/77", map[string]string{"recipe_name": "x"}, token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"updated":0}`, w.Body.String())
	})

	t.Run("bad id", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/recipes/abc", map[string]string{"recipe_name": "x"}, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/api/recipes/1", []string{"not", "an", "object"}, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("required fields cannot be blanked", func(t *testing.T) {
		for _, field := range []string{"recipe_name", "ingredients", "instructions"} {
			w := env.do(t, http.MethodPut, "/api/recipes/1", map[string]string{field: ""}, token)
			assert.Equal(t, http.StatusBadRequest, w.Code, field)
		}

		var r model.Recipe
		require.NoError(t, env.db.First(&r, 1).Error)
		assert.Equal(t, "Better Stew", r.RecipeName)
		assert.Equal(t, "salt\npepper", r.Ingredients)
		assert.Equal(t, "cook it", r.Instructions)
	})
}

func TestSearchRecipes(t *testing.T) {
	env := setupTestEnv(t)
	testutil.CreateRecipe(t, env.db, 1, "Beef Stew")
	testutil.CreateRecipe(t, env.db, 1, "Roast Beefsteak")
	testutil.CreateRecipe(t, env.db, 1, "Veg Soup")

	tests := []struct {
		name string
		body interface{}
		want string
	}{
		{"substring ignoring case", map[string]string{"searchInput": "BEEF"}, `{"recipeIds":[1,2]}`},
		{"empty query matches all", map[string]string{"searchInput": ""}, `{"recipeIds":[1,2,3]}`},
		{"missing field matches all", map[string]string{}, `{"recipeIds":[1,2,3]}`},
		{"no body matches all", nil, `{"recipeIds":[1,2,3]}`},
		{"no match is an empty list", map[string]string{"searchInput": "pizza"}, `{"recipeIds":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/api/recipes/search", tt.body, "")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}

	w := env.do(t, http.MethodPost, "/api/recipes/search", map[string]int{"searchInput": 5}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteRecipeRemovesFavorites(t *testing.T) {
	env := setupTestEnv(t)
	owner := env.userWithID(t, 10, "owner")
	recipe := testutil.CreateRecipe(t, env.db, owner.ID, "Stew")
	testutil.CreateFavorite(t, env.db, 20, recipe.ID)

	w := env.do(t, http.MethodDelete, "/api/recipes/1", nil, env.tokenFor(t, owner))
	require.Equal(t, http.StatusOK, w.Code)

	var favorites int64
	require.NoError(t, env.db.Model(&model.Favorite{}).Count(&favorites).Error)
	assert.Zero(t, favorites)

	w = env.do(t, http.MethodDelete, "/api/recipes/abc", nil, env.tokenFor(t, owner))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
