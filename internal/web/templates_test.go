package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-share/backend/internal/types"
)

func render(t *testing.T, name string, view types.RecipeView) string {
	t.Helper()
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, name, view))
	return buf.String()
}

func TestRecipePage(t *testing.T) {
	view := types.RecipeView{
		ID:           3,
		RecipeName:   "Pancakes <3",
		Ingredients:  "flour\n\n milk \neggs",
		Instructions: "mix\nfry",
		Author:       types.AuthorView{ID: 10, Name: "Ada"},
		LoggedIn:     true,
		Favorited:    true,
	}

	out := render(t, RecipePage, view)
	assert.Contains(t, out, "Pancakes &lt;3")
	assert.Contains(t, out, `data-favorited="true"`)
	assert.Contains(t, out, `data-is-author="false"`)
	assert.Contains(t, out, "<li>milk</li>")
	assert.Contains(t, out, "Remove from favorites")
	assert.NotContains(t, out, "Edit recipe")
}

func TestRecipePageAnonymous(t *testing.T) {
	out := render(t, RecipePage, types.RecipeView{ID: 1, RecipeName: "Soup"})
	assert.Contains(t, out, `data-logged-in="false"`)
	assert.NotContains(t, out, "favorites</button>")
}

func TestModifyPage(t *testing.T) {
	out := render(t, ModifyPage, types.RecipeView{ID: 9, RecipeName: "Stew", Ingredients: "beef"})
	assert.Contains(t, out, `action="/api/recipes/9"`)
	assert.Contains(t, out, `value="Stew"`)
	assert.Contains(t, out, ">beef</textarea>")
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, lines(" a \n\n b\n"))
	assert.Nil(t, lines(""))
}
