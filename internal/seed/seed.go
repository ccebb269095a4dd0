// Package seed fills a development database with demo users and recipes.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/pageza/recipe-share/backend/internal/model"
	"github.com/pageza/recipe-share/backend/internal/service"
)

// Password is shared by every demo user.
const Password = "testpassword123"

type demoUser struct {
	Name  string
	Email string
}

type demoRecipe struct {
	Owner        string
	Name         string
	Image        string
	Ingredients  string
	Instructions string
}

var users = []demoUser{
	{Name: "John Doe", Email: "john.doe@example.com"},
	{Name: "Jane Smith", Email: "jane.smith@example.com"},
	{Name: "Bob Wilson", Email: "bob.wilson@example.com"},
}

var recipes = []demoRecipe{
	{
		Owner:        "john.doe@example.com",
		Name:         "Beef Stew",
		Ingredients:  "1 kg beef chuck\n4 carrots\n3 potatoes\n1 l stock",
		Instructions: "Brown the beef\nAdd vegetables and stock\nSimmer for 2 hours",
	},
	{
		Owner:        "john.doe@example.com",
		Name:         "Roast Beefsteak Tomatoes",
		Ingredients:  "4 beefsteak tomatoes\nolive oil\nthyme",
		Instructions: "Halve the tomatoes\nDrizzle with oil\nRoast at 200C for 30 minutes",
	},
	{
		Owner:        "jane.smith@example.com",
		Name:         "Veg Soup",
		Ingredients:  "2 onions\n3 carrots\n2 celery sticks\n1 l stock",
		Instructions: "Sweat the onions\nAdd everything else\nSimmer for 25 minutes\nBlend",
	},
	{
		Owner:        "jane.smith@example.com",
		Name:         "Buttermilk Pancakes",
		Ingredients:  "200 g flour\n300 ml buttermilk\n1 egg\n1 tsp baking powder",
		Instructions: "Whisk everything together\nFry ladlefuls in a hot pan",
	},
	{
		Owner:        "bob.wilson@example.com",
		Name:         "Crème Brûlée",
		Ingredients:  "500 ml cream\n5 egg yolks\n100 g sugar\n1 vanilla pod",
		Instructions: "Infuse the cream\nWhisk in yolks and sugar\nBake in a water bath\nTorch the sugar",
	},
}

// favorites maps a user email onto the recipe names they favorite.
var favorites = map[string][]string{
	"jane.smith@example.com": {"Beef Stew"},
	"bob.wilson@example.com": {"Beef Stew", "Veg Soup"},
}

// Stats reports what a Run created.
type Stats struct {
	Users     int
	Recipes   int
	Favorites int
}

// Run inserts the demo data. Rows that already exist are left alone, so
// running it twice is harmless.
func Run(ctx context.Context, db *gorm.DB, auth service.IAuthService, store *service.RecipeService) (Stats, error) {
	var stats Stats

	byEmail := make(map[string]*model.User, len(users))
	for _, u := range users {
		user, err := auth.Register(ctx, u.Name, u.Email, Password)
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			user, err = auth.Login(ctx, u.Email, Password)
			if err != nil {
				return stats, fmt.Errorf("failed to load existing user %s: %w", u.Email, err)
			}
		case err != nil:
			return stats, err
		default:
			stats.Users++
		}
		byEmail[u.Email] = user
	}

	byName := make(map[string]uint, len(recipes))
	for _, r := range recipes {
		owner := byEmail[r.Owner]

		var existing model.Recipe
		err := db.WithContext(ctx).Where("user_id = ? AND recipe_name = ?", owner.ID, r.Name).First(&existing).Error
		if err == nil {
			byName[r.Name] = existing.ID
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return stats, fmt.Errorf("failed to look up recipe %q: %w", r.Name, err)
		}

		created, err := store.CreateRecipe(ctx, &model.Recipe{
			RecipeName:   r.Name,
			RecipeImage:  r.Image,
			Ingredients:  r.Ingredients,
			Instructions: r.Instructions,
			UserID:       owner.ID,
		})
		if err != nil {
			return stats, err
		}
		byName[r.Name] = created.ID
		stats.Recipes++
		slog.Info("seeded recipe", "name", r.Name, "owner", r.Owner)
	}

	for email, names := range favorites {
		user := byEmail[email]
		for _, name := range names {
			recipeID := byName[name]
			already, err := store.IsFavorited(ctx, user.ID, recipeID)
			if err != nil {
				return stats, err
			}
			if already {
				continue
			}
			if _, err := store.AddFavorite(ctx, user.ID, recipeID); err != nil {
				return stats, err
			}
			stats.Favorites++
		}
	}

	return stats, nil
}
