package main

import (
	"context"
	"flag"
	"log"

	"github.com/shopspring/decimal"

	"github.com/recipebox/backend/config"
	"github.com/recipebox/backend/internal/database"
	"github.com/recipebox/backend/internal/service"
	"github.com/recipebox/backend/internal/types"
)

// Seeds a demo account with a handful of recipes so a fresh environment
// has something to browse.
func main() {
	email := flag.String("email", "demo@example.com", "email for the seed account")
	password := flag.String("password", "demo-password", "password for the seed account")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	ctx := context.Background()
	authService := service.NewAuthService(db, cfg.JWTSecret)

	user, _, err := authService.Register(ctx, "Demo User", *email, *password)
	if err != nil {
		if err == service.ErrUserExists {
			user, err = authService.GetUserByEmail(ctx, *email)
			if err != nil {
				log.Fatalf("failed to look up seed account: %v", err)
			}
			log.Printf("Seed account %s already exists, reusing it", *email)
		} else {
			log.Fatalf("failed to create seed account: %v", err)
		}
	}

	recipeService := service.NewRecipeService(db)
	for _, req := range seedRecipes() {
		recipe, err := recipeService.CreateRecipe(ctx, user.ID, req)
		if err != nil {
			log.Fatalf("failed to seed recipe %q: %v", req.Title, err)
		}
		log.Printf("Seeded recipe %q (%s)", recipe.Title, recipe.ID)
	}
}

func seedRecipes() []types.CreateRecipeRequest {
	return []types.CreateRecipeRequest{
		{
			Title:       "Thai prawn curry",
			TimeMinutes: 25,
			Price:       decimal.NewFromFloat(12.50),
			Description: "Fragrant red curry with king prawns and jasmine rice.",
			Tags:        []types.NamedRef{{Name: "Dinner"}, {Name: "Seafood"}},
			Ingredients: []types.NamedRef{{Name: "Prawns"}, {Name: "Coconut milk"}, {Name: "Red curry paste"}},
		},
		{
			Title:       "Avocado toast",
			TimeMinutes: 10,
			Price:       decimal.NewFromFloat(4.00),
			Description: "Sourdough, smashed avocado, chilli flakes.",
			Tags:        []types.NamedRef{{Name: "Breakfast"}, {Name: "Vegan"}},
			Ingredients: []types.NamedRef{{Name: "Avocado"}, {Name: "Sourdough bread"}},
		},
		{
			Title:       "Chocolate cheesecake",
			TimeMinutes: 90,
			Price:       decimal.NewFromFloat(15.00),
			Description: "Baked cheesecake with a dark chocolate ganache.",
			Link:        "https://example.com/chocolate-cheesecake",
			Tags:        []types.NamedRef{{Name: "Dessert"}},
			Ingredients: []types.NamedRef{{Name: "Cream cheese"}, {Name: "Dark chocolate"}, {Name: "Digestive biscuits"}},
		},
	}
}
