package routes

import (
	"foodgram-backend/internal/api/handlers"
	"foodgram-backend/internal/middleware"
	"foodgram-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	RecipeHandler       handlers.RecipeHandler
	CollectionHandler   handlers.CollectionHandler
	SubscriptionHandler handlers.SubscriptionHandler
	CatalogHandler      handlers.CatalogHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Auth()
	c.User()
	c.Recipe()
	c.Catalog()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth/token")
	{
		auth.Post("/login", c.UserHandler.Login)
		auth.Post("/logout", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Logout)
	}
}

func (c *Config) User() {
	authRequired := c.Middleware.AuthMiddleware(c.JWTService)
	user := c.App.Group("/api/users")
	// static paths go before /:id
	{
		user.Post("", c.UserHandler.Register)
		user.Get("", c.Middleware.OptionalAuth(c.JWTService), c.UserHandler.GetUsers)
		user.Get("/me", authRequired, c.UserHandler.Me)
		user.Post("/set_password", authRequired, c.UserHandler.SetPassword)
		user.Get("/subscriptions", authRequired, c.SubscriptionHandler.GetSubscriptions)
		user.Get("/:id", c.Middleware.OptionalAuth(c.JWTService), c.UserHandler.GetUser)
		user.Post("/:id/subscribe", authRequired, c.SubscriptionHandler.Subscribe)
		user.Delete("/:id/subscribe", authRequired, c.SubscriptionHandler.Unsubscribe)
	}
}

func (c *Config) Recipe() {
	authRequired := c.Middleware.AuthMiddleware(c.JWTService)
	recipes := c.App.Group("/api/recipes")
	{
		recipes.Get("/download_shopping_cart", authRequired, c.CollectionHandler.DownloadShoppingCart)
		recipes.Post("/send_shopping_cart", authRequired, c.CollectionHandler.SendShoppingCart)

		recipes.Get("", c.Middleware.OptionalAuth(c.JWTService), c.RecipeHandler.GetRecipes)
		recipes.Post("", authRequired, c.RecipeHandler.CreateRecipe)
		recipes.Get("/:id", c.Middleware.OptionalAuth(c.JWTService), c.RecipeHandler.GetRecipe)
		recipes.Patch("/:id", authRequired, c.RecipeHandler.UpdateRecipe)
		recipes.Put("/:id", authRequired, c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", authRequired, c.RecipeHandler.DeleteRecipe)

		recipes.Post("/:id/favorite", authRequired, c.CollectionHandler.AddFavorite)
		recipes.Delete("/:id/favorite", authRequired, c.CollectionHandler.RemoveFavorite)
		recipes.Post("/:id/shopping_cart", authRequired, c.CollectionHandler.AddToShoppingCart)
		recipes.Delete("/:id/shopping_cart", authRequired, c.CollectionHandler.RemoveFromShoppingCart)
	}
}

func (c *Config) Catalog() {
	c.App.Get("/api/tags", c.CatalogHandler.GetTags)
	c.App.Get("/api/tags/:id", c.CatalogHandler.GetTag)
	c.App.Get("/api/ingredients", c.CatalogHandler.GetIngredients)
	c.App.Get("/api/ingredients/:id", c.CatalogHandler.GetIngredient)
}
