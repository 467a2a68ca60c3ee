package config

import (
	"context"
	"io"
	"os"
	"strconv"
	"time"

	"foodgram-backend/internal/api/handlers"
	"foodgram-backend/internal/api/routes"
	"foodgram-backend/internal/middleware"
	"foodgram-backend/internal/utils"
	"foodgram-backend/internal/utils/cache"
	"foodgram-backend/internal/utils/mailing"
	"foodgram-backend/internal/utils/storage"
	"foodgram-backend/pkg/collection"
	"foodgram-backend/pkg/ingredient"
	"foodgram-backend/pkg/jwt"
	"foodgram-backend/pkg/recipe"
	"foodgram-backend/pkg/shoppinglist"
	"foodgram-backend/pkg/subscription"
	"foodgram-backend/pkg/tag"
	"foodgram-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Dependencies are the external collaborators of the API. NewApp builds the production set.
type Dependencies struct {
	Storage    storage.AwsS3
	Mailer     mailing.Mailer
	JWTService jwt.JWTService
	// LimiterStorage is nil for the in-memory limiter store.
	LimiterStorage fiber.Storage
	// RateLimitMax is requests per second per client; zero disables the limiter.
	RateLimitMax int
	AccessLog    io.Writer
}

func NewApp(db *gorm.DB) (*fiber.App, error) {
	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}

	rateLimit, err := strconv.Atoi(utils.GetConfig("RATE_LIMIT_MAX"))
	if err != nil {
		log.Warnw("invalid RATE_LIMIT_MAX, limiter disabled", "value", utils.GetConfig("RATE_LIMIT_MAX"))
		rateLimit = 0
	}

	deps := Dependencies{
		Storage:      storage.NewAwsS3(),
		Mailer:       mailing.NewMailer(mailing.LoadMailConfig()),
		JWTService:   jwt.NewJWTService(),
		RateLimitMax: rateLimit,
		AccessLog:    file,
	}

	if addr := utils.GetConfig("REDIS_ADDR"); addr != "" {
		redisStorage := cache.NewRedisStorage(cache.NewRedisClient(addr, utils.GetConfig("REDIS_PASSWORD")), "foodgram:limiter:")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisStorage.Ping(ctx); err != nil {
			log.Warnw("redis unavailable, using in-memory limiter", "addr", addr, "error", err)
		} else {
			deps.LimiterStorage = redisStorage
		}
	}

	return BuildApp(db, deps)
}

// BuildApp wires repositories, services, handlers and routes on top of db.
func BuildApp(db *gorm.DB, deps Dependencies) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName: "foodgram",
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	app.Use(recover.New())
	if deps.AccessLog != nil {
		app.Use(logger.New(logger.Config{
			TimeFormat: "2006-01-02 15:04:05",
			TimeZone:   "UTC",
			Output:     deps.AccessLog,
		}))
	}

	if deps.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        deps.RateLimitMax,
			Expiration: 1 * time.Second,
			Storage:    deps.LimiterStorage,
		}))
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	tagRepository := tag.NewTagRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	collectionRepository := collection.NewCollectionRepository(db)
	subscriptionRepository := subscription.NewSubscriptionRepository(db)
	shoppingListRepository := shoppinglist.NewShoppingListRepository(db)

	// Service
	userService := user.NewUserService(userRepository, deps.JWTService)
	tagService := tag.NewTagService(tagRepository)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, tagRepository, ingredientRepository, userRepository, deps.Storage)
	collectionService := collection.NewCollectionService(collectionRepository, recipeRepository)
	subscriptionService := subscription.NewSubscriptionService(subscriptionRepository, userRepository, recipeRepository)
	shoppingListService := shoppinglist.NewShoppingListService(shoppingListRepository, userRepository, deps.Mailer)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	collectionHandler := handlers.NewCollectionHandler(collectionService, shoppingListService)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)
	catalogHandler := handlers.NewCatalogHandler(tagService, ingredientService)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		RecipeHandler:       recipeHandler,
		CollectionHandler:   collectionHandler,
		SubscriptionHandler: subscriptionHandler,
		CatalogHandler:      catalogHandler,
		Middleware:          middlewares,
		JWTService:          deps.JWTService,
	}
	routesConfig.Setup()
	return app, nil
}
